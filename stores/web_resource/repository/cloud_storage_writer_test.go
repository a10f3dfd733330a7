package repository

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveObjectUrl(t *testing.T) {
	base, err := url.Parse("https://storage.googleapis.com/nftmint-images/")
	require.NoError(t, err)

	got, err := resolveObjectUrl(base, "11155111/0xabc/1.image.png")
	require.NoError(t, err)
	assert.Equal(t, "https://storage.googleapis.com/nftmint-images/11155111/0xabc/1.image.png", got)
}
