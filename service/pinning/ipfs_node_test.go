package pinning

import (
	"errors"
	"io"
	"strings"
	"testing"

	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/stretchr/testify/require"
)

type fakeAdder struct {
	content string
	nOpts   int
	err     error
}

func (f *fakeAdder) Add(r io.Reader, options ...ipfsapi.AddOpts) (string, error) {
	b, _ := io.ReadAll(r)
	f.content = string(b)
	f.nOpts = len(options)
	if f.err != nil {
		return "", f.err
	}
	return "QmNode", nil
}

func TestIpfsNodePin(t *testing.T) {
	adder := &fakeAdder{}
	im := &ipfsNodeImpl{shell: adder}

	cid, err := im.Pin(mockCtx, strings.NewReader("data"), "a.txt", WithCidVersion(CidVersion1))
	require.NoError(t, err)
	require.Equal(t, "QmNode", cid)
	require.Equal(t, "data", adder.content)
	require.Equal(t, 2, adder.nOpts)
}

func TestIpfsNodePinJson(t *testing.T) {
	adder := &fakeAdder{}
	im := &ipfsNodeImpl{shell: adder}

	_, err := im.PinJson(mockCtx, map[string]string{"name": "n"})
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"n"}`, adder.content)
}

func TestIpfsNodePinFailed(t *testing.T) {
	im := &ipfsNodeImpl{shell: &fakeAdder{err: errors.New("connection refused")}}

	_, err := im.Pin(mockCtx, strings.NewReader("data"), "a.txt")
	require.ErrorIs(t, err, ErrRequestFailed)
}
