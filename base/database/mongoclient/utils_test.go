package mongoclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMakeBsonM(t *testing.T) {
	type tokenId struct {
		ChainId  int64   `bson:"chainId"`
		Contract string  `bson:"contractAddress"`
		TokenId  string  `bson:"tokenId"`
		Owner    *string `bson:"owner,omitempty"`
		Ignored  string  `bson:"-"`
	}

	owner := "0xabc"
	res, err := MakeBsonM(&tokenId{
		ChainId: 11155111,
		TokenId: "0",
		Owner:   &owner,
		Ignored: "x",
	})

	assert.NoError(t, err)
	assert.Equal(t, bson.M{
		"chainId": int64(11155111),
		// contract is empty, so ignored
		"tokenId": "0",
		"owner":   "0xabc",
	}, res)
}
