package ethereum

import (
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

func TestValidateMsgSignature(t *testing.T) {
	req := require.New(t)
	privateKey, publicKey, err := GenerateKey()
	req.NoError(err)
	address := crypto.PubkeyToAddress(*publicKey).Hex()
	message := []byte("Sign in to nftmint")

	signature, err := crypto.Sign(accounts.TextHash(message), privateKey)
	req.NoError(err)

	ok, err := ValidateMsgSignature(message, hexutil.Encode(signature), address)
	req.NoError(err)
	req.True(ok)

	// signature is not mutated by validation
	ok, err = ValidateMsgSignature(message, hexutil.Encode(signature), address)
	req.NoError(err)
	req.True(ok)

	ok, err = ValidateMsgSignature([]byte("other message"), hexutil.Encode(signature), address)
	req.NoError(err)
	req.False(ok)

	_, other, err := GenerateKey()
	req.NoError(err)
	ok, err = ValidateMsgSignature(message, hexutil.Encode(signature), crypto.PubkeyToAddress(*other).Hex())
	req.NoError(err)
	req.False(ok)
}

func TestValidateMsgSignatureMalformed(t *testing.T) {
	_, err := ValidateMsgSignature([]byte("m"), "not-hex", "0x01")
	require.Error(t, err)

	_, err = ValidateMsgSignature([]byte("m"), "0x1234", "0x01")
	require.Error(t, err)
}
