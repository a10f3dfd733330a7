package usecase_test

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/base/ethereum"
	"github.com/x-xyz/nftmint/domain"
	"github.com/x-xyz/nftmint/domain/mocks"
	"github.com/x-xyz/nftmint/stores/auth/repository"
	"github.com/x-xyz/nftmint/stores/auth/usecase"
)

const template = "Sign in to nftmint as %s"

func TestSignAndParseToken(t *testing.T) {
	c := ctx.Background()
	u := usecase.New(&usecase.Cfg{JwtSecret: "jwt-secret", SigningMsgTemplate: template})
	tkn, err := u.SignToken(c, "0xAbC0000000000000000000000000000000000001")
	assert.NoError(t, err)
	assert.NotEmpty(t, tkn)
	ads, err := u.ParseToken(c, tkn)
	assert.NoError(t, err)
	assert.Equal(t, domain.Address("0xabc0000000000000000000000000000000000001"), ads)

	other := usecase.New(&usecase.Cfg{JwtSecret: "other-secret"})
	_, err = other.ParseToken(c, tkn)
	assert.Error(t, err)

	_, err = u.ParseToken(c, "not-a-jwt")
	assert.Error(t, err)
}

func TestNonPositiveTtlUsesDefault(t *testing.T) {
	c := ctx.Background()
	u := usecase.New(&usecase.Cfg{JwtSecret: "jwt-secret", TokenTtl: -time.Minute})
	tkn, err := u.SignToken(c, "0xabc0000000000000000000000000000000000001")
	require.NoError(t, err)
	// negative ttl falls back to the default, the token is valid
	_, err = u.ParseToken(c, tkn)
	assert.NoError(t, err)
}

func signedBy(t *testing.T, u domain.AuthUsecase) (domain.Address, func() string) {
	key, pub, err := ethereum.GenerateKey()
	require.NoError(t, err)
	address := domain.Address(crypto.PubkeyToAddress(*pub).Hex())
	return address, func() string {
		msg, err := u.SigningMessage(ctx.Background(), address)
		require.NoError(t, err)
		sig, err := crypto.Sign(accounts.TextHash([]byte(msg)), key)
		require.NoError(t, err)
		return hexutil.Encode(sig)
	}
}

func TestSignIn(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	u := usecase.New(&usecase.Cfg{JwtSecret: "jwt-secret", SigningMsgTemplate: template, Nonces: repository.NewLocalNonceRepo(1)})
	address, sign := signedBy(t, u)

	tkn, err := u.SignIn(c, address, sign())
	req.NoError(err)
	got, err := u.ParseToken(c, tkn)
	req.NoError(err)
	req.Equal(address.ToLower(), got)

	_, err = u.SignIn(c, address, "0x1234")
	req.ErrorIs(err, domain.ErrInvalidNonce)

	_, err = u.SignIn(c, "bob", sign())
	req.ErrorIs(err, domain.ErrInvalidAddress)
}

func TestSignInReplay(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	u := usecase.New(&usecase.Cfg{JwtSecret: "jwt-secret", SigningMsgTemplate: template, Nonces: repository.NewLocalNonceRepo(1)})
	address, sign := signedBy(t, u)

	sig := sign()
	_, err := u.SignIn(c, address, sig)
	req.NoError(err)
	// the same signature is worthless once its nonce is spent
	_, err = u.SignIn(c, address, sig)
	req.ErrorIs(err, domain.ErrInvalidNonce)

	// a fresh nonce invalidates signatures over the previous one
	stale := sign()
	fresh := sign()
	_, err = u.SignIn(c, address, stale)
	req.ErrorIs(err, domain.ErrInvalidSignature)
	_, err = u.SignIn(c, address, fresh)
	req.ErrorIs(err, domain.ErrInvalidNonce)
}

func TestSignInWrongSigner(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	u := usecase.New(&usecase.Cfg{JwtSecret: "jwt-secret", SigningMsgTemplate: template, Nonces: repository.NewLocalNonceRepo(1)})
	_, sign := signedBy(t, u)
	other := domain.Address("0x0000000000000000000000000000000000000001")

	_, err := u.SigningMessage(c, other)
	req.NoError(err)
	_, err = u.SignIn(c, other, sign())
	req.ErrorIs(err, domain.ErrInvalidSignature)
}

func TestSignInConsumeRace(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	nonces := mocks.NewNonceRepo(t)
	u := usecase.New(&usecase.Cfg{JwtSecret: "jwt-secret", SigningMsgTemplate: template, Nonces: nonces})
	address := domain.Address("0x70997970c51812dc3a010c7d01b50e0d17dc79c8")

	nonces.On("Get", mock.Anything, address).Return("n1", nil).Once()
	// another request spent it between Get and Del
	nonces.On("Del", mock.Anything, address).Return(false, nil).Once()
	_, err := u.SignIn(c, address, "0x1234")
	req.ErrorIs(err, domain.ErrInvalidNonce)
}

func TestSigningMessage(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	nonces := mocks.NewNonceRepo(t)
	u := usecase.New(&usecase.Cfg{JwtSecret: "jwt-secret", SigningMsgTemplate: template, Nonces: nonces})
	address := domain.Address("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")

	var nonce string
	nonces.On("Set", mock.Anything, address, mock.AnythingOfType("string"), usecase.DefaultNonceTtl).
		Run(func(args mock.Arguments) { nonce = args.String(2) }).Return(nil).Once()
	msg, err := u.SigningMessage(c, address)
	req.NoError(err)
	req.NotEmpty(nonce)
	req.Equal("Sign in to nftmint as 0x70997970c51812dc3a010c7d01b50e0d17dc79c8\n\nNonce: "+nonce, msg)

	_, err = u.SigningMessage(c, "bob")
	req.ErrorIs(err, domain.ErrInvalidAddress)
}

func TestCheckJwtSecret(t *testing.T) {
	assert.ErrorIs(t, usecase.CheckJwtSecret(""), usecase.ErrWeakJwtSecret)
	assert.ErrorIs(t, usecase.CheckJwtSecret("  "), usecase.ErrWeakJwtSecret)
	assert.ErrorIs(t, usecase.CheckJwtSecret(usecase.DefaultJwtSecret), usecase.ErrWeakJwtSecret)
	assert.NoError(t, usecase.CheckJwtSecret("a-long-random-secret"))
}
