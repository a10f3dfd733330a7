package domain

import (
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/x-xyz/nftmint/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"address"`
	jwt.StandardClaims
}

type SignInRequest struct {
	Address   Address `json:"address" validate:"required"`
	Signature string  `json:"signature" validate:"required"`
}

type AuthUsecase interface {
	// SigningMessage issues a fresh nonce for address and returns the message to sign with it
	SigningMessage(c ctx.Ctx, address Address) (string, error)
	// SignIn consumes the pending nonce, verifies the wallet signed the login message and issues a token
	SignIn(c ctx.Ctx, address Address, signature string) (string, error)
	SignToken(c ctx.Ctx, address Address) (string, error)
	ParseToken(c ctx.Ctx, token string) (Address, error)
}

// NonceRepo keeps at most one pending login nonce per address
type NonceRepo interface {
	Set(c ctx.Ctx, address Address, nonce string, ttl time.Duration) error
	// Get returns ErrNotFound when no nonce is pending
	Get(c ctx.Ctx, address Address) (string, error)
	// Del reports whether a nonce was removed, only one of concurrent callers gets true
	Del(c ctx.Ctx, address Address) (bool, error)
}
