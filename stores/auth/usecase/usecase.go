package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/base/ethereum"
	"github.com/x-xyz/nftmint/base/validator"
	"github.com/x-xyz/nftmint/domain"
)

const (
	DefaultTokenTtl = 24 * time.Hour
	DefaultNonceTtl = 10 * time.Minute
	// DefaultJwtSecret is the placeholder shipped in the sample config
	DefaultJwtSecret = "change-me"
)

var ErrWeakJwtSecret = errors.New("auth.jwtSecret is empty or the sample value")

type Cfg struct {
	JwtSecret string
	// SigningMsgTemplate is the message wallets sign, %s is replaced by the lowercase address
	SigningMsgTemplate string
	TokenTtl           time.Duration
	Nonces             domain.NonceRepo
	NonceTtl           time.Duration
}

type impl struct {
	jwtSecret []byte
	template  string
	ttl       time.Duration
	nonces    domain.NonceRepo
	nonceTtl  time.Duration
}

func New(cfg *Cfg) domain.AuthUsecase {
	ttl := cfg.TokenTtl
	if ttl <= 0 {
		ttl = DefaultTokenTtl
	}
	nonceTtl := cfg.NonceTtl
	if nonceTtl <= 0 {
		nonceTtl = DefaultNonceTtl
	}
	return &impl{
		jwtSecret: []byte(cfg.JwtSecret),
		template:  cfg.SigningMsgTemplate,
		ttl:       ttl,
		nonces:    cfg.Nonces,
		nonceTtl:  nonceTtl,
	}
}

// CheckJwtSecret rejects secrets anyone reading the sample config could sign tokens with
func CheckJwtSecret(secret string) error {
	if strings.TrimSpace(secret) == "" || secret == DefaultJwtSecret {
		return ErrWeakJwtSecret
	}
	return nil
}

// SigningMessage is what address has to sign with nonce to get a token
func SigningMessage(template string, address domain.Address, nonce string) string {
	msg := template
	if strings.Contains(template, "%s") {
		msg = fmt.Sprintf(template, address.ToLowerStr())
	}
	return msg + "\n\nNonce: " + nonce
}

func (im *impl) SigningMessage(ctx ctx.Ctx, address domain.Address) (string, error) {
	if !validator.IsValidAddress(string(address)) {
		return "", domain.ErrInvalidAddress
	}
	nonce := uuid.NewString()
	if err := im.nonces.Set(ctx, address, nonce, im.nonceTtl); err != nil {
		ctx.WithField("err", err).Error("nonces.Set failed")
		return "", err
	}
	return SigningMessage(im.template, address, nonce), nil
}

func (im *impl) SignIn(ctx ctx.Ctx, address domain.Address, signature string) (string, error) {
	if !validator.IsValidAddress(string(address)) {
		return "", domain.ErrInvalidAddress
	}
	nonce, err := im.nonces.Get(ctx, address)
	if errors.Is(err, domain.ErrNotFound) {
		return "", domain.ErrInvalidNonce
	} else if err != nil {
		ctx.WithField("err", err).Error("nonces.Get failed")
		return "", err
	}
	// a nonce is spent by the first attempt whatever its outcome
	if ok, err := im.nonces.Del(ctx, address); err != nil {
		ctx.WithField("err", err).Error("nonces.Del failed")
		return "", err
	} else if !ok {
		return "", domain.ErrInvalidNonce
	}

	msg := SigningMessage(im.template, address, nonce)
	ok, err := ethereum.ValidateMsgSignature([]byte(msg), signature, string(address))
	if err != nil {
		ctx.WithField("err", err).Info("ethereum.ValidateMsgSignature failed")
		return "", xerrors.Errorf("%w: %s", domain.ErrInvalidSignature, err.Error())
	}
	if !ok {
		return "", domain.ErrInvalidSignature
	}
	return im.SignToken(ctx, address)
}

func (im *impl) SignToken(ctx ctx.Ctx, address domain.Address) (string, error) {
	claims := domain.JwtCustomClaims{
		Address: address.ToLowerStr(),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(im.ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		ctx.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(ctx ctx.Ctx, str string) (domain.Address, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})

	if token != nil {
		if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
			return domain.Address(claims.Address), nil
		}
	}
	if err == nil {
		err = domain.ErrInvalidSignature
	}
	return "", err
}
