package provider

import (
	"errors"
	"time"

	"github.com/x-xyz/nftmint/base/ctx"
)

var (
	ErrNotFound = errors.New("cache: not found")
)

// Provider stores raw bytes, ttl is reported back on Get so upper layers can be refilled
type Provider interface {
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(c ctx.Ctx, key string) error
}
