package redis

import (
	"errors"
	"time"

	"github.com/x-xyz/nftmint/base/ctx"
)

const (
	// Forever keeps the key without expiry
	Forever time.Duration = -1
)

var (
	ErrNotFound = errors.New("redis: key not found")
	ErrNoTTL    = errors.New("redis: key has no ttl")
)

// Service is the subset of redis commands the cache layers and health check use
type Service interface {
	Ping(context ctx.Ctx) error
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, keys ...string) (int, error)
	Exists(context ctx.Ctx, key string) (bool, error)
	Incrby(context ctx.Ctx, key string, val int) (int64, error)
	// TTL returns the remaining seconds, ErrNotFound when the key is missing
	TTL(context ctx.Ctx, key string) (int, error)
}
