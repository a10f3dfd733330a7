package cache

import (
	"errors"
	"time"

	"github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/service/cache/provider"
)

var (
	ErrNotFound = errors.New("cache: not found")
)

// Loader produces the value on a miss, it must return a pointer of the container's element type
type Loader func() (interface{}, error)

type Serializer func(interface{}) ([]byte, error)

type Deserializer func([]byte, interface{}) error

// Service caches typed values under a prefix
type Service interface {
	GetOrLoad(c ctx.Ctx, key string, container interface{}, load Loader) error
	Get(c ctx.Ctx, key string, container interface{}) error
	Set(c ctx.Ctx, key string, value interface{}) error
	Del(c ctx.Ctx, key string) error
}

type Cfg struct {
	Ttl         time.Duration
	Pfx         string
	Provider    provider.Provider
	Serialize   Serializer
	Deserialize Deserializer
}
