package local

import (
	"time"

	"github.com/coocood/freecache"

	"github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/base/metrics"
	"github.com/x-xyz/nftmint/domain/keys"
	"github.com/x-xyz/nftmint/service/cache/provider"
)

var met = metrics.New("cache.local")

type local struct {
	name  string
	cache *freecache.Cache
}

// New creates an in-process cache of sizeMB megabytes
func New(name string, sizeMB int) provider.Provider {
	return &local{
		name:  name,
		cache: freecache.NewCache(sizeMB * 1024 * 1024),
	}
}

func (l *local) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, exp, err := l.cache.GetWithExpiration([]byte(key))
	if err == freecache.ErrNotFound {
		met.BumpSum("miss", 1, "name", l.name, "prefix", keys.GetPrefix(key))
		return nil, 0, provider.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("freecache.GetWithExpiration failed")
		return nil, 0, err
	}
	met.BumpSum("hit", 1, "name", l.name, "prefix", keys.GetPrefix(key))

	if exp == 0 {
		return val, 0, nil
	}
	ttl := time.Until(time.Unix(int64(exp), 0))
	if ttl <= 0 {
		return nil, 0, provider.ErrNotFound
	}
	return val, ttl, nil
}

func (l *local) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	secs := int(ttl / time.Second)
	if ttl > 0 && secs == 0 {
		secs = 1
	}
	if err := l.cache.Set([]byte(key), value, secs); err != nil {
		c.WithField("err", err).WithField("key", key).Error("freecache.Set failed")
		return err
	}
	return nil
}

func (l *local) Del(c ctx.Ctx, key string) error {
	l.cache.Del([]byte(key))
	return nil
}
