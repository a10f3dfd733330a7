package redis

import (
	"time"

	"github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/service/cache/provider"
	"github.com/x-xyz/nftmint/service/redis"
)

type remote struct {
	redis redis.Service
}

// New uses redis as a shared cache layer
func New(r redis.Service) provider.Provider {
	return &remote{r}
}

func (r *remote) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, err := r.redis.Get(c, key)
	if err == redis.ErrNotFound {
		return nil, 0, provider.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis.Get failed")
		return nil, 0, err
	}

	secs, err := r.redis.TTL(c, key)
	switch err {
	case nil:
		return val, time.Duration(secs) * time.Second, nil
	case redis.ErrNoTTL:
		return val, 0, nil
	case redis.ErrNotFound:
		// expired between GET and TTL
		return nil, 0, provider.ErrNotFound
	default:
		c.WithField("err", err).WithField("key", key).Error("redis.TTL failed")
		return nil, 0, err
	}
}

func (r *remote) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = redis.Forever
	}
	if err := r.redis.Set(c, key, value, ttl); err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis.Set failed")
		return err
	}
	return nil
}

func (r *remote) Del(c ctx.Ctx, key string) error {
	if _, err := r.redis.Del(c, key); err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis.Del failed")
		return err
	}
	return nil
}
