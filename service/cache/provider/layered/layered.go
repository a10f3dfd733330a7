package layered

import (
	"time"

	"github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/service/cache/provider"
)

type layered struct {
	layers []provider.Provider
}

// New stacks providers from fastest to slowest. A hit in a lower layer refills the layers above it.
func New(layers ...provider.Provider) provider.Provider {
	return &layered{layers}
}

func (l *layered) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	for idx, lyr := range l.layers {
		val, ttl, err := lyr.Get(c, key)
		if err == provider.ErrNotFound {
			continue
		} else if err != nil {
			return nil, 0, err
		}

		for _, upper := range l.layers[:idx] {
			if err := upper.Set(c, key, val, ttl); err != nil {
				c.WithField("err", err).WithField("key", key).Warn("refill failed")
			}
		}
		return val, ttl, nil
	}
	return nil, 0, provider.ErrNotFound
}

func (l *layered) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	// slowest first so a failure never leaves a stale fast layer
	for i := len(l.layers) - 1; i >= 0; i-- {
		if err := l.layers[i].Set(c, key, value, ttl); err != nil {
			return err
		}
	}
	return nil
}

func (l *layered) Del(c ctx.Ctx, key string) error {
	for i := len(l.layers) - 1; i >= 0; i-- {
		if err := l.layers[i].Del(c, key); err != nil {
			return err
		}
	}
	return nil
}
