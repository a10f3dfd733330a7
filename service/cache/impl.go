package cache

import (
	"encoding/json"
	"reflect"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/domain/keys"
	"github.com/x-xyz/nftmint/service/cache/provider"
)

type impl struct {
	ttl         time.Duration
	pfx         string
	provider    provider.Provider
	serialize   Serializer
	deserialize Deserializer
	group       singleflight.Group
}

func New(cfg Cfg) Service {
	if cfg.Serialize == nil {
		cfg.Serialize = json.Marshal
	}
	if cfg.Deserialize == nil {
		cfg.Deserialize = json.Unmarshal
	}
	return &impl{
		ttl:         cfg.Ttl,
		pfx:         cfg.Pfx,
		provider:    cfg.Provider,
		serialize:   cfg.Serialize,
		deserialize: cfg.Deserialize,
	}
}

func (im *impl) GetOrLoad(c ctx.Ctx, key string, container interface{}, load Loader) error {
	if err := im.Get(c, key, container); err == nil {
		return nil
	} else if err != ErrNotFound {
		return err
	}

	// concurrent misses on the same key share one load
	val, err, _ := im.group.Do(key, func() (interface{}, error) {
		val, err := load()
		if err != nil {
			return nil, err
		}
		if err := im.Set(c, key, val); err != nil {
			c.WithField("err", err).WithField("key", key).Warn("Set failed")
		}
		return val, nil
	})
	if err != nil {
		return err
	}

	reflect.ValueOf(container).Elem().Set(reflect.ValueOf(val).Elem())
	return nil
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	key = keys.RedisKey(im.pfx, key)

	val, _, err := im.provider.Get(c, key)
	if err == provider.ErrNotFound {
		return ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("provider.Get failed")
		return err
	}

	if err := im.deserialize(val, container); err != nil {
		c.WithField("err", err).WithField("key", key).Error("deserialize failed")
		return err
	}
	return nil
}

func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	key = keys.RedisKey(im.pfx, key)

	val, err := im.serialize(value)
	if err != nil {
		c.WithField("err", err).WithField("key", key).Error("serialize failed")
		return err
	}
	if err := im.provider.Set(c, key, val, im.ttl); err != nil {
		c.WithField("err", err).WithField("key", key).Error("provider.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	key = keys.RedisKey(im.pfx, key)

	if err := im.provider.Del(c, key); err != nil {
		c.WithField("err", err).WithField("key", key).Error("provider.Del failed")
		return err
	}
	return nil
}
