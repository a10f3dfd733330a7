package repository

import (
	"time"

	"github.com/coocood/freecache"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/domain"
	"github.com/x-xyz/nftmint/domain/keys"
	"github.com/x-xyz/nftmint/service/redis"
)

func nonceKey(address domain.Address) string {
	return keys.RedisKey(keys.PfxAuthNonce, address.ToLowerStr())
}

type redisNonceRepo struct {
	redis redis.Service
}

// NewRedisNonceRepo shares pending nonces between api instances
func NewRedisNonceRepo(r redis.Service) domain.NonceRepo {
	return &redisNonceRepo{redis: r}
}

func (im *redisNonceRepo) Set(c ctx.Ctx, address domain.Address, nonce string, ttl time.Duration) error {
	if err := im.redis.Set(c, nonceKey(address), []byte(nonce), ttl); err != nil {
		c.WithField("err", err).Error("redis.Set failed")
		return err
	}
	return nil
}

func (im *redisNonceRepo) Get(c ctx.Ctx, address domain.Address) (string, error) {
	val, err := im.redis.Get(c, nonceKey(address))
	if err == redis.ErrNotFound {
		return "", domain.ErrNotFound
	} else if err != nil {
		return "", err
	}
	return string(val), nil
}

func (im *redisNonceRepo) Del(c ctx.Ctx, address domain.Address) (bool, error) {
	n, err := im.redis.Del(c, nonceKey(address))
	if err != nil {
		c.WithField("err", err).Error("redis.Del failed")
		return false, err
	}
	return n > 0, nil
}

type localNonceRepo struct {
	cache *freecache.Cache
}

// NewLocalNonceRepo keeps pending nonces in process, for single instance deployments without redis
func NewLocalNonceRepo(sizeMB int) domain.NonceRepo {
	return &localNonceRepo{cache: freecache.NewCache(sizeMB * 1024 * 1024)}
}

func (im *localNonceRepo) Set(c ctx.Ctx, address domain.Address, nonce string, ttl time.Duration) error {
	secs := int(ttl / time.Second)
	if secs <= 0 {
		return xerrors.Errorf("nonce ttl %s: %w", ttl, domain.ErrBadParamInput)
	}
	if err := im.cache.Set([]byte(nonceKey(address)), []byte(nonce), secs); err != nil {
		c.WithField("err", err).Error("freecache.Set failed")
		return err
	}
	return nil
}

func (im *localNonceRepo) Get(c ctx.Ctx, address domain.Address) (string, error) {
	val, err := im.cache.Get([]byte(nonceKey(address)))
	if err == freecache.ErrNotFound {
		return "", domain.ErrNotFound
	} else if err != nil {
		return "", err
	}
	return string(val), nil
}

func (im *localNonceRepo) Del(c ctx.Ctx, address domain.Address) (bool, error) {
	return im.cache.Del([]byte(nonceKey(address))), nil
}
