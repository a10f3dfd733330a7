package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftmint/base/ctx"
	hcdomain "github.com/x-xyz/nftmint/domain/healthcheck"
	"github.com/x-xyz/nftmint/domain/keys"
	"github.com/x-xyz/nftmint/service/redis"
)

const pingTimeout = 2 * time.Second

// MongoPinger is satisfied by *mongoclient.Client
type MongoPinger interface {
	Ping(context.Context, *readpref.ReadPref) error
}

type impl struct {
	mongo MongoPinger
	redis redis.Service
}

// New pings only what is given, nil stores are skipped
func New(mongo MongoPinger, redis redis.Service) hcdomain.HealthCheckRepo {
	return &impl{
		mongo: mongo,
		redis: redis,
	}
}

func (im *impl) Ping(c ctx.Ctx) error {
	tc, cancel := ctx.WithTimeout(c, pingTimeout)
	defer cancel()

	if im.mongo != nil {
		if err := im.mongo.Ping(tc, readpref.Primary()); err != nil {
			c.WithField("err", err).Error("ping mongo failed")
			return xerrors.Errorf("mongo: %w", err)
		}
	}

	if im.redis != nil {
		if err := im.redis.Set(tc, keys.RedisKey(keys.PfxHealthCheck, "testset"), []byte("1"), 30*time.Second); err != nil {
			c.WithField("err", err).Error("redis.Set failed")
			return xerrors.Errorf("redis: %w", err)
		}
	}
	return nil
}
