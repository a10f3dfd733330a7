package usecase

import (
	"github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/base/metrics"
	hcdomain "github.com/x-xyz/nftmint/domain/healthcheck"
)

var met = metrics.New("healthcheck")

type impl struct {
	repo hcdomain.HealthCheckRepo
}

func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
	}
}

func (im *impl) Check(c ctx.Ctx) error {
	defer met.BumpTime("check").End()
	if err := im.repo.Ping(c); err != nil {
		met.BumpSum("unhealthy", 1)
		return err
	}
	return nil
}
