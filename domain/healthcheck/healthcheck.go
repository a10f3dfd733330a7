package healthcheck

import (
	"github.com/x-xyz/nftmint/base/ctx"
)

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	Check(context ctx.Ctx) error
}

// HealthCheckRepo pings whichever backing stores are configured
type HealthCheckRepo interface {
	Ping(context ctx.Ctx) error
}
