package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/base/delivery"
	"github.com/x-xyz/nftmint/domain"
)

type AuthMiddleware struct {
	auth    domain.AuthUsecase
	minters []domain.Address
}

// New builds the auth middleware, an empty minters list lets every signed-in wallet mint
func New(auth domain.AuthUsecase, minters []domain.Address) *AuthMiddleware {
	return &AuthMiddleware{
		auth:    auth,
		minters: minters,
	}
}

func (m *AuthMiddleware) Auth() echo.MiddlewareFunc {
	return middleware.KeyAuth(m.validateAuthToken)
}

func (m *AuthMiddleware) IsMinter() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if len(m.minters) == 0 {
				return next(c)
			}

			address, _ := c.Get("address").(domain.Address)
			for _, minter := range m.minters {
				if minter.Equals(address) {
					return next(c)
				}
			}

			return delivery.MakeJsonResp(c, http.StatusForbidden, "require minter privilege")
		}
	}
}

func (m *AuthMiddleware) validateAuthToken(key string, c echo.Context) (bool, error) {
	ctx := c.Get("ctx").(ctx.Ctx)
	if ads, err := m.auth.ParseToken(ctx, key); err != nil {
		ctx.WithField("err", err).Info("auth.ParseToken failed")
		return false, nil
	} else {
		c.Set("address", ads)
		return true, nil
	}
}
