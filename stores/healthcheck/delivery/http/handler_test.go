package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/middleware"
)

type checkFunc func(ctx.Ctx) error

func (f checkFunc) Check(c ctx.Ctx) error { return f(c) }

func serve(check checkFunc) *httptest.ResponseRecorder {
	e := echo.New()
	e.Use(middleware.InitMiddleware().AddContext())
	New(e, check)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	return rec
}

func TestHealthy(t *testing.T) {
	rec := serve(func(ctx.Ctx) error { return nil })
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"healthy":"ok"}`, rec.Body.String())
}

func TestUnhealthy(t *testing.T) {
	rec := serve(func(ctx.Ctx) error { return errors.New("mongo: connection refused") })
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.JSONEq(t, `{"healthy":"down"}`, rec.Body.String())
}
