package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/nftmint/domain"
	"github.com/x-xyz/nftmint/middleware"
	ensmocks "github.com/x-xyz/nftmint/service/ens/mocks"
)

func serve(t *testing.T, path string, setup func(*ensmocks.Resolver)) *httptest.ResponseRecorder {
	r := ensmocks.NewResolver(t)
	setup(r)
	e := echo.New()
	e.Use(middleware.InitMiddleware().AddContext())
	New(e, r)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestResolve(t *testing.T) {
	rec := serve(t, "/api/ens/alice.eth", func(r *ensmocks.Resolver) {
		r.On("Resolve", mock.Anything, "alice.eth").Return(domain.Address("0x70997970C51812dc3A010C7d01b50e0d17dc79C8"), nil).Once()
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"success","data":{"name":"alice.eth","address":"0x70997970C51812dc3A010C7d01b50e0d17dc79C8"}}`, rec.Body.String())
}

func TestResolveRejectsAddresses(t *testing.T) {
	rec := serve(t, "/api/ens/0x70997970C51812dc3A010C7d01b50e0d17dc79C8", func(*ensmocks.Resolver) {})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResolveErrors(t *testing.T) {
	rec := serve(t, "/api/ens/nobody.eth", func(r *ensmocks.Resolver) {
		r.On("Resolve", mock.Anything, "nobody.eth").Return(domain.EmptyAddress, domain.ErrNotFound).Once()
	})
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(t, "/api/ens/alice.eth", func(r *ensmocks.Resolver) {
		r.On("Resolve", mock.Anything, "alice.eth").Return(domain.EmptyAddress, errors.New("dial tcp: refused")).Once()
	})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"status":"fail","data":"Internal Server Error"}`, rec.Body.String())
}
