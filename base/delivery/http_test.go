package delivery

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftmint/domain"
)

func newCtx() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return echo.New().NewContext(req, rec), rec
}

func TestMakeJsonResp(t *testing.T) {
	c, rec := newCtx()
	require.NoError(t, MakeJsonResp(c, http.StatusOK, map[string]int{"a": 1}))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"a":1},"status":"success"}`, rec.Body.String())

	c, rec = newCtx()
	require.NoError(t, MakeJsonResp(c, http.StatusInternalServerError, domain.ErrNotFound))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"data":"Your requested Item is not found","status":"fail"}`, rec.Body.String())
}

func TestMakeErrorResp(t *testing.T) {
	tests := []struct {
		err    error
		status int
		body   string
	}{
		{domain.ErrNoFile, http.StatusBadRequest, `{"error":"No file received"}`},
		{xerrors.Errorf("bad form: %w", domain.ErrInvalidMetadata), http.StatusBadRequest, `{"error":"Invalid metadata"}`},
		{xerrors.New("pinata exploded"), http.StatusInternalServerError, `{"error":"Internal Server Error"}`},
	}
	for _, tt := range tests {
		c, rec := newCtx()
		require.NoError(t, MakeErrorResp(c, tt.err))
		assert.Equal(t, tt.status, rec.Code)
		assert.JSONEq(t, tt.body, rec.Body.String())
	}
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusOf(domain.ErrInvalidAddress))
	assert.Equal(t, http.StatusAccepted, StatusOf(domain.ErrTxPending))
	assert.Equal(t, http.StatusServiceUnavailable, StatusOf(domain.ErrMinterDisabled))
	assert.Equal(t, http.StatusNotFound, StatusOf(xerrors.Errorf("x: %w", domain.ErrNotFound)))
}
