package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftmint/service/cache"
	"github.com/x-xyz/nftmint/service/cache/provider/local"
)

type cacheMiddlewareSuite struct {
	suite.Suite
	e     *echo.Echo
	calls int
}

func TestCacheMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(cacheMiddlewareSuite))
}

func (s *cacheMiddlewareSuite) SetupTest() {
	s.calls = 0
	svc := cache.New(cache.Cfg{
		Ttl:      time.Minute,
		Pfx:      "httpcache",
		Provider: local.New("http", 1),
	})

	m := InitMiddleware()
	s.e = echo.New()
	s.e.Use(m.AddContext())
	s.e.GET("/nfts", func(c echo.Context) error {
		s.calls++
		return c.JSON(http.StatusOK, []int{s.calls})
	}, CacheHttp(svc))
	s.e.GET("/fail", func(c echo.Context) error {
		s.calls++
		return c.JSON(http.StatusInternalServerError, "nope")
	}, CacheHttp(svc))
}

func (s *cacheMiddlewareSuite) get(path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func (s *cacheMiddlewareSuite) TestHit() {
	first := s.get("/nfts?b=2&a=1")
	s.Equal(http.StatusOK, first.Code)
	s.Equal("MISS", first.Header().Get(cacheHeader))

	second := s.get("/nfts?a=1&b=2")
	s.Equal(http.StatusOK, second.Code)
	s.Equal("HIT", second.Header().Get(cacheHeader))
	s.Equal(first.Body.String(), second.Body.String())
	s.Equal(echo.MIMEApplicationJSONCharsetUTF8, second.Header().Get(echo.HeaderContentType))
	s.Equal(1, s.calls)
}

func (s *cacheMiddlewareSuite) TestErrorsNotCached() {
	s.Equal(http.StatusInternalServerError, s.get("/fail").Code)
	s.Equal(http.StatusInternalServerError, s.get("/fail").Code)
	s.Equal(2, s.calls)
}

func TestCacheHttpBehindGzip(t *testing.T) {
	svc := cache.New(cache.Cfg{
		Ttl:      time.Minute,
		Pfx:      "httpcache",
		Provider: local.New("gzip", 1),
	})
	e := echo.New()
	e.Use(echoMiddleware.Gzip())
	e.Use(InitMiddleware().AddContext())
	e.GET("/nfts", func(c echo.Context) error {
		return c.JSON(http.StatusOK, []string{"0", "1"})
	}, CacheHttp(svc))

	get := func(acceptGzip bool) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/nfts", nil)
		if acceptGzip {
			req.Header.Set(echo.HeaderAcceptEncoding, "gzip")
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}
	gunzip := func(rec *httptest.ResponseRecorder) string {
		r, err := gzip.NewReader(rec.Body)
		require.NoError(t, err)
		b, err := io.ReadAll(r)
		require.NoError(t, err)
		return string(b)
	}

	first := get(true)
	require.Equal(t, "MISS", first.Header().Get(cacheHeader))
	require.Equal(t, "gzip", first.Header().Get(echo.HeaderContentEncoding))
	body := gunzip(first)

	plain := get(false)
	require.Equal(t, "HIT", plain.Header().Get(cacheHeader))
	assert.Empty(t, plain.Header().Get(echo.HeaderContentEncoding))
	assert.Equal(t, body, plain.Body.String())

	zipped := get(true)
	require.Equal(t, "HIT", zipped.Header().Get(cacheHeader))
	require.Equal(t, "gzip", zipped.Header().Get(echo.HeaderContentEncoding))
	assert.Equal(t, body, gunzip(zipped))
	assert.Equal(t, []string{echo.HeaderAcceptEncoding}, zipped.Header().Values(echo.HeaderVary))
}

func TestCacheKey(t *testing.T) {
	a, _ := url.Parse("/x?b=2&a=1&a=0")
	b, _ := url.Parse("/x?a=0&a=1&b=2")
	c, _ := url.Parse("/y?a=0&a=1&b=2")
	assert.Equal(t, cacheKey(a), cacheKey(b))
	assert.NotEqual(t, cacheKey(a), cacheKey(c))
}
