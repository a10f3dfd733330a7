package middleware

import (
	"bufio"
	"bytes"
	"hash/fnv"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/service/cache"
)

const cacheHeader = "X-Cache"

// the body is stored as the handler wrote it, encoding headers belong to the request being answered
var uncachedHeaders = []string{
	cacheHeader,
	echo.HeaderXRequestID,
	echo.HeaderContentEncoding,
	echo.HeaderContentLength,
	echo.HeaderVary,
}

// Response is the cached response
type Response struct {
	Status int         `json:"status"`
	Value  []byte      `json:"value"`
	Header http.Header `json:"header"`
}

type bodyDumpResponseWriter struct {
	statusCode int
	io.Writer
	http.ResponseWriter
}

func (w *bodyDumpResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyDumpResponseWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

func (w *bodyDumpResponseWriter) Flush() {
	w.ResponseWriter.(http.Flusher).Flush()
}

func (w *bodyDumpResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return w.ResponseWriter.(http.Hijacker).Hijack()
}

func cacheKey(u *url.URL) string {
	params := u.Query()
	for _, p := range params {
		sort.Strings(p)
	}
	// Encode sorts by key
	key := u.Path + "?" + params.Encode()

	hash := fnv.New64a()
	hash.Write([]byte(key))
	return strconv.FormatUint(hash.Sum64(), 36)
}

// CacheHttp caches successful GET responses in svc, keyed by path and sorted query
func CacheHttp(svc cache.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}

			cont, ok := c.Get("ctx").(ctx.Ctx)
			if !ok {
				cont = ctx.Background()
			}
			key := cacheKey(c.Request().URL)

			cached := Response{}
			if err := svc.Get(cont, key, &cached); err == nil {
				for k, v := range cached.Header {
					c.Response().Header()[k] = v
				}
				c.Response().Header().Set(cacheHeader, "HIT")
				c.Response().WriteHeader(cached.Status)
				_, err := c.Response().Write(cached.Value)
				return err
			}

			body := new(bytes.Buffer)
			writer := &bodyDumpResponseWriter{
				statusCode:     http.StatusOK,
				Writer:         io.MultiWriter(c.Response().Writer, body),
				ResponseWriter: c.Response().Writer,
			}
			c.Response().Writer = writer
			c.Response().Header().Set(cacheHeader, "MISS")

			if err := next(c); err != nil {
				return err
			}

			if writer.statusCode >= 200 && writer.statusCode < 300 {
				header := writer.Header().Clone()
				for _, h := range uncachedHeaders {
					header.Del(h)
				}
				if err := svc.Set(cont, key, Response{
					Status: writer.statusCode,
					Value:  body.Bytes(),
					Header: header,
				}); err != nil {
					cont.WithField("err", err).Warn("cache.Set failed")
				}
			}
			return nil
		}
	}
}
