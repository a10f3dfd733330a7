package repository

import (
	"io"
	"net/http"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/base/log"
	"github.com/x-xyz/nftmint/domain"
)

// ErrTooLarge is returned when a resource exceeds the reader's size limit
var ErrTooLarge = xerrors.New("resource too large")

const defaultMaxBytes = 32 << 20

type HttpReaderCfg struct {
	Client   *http.Client
	Timeout  time.Duration
	Headers  map[string]string
	MaxBytes int64
}

type httpReaderRepo struct {
	client     *http.Client
	ctxTimeout time.Duration
	headers    map[string]string
	maxBytes   int64
}

func NewHttpReaderRepo(cfg HttpReaderCfg) domain.WebResourceReaderRepository {
	return newHttpReader(cfg)
}

func newHttpReader(cfg HttpReaderCfg) *httpReaderRepo {
	if cfg.Client == nil {
		cfg.Client = http.DefaultClient
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = defaultMaxBytes
	}
	return &httpReaderRepo{
		client:     cfg.Client,
		ctxTimeout: cfg.Timeout,
		headers:    cfg.Headers,
		maxBytes:   cfg.MaxBytes,
	}
}

func (r *httpReaderRepo) Get(c bCtx.Ctx, url string) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(c, r.ctxTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{"url": url, "err": err}).Warn("client.Do failed")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Warn("resp.StatusCode != 200")
		return nil, xerrors.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, r.maxBytes+1))
	if err != nil {
		ctx.WithFields(log.Fields{"url": url, "err": err}).Error("failed to read body")
		return nil, err
	}
	if int64(len(body)) > r.maxBytes {
		return nil, ErrTooLarge
	}
	return body, nil
}
