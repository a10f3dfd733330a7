package repository

import (
	"bytes"
	"io"
	"net/url"
	"time"

	"cloud.google.com/go/storage"
	"github.com/gabriel-vasile/mimetype"

	bCtx "github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/base/log"
	"github.com/x-xyz/nftmint/domain"
)

type CloudStorageWriterRepoCfg struct {
	Timeout    time.Duration
	Client     *storage.Client
	BucketName string
	// Url is the public base url of the bucket
	Url string
}

type cloudStorageWriterRepo struct {
	client     *storage.Client
	bucketName string
	ctxTimeout time.Duration
	baseUrl    *url.URL
}

func NewCloudStorageWriterRepo(cfg *CloudStorageWriterRepoCfg) (domain.WebResourceWriterRepository, error) {
	baseUrl, err := url.Parse(cfg.Url)
	if err != nil {
		return nil, err
	}
	return &cloudStorageWriterRepo{
		client:     cfg.Client,
		bucketName: cfg.BucketName,
		ctxTimeout: cfg.Timeout,
		baseUrl:    baseUrl,
	}, nil
}

func (r *cloudStorageWriterRepo) Store(c bCtx.Ctx, path string, body []byte, contentType string) (string, error) {
	publicUrl, err := resolveObjectUrl(r.baseUrl, path)
	if err != nil {
		c.WithFields(log.Fields{"path": path, "err": err}).Error("failed to parse path")
		return "", err
	}
	if contentType == "" {
		contentType = mimetype.Detect(body).String()
	}

	ctx, cancel := bCtx.WithTimeout(c, r.ctxTimeout)
	defer cancel()

	w := r.client.Bucket(r.bucketName).Object(path).NewWriter(ctx)
	w.ObjectAttrs.ContentType = contentType
	w.ObjectAttrs.CacheControl = "public, max-age=86400"
	if _, err := io.Copy(w, bytes.NewReader(body)); err != nil {
		ctx.WithField("err", err).Error("io.Copy failed")
		_ = w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		ctx.WithField("err", err).Error("writer.Close failed")
		return "", err
	}
	return publicUrl, nil
}

func resolveObjectUrl(base *url.URL, path string) (string, error) {
	p, err := url.Parse(path)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(p).String(), nil
}
