package usecase

import (
	"encoding/json"
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	bCtx "github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/base/log"
	"github.com/x-xyz/nftmint/domain"
)

type WebResourceUseCaseCfg struct {
	HttpReader         domain.WebResourceReaderRepository
	IpfsReader         domain.WebResourceReaderRepository
	DataUriReader      domain.WebResourceReaderRepository
	ArUriReader        domain.WebResourceReaderRepository
	CloudStorageWriter domain.WebResourceWriterRepository
	// GatewayHosts are extra gateway hosts whose /ipfs/ urls are retried through IpfsReader
	GatewayHosts []string
}

type webResourceUseCase struct {
	httpReader         domain.WebResourceReaderRepository
	ipfsReader         domain.WebResourceReaderRepository
	dataUriReader      domain.WebResourceReaderRepository
	arUriReader        domain.WebResourceReaderRepository
	cloudStorageWriter domain.WebResourceWriterRepository
	gatewayPrefixes    []string
}

var (
	defaultGatewayHosts = []string{"gateway.pinata.cloud", "ipfs.io", "cloudflare-ipfs.com", "dweb.link"}
	dedicatedPinata     = regexp.MustCompile(`^https://[^/]+\.mypinata\.cloud/ipfs/`)
)

func NewWebResourceUseCase(cfg *WebResourceUseCaseCfg) domain.WebResourceUseCase {
	prefixes := []string{}
	for _, h := range append(defaultGatewayHosts, cfg.GatewayHosts...) {
		h = strings.TrimPrefix(strings.TrimPrefix(h, "https://"), "http://")
		prefixes = append(prefixes, "https://"+strings.TrimSuffix(h, "/")+"/ipfs/")
	}
	return &webResourceUseCase{
		httpReader:         cfg.HttpReader,
		ipfsReader:         cfg.IpfsReader,
		dataUriReader:      cfg.DataUriReader,
		arUriReader:        cfg.ArUriReader,
		cloudStorageWriter: cfg.CloudStorageWriter,
		gatewayPrefixes:    prefixes,
	}
}

func (u *webResourceUseCase) Get(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	return u.get(c, rawUrl, true)
}

func (u *webResourceUseCase) GetJson(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	data, err := u.get(c, rawUrl, true)
	if err != nil {
		return nil, err
	}
	if !json.Valid(data) {
		c.WithField("url", rawUrl).Warn("invalid json")
		return nil, domain.ErrInvalidJsonFormat
	}
	return data, nil
}

func (u *webResourceUseCase) get(c bCtx.Ctx, rawUrl string, fallback bool) ([]byte, error) {
	pUrl, err := url.Parse(rawUrl)
	if err != nil {
		c.WithFields(log.Fields{"url": rawUrl, "err": err}).Warn("url.Parse failed")
		return nil, domain.ErrUnsupportedSchema
	}

	var reader domain.WebResourceReaderRepository
	target := rawUrl
	switch pUrl.Scheme {
	case "https", "http":
		reader = u.httpReader
	case "ipfs":
		reader = u.ipfsReader
		target = strings.TrimPrefix(rawUrl, "ipfs://")
		target = strings.TrimPrefix(target, "ipfs/")
	case "data":
		reader = u.dataUriReader
	case "ar":
		reader = u.arUriReader
	default:
		return nil, domain.ErrUnsupportedSchema
	}
	if reader == nil {
		return nil, domain.ErrUnsupportedSchema
	}

	data, err := reader.Get(c, target)
	if err == nil {
		return data, nil
	}

	if fallback && pUrl.Scheme == "https" {
		if ipfsUrl := u.toIpfsUrl(rawUrl); ipfsUrl != "" {
			c.WithFields(log.Fields{"url": rawUrl, "ipfsUrl": ipfsUrl}).Info("falling back to ipfs")
			return u.get(c, ipfsUrl, false)
		}
	}

	c.WithFields(log.Fields{
		"schema": pUrl.Scheme,
		"url":    rawUrl,
		"err":    err,
	}).Warn("failed to fetch")
	return nil, err
}

func (u *webResourceUseCase) Mirror(c bCtx.Ctx, chainId domain.ChainId, contract domain.Address, tokenId domain.TokenId, rawUrl string) (string, error) {
	if u.cloudStorageWriter == nil {
		return "", domain.ErrUnsupportedSchema
	}

	data, err := u.Get(c, rawUrl)
	if err != nil {
		return "", err
	}

	mime := mimetype.Detect(data)
	objPath := path.Join(
		fmt.Sprintf("%d", chainId),
		contract.ToLowerStr(),
		fmt.Sprintf("%s.image%s", tokenId, mime.Extension()),
	)
	res, err := u.cloudStorageWriter.Store(c, objPath, data, mime.String())
	if err != nil {
		c.WithFields(log.Fields{"path": objPath, "err": err}).Error("cloudStorageWriter.Store failed")
		return "", err
	}
	return res, nil
}

func (u *webResourceUseCase) toIpfsUrl(rawUrl string) string {
	for _, p := range u.gatewayPrefixes {
		if strings.HasPrefix(rawUrl, p) {
			return "ipfs://" + strings.TrimPrefix(rawUrl, p)
		}
	}
	if dedicatedPinata.MatchString(rawUrl) {
		return dedicatedPinata.ReplaceAllLiteralString(rawUrl, "ipfs://")
	}
	return ""
}
