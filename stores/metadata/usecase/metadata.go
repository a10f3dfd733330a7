package usecase

import (
	"encoding/json"

	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/base/metrics"
	"github.com/x-xyz/nftmint/domain"
	"github.com/x-xyz/nftmint/domain/keys"
	"github.com/x-xyz/nftmint/service/cache"
)

var met = metrics.New("metadata")

type MetadataUseCaseCfg struct {
	WebResource domain.WebResourceUseCase
	// Cache is optional, tokenURIs are immutable so entries can live long
	Cache cache.Service
}

type metadataUseCase struct {
	webResource domain.WebResourceUseCase
	cache       cache.Service
}

func NewMetadataUseCase(cfg *MetadataUseCaseCfg) domain.MetadataUseCase {
	return &metadataUseCase{
		webResource: cfg.WebResource,
		cache:       cfg.Cache,
	}
}

func (u *metadataUseCase) GetFromUrl(c bCtx.Ctx, tokenURI string) (*domain.NftMetadata, error) {
	if tokenURI == "" {
		return nil, domain.ErrUnsupportedSchema
	}
	if u.cache == nil {
		return u.fetch(c, tokenURI)
	}

	res := &domain.NftMetadata{}
	err := u.cache.GetOrLoad(c, keys.RedisKey(keys.PfxMetadata, keys.MD5(tokenURI)), res, func() (interface{}, error) {
		met.BumpSum("cache.miss", 1)
		return u.fetch(c, tokenURI)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (u *metadataUseCase) fetch(c bCtx.Ctx, tokenURI string) (*domain.NftMetadata, error) {
	defer met.BumpTime("fetch.time").End()

	data, err := u.webResource.GetJson(c, tokenURI)
	if err != nil {
		met.BumpSum("fetch.err", 1)
		return nil, err
	}

	res := &domain.NftMetadata{}
	if err := json.Unmarshal(data, res); err != nil {
		// valid json of the wrong shape, e.g. an array
		c.WithField("err", err).WithField("url", tokenURI).Warn("json.Unmarshal failed")
		return nil, xerrors.Errorf("%w: %s", domain.ErrInvalidJsonFormat, err.Error())
	}
	return res, nil
}
