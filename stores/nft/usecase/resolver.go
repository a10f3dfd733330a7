package usecase

import (
	bCtx "github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/base/log"
	"github.com/x-xyz/nftmint/domain"
)

type resolver struct {
	minter   domain.MinterContract
	metadata domain.MetadataUseCase
}

// NewTokenResolver looks up tokenURI on the contract when the record has none, then its metadata
func NewTokenResolver(minter domain.MinterContract, metadata domain.MetadataUseCase) domain.TokenResolver {
	return &resolver{minter: minter, metadata: metadata}
}

func (r *resolver) Resolve(c bCtx.Ctx, d *domain.NftData) {
	if d.TokenURI == "" {
		id, err := d.TokenId.ToBigInt()
		if err != nil {
			c.WithFields(log.Fields{"err": err, "tokenId": d.TokenId}).Warn("invalid token id")
			return
		}
		uri, err := r.minter.TokenURI(c, id)
		if err != nil {
			met.BumpSum("resolve.tokenURI.err", 1)
			c.WithFields(log.Fields{"err": err, "tokenId": d.TokenId}).Warn("minter.TokenURI failed")
			return
		}
		d.TokenURI = uri
	}
	if d.TokenURI == "" {
		return
	}

	md, err := r.metadata.GetFromUrl(c, d.TokenURI)
	if err != nil {
		met.BumpSum("resolve.metadata.err", 1)
		c.WithFields(log.Fields{
			"err":      err,
			"tokenId":  d.TokenId,
			"tokenURI": d.TokenURI,
		}).Warn("metadata.GetFromUrl failed")
		return
	}
	d.Metadata = md
}
