package domain

import (
	"github.com/x-xyz/nftmint/base/ctx"
)

type MetadataUseCase interface {
	// GetFromUrl fetches and decodes the metadata a tokenURI points at
	GetFromUrl(ctx.Ctx, string) (*NftMetadata, error)
}
