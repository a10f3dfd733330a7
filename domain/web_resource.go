package domain

import (
	"github.com/x-xyz/nftmint/base/ctx"
)

type WebResourceReaderRepository interface {
	Get(ctx.Ctx, string) ([]byte, error)
}

type WebResourceWriterRepository interface {
	// Store writes data under path and returns its public url
	Store(c ctx.Ctx, path string, data []byte, contentType string) (string, error)
}

type WebResourceUseCase interface {
	Get(ctx.Ctx, string) ([]byte, error)
	GetJson(ctx.Ctx, string) ([]byte, error)
	// Mirror copies the resource at url into object storage under the token's path
	Mirror(c ctx.Ctx, chainId ChainId, contract Address, tokenId TokenId, url string) (string, error)
}
