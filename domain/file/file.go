package file

import (
	"io"

	"github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/domain"
)

// UploadResult is what a pin produces: the content identifier and the gateway
// URL derived from it.
type UploadResult struct {
	Cid string `json:"cid"`
	Url string `json:"url"`
}

type Usecase interface {
	// Upload forwards the file unmodified to the pinning provider
	Upload(c ctx.Ctx, file io.Reader, filename string) (*UploadResult, error)
	// UploadMetadata pins the token metadata document
	UploadMetadata(c ctx.Ctx, metadata *domain.NftMetadata) (*UploadResult, error)
}
