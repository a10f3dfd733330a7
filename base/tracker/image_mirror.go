package tracker

import (
	bCtx "github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/domain"
)

type ImageMirrorCfg struct {
	Metadata    domain.MetadataUseCase
	WebResource domain.WebResourceUseCase
	TokenIndex  domain.TokenIndexUseCase
}

type imageMirror struct {
	metadata    domain.MetadataUseCase
	webResource domain.WebResourceUseCase
	tokenIndex  domain.TokenIndexUseCase
}

// NewImageMirror copies the image of every new mint into object storage
func NewImageMirror(cfg *ImageMirrorCfg) MintListener {
	return &imageMirror{
		metadata:    cfg.Metadata,
		webResource: cfg.WebResource,
		tokenIndex:  cfg.TokenIndex,
	}
}

func (m *imageMirror) Name() string {
	return "image-mirror"
}

func (m *imageMirror) OnMint(c bCtx.Ctx, token *domain.IndexedToken) error {
	md, err := m.metadata.GetFromUrl(c, token.TokenURI)
	if err != nil {
		return err
	}
	url, err := m.webResource.Mirror(c, token.ChainId, token.ContractAddress, token.TokenId, md.Image)
	if err != nil {
		return err
	}
	return m.tokenIndex.SetImageMirror(c, token.ToId(), url)
}
