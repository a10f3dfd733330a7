package domain

import (
	"github.com/x-xyz/nftmint/base/ctx"
)

type MintRequest struct {
	// To is the recipient, a hex address or an ENS name
	To       string `json:"to"`
	TokenURI string `json:"tokenURI" validate:"required"`
}

type MintResult struct {
	TxHash         TxHash  `json:"txHash"`
	TokenId        TokenId `json:"tokenId"`
	To             Address `json:"to"`
	FeeEth         string  `json:"feeEth"`
	ExplorerUrl    string  `json:"explorerUrl"`
	MarketplaceUrl string  `json:"marketplaceUrl"`
}

type MintUseCase interface {
	Mint(ctx.Ctx, *MintRequest) (*MintResult, error)
}
