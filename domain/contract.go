package domain

import (
	"fmt"
	"math/big"

	"github.com/x-xyz/nftmint/base/ctx"
)

// ContractInfo describes the single minting contract this service talks to
type ContractInfo struct {
	ChainId        ChainId `json:"chainId"`
	Address        Address `json:"address"`
	ExplorerUrl    string  `json:"explorerUrl"`
	MarketplaceUrl string  `json:"marketplaceUrl"`
}

// TokenExplorerUrl links a token on the block explorer
func (i *ContractInfo) TokenExplorerUrl(id TokenId) string {
	return fmt.Sprintf("%s/token/%s?a=%s", i.ExplorerUrl, i.Address, id)
}

// TokenMarketplaceUrl links a token on the marketplace
func (i *ContractInfo) TokenMarketplaceUrl(id TokenId) string {
	return fmt.Sprintf("%s/%s/%s", i.MarketplaceUrl, i.Address, id)
}

// MinterContract is the minting contract surface
type MinterContract interface {
	OwnerOf(c ctx.Ctx, tokenId *big.Int) (Address, error)
	TokenURI(c ctx.Ctx, tokenId *big.Int) (string, error)
	BalanceOf(c ctx.Ctx, owner Address) (*big.Int, error)
	// SafeMint signs and sends safeMint(to, uri), it does not wait for the receipt
	SafeMint(c ctx.Ctx, to Address, uri string) (TxHash, error)
}
