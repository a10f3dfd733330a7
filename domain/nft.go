package domain

import (
	"github.com/x-xyz/nftmint/base/ctx"
)

// NftMetadata is the JSON document a tokenURI points at
type NftMetadata struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Image       string `json:"image" validate:"required,uri"`
}

// NftData is one minted token as shown to the user. Owner and TokenURI come
// from the contract, Metadata is resolved from TokenURI and may be missing.
type NftData struct {
	TokenId  TokenId      `json:"tokenId"`
	Owner    Address      `json:"owner"`
	TokenURI string       `json:"tokenURI"`
	Metadata *NftMetadata `json:"metadata,omitempty"`
}

type NftStrategy string

const (
	// NftStrategyProbe walks ownerOf from id 0 until the first failure
	NftStrategyProbe NftStrategy = "probe"
	// NftStrategyLogScan replays Transfer logs from the deploy block
	NftStrategyLogScan NftStrategy = "logscan"
	// NftStrategyIndex reads the token index kept by the indexer
	NftStrategyIndex NftStrategy = "index"
)

type NftUseCase interface {
	// GetAll lists minted tokens in ascending token id order
	GetAll(ctx.Ctx) ([]*NftData, error)
	GetOne(ctx.Ctx, TokenId) (*NftData, error)
	// NextTokenId returns the first id whose ownerOf fails
	NextTokenId(ctx.Ctx) (TokenId, error)
	BalanceOf(ctx.Ctx, Address) (uint64, error)
}

// TokenResolver fills TokenURI and Metadata of a record in place. A failed
// lookup leaves the field unset, the record is kept.
type TokenResolver interface {
	Resolve(ctx.Ctx, *NftData)
}

// TokenEnumerator discovers the live tokens of the contract in ascending id
// order. Each record is resolved before the next id is looked up.
type TokenEnumerator interface {
	Enumerate(ctx.Ctx) ([]*NftData, error)
}
