package domain

import (
	"time"

	"github.com/x-xyz/nftmint/base/ctx"
)

// IndexedToken is the indexer's persisted view of one token
type IndexedToken struct {
	ChainId         ChainId     `bson:"chainId"`
	ContractAddress Address     `bson:"contractAddress"`
	TokenId         TokenId     `bson:"tokenId"`
	Owner           Address     `bson:"owner"`
	TokenURI        string      `bson:"tokenURI"`
	ImageMirrorUrl  string      `bson:"imageMirrorUrl,omitempty"`
	Burned          bool        `bson:"burned"`
	MintedBlock     BlockNumber `bson:"mintedBlock"`
	MintTxHash      TxHash      `bson:"mintTxHash"`
	UpdatedBlock    BlockNumber `bson:"updatedBlock"`
	UpdatedAt       time.Time   `bson:"updatedAt"`
}

func (t *IndexedToken) ToId() *IndexedTokenId {
	return &IndexedTokenId{
		ChainId:         t.ChainId,
		ContractAddress: t.ContractAddress,
		TokenId:         t.TokenId,
	}
}

type IndexedTokenId struct {
	ChainId         ChainId `bson:"chainId"`
	ContractAddress Address `bson:"contractAddress"`
	TokenId         TokenId `bson:"tokenId"`
}

type TokenIndexRepo interface {
	FindAll(c ctx.Ctx, chainId ChainId, contract Address) ([]*IndexedToken, error)
	FindOne(ctx.Ctx, *IndexedTokenId) (*IndexedToken, error)
	Upsert(ctx.Ctx, *IndexedToken) error
	// SetImageMirror only touches the mirror url so it cannot race with transfers
	SetImageMirror(c ctx.Ctx, id *IndexedTokenId, url string) error
}

type TokenIndexUseCase interface {
	// Transfer applies one Transfer log to the index
	Transfer(c ctx.Ctx, chainId ChainId, e *TransferEvent) (*IndexedToken, error)
	// FindLive returns tokens that are not burned, ascending by token id
	FindLive(c ctx.Ctx, chainId ChainId, contract Address) ([]*IndexedToken, error)
	SetImageMirror(c ctx.Ctx, id *IndexedTokenId, url string) error
}
