package usecase

import (
	"github.com/ethereum/go-ethereum/common"

	bCtx "github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/domain"
)

type IndexCfg struct {
	ChainId    domain.ChainId
	Contract   domain.Address
	TokenIndex domain.TokenIndexUseCase
	Resolver   domain.TokenResolver
	// Fallback serves requests until the indexer has written anything
	Fallback domain.TokenEnumerator
}

type indexEnumerator struct {
	chainId    domain.ChainId
	contract   domain.Address
	tokenIndex domain.TokenIndexUseCase
	resolver   domain.TokenResolver
	fallback   domain.TokenEnumerator
}

// NewIndexEnumerator reads the token index written by the indexer
func NewIndexEnumerator(cfg *IndexCfg) domain.TokenEnumerator {
	return &indexEnumerator{
		chainId:    cfg.ChainId,
		contract:   cfg.Contract.ToLower(),
		tokenIndex: cfg.TokenIndex,
		resolver:   cfg.Resolver,
		fallback:   cfg.Fallback,
	}
}

func (e *indexEnumerator) Enumerate(c bCtx.Ctx) ([]*domain.NftData, error) {
	tokens, err := e.tokenIndex.FindLive(c, e.chainId, e.contract)
	if err != nil {
		c.WithField("err", err).Error("tokenIndex.FindLive failed")
		return nil, err
	}
	if len(tokens) == 0 && e.fallback != nil {
		met.BumpSum("index.fallback", 1)
		return e.fallback.Enumerate(c)
	}

	res := make([]*domain.NftData, 0, len(tokens))
	for _, t := range tokens {
		d := &domain.NftData{
			TokenId:  t.TokenId,
			Owner:    domain.Address(common.HexToAddress(string(t.Owner)).Hex()),
			TokenURI: t.TokenURI,
		}
		e.resolver.Resolve(c, d)
		res = append(res, d)
	}
	return res, nil
}
