package usecase

import (
	"errors"
	"sort"

	bCtx "github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/base/log"
	"github.com/x-xyz/nftmint/base/metrics"
	"github.com/x-xyz/nftmint/domain"
)

var met = metrics.New("token_index")

type TokenIndexUseCaseCfg struct {
	Repo domain.TokenIndexRepo
	// Minter fills tokenURI on mint, nil leaves it for readers to resolve
	Minter domain.MinterContract
}

type tokenIndexUseCase struct {
	repo   domain.TokenIndexRepo
	minter domain.MinterContract
}

func NewTokenIndexUseCase(cfg *TokenIndexUseCaseCfg) domain.TokenIndexUseCase {
	return &tokenIndexUseCase{
		repo:   cfg.Repo,
		minter: cfg.Minter,
	}
}

func (u *tokenIndexUseCase) Transfer(c bCtx.Ctx, chainId domain.ChainId, e *domain.TransferEvent) (*domain.IndexedToken, error) {
	c = bCtx.WithLogFields(c, log.Fields{"tokenId": e.TokenId, "block": e.BlockNumber, "tx": e.TxHash})

	id := &domain.IndexedTokenId{
		ChainId:         chainId,
		ContractAddress: e.ContractAddress,
		TokenId:         e.TokenId,
	}
	token, err := u.repo.FindOne(c, id)
	if errors.Is(err, domain.ErrNotFound) {
		token = &domain.IndexedToken{
			ChainId:         chainId,
			ContractAddress: e.ContractAddress,
			TokenId:         e.TokenId,
		}
	} else if err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return nil, err
	}

	if token.UpdatedBlock > e.BlockNumber {
		c.WithField("updatedBlock", token.UpdatedBlock).Warn("stale transfer ignored")
		return token, nil
	}

	if e.IsMint() {
		token.MintedBlock = e.BlockNumber
		token.MintTxHash = e.TxHash
		if token.TokenURI == "" {
			token.TokenURI = u.tokenURI(c, e.TokenId)
		}
		met.BumpSum("mint", 1)
	}
	token.Owner = e.To
	token.Burned = e.IsBurn()
	token.UpdatedBlock = e.BlockNumber
	token.UpdatedAt = e.BlockTime

	if err := u.repo.Upsert(c, token); err != nil {
		c.WithField("err", err).Error("repo.Upsert failed")
		return nil, err
	}
	return token, nil
}

func (u *tokenIndexUseCase) tokenURI(c bCtx.Ctx, tokenId domain.TokenId) string {
	if u.minter == nil {
		return ""
	}
	id, err := tokenId.ToBigInt()
	if err != nil {
		return ""
	}
	uri, err := u.minter.TokenURI(c, id)
	if err != nil {
		c.WithField("err", err).Warn("minter.TokenURI failed")
		return ""
	}
	return uri
}

func (u *tokenIndexUseCase) FindLive(c bCtx.Ctx, chainId domain.ChainId, contract domain.Address) ([]*domain.IndexedToken, error) {
	all, err := u.repo.FindAll(c, chainId, contract)
	if err != nil {
		c.WithField("err", err).Error("repo.FindAll failed")
		return nil, err
	}

	live := make([]*domain.IndexedToken, 0, len(all))
	for _, t := range all {
		if !t.Burned {
			live = append(live, t)
		}
	}
	sort.Slice(live, func(i, j int) bool {
		return live[i].TokenId.Less(live[j].TokenId)
	})
	return live, nil
}

func (u *tokenIndexUseCase) SetImageMirror(c bCtx.Ctx, id *domain.IndexedTokenId, url string) error {
	if err := u.repo.SetImageMirror(c, id, url); err != nil {
		c.WithFields(log.Fields{"err": err, "id": id}).Error("repo.SetImageMirror failed")
		return err
	}
	return nil
}
