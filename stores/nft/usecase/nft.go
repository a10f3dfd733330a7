package usecase

import (
	"math/big"

	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/base/log"
	"github.com/x-xyz/nftmint/base/metrics"
	"github.com/x-xyz/nftmint/domain"
)

var met = metrics.New("nft")

const DefaultNextIdCeiling = 10000

type NftUseCaseCfg struct {
	Minter     domain.MinterContract
	Enumerator domain.TokenEnumerator
	Resolver   domain.TokenResolver
	// NextIdCeiling bounds the NextTokenId probe, 0 means DefaultNextIdCeiling
	NextIdCeiling uint64
}

type nftUseCase struct {
	minter        domain.MinterContract
	enumerator    domain.TokenEnumerator
	resolver      domain.TokenResolver
	nextIdCeiling uint64
}

func NewNftUseCase(cfg *NftUseCaseCfg) domain.NftUseCase {
	ceiling := cfg.NextIdCeiling
	if ceiling == 0 {
		ceiling = DefaultNextIdCeiling
	}
	return &nftUseCase{
		minter:        cfg.Minter,
		enumerator:    cfg.Enumerator,
		resolver:      cfg.Resolver,
		nextIdCeiling: ceiling,
	}
}

func (u *nftUseCase) GetAll(c bCtx.Ctx) ([]*domain.NftData, error) {
	return u.enumerator.Enumerate(c)
}

func (u *nftUseCase) GetOne(c bCtx.Ctx, tokenId domain.TokenId) (*domain.NftData, error) {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return nil, err
	}
	owner, err := u.minter.OwnerOf(c, id)
	if err != nil {
		if c.Err() != nil {
			return nil, c.Err()
		}
		c.WithFields(log.Fields{"err": err, "tokenId": tokenId}).Info("ownerOf failed")
		return nil, xerrors.Errorf("token %s: %w", tokenId, domain.ErrNotFound)
	}
	d := &domain.NftData{
		TokenId: domain.TokenIdFromBig(id),
		Owner:   owner,
	}
	u.resolver.Resolve(c, d)
	return d, nil
}

// NextTokenId probes linearly, ids after a burned token would fool a binary search
func (u *nftUseCase) NextTokenId(c bCtx.Ctx) (domain.TokenId, error) {
	for i := uint64(0); i < u.nextIdCeiling; i++ {
		id := new(big.Int).SetUint64(i)
		if _, err := u.minter.OwnerOf(c, id); err != nil {
			if c.Err() != nil {
				return "", c.Err()
			}
			return domain.TokenIdFromBig(id), nil
		}
	}
	c.WithField("ceiling", u.nextIdCeiling).Warn("every probed token id exists")
	return domain.TokenIdFromUint(u.nextIdCeiling), nil
}

func (u *nftUseCase) BalanceOf(c bCtx.Ctx, owner domain.Address) (uint64, error) {
	balance, err := u.minter.BalanceOf(c, owner)
	if err != nil {
		return 0, err
	}
	if !balance.IsUint64() {
		return 0, xerrors.Errorf("balance %s overflows uint64", balance.String())
	}
	return balance.Uint64(), nil
}

type EnumeratorCfg struct {
	Strategy         domain.NftStrategy
	MaxTokensToCheck uint64
	Minter           domain.MinterContract
	Resolver         domain.TokenResolver
	LogScan          *LogScanCfg
	Index            *IndexCfg
}

// NewEnumerator builds the enumerator for the configured strategy, index falls back to probe
func NewEnumerator(cfg *EnumeratorCfg) (domain.TokenEnumerator, error) {
	probe := NewProbeEnumerator(cfg.Minter, cfg.Resolver, cfg.MaxTokensToCheck)
	switch cfg.Strategy {
	case "", domain.NftStrategyProbe:
		return probe, nil
	case domain.NftStrategyLogScan:
		if cfg.LogScan == nil {
			return nil, xerrors.Errorf("%w: logscan not configured", domain.ErrInvalidStrategy)
		}
		lc := *cfg.LogScan
		lc.Resolver = cfg.Resolver
		return NewLogScanEnumerator(&lc), nil
	case domain.NftStrategyIndex:
		if cfg.Index == nil {
			return nil, xerrors.Errorf("%w: index not configured", domain.ErrInvalidStrategy)
		}
		ic := *cfg.Index
		ic.Resolver = cfg.Resolver
		ic.Fallback = probe
		return NewIndexEnumerator(&ic), nil
	}
	return nil, xerrors.Errorf("%w: %s", domain.ErrInvalidStrategy, cfg.Strategy)
}
