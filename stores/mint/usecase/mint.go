package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftmint/base/abi"
	bCtx "github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/base/ethereum"
	"github.com/x-xyz/nftmint/base/log"
	"github.com/x-xyz/nftmint/base/metrics"
	"github.com/x-xyz/nftmint/base/validator"
	"github.com/x-xyz/nftmint/domain"
	"github.com/x-xyz/nftmint/service/chain"
	"github.com/x-xyz/nftmint/service/ens"
)

var met = metrics.New("mint")

const DefaultReceiptTimeout = 3 * time.Minute

type MintUseCaseCfg struct {
	Minter   domain.MinterContract
	Chain    chain.Client
	Contract *domain.ContractInfo
	// Ens is optional, without it recipients must be hex addresses
	Ens            ens.Resolver
	ReceiptTimeout time.Duration
}

type mintUseCase struct {
	minter         domain.MinterContract
	chain          chain.Client
	contract       *domain.ContractInfo
	ens            ens.Resolver
	receiptTimeout time.Duration
}

func NewMintUseCase(cfg *MintUseCaseCfg) domain.MintUseCase {
	timeout := cfg.ReceiptTimeout
	if timeout <= 0 {
		timeout = DefaultReceiptTimeout
	}
	return &mintUseCase{
		minter:         cfg.Minter,
		chain:          cfg.Chain,
		contract:       cfg.Contract,
		ens:            cfg.Ens,
		receiptTimeout: timeout,
	}
}

func (u *mintUseCase) recipient(c bCtx.Ctx, to string) (domain.Address, error) {
	to = strings.TrimSpace(to)
	if to == "" {
		return "", domain.ErrMissingWallet
	}
	if ens.IsName(to) {
		if u.ens == nil {
			return "", xerrors.Errorf("%w: ens is not supported", domain.ErrInvalidAddress)
		}
		addr, err := u.ens.Resolve(c, to)
		if errors.Is(err, domain.ErrNotFound) {
			return "", xerrors.Errorf("%w: %s is not registered", domain.ErrInvalidAddress, to)
		} else if err != nil {
			c.WithFields(log.Fields{"err": err, "name": to}).Error("ens.Resolve failed")
			return "", err
		}
		return addr, nil
	}
	if !validator.IsValidAddress(to) {
		return "", xerrors.Errorf("%w: %s", domain.ErrInvalidAddress, to)
	}
	return domain.Address(common.HexToAddress(to).Hex()), nil
}

// Mint sends safeMint and waits for its receipt. When the receipt does not show up in time the
// partial result is returned together with domain.ErrTxPending.
func (u *mintUseCase) Mint(c bCtx.Ctx, req *domain.MintRequest) (*domain.MintResult, error) {
	defer met.BumpTime("mint.time").End()

	to, err := u.recipient(c, req.To)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.TokenURI) == "" {
		return nil, xerrors.Errorf("%w: tokenURI is required", domain.ErrBadParamInput)
	}

	hash, err := u.minter.SafeMint(c, to, req.TokenURI)
	if errors.Is(err, chain.ErrNoSigner) {
		return nil, domain.ErrMinterDisabled
	} else if err != nil {
		met.BumpSum("mint.err", 1, "stage", "send")
		return nil, xerrors.Errorf("%w: %v", domain.ErrMintFailed, err)
	}
	c = bCtx.WithLogFields(c, log.Fields{"txHash": hash, "to": to})
	c.Info("safeMint sent")

	res := &domain.MintResult{
		TxHash: hash,
		To:     to,
	}

	tc, cancel := bCtx.WithTimeout(c, u.receiptTimeout)
	defer cancel()
	receipt, err := u.chain.WaitReceipt(tc, common.HexToHash(string(hash)))
	if err != nil {
		if c.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
			c.Warn("receipt not found in time")
			return res, domain.ErrTxPending
		}
		met.BumpSum("mint.err", 1, "stage", "receipt")
		c.WithField("err", err).Error("chain.WaitReceipt failed")
		return nil, xerrors.Errorf("%w: %v", domain.ErrMintFailed, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		met.BumpSum("mint.err", 1, "stage", "reverted")
		c.Error("safeMint reverted")
		return nil, xerrors.Errorf("%w: transaction reverted", domain.ErrMintFailed)
	}

	tokenId, err := u.mintedTokenId(receipt, to)
	if err != nil {
		c.WithField("err", err).Error("mintedTokenId failed")
		return nil, xerrors.Errorf("%w: %v", domain.ErrMintFailed, err)
	}

	res.TokenId = tokenId
	res.FeeEth = ethereum.WeiToEth(ethereum.TxFee(receipt.GasUsed, receipt.EffectiveGasPrice)).String()
	res.ExplorerUrl = u.contract.TokenExplorerUrl(tokenId)
	res.MarketplaceUrl = u.contract.TokenMarketplaceUrl(tokenId)
	met.BumpSum("mint.success", 1)
	c.WithField("tokenId", tokenId).Info("minted")
	return res, nil
}

func (u *mintUseCase) mintedTokenId(receipt *types.Receipt, to domain.Address) (domain.TokenId, error) {
	contract := common.HexToAddress(string(u.contract.Address))
	recipient := common.HexToAddress(string(to))
	for _, l := range receipt.Logs {
		if l.Address != contract {
			continue
		}
		transfer, err := abi.ToTransferLog(l)
		if err != nil {
			continue
		}
		if transfer.From == (common.Address{}) && transfer.To == recipient {
			return domain.TokenIdFromBig(transfer.TokenId), nil
		}
	}
	return "", errors.New("no mint Transfer log in receipt")
}
