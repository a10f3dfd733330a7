package usecase

import (
	"errors"
	"math/big"
	"regexp"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/base/ethereum"
	"github.com/x-xyz/nftmint/base/log"
	"github.com/x-xyz/nftmint/base/validator"
	"github.com/x-xyz/nftmint/domain"
)

var txHashRe = regexp.MustCompile("^0x[0-9a-fA-F]{64}$")

type PaymentUseCaseCfg struct {
	ChainId  domain.ChainId
	Client   domain.EthClientRepo
	Merchant domain.Address
	// MinAmountWei is optional, smaller payments are rejected
	MinAmountWei *big.Int
}

type paymentUseCase struct {
	client   domain.EthClientRepo
	signer   types.Signer
	merchant common.Address
	min      *big.Int
}

// NewPaymentUseCase fails with domain.ErrInvalidAddress when the merchant is unset, malformed or the zero address
func NewPaymentUseCase(cfg *PaymentUseCaseCfg) (domain.PaymentUseCase, error) {
	if !validator.IsValidAddress(string(cfg.Merchant)) {
		return nil, xerrors.Errorf("merchant %q: %w", cfg.Merchant, domain.ErrInvalidAddress)
	}
	merchant := common.HexToAddress(string(cfg.Merchant))
	if merchant == (common.Address{}) {
		return nil, xerrors.Errorf("merchant is the zero address: %w", domain.ErrInvalidAddress)
	}
	return &paymentUseCase{
		client:   cfg.Client,
		signer:   types.LatestSignerForChainID(big.NewInt(int64(cfg.ChainId))),
		merchant: merchant,
		min:      cfg.MinAmountWei,
	}, nil
}

// Verify returns domain.ErrTxPending with the known fields while the transaction is not mined
func (u *paymentUseCase) Verify(c bCtx.Ctx, hash domain.TxHash) (*domain.Payment, error) {
	if !txHashRe.MatchString(string(hash)) {
		return nil, domain.ErrInvalidTxHash
	}
	h := common.HexToHash(string(hash))
	c = bCtx.WithLogFields(c, log.Fields{"txHash": hash})

	tx, pending, err := u.client.TransactionByHash(c, h)
	if errors.Is(err, goethereum.NotFound) {
		return nil, xerrors.Errorf("tx %s: %w", hash, domain.ErrNotFound)
	} else if err != nil {
		c.WithField("err", err).Error("client.TransactionByHash failed")
		return nil, err
	}

	from, err := types.Sender(u.signer, tx)
	if err != nil {
		c.WithField("err", err).Error("types.Sender failed")
		return nil, err
	}
	p := &domain.Payment{
		TxHash:   hash.ToLower(),
		From:     domain.Address(from.Hex()),
		ValueWei: tx.Value().String(),
		ValueEth: ethereum.WeiToEth(tx.Value()).String(),
	}
	if tx.To() != nil {
		p.To = domain.Address(tx.To().Hex())
	}

	if tx.To() == nil || *tx.To() != u.merchant {
		return p, xerrors.Errorf("%w: paid to %s", domain.ErrPaymentMismatch, p.To)
	}
	if u.min != nil && tx.Value().Cmp(u.min) < 0 {
		return p, xerrors.Errorf("%w: %s ETH is below the price", domain.ErrPaymentMismatch, p.ValueEth)
	}
	if pending {
		return p, domain.ErrTxPending
	}

	receipt, err := u.client.TransactionReceipt(c, h)
	if errors.Is(err, goethereum.NotFound) {
		return p, domain.ErrTxPending
	} else if err != nil {
		c.WithField("err", err).Error("client.TransactionReceipt failed")
		return nil, err
	}
	p.BlockNumber = domain.BlockNumber(receipt.BlockNumber.Uint64())
	p.Success = receipt.Status == types.ReceiptStatusSuccessful
	return p, nil
}
