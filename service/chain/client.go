package chain

import (
	"crypto/ecdsa"
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	bCtx "github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/base/log"
	"github.com/x-xyz/nftmint/base/metrics"
	"github.com/x-xyz/nftmint/domain"
)

var (
	ErrNoSigner = errors.New("no signer configured")

	met = metrics.New("chain")
)

const defaultReceiptPollInterval = 2 * time.Second

type ClientCfg struct {
	ChainId int64
	Backend domain.EthTransactorRepo
	// Signer is optional, without it Transact fails with ErrNoSigner
	Signer              *ecdsa.PrivateKey
	ReceiptPollInterval time.Duration
}

type Client interface {
	ChainId() int64
	// Call packs method, runs eth_call at the latest block and unpacks the outputs
	Call(c bCtx.Ctx, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error)
	// Transact signs and sends method as a transaction from the configured signer
	Transact(c bCtx.Ctx, addr common.Address, _abi abi.ABI, method string, params ...interface{}) (*types.Transaction, error)
	// WaitReceipt polls until the transaction is mined or c is done
	WaitReceipt(c bCtx.Ctx, hash common.Hash) (*types.Receipt, error)
	SignerAddress() (common.Address, bool)
}

type clientImpl struct {
	chainId      int64
	backend      domain.EthTransactorRepo
	signer       *ecdsa.PrivateKey
	pollInterval time.Duration
}

func Dial(ctx bCtx.Ctx, url string) (*ethclient.Client, error) {
	client, err := ethclient.DialContext(ctx, url)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"url": url,
		}).Error("ethclient.DialContext failed")
		return nil, err
	}
	return client, nil
}

func NewClient(cfg *ClientCfg) Client {
	interval := cfg.ReceiptPollInterval
	if interval <= 0 {
		interval = defaultReceiptPollInterval
	}
	return &clientImpl{
		chainId:      cfg.ChainId,
		backend:      cfg.Backend,
		signer:       cfg.Signer,
		pollInterval: interval,
	}
}

func (c *clientImpl) ChainId() int64 {
	return c.chainId
}

func (c *clientImpl) SignerAddress() (common.Address, bool) {
	if c.signer == nil {
		return common.Address{}, false
	}
	return bind.NewKeyedTransactor(c.signer).From, true
}

func (c *clientImpl) Call(ctx bCtx.Ctx, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	defer met.BumpTime("call.latency", "method", method).End()

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := c.backend.CallContract(ctx, msg, nil)
	if err != nil {
		met.BumpSum("call.err", 1, "method", method)
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		met.BumpSum("call.err", 1, "method", method)
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) Transact(ctx bCtx.Ctx, addr common.Address, _abi abi.ABI, method string, params ...interface{}) (*types.Transaction, error) {
	if c.signer == nil {
		return nil, ErrNoSigner
	}
	opts, err := bind.NewKeyedTransactorWithChainID(c.signer, new(big.Int).SetInt64(c.chainId))
	if err != nil {
		ctx.WithField("err", err).Error("bind.NewKeyedTransactorWithChainID failed")
		return nil, err
	}
	opts.Context = ctx

	contract := bind.NewBoundContract(addr, _abi, c.backend, c.backend, c.backend)
	tx, err := contract.Transact(opts, method, params...)
	if err != nil {
		met.BumpSum("transact.err", 1, "method", method)
		ctx.WithFields(log.Fields{
			"err":    err,
			"method": method,
			"from":   opts.From.Hex(),
		}).Error("contract.Transact failed")
		return nil, err
	}
	ctx.WithFields(log.Fields{
		"method": method,
		"txHash": tx.Hash().Hex(),
		"nonce":  tx.Nonce(),
	}).Info("transaction sent")
	return tx, nil
}

func (c *clientImpl) WaitReceipt(ctx bCtx.Ctx, hash common.Hash) (*types.Receipt, error) {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()
	for {
		receipt, err := c.backend.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			ctx.WithFields(log.Fields{
				"err":    err,
				"txHash": hash.Hex(),
			}).Warn("TransactionReceipt failed")
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
