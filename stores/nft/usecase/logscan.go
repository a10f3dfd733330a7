package usecase

import (
	"sort"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/x-xyz/nftmint/base/abi"
	bCtx "github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/base/tracker"
	"github.com/x-xyz/nftmint/domain"
)

type LogScanCfg struct {
	Client   domain.EthClientRepo
	Contract domain.Address
	// StartBlock 0 means searching the deploy block once
	StartBlock    uint64
	MaxBlockRange uint64
	Resolver      domain.TokenResolver
}

type logScanEnumerator struct {
	client        domain.EthClientRepo
	contract      common.Address
	maxBlockRange uint64
	resolver      domain.TokenResolver

	mu         sync.Mutex
	startBlock uint64
}

// NewLogScanEnumerator replays Transfer logs of the contract to find the live tokens
func NewLogScanEnumerator(cfg *LogScanCfg) domain.TokenEnumerator {
	return &logScanEnumerator{
		client:        cfg.Client,
		contract:      common.HexToAddress(string(cfg.Contract)),
		maxBlockRange: cfg.MaxBlockRange,
		resolver:      cfg.Resolver,
		startBlock:    cfg.StartBlock,
	}
}

func (e *logScanEnumerator) deployedBlock(c bCtx.Ctx) (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.startBlock > 0 {
		return e.startBlock, nil
	}
	blk, err := tracker.DeployedBlock(c, e.client, e.contract)
	if err != nil {
		c.WithField("err", err).Error("tracker.DeployedBlock failed")
		return 0, err
	}
	e.startBlock = blk
	return blk, nil
}

func (e *logScanEnumerator) Enumerate(c bCtx.Ctx) ([]*domain.NftData, error) {
	defer met.BumpTime("logscan.time").End()

	from, err := e.deployedBlock(c)
	if err != nil {
		return nil, err
	}
	head, err := e.client.BlockNumber(c)
	if err != nil {
		c.WithField("err", err).Error("client.BlockNumber failed")
		return nil, err
	}

	owners := map[string]common.Address{}
	filter := ethereum.FilterQuery{
		Addresses: []common.Address{e.contract},
		Topics:    [][]common.Hash{{abi.TransferSig}},
	}
	err = tracker.FilterLogs(c, e.client, filter, from, head, e.maxBlockRange, func(_ bCtx.Ctx, _, _ uint64, logs []types.Log) error {
		for i := range logs {
			transfer, err := abi.ToTransferLog(&logs[i])
			if err != nil {
				continue
			}
			id := transfer.TokenId.String()
			if transfer.To == (common.Address{}) {
				delete(owners, id)
				continue
			}
			owners[id] = transfer.To
		}
		return nil
	})
	if err != nil {
		c.WithField("err", err).Error("tracker.FilterLogs failed")
		return nil, err
	}

	res := make([]*domain.NftData, 0, len(owners))
	for id, owner := range owners {
		res = append(res, &domain.NftData{TokenId: domain.TokenId(id), Owner: domain.Address(owner.Hex())})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].TokenId.Less(res[j].TokenId) })
	for _, d := range res {
		e.resolver.Resolve(c, d)
	}
	met.BumpAvg("logscan.count", float64(len(res)))
	return res, nil
}
