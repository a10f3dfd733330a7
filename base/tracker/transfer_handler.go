package tracker

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/viney-shih/goroutines"

	"github.com/x-xyz/nftmint/base/abi"
	bCtx "github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/base/log"
	"github.com/x-xyz/nftmint/domain"
)

const listenerScheduleTimeout = 3 * time.Second

// MintListener is told about newly minted tokens once they are committed to the index
type MintListener interface {
	Name() string
	OnMint(bCtx.Ctx, *domain.IndexedToken) error
}

type TransferHandlerCfg struct {
	ChainId    domain.ChainId
	TokenIndex domain.TokenIndexUseCase
	Listeners  []MintListener
	// Workers bounds concurrent listener calls, 0 means 8
	Workers int
}

type TransferHandler struct {
	chainId    domain.ChainId
	tokenIndex domain.TokenIndexUseCase
	listeners  []MintListener
	pool       *goroutines.Pool
	minted     []*domain.IndexedToken
}

func NewTransferHandler(cfg *TransferHandlerCfg) *TransferHandler {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 8
	}
	return &TransferHandler{
		chainId:    cfg.ChainId,
		tokenIndex: cfg.TokenIndex,
		listeners:  cfg.Listeners,
		pool:       goroutines.NewPool(workers, goroutines.WithTaskQueueLength(1024), goroutines.WithPreAllocWorkers(1)),
	}
}

func (h *TransferHandler) GetFilterTopics() [][]common.Hash {
	return [][]common.Hash{
		{
			abi.TransferSig,
		},
	}
}

func (h *TransferHandler) ProcessEvents(c bCtx.Ctx, logs []Log) error {
	// a failed transaction is retried from scratch, forget what it minted
	h.minted = nil
	for i := range logs {
		l := &logs[i]
		transfer, err := abi.ToTransferLog(&l.Log)
		if err != nil {
			c.WithFields(log.Fields{"err": err, "txHash": l.TxHash.Hex()}).Warn("not an erc721 transfer, skipping")
			continue
		}
		e := &domain.TransferEvent{
			From:    toDomainAddress(transfer.From),
			To:      toDomainAddress(transfer.To),
			TokenId: domain.TokenIdFromBig(transfer.TokenId),
			LogMeta: toLogMeta(l),
		}
		token, err := h.tokenIndex.Transfer(c, h.chainId, e)
		if err != nil {
			c.WithFields(log.Fields{"err": err, "tokenId": e.TokenId}).Error("tokenIndex.Transfer failed")
			return err
		}
		if e.IsMint() {
			h.minted = append(h.minted, token)
		}
	}
	return nil
}

// Flush hands the committed mints to the listeners, failures are only logged
func (h *TransferHandler) Flush(c bCtx.Ctx) {
	minted := h.minted
	h.minted = nil
	for _, token := range minted {
		for _, listener := range h.listeners {
			token, listener := token, listener
			err := h.pool.ScheduleWithTimeout(listenerScheduleTimeout, func() {
				if err := listener.OnMint(c, token); err != nil {
					c.WithFields(log.Fields{
						"err":      err,
						"listener": listener.Name(),
						"tokenId":  token.TokenId,
					}).Error("listener.OnMint failed")
				}
			})
			if err != nil {
				c.WithFields(log.Fields{
					"err":      err,
					"listener": listener.Name(),
					"tokenId":  token.TokenId,
				}).Error("failed to schedule listener")
			}
		}
	}
}

// Close waits for running listeners
func (h *TransferHandler) Close() {
	h.pool.Release()
}
