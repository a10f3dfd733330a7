package tracker

import (
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftmint/base/backoff"
	bCtx "github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/base/log"
	"github.com/x-xyz/nftmint/base/metrics"
	"github.com/x-xyz/nftmint/domain"
	"github.com/x-xyz/nftmint/service/query"
)

var metOnce sync.Once
var met metrics.Service

type EventHandler interface {
	GetFilterTopics() [][]common.Hash
	// ProcessEvents runs inside the same transaction as the tracker state update
	ProcessEvents(bCtx.Ctx, []Log) error
}

// Flusher is implemented by handlers with work to do after a batch is committed
type Flusher interface {
	Flush(bCtx.Ctx)
}

const Version = 1
const batchSize = 5
const headerRetries = 5

type EventTrackerCfg struct {
	ChainId          domain.ChainId
	Client           domain.EthClientRepo
	Mongo            query.Mongo
	TrackerStateRepo domain.TrackerStateRepo
	ContractAddress  common.Address
	Handler          EventHandler
	Tag              string

	// StartBlock 0 means searching the deploy block of the contract
	StartBlock     uint64
	PollInterval   time.Duration
	FollowDistance uint64
	MaxBlockRange  uint64
}

// EventTracker polls the contract logs and feeds them to the handler in block order.
// Progress is stored after every batch, a restart resumes from the last stored log.
type EventTracker struct {
	chainId        domain.ChainId
	client         domain.EthClientRepo
	q              query.Mongo
	stateRepo      domain.TrackerStateRepo
	contract       common.Address
	handler        EventHandler
	tag            string
	startBlock     uint64
	pollInterval   time.Duration
	followDistance uint64
	maxBlockRange  uint64
	filter         ethereum.FilterQuery
	state          *domain.TrackerState
}

func NewEventTracker(cfg *EventTrackerCfg) *EventTracker {
	metOnce.Do(func() {
		met = metrics.New("tracker")
	})
	tag := cfg.Tag
	if tag == "" {
		tag = domain.DefaultTag
	}
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = 12 * time.Second
	}
	return &EventTracker{
		chainId:        cfg.ChainId,
		client:         cfg.Client,
		q:              cfg.Mongo,
		stateRepo:      cfg.TrackerStateRepo,
		contract:       cfg.ContractAddress,
		handler:        cfg.Handler,
		tag:            tag,
		startBlock:     cfg.StartBlock,
		pollInterval:   interval,
		followDistance: cfg.FollowDistance,
		maxBlockRange:  cfg.MaxBlockRange,
		filter: ethereum.FilterQuery{
			Addresses: []common.Address{cfg.ContractAddress},
			Topics:    cfg.Handler.GetFilterTopics(),
		},
	}
}

// Run blocks until ctx is done or an error occurs
func (f *EventTracker) Run(ctx bCtx.Ctx) error {
	ctx = bCtx.WithLogFields(ctx, log.Fields{"contract": ToLowerHexStr(f.contract), "tag": f.tag})
	state, err := f.setupTrackerState(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("setupTrackerState failed")
		return err
	}
	f.state = state

	for {
		if err := f.poll(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			ctx.WithField("err", err).Error("f.poll failed")
			return err
		}
		timer := time.NewTimer(f.pollInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}

// LastBlockProcessed is the cursor of the last Run, 0 before any state was loaded.
// Read it only after Run has returned.
func (f *EventTracker) LastBlockProcessed() uint64 {
	if f.state == nil {
		return 0
	}
	return f.state.LastBlockProcessed
}

func (f *EventTracker) poll(ctx bCtx.Ctx) error {
	current, err := f.client.BlockNumber(ctx)
	if err != nil {
		return xerrors.Errorf("failed to get block number: %w", err)
	}
	met.BumpAvg("blockchain.lastBlock", float64(current), "chainId", fmt.Sprint(f.chainId))
	if current < f.followDistance {
		return nil
	}
	target := current - f.followDistance
	start := f.state.LastBlockProcessed
	if target < start {
		return nil
	}

	err = FilterLogs(ctx, f.client, f.filter, start, target, f.maxBlockRange, f.processLogs)
	if err != nil {
		return err
	}
	ctx.Info(fmt.Sprintf("process block range start=%d end=%d last=%d", start, target, f.state.LastBlockProcessed))
	met.BumpAvg("contract.lastBlock", float64(f.state.LastBlockProcessed), "chainId", fmt.Sprint(f.chainId))
	return nil
}

func (f *EventTracker) setupTrackerState(ctx bCtx.Ctx) (*domain.TrackerState, error) {
	id := &domain.TrackerStateId{
		ChainId:         f.chainId,
		ContractAddress: toDomainAddress(f.contract),
		Tag:             f.tag,
	}
	state, err := f.stateRepo.Get(ctx, id)
	if err == nil {
		if state.Version != Version {
			return nil, fmt.Errorf("cannot use tracker state version %d, want %d", state.Version, Version)
		}
		return state, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	start := f.startBlock
	if start == 0 {
		start, err = DeployedBlock(ctx, f.client, f.contract)
		if err != nil {
			ctx.WithField("err", err).Error("failed to get deployed block")
			return nil, err
		}
		ctx.WithField("deployedBlock", start).Info("got deployedBlock")
	}
	state = &domain.TrackerState{
		ChainId:               f.chainId,
		ContractAddress:       id.ContractAddress,
		Tag:                   f.tag,
		Version:               Version,
		LastBlockProcessed:    start,
		LastLogIndexProcessed: -1,
	}
	if err := f.stateRepo.Store(ctx, state); err != nil {
		ctx.WithField("err", err).Error("failed to store tracker state")
		return nil, err
	}
	return state, nil
}

func (f *EventTracker) processLogs(ctx bCtx.Ctx, from, to uint64, logs []types.Log) error {
	ctx.WithFields(log.Fields{
		"beginBlock": from,
		"endBlock":   to,
		"#logs":      len(logs),
	}).Info(fmt.Sprintf("received #%d logs", len(logs)))

	// skip processed logs
	nonProcessedIndex := 0
	for _, l := range logs {
		if l.BlockNumber > f.state.LastBlockProcessed {
			break
		}
		if l.BlockNumber == f.state.LastBlockProcessed && int64(l.Index) > f.state.LastLogIndexProcessed {
			break
		}
		nonProcessedIndex++
	}
	logs = logs[nonProcessedIndex:]

	withTime, err := f.toLogsWithBlockTime(ctx, logs)
	if err != nil {
		return xerrors.Errorf("failed to inject block time: %w", err)
	}

	for i := 0; i < len(withTime); i += batchSize {
		j := i + batchSize
		if j > len(withTime) {
			j = len(withTime)
		}
		batch := withTime[i:j]
		last := batch[len(batch)-1]
		if err := f.processEvents(ctx, batch, last.BlockNumber, int64(last.Index)); err != nil {
			ctx.WithField("err", err).Error("f.processEvents failed")
			return err
		}
	}

	// the whole range is done, continue from the next block
	return f.processEvents(ctx, nil, to+1, -1)
}

func (f *EventTracker) processEvents(ctx bCtx.Ctx, logs []Log, end uint64, logIndex int64) error {
	prev := *f.state
	run := func(c bCtx.Ctx) error {
		if len(logs) > 0 {
			if err := f.handler.ProcessEvents(c, logs); err != nil {
				return xerrors.Errorf("failed to process events: %w", err)
			}
		}
		f.state.LastBlockProcessed = end
		f.state.LastLogIndexProcessed = logIndex
		if err := f.stateRepo.Update(c, f.state); err != nil {
			return xerrors.Errorf("failed to store tracker state: %w", err)
		}
		return nil
	}
	if err := f.q.RunWithTransaction(ctx, run); err != nil {
		*f.state = prev
		return err
	}
	if flusher, ok := f.handler.(Flusher); ok && len(logs) > 0 {
		flusher.Flush(ctx)
	}
	return nil
}

func (f *EventTracker) toLogsWithBlockTime(ctx bCtx.Ctx, logs []types.Log) ([]Log, error) {
	var (
		lastBlk  uint64
		lastTime time.Time
	)
	res := make([]Log, len(logs))
	for idx, l := range logs {
		if idx == 0 || lastBlk != l.BlockNumber {
			t, err := f.blockTime(ctx, l.BlockNumber)
			if err != nil {
				ctx.WithFields(log.Fields{"err": err, "block": l.BlockNumber}).Error("failed to get blocktime")
				return nil, err
			}
			lastBlk = l.BlockNumber
			lastTime = t
		}
		res[idx] = Log{Log: l, BlockTime: lastTime}
	}
	return res, nil
}

func (f *EventTracker) blockTime(ctx bCtx.Ctx, blk uint64) (time.Time, error) {
	b := backoff.NewExponential(200*time.Millisecond, 5*time.Second)
	var lastErr error
	for i := 0; i < headerRetries; i++ {
		header, err := f.client.HeaderByNumber(ctx, new(big.Int).SetUint64(blk))
		if err == nil {
			return time.Unix(int64(header.Time), 0), nil
		}
		lastErr = err
		ctx.WithFields(log.Fields{"err": err, "block": blk, "retry": i}).Warn("HeaderByNumber failed")
		if err := b.Wait(ctx); err != nil {
			return time.Time{}, err
		}
	}
	return time.Time{}, lastErr
}
