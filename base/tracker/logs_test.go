package tracker

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/domain/mocks"
)

var errTooMany = errors.New("query returned more than 10000 results")

// rangeLimitedLogs serves one log per block and rejects ranges wider than limit blocks
func rangeLimitedLogs(limit uint64) (func(context.Context, ethereum.FilterQuery) []types.Log, func(context.Context, ethereum.FilterQuery) error) {
	tooWide := func(q ethereum.FilterQuery) bool {
		return q.ToBlock.Uint64()-q.FromBlock.Uint64()+1 > limit
	}
	logs := func(_ context.Context, q ethereum.FilterQuery) []types.Log {
		if tooWide(q) {
			return nil
		}
		res := []types.Log{}
		for b := q.FromBlock.Uint64(); b <= q.ToBlock.Uint64(); b++ {
			res = append(res, transferLog(b, 0, common.Address{}, alice, int64(b)))
		}
		return res
	}
	errs := func(_ context.Context, q ethereum.FilterQuery) error {
		if tooWide(q) {
			return errTooMany
		}
		return nil
	}
	return logs, errs
}

func TestFilterLogsSplitsInOrder(t *testing.T) {
	req := require.New(t)
	client := mocks.NewEthClientRepo(t)
	logs, errs := rangeLimitedLogs(3)
	client.On("FilterLogs", mock.Anything, mock.Anything).Return(logs, errs)

	var blocks []uint64
	var lastTo uint64
	err := FilterLogs(bCtx.Background(), client, ethereum.FilterQuery{}, 10, 29, 10, func(c bCtx.Ctx, from, to uint64, ls []types.Log) error {
		req.True(from > lastTo || lastTo == 0)
		lastTo = to
		for _, l := range ls {
			blocks = append(blocks, l.BlockNumber)
		}
		return nil
	})
	req.NoError(err)
	req.Len(blocks, 20)
	for i, b := range blocks {
		req.Equal(uint64(10+i), b)
	}
	req.Equal(uint64(29), lastTo)
}

func TestFilterLogsSingleBlockFailure(t *testing.T) {
	req := require.New(t)
	client := mocks.NewEthClientRepo(t)
	client.On("FilterLogs", mock.Anything, mock.Anything).Return(nil, errTooMany)

	called := false
	err := FilterLogs(bCtx.Background(), client, ethereum.FilterQuery{}, 5, 6, 0, func(bCtx.Ctx, uint64, uint64, []types.Log) error {
		called = true
		return nil
	})
	req.ErrorIs(err, errTooMany)
	req.False(called)
}

func TestFilterLogsStopsOnCallbackError(t *testing.T) {
	req := require.New(t)
	client := mocks.NewEthClientRepo(t)
	logs, errs := rangeLimitedLogs(100)
	client.On("FilterLogs", mock.Anything, mock.Anything).Return(logs, errs).Once()

	boom := errors.New("boom")
	err := FilterLogs(bCtx.Background(), client, ethereum.FilterQuery{}, 0, 19, 10, func(bCtx.Ctx, uint64, uint64, []types.Log) error {
		return boom
	})
	req.ErrorIs(err, boom)
}
