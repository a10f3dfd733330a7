package tracker

import (
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"

	bCtx "github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/base/log"
	"github.com/x-xyz/nftmint/domain"
)

const TooManyLogsTimeout = 30 * time.Second

// RangeFunc receives the logs of one fetched range, ranges arrive in ascending block order
type RangeFunc func(c bCtx.Ctx, from, to uint64, logs []types.Log) error

// FilterLogs fetches logs of filter over [from, to] in chunks of maxRange blocks. A chunk the
// provider rejects (too many results, timeout) is halved until it succeeds or is a single block.
func FilterLogs(c bCtx.Ctx, client domain.EthClientRepo, filter ethereum.FilterQuery, from, to, maxRange uint64, fn RangeFunc) error {
	for _, chunk := range chunks(from, to, maxRange) {
		ranges := []*blockRange{chunk}
		for len(ranges) > 0 {
			idx := len(ranges) - 1
			r := ranges[idx]
			ranges = ranges[:idx]

			q := filter
			q.FromBlock = r.begin
			q.ToBlock = r.end
			tc, cancel := bCtx.WithTimeout(c, TooManyLogsTimeout)
			logs, err := client.FilterLogs(tc, q)
			cancel()

			if err != nil {
				if c.Err() != nil {
					return c.Err()
				}
				if r.single() {
					c.WithFields(log.Fields{"err": err, "range": r.String()}).Error("failed to get logs within one block")
					return err
				}
				r1, r2 := r.split()
				ranges = append(ranges, r2, r1)
				c.WithFields(log.Fields{
					"err":           err,
					"originalRange": r.String(),
					"range1":        r1.String(),
					"range2":        r2.String(),
				}).Info("splitting blockRange")
				continue
			}

			if err := fn(c, r.begin.Uint64(), r.end.Uint64(), logs); err != nil {
				return err
			}
		}
	}
	return nil
}
