package tracker

import (
	"fmt"
	"math/big"
)

var (
	big1 = big.NewInt(1)
	big2 = big.NewInt(2)
)

type blockRange struct {
	begin *big.Int
	end   *big.Int // inclusive
}

func newBlockRange(begin, end uint64) *blockRange {
	return &blockRange{
		begin: new(big.Int).SetUint64(begin),
		end:   new(big.Int).SetUint64(end),
	}
}

func (r *blockRange) split() (*blockRange, *blockRange) {
	mid := new(big.Int).Add(r.begin, r.end)
	mid.Div(mid, big2)
	first := &blockRange{begin: r.begin, end: mid}
	second := &blockRange{begin: new(big.Int).Add(mid, big1), end: r.end}
	return first, second
}

func (r *blockRange) single() bool {
	return r.begin.Cmp(r.end) == 0
}

func (r *blockRange) String() string {
	return fmt.Sprintf("blockRange{%s-%s}", r.begin.String(), r.end.String())
}

// chunks cuts [from, to] into ranges of at most size blocks, size 0 means one range
func chunks(from, to, size uint64) []*blockRange {
	if from > to {
		return nil
	}
	if size == 0 {
		return []*blockRange{newBlockRange(from, to)}
	}
	res := []*blockRange{}
	for begin := from; begin <= to; begin += size {
		end := begin + size - 1
		if end > to || end < begin {
			end = to
		}
		res = append(res, newBlockRange(begin, end))
		if end == to {
			break
		}
	}
	return res
}
