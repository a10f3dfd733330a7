package tracker

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	bCtx "github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/domain"
)

// DeployedBlock binary searches the first block where addr has code. Needs an archive node.
func DeployedBlock(c bCtx.Ctx, client domain.EthClientRepo, addr common.Address) (uint64, error) {
	blk, err := client.BlockNumber(c)
	if err != nil {
		return 0, err
	}
	l := blk
	s := blk
	for l > 0 {
		step := l / 2
		mid := s - step - 1
		b, err := client.CodeAt(c, addr, new(big.Int).SetUint64(mid))
		if err != nil {
			return 0, err
		}
		if len(b) > 0 {
			s = mid
			l -= step + 1
		} else {
			l = step
		}
	}
	return s, nil
}
