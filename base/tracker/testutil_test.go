package tracker

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/x-xyz/nftmint/base/abi"
	bCtx "github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/service/query"
)

var (
	contractAddr = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	alice        = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	bob          = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
)

func transferLog(blk uint64, index uint, from, to common.Address, tokenId int64) types.Log {
	return types.Log{
		Address: contractAddr,
		Topics: []common.Hash{
			abi.TransferSig,
			common.BytesToHash(from.Bytes()),
			common.BytesToHash(to.Bytes()),
			common.BigToHash(big.NewInt(tokenId)),
		},
		BlockNumber: blk,
		Index:       index,
		TxHash:      common.BigToHash(new(big.Int).SetUint64(blk*1000 + uint64(index))),
	}
}

// directMongo runs transactions inline, only RunWithTransaction is usable
type directMongo struct {
	query.Mongo
	runs int
}

func (m *directMongo) RunWithTransaction(c bCtx.Ctx, run func(bCtx.Ctx) error) error {
	m.runs++
	return run(c)
}
