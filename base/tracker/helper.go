package tracker

import (
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/core/types"

	"github.com/x-xyz/nftmint/domain"
)

type Hexable interface {
	Hex() string
}

func ToLowerHexStr(h Hexable) string {
	return strings.ToLower(h.Hex())
}

func toDomainAddress(h Hexable) domain.Address {
	return domain.Address(ToLowerHexStr(h))
}

// Log is a chain log with the time of its block
type Log struct {
	types.Log
	BlockTime time.Time
}

func toLogMeta(l *Log) domain.LogMeta {
	return domain.LogMeta{
		BlockNumber:     domain.BlockNumber(l.BlockNumber),
		BlockTime:       l.BlockTime,
		TxHash:          domain.TxHash(ToLowerHexStr(l.TxHash)),
		TxIndex:         l.TxIndex,
		LogIndex:        l.Index,
		ContractAddress: toDomainAddress(l.Address),
	}
}
