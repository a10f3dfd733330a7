package domain

import "time"

type LogMeta struct {
	BlockNumber     BlockNumber
	BlockTime       time.Time
	TxHash          TxHash
	TxIndex         uint
	LogIndex        uint
	ContractAddress Address
}

type TransferEvent struct {
	From    Address
	To      Address
	TokenId TokenId
	LogMeta
}

func (e *TransferEvent) IsMint() bool {
	return e.From.Equals(EmptyAddress)
}

func (e *TransferEvent) IsBurn() bool {
	return e.To.Equals(EmptyAddress)
}
