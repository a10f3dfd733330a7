package domain

import (
	"github.com/x-xyz/nftmint/base/ctx"
)

// Payment is a plain ether transfer made by a buyer's wallet
type Payment struct {
	TxHash      TxHash      `json:"txHash"`
	From        Address     `json:"from"`
	To          Address     `json:"to"`
	ValueWei    string      `json:"valueWei"`
	ValueEth    string      `json:"valueEth"`
	BlockNumber BlockNumber `json:"blockNumber"`
	Success     bool        `json:"success"`
}

type PaymentUseCase interface {
	// Verify checks the transaction was mined and paid the merchant
	Verify(ctx.Ctx, TxHash) (*Payment, error)
}
