package contract

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/x-xyz/nftmint/base/abi"
	bCtx "github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/base/log"
	"github.com/x-xyz/nftmint/domain"
	"github.com/x-xyz/nftmint/service/chain"
)

type minter struct {
	client  chain.Client
	address common.Address
}

func NewMinter(client chain.Client, address domain.Address) domain.MinterContract {
	return &minter{
		client:  client,
		address: common.HexToAddress(string(address)),
	}
}

func (m *minter) OwnerOf(ctx bCtx.Ctx, tokenId *big.Int) (domain.Address, error) {
	unpacked, err := m.client.Call(ctx, m.address, abi.MinterABI, "ownerOf", tokenId)
	if err != nil {
		return "", err
	}
	return domain.Address(unpacked[0].(common.Address).Hex()), nil
}

func (m *minter) TokenURI(ctx bCtx.Ctx, tokenId *big.Int) (string, error) {
	unpacked, err := m.client.Call(ctx, m.address, abi.MinterABI, "tokenURI", tokenId)
	if err != nil {
		return "", err
	}
	return unpacked[0].(string), nil
}

func (m *minter) BalanceOf(ctx bCtx.Ctx, owner domain.Address) (*big.Int, error) {
	unpacked, err := m.client.Call(ctx, m.address, abi.MinterABI, "balanceOf", common.HexToAddress(string(owner)))
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"owner": owner,
		}).Error("balanceOf failed")
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (m *minter) SafeMint(ctx bCtx.Ctx, to domain.Address, uri string) (domain.TxHash, error) {
	tx, err := m.client.Transact(ctx, m.address, abi.MinterABI, "safeMint", common.HexToAddress(string(to)), uri)
	if err != nil {
		return "", err
	}
	return domain.TxHash(tx.Hash().Hex()), nil
}
