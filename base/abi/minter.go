package abi

import (
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// MinterABI covers the ERC-721 surface of the minting contract plus its safeMint entry point
var MinterABI abi.ABI

var minterABI = `[{"type":"function","name":"safeMint","stateMutability":"nonpayable","inputs":[{"type":"address","name":"to"},{"type":"string","name":"uri"}],"outputs":[]},{"type":"function","name":"tokenURI","stateMutability":"view","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"string"}]},{"type":"function","name":"ownerOf","stateMutability":"view","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"address"}]},{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"type":"address","name":"owner"}],"outputs":[{"type":"uint256"}]},{"type":"function","name":"supportsInterface","stateMutability":"view","inputs":[{"type":"bytes4","name":"interfaceId"}],"outputs":[{"type":"bool"}]},{"type":"event","anonymous":false,"name":"Transfer","inputs":[{"type":"address","name":"from","indexed":true},{"type":"address","name":"to","indexed":true},{"type":"uint256","name":"tokenId","indexed":true}]}]`

// TransferSig is topic[0] of the ERC-721 Transfer event
var TransferSig common.Hash

var ErrNotTransferLog = errors.New("not an erc721 transfer log")

func init() {
	_abi, err := abi.JSON(strings.NewReader(minterABI))
	if err != nil {
		panic("Failed to parse minter abi")
	}
	MinterABI = _abi
	TransferSig = MinterABI.Events["Transfer"].ID
}

type TransferLog struct {
	From    common.Address // indexed
	To      common.Address // indexed
	TokenId *big.Int       // indexed
}

// ToTransferLog decodes an ERC-721 Transfer. ERC-20 Transfer shares the
// signature but indexes only two topics, those are rejected.
func ToTransferLog(log *types.Log) (*TransferLog, error) {
	if len(log.Topics) != 4 || log.Topics[0] != TransferSig {
		return nil, ErrNotTransferLog
	}
	return &TransferLog{
		From:    common.BytesToAddress(log.Topics[1].Bytes()),
		To:      common.BytesToAddress(log.Topics[2].Bytes()),
		TokenId: new(big.Int).SetBytes(log.Topics[3].Bytes()),
	}, nil
}
