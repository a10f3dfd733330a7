package domain

import (
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/xerrors"
)

type ChainId int64

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

// TokenId is the decimal form of a uint256 token id
type TokenId string

func (i TokenId) String() string {
	return string(i)
}

func (i TokenId) ToBigInt() (*big.Int, error) {
	id, ok := new(big.Int).SetString(i.String(), 10)
	if !ok || id.Sign() < 0 {
		return nil, xerrors.Errorf("%w: %s", ErrInvalidTokenId, i)
	}
	return id, nil
}

func TokenIdFromBig(id *big.Int) TokenId {
	return TokenId(id.String())
}

func TokenIdFromUint(id uint64) TokenId {
	return TokenId(fmt.Sprint(id))
}

// Less compares token ids numerically
func (i TokenId) Less(j TokenId) bool {
	a, errA := i.ToBigInt()
	b, errB := j.ToBigInt()
	if errA != nil || errB != nil {
		return i < j
	}
	return a.Cmp(b) < 0
}

type BlockNumber uint64

type TxHash string

func (h TxHash) ToLower() TxHash {
	return TxHash(strings.ToLower(string(h)))
}
