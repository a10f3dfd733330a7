package ethereum

import (
	"math/big"

	"github.com/shopspring/decimal"
)

const etherDecimals = 18

// WeiToEth renders a wei amount in ether
func WeiToEth(wei *big.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wei, -etherDecimals)
}

// EthToWei parses an ether amount such as "0.000001"
func EthToWei(eth string) (*big.Int, error) {
	d, err := decimal.NewFromString(eth)
	if err != nil {
		return nil, err
	}
	return d.Shift(etherDecimals).BigInt(), nil
}

// TxFee is gasUsed * effectiveGasPrice of a mined transaction
func TxFee(gasUsed uint64, effectiveGasPrice *big.Int) *big.Int {
	if effectiveGasPrice == nil {
		return new(big.Int)
	}
	return new(big.Int).Mul(new(big.Int).SetUint64(gasUsed), effectiveGasPrice)
}
