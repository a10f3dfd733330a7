package usecase

import (
	"math/big"

	bCtx "github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/base/log"
	"github.com/x-xyz/nftmint/domain"
)

const DefaultMaxTokensToCheck = 100

type probeEnumerator struct {
	minter   domain.MinterContract
	resolver domain.TokenResolver
	ceiling  uint64
}

// NewProbeEnumerator walks ownerOf and tokenURI from id 0 and stops at the first failing chain call or at ceiling.
// Minting is assumed dense from 0, a burned or unreachable id ends the list early.
func NewProbeEnumerator(minter domain.MinterContract, resolver domain.TokenResolver, ceiling uint64) domain.TokenEnumerator {
	if ceiling == 0 {
		ceiling = DefaultMaxTokensToCheck
	}
	return &probeEnumerator{
		minter:   minter,
		resolver: resolver,
		ceiling:  ceiling,
	}
}

func (e *probeEnumerator) Enumerate(c bCtx.Ctx) ([]*domain.NftData, error) {
	defer met.BumpTime("probe.time").End()

	res := []*domain.NftData{}
	for i := uint64(0); i < e.ceiling; i++ {
		id := new(big.Int).SetUint64(i)
		owner, err := e.minter.OwnerOf(c, id)
		if err != nil {
			if c.Err() != nil {
				return nil, c.Err()
			}
			c.WithFields(log.Fields{"err": err, "tokenId": i}).Info("ownerOf failed, end of tokens")
			break
		}
		uri, err := e.minter.TokenURI(c, id)
		if err != nil {
			if c.Err() != nil {
				return nil, c.Err()
			}
			c.WithFields(log.Fields{"err": err, "tokenId": i}).Info("tokenURI failed, end of tokens")
			break
		}
		d := &domain.NftData{
			TokenId:  domain.TokenIdFromBig(id),
			Owner:    owner,
			TokenURI: uri,
		}
		// only metadata is left to resolve, its failures keep the record
		e.resolver.Resolve(c, d)
		res = append(res, d)
	}
	met.BumpAvg("probe.count", float64(len(res)))
	return res, nil
}
