package ens

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	goens "github.com/wealdtech/go-ens/v3"

	"github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/domain"
	"github.com/x-xyz/nftmint/domain/keys"
	"github.com/x-xyz/nftmint/service/cache"
)

type resolveFunc func(backend bind.ContractBackend, name string) (string, error)

type impl struct {
	backend bind.ContractBackend
	cache   cache.Service
	resolve resolveFunc
}

func goensResolve(backend bind.ContractBackend, name string) (string, error) {
	addr, err := goens.Resolve(backend, name)
	if err != nil {
		return "", err
	}
	return addr.Hex(), nil
}

func New(backend bind.ContractBackend, cache cache.Service) Resolver {
	return &impl{
		backend: backend,
		cache:   cache,
		resolve: goensResolve,
	}
}

func (im *impl) Resolve(c ctx.Ctx, name string) (domain.Address, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	res := domain.Address("")
	err := im.cache.GetOrLoad(c, keys.RedisKey(keys.PfxEns, name), &res, func() (interface{}, error) {
		addr, err := im.resolve(im.backend, name)
		if err != nil && isUnregistered(err) {
			// cached too, unregistered names are looked up as often as registered ones
			val := domain.Address("")
			return &val, nil
		} else if err != nil {
			c.WithField("err", err).WithField("name", name).Error("goens.Resolve failed")
			return nil, err
		}
		val := domain.Address(addr).ToLower()
		return &val, nil
	})
	if err != nil {
		return "", err
	}
	if res.IsEmpty() || res.Equals(domain.EmptyAddress) {
		return "", domain.ErrNotFound
	}
	return res, nil
}

func isUnregistered(err error) bool {
	msg := err.Error()
	return msg == "unregistered name" || msg == "no address" || strings.Contains(msg, "no resolver")
}
