package ens

import (
	"strings"

	"github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/domain"
)

// Resolver maps ENS names to addresses
type Resolver interface {
	// Resolve returns domain.ErrNotFound for unregistered names
	Resolve(c ctx.Ctx, name string) (domain.Address, error)
}

// IsName reports whether s looks like an ENS name rather than a hex address
func IsName(s string) bool {
	return strings.Contains(s, ".") && !strings.HasPrefix(s, "0x")
}
