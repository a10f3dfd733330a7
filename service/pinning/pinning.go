package pinning

import (
	"errors"
	"io"

	"github.com/x-xyz/nftmint/base/ctx"
)

var (
	ErrRequestFailed = errors.New("pinning request failed")
	ErrEmptyCid      = errors.New("pinning provider returned no cid")
)

type PinMetadata struct {
	Name string `json:"name,omitempty"`
}

type CidVersion uint8

const (
	CidVersion0 CidVersion = 0
	CidVersion1 CidVersion = 1
)

type PinOptions struct {
	Metadata   *PinMetadata
	CidVersion *CidVersion
}

type Options func(*PinOptions)

func GetPinOptions(opts ...Options) *PinOptions {
	res := &PinOptions{}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

func WithName(name string) Options {
	return func(o *PinOptions) {
		if o.Metadata == nil {
			o.Metadata = &PinMetadata{}
		}
		o.Metadata.Name = name
	}
}

func WithCidVersion(v CidVersion) Options {
	return func(o *PinOptions) {
		o.CidVersion = &v
	}
}

// Service stores content on IPFS and keeps it pinned. Both calls return the content identifier.
type Service interface {
	Pin(c ctx.Ctx, file io.Reader, filename string, opts ...Options) (string, error)
	PinJson(c ctx.Ctx, value interface{}, opts ...Options) (string, error)
}
