package repository

import (
	"strings"

	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/domain"
)

const arUriSchema = "ar://"

// prefixReader maps a content path onto an http gateway
type prefixReader struct {
	http   *httpReaderRepo
	prefix string
}

// NewIpfsGatewayReaderRepo reads "<cid>[/path]" through gateway, e.g. https://ipfs.io/ipfs
func NewIpfsGatewayReaderRepo(gateway string, cfg HttpReaderCfg) domain.WebResourceReaderRepository {
	return &prefixReader{
		http:   newHttpReader(cfg),
		prefix: strings.TrimSuffix(gateway, "/") + "/",
	}
}

func (r *prefixReader) Get(c bCtx.Ctx, cid string) ([]byte, error) {
	return r.http.Get(c, r.prefix+strings.TrimPrefix(cid, "/"))
}

type arReaderRepo struct {
	gateway *prefixReader
}

// NewArReaderRepo reads ar:// uris through arweave.net
func NewArReaderRepo(cfg HttpReaderCfg) domain.WebResourceReaderRepository {
	return &arReaderRepo{&prefixReader{
		http:   newHttpReader(cfg),
		prefix: "https://arweave.net/",
	}}
}

func (r *arReaderRepo) Get(c bCtx.Ctx, uri string) ([]byte, error) {
	if !strings.HasPrefix(uri, arUriSchema) {
		return nil, xerrors.Errorf("invalid ar uri")
	}
	return r.gateway.Get(c, strings.TrimPrefix(uri, arUriSchema))
}
