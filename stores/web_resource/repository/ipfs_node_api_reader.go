package repository

import (
	"io"
	"time"

	ipfsapi "github.com/ipfs/go-ipfs-api"

	"github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/domain"
)

type ipfsNodeApiReaderRepo struct {
	shell      *ipfsapi.Shell
	ctxTimeout time.Duration
	maxBytes   int64
}

// NewIpfsNodeApiReaderRepo cats content from a local ipfs node, pins made by our own node resolve without a gateway
func NewIpfsNodeApiReaderRepo(s *ipfsapi.Shell, timeout time.Duration) domain.WebResourceReaderRepository {
	return &ipfsNodeApiReaderRepo{shell: s, ctxTimeout: timeout, maxBytes: defaultMaxBytes}
}

func (r *ipfsNodeApiReaderRepo) Get(c ctx.Ctx, cid string) ([]byte, error) {
	tc, cancel := ctx.WithTimeout(c, r.ctxTimeout)
	defer cancel()

	resp, err := r.shell.Request("cat", cid).Send(tc)
	if err != nil {
		c.WithField("err", err).WithField("cid", cid).Warn("shell.Request failed")
		return nil, err
	}
	defer resp.Close()
	if resp.Error != nil {
		c.WithField("err", resp.Error).WithField("cid", cid).Warn("cat failed")
		return nil, resp.Error
	}

	body, err := io.ReadAll(io.LimitReader(resp.Output, r.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > r.maxBytes {
		return nil, ErrTooLarge
	}
	return body, nil
}
