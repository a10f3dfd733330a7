package pinning

import (
	"bytes"
	"encoding/json"
	"io"

	ipfsapi "github.com/ipfs/go-ipfs-api"

	"github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/base/log"
)

type ipfsAdder interface {
	Add(r io.Reader, options ...ipfsapi.AddOpts) (string, error)
}

type ipfsNodeImpl struct {
	shell ipfsAdder
}

// NewIpfsNode pins through the HTTP API of a self hosted IPFS node. Pin
// metadata has no equivalent there and is dropped.
func NewIpfsNode(shell *ipfsapi.Shell) Service {
	return &ipfsNodeImpl{shell: shell}
}

func (im *ipfsNodeImpl) Pin(c ctx.Ctx, file io.Reader, filename string, optFns ...Options) (string, error) {
	defer met.BumpTime("node.latency", "func", "pin").End()
	opts := GetPinOptions(optFns...)

	cid, err := im.shell.Add(file, addOpts(opts)...)
	if err != nil {
		met.BumpSum("node.err", 1, "func", "pin")
		c.WithFields(log.Fields{
			"err":      err,
			"filename": filename,
		}).Error("shell.Add failed")
		return "", ErrRequestFailed
	}
	if cid == "" {
		return "", ErrEmptyCid
	}
	return cid, nil
}

func (im *ipfsNodeImpl) PinJson(c ctx.Ctx, value interface{}, optFns ...Options) (string, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.WithField("err", err).Error("json.Marshal failed")
		return "", err
	}
	return im.Pin(c, bytes.NewReader(raw), "metadata.json", optFns...)
}

func addOpts(opts *PinOptions) []ipfsapi.AddOpts {
	res := []ipfsapi.AddOpts{ipfsapi.Pin(true)}
	if opts.CidVersion != nil {
		res = append(res, ipfsapi.CidVersion(int(*opts.CidVersion)))
	}
	return res
}
