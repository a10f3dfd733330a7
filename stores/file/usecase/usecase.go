package usecase

import (
	"bytes"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/base/log"
	"github.com/x-xyz/nftmint/domain"
	"github.com/x-xyz/nftmint/domain/file"
	"github.com/x-xyz/nftmint/service/pinning"
)

// sniffLen matches mimetype's default read limit
const sniffLen = 3072

type Cfg struct {
	Pinning pinning.Service
	// Gateway is a hostname like "demo.mypinata.cloud" or a full url prefix
	Gateway    string
	CidVersion *pinning.CidVersion
}

type impl struct {
	pinning    pinning.Service
	gateway    string
	cidVersion *pinning.CidVersion
}

func New(cfg Cfg) file.Usecase {
	return &impl{
		pinning:    cfg.Pinning,
		gateway:    gatewayPrefix(cfg.Gateway),
		cidVersion: cfg.CidVersion,
	}
}

func (im *impl) Upload(c ctx.Ctx, f io.Reader, filename string) (*file.UploadResult, error) {
	if f == nil {
		return nil, domain.ErrNoFile
	}

	body := f
	if strings.TrimSpace(filename) == "" {
		head := make([]byte, sniffLen)
		n, err := io.ReadFull(f, head)
		if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
			c.WithField("err", err).Error("io.ReadFull failed")
			return nil, err
		}
		head = head[:n]
		filename = uuid.NewString() + mimetype.Detect(head).Extension()
		body = io.MultiReader(bytes.NewReader(head), f)
	}

	cid, err := im.pinning.Pin(c, body, filename, im.options(filename)...)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "filename": filename}).Error("pinning.Pin failed")
		return nil, err
	}
	c.WithFields(log.Fields{"cid": cid, "filename": filename}).Info("file pinned")
	return im.result(cid), nil
}

func (im *impl) UploadMetadata(c ctx.Ctx, metadata *domain.NftMetadata) (*file.UploadResult, error) {
	if metadata == nil {
		return nil, domain.ErrInvalidMetadata
	}

	name := metadata.Name + ".json"
	cid, err := im.pinning.PinJson(c, metadata, im.options(name)...)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "name": name}).Error("pinning.PinJson failed")
		return nil, err
	}
	c.WithFields(log.Fields{"cid": cid, "name": name}).Info("metadata pinned")
	return im.result(cid), nil
}

func (im *impl) options(name string) []pinning.Options {
	opts := []pinning.Options{pinning.WithName(name)}
	if im.cidVersion != nil {
		opts = append(opts, pinning.WithCidVersion(*im.cidVersion))
	}
	return opts
}

func (im *impl) result(cid string) *file.UploadResult {
	return &file.UploadResult{
		Cid: cid,
		Url: im.gateway + cid,
	}
}

// gatewayPrefix turns the configured gateway into "<scheme>://<host>/ipfs/"
func gatewayPrefix(gateway string) string {
	gateway = strings.TrimSuffix(strings.TrimSpace(gateway), "/")
	if !strings.Contains(gateway, "://") {
		gateway = "https://" + gateway
	}
	if !strings.HasSuffix(gateway, "/ipfs") {
		gateway += "/ipfs"
	}
	return gateway + "/"
}
