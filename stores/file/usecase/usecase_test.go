package usecase

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/domain"
	"github.com/x-xyz/nftmint/service/pinning"
	"github.com/x-xyz/nftmint/service/pinning/mocks"
)

var mockCtx = ctx.Background()

type fileSuite struct {
	suite.Suite
	pin *mocks.Service
}

func TestFile(t *testing.T) {
	suite.Run(t, new(fileSuite))
}

func (s *fileSuite) SetupTest() {
	s.pin = mocks.NewService(s.T())
}

// readsTo drains the pinned reader into dst so the body can be asserted
func readsTo(dst *bytes.Buffer) func(args mock.Arguments) {
	return func(args mock.Arguments) {
		_, _ = io.Copy(dst, args.Get(1).(io.Reader))
	}
}

func (s *fileSuite) TestUploadUrl() {
	im := New(Cfg{Pinning: s.pin, Gateway: "demo.mypinata.cloud"})
	body := &bytes.Buffer{}
	s.pin.On("Pin", mockCtx, mock.Anything, "mushroom.png", mock.Anything).
		Run(readsTo(body)).Return("QmCid", nil).Once()

	res, err := im.Upload(mockCtx, strings.NewReader("raw-bytes"), "mushroom.png")
	s.Require().NoError(err)
	s.Equal("QmCid", res.Cid)
	s.Equal("https://demo.mypinata.cloud/ipfs/QmCid", res.Url)
	s.Contains(res.Url, "demo.mypinata.cloud")
	s.Equal("raw-bytes", body.String())
}

func (s *fileSuite) TestUploadPinName() {
	im := New(Cfg{Pinning: s.pin, Gateway: "gw"})
	s.pin.On("Pin", mockCtx, mock.Anything, "a.txt", mock.MatchedBy(func(o pinning.Options) bool {
		opts := pinning.GetPinOptions(o)
		return opts.Metadata != nil && opts.Metadata.Name == "a.txt"
	})).Return("Qm", nil).Once()

	_, err := im.Upload(mockCtx, strings.NewReader("x"), "a.txt")
	s.NoError(err)
}

func (s *fileSuite) TestUploadUnnamedDetectsExtension() {
	im := New(Cfg{Pinning: s.pin, Gateway: "gw"})
	png := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{1}, 5000)...)
	body := &bytes.Buffer{}
	s.pin.On("Pin", mockCtx, mock.Anything, mock.MatchedBy(func(name string) bool {
		return strings.HasSuffix(name, ".png") && len(name) == 36+4
	}), mock.Anything).Run(readsTo(body)).Return("Qm", nil).Once()

	_, err := im.Upload(mockCtx, bytes.NewReader(png), "")
	s.Require().NoError(err)
	s.Equal(png, body.Bytes())
}

func (s *fileSuite) TestUploadProviderError() {
	im := New(Cfg{Pinning: s.pin, Gateway: "gw"})
	s.pin.On("Pin", mockCtx, mock.Anything, "a", mock.Anything).Return("", pinning.ErrRequestFailed).Once()

	_, err := im.Upload(mockCtx, strings.NewReader("x"), "a")
	s.Equal(pinning.ErrRequestFailed, err)
}

func (s *fileSuite) TestUploadNilReader() {
	im := New(Cfg{Pinning: s.pin, Gateway: "gw"})
	_, err := im.Upload(mockCtx, nil, "a")
	s.Equal(domain.ErrNoFile, err)
}

func (s *fileSuite) TestUploadMetadata() {
	v1 := pinning.CidVersion1
	im := New(Cfg{Pinning: s.pin, Gateway: "https://ipfs.io/", CidVersion: &v1})
	md := &domain.NftMetadata{Name: "Mushroom", Image: "ipfs://img"}
	s.pin.On("PinJson", mockCtx, md, mock.Anything, mock.Anything).Return("bafyMeta", nil).Once()

	res, err := im.UploadMetadata(mockCtx, md)
	s.Require().NoError(err)
	s.Equal("https://ipfs.io/ipfs/bafyMeta", res.Url)

	s.pin.On("PinJson", mockCtx, md, mock.Anything, mock.Anything).Return("", errors.New("x")).Once()
	_, err = im.UploadMetadata(mockCtx, md)
	s.Error(err)
}

func TestGatewayPrefix(t *testing.T) {
	tests := map[string]string{
		"demo.mypinata.cloud":    "https://demo.mypinata.cloud/ipfs/",
		"demo.mypinata.cloud/":   "https://demo.mypinata.cloud/ipfs/",
		"http://localhost:8080":  "http://localhost:8080/ipfs/",
		"https://ipfs.io/ipfs/":  "https://ipfs.io/ipfs/",
		" gateway.pinata.cloud ": "https://gateway.pinata.cloud/ipfs/",
	}
	for in, want := range tests {
		assert.Equal(t, want, gatewayPrefix(in), in)
	}
}
