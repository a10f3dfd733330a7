package layered

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/service/cache/provider"
	"github.com/x-xyz/nftmint/service/cache/provider/local"
)

var mockCtx = ctx.Background()

type brokenProvider struct{}

var errBroken = errors.New("broken")

func (brokenProvider) Get(ctx.Ctx, string) ([]byte, time.Duration, error) { return nil, 0, errBroken }
func (brokenProvider) Set(ctx.Ctx, string, []byte, time.Duration) error   { return errBroken }
func (brokenProvider) Del(ctx.Ctx, string) error                          { return errBroken }

type layeredSuite struct {
	suite.Suite
	fast provider.Provider
	slow provider.Provider
	im   provider.Provider
}

func TestLayered(t *testing.T) {
	suite.Run(t, new(layeredSuite))
}

func (s *layeredSuite) SetupTest() {
	s.fast = local.New("fast", 1)
	s.slow = local.New("slow", 1)
	s.im = New(s.fast, s.slow)
}

func (s *layeredSuite) TestRefillFromLowerLayer() {
	s.Require().NoError(s.slow.Set(mockCtx, "k", []byte("v"), time.Minute))

	val, _, err := s.im.Get(mockCtx, "k")
	s.Require().NoError(err)
	s.Equal([]byte("v"), val)

	val, ttl, err := s.fast.Get(mockCtx, "k")
	s.Require().NoError(err)
	s.Equal([]byte("v"), val)
	s.True(ttl > 0)
}

func (s *layeredSuite) TestMiss() {
	_, _, err := s.im.Get(mockCtx, "k")
	s.Equal(provider.ErrNotFound, err)
}

func (s *layeredSuite) TestSetDel() {
	s.Require().NoError(s.im.Set(mockCtx, "k", []byte("v"), time.Minute))
	_, _, err := s.fast.Get(mockCtx, "k")
	s.NoError(err)
	_, _, err = s.slow.Get(mockCtx, "k")
	s.NoError(err)

	s.Require().NoError(s.im.Del(mockCtx, "k"))
	_, _, err = s.slow.Get(mockCtx, "k")
	s.Equal(provider.ErrNotFound, err)
}

func (s *layeredSuite) TestBrokenLayer() {
	im := New(s.fast, brokenProvider{})
	_, _, err := im.Get(mockCtx, "k")
	s.Equal(errBroken, err)
	s.Equal(errBroken, im.Set(mockCtx, "k", []byte("v"), time.Minute))

	// fast layer untouched when the slow one rejects the write
	_, _, err = s.fast.Get(mockCtx, "k")
	s.Equal(provider.ErrNotFound, err)
}
