package cache

import (
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/domain/keys"
	"github.com/x-xyz/nftmint/service/cache/provider"
	"github.com/x-xyz/nftmint/service/cache/provider/local"
)

var mockCtx = ctx.Background()

type value struct {
	Value string `json:"value"`
}

type cacheSuite struct {
	suite.Suite
	im       *impl
	provider provider.Provider
}

func TestCache(t *testing.T) {
	suite.Run(t, new(cacheSuite))
}

func (s *cacheSuite) SetupTest() {
	s.provider = local.New("test", 1)
	s.im = New(Cfg{
		Ttl:      time.Minute,
		Pfx:      "testing",
		Provider: s.provider,
	}).(*impl)
}

func (s *cacheSuite) TestGet() {
	c := &value{}
	s.Equal(ErrNotFound, s.im.Get(mockCtx, "key", c))

	raw, err := json.Marshal(value{"v"})
	s.Require().NoError(err)
	s.Require().NoError(s.provider.Set(mockCtx, keys.RedisKey("testing", "key"), raw, time.Minute))

	s.NoError(s.im.Get(mockCtx, "key", c))
	s.Equal(value{"v"}, *c)
}

func (s *cacheSuite) TestSetDel() {
	s.Require().NoError(s.im.Set(mockCtx, "key", value{"v"}))

	raw, _, err := s.provider.Get(mockCtx, "testing:key")
	s.Require().NoError(err)
	s.JSONEq(`{"value":"v"}`, string(raw))

	s.Require().NoError(s.im.Del(mockCtx, "key"))
	s.Equal(ErrNotFound, s.im.Get(mockCtx, "key", &value{}))
}

func (s *cacheSuite) TestGetOrLoad() {
	calls := 0
	load := func() (interface{}, error) {
		calls++
		return &value{"loaded"}, nil
	}

	for i := 0; i < 2; i++ {
		c := &value{}
		s.Require().NoError(s.im.GetOrLoad(mockCtx, "key", c, load))
		s.Equal(value{"loaded"}, *c)
	}
	s.Equal(1, calls)
}

func (s *cacheSuite) TestGetOrLoadError() {
	errLoad := errors.New("load failed")
	err := s.im.GetOrLoad(mockCtx, "key", &value{}, func() (interface{}, error) {
		return nil, errLoad
	})
	s.Equal(errLoad, err)
	s.Equal(ErrNotFound, s.im.Get(mockCtx, "key", &value{}))
}

func (s *cacheSuite) TestGetOrLoadConcurrent() {
	var calls int32
	release := make(chan struct{})
	load := func() (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return &value{"shared"}, nil
	}

	wg := sync.WaitGroup{}
	results := make([]value, 4)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.NoError(s.im.GetOrLoad(mockCtx, "key", &results[i], load))
		}(i)
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	s.Equal(int32(1), atomic.LoadInt32(&calls))
	for _, r := range results {
		s.Equal(value{"shared"}, r)
	}
}
