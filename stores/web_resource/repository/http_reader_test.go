package repository

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/nftmint/base/ctx"
)

var mockCtx = bCtx.Background()

type httpReaderSuite struct {
	suite.Suite
	server *httptest.Server
}

func TestHttpReader(t *testing.T) {
	suite.Run(t, new(httpReaderSuite))
}

func (s *httpReaderSuite) SetupSuite() {
	mux := http.NewServeMux()
	mux.HandleFunc("/ipfs/bafy/1.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"one"}`))
	})
	mux.HandleFunc("/header", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.Header.Get("X-Api-Key")))
	})
	mux.HandleFunc("/big", func(w http.ResponseWriter, r *http.Request) {
		w.Write(make([]byte, 64))
	})
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	mux.HandleFunc("/tx123", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("arweave"))
	})
	s.server = httptest.NewServer(mux)
}

func (s *httpReaderSuite) TearDownSuite() {
	s.server.Close()
}

func (s *httpReaderSuite) TestGet() {
	r := NewHttpReaderRepo(HttpReaderCfg{Timeout: time.Second})
	b, err := r.Get(mockCtx, s.server.URL+"/ipfs/bafy/1.json")
	s.Require().NoError(err)
	s.Equal(`{"name":"one"}`, string(b))

	_, err = r.Get(mockCtx, s.server.URL+"/missing")
	s.EqualError(err, "unexpected status 404")
}

func (s *httpReaderSuite) TestHeaders() {
	r := NewHttpReaderRepo(HttpReaderCfg{Timeout: time.Second, Headers: map[string]string{"X-Api-Key": "k"}})
	b, err := r.Get(mockCtx, s.server.URL+"/header")
	s.Require().NoError(err)
	s.Equal("k", string(b))
}

func (s *httpReaderSuite) TestTooLarge() {
	r := NewHttpReaderRepo(HttpReaderCfg{Timeout: time.Second, MaxBytes: 32})
	_, err := r.Get(mockCtx, s.server.URL+"/big")
	s.Equal(ErrTooLarge, err)
}

func (s *httpReaderSuite) TestTimeout() {
	r := NewHttpReaderRepo(HttpReaderCfg{Timeout: 50 * time.Millisecond})
	_, err := r.Get(mockCtx, s.server.URL+"/slow")
	s.Error(err)
}

func (s *httpReaderSuite) TestGateway() {
	r := NewIpfsGatewayReaderRepo(s.server.URL+"/ipfs/", HttpReaderCfg{Timeout: time.Second})
	b, err := r.Get(mockCtx, "bafy/1.json")
	s.Require().NoError(err)
	s.Equal(`{"name":"one"}`, string(b))
}

func (s *httpReaderSuite) TestAr() {
	r := &arReaderRepo{&prefixReader{
		http:   newHttpReader(HttpReaderCfg{Timeout: time.Second}),
		prefix: s.server.URL + "/",
	}}
	b, err := r.Get(mockCtx, "ar://tx123")
	s.Require().NoError(err)
	s.Equal("arweave", string(b))

	_, err = r.Get(mockCtx, "https://tx123")
	s.Error(err)
}
