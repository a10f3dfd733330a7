package pinning

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftmint/base/ctx"
)

var mockCtx = ctx.Background()

type pinataSuite struct {
	suite.Suite
	server  *httptest.Server
	handler http.HandlerFunc
	im      Service
}

func (s *pinataSuite) SetupTest() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.handler(w, r)
	}))
	s.im = NewPinata(PinataCfg{
		Endpoint: s.server.URL,
		Jwt:      "jwt-token",
	})
}

func (s *pinataSuite) TearDownTest() {
	s.server.Close()
}

func TestPinata(t *testing.T) {
	suite.Run(t, new(pinataSuite))
}

func (s *pinataSuite) TestPin() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal(pinPath, r.URL.Path)
		s.Equal("Bearer jwt-token", r.Header.Get("Authorization"))

		f, h, err := r.FormFile("file")
		s.Require().NoError(err)
		body, _ := io.ReadAll(f)
		s.Equal("hello", string(body))
		s.Equal("cat.png", h.Filename)

		meta := PinMetadata{}
		s.Require().NoError(json.Unmarshal([]byte(r.FormValue("pinataMetadata")), &meta))
		s.Equal("cat.png", meta.Name)
		s.Equal(`{"cidVersion":1}`, r.FormValue("pinataOptions"))

		w.Write([]byte(`{"IpfsHash":"bafycid","PinSize":5}`))
	}

	cid, err := s.im.Pin(mockCtx, strings.NewReader("hello"), "cat.png", WithName("cat.png"), WithCidVersion(CidVersion1))
	s.NoError(err)
	s.Equal("bafycid", cid)
}

func (s *pinataSuite) TestPinKeyPair() {
	s.im = NewPinata(PinataCfg{Endpoint: s.server.URL, ApiKey: "key", ApiSecret: "secret"})
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Empty(r.Header.Get("Authorization"))
		s.Equal("key", r.Header.Get("pinata_api_key"))
		s.Equal("secret", r.Header.Get("pinata_secret_api_key"))
		w.Write([]byte(`{"IpfsHash":"Qm1"}`))
	}

	cid, err := s.im.Pin(mockCtx, strings.NewReader("x"), "x.bin")
	s.NoError(err)
	s.Equal("Qm1", cid)
}

func (s *pinataSuite) TestPinFailed() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid jwt"}`))
	}

	_, err := s.im.Pin(mockCtx, strings.NewReader("hello"), "a.txt")
	s.ErrorIs(err, ErrRequestFailed)
}

func (s *pinataSuite) TestPinEmptyCid() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}

	_, err := s.im.Pin(mockCtx, strings.NewReader("hello"), "a.txt")
	s.ErrorIs(err, ErrEmptyCid)
}

func (s *pinataSuite) TestPinJson() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal(pinJsonPath, r.URL.Path)
		s.Equal("application/json", r.Header.Get("Content-Type"))

		body := map[string]interface{}{}
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&body))
		s.Equal(map[string]interface{}{"name": "n", "image": "ipfs://img"}, body["pinataContent"])
		s.Nil(body["pinataOptions"])

		w.Write([]byte(`{"IpfsHash":"QmJson"}`))
	}

	cid, err := s.im.PinJson(mockCtx, map[string]string{"name": "n", "image": "ipfs://img"})
	s.NoError(err)
	s.Equal("QmJson", cid)
}

func (s *pinataSuite) TestPinTimeout() {
	done := make(chan struct{})
	defer close(done)
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
		}
		w.Write([]byte(`{"IpfsHash":"bafycid"}`))
	}
	im := NewPinata(PinataCfg{
		Endpoint:   s.server.URL,
		Jwt:        "jwt-token",
		HttpClient: &http.Client{},
		Timeout:    50 * time.Millisecond,
	})
	start := time.Now()
	_, err := im.Pin(mockCtx, strings.NewReader("hello"), "cat.png")
	s.Error(err)
	s.Less(time.Since(start), time.Second)
}
