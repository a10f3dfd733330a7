package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftmint/domain"
	"github.com/x-xyz/nftmint/domain/mocks"
	"github.com/x-xyz/nftmint/middleware"
	"github.com/x-xyz/nftmint/service/cache"
	"github.com/x-xyz/nftmint/service/cache/provider/local"
)

const owner = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"

type handlerSuite struct {
	suite.Suite
	e  *echo.Echo
	nu *mocks.NftUseCase
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) SetupTest() {
	s.nu = mocks.NewNftUseCase(s.T())
	s.e = echo.New()
	s.e.Use(middleware.InitMiddleware().AddContext())
	New(s.e, s.nu, cache.New(cache.Cfg{
		Ttl:      time.Minute,
		Pfx:      "test",
		Provider: local.New("nft-handler-test", 1),
	}))
}

func (s *handlerSuite) get(path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func (s *handlerSuite) TestGetAllIsCached() {
	s.nu.On("GetAll", mock.Anything).Return([]*domain.NftData{
		{TokenId: "0", Owner: owner, TokenURI: "ipfs://meta/0", Metadata: &domain.NftMetadata{Name: "a", Image: "ipfs://img/0"}},
		{TokenId: "1", Owner: owner, TokenURI: "ipfs://meta/1"},
	}, nil).Once()

	want := `{"status":"success","data":[
		{"tokenId":"0","owner":"` + owner + `","tokenURI":"ipfs://meta/0","metadata":{"name":"a","description":"","image":"ipfs://img/0"}},
		{"tokenId":"1","owner":"` + owner + `","tokenURI":"ipfs://meta/1"}]}`

	rec := s.get("/api/nfts")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(want, rec.Body.String())
	s.Equal("MISS", rec.Header().Get("X-Cache"))

	rec = s.get("/api/nfts")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(want, rec.Body.String())
	s.Equal("HIT", rec.Header().Get("X-Cache"))
}

func (s *handlerSuite) TestGetAllFailure() {
	s.nu.On("GetAll", mock.Anything).Return(nil, errors.New("dial tcp: connection refused")).Once()

	rec := s.get("/api/nfts?x=1")
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.JSONEq(`{"status":"fail","data":"Internal Server Error"}`, rec.Body.String())
}

func (s *handlerSuite) TestNextId() {
	s.nu.On("NextTokenId", mock.Anything).Return(domain.TokenId("7"), nil).Once()

	rec := s.get("/api/nfts/next-id")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"success","data":{"tokenId":"7"}}`, rec.Body.String())
}

func (s *handlerSuite) TestGetOne() {
	s.nu.On("GetOne", mock.Anything, domain.TokenId("3")).Return(&domain.NftData{TokenId: "3", Owner: owner}, nil).Once()
	s.nu.On("GetOne", mock.Anything, domain.TokenId("9")).Return(nil, domain.ErrNotFound).Once()
	s.nu.On("GetOne", mock.Anything, domain.TokenId("x")).Return(nil, domain.ErrInvalidTokenId).Once()

	rec := s.get("/api/nfts/3")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"success","data":{"tokenId":"3","owner":"`+owner+`","tokenURI":""}}`, rec.Body.String())

	s.Equal(http.StatusNotFound, s.get("/api/nfts/9").Code)
	s.Equal(http.StatusBadRequest, s.get("/api/nfts/x").Code)
}

func (s *handlerSuite) TestBalance() {
	s.nu.On("BalanceOf", mock.Anything, domain.Address(owner)).Return(uint64(2), nil).Once()

	rec := s.get("/api/accounts/" + owner + "/balance")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"success","data":{"address":"`+owner+`","balance":2}}`, rec.Body.String())

	rec = s.get("/api/accounts/0xnope/balance")
	s.Equal(http.StatusBadRequest, rec.Code)
}
