package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftmint/base/validator"
	"github.com/x-xyz/nftmint/domain"
	"github.com/x-xyz/nftmint/domain/mocks"
	"github.com/x-xyz/nftmint/middleware"
	authMiddleware "github.com/x-xyz/nftmint/stores/auth/delivery/http/middleware"
)

const wallet = "0x70997970c51812dc3a010c7d01b50e0d17dc79c8"

type handlerSuite struct {
	suite.Suite
	e    *echo.Echo
	mu   *mocks.MintUseCase
	auth *mocks.AuthUsecase
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) SetupTest() {
	s.mu = mocks.NewMintUseCase(s.T())
	s.auth = mocks.NewAuthUsecase(s.T())
	s.auth.On("ParseToken", mock.Anything, "token").Return(domain.Address(wallet), nil).Maybe()
	s.e = echo.New()
	s.e.Validator = validator.NewCustomValidator(validator.New())
	s.e.Use(middleware.InitMiddleware().AddContext())
	New(s.e, s.mu, &domain.ContractInfo{ChainId: 11155111, Address: "0x522b5aade25e0f5795ab91a9447564b3978b9335"}, authMiddleware.New(s.auth, nil))
}

func (s *handlerSuite) mint(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/mint", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer token")
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *handlerSuite) TestContract() {
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/contract", nil))
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"success","data":{"chainId":11155111,"address":"0x522b5aade25e0f5795ab91a9447564b3978b9335","explorerUrl":"","marketplaceUrl":""}}`, rec.Body.String())
}

func (s *handlerSuite) TestMint() {
	req := &domain.MintRequest{To: wallet, TokenURI: "ipfs://meta/1"}
	s.mu.On("Mint", mock.Anything, req).Return(&domain.MintResult{TxHash: "0xab", TokenId: "1", To: wallet, FeeEth: "0.0002"}, nil).Once()

	rec := s.mint(`{"to":"` + wallet + `","tokenURI":"ipfs://meta/1"}`)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"success","data":{"txHash":"0xab","tokenId":"1","to":"`+wallet+`","feeEth":"0.0002","explorerUrl":"","marketplaceUrl":""}}`, rec.Body.String())
}

func (s *handlerSuite) TestMintRequiresAuth() {
	req := httptest.NewRequest(http.MethodPost, "/api/mint", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestMissingWallet() {
	rec := s.mint(`{"tokenURI":"ipfs://meta/1"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.JSONEq(`{"status":"fail","data":"No wallet connected"}`, rec.Body.String())
}

func (s *handlerSuite) TestMissingTokenURI() {
	rec := s.mint(`{"to":"` + wallet + `"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestMintFailed() {
	s.mu.On("Mint", mock.Anything, mock.Anything).Return(nil, xerrors.Errorf("%w: %v", domain.ErrMintFailed, errors.New("nonce too low"))).Once()

	rec := s.mint(`{"to":"` + wallet + `","tokenURI":"ipfs://meta/1"}`)
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.JSONEq(`{"status":"fail","data":"Mint failed"}`, rec.Body.String())
}

func (s *handlerSuite) TestMintPending() {
	s.mu.On("Mint", mock.Anything, mock.Anything).Return(&domain.MintResult{TxHash: "0xab"}, domain.ErrTxPending).Once()

	rec := s.mint(`{"to":"` + wallet + `","tokenURI":"ipfs://meta/1"}`)
	s.Equal(http.StatusAccepted, rec.Code)
	s.Contains(rec.Body.String(), `"txHash":"0xab"`)
}

func (s *handlerSuite) TestMinterDisabled() {
	s.mu.On("Mint", mock.Anything, mock.Anything).Return(nil, domain.ErrMinterDisabled).Once()

	rec := s.mint(`{"to":"` + wallet + `","tokenURI":"ipfs://meta/1"}`)
	s.Equal(http.StatusServiceUnavailable, rec.Code)
}

func (s *handlerSuite) TestInvalidAddress() {
	s.mu.On("Mint", mock.Anything, mock.Anything).Return(nil, xerrors.Errorf("%w: bob.eth is not registered", domain.ErrInvalidAddress)).Once()

	rec := s.mint(`{"to":"bob.eth","tokenURI":"ipfs://meta/1"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}
