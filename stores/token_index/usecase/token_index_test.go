package usecase

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/domain"
	"github.com/x-xyz/nftmint/domain/mocks"
)

const (
	chain    = domain.ChainId(11155111)
	contract = domain.Address("0xd1a2fb3c3bd9fe4b4ce0b82d1b8f8aee5a5e0c9e")
	alice    = domain.Address("0x00000000000000000000000000000000000a11ce")
	bob      = domain.Address("0x0000000000000000000000000000000000000b0b")
)

var mockCtx = bCtx.Background()

func transfer(from, to domain.Address, id string, block uint64) *domain.TransferEvent {
	return &domain.TransferEvent{
		From:    from,
		To:      to,
		TokenId: domain.TokenId(id),
		LogMeta: domain.LogMeta{
			BlockNumber:     domain.BlockNumber(block),
			BlockTime:       time.Unix(1700000000, 0),
			TxHash:          "0xfeed",
			ContractAddress: contract,
		},
	}
}

func idOf(id string) *domain.IndexedTokenId {
	return &domain.IndexedTokenId{ChainId: chain, ContractAddress: contract, TokenId: domain.TokenId(id)}
}

type tokenIndexSuite struct {
	suite.Suite
	repo   *mocks.TokenIndexRepo
	minter *mocks.MinterContract
	uc     domain.TokenIndexUseCase
}

func (s *tokenIndexSuite) SetupTest() {
	s.repo = mocks.NewTokenIndexRepo(s.T())
	s.minter = mocks.NewMinterContract(s.T())
	s.uc = NewTokenIndexUseCase(&TokenIndexUseCaseCfg{Repo: s.repo, Minter: s.minter})
}

func (s *tokenIndexSuite) TestMintCreatesToken() {
	s.repo.On("FindOne", mock.Anything, idOf("4")).Return(nil, domain.ErrNotFound).Once()
	s.minter.On("TokenURI", mock.Anything, big.NewInt(4)).Return("ipfs://meta/4", nil).Once()
	s.repo.On("Upsert", mock.Anything, mock.MatchedBy(func(t *domain.IndexedToken) bool {
		return t.Owner == alice && t.TokenURI == "ipfs://meta/4" && t.MintedBlock == 10 && t.MintTxHash == "0xfeed"
	})).Return(nil).Once()

	token, err := s.uc.Transfer(mockCtx, chain, transfer(domain.EmptyAddress, alice, "4", 10))
	s.Require().NoError(err)
	s.False(token.Burned)
	s.Equal(domain.BlockNumber(10), token.UpdatedBlock)
}

func (s *tokenIndexSuite) TestMintKeepsGoingWithoutTokenURI() {
	s.repo.On("FindOne", mock.Anything, idOf("4")).Return(nil, domain.ErrNotFound).Once()
	s.minter.On("TokenURI", mock.Anything, big.NewInt(4)).Return("", errors.New("rpc down")).Once()
	s.repo.On("Upsert", mock.Anything, mock.MatchedBy(func(t *domain.IndexedToken) bool {
		return t.TokenURI == "" && t.Owner == alice
	})).Return(nil).Once()

	_, err := s.uc.Transfer(mockCtx, chain, transfer(domain.EmptyAddress, alice, "4", 10))
	s.NoError(err)
}

func (s *tokenIndexSuite) TestTransferMovesOwner() {
	s.repo.On("FindOne", mock.Anything, idOf("4")).Return(&domain.IndexedToken{
		ChainId: chain, ContractAddress: contract, TokenId: "4",
		Owner: alice, TokenURI: "ipfs://meta/4", MintedBlock: 10, UpdatedBlock: 10,
	}, nil).Once()
	s.repo.On("Upsert", mock.Anything, mock.MatchedBy(func(t *domain.IndexedToken) bool {
		return t.Owner == bob && t.MintedBlock == 10 && t.UpdatedBlock == 12
	})).Return(nil).Once()

	token, err := s.uc.Transfer(mockCtx, chain, transfer(alice, bob, "4", 12))
	s.Require().NoError(err)
	s.Equal(bob, token.Owner)
}

func (s *tokenIndexSuite) TestBurn() {
	s.repo.On("FindOne", mock.Anything, idOf("4")).Return(&domain.IndexedToken{
		ChainId: chain, ContractAddress: contract, TokenId: "4", Owner: bob, UpdatedBlock: 12,
	}, nil).Once()
	s.repo.On("Upsert", mock.Anything, mock.MatchedBy(func(t *domain.IndexedToken) bool {
		return t.Burned && t.Owner == domain.EmptyAddress
	})).Return(nil).Once()

	token, err := s.uc.Transfer(mockCtx, chain, transfer(bob, domain.EmptyAddress, "4", 13))
	s.Require().NoError(err)
	s.True(token.Burned)
}

func (s *tokenIndexSuite) TestStaleTransferIgnored() {
	s.repo.On("FindOne", mock.Anything, idOf("4")).Return(&domain.IndexedToken{
		ChainId: chain, ContractAddress: contract, TokenId: "4", Owner: bob, UpdatedBlock: 20,
	}, nil).Once()

	token, err := s.uc.Transfer(mockCtx, chain, transfer(alice, alice, "4", 12))
	s.Require().NoError(err)
	s.Equal(bob, token.Owner)
}

func (s *tokenIndexSuite) TestRepoErrors() {
	boom := errors.New("boom")
	s.repo.On("FindOne", mock.Anything, idOf("4")).Return(nil, boom).Once()
	_, err := s.uc.Transfer(mockCtx, chain, transfer(alice, bob, "4", 12))
	s.ErrorIs(err, boom)

	s.repo.On("FindOne", mock.Anything, idOf("5")).Return(&domain.IndexedToken{TokenId: "5"}, nil).Once()
	s.repo.On("Upsert", mock.Anything, mock.Anything).Return(boom).Once()
	_, err = s.uc.Transfer(mockCtx, chain, transfer(alice, bob, "5", 12))
	s.ErrorIs(err, boom)
}

func (s *tokenIndexSuite) TestFindLiveSortsNumerically() {
	s.repo.On("FindAll", mockCtx, chain, contract).Return([]*domain.IndexedToken{
		{TokenId: "10"},
		{TokenId: "2"},
		{TokenId: "3", Burned: true},
		{TokenId: "1"},
	}, nil).Once()

	live, err := s.uc.FindLive(mockCtx, chain, contract)
	s.Require().NoError(err)
	ids := []domain.TokenId{}
	for _, t := range live {
		ids = append(ids, t.TokenId)
	}
	s.Equal([]domain.TokenId{"1", "2", "10"}, ids)
}

func (s *tokenIndexSuite) TestSetImageMirror() {
	s.repo.On("SetImageMirror", mockCtx, idOf("1"), "https://cdn/1.png").Return(nil).Once()
	s.NoError(s.uc.SetImageMirror(mockCtx, idOf("1"), "https://cdn/1.png"))
}

func TestTokenIndexSuite(t *testing.T) {
	suite.Run(t, new(tokenIndexSuite))
}
