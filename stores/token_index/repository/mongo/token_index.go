package mongo

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/base/database/mongoclient"
	"github.com/x-xyz/nftmint/base/log"
	"github.com/x-xyz/nftmint/domain"
	"github.com/x-xyz/nftmint/service/query"
)

var indexes = []query.Index{
	{Keys: []string{"chainId", "contractAddress", "tokenId"}, Unique: true},
	{Keys: []string{"chainId", "contractAddress", "burned"}},
}

type tokenIndexMongoRepo struct {
	m query.Mongo
}

func NewTokenIndexMongoRepo(m query.Mongo) domain.TokenIndexRepo {
	return &tokenIndexMongoRepo{m: m}
}

func EnsureIndexes(c bCtx.Ctx, m query.Mongo) error {
	return m.EnsureIndexes(c, domain.TableIndexedTokens, indexes...)
}

func selectorOf(id *domain.IndexedTokenId) (bson.M, error) {
	return mongoclient.MakeBsonM(&domain.IndexedTokenId{
		ChainId:         id.ChainId,
		ContractAddress: id.ContractAddress.ToLower(),
		TokenId:         id.TokenId,
	})
}

// FindAll is unsorted, token ids are strings in mongo so only the caller can order them numerically
func (r *tokenIndexMongoRepo) FindAll(c bCtx.Ctx, chainId domain.ChainId, contract domain.Address) ([]*domain.IndexedToken, error) {
	qry := bson.M{
		"chainId":         chainId,
		"contractAddress": contract.ToLower(),
	}
	res := []*domain.IndexedToken{}
	if err := r.m.Search(c, domain.TableIndexedTokens, 0, 0, "", qry, &res); err != nil {
		c.WithFields(log.Fields{"err": err, "contract": contract}).Error("m.Search failed")
		return nil, err
	}
	return res, nil
}

func (r *tokenIndexMongoRepo) FindOne(c bCtx.Ctx, id *domain.IndexedTokenId) (*domain.IndexedToken, error) {
	qry, err := selectorOf(id)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "id": id}).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}

	token := &domain.IndexedToken{}
	if err := r.m.FindOne(c, domain.TableIndexedTokens, qry, token); errors.Is(err, query.ErrNotFound) {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "id": id}).Error("m.FindOne failed")
		return nil, err
	}
	return token, nil
}

func (r *tokenIndexMongoRepo) Upsert(c bCtx.Ctx, token *domain.IndexedToken) error {
	token.ContractAddress = token.ContractAddress.ToLower()
	token.Owner = token.Owner.ToLower()
	selector, err := selectorOf(token.ToId())
	if err != nil {
		c.WithFields(log.Fields{"err": err, "id": token.ToId()}).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.m.Upsert(c, domain.TableIndexedTokens, selector, token); err != nil {
		c.WithFields(log.Fields{"err": err, "id": token.ToId()}).Error("m.Upsert failed")
		return err
	}
	return nil
}

func (r *tokenIndexMongoRepo) SetImageMirror(c bCtx.Ctx, id *domain.IndexedTokenId, url string) error {
	selector, err := selectorOf(id)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "id": id}).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.m.Patch(c, domain.TableIndexedTokens, selector, bson.M{"imageMirrorUrl": url}); errors.Is(err, query.ErrNotFound) {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "id": id}).Error("m.Patch failed")
		return err
	}
	return nil
}
