package mongo

import (
	"errors"

	bCtx "github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/base/database/mongoclient"
	"github.com/x-xyz/nftmint/base/log"
	"github.com/x-xyz/nftmint/domain"
	"github.com/x-xyz/nftmint/service/query"
)

// one cursor per (chain, contract, tag)
var indexes = []query.Index{
	{Keys: []string{"chainId", "contractAddress", "tag"}, Unique: true},
}

type trackerStateMongoRepo struct {
	m query.Mongo
}

func NewTrackerStateMongoRepo(m query.Mongo) domain.TrackerStateRepo {
	return &trackerStateMongoRepo{m: m}
}

func EnsureIndexes(c bCtx.Ctx, m query.Mongo) error {
	return m.EnsureIndexes(c, domain.TableTrackerStates, indexes...)
}

func (r *trackerStateMongoRepo) Get(c bCtx.Ctx, id *domain.TrackerStateId) (*domain.TrackerState, error) {
	qry, err := mongoclient.MakeBsonM(id)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "id": id}).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}

	state := &domain.TrackerState{}
	if err := r.m.FindOne(c, domain.TableTrackerStates, qry, state); errors.Is(err, query.ErrNotFound) {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "id": id}).Error("m.FindOne failed")
		return nil, err
	}
	return state, nil
}

func (r *trackerStateMongoRepo) Update(c bCtx.Ctx, state *domain.TrackerState) error {
	selector, err := mongoclient.MakeBsonM(state.ToId())
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.m.Patch(c, domain.TableTrackerStates, selector, state); errors.Is(err, query.ErrNotFound) {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "id": state.ToId()}).Error("m.Patch failed")
		return err
	}
	return nil
}

func (r *trackerStateMongoRepo) Store(c bCtx.Ctx, state *domain.TrackerState) error {
	if err := r.m.Insert(c, domain.TableTrackerStates, state); errors.Is(err, query.ErrDuplicateKey) {
		// another tracker with the same tag got there first
		c.WithField("id", state.ToId()).Warn("tracker state already exists")
		return err
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "id": state.ToId()}).Error("m.Insert failed")
		return err
	}
	return nil
}
