package query

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/base/database/mongoclient"
	"github.com/x-xyz/nftmint/base/log"
	"github.com/x-xyz/nftmint/base/metrics"
	"github.com/x-xyz/nftmint/domain"
)

const (
	queryMaxTime  = 20 * time.Second
	slowThreshold = 500 * time.Millisecond
)

var met = metrics.New("query")

type impl struct {
	client *mongoclient.Client
	// standalone servers reject transactions
	transaction bool
}

func New(client *mongoclient.Client, transaction bool) Mongo {
	return &impl{
		client:      client,
		transaction: transaction,
	}
}

func (im *impl) coll(table domain.Table) *mongo.Collection {
	return im.client.Database(im.client.DbName).Collection(string(table))
}

func (im *impl) Insert(context ctx.Ctx, table domain.Table, insert interface{}) error {
	defer track(context, table, "insert", nil)()

	if _, err := im.coll(table).InsertOne(context, insert); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		context.WithFields(log.Fields{"err": err, "table": table}).Error("InsertOne failed")
		return err
	}
	return nil
}

func (im *impl) FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error {
	defer track(context, table, "findone", query)()

	opts := options.FindOne().SetMaxTime(queryMaxTime)
	if err := im.coll(table).FindOne(context, query, opts).Decode(result); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		context.WithFields(log.Fields{"err": err, "table": table, "query": query}).Error("FindOne failed")
		return err
	}
	return nil
}

func (im *impl) Search(context ctx.Ctx, table domain.Table, offset, limit int, sort string, query, results interface{}) error {
	defer track(context, table, "search", query)()

	opts := options.Find().SetMaxTime(queryMaxTime).SetSkip(int64(offset))
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	if s := sortOption(sort); len(s) > 0 {
		opts.SetSort(s)
	}

	cursor, err := im.coll(table).Find(context, query, opts)
	if err != nil {
		context.WithFields(log.Fields{"err": err, "table": table, "query": query}).Error("Find failed")
		return err
	}
	defer cursor.Close(context)

	if err := cursor.All(context, results); err != nil {
		context.WithFields(log.Fields{"err": err, "table": table}).Error("cursor.All failed")
		return err
	}
	return nil
}

func (im *impl) Upsert(context ctx.Ctx, table domain.Table, selector, update interface{}) error {
	defer track(context, table, "upsert", selector)()

	opts := options.Replace().SetUpsert(true)
	if _, err := im.coll(table).ReplaceOne(context, selector, update, opts); err != nil {
		context.WithFields(log.Fields{"err": err, "table": table, "selector": selector}).Error("ReplaceOne failed")
		return err
	}
	return nil
}

func (im *impl) Patch(context ctx.Ctx, table domain.Table, selector, update interface{}) error {
	defer track(context, table, "patch", selector)()

	res, err := im.coll(table).UpdateOne(context, selector, bson.M{"$set": update})
	if err != nil {
		context.WithFields(log.Fields{"err": err, "table": table, "selector": selector}).Error("UpdateOne failed")
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (im *impl) EnsureIndexes(context ctx.Ctx, table domain.Table, indexes ...Index) error {
	models := make([]mongo.IndexModel, 0, len(indexes))
	for _, idx := range indexes {
		models = append(models, mongo.IndexModel{
			Keys:    sortOption(idx.Keys...),
			Options: options.Index().SetUnique(idx.Unique),
		})
	}
	if _, err := im.coll(table).Indexes().CreateMany(context, models); err != nil {
		context.WithFields(log.Fields{"err": err, "table": table}).Error("Indexes.CreateMany failed")
		return err
	}
	return nil
}

func (im *impl) RunWithTransaction(context ctx.Ctx, run func(ctx.Ctx) error) error {
	if !im.transaction {
		return run(context)
	}

	session, err := im.client.StartSession()
	if err != nil {
		context.WithField("err", err).Error("StartSession failed")
		return err
	}
	defer session.EndSession(context)

	_, err = session.WithTransaction(context, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, run(ctx.Ctx{Context: sessCtx, Logger: context.Logger})
	})
	return err
}

func sortOption(fields ...string) bson.D {
	res := bson.D{}
	for _, f := range fields {
		if f == "" {
			continue
		}
		if f[0] == '-' {
			res = append(res, bson.E{Key: f[1:], Value: -1})
		} else {
			res = append(res, bson.E{Key: f, Value: 1})
		}
	}
	return res
}

func track(context ctx.Ctx, table domain.Table, action string, query interface{}) func() {
	start := time.Now()
	return func() {
		elapsed := time.Since(start)
		met.BumpHistogram("latency", float64(elapsed/time.Millisecond), "table", string(table), "action", action)
		if elapsed > slowThreshold {
			context.WithFields(log.Fields{
				"table":   table,
				"action":  action,
				"query":   query,
				"elapsed": elapsed.String(),
			}).Warn("slow query")
		}
	}
}
