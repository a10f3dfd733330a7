/*
Package query wraps the mongo driver for the repositories.
See https://pkg.go.dev/go.mongodb.org/mongo-driver/mongo for driver details.
*/
package query

import (
	"fmt"

	"github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/domain"
)

var (
	// ErrNotFound is mongo document not found error
	ErrNotFound = fmt.Errorf("document not found")

	// ErrDuplicateKey is an error when violating unique index
	ErrDuplicateKey = fmt.Errorf("duplicate key")
)

// Index is a compound index. Keys prefixed with "-" are descending.
type Index struct {
	Keys   []string
	Unique bool
}

// Mongo abstracts the mongo layer
type Mongo interface {
	// Insert inserts a new document to the table
	Insert(context ctx.Ctx, table domain.Table, insert interface{}) error

	// FindOne returns ErrNotFound when nothing matches
	FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error

	// Search sorts by `sort` ("field" ascending, "-field" descending), limit 0 means no limit
	Search(context ctx.Ctx, table domain.Table, offset, limit int, sort string, query, results interface{}) error

	// Upsert replaces the document matching selector, inserting it if missing
	Upsert(context ctx.Ctx, table domain.Table, selector, update interface{}) error

	// Patch $sets update on the document matching selector, ErrNotFound if nothing matches
	Patch(context ctx.Ctx, table domain.Table, selector, update interface{}) error

	// EnsureIndexes creates missing indexes
	EnsureIndexes(context ctx.Ctx, table domain.Table, indexes ...Index) error

	// RunWithTransaction runs fn in a transaction when the deployment supports it
	RunWithTransaction(context ctx.Ctx, run func(ctx.Ctx) error) error
}
