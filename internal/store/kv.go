// Package store implements the record store: flat collections of JSON
// documents persisted and read back as whole-collection snapshots. There is
// no partial or streaming access and no transactional guarantee across
// collections.
package store

import (
	"context"
	"errors"
)

// Collection names used across the application.
const (
	CollectionProducts      = "products"
	CollectionSales         = "sales"
	CollectionWarehouses    = "warehouses"
	CollectionCategories    = "categories"
	CollectionTransactions  = "transactions"
	CollectionRestockOrders = "restock-orders"
)

// ErrNotFound indicates a record id missing from its collection.
var ErrNotFound = errors.New("store: record not found")

// KV is the persistence boundary. Reading a collection that was never
// written returns an empty payload with no error; write failures propagate
// to the caller.
type KV interface {
	Read(ctx context.Context, collection string) ([]byte, error)
	Write(ctx context.Context, collection string, payload []byte) error
}
