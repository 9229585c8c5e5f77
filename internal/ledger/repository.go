package ledger

import (
	"context"

	"github.com/meridian-ims/meridian-ims/internal/store"
)

type Repository interface {
	ListTransactions(ctx context.Context) ([]Transaction, error)
	AppendTransaction(ctx context.Context, tx Transaction) error
	ListOrders(ctx context.Context) ([]RestockOrder, error)
	GetOrder(ctx context.Context, id string) (RestockOrder, error)
	SaveOrder(ctx context.Context, order RestockOrder) error
}

type storeRepository struct {
	transactions store.Collection[Transaction]
	orders       store.Collection[RestockOrder]
}

// NewRepository binds the transactions and restock-orders collections to the
// record store.
func NewRepository(kv store.KV) Repository {
	return &storeRepository{
		transactions: store.NewCollection[Transaction](kv, store.CollectionTransactions),
		orders:       store.NewCollection[RestockOrder](kv, store.CollectionRestockOrders),
	}
}

func (r *storeRepository) ListTransactions(ctx context.Context) ([]Transaction, error) {
	return r.transactions.All(ctx)
}

func (r *storeRepository) AppendTransaction(ctx context.Context, tx Transaction) error {
	return r.transactions.Save(ctx, tx)
}

func (r *storeRepository) ListOrders(ctx context.Context) ([]RestockOrder, error) {
	return r.orders.All(ctx)
}

func (r *storeRepository) GetOrder(ctx context.Context, id string) (RestockOrder, error) {
	return r.orders.Get(ctx, id)
}

func (r *storeRepository) SaveOrder(ctx context.Context, order RestockOrder) error {
	return r.orders.Save(ctx, order)
}
