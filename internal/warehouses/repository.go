package warehouses

import (
	"context"

	"github.com/meridian-ims/meridian-ims/internal/store"
)

type Repository interface {
	List(ctx context.Context, includeArchived bool) ([]Warehouse, error)
	Archived(ctx context.Context) ([]Warehouse, error)
	Get(ctx context.Context, id string) (Warehouse, error)
	Save(ctx context.Context, warehouse Warehouse) error
	Delete(ctx context.Context, id string) error
}

type storeRepository struct {
	col store.Collection[Warehouse]
}

// NewRepository binds the warehouses collection to the record store.
func NewRepository(kv store.KV) Repository {
	return &storeRepository{col: store.NewCollection[Warehouse](kv, store.CollectionWarehouses)}
}

func (r *storeRepository) List(ctx context.Context, includeArchived bool) ([]Warehouse, error) {
	return r.col.List(ctx, includeArchived)
}

func (r *storeRepository) Archived(ctx context.Context) ([]Warehouse, error) {
	return r.col.Archived(ctx)
}

func (r *storeRepository) Get(ctx context.Context, id string) (Warehouse, error) {
	return r.col.Get(ctx, id)
}

func (r *storeRepository) Save(ctx context.Context, warehouse Warehouse) error {
	return r.col.Save(ctx, warehouse)
}

func (r *storeRepository) Delete(ctx context.Context, id string) error {
	return r.col.Delete(ctx, id)
}
