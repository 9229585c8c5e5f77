package sales

import (
	"context"

	"github.com/meridian-ims/meridian-ims/internal/store"
)

type Repository interface {
	List(ctx context.Context, includeArchived bool) ([]Sale, error)
	Archived(ctx context.Context) ([]Sale, error)
	Get(ctx context.Context, id string) (Sale, error)
	Save(ctx context.Context, sale Sale) error
	Delete(ctx context.Context, id string) error
}

type storeRepository struct {
	col store.Collection[Sale]
}

// NewRepository binds the sales collection to the record store.
func NewRepository(kv store.KV) Repository {
	return &storeRepository{col: store.NewCollection[Sale](kv, store.CollectionSales)}
}

func (r *storeRepository) List(ctx context.Context, includeArchived bool) ([]Sale, error) {
	return r.col.List(ctx, includeArchived)
}

func (r *storeRepository) Archived(ctx context.Context) ([]Sale, error) {
	return r.col.Archived(ctx)
}

func (r *storeRepository) Get(ctx context.Context, id string) (Sale, error) {
	return r.col.Get(ctx, id)
}

func (r *storeRepository) Save(ctx context.Context, sale Sale) error {
	return r.col.Save(ctx, sale)
}

func (r *storeRepository) Delete(ctx context.Context, id string) error {
	return r.col.Delete(ctx, id)
}
