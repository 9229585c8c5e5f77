package categories

import (
	"context"

	"github.com/meridian-ims/meridian-ims/internal/store"
)

type Repository interface {
	List(ctx context.Context) ([]Category, error)
	Get(ctx context.Context, id string) (Category, error)
	Save(ctx context.Context, category Category) error
	Delete(ctx context.Context, id string) error
}

type storeRepository struct {
	col store.Collection[Category]
}

// NewRepository binds the categories collection to the record store.
func NewRepository(kv store.KV) Repository {
	return &storeRepository{col: store.NewCollection[Category](kv, store.CollectionCategories)}
}

func (r *storeRepository) List(ctx context.Context) ([]Category, error) {
	return r.col.All(ctx)
}

func (r *storeRepository) Get(ctx context.Context, id string) (Category, error) {
	return r.col.Get(ctx, id)
}

func (r *storeRepository) Save(ctx context.Context, category Category) error {
	return r.col.Save(ctx, category)
}

func (r *storeRepository) Delete(ctx context.Context, id string) error {
	return r.col.Delete(ctx, id)
}
