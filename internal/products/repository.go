package products

import (
	"context"

	"github.com/meridian-ims/meridian-ims/internal/store"
)

type Repository interface {
	List(ctx context.Context, includeArchived bool) ([]Product, error)
	Archived(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id string) (Product, error)
	Save(ctx context.Context, product Product) error
	Delete(ctx context.Context, id string) error
	CountActiveByCategory(ctx context.Context, categoryID string) (int, error)
}

type storeRepository struct {
	col store.Collection[Product]
}

// NewRepository binds the products collection to the record store.
func NewRepository(kv store.KV) Repository {
	return &storeRepository{col: store.NewCollection[Product](kv, store.CollectionProducts)}
}

func (r *storeRepository) List(ctx context.Context, includeArchived bool) ([]Product, error) {
	return r.col.List(ctx, includeArchived)
}

func (r *storeRepository) Archived(ctx context.Context) ([]Product, error) {
	return r.col.Archived(ctx)
}

func (r *storeRepository) Get(ctx context.Context, id string) (Product, error) {
	return r.col.Get(ctx, id)
}

func (r *storeRepository) Save(ctx context.Context, product Product) error {
	return r.col.Save(ctx, product)
}

func (r *storeRepository) Delete(ctx context.Context, id string) error {
	return r.col.Delete(ctx, id)
}

func (r *storeRepository) CountActiveByCategory(ctx context.Context, categoryID string) (int, error) {
	active, err := r.col.List(ctx, false)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, p := range active {
		if p.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}
