package seed

import (
	"context"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-ims/meridian-ims/internal/categories"
	"github.com/meridian-ims/meridian-ims/internal/products"
	"github.com/meridian-ims/meridian-ims/internal/sales"
	"github.com/meridian-ims/meridian-ims/internal/store"
	"github.com/meridian-ims/meridian-ims/internal/warehouses"
)

func TestRunSeedsEmptyStore(t *testing.T) {
	kv := store.NewMemory()
	ctx := context.Background()

	require.NoError(t, Run(ctx, kv, slog.Default()))

	categoryList, err := categories.NewRepository(kv).List(ctx)
	require.NoError(t, err)
	assert.Len(t, categoryList, 8)

	warehouseList, err := warehouses.NewRepository(kv).List(ctx, true)
	require.NoError(t, err)
	require.Len(t, warehouseList, 3)
	assert.Equal(t, "WH-001", warehouseList[0].ID)
	assert.Equal(t, 5000, warehouseList[0].Capacity)
	assert.Equal(t, 3245, warehouseList[0].Used)

	productList, err := products.NewRepository(kv).List(ctx, true)
	require.NoError(t, err)
	require.Len(t, productList, 15)
	assert.Equal(t, "USB-C Fast Charger 65W", productList[0].Name)
	assert.Equal(t, 145, productList[0].Quantity)
	assert.True(t, productList[0].PurchasePrice.Equal(decimal.NewFromInt(15)))

	saleList, err := sales.NewRepository(kv).List(ctx, true)
	require.NoError(t, err)
	require.Len(t, saleList, 5)
	assert.Equal(t, "INV-20241116-001", saleList[0].InvoiceNo)

	// movement collections start out present but empty
	payload, err := kv.Read(ctx, store.CollectionTransactions)
	require.NoError(t, err)
	assert.NotEmpty(t, payload)
}

func TestRunLeavesPopulatedCollectionsAlone(t *testing.T) {
	kv := store.NewMemory()
	ctx := context.Background()

	repo := categories.NewRepository(kv)
	require.NoError(t, repo.Save(ctx, categories.Category{ID: "custom", Name: "Custom"}))

	require.NoError(t, Run(ctx, kv, slog.Default()))

	categoryList, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, categoryList, 1)
	assert.Equal(t, "custom", categoryList[0].ID)

	// other collections still seed independently
	productList, err := products.NewRepository(kv).List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, productList, 15)
}

func TestRunIsIdempotent(t *testing.T) {
	kv := store.NewMemory()
	ctx := context.Background()

	require.NoError(t, Run(ctx, kv, slog.Default()))
	require.NoError(t, Run(ctx, kv, slog.Default()))

	productList, err := products.NewRepository(kv).List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, productList, 15)
}
