package warehouses

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-ims/meridian-ims/internal/store"
)

func newTestService() *Service {
	return NewService(NewRepository(store.NewMemory()))
}

func TestCreateWarehouse(t *testing.T) {
	svc := newTestService()

	warehouse, err := svc.Create(context.Background(), CreateWarehouseRequest{
		Name:     "Main Store",
		Code:     "MS-001",
		Location: "Downtown",
		Manager:  "Ahmed Hassan",
		Capacity: 5000,
		Used:     3245,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(warehouse.ID, "WH-"))
	assert.Equal(t, "MS-001", warehouse.Code)
	assert.Equal(t, 5000, warehouse.Capacity)
	assert.False(t, warehouse.IsArchived)
}

func TestUpdateWarehousePartial(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	warehouse, err := svc.Create(ctx, CreateWarehouseRequest{Name: "Warehouse", Code: "WH-003", Capacity: 8000, Used: 4108})
	require.NoError(t, err)

	used := 4500
	updated, err := svc.Update(ctx, warehouse.ID, UpdateWarehouseRequest{Used: &used})
	require.NoError(t, err)

	assert.Equal(t, 4500, updated.Used)
	assert.Equal(t, 8000, updated.Capacity)
	assert.Equal(t, "WH-003", updated.Code)
}

func TestArchiveWarehouseRoundTrip(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	warehouse, err := svc.Create(ctx, CreateWarehouseRequest{Name: "Secondary Store", Code: "SS-002"})
	require.NoError(t, err)

	_, err = svc.Archive(ctx, warehouse.ID)
	require.NoError(t, err)

	active, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := svc.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	restored, err := svc.Unarchive(ctx, warehouse.ID)
	require.NoError(t, err)
	assert.False(t, restored.IsArchived)
	assert.Equal(t, "SS-002", restored.Code)
}

func TestPermanentlyDeleteWarehouse(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	warehouse, err := svc.Create(ctx, CreateWarehouseRequest{Name: "Pop-up", Code: "PU-004"})
	require.NoError(t, err)

	require.NoError(t, svc.PermanentlyDelete(ctx, warehouse.ID))

	_, err = svc.Get(ctx, warehouse.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}
