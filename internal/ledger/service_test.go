package ledger

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-ims/meridian-ims/internal/store"
)

func newTestService() *Service {
	svc := NewService(NewRepository(store.NewMemory()))
	svc.now = func() time.Time { return time.Date(2024, 11, 20, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestAppendStampsIDAndDate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	tx, err := svc.Append(ctx, Transaction{
		ProductID:  "1",
		Type:       TransactionTypeAdjustment,
		Quantity:   5,
		UnitPrice:  decimal.NewFromInt(15),
		TotalPrice: decimal.NewFromInt(75),
		Reason:     "Stocktake correction",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(tx.ID, "TXN-"))
	assert.Equal(t, "2024-11-20", tx.Date)

	entries, err := svc.Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, tx.ID, entries[0].ID)
}

func TestAppendKeepsProvidedStamps(t *testing.T) {
	svc := newTestService()

	tx, err := svc.Append(context.Background(), Transaction{
		ID:        "TXN-fixed",
		ProductID: "1",
		Type:      TransactionTypeReturn,
		Quantity:  1,
		Date:      "2024-11-01",
	})
	require.NoError(t, err)

	assert.Equal(t, "TXN-fixed", tx.ID)
	assert.Equal(t, "2024-11-01", tx.Date)
}

func TestCreateRestockOrder(t *testing.T) {
	svc := newTestService()

	order, err := svc.CreateOrder(context.Background(), CreateRestockOrderRequest{
		ProductID:    "9",
		Quantity:     40,
		ExpectedDate: "2024-11-25",
		SupplierID:   "SUP-01",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, RestockStatusPending, order.Status)
	assert.Equal(t, "2024-11-20", order.OrderedDate)
	assert.Equal(t, "2024-11-25", order.ExpectedDate)
}

func TestReceiveOrder(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, CreateRestockOrderRequest{ProductID: "9", Quantity: 40})
	require.NoError(t, err)

	received, err := svc.ReceiveOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, RestockStatusReceived, received.Status)

	// terminal: no further transitions
	_, err = svc.CancelOrder(ctx, order.ID)
	require.ErrorIs(t, err, ErrOrderClosed)
	_, err = svc.ReceiveOrder(ctx, order.ID)
	require.ErrorIs(t, err, ErrOrderClosed)
}

func TestCancelOrder(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, CreateRestockOrderRequest{ProductID: "9", Quantity: 40})
	require.NoError(t, err)

	cancelled, err := svc.CancelOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, RestockStatusCancelled, cancelled.Status)

	_, err = svc.ReceiveOrder(ctx, order.ID)
	require.ErrorIs(t, err, ErrOrderClosed)
}

func TestTransitionMissingOrder(t *testing.T) {
	svc := newTestService()

	_, err := svc.ReceiveOrder(context.Background(), "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}
