// Package ledger keeps the derived inventory movement log and restock
// orders. Entries are append-only: they describe movements that already
// happened and are never edited.
package ledger

import (
	"errors"

	"github.com/shopspring/decimal"
)

// TransactionType enumerates supported inventory movements.
type TransactionType string

const (
	TransactionTypePurchase   TransactionType = "purchase"
	TransactionTypeSale       TransactionType = "sale"
	TransactionTypeAdjustment TransactionType = "adjustment"
	TransactionTypeReturn     TransactionType = "return"
)

// Transaction records one inventory movement.
type Transaction struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"productId"`
	Type          TransactionType `json:"type"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	Date          string          `json:"date"`
	Reason        string          `json:"reason"`
	RelatedSaleID string          `json:"relatedSaleId,omitempty"`
}

func (t Transaction) RecordID() string     { return t.ID }
func (t Transaction) RecordArchived() bool { return false }

// RestockOrderStatus tracks the lifecycle of a restock order.
type RestockOrderStatus string

const (
	RestockStatusPending   RestockOrderStatus = "pending"
	RestockStatusReceived  RestockOrderStatus = "received"
	RestockStatusCancelled RestockOrderStatus = "cancelled"
)

// RestockOrder is a planned inbound replenishment.
type RestockOrder struct {
	ID           string             `json:"id"`
	ProductID    string             `json:"productId"`
	Quantity     int                `json:"quantity"`
	OrderedDate  string             `json:"orderedDate"`
	ExpectedDate string             `json:"expectedDate"`
	Status       RestockOrderStatus `json:"status"`
	SupplierID   string             `json:"supplierId"`
}

func (o RestockOrder) RecordID() string     { return o.ID }
func (o RestockOrder) RecordArchived() bool { return false }

// ErrOrderClosed rejects status transitions on orders that already left the
// pending state.
var ErrOrderClosed = errors.New("ledger: restock order already received or cancelled")
