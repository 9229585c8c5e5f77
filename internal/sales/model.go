package sales

import (
	"errors"

	"github.com/shopspring/decimal"
)

// SaleType selects which of the two unit prices a transaction was made at.
type SaleType string

const (
	SaleTypeWholesale SaleType = "wholesale"
	SaleTypeRetail    SaleType = "retail"
)

// PaymentMethod enumerates accepted payment channels.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodUPI          PaymentMethod = "upi"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCredit       PaymentMethod = "credit"
)

// PaymentStatus tracks settlement of the invoice.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
)

// Sale is immutable once recorded, except for the archive flag. TotalAmount
// is always UnitPrice times Quantity, computed at record time.
type Sale struct {
	ID            string          `json:"id"`
	InvoiceNo     string          `json:"invoiceNo"`
	Date          string          `json:"date"`
	ProductID     string          `json:"productId"`
	Customer      string          `json:"customer"`
	SaleType      SaleType        `json:"saleType"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
	WarehouseID   string          `json:"warehouseId"`
	IsArchived    bool            `json:"isArchived"`
}

func (s Sale) RecordID() string     { return s.ID }
func (s Sale) RecordArchived() bool { return s.IsArchived }

// ErrInsufficientStock is returned before any write when stock enforcement
// is enabled and the sale would drive quantity negative.
var ErrInsufficientStock = errors.New("sales: insufficient stock")
