package products

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Product is the central inventory record. Quantity, UnitsSold and
// CostOfGoodsSold are mutated by the sale recorder and restock operations,
// everything else only through the edit form.
type Product struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	CategoryID      string          `json:"categoryId"`
	WarehouseID     string          `json:"warehouseId"`
	SKU             string          `json:"sku"`
	Barcode         string          `json:"barcode"`
	PurchasePrice   decimal.Decimal `json:"purchasePrice"`
	WholesalePrice  decimal.Decimal `json:"wholesalePrice"`
	RetailPrice     decimal.Decimal `json:"retailPrice"`
	Quantity        int             `json:"quantity"`
	Unit            string          `json:"unit"`
	Date            string          `json:"date"`
	ReorderLevel    int             `json:"reorderLevel"`
	CostOfGoodsSold decimal.Decimal `json:"costOfGoodsSold"`
	UnitsSold       int             `json:"unitsSold"`
	LastRestockDate string          `json:"lastRestockDate"`
	IsArchived      bool            `json:"isArchived"`
}

func (p Product) RecordID() string     { return p.ID }
func (p Product) RecordArchived() bool { return p.IsArchived }

// LowStock reports whether the product sits at or below its reorder level.
func (p Product) LowStock() bool {
	return p.Quantity <= p.ReorderLevel
}

// ErrInvalidQuantity rejects non-positive restock quantities.
var ErrInvalidQuantity = errors.New("products: quantity must be positive")
