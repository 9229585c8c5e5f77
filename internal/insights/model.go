// Package insights computes derived aggregates over the current record-store
// snapshot. Every function recomputes from scratch on invocation: there is no
// cache and no incremental update, correctness comes from re-reading the
// authoritative collections after each mutation.
package insights

import "github.com/shopspring/decimal"

// Summary is the dashboard headline block.
type Summary struct {
	TotalProducts  int             `json:"totalProducts"`
	TotalSales     int             `json:"totalSales"`
	StockValue     decimal.Decimal `json:"stockValue"`
	RetailValue    decimal.Decimal `json:"retailValue"`
	ExpectedProfit decimal.Decimal `json:"expectedProfit"`
	LowStockCount  int             `json:"lowStockCount"`
	TodaySales     int             `json:"todaySales"`
	TodayRevenue   decimal.Decimal `json:"todayRevenue"`
}

// ProductInsight is one row of the inventory report.
type ProductInsight struct {
	ProductID     string          `json:"productId"`
	Name          string          `json:"name"`
	CategoryName  string          `json:"categoryName"`
	WarehouseName string          `json:"warehouseName"`
	Quantity      int             `json:"quantity"`
	ReorderLevel  int             `json:"reorderLevel"`
	StockValue    decimal.Decimal `json:"stockValue"`
	RetailValue   decimal.Decimal `json:"retailValue"`
	LowStock      bool            `json:"lowStock"`
}

// SaleInsight carries the actual-profit calculation for one sale. Cost uses
// the product's current purchase price, not the price at sale time.
type SaleInsight struct {
	SaleID      string          `json:"saleId"`
	InvoiceNo   string          `json:"invoiceNo"`
	Date        string          `json:"date"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Cost        decimal.Decimal `json:"cost"`
	Profit      decimal.Decimal `json:"profit"`
}

// WarehouseUtilization expresses used over total capacity as a percentage.
// Values above 100 are reported as-is.
type WarehouseUtilization struct {
	WarehouseID string  `json:"warehouseId"`
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	Capacity    int     `json:"capacity"`
	Used        int     `json:"used"`
	Utilization float64 `json:"utilization"`
}

// Turnover relates cumulative cost of goods sold to the stock currently held.
type Turnover struct {
	ProductID string          `json:"productId"`
	Ratio     decimal.Decimal `json:"ratio"`
}
