// Package seed populates empty collections with the bootstrap fixture set on
// first run. Collections that already hold data are left untouched.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/meridian-ims/meridian-ims/internal/categories"
	"github.com/meridian-ims/meridian-ims/internal/ledger"
	"github.com/meridian-ims/meridian-ims/internal/products"
	"github.com/meridian-ims/meridian-ims/internal/sales"
	"github.com/meridian-ims/meridian-ims/internal/store"
	"github.com/meridian-ims/meridian-ims/internal/warehouses"
)

// Run seeds every empty collection. It is idempotent: a second run against a
// populated store writes nothing.
func Run(ctx context.Context, kv store.KV, logger *slog.Logger) error {
	if err := seedCollection(ctx, kv, store.CollectionCategories, defaultCategories()); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	if err := seedCollection(ctx, kv, store.CollectionWarehouses, defaultWarehouses()); err != nil {
		return fmt.Errorf("seed warehouses: %w", err)
	}
	if err := seedCollection(ctx, kv, store.CollectionProducts, defaultProducts()); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	if err := seedCollection(ctx, kv, store.CollectionSales, defaultSales()); err != nil {
		return fmt.Errorf("seed sales: %w", err)
	}
	if err := seedCollection(ctx, kv, store.CollectionTransactions, []ledger.Transaction{}); err != nil {
		return fmt.Errorf("seed transactions: %w", err)
	}
	if err := seedCollection(ctx, kv, store.CollectionRestockOrders, []ledger.RestockOrder{}); err != nil {
		return fmt.Errorf("seed restock orders: %w", err)
	}
	logger.Info("seed complete")
	return nil
}

func seedCollection[T store.Record](ctx context.Context, kv store.KV, name string, fixtures []T) error {
	payload, err := kv.Read(ctx, name)
	if err != nil {
		return err
	}
	if len(payload) > 0 {
		return nil
	}
	return store.NewCollection[T](kv, name).Replace(ctx, fixtures)
}

func defaultCategories() []categories.Category {
	return []categories.Category{
		{ID: "1", Name: "Chargers & Cables", Color: "#3B82F6", Icon: "Zap"},
		{ID: "2", Name: "Screen Protectors", Color: "#A855F7", Icon: "Shield"},
		{ID: "3", Name: "Phone Cases", Color: "#EC4899", Icon: "Package"},
		{ID: "4", Name: "Power Banks", Color: "#F97316", Icon: "Battery"},
		{ID: "5", Name: "Audio Accessories", Color: "#22C55E", Icon: "Headphones"},
		{ID: "6", Name: "Tempered Glass", Color: "#06B6D4", Icon: "Square"},
		{ID: "7", Name: "Phone Stands", Color: "#8B5CF6", Icon: "Mountain"},
		{ID: "8", Name: "Adapters & Hubs", Color: "#EAB308", Icon: "Zap"},
	}
}

func defaultWarehouses() []warehouses.Warehouse {
	return []warehouses.Warehouse{
		{
			ID: "WH-001", Name: "Main Store", Code: "MS-001", Location: "Downtown",
			Address: "123 Mobile Plaza, Tech City", Manager: "Ahmed Hassan",
			Phone: "+1-555-0101", Email: "ahmed@store.com", Capacity: 5000, Used: 3245,
		},
		{
			ID: "WH-002", Name: "Secondary Store", Code: "SS-002", Location: "Mall",
			Address: "456 Tech Mall, Shopping Center", Manager: "Fatima Khan",
			Phone: "+1-555-0102", Email: "fatima@store.com", Capacity: 3000, Used: 1890,
		},
		{
			ID: "WH-003", Name: "Warehouse", Code: "WH-003", Location: "Industrial Area",
			Address: "789 Logistics St, Business Zone", Manager: "Mike Johnson",
			Phone: "+1-555-0103", Email: "mike@store.com", Capacity: 8000, Used: 4108,
		},
	}
}

func defaultProducts() []products.Product {
	type fixture struct {
		id, name, categoryID, warehouseID, sku, barcode string
		purchase, wholesale, retail                     float64
		quantity                                        int
		unit, date                                      string
		reorderLevel                                    int
		cogs                                            float64
		unitsSold                                       int
		lastRestock                                     string
	}
	fixtures := []fixture{
		{"1", "USB-C Fast Charger 65W", "1", "WH-001", "UFC-65W-001", "BAR001", 15, 22, 35, 145, "Piece", "2024-11-15", 50, 1500, 100, "2024-11-10"},
		{"2", "Lightning Cable 2M", "1", "WH-001", "LC-2M-002", "BAR002", 3, 5, 8.99, 523, "Piece", "2024-11-14", 200, 450, 150, "2024-11-08"},
		{"3", "Screen Protector Tempered Glass", "2", "WH-002", "SP-TG-003", "BAR003", 1.5, 3, 5.99, 1200, "Pack", "2024-11-13", 400, 600, 400, "2024-11-12"},
		{"4", "Silicone Phone Case", "3", "WH-001", "SPC-001", "BAR004", 2.5, 4.5, 7.99, 890, "Piece", "2024-11-12", 300, 1000, 400, "2024-11-09"},
		{"5", "Power Bank 20000mAh", "4", "WH-003", "PB-20K-005", "BAR005", 18, 25, 39.99, 234, "Piece", "2024-11-11", 75, 900, 50, "2024-11-07"},
		{"6", "Wireless Earbuds", "5", "WH-002", "WEB-001", "BAR006", 25, 35, 54.99, 156, "Pair", "2024-11-10", 40, 1500, 60, "2024-11-05"},
		{"7", "Tempered Glass 9H", "6", "WH-001", "TG-9H-007", "BAR007", 2, 3.5, 6.99, 2100, "Pack", "2024-11-09", 600, 800, 400, "2024-11-06"},
		{"8", "Phone Stand Aluminum", "7", "WH-003", "PSA-001", "BAR008", 8, 12, 18.99, 267, "Piece", "2024-11-08", 80, 400, 50, "2024-11-04"},
		{"9", "USB-C Hub 7-in-1", "8", "WH-001", "UCH-7-009", "BAR009", 22, 32, 49.99, 89, "Piece", "2024-11-07", 30, 660, 30, "2024-11-03"},
		{"10", "Screen Protector (Glass) iPhone", "2", "WH-002", "SPG-IP-010", "BAR010", 2.5, 4, 7.99, 756, "Pack", "2024-11-06", 250, 750, 300, "2024-11-02"},
		{"11", "Leather Phone Case Premium", "3", "WH-003", "LPC-PM-011", "BAR011", 8, 12, 19.99, 178, "Piece", "2024-11-05", 50, 560, 70, "2024-11-01"},
		{"12", "Charging Dock Wireless", "1", "WH-001", "CDW-001", "BAR012", 20, 28, 44.99, 123, "Piece", "2024-11-04", 40, 600, 30, "2024-10-31"},
		{"13", "Phone Ring Stand", "7", "WH-002", "PRS-001", "BAR013", 3, 5, 8.99, 534, "Piece", "2024-11-03", 150, 450, 150, "2024-10-29"},
		{"14", "Type-C Data Cable", "1", "WH-003", "TCC-001", "BAR014", 2.5, 4, 6.99, 1245, "Piece", "2024-11-02", 400, 750, 300, "2024-10-28"},
		{"15", "Matte Screen Protector", "2", "WH-001", "MSP-001", "BAR015", 1.8, 3.2, 5.99, 890, "Pack", "2024-11-01", 300, 540, 300, "2024-10-26"},
	}
	out := make([]products.Product, 0, len(fixtures))
	for _, f := range fixtures {
		out = append(out, products.Product{
			ID:              f.id,
			Name:            f.name,
			CategoryID:      f.categoryID,
			WarehouseID:     f.warehouseID,
			SKU:             f.sku,
			Barcode:         f.barcode,
			PurchasePrice:   decimal.NewFromFloat(f.purchase),
			WholesalePrice:  decimal.NewFromFloat(f.wholesale),
			RetailPrice:     decimal.NewFromFloat(f.retail),
			Quantity:        f.quantity,
			Unit:            f.unit,
			Date:            f.date,
			ReorderLevel:    f.reorderLevel,
			CostOfGoodsSold: decimal.NewFromFloat(f.cogs),
			UnitsSold:       f.unitsSold,
			LastRestockDate: f.lastRestock,
		})
	}
	return out
}

func defaultSales() []sales.Sale {
	type fixture struct {
		id, invoiceNo, date, productID, customer string
		saleType                                 sales.SaleType
		quantity                                 int
		unitPrice, totalAmount                   float64
		method                                   sales.PaymentMethod
		warehouseID                              string
	}
	fixtures := []fixture{
		{"1", "INV-20241116-001", "2024-11-16 14:30", "1", "Ali Khan", sales.SaleTypeRetail, 2, 35, 70, sales.PaymentMethodCash, "WH-001"},
		{"2", "INV-20241116-002", "2024-11-16 11:15", "2", "Tech Store LLC", sales.SaleTypeWholesale, 50, 5, 250, sales.PaymentMethodCard, "WH-001"},
		{"3", "INV-20241116-003", "2024-11-16 09:45", "3", "Mobile Mart", sales.SaleTypeWholesale, 100, 3, 300, sales.PaymentMethodBankTransfer, "WH-002"},
		{"4", "INV-20241115-001", "2024-11-15 16:20", "4", "Walk-in", sales.SaleTypeRetail, 5, 7.99, 39.95, sales.PaymentMethodCard, "WH-001"},
		{"5", "INV-20241115-002", "2024-11-15 14:10", "5", "City Electronics", sales.SaleTypeWholesale, 20, 25, 500, sales.PaymentMethodCash, "WH-003"},
	}
	out := make([]sales.Sale, 0, len(fixtures))
	for _, f := range fixtures {
		out = append(out, sales.Sale{
			ID:            f.id,
			InvoiceNo:     f.invoiceNo,
			Date:          f.date,
			ProductID:     f.productID,
			Customer:      f.customer,
			SaleType:      f.saleType,
			Quantity:      f.quantity,
			UnitPrice:     decimal.NewFromFloat(f.unitPrice),
			TotalAmount:   decimal.NewFromFloat(f.totalAmount),
			PaymentMethod: f.method,
			PaymentStatus: sales.PaymentStatusPaid,
			WarehouseID:   f.warehouseID,
		})
	}
	return out
}
