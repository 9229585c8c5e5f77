package insights

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/meridian-ims/meridian-ims/internal/categories"
	"github.com/meridian-ims/meridian-ims/internal/products"
	"github.com/meridian-ims/meridian-ims/internal/sales"
	"github.com/meridian-ims/meridian-ims/internal/store"
	"github.com/meridian-ims/meridian-ims/internal/warehouses"
)

// unknownLabel resolves dangling references in read-time views. Repositories
// themselves stay explicit and return store.ErrNotFound.
const unknownLabel = "Unknown"

type Service struct {
	products   products.Repository
	sales      sales.Repository
	warehouses warehouses.Repository
	categories categories.Repository
	now        func() time.Time
}

func NewService(
	productRepo products.Repository,
	saleRepo sales.Repository,
	warehouseRepo warehouses.Repository,
	categoryRepo categories.Repository,
) *Service {
	return &Service{
		products:   productRepo,
		sales:      saleRepo,
		warehouses: warehouseRepo,
		categories: categoryRepo,
		now:        time.Now,
	}
}

// Summary aggregates the dashboard headline numbers over active records.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	activeProducts, err := s.products.List(ctx, false)
	if err != nil {
		return Summary{}, fmt.Errorf("list products: %w", err)
	}
	activeSales, err := s.sales.List(ctx, false)
	if err != nil {
		return Summary{}, fmt.Errorf("list sales: %w", err)
	}

	summary := Summary{
		TotalProducts:  len(activeProducts),
		TotalSales:     len(activeSales),
		StockValue:     decimal.Zero,
		RetailValue:    decimal.Zero,
		ExpectedProfit: decimal.Zero,
		TodayRevenue:   decimal.Zero,
	}
	for _, p := range activeProducts {
		qty := decimal.NewFromInt(int64(p.Quantity))
		summary.StockValue = summary.StockValue.Add(p.PurchasePrice.Mul(qty))
		summary.RetailValue = summary.RetailValue.Add(p.RetailPrice.Mul(qty))
		if p.LowStock() {
			summary.LowStockCount++
		}
	}
	summary.ExpectedProfit = summary.RetailValue.Sub(summary.StockValue)

	today := s.now().Format("2006-01-02")
	for _, sale := range activeSales {
		if strings.HasPrefix(sale.Date, today) {
			summary.TodaySales++
			summary.TodayRevenue = summary.TodayRevenue.Add(sale.TotalAmount)
		}
	}
	return summary, nil
}

// Inventory returns per-product valuation rows with reference names resolved
// defensively.
func (s *Service) Inventory(ctx context.Context) ([]ProductInsight, error) {
	activeProducts, err := s.products.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	categoryNames, err := s.categoryNames(ctx)
	if err != nil {
		return nil, err
	}
	warehouseNames, err := s.warehouseNames(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]ProductInsight, 0, len(activeProducts))
	for _, p := range activeProducts {
		qty := decimal.NewFromInt(int64(p.Quantity))
		rows = append(rows, ProductInsight{
			ProductID:     p.ID,
			Name:          p.Name,
			CategoryName:  nameOr(categoryNames, p.CategoryID),
			WarehouseName: nameOr(warehouseNames, p.WarehouseID),
			Quantity:      p.Quantity,
			ReorderLevel:  p.ReorderLevel,
			StockValue:    p.PurchasePrice.Mul(qty),
			RetailValue:   p.RetailPrice.Mul(qty),
			LowStock:      p.LowStock(),
		})
	}
	return rows, nil
}

// LowStock lists active products at or below their reorder level.
func (s *Service) LowStock(ctx context.Context) ([]products.Product, error) {
	activeProducts, err := s.products.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	low := make([]products.Product, 0)
	for _, p := range activeProducts {
		if p.LowStock() {
			low = append(low, p)
		}
	}
	return low, nil
}

// SalesProfit computes actual profit per active sale against the product's
// current purchase price. Sales with dangling product references report zero
// cost and an "Unknown" product name.
func (s *Service) SalesProfit(ctx context.Context) ([]SaleInsight, error) {
	activeSales, err := s.sales.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	allProducts, err := s.products.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	byID := make(map[string]products.Product, len(allProducts))
	for _, p := range allProducts {
		byID[p.ID] = p
	}

	rows := make([]SaleInsight, 0, len(activeSales))
	for _, sale := range activeSales {
		row := SaleInsight{
			SaleID:      sale.ID,
			InvoiceNo:   sale.InvoiceNo,
			Date:        sale.Date,
			ProductName: unknownLabel,
			Quantity:    sale.Quantity,
			TotalAmount: sale.TotalAmount,
			Cost:        decimal.Zero,
		}
		if p, ok := byID[sale.ProductID]; ok {
			row.ProductName = p.Name
			row.Cost = p.PurchasePrice.Mul(decimal.NewFromInt(int64(sale.Quantity)))
		}
		row.Profit = sale.TotalAmount.Sub(row.Cost)
		rows = append(rows, row)
	}
	return rows, nil
}

// Utilization reports used over capacity for every active warehouse. Zero
// capacity yields zero to avoid dividing by nothing.
func (s *Service) Utilization(ctx context.Context) ([]WarehouseUtilization, error) {
	activeWarehouses, err := s.warehouses.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	rows := make([]WarehouseUtilization, 0, len(activeWarehouses))
	for _, w := range activeWarehouses {
		row := WarehouseUtilization{
			WarehouseID: w.ID,
			Name:        w.Name,
			Code:        w.Code,
			Capacity:    w.Capacity,
			Used:        w.Used,
		}
		if w.Capacity > 0 {
			row.Utilization = float64(w.Used) / float64(w.Capacity) * 100
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// StockTurnover relates cumulative COGS to current stock value. A product
// with zero COGS has not turned at all; a missing product reports zero.
func (s *Service) StockTurnover(ctx context.Context, productID string) (Turnover, error) {
	turnover := Turnover{ProductID: productID, Ratio: decimal.Zero}
	product, err := s.products.Get(ctx, productID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return turnover, nil
		}
		return Turnover{}, fmt.Errorf("get product: %w", err)
	}
	if product.CostOfGoodsSold.IsZero() {
		return turnover, nil
	}
	held := product.PurchasePrice.Mul(decimal.NewFromInt(int64(product.Quantity)))
	if held.IsZero() {
		held = decimal.NewFromInt(1)
	}
	turnover.Ratio = product.CostOfGoodsSold.Div(held)
	return turnover, nil
}

func (s *Service) categoryNames(ctx context.Context) (map[string]string, error) {
	list, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	names := make(map[string]string, len(list))
	for _, c := range list {
		names[c.ID] = c.Name
	}
	return names, nil
}

func (s *Service) warehouseNames(ctx context.Context) (map[string]string, error) {
	list, err := s.warehouses.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	names := make(map[string]string, len(list))
	for _, w := range list {
		names[w.ID] = w.Name
	}
	return names, nil
}

func nameOr(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return unknownLabel
}
