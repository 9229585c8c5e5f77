// Package archive aggregates archived records of every type for the archive
// view. Lifecycle transitions themselves live with each entity's own service.
package archive

import (
	"context"
	"fmt"

	"github.com/meridian-ims/meridian-ims/internal/products"
	"github.com/meridian-ims/meridian-ims/internal/sales"
	"github.com/meridian-ims/meridian-ims/internal/warehouses"
)

// record types surfaced in the aggregated listing
const (
	TypeProduct   = "product"
	TypeSale      = "sale"
	TypeWarehouse = "warehouse"
)

// Item is one archived record with enough context to restore or purge it.
type Item struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Name    string `json:"name"`
	Date    string `json:"date"`
	Details any    `json:"details"`
}

type Service struct {
	products   products.Repository
	sales      sales.Repository
	warehouses warehouses.Repository
}

func NewService(productRepo products.Repository, saleRepo sales.Repository, warehouseRepo warehouses.Repository) *Service {
	return &Service{products: productRepo, sales: saleRepo, warehouses: warehouseRepo}
}

// List returns every archived product, sale and warehouse.
func (s *Service) List(ctx context.Context) ([]Item, error) {
	archivedProducts, err := s.products.Archived(ctx)
	if err != nil {
		return nil, fmt.Errorf("archived products: %w", err)
	}
	archivedSales, err := s.sales.Archived(ctx)
	if err != nil {
		return nil, fmt.Errorf("archived sales: %w", err)
	}
	archivedWarehouses, err := s.warehouses.Archived(ctx)
	if err != nil {
		return nil, fmt.Errorf("archived warehouses: %w", err)
	}

	items := make([]Item, 0, len(archivedProducts)+len(archivedSales)+len(archivedWarehouses))
	for _, p := range archivedProducts {
		items = append(items, Item{ID: p.ID, Type: TypeProduct, Name: p.Name, Date: p.Date, Details: p})
	}
	for _, sale := range archivedSales {
		items = append(items, Item{ID: sale.ID, Type: TypeSale, Name: sale.InvoiceNo, Date: sale.Date, Details: sale})
	}
	for _, w := range archivedWarehouses {
		items = append(items, Item{ID: w.ID, Type: TypeWarehouse, Name: w.Name, Details: w})
	}
	return items, nil
}
