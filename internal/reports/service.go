// Package reports renders record-store snapshots into downloadable Excel
// workbooks.
package reports

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/meridian-ims/meridian-ims/internal/insights"
)

const sheet = "Sheet1"

type Service struct {
	insights *insights.Service
}

func NewService(insightsSvc *insights.Service) *Service {
	return &Service{insights: insightsSvc}
}

// InventoryWorkbook exports the per-product valuation report.
func (s *Service) InventoryWorkbook(ctx context.Context) (*excelize.File, error) {
	rows, err := s.insights.Inventory(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	headers := []string{"Product", "Category", "Warehouse", "Quantity", "Reorder Level", "Stock Value", "Retail Value", "Low Stock"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}
	for i, row := range rows {
		values := []any{
			row.Name,
			row.CategoryName,
			row.WarehouseName,
			row.Quantity,
			row.ReorderLevel,
			row.StockValue.InexactFloat64(),
			row.RetailValue.InexactFloat64(),
			row.LowStock,
		}
		if err := writeRow(f, i+2, values); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// SalesWorkbook exports per-sale revenue, cost and profit.
func (s *Service) SalesWorkbook(ctx context.Context) (*excelize.File, error) {
	rows, err := s.insights.SalesProfit(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	headers := []string{"Invoice", "Date", "Product", "Quantity", "Total Amount", "Cost", "Profit"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}
	for i, row := range rows {
		values := []any{
			row.InvoiceNo,
			row.Date,
			row.ProductName,
			row.Quantity,
			row.TotalAmount.InexactFloat64(),
			row.Cost.InexactFloat64(),
			row.Profit.InexactFloat64(),
		}
		if err := writeRow(f, i+2, values); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func writeRow(f *excelize.File, rowIdx int, values []any) error {
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowIdx)
		if err != nil {
			return fmt.Errorf("data cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("write cell %s: %w", cell, err)
		}
	}
	return nil
}
