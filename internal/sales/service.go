package sales

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/meridian-ims/meridian-ims/internal/ledger"
	"github.com/meridian-ims/meridian-ims/internal/products"
	"github.com/meridian-ims/meridian-ims/internal/store"
)

// ServiceConfig tunes sale recording behaviour.
type ServiceConfig struct {
	// EnforceStock makes Record fail with ErrInsufficientStock before any
	// write when the sale would drive product quantity negative. When off,
	// the operation mirrors the form-level-warning-only policy: quantity may
	// go negative.
	EnforceStock bool
}

type Service struct {
	repo     Repository
	products products.Repository
	ledger   *ledger.Service
	cfg      ServiceConfig
	now      func() time.Time
}

func NewService(repo Repository, productRepo products.Repository, ledgerSvc *ledger.Service, cfg ServiceConfig) *Service {
	return &Service{
		repo:     repo,
		products: productRepo,
		ledger:   ledgerSvc,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (s *Service) List(ctx context.Context, includeArchived bool) ([]Sale, error) {
	return s.repo.List(ctx, includeArchived)
}

func (s *Service) Archived(ctx context.Context) ([]Sale, error) {
	return s.repo.Archived(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Sale, error) {
	return s.repo.Get(ctx, id)
}

// Record persists the sale, applies the stock movement to the referenced
// product and appends a ledger entry for it.
//
// The sale itself is written unconditionally. When the product id does not
// resolve, the stock update and the ledger entry are skipped and the sale
// still persists; dangling references are resolved at read time. There is no
// rollback: a store failure after the first write leaves the sale recorded
// without a matching stock decrement.
func (s *Service) Record(ctx context.Context, req RecordSaleRequest) (Sale, error) {
	unitPrice := decimal.NewFromFloat(req.UnitPrice)
	quantity := decimal.NewFromInt(int64(req.Quantity))

	sale := Sale{
		ID:            uuid.NewString(),
		InvoiceNo:     req.InvoiceNo,
		Date:          req.Date,
		ProductID:     req.ProductID,
		Customer:      req.Customer,
		SaleType:      SaleType(req.SaleType),
		Quantity:      req.Quantity,
		UnitPrice:     unitPrice,
		TotalAmount:   unitPrice.Mul(quantity),
		PaymentMethod: PaymentMethod(req.PaymentMethod),
		PaymentStatus: PaymentStatus(req.PaymentStatus),
		WarehouseID:   req.WarehouseID,
	}
	if sale.InvoiceNo == "" {
		sale.InvoiceNo = s.nextInvoiceNo()
	}
	if sale.Date == "" {
		sale.Date = s.now().Format("2006-01-02 15:04")
	}

	product, err := s.products.Get(ctx, sale.ProductID)
	productFound := err == nil
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return Sale{}, fmt.Errorf("get product: %w", err)
	}
	if s.cfg.EnforceStock && productFound && product.Quantity < sale.Quantity {
		return Sale{}, ErrInsufficientStock
	}

	if err := s.repo.Save(ctx, sale); err != nil {
		return Sale{}, fmt.Errorf("save sale: %w", err)
	}
	if !productFound {
		return sale, nil
	}

	cost := product.PurchasePrice.Mul(quantity)
	product.Quantity -= sale.Quantity
	product.UnitsSold += sale.Quantity
	product.CostOfGoodsSold = product.CostOfGoodsSold.Add(cost)
	if err := s.products.Save(ctx, product); err != nil {
		return Sale{}, fmt.Errorf("apply stock movement: %w", err)
	}

	_, err = s.ledger.Append(ctx, ledger.Transaction{
		ProductID:     sale.ProductID,
		Type:          ledger.TransactionTypeSale,
		Quantity:      sale.Quantity,
		UnitPrice:     product.PurchasePrice,
		TotalPrice:    cost,
		Date:          sale.Date,
		Reason:        "Sale: " + sale.InvoiceNo,
		RelatedSaleID: sale.ID,
	})
	if err != nil {
		return Sale{}, fmt.Errorf("log sale movement: %w", err)
	}
	return sale, nil
}

// Archive hides the sale from active queries.
func (s *Service) Archive(ctx context.Context, id string) (Sale, error) {
	return s.setArchived(ctx, id, true)
}

// Unarchive returns the sale to the active set with all fields unchanged.
func (s *Service) Unarchive(ctx context.Context, id string) (Sale, error) {
	return s.setArchived(ctx, id, false)
}

func (s *Service) setArchived(ctx context.Context, id string, archived bool) (Sale, error) {
	sale, err := s.repo.Get(ctx, id)
	if err != nil {
		return Sale{}, fmt.Errorf("get sale: %w", err)
	}
	sale.IsArchived = archived
	if err := s.repo.Save(ctx, sale); err != nil {
		return Sale{}, fmt.Errorf("save sale: %w", err)
	}
	return sale, nil
}

// PermanentlyDelete removes the sale from the store. Terminal. The stock
// movement it caused is not reversed.
func (s *Service) PermanentlyDelete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) nextInvoiceNo() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("INV-%s-%s", s.now().Format("20060102"), suffix)
}
