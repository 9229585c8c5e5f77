package products

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/meridian-ims/meridian-ims/internal/ledger"
)

const dateLayout = "2006-01-02"

type Service struct {
	repo   Repository
	ledger *ledger.Service
	now    func() time.Time
}

func NewService(repo Repository, ledgerSvc *ledger.Service) *Service {
	return &Service{repo: repo, ledger: ledgerSvc, now: time.Now}
}

func (s *Service) List(ctx context.Context, includeArchived bool) ([]Product, error) {
	return s.repo.List(ctx, includeArchived)
}

func (s *Service) Archived(ctx context.Context) ([]Product, error) {
	return s.repo.Archived(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Product, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateProductRequest) (Product, error) {
	product := Product{
		ID:              uuid.NewString(),
		Name:            req.Name,
		CategoryID:      req.CategoryID,
		WarehouseID:     req.WarehouseID,
		SKU:             req.SKU,
		Barcode:         req.Barcode,
		PurchasePrice:   decimal.NewFromFloat(req.PurchasePrice),
		WholesalePrice:  decimal.NewFromFloat(req.WholesalePrice),
		RetailPrice:     decimal.NewFromFloat(req.RetailPrice),
		Quantity:        req.Quantity,
		Unit:            req.Unit,
		Date:            s.now().Format(dateLayout),
		ReorderLevel:    req.ReorderLevel,
		CostOfGoodsSold: decimal.Zero,
		IsArchived:      false,
	}
	if err := s.repo.Save(ctx, product); err != nil {
		return Product{}, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateProductRequest) (Product, error) {
	product, err := s.repo.Get(ctx, id)
	if err != nil {
		return Product{}, fmt.Errorf("get product: %w", err)
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
	}
	if req.WarehouseID != nil {
		product.WarehouseID = *req.WarehouseID
	}
	if req.SKU != nil {
		product.SKU = *req.SKU
	}
	if req.Barcode != nil {
		product.Barcode = *req.Barcode
	}
	if req.PurchasePrice != nil {
		product.PurchasePrice = decimal.NewFromFloat(*req.PurchasePrice)
	}
	if req.WholesalePrice != nil {
		product.WholesalePrice = decimal.NewFromFloat(*req.WholesalePrice)
	}
	if req.RetailPrice != nil {
		product.RetailPrice = decimal.NewFromFloat(*req.RetailPrice)
	}
	if req.Quantity != nil {
		product.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}
	if req.ReorderLevel != nil {
		product.ReorderLevel = *req.ReorderLevel
	}
	if err := s.repo.Save(ctx, product); err != nil {
		return Product{}, fmt.Errorf("update product: %w", err)
	}
	return product, nil
}

// Archive hides the product from active queries. Referencing sales are left
// untouched.
func (s *Service) Archive(ctx context.Context, id string) (Product, error) {
	return s.setArchived(ctx, id, true)
}

// Unarchive returns the product to the active set with all fields unchanged.
func (s *Service) Unarchive(ctx context.Context, id string) (Product, error) {
	return s.setArchived(ctx, id, false)
}

func (s *Service) setArchived(ctx context.Context, id string, archived bool) (Product, error) {
	product, err := s.repo.Get(ctx, id)
	if err != nil {
		return Product{}, fmt.Errorf("get product: %w", err)
	}
	product.IsArchived = archived
	if err := s.repo.Save(ctx, product); err != nil {
		return Product{}, fmt.Errorf("save product: %w", err)
	}
	return product, nil
}

// PermanentlyDelete removes the product from the store. Terminal and
// irreversible; dangling sale references are tolerated and resolved at read
// time.
func (s *Service) PermanentlyDelete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Restock adds inbound quantity, stamps the restock date and appends a
// purchase movement to the ledger.
func (s *Service) Restock(ctx context.Context, id string, req RestockRequest) (Product, error) {
	if req.Quantity <= 0 {
		return Product{}, ErrInvalidQuantity
	}
	product, err := s.repo.Get(ctx, id)
	if err != nil {
		return Product{}, fmt.Errorf("get product: %w", err)
	}
	oldQuantity := product.Quantity
	product.Quantity += req.Quantity
	product.LastRestockDate = s.now().Format(dateLayout)
	if err := s.repo.Save(ctx, product); err != nil {
		return Product{}, fmt.Errorf("save product: %w", err)
	}

	costPerUnit := decimal.NewFromFloat(req.CostPerUnit)
	_, err = s.ledger.Append(ctx, ledger.Transaction{
		ProductID:  product.ID,
		Type:       ledger.TransactionTypePurchase,
		Quantity:   req.Quantity,
		UnitPrice:  costPerUnit,
		TotalPrice: costPerUnit.Mul(decimal.NewFromInt(int64(req.Quantity))),
		Reason:     fmt.Sprintf("Restock: %d -> %d", oldQuantity, product.Quantity),
	})
	if err != nil {
		return Product{}, fmt.Errorf("log restock movement: %w", err)
	}
	return product, nil
}
