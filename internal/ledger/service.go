package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Append stores a movement entry, stamping id and date when absent.
func (s *Service) Append(ctx context.Context, tx Transaction) (Transaction, error) {
	if tx.ID == "" {
		tx.ID = "TXN-" + uuid.NewString()
	}
	if tx.Date == "" {
		tx.Date = s.now().Format(dateLayout)
	}
	if err := s.repo.AppendTransaction(ctx, tx); err != nil {
		return Transaction{}, fmt.Errorf("append transaction: %w", err)
	}
	return tx, nil
}

func (s *Service) Transactions(ctx context.Context) ([]Transaction, error) {
	return s.repo.ListTransactions(ctx)
}

func (s *Service) Orders(ctx context.Context) ([]RestockOrder, error) {
	return s.repo.ListOrders(ctx)
}

func (s *Service) CreateOrder(ctx context.Context, req CreateRestockOrderRequest) (RestockOrder, error) {
	order := RestockOrder{
		ID:           uuid.NewString(),
		ProductID:    req.ProductID,
		Quantity:     req.Quantity,
		OrderedDate:  s.now().Format(dateLayout),
		ExpectedDate: req.ExpectedDate,
		Status:       RestockStatusPending,
		SupplierID:   req.SupplierID,
	}
	if err := s.repo.SaveOrder(ctx, order); err != nil {
		return RestockOrder{}, fmt.Errorf("create restock order: %w", err)
	}
	return order, nil
}

// ReceiveOrder marks a pending order as received. Applying the stock movement
// itself stays with the product restock operation.
func (s *Service) ReceiveOrder(ctx context.Context, id string) (RestockOrder, error) {
	return s.transition(ctx, id, RestockStatusReceived)
}

// CancelOrder marks a pending order as cancelled.
func (s *Service) CancelOrder(ctx context.Context, id string) (RestockOrder, error) {
	return s.transition(ctx, id, RestockStatusCancelled)
}

func (s *Service) transition(ctx context.Context, id string, next RestockOrderStatus) (RestockOrder, error) {
	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return RestockOrder{}, fmt.Errorf("get restock order: %w", err)
	}
	if order.Status != RestockStatusPending {
		return RestockOrder{}, ErrOrderClosed
	}
	order.Status = next
	if err := s.repo.SaveOrder(ctx, order); err != nil {
		return RestockOrder{}, fmt.Errorf("update restock order: %w", err)
	}
	return order, nil
}
