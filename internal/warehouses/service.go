package warehouses

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, includeArchived bool) ([]Warehouse, error) {
	return s.repo.List(ctx, includeArchived)
}

func (s *Service) Archived(ctx context.Context) ([]Warehouse, error) {
	return s.repo.Archived(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Warehouse, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateWarehouseRequest) (Warehouse, error) {
	warehouse := Warehouse{
		ID:       "WH-" + uuid.NewString(),
		Name:     req.Name,
		Code:     req.Code,
		Location: req.Location,
		Address:  req.Address,
		Manager:  req.Manager,
		Phone:    req.Phone,
		Email:    req.Email,
		Capacity: req.Capacity,
		Used:     req.Used,
	}
	if err := s.repo.Save(ctx, warehouse); err != nil {
		return Warehouse{}, fmt.Errorf("create warehouse: %w", err)
	}
	return warehouse, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateWarehouseRequest) (Warehouse, error) {
	warehouse, err := s.repo.Get(ctx, id)
	if err != nil {
		return Warehouse{}, fmt.Errorf("get warehouse: %w", err)
	}
	if req.Name != nil {
		warehouse.Name = *req.Name
	}
	if req.Code != nil {
		warehouse.Code = *req.Code
	}
	if req.Location != nil {
		warehouse.Location = *req.Location
	}
	if req.Address != nil {
		warehouse.Address = *req.Address
	}
	if req.Manager != nil {
		warehouse.Manager = *req.Manager
	}
	if req.Phone != nil {
		warehouse.Phone = *req.Phone
	}
	if req.Email != nil {
		warehouse.Email = *req.Email
	}
	if req.Capacity != nil {
		warehouse.Capacity = *req.Capacity
	}
	if req.Used != nil {
		warehouse.Used = *req.Used
	}
	if err := s.repo.Save(ctx, warehouse); err != nil {
		return Warehouse{}, fmt.Errorf("update warehouse: %w", err)
	}
	return warehouse, nil
}

// Archive hides the warehouse from active queries. Products assigned to it
// are left untouched; there is no cascade.
func (s *Service) Archive(ctx context.Context, id string) (Warehouse, error) {
	return s.setArchived(ctx, id, true)
}

func (s *Service) Unarchive(ctx context.Context, id string) (Warehouse, error) {
	return s.setArchived(ctx, id, false)
}

func (s *Service) setArchived(ctx context.Context, id string, archived bool) (Warehouse, error) {
	warehouse, err := s.repo.Get(ctx, id)
	if err != nil {
		return Warehouse{}, fmt.Errorf("get warehouse: %w", err)
	}
	warehouse.IsArchived = archived
	if err := s.repo.Save(ctx, warehouse); err != nil {
		return Warehouse{}, fmt.Errorf("save warehouse: %w", err)
	}
	return warehouse, nil
}

// PermanentlyDelete removes the warehouse from the store. Terminal.
func (s *Service) PermanentlyDelete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
