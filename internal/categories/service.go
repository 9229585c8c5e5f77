package categories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

const (
	defaultColor = "#3B82F6"
	defaultIcon  = "Package"
)

// ProductCounter reports how many active products reference a category. It is
// the only thing the delete guard needs from the product side.
type ProductCounter interface {
	CountActiveByCategory(ctx context.Context, categoryID string) (int, error)
}

type Service struct {
	repo     Repository
	products ProductCounter
}

func NewService(repo Repository, products ProductCounter) *Service {
	return &Service{repo: repo, products: products}
}

func (s *Service) List(ctx context.Context) ([]Category, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Category, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateCategoryRequest) (Category, error) {
	category := Category{
		ID:    uuid.NewString(),
		Name:  req.Name,
		Color: req.Color,
		Icon:  req.Icon,
	}
	if category.Color == "" {
		category.Color = defaultColor
	}
	if category.Icon == "" {
		category.Icon = defaultIcon
	}
	if err := s.repo.Save(ctx, category); err != nil {
		return Category{}, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateCategoryRequest) (Category, error) {
	category, err := s.repo.Get(ctx, id)
	if err != nil {
		return Category{}, fmt.Errorf("get category: %w", err)
	}
	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Color != nil {
		category.Color = *req.Color
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if err := s.repo.Save(ctx, category); err != nil {
		return Category{}, fmt.Errorf("update category: %w", err)
	}
	return category, nil
}

// Delete removes a category. Deletion is rejected while at least one active
// product still references it; archived products do not block.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return fmt.Errorf("get category: %w", err)
	}
	refs, err := s.products.CountActiveByCategory(ctx, id)
	if err != nil {
		return fmt.Errorf("count product references: %w", err)
	}
	if refs > 0 {
		return ErrCategoryInUse
	}
	return s.repo.Delete(ctx, id)
}
