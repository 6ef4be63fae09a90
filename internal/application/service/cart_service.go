package service

import (
	"context"
	"errors"
	"sync"

	"github.com/Josef-ino/poksys/internal/domain/entity"
	"github.com/Josef-ino/poksys/internal/domain/repository"
	"github.com/Josef-ino/poksys/pkg/apperror"
)

// CartService owns the single in-progress purchase list. There is exactly one
// cart per till; it lives in memory only and is never persisted.
type CartService struct {
	mu          sync.Mutex
	cart        entity.Cart
	catalogRepo repository.CatalogRepository
}

// NewCartService creates a new cart service
func NewCartService(catalogRepo repository.CatalogRepository) *CartService {
	return &CartService{catalogRepo: catalogRepo}
}

// CartView is the API shape of the current purchase list.
type CartView struct {
	Items     []entity.CartItem `json:"items"`
	ItemCount int               `json:"item_count"`
	Total     float64           `json:"total"`
}

// AddItemInput represents the add line input
type AddItemInput struct {
	Name  string
	Count int
}

// AddItem appends a line for the named product with a price snapshot taken
// from the catalog now.
func (s *CartService) AddItem(ctx context.Context, input *AddItemInput) (*CartView, error) {
	product, err := s.catalogRepo.GetProductByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cart.AddItem(product.Name, product.PriceCents, input.Count); err != nil {
		return nil, mapCartError(err)
	}
	return s.viewLocked(), nil
}

// QuickAdd bumps the line matching the product by one, or starts a new line
// with count 1.
func (s *CartService) QuickAdd(ctx context.Context, name string) (*CartView, error) {
	product, err := s.catalogRepo.GetProductByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.QuickAdd(product.Name, product.PriceCents)
	return s.viewLocked(), nil
}

// SetItemCount replaces the count of the line at index. Non-positive counts
// are rejected and the line keeps its prior value.
func (s *CartService) SetItemCount(ctx context.Context, index, count int) (*CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cart.SetItemCount(index, count); err != nil {
		return nil, mapCartError(err)
	}
	return s.viewLocked(), nil
}

// Get returns the current purchase list with its recomputed total.
func (s *CartService) Get(ctx context.Context) *CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// Clear discards the purchase list without recording anything.
func (s *CartService) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

// Items returns a snapshot of the current lines.
func (s *CartService) Items(ctx context.Context) []entity.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Items()
}

func (s *CartService) viewLocked() *CartView {
	return &CartView{
		Items:     s.cart.Items(),
		ItemCount: s.cart.ItemCount(),
		Total:     float64(s.cart.TotalCents()) / 100,
	}
}

// mapCartError converts domain cart errors into operator-facing messages.
func mapCartError(err error) error {
	switch {
	case errors.Is(err, entity.ErrInvalidCount):
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "count", Message: "Count must be a positive integer"},
		})
	case errors.Is(err, entity.ErrLineNotFound):
		return apperror.NewNotFoundError("Purchase list line")
	default:
		return err
	}
}
