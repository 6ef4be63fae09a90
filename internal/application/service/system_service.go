package service

import (
	"context"

	"github.com/Josef-ino/poksys/internal/domain/repository"
)

// SystemService handles whole-system operations.
type SystemService struct {
	systemRepo  repository.SystemRepository
	cartService *CartService
}

// NewSystemService creates a new system service
func NewSystemService(systemRepo repository.SystemRepository, cartService *CartService) *SystemService {
	return &SystemService{
		systemRepo:  systemRepo,
		cartService: cartService,
	}
}

// Reset clears the catalog, the current purchase list and the sales history,
// then persists the emptied state. Receipt template and company info survive.
func (s *SystemService) Reset(ctx context.Context) error {
	if err := s.systemRepo.Reset(ctx); err != nil {
		return err
	}
	s.cartService.Clear(ctx)
	return nil
}
