package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Josef-ino/poksys/internal/domain/entity"
	"github.com/Josef-ino/poksys/internal/domain/repository"
	"github.com/Josef-ino/poksys/internal/infrastructure/store"
	"github.com/Josef-ino/poksys/pkg/apperror"
)

// CatalogService handles product catalog operations
type CatalogService struct {
	catalogRepo repository.CatalogRepository
	interchange repository.CatalogInterchange
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalogRepo repository.CatalogRepository, interchange repository.CatalogInterchange) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		interchange: interchange,
	}
}

// AddOrUpdateProductInput represents the add/update product input
type AddOrUpdateProductInput struct {
	Name  string
	Price float64
}

// AddOrUpdateProduct validates the input and upserts the product by name.
// Adding a name already in the catalog updates its price in place.
func (s *CatalogService) AddOrUpdateProduct(ctx context.Context, input *AddOrUpdateProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(input.Name)

	var fieldErrors []apperror.FieldError
	if name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if input.Price <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "price", Message: "Price must be greater than zero"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	product := entity.NewProduct(name, input.Price)
	saved, err := s.catalogRepo.AddOrUpdateProduct(ctx, product.Name, product.PriceCents)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// ListProducts returns the catalog in insertion order.
func (s *CatalogService) ListProducts(ctx context.Context) ([]entity.Product, error) {
	return s.catalogRepo.ListProducts(ctx)
}

// ExportCatalog writes the interchange document and returns its path.
func (s *CatalogService) ExportCatalog(ctx context.Context) (string, error) {
	return s.interchange.ExportCatalog(ctx)
}

// ImportCatalog replaces the catalog with the interchange document contents.
// A missing interchange file is reported to the operator; the catalog is left
// unchanged.
func (s *CatalogService) ImportCatalog(ctx context.Context) ([]entity.Product, error) {
	products, err := s.interchange.ImportCatalog(ctx)
	if err != nil {
		if errors.Is(err, store.ErrInterchangeMissing) {
			return nil, apperror.NewNotFoundError("Catalog interchange file")
		}
		return nil, apperror.NewBadRequestError(err.Error())
	}

	if err := s.catalogRepo.ReplaceAllProducts(ctx, products); err != nil {
		return nil, err
	}
	return products, nil
}
