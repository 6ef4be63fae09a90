package repository

import (
	"context"

	"github.com/Josef-ino/poksys/internal/domain/entity"
)

// CatalogRepository defines the interface for catalog data access.
// Products are kept in insertion order and keyed by name.
type CatalogRepository interface {
	// AddOrUpdateProduct upserts a product by name. The caller validates the
	// price; the operation itself has no failure mode beyond persistence.
	AddOrUpdateProduct(ctx context.Context, name string, priceCents int64) (entity.Product, error)
	// GetProductByName returns the product with the given name, or nil.
	GetProductByName(ctx context.Context, name string) (*entity.Product, error)
	// ListProducts returns all products in insertion order.
	ListProducts(ctx context.Context) ([]entity.Product, error)
	// ReplaceAllProducts bulk-replaces the catalog with pre-validated data.
	ReplaceAllProducts(ctx context.Context, products []entity.Product) error
}

// CatalogInterchange moves the product list through the standalone
// interchange document, independent of the full state file.
type CatalogInterchange interface {
	// ExportCatalog writes the current catalog and returns the file path.
	ExportCatalog(ctx context.Context) (string, error)
	// ImportCatalog reads the interchange file. A missing file is an error
	// and the catalog is left untouched.
	ImportCatalog(ctx context.Context) ([]entity.Product, error)
}
