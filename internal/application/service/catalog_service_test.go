package service

import (
	"context"
	"testing"

	"github.com/Josef-ino/poksys/internal/infrastructure/store"
	"github.com/Josef-ino/poksys/pkg/apperror"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New(t.TempDir())
	if err != nil {
		t.Fatalf("store.New failed: %v", err)
	}
	return s
}

func TestCatalogServiceValidation(t *testing.T) {
	svc := NewCatalogService(newTestStore(t), nil)
	ctx := context.Background()

	_, err := svc.AddOrUpdateProduct(ctx, &AddOrUpdateProductInput{Name: "   ", Price: 2.5})
	appErr := apperror.GetAppError(err)
	if appErr == nil || len(appErr.Errors) != 1 || appErr.Errors[0].Field != "name" {
		t.Errorf("expected a name field error, got %v", err)
	}

	_, err = svc.AddOrUpdateProduct(ctx, &AddOrUpdateProductInput{Name: "Káva", Price: 0})
	appErr = apperror.GetAppError(err)
	if appErr == nil || len(appErr.Errors) != 1 || appErr.Errors[0].Field != "price" {
		t.Errorf("expected a price field error, got %v", err)
	}

	_, err = svc.AddOrUpdateProduct(ctx, &AddOrUpdateProductInput{Name: "Káva", Price: -1})
	if apperror.GetAppError(err) == nil {
		t.Errorf("negative price must be rejected, got %v", err)
	}
}

func TestCatalogServiceUpsert(t *testing.T) {
	svc := NewCatalogService(newTestStore(t), nil)
	ctx := context.Background()

	if _, err := svc.AddOrUpdateProduct(ctx, &AddOrUpdateProductInput{Name: "Káva", Price: 2.50}); err != nil {
		t.Fatalf("AddOrUpdateProduct failed: %v", err)
	}
	saved, err := svc.AddOrUpdateProduct(ctx, &AddOrUpdateProductInput{Name: " Káva ", Price: 3.00})
	if err != nil {
		t.Fatalf("AddOrUpdateProduct failed: %v", err)
	}
	if saved.PriceCents != 300 {
		t.Errorf("expected updated price 300 cents, got %d", saved.PriceCents)
	}

	products, err := svc.ListProducts(ctx)
	if err != nil {
		t.Fatalf("ListProducts failed: %v", err)
	}
	if len(products) != 1 {
		t.Errorf("re-adding the same trimmed name must not grow the catalog, got %d products", len(products))
	}
}

func TestCatalogServiceImportMissingFile(t *testing.T) {
	st := newTestStore(t)
	svc := NewCatalogService(st, st)

	_, err := svc.ImportCatalog(context.Background())
	appErr := apperror.GetAppError(err)
	if appErr == nil || appErr.Code != 404 {
		t.Errorf("expected a 404 for a missing interchange file, got %v", err)
	}
}

func TestCatalogServiceExportImportRoundTrip(t *testing.T) {
	st := newTestStore(t)
	svc := NewCatalogService(st, st)
	ctx := context.Background()

	if _, err := svc.AddOrUpdateProduct(ctx, &AddOrUpdateProductInput{Name: "Káva", Price: 2.50}); err != nil {
		t.Fatalf("AddOrUpdateProduct failed: %v", err)
	}
	if _, err := svc.ExportCatalog(ctx); err != nil {
		t.Fatalf("ExportCatalog failed: %v", err)
	}

	products, err := svc.ImportCatalog(ctx)
	if err != nil {
		t.Fatalf("ImportCatalog failed: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Káva" || products[0].PriceCents != 250 {
		t.Errorf("interchange round trip failed: %+v", products)
	}
}
