package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/Josef-ino/poksys/internal/domain/entity"
	"github.com/Josef-ino/poksys/pkg/pagination"
	"github.com/Josef-ino/poksys/pkg/receipt"
)

// File names inside the data directory. Fixed, overwritten wholesale.
const (
	StateFileName       = "pokladna_data.json"
	InterchangeFileName = "products.json"
)

// ErrInterchangeMissing is returned by Import when the interchange file does
// not exist.
var ErrInterchangeMissing = errors.New("catalog interchange file does not exist")

// document is the persisted top-level JSON object.
type document struct {
	Products      []entity.Product    `json:"products"`
	SalesHistory  []entity.SaleRecord `json:"sales_history"`
	ReceiptFormat receipt.Format      `json:"receipt_format"`
	CompanyInfo   receipt.Company     `json:"company_info"`
}

// Store keeps the catalog, sales ledger, receipt template and company info in
// memory as the source of truth, and rewrites the whole state document after
// every mutation. A missing or malformed document at startup means "no prior
// state": the store starts with an empty catalog and ledger and the default
// template and company info.
type Store struct {
	mu      sync.RWMutex
	dataDir string

	products []entity.Product
	sales    []entity.SaleRecord
	format   receipt.Format
	company  receipt.Company
}

// New creates the store, ensures the data directory exists and loads any
// prior state.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	s := &Store{
		dataDir: dataDir,
		format:  receipt.DefaultFormat(),
		company: receipt.DefaultCompany(),
	}
	s.load()
	return s, nil
}

// StatePath returns the path of the state document.
func (s *Store) StatePath() string {
	return filepath.Join(s.dataDir, StateFileName)
}

// InterchangePath returns the path of the catalog interchange document.
func (s *Store) InterchangePath() string {
	return filepath.Join(s.dataDir, InterchangeFileName)
}

// load reads the state document. Read errors are benign: the store keeps its
// defaults and the next save overwrites the file.
func (s *Store) load() {
	data, err := os.ReadFile(s.StatePath())
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: state file unreadable, starting fresh: %v", err)
		}
		return
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Printf("Warning: state file malformed, starting fresh: %v", err)
		return
	}

	s.products = doc.Products
	s.sales = doc.SalesHistory
	if doc.ReceiptFormat != (receipt.Format{}) {
		s.format = doc.ReceiptFormat
	}
	if doc.CompanyInfo != (receipt.Company{}) {
		s.company = doc.CompanyInfo
	}
}

// persistLocked rewrites the state document. Callers hold s.mu. Unlike the
// load path, write failures are surfaced, not swallowed.
func (s *Store) persistLocked() error {
	doc := document{
		Products:      s.products,
		SalesHistory:  s.sales,
		ReceiptFormat: s.format,
		CompanyInfo:   s.company,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := os.WriteFile(s.StatePath(), data, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}

// AddOrUpdateProduct upserts a product by name, keeping insertion order.
func (s *Store) AddOrUpdateProduct(ctx context.Context, name string, priceCents int64) (entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].Name == name {
			s.products[i].PriceCents = priceCents
			return s.products[i], s.persistLocked()
		}
	}
	product := entity.Product{Name: name, PriceCents: priceCents}
	s.products = append(s.products, product)
	return product, s.persistLocked()
}

// GetProductByName returns the product with the given name, or nil.
func (s *Store) GetProductByName(ctx context.Context, name string) (*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.products {
		if s.products[i].Name == name {
			product := s.products[i]
			return &product, nil
		}
	}
	return nil, nil
}

// ListProducts returns all products in insertion order.
func (s *Store) ListProducts(ctx context.Context) ([]entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]entity.Product, len(s.products))
	copy(products, s.products)
	return products, nil
}

// ReplaceAllProducts bulk-replaces the catalog.
func (s *Store) ReplaceAllProducts(ctx context.Context, products []entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = make([]entity.Product, len(products))
	copy(s.products, products)
	return s.persistLocked()
}

// AppendSale adds a completed sale to the ledger.
func (s *Store) AppendSale(ctx context.Context, record entity.SaleRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sales = append(s.sales, record)
	return s.persistLocked()
}

// ListSales returns a page of sale records, newest first.
func (s *Store) ListSales(ctx context.Context, params *pagination.PaginationParams) ([]entity.SaleRecord, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := int64(len(s.sales))
	offset := params.Offset()
	if offset >= len(s.sales) {
		return nil, total, nil
	}

	// Newest first: walk the history backwards.
	page := make([]entity.SaleRecord, 0, params.PerPage)
	for i := len(s.sales) - 1 - offset; i >= 0 && len(page) < params.PerPage; i-- {
		page = append(page, s.sales[i])
	}
	return page, total, nil
}

// GetSaleByOrderID returns the sale record with the given order id, or nil.
func (s *Store) GetSaleByOrderID(ctx context.Context, orderID string) (*entity.SaleRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.sales {
		if s.sales[i].OrderID == orderID {
			record := s.sales[i]
			return &record, nil
		}
	}
	return nil, nil
}

// GetReceiptFormat returns the persisted receipt template.
func (s *Store) GetReceiptFormat(ctx context.Context) (receipt.Format, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.format, nil
}

// UpdateReceiptFormat replaces the receipt template.
func (s *Store) UpdateReceiptFormat(ctx context.Context, format receipt.Format) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.format = format
	return s.persistLocked()
}

// GetCompanyInfo returns the persisted company info.
func (s *Store) GetCompanyInfo(ctx context.Context) (receipt.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.company, nil
}

// UpdateCompanyInfo replaces the company info.
func (s *Store) UpdateCompanyInfo(ctx context.Context, company receipt.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.company = company
	return s.persistLocked()
}

// Reset clears the catalog and sales history. Template and company info are
// kept.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = nil
	s.sales = nil
	return s.persistLocked()
}

// ExportCatalog writes the catalog to the interchange document and returns its path.
func (s *Store) ExportCatalog(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := s.products
	if products == nil {
		products = []entity.Product{}
	}
	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode catalog: %w", err)
	}
	path := s.InterchangePath()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write interchange file: %w", err)
	}
	return path, nil
}

// ImportCatalog reads the interchange document. Unlike the state file, a missing
// interchange file is an operator-visible error, not a fresh start.
func (s *Store) ImportCatalog(ctx context.Context) ([]entity.Product, error) {
	data, err := os.ReadFile(s.InterchangePath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrInterchangeMissing
		}
		return nil, fmt.Errorf("read interchange file: %w", err)
	}

	var products []entity.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parse interchange file: %w", err)
	}
	return products, nil
}
