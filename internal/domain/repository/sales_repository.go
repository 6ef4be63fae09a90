package repository

import (
	"context"

	"github.com/Josef-ino/poksys/internal/domain/entity"
	"github.com/Josef-ino/poksys/pkg/pagination"
)

// SalesRepository defines the interface for the append-only sales ledger.
// Records are immutable once appended; there is no dedup and no size cap.
type SalesRepository interface {
	// AppendSale adds a completed sale to the history.
	AppendSale(ctx context.Context, record entity.SaleRecord) error
	// ListSales returns a page of records, newest first, with the total count.
	ListSales(ctx context.Context, params *pagination.PaginationParams) ([]entity.SaleRecord, int64, error)
	// GetSaleByOrderID returns the record with the given order id, or nil.
	GetSaleByOrderID(ctx context.Context, orderID string) (*entity.SaleRecord, error)
}
