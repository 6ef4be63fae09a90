package service

import (
	"context"

	"github.com/Josef-ino/poksys/internal/domain/entity"
	"github.com/Josef-ino/poksys/internal/domain/repository"
	"github.com/Josef-ino/poksys/pkg/apperror"
	"github.com/Josef-ino/poksys/pkg/pagination"
)

// SalesService exposes the sales history browser.
type SalesService struct {
	salesRepo repository.SalesRepository
}

// NewSalesService creates a new sales service
func NewSalesService(salesRepo repository.SalesRepository) *SalesService {
	return &SalesService{salesRepo: salesRepo}
}

// SaleSummary is one row of the history browser. Total is recomputed from the
// record's own snapshot on every listing.
type SaleSummary struct {
	OrderID     string  `json:"order_id"`
	Date        string  `json:"date"`
	PaymentType string  `json:"payment_type"`
	Discount    float64 `json:"discount"`
	Total       float64 `json:"total"`
}

// ListSales returns a page of sale summaries, newest first.
func (s *SalesService) ListSales(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[SaleSummary], error) {
	params.Validate()

	records, total, err := s.salesRepo.ListSales(ctx, params)
	if err != nil {
		return nil, err
	}

	summaries := make([]SaleSummary, len(records))
	for i := range records {
		summaries[i] = SaleSummary{
			OrderID:     records[i].OrderID,
			Date:        records[i].Date,
			PaymentType: records[i].PaymentType,
			Discount:    records[i].Discount,
			Total:       records[i].Total(),
		}
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(summaries, pag), nil
}

// GetSale returns one full record including its stored receipt text.
func (s *SalesService) GetSale(ctx context.Context, orderID string) (*entity.SaleRecord, error) {
	record, err := s.salesRepo.GetSaleByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return record, nil
}
