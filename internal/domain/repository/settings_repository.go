package repository

import (
	"context"

	"github.com/Josef-ino/poksys/pkg/receipt"
)

// SettingsRepository defines the interface for the persisted receipt template
// and company info.
type SettingsRepository interface {
	GetReceiptFormat(ctx context.Context) (receipt.Format, error)
	UpdateReceiptFormat(ctx context.Context, format receipt.Format) error
	GetCompanyInfo(ctx context.Context) (receipt.Company, error)
	UpdateCompanyInfo(ctx context.Context, company receipt.Company) error
}

// SystemRepository exposes whole-store operations.
type SystemRepository interface {
	// Reset clears the catalog and the sales history. The receipt template
	// and company info survive a reset.
	Reset(ctx context.Context) error
}
