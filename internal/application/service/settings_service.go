package service

import (
	"context"
	"errors"

	"github.com/Josef-ino/poksys/internal/domain/repository"
	"github.com/Josef-ino/poksys/pkg/apperror"
	"github.com/Josef-ino/poksys/pkg/receipt"
)

// SettingsService handles the receipt template and company info editors.
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetReceiptFormat returns the persisted receipt template.
func (s *SettingsService) GetReceiptFormat(ctx context.Context) (receipt.Format, error) {
	return s.settingsRepo.GetReceiptFormat(ctx)
}

// UpdateReceiptFormat validates the template before persisting it, so a
// malformed custom template can never reach finalize.
func (s *SettingsService) UpdateReceiptFormat(ctx context.Context, format receipt.Format) (receipt.Format, error) {
	if err := format.Validate(); err != nil {
		return receipt.Format{}, validationErr(err)
	}
	if err := s.settingsRepo.UpdateReceiptFormat(ctx, format); err != nil {
		return receipt.Format{}, err
	}
	return format, nil
}

// GetCompanyInfo returns the persisted company info.
func (s *SettingsService) GetCompanyInfo(ctx context.Context) (receipt.Company, error) {
	return s.settingsRepo.GetCompanyInfo(ctx)
}

// UpdateCompanyInfo replaces the company info as a whole.
func (s *SettingsService) UpdateCompanyInfo(ctx context.Context, company receipt.Company) (receipt.Company, error) {
	if err := s.settingsRepo.UpdateCompanyInfo(ctx, company); err != nil {
		return receipt.Company{}, err
	}
	return company, nil
}

// validationErr maps renderer validation failures to field errors.
func validationErr(err error) error {
	var unknown *receipt.UnknownPlaceholderError
	if errors.As(err, &unknown) {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: unknown.Slot, Message: err.Error()},
		})
	}
	var align *receipt.InvalidAlignmentError
	if errors.As(err, &align) {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "items_align", Message: err.Error()},
		})
	}
	return apperror.NewBadRequestError(err.Error())
}
