package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Josef-ino/poksys/internal/domain/entity"
	"github.com/Josef-ino/poksys/internal/domain/repository"
	"github.com/Josef-ino/poksys/pkg/apperror"
	"github.com/Josef-ino/poksys/pkg/receipt"
	"github.com/Josef-ino/poksys/pkg/utils"
)

// ReceiptFileName is the fixed name of the generated receipt document,
// overwritten at each finalize.
const ReceiptFileName = "receipt.txt"

// DefaultPaymentType substitutes an empty payment type at finalize.
const DefaultPaymentType = "Hotově"

const orderDateLayout = "02.01.2006 15:04:05"

// CheckoutService finalizes the current purchase list: it renders the
// receipt, writes the receipt document, appends the sale to the ledger and
// clears the cart.
type CheckoutService struct {
	cartService  *CartService
	salesRepo    repository.SalesRepository
	settingsRepo repository.SettingsRepository
	dataDir      string
	now          func() time.Time
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	cartService *CartService,
	salesRepo repository.SalesRepository,
	settingsRepo repository.SettingsRepository,
	dataDir string,
) *CheckoutService {
	return &CheckoutService{
		cartService:  cartService,
		salesRepo:    salesRepo,
		settingsRepo: settingsRepo,
		dataDir:      dataDir,
		now:          time.Now,
	}
}

// ReceiptPath returns the path of the generated receipt document.
func (s *CheckoutService) ReceiptPath() string {
	return filepath.Join(s.dataDir, ReceiptFileName)
}

// FinalizeInput represents the finalize input. Payment type and discount are
// freeform operator input with minimal validation.
type FinalizeInput struct {
	PaymentType string
	Discount    *float64
}

// Finalize closes the current order. The cart must not be empty; on success
// the purchase list is cleared and the completed order returned.
func (s *CheckoutService) Finalize(ctx context.Context, input *FinalizeInput) (*entity.SaleRecord, error) {
	items := s.cartService.Items(ctx)
	if len(items) == 0 {
		return nil, apperror.NewBadRequestError("Purchase list is empty")
	}

	paymentType := strings.TrimSpace(input.PaymentType)
	if paymentType == "" {
		paymentType = DefaultPaymentType
	}

	var discount float64
	if input.Discount != nil {
		discount = *input.Discount
	}
	if discount < 0 || discount > 100 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "discount", Message: "Discount must be between 0 and 100"},
		})
	}

	format, err := s.settingsRepo.GetReceiptFormat(ctx)
	if err != nil {
		return nil, err
	}
	company, err := s.settingsRepo.GetCompanyInfo(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	orderID := utils.GenerateOrderID()
	date := now.Format(orderDateLayout)

	order := receipt.Order{
		ID:          orderID,
		Date:        date,
		PaymentType: paymentType,
		Discount:    discount,
		Items:       receiptItems(items),
	}
	receiptTxt, err := receipt.Render(format, company, order, now)
	if err != nil {
		return nil, fmt.Errorf("render receipt: %w", err)
	}

	if err := os.WriteFile(s.ReceiptPath(), []byte(receiptTxt), 0o644); err != nil {
		return nil, fmt.Errorf("write receipt file: %w", err)
	}

	record := entity.NewSaleRecord(items, orderID, date, receiptTxt, paymentType, discount)
	if err := s.salesRepo.AppendSale(ctx, record); err != nil {
		return nil, err
	}

	s.cartService.Clear(ctx)
	return &record, nil
}

// receiptItems converts cart lines to renderer input.
func receiptItems(items []entity.CartItem) []receipt.Item {
	out := make([]receipt.Item, len(items))
	for i := range items {
		out[i] = receipt.Item{
			Name:       items[i].Name,
			Count:      items[i].Count,
			PriceCents: items[i].PriceCents,
		}
	}
	return out
}
