package request

// CheckoutRequest represents the finalize input. Both fields are optional
// operator input: an empty payment type falls back to the fixed default and
// a missing discount means 0 %.
type CheckoutRequest struct {
	PaymentType string   `json:"payment_type"`
	Discount    *float64 `json:"discount"`
}
