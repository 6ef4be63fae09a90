package entity

// SaleRecord is an immutable snapshot of one completed transaction. Items are
// deep-copied at finalize time, so later catalog price changes never alter a
// historical total. There is no edit or delete operation on records.
type SaleRecord struct {
	OrderID     string     `json:"order_id"`
	Date        string     `json:"date"`
	Items       []CartItem `json:"items"`
	ReceiptTxt  string     `json:"receipt_txt"`
	PaymentType string     `json:"payment_type"`
	Discount    float64    `json:"discount"`
}

// NewSaleRecord builds a record from cart lines, copying the lines by value.
func NewSaleRecord(items []CartItem, orderID, date, receiptTxt, paymentType string, discount float64) SaleRecord {
	copied := make([]CartItem, len(items))
	copy(copied, items)
	return SaleRecord{
		OrderID:     orderID,
		Date:        date,
		Items:       copied,
		ReceiptTxt:  receiptTxt,
		PaymentType: paymentType,
		Discount:    discount,
	}
}

// SubtotalCents returns the sum of price*count over the recorded items.
func (r *SaleRecord) SubtotalCents() int64 {
	var subtotal int64
	for i := range r.Items {
		subtotal += r.Items[i].TotalCents()
	}
	return subtotal
}

// Total recomputes the discounted order total from the snapshot. It is never
// cached; identical records always yield the same value.
func (r *SaleRecord) Total() float64 {
	return float64(r.SubtotalCents()) / 100 * (1 - r.Discount/100)
}
