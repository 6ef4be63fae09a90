package entity

import "testing"

func TestNewSaleRecordCopiesItems(t *testing.T) {
	items := []CartItem{{Name: "Káva", PriceCents: 250, Count: 3}}
	record := NewSaleRecord(items, "OBJ-X", "01.01.2026 10:00:00", "receipt", "Hotově", 0)

	items[0].PriceCents = 9999
	items[0].Count = 1

	if record.Items[0].PriceCents != 250 || record.Items[0].Count != 3 {
		t.Errorf("record must snapshot the lines, got %+v", record.Items[0])
	}
}

func TestSaleRecordTotal(t *testing.T) {
	record := NewSaleRecord(
		[]CartItem{{Name: "Káva", PriceCents: 250, Count: 3}},
		"OBJ-X", "01.01.2026 10:00:00", "receipt", "Hotově", 10,
	)

	if got := record.SubtotalCents(); got != 750 {
		t.Errorf("expected subtotal 750 cents, got %d", got)
	}
	if got := record.Total(); got != 6.75 {
		t.Errorf("expected total 6.75 after 10%% discount, got %v", got)
	}

	// Recomputing must always yield the same value.
	if record.Total() != record.Total() {
		t.Error("total must be deterministic for the same record")
	}
}

func TestSaleRecordZeroDiscount(t *testing.T) {
	record := NewSaleRecord(
		[]CartItem{{Name: "Dort", PriceCents: 12050, Count: 2}},
		"OBJ-Y", "01.01.2026 10:00:00", "receipt", "Kartou", 0,
	)
	if got := record.Total(); got != 241 {
		t.Errorf("expected total 241, got %v", got)
	}
}
