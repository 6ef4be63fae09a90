package receipt

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func testOrder() Order {
	return Order{
		ID:          "OBJ-TEST",
		Date:        "15.03.2026 14:30:00",
		PaymentType: "Hotově",
		Discount:    10,
		Items: []Item{
			{Name: "Káva", Count: 3, PriceCents: 250},
		},
	}
}

func TestRenderDefaultFormat(t *testing.T) {
	printedAt := time.Date(2026, 3, 15, 14, 31, 0, 0, time.UTC)

	text, err := Render(DefaultFormat(), DefaultCompany(), testOrder(), printedAt)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	for _, want := range []string{
		strings.Repeat("=", 50),
		"Pokladní Systém",
		"Číslo objednávky: OBJ-TEST",
		"Datum: 15.03.2026 14:30:00",
		"Počet položek: 3",
		"Platba: Hotově",
		"Sleva: 10 %",
		"CELKEM K ÚHRADĚ: 6.75 CZK",
		"Děkujeme za váš nákup!",
		"Vytištěno: 15.03.2026 14:31",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("receipt missing %q:\n%s", want, text)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	printedAt := time.Date(2026, 3, 15, 14, 31, 0, 0, time.UTC)

	first, err := Render(DefaultFormat(), DefaultCompany(), testOrder(), printedAt)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	second, err := Render(DefaultFormat(), DefaultCompany(), testOrder(), printedAt)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if first != second {
		t.Error("rendering the same order twice must yield identical text")
	}
}

func TestRenderUnknownPlaceholder(t *testing.T) {
	format := DefaultFormat()
	format.Total = "CELKEM: {celkem} ({cislo_objednavky})"

	_, err := Render(format, DefaultCompany(), testOrder(), time.Now())
	if err == nil {
		t.Fatal("expected an error for a placeholder outside the slot's set")
	}

	var placeholderErr *UnknownPlaceholderError
	if !errors.As(err, &placeholderErr) {
		t.Fatalf("expected UnknownPlaceholderError, got %T", err)
	}
	if placeholderErr.Slot != "total" || placeholderErr.Placeholder != "cislo_objednavky" {
		t.Errorf("unexpected error detail: %+v", placeholderErr)
	}
}

func TestRenderKeepsLiteralBraces(t *testing.T) {
	format := DefaultFormat()
	format.Header = "{ not a placeholder }"

	text, err := Render(format, DefaultCompany(), testOrder(), time.Now())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(text, "{ not a placeholder }") {
		t.Errorf("literal braces must pass through verbatim:\n%s", text)
	}
}

func TestItemsTableAlignment(t *testing.T) {
	items := []Item{{Name: "Káva", Count: 3, PriceCents: 250}}

	left := itemsTable(items, AlignLeft)
	if !strings.HasPrefix(left, "Káva ") {
		t.Errorf("left-aligned name must start the row, got %q", left)
	}

	right := itemsTable(items, AlignRight)
	if !strings.HasPrefix(right, strings.Repeat(" ", 16)+"Káva") {
		t.Errorf("right-aligned name must be padded to 20 columns, got %q", right)
	}

	// Numeric columns are right-aligned regardless.
	if !strings.Contains(left, "    3      2.50        7.50") {
		t.Errorf("unexpected numeric columns: %q", left)
	}
}

func TestRenderDiscountFormatting(t *testing.T) {
	order := testOrder()
	order.Discount = 12.5

	text, err := Render(DefaultFormat(), DefaultCompany(), order, time.Now())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(text, "Sleva: 12.5 %") {
		t.Errorf("fractional discounts keep their decimals:\n%s", text)
	}
}
