package entity

import (
	"encoding/json"
	"testing"
)

func TestProductPriceConversion(t *testing.T) {
	product := NewProduct("Káva", 0)
	product.SetPriceFromDecimal(2.50)

	if product.PriceCents != 250 {
		t.Errorf("expected 250 cents, got %d", product.PriceCents)
	}
	if got := product.GetPriceDecimal(); got != 2.5 {
		t.Errorf("expected decimal 2.5, got %v", got)
	}

	// Values like 19.99 must not lose a cent to float truncation.
	product.SetPriceFromDecimal(19.99)
	if product.PriceCents != 1999 {
		t.Errorf("expected 1999 cents, got %d", product.PriceCents)
	}
}

func TestProductJSONRoundTrip(t *testing.T) {
	product := NewProduct("Dort", 120.50)

	data, err := json.Marshal(product)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Unmarshal into map failed: %v", err)
	}
	if price, ok := doc["price"].(float64); !ok || price != 120.5 {
		t.Errorf("expected decimal price 120.5 in JSON, got %v", doc["price"])
	}

	var back Product
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back != product {
		t.Errorf("round trip changed the product: %+v != %+v", back, product)
	}
}
