package entity

import (
	"encoding/json"
	"math"
)

// Product represents one purchasable item in the catalog. Product names are
// unique within the catalog; the catalog repository enforces upsert-by-name.
type Product struct {
	Name       string
	PriceCents int64 // Stored in cents
}

// NewProduct creates a product from a decimal price, rounded to 2 decimals.
func NewProduct(name string, price float64) Product {
	p := Product{Name: name}
	p.SetPriceFromDecimal(price)
	return p
}

// GetPriceDecimal returns the unit price as a decimal (for display)
func (p *Product) GetPriceDecimal() float64 {
	return float64(p.PriceCents) / 100
}

// SetPriceFromDecimal sets the unit price from a decimal value
func (p *Product) SetPriceFromDecimal(price float64) {
	p.PriceCents = int64(math.Round(price * 100))
}

// productJSON is the persisted/API shape with a decimal price.
type productJSON struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// MarshalJSON converts Product to JSON with a decimal price
func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(productJSON{
		Name:  p.Name,
		Price: p.GetPriceDecimal(),
	})
}

// UnmarshalJSON parses the decimal price back into cents
func (p *Product) UnmarshalJSON(data []byte) error {
	var doc productJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	p.Name = doc.Name
	p.SetPriceFromDecimal(doc.Price)
	return nil
}
