package entity

import (
	"encoding/json"
	"errors"
	"math"
)

var (
	// ErrInvalidCount is returned when a line count is zero or negative.
	ErrInvalidCount = errors.New("count must be a positive integer")
	// ErrLineNotFound is returned when a line index is out of range.
	ErrLineNotFound = errors.New("no such line in the purchase list")
)

// CartItem is one line of the in-progress purchase list. Price is a snapshot
// taken when the line was added; later catalog edits do not touch it.
type CartItem struct {
	Name       string
	PriceCents int64 // Stored in cents
	Count      int
}

// GetPriceDecimal returns the snapshot unit price as a decimal
func (i *CartItem) GetPriceDecimal() float64 {
	return float64(i.PriceCents) / 100
}

// TotalCents returns the line total in cents
func (i *CartItem) TotalCents() int64 {
	return i.PriceCents * int64(i.Count)
}

// cartItemJSON is the persisted/API shape with a decimal price.
type cartItemJSON struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Count int     `json:"count"`
}

// MarshalJSON converts CartItem to JSON with a decimal price
func (i CartItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(cartItemJSON{
		Name:  i.Name,
		Price: i.GetPriceDecimal(),
		Count: i.Count,
	})
}

// UnmarshalJSON parses the decimal price back into cents
func (i *CartItem) UnmarshalJSON(data []byte) error {
	var doc cartItemJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	i.Name = doc.Name
	i.PriceCents = int64(math.Round(doc.Price * 100))
	i.Count = doc.Count
	return nil
}

// Cart is the order builder: the not-yet-finalized purchase list for the
// current transaction. It is not persisted; clearing it mid-build simply
// discards the lines.
type Cart struct {
	items []CartItem
}

// AddItem appends a new line. A non-positive count is rejected and the cart
// is left unchanged.
func (c *Cart) AddItem(name string, priceCents int64, count int) error {
	if count < 1 {
		return ErrInvalidCount
	}
	c.items = append(c.items, CartItem{Name: name, PriceCents: priceCents, Count: count})
	return nil
}

// QuickAdd increments the count of the line matching name by one, or appends
// a new line with count 1 when no line matches.
func (c *Cart) QuickAdd(name string, priceCents int64) {
	for i := range c.items {
		if c.items[i].Name == name {
			c.items[i].Count++
			return
		}
	}
	c.items = append(c.items, CartItem{Name: name, PriceCents: priceCents, Count: 1})
}

// SetItemCount replaces the count of the line at index. A non-positive count
// or an out-of-range index is rejected and the line keeps its prior value.
func (c *Cart) SetItemCount(index, count int) error {
	if index < 0 || index >= len(c.items) {
		return ErrLineNotFound
	}
	if count < 1 {
		return ErrInvalidCount
	}
	c.items[index].Count = count
	return nil
}

// Items returns a copy of the current lines.
func (c *Cart) Items() []CartItem {
	items := make([]CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	return len(c.items)
}

// TotalCents returns the sum of price*count across all lines, in cents.
func (c *Cart) TotalCents() int64 {
	var total int64
	for i := range c.items {
		total += c.items[i].TotalCents()
	}
	return total
}

// ItemCount returns the sum of counts across all lines.
func (c *Cart) ItemCount() int {
	var n int
	for i := range c.items {
		n += c.items[i].Count
	}
	return n
}

// Clear empties the purchase list.
func (c *Cart) Clear() {
	c.items = nil
}
