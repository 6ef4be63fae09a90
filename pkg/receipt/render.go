package receipt

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Item is one receipt line: name, count and the snapshot unit price.
type Item struct {
	Name       string
	Count      int
	PriceCents int64
}

// Order is the deterministic input for rendering one receipt.
type Order struct {
	ID          string
	Date        string
	PaymentType string
	Discount    float64
	Items       []Item
}

// ItemCount returns the sum of counts across all lines.
func (o *Order) ItemCount() int {
	var n int
	for i := range o.Items {
		n += o.Items[i].Count
	}
	return n
}

// SubtotalCents returns the undiscounted sum of price*count in cents.
func (o *Order) SubtotalCents() int64 {
	var subtotal int64
	for i := range o.Items {
		subtotal += o.Items[i].PriceCents * int64(o.Items[i].Count)
	}
	return subtotal
}

// Total applies the percentage discount to the subtotal. Intermediate values
// are exact cents; the result is only rounded when formatted.
func (o *Order) Total() float64 {
	return float64(o.SubtotalCents()) / 100 * (1 - o.Discount/100)
}

// UnknownPlaceholderError reports a placeholder a slot may not reference.
type UnknownPlaceholderError struct {
	Slot        string
	Placeholder string
}

func (e *UnknownPlaceholderError) Error() string {
	return fmt.Sprintf("slot %q: unknown placeholder %q", e.Slot, e.Placeholder)
}

// InvalidAlignmentError reports an items_align value other than left/right.
type InvalidAlignmentError struct {
	Value string
}

func (e *InvalidAlignmentError) Error() string {
	return fmt.Sprintf("items_align must be %q or %q, got %q", AlignLeft, AlignRight, e.Value)
}

// Column widths of the items table, matching the default items_header.
const (
	nameColWidth  = 20
	countColWidth = 5
	priceColWidth = 10
	totalColWidth = 12
)

// Render fills the template slots and joins them into the receipt text.
// Every value except cas_tisku is taken from the order, so rendering the same
// order twice differs only in the printed-at line.
func Render(f Format, company Company, order Order, printedAt time.Time) (string, error) {
	vars := map[string]map[string]string{
		"header": {},
		"company_info": {
			"company_name":    company.Name,
			"company_address": company.Address,
			"company_tel":     company.Tel,
			"company_email":   company.Email,
		},
		"order_info": {
			"cislo_objednavky": order.ID,
			"datum":            order.Date,
			"pocet_polozek":    strconv.Itoa(order.ItemCount()),
			"payment_type":     order.PaymentType,
			"discount":         strconv.FormatFloat(order.Discount, 'f', -1, 64),
		},
		"items_header": {},
		"items": {
			"tabulka_polozek": itemsTable(order.Items, f.ItemsAlign),
		},
		"total": {
			"celkem": fmt.Sprintf("%.2f", order.Total()),
		},
		"footer": {
			"company_footer": company.Footer,
			"cas_tisku":      printedAt.Format("02.01.2006 15:04"),
		},
	}

	parts := make([]string, 0, 7)
	for _, slot := range f.slots() {
		rendered, err := expand(slot.name, slot.tmpl, vars[slot.name])
		if err != nil {
			return "", err
		}
		parts = append(parts, rendered)
	}
	return strings.Join(parts, "\n"), nil
}

// itemsTable renders the tabular block substituted for tabulka_polozek.
// Counts, unit prices and line totals are right-aligned; align picks the side
// for the name column.
func itemsTable(items []Item, align string) string {
	var b strings.Builder
	for i := range items {
		item := &items[i]
		name := padRight(item.Name, nameColWidth)
		if align == AlignRight {
			name = padLeft(item.Name, nameColWidth)
		}
		b.WriteString(name)
		b.WriteString(padLeft(strconv.Itoa(item.Count), countColWidth))
		b.WriteString(padLeft(fmt.Sprintf("%.2f", float64(item.PriceCents)/100), priceColWidth))
		b.WriteString(padLeft(fmt.Sprintf("%.2f", float64(item.PriceCents*int64(item.Count))/100), totalColWidth))
		b.WriteByte('\n')
	}
	return b.String()
}

// expand substitutes {name} placeholders from vars. A brace group naming
// something outside vars is an error; braces that do not form a placeholder
// token are copied through verbatim.
func expand(slot, tmpl string, vars map[string]string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(tmpl); {
		open := strings.IndexByte(tmpl[i:], '{')
		if open < 0 {
			b.WriteString(tmpl[i:])
			break
		}
		open += i
		b.WriteString(tmpl[i:open])

		end := open + 1
		for end < len(tmpl) && isPlaceholderChar(tmpl[end]) {
			end++
		}
		if end == open+1 || end >= len(tmpl) || tmpl[end] != '}' {
			// Not a placeholder token, keep the brace as-is.
			b.WriteByte('{')
			i = open + 1
			continue
		}

		name := tmpl[open+1 : end]
		value, ok := vars[name]
		if !ok {
			return "", &UnknownPlaceholderError{Slot: slot, Placeholder: name}
		}
		b.WriteString(value)
		i = end + 1
	}
	return b.String(), nil
}

func isPlaceholderChar(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// padRight pads s with spaces to width columns, counting runes so accented
// names line up.
func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// padLeft pads s with spaces on the left to width columns.
func padLeft(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}
