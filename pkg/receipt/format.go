package receipt

import "strings"

// Alignment values accepted by the items_align slot.
const (
	AlignLeft  = "left"
	AlignRight = "right"
)

// Format holds the user-editable receipt template. Each slot is a text
// fragment with named placeholders in braces; RenderReceipt joins the slots
// with line breaks in the order header, company info, order info, items
// header, items, total, footer.
type Format struct {
	Header      string `json:"header"`
	CompanyInfo string `json:"company_info"`
	OrderInfo   string `json:"order_info"`
	ItemsHeader string `json:"items_header"`
	Items       string `json:"items"`
	Total       string `json:"total"`
	Footer      string `json:"footer"`
	ItemsAlign  string `json:"items_align"`
}

// Company holds the company block printed on every receipt.
type Company struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Tel     string `json:"tel"`
	Email   string `json:"email"`
	Footer  string `json:"footer"`
}

// DefaultFormat returns the built-in receipt template.
func DefaultFormat() Format {
	return Format{
		Header:      strings.Repeat("=", 50),
		CompanyInfo: "{company_name}\n{company_address}\nTelefon: {company_tel}\nEmail: {company_email}",
		OrderInfo: "Číslo objednávky: {cislo_objednavky}\nDatum: {datum}\n" +
			"Počet položek: {pocet_polozek}\nPlatba: {payment_type}\nSleva: {discount} %",
		ItemsHeader: padRight("Název", 20) + padLeft("Ks", 5) + padLeft("Cena", 10) + padLeft("Celkem", 12),
		Items:       "{tabulka_polozek}",
		Total:       "CELKEM K ÚHRADĚ: {celkem} CZK",
		Footer:      "{company_footer}\nVytištěno: {cas_tisku}",
		ItemsAlign:  AlignLeft,
	}
}

// DefaultCompany returns the company info used before the operator edits it.
func DefaultCompany() Company {
	return Company{
		Name:    "Pokladní Systém",
		Address: "Praha, Česká republika",
		Tel:     "+420 123 456 789",
		Email:   "info@pokladni-system.cz",
		Footer:  "Děkujeme za váš nákup!",
	}
}

// slotPlaceholders maps each template slot to the placeholder names it may
// reference. A slot using anything outside its set fails validation.
var slotPlaceholders = map[string][]string{
	"header":       {},
	"company_info": {"company_name", "company_address", "company_tel", "company_email"},
	"order_info":   {"cislo_objednavky", "datum", "pocet_polozek", "payment_type", "discount"},
	"items_header": {},
	"items":        {"tabulka_polozek"},
	"total":        {"celkem"},
	"footer":       {"company_footer", "cas_tisku"},
}

// slots returns the slot name/template pairs in render order.
func (f *Format) slots() []struct{ name, tmpl string } {
	return []struct{ name, tmpl string }{
		{"header", f.Header},
		{"company_info", f.CompanyInfo},
		{"order_info", f.OrderInfo},
		{"items_header", f.ItemsHeader},
		{"items", f.Items},
		{"total", f.Total},
		{"footer", f.Footer},
	}
}

// Validate checks every slot against its allowed placeholder set, so a broken
// template is rejected when the operator saves it instead of failing at
// finalize time.
func (f *Format) Validate() error {
	for _, slot := range f.slots() {
		vars := make(map[string]string, len(slotPlaceholders[slot.name]))
		for _, name := range slotPlaceholders[slot.name] {
			vars[name] = ""
		}
		if _, err := expand(slot.name, slot.tmpl, vars); err != nil {
			return err
		}
	}
	switch f.ItemsAlign {
	case AlignLeft, AlignRight:
		return nil
	default:
		return &InvalidAlignmentError{Value: f.ItemsAlign}
	}
}
