package request

// UpdateReceiptFormatRequest carries the whole user-editable template. The
// slots are replaced as one unit, matching the template editor form.
type UpdateReceiptFormatRequest struct {
	Header      string `json:"header"`
	CompanyInfo string `json:"company_info"`
	OrderInfo   string `json:"order_info"`
	ItemsHeader string `json:"items_header"`
	Items       string `json:"items"`
	Total       string `json:"total"`
	Footer      string `json:"footer"`
	ItemsAlign  string `json:"items_align"`
}

// UpdateCompanyInfoRequest replaces the company info as a whole.
type UpdateCompanyInfoRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Tel     string `json:"tel"`
	Email   string `json:"email"`
	Footer  string `json:"footer"`
}
