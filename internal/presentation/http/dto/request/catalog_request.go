package request

// AddProductRequest represents an add-or-update product request. Price must
// be positive; a product with an existing name has its price replaced.
type AddProductRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"required"`
}
