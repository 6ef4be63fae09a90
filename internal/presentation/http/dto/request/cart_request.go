package request

// AddCartItemRequest represents an add line request. Count defaults to the
// operator-entered quantity; non-positive values are rejected downstream.
type AddCartItemRequest struct {
	Name  string `json:"name" binding:"required"`
	Count int    `json:"count" binding:"required"`
}

// QuickAddRequest represents the +1 button: bump an existing line or start a
// new one with count 1.
type QuickAddRequest struct {
	Name string `json:"name" binding:"required"`
}

// SetItemCountRequest represents a per-line count edit.
type SetItemCountRequest struct {
	Count int `json:"count" binding:"required"`
}
