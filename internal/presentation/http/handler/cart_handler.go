package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Josef-ino/poksys/internal/application/service"
	"github.com/Josef-ino/poksys/internal/presentation/http/dto/request"
	"github.com/Josef-ino/poksys/internal/presentation/http/dto/response"
)

// CartHandler handles purchase list HTTP requests
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Get returns the current purchase list with its running total.
func (h *CartHandler) Get(c *gin.Context) {
	view := h.cartService.Get(c.Request.Context())
	response.OK(c, "Purchase list retrieved", view)
}

// AddItem adds a catalog product to the purchase list.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req request.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.cartService.AddItem(c.Request.Context(), &service.AddItemInput{
		Name:  req.Name,
		Count: req.Count,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added", view)
}

// QuickAdd adds one unit of a product, merging with an existing line.
func (h *CartHandler) QuickAdd(c *gin.Context) {
	var req request.QuickAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.cartService.QuickAdd(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added", view)
}

// SetItemCount updates the quantity of one purchase list line.
func (h *CartHandler) SetItemCount(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "Invalid line index")
		return
	}

	var req request.SetItemCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.cartService.SetItemCount(c.Request.Context(), index, req.Count)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item updated", view)
}

// Clear empties the purchase list.
func (h *CartHandler) Clear(c *gin.Context) {
	h.cartService.Clear(c.Request.Context())
	response.OK(c, "Purchase list cleared", nil)
}
