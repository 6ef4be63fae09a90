package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Josef-ino/poksys/internal/application/service"
	"github.com/Josef-ino/poksys/internal/presentation/http/dto/request"
	"github.com/Josef-ino/poksys/internal/presentation/http/dto/response"
)

// CheckoutHandler handles sale finalization HTTP requests
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Finalize turns the current purchase list into a completed sale.
func (h *CheckoutHandler) Finalize(c *gin.Context) {
	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	record, err := h.checkoutService.Finalize(c.Request.Context(), &service.FinalizeInput{
		PaymentType: req.PaymentType,
		Discount:    req.Discount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale completed", record)
}
