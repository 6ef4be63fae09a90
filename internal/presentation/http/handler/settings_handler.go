package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Josef-ino/poksys/internal/application/service"
	"github.com/Josef-ino/poksys/internal/presentation/http/dto/request"
	"github.com/Josef-ino/poksys/internal/presentation/http/dto/response"
	"github.com/Josef-ino/poksys/pkg/receipt"
)

// SettingsHandler handles receipt format and company info HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetReceiptFormat returns the stored receipt template.
func (h *SettingsHandler) GetReceiptFormat(c *gin.Context) {
	format, err := h.settingsService.GetReceiptFormat(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt format retrieved", format)
}

// UpdateReceiptFormat validates and stores a new receipt template.
func (h *SettingsHandler) UpdateReceiptFormat(c *gin.Context) {
	var req request.UpdateReceiptFormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	format := receipt.Format{
		Header:      req.Header,
		CompanyInfo: req.CompanyInfo,
		OrderInfo:   req.OrderInfo,
		ItemsHeader: req.ItemsHeader,
		Items:       req.Items,
		Total:       req.Total,
		Footer:      req.Footer,
		ItemsAlign:  req.ItemsAlign,
	}

	saved, err := h.settingsService.UpdateReceiptFormat(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt format saved", saved)
}

// GetCompanyInfo returns the stored company details.
func (h *SettingsHandler) GetCompanyInfo(c *gin.Context) {
	company, err := h.settingsService.GetCompanyInfo(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Company info retrieved", company)
}

// UpdateCompanyInfo stores new company details.
func (h *SettingsHandler) UpdateCompanyInfo(c *gin.Context) {
	var req request.UpdateCompanyInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	company := receipt.Company{
		Name:    req.Name,
		Address: req.Address,
		Tel:     req.Tel,
		Email:   req.Email,
		Footer:  req.Footer,
	}

	saved, err := h.settingsService.UpdateCompanyInfo(c.Request.Context(), company)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Company info saved", saved)
}
