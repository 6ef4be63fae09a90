package handler

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Josef-ino/poksys/internal/application/service"
	"github.com/Josef-ino/poksys/internal/presentation/http/dto/response"
)

// SystemHandler handles system maintenance HTTP requests
type SystemHandler struct {
	systemService *service.SystemService
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(systemService *service.SystemService) *SystemHandler {
	return &SystemHandler{systemService: systemService}
}

// Reset wipes the catalog, purchase list and sales history. Receipt format
// and company info survive the reset.
func (h *SystemHandler) Reset(c *gin.Context) {
	if err := h.systemService.Reset(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	log.Printf("System reset by operator %s", GetOperator(c))
	response.OK(c, "System reset complete", nil)
}
