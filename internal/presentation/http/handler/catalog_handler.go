package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Josef-ino/poksys/internal/application/service"
	"github.com/Josef-ino/poksys/internal/presentation/http/dto/request"
	"github.com/Josef-ino/poksys/internal/presentation/http/dto/response"
)

// CatalogHandler handles product catalog HTTP requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// List returns the catalog in insertion order.
func (h *CatalogHandler) List(c *gin.Context) {
	products, err := h.catalogService.ListProducts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Products retrieved successfully", products)
}

// AddOrUpdate upserts one product by name.
func (h *CatalogHandler) AddOrUpdate(c *gin.Context) {
	var req request.AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.catalogService.AddOrUpdateProduct(c.Request.Context(), &service.AddOrUpdateProductInput{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product saved", product)
}

// Export writes the catalog interchange file.
func (h *CatalogHandler) Export(c *gin.Context) {
	path, err := h.catalogService.ExportCatalog(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Products exported", gin.H{"path": path})
}

// Import replaces the catalog from the interchange file.
func (h *CatalogHandler) Import(c *gin.Context) {
	products, err := h.catalogService.ImportCatalog(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Products imported", products)
}
