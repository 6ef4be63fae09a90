package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Josef-ino/poksys/internal/config"
	"github.com/Josef-ino/poksys/internal/presentation/http/handler"
	"github.com/Josef-ino/poksys/internal/presentation/http/middleware"
	"github.com/Josef-ino/poksys/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Catalog  *handler.CatalogHandler
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
	Sales    *handler.SalesHandler
	Settings *handler.SettingsHandler
	System   *handler.SystemHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Product catalog
	products := protected.Group("/products")
	{
		products.GET("", h.Catalog.List)
		products.POST("", h.Catalog.AddOrUpdate)
		products.POST("/export", h.Catalog.Export)
		products.POST("/import", h.Catalog.Import)
	}

	// Purchase list
	cart := protected.Group("/cart")
	{
		cart.GET("", h.Cart.Get)
		cart.POST("/items", h.Cart.AddItem)
		cart.POST("/items/quick-add", h.Cart.QuickAdd)
		cart.PUT("/items/:index", h.Cart.SetItemCount)
		cart.DELETE("", h.Cart.Clear)
	}

	// Checkout
	protected.POST("/checkout", h.Checkout.Finalize)

	// Sales history
	sales := protected.Group("/sales")
	{
		sales.GET("", h.Sales.List)
		sales.GET("/:order_id", h.Sales.Get)
	}

	// Settings
	settings := protected.Group("/settings")
	{
		settings.GET("/receipt-format", h.Settings.GetReceiptFormat)
		settings.PUT("/receipt-format", h.Settings.UpdateReceiptFormat)
		settings.GET("/company-info", h.Settings.GetCompanyInfo)
		settings.PUT("/company-info", h.Settings.UpdateCompanyInfo)
	}

	// System maintenance
	protected.POST("/system/reset", h.System.Reset)
}
