package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Josef-ino/poksys/internal/application/service"
	"github.com/Josef-ino/poksys/internal/config"
	"github.com/Josef-ino/poksys/internal/infrastructure/store"
	"github.com/Josef-ino/poksys/internal/presentation/http/handler"
	"github.com/Josef-ino/poksys/internal/presentation/http/routes"
	"github.com/Josef-ino/poksys/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the JSON document store. A missing or unreadable state file means
	// a fresh till with default settings.
	st, err := store.New(cfg.Storage.DataPath)
	if err != nil {
		log.Fatalf("Failed to open data store: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize services
	authService, err := service.NewAuthService(jwtManager, cfg.Operator.Username, cfg.Operator.Password)
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}
	catalogService := service.NewCatalogService(st, st)
	cartService := service.NewCartService(st)
	checkoutService := service.NewCheckoutService(cartService, st, st, cfg.Storage.DataPath)
	salesService := service.NewSalesService(st)
	settingsService := service.NewSettingsService(st)
	systemService := service.NewSystemService(st, cartService)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Catalog:  handler.NewCatalogHandler(catalogService),
		Cart:     handler.NewCartHandler(cartService),
		Checkout: handler.NewCheckoutHandler(checkoutService),
		Sales:    handler.NewSalesHandler(salesService),
		Settings: handler.NewSettingsHandler(settingsService),
		System:   handler.NewSystemHandler(systemService),
	}

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	addr := ":" + cfg.App.Port
	log.Printf("Starting %s on %s", cfg.App.Name, addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
