package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fashion_pos/internal/auth"
	"fashion_pos/internal/cart"
	"fashion_pos/internal/catalog"
	"fashion_pos/internal/checkout"
)

// Config tunes the register wiring. Tests pass a zero checkout delay
// and an in-memory marker store to stay fast and hermetic.
type Config struct {
	CheckoutDelay time.Duration
	MarkerStore   auth.MarkerStore
	Logger        *zap.Logger
	SeedCatalog   bool
}

// InitRoutes builds the whole register on the given Gin engine: the
// catalog storage, cart, checkout processor and session service, then
// binds each HTTP method and path to the appropriate handler function.
// The session marker is read once here so a restart resumes the
// previous actor.
func InitRoutes(e *gin.Engine, cfg Config) {
	logger := cfg.Logger
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	marker := cfg.MarkerStore
	if marker == nil {
		marker = auth.NewMemoryMarkerStore()
	}

	catalogStorage := catalog.NewLocalStorage()
	if cfg.SeedCatalog {
		if err := catalog.Seed(catalogStorage); err != nil {
			logger.Error("failed to seed catalog", zap.Error(err))
		}
	}
	catalogService := catalog.NewService(catalogStorage, logger)

	posCart := cart.New(catalogService, logger)
	transactionLog := checkout.NewLocalLog()
	processor := checkout.NewProcessor(catalogService, posCart, transactionLog, cfg.CheckoutDelay, logger)

	authService := auth.NewService(marker, posCart, logger)
	authService.Resume()

	authHandler := newAuthHandler(authService, logger)
	catalogHandler := newCatalogHandler(catalogService, logger)
	cartHandler := newCartHandler(posCart, logger)
	checkoutHandler := newCheckoutHandler(processor, transactionLog, authService, logger)

	view := RequireCapability(authService, auth.CapPOS, auth.CapBasicInventory)
	manage := RequireCapability(authService, auth.CapInventory)
	sell := RequireCapability(authService, auth.CapPOS)

	e.POST("/login", authHandler.handleLogin)
	e.POST("/logout", RequireLogin(authService), authHandler.handleLogout)
	e.GET("/session", authHandler.handleSession)

	e.GET("/products", view, catalogHandler.handleListProducts)
	e.POST("/products", manage, catalogHandler.handleAddProduct)
	e.PUT("/products/:id", manage, catalogHandler.handleUpdateProduct)
	e.DELETE("/products/:id", manage, catalogHandler.handleDeleteProduct)
	e.PATCH("/products/:id/stock", manage, catalogHandler.handleAdjustStock)
	e.GET("/inventory/summary", RequireLogin(authService), catalogHandler.handleSummary)

	e.GET("/cart", sell, cartHandler.handleGetCart)
	e.POST("/cart/items", sell, cartHandler.handleAddItem)
	e.PUT("/cart/items/:id", sell, cartHandler.handleSetQuantity)
	e.DELETE("/cart/items/:id", sell, cartHandler.handleRemoveItem)
	e.DELETE("/cart", sell, cartHandler.handleClearCart)

	e.POST("/checkout", sell, checkoutHandler.handleCheckout)
	e.GET("/transactions", sell, checkoutHandler.handleListTransactions)
	e.GET("/transactions/:id/receipt", sell, checkoutHandler.handleReceipt)

	e.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
}
