package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fashion_pos/internal/cart"
	"fashion_pos/internal/catalog"
	"fashion_pos/internal/pricing"
)

// cartHandler holds the cart and implements HTTP handlers for building
// the sale in progress.
type cartHandler struct {
	cart   *cart.Cart
	logger *zap.Logger
}

func newCartHandler(c *cart.Cart, logger *zap.Logger) *cartHandler {
	return &cartHandler{
		cart:   c,
		logger: logger,
	}
}

// cartView resolves the cart and recomputes totals. Totals are derived
// on every read, never cached.
func (h *cartHandler) cartView() gin.H {
	items := h.cart.Snapshot()
	priced := make([]pricing.Line, 0, len(items))
	for _, item := range items {
		priced = append(priced, pricing.Line{UnitPrice: item.Product.Price, Quantity: item.Quantity})
	}
	totals := pricing.Calculate(priced)
	return gin.H{
		"items":       items,
		"total_units": h.cart.TotalUnits(),
		"subtotal":    totals.Subtotal,
		"vat":         totals.VAT,
		"total":       totals.Total,
	}
}

// handleGetCart handles the GET /cart endpoint.
func (h *cartHandler) handleGetCart(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.cartView())
}

// handleAddItem handles the POST /cart/items endpoint.
func (h *cartHandler) handleAddItem(ctx *gin.Context) {
	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	if err := h.cart.AddItem(req.ProductID); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add item"})
		return
	}

	ctx.JSON(http.StatusOK, h.cartView())
}

// handleSetQuantity handles the PUT /cart/items/:id endpoint.
func (h *cartHandler) handleSetQuantity(ctx *gin.Context) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	if err := h.cart.SetQuantity(ctx.Param("id"), req.Quantity); err != nil {
		switch {
		case errors.Is(err, cart.ErrInsufficientStock):
			ctx.JSON(http.StatusConflict, gin.H{"error": "requested quantity exceeds stock"})
		case errors.Is(err, catalog.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update quantity"})
		}
		return
	}

	ctx.JSON(http.StatusOK, h.cartView())
}

// handleRemoveItem handles the DELETE /cart/items/:id endpoint.
func (h *cartHandler) handleRemoveItem(ctx *gin.Context) {
	h.cart.RemoveItem(ctx.Param("id"))
	ctx.JSON(http.StatusOK, h.cartView())
}

// handleClearCart handles the DELETE /cart endpoint.
func (h *cartHandler) handleClearCart(ctx *gin.Context) {
	h.cart.Clear()
	ctx.Status(http.StatusNoContent)
}
