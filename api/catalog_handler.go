package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fashion_pos/internal/catalog"
)

// catalogHandler holds the catalog service and implements HTTP handlers
// for product browsing and inventory management.
type catalogHandler struct {
	catalogService *catalog.Service
	logger         *zap.Logger
}

func newCatalogHandler(catalogService *catalog.Service, logger *zap.Logger) *catalogHandler {
	return &catalogHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// handleListProducts handles the GET /products endpoint. The optional
// "q" parameter filters by name, barcode, category or color.
func (h *catalogHandler) handleListProducts(ctx *gin.Context) {
	products := h.catalogService.List(ctx.Query("q"))
	ctx.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// handleSummary handles the GET /inventory/summary endpoint.
func (h *catalogHandler) handleSummary(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.catalogService.Summarize())
}

// handleAddProduct handles the POST /products endpoint.
func (h *catalogHandler) handleAddProduct(ctx *gin.Context) {
	var draft catalog.Draft
	if err := ctx.ShouldBindJSON(&draft); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	p, err := h.catalogService.Add(draft)
	if err != nil {
		var verr *catalog.ValidationError
		if errors.As(err, &verr) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "fields": verr.Fields})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add product"})
		return
	}

	ctx.JSON(http.StatusCreated, p)
}

// handleUpdateProduct handles the PUT /products/:id endpoint.
func (h *catalogHandler) handleUpdateProduct(ctx *gin.Context) {
	var draft catalog.Draft
	if err := ctx.ShouldBindJSON(&draft); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	p, err := h.catalogService.Update(ctx.Param("id"), draft)
	if err != nil {
		var verr *catalog.ValidationError
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		case errors.As(err, &verr):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "fields": verr.Fields})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product"})
		}
		return
	}

	ctx.JSON(http.StatusOK, p)
}

// handleDeleteProduct handles the DELETE /products/:id endpoint.
// Deleting an unknown ID succeeds; the operation is idempotent.
func (h *catalogHandler) handleDeleteProduct(ctx *gin.Context) {
	h.catalogService.Remove(ctx.Param("id"))
	ctx.Status(http.StatusNoContent)
}

// handleAdjustStock handles the PATCH /products/:id/stock endpoint.
func (h *catalogHandler) handleAdjustStock(ctx *gin.Context) {
	var req struct {
		Delta int `json:"delta"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	stock, err := h.catalogService.AdjustStock(ctx.Param("id"), req.Delta)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to adjust stock"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"product_id": ctx.Param("id"), "stock": stock})
}
