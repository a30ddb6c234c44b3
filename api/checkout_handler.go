package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fashion_pos/internal/auth"
	"fashion_pos/internal/checkout"
)

// checkoutHandler holds the checkout processor and the transaction
// history, and implements HTTP handlers for payment and receipts.
type checkoutHandler struct {
	processor   *checkout.Processor
	log         checkout.Log
	authService *auth.Service
	logger      *zap.Logger
}

func newCheckoutHandler(processor *checkout.Processor, log checkout.Log, authService *auth.Service, logger *zap.Logger) *checkoutHandler {
	return &checkoutHandler{
		processor:   processor,
		log:         log,
		authService: authService,
		logger:      logger,
	}
}

// handleCheckout handles the POST /checkout endpoint.
func (h *checkoutHandler) handleCheckout(ctx *gin.Context) {
	var req struct {
		PaymentMethod string `json:"payment_method"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = "card"
	}

	cashier := ""
	if actor := h.authService.Current(); actor != nil {
		cashier = actor.FullName
	}

	tx, err := h.processor.Checkout(req.PaymentMethod, cashier)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		case errors.Is(err, checkout.ErrCheckoutInProgress):
			ctx.JSON(http.StatusConflict, gin.H{"error": "checkout already in progress"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "checkout failed"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, tx)
}

// handleListTransactions handles the GET /transactions endpoint,
// returning the session history most recent first.
func (h *checkoutHandler) handleListTransactions(ctx *gin.Context) {
	transactions := h.log.All()
	ctx.JSON(http.StatusOK, gin.H{
		"transactions": transactions,
		"count":        len(transactions),
	})
}

// handleReceipt handles the GET /transactions/:id/receipt endpoint,
// returning the printable receipt as plain text.
func (h *checkoutHandler) handleReceipt(ctx *gin.Context) {
	tx, err := h.log.Get(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "transaction not found"})
		return
	}
	ctx.String(http.StatusOK, checkout.Receipt(tx))
}
