package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fashion_pos/internal/auth"
)

// authHandler holds the session service and implements HTTP handlers
// for login, logout and session resumption.
type authHandler struct {
	authService *auth.Service
	logger      *zap.Logger
}

func newAuthHandler(authService *auth.Service, logger *zap.Logger) *authHandler {
	return &authHandler{
		authService: authService,
		logger:      logger,
	}
}

// handleLogin handles the POST /login endpoint.
func (h *authHandler) handleLogin(ctx *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	actor, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"actor":       actor,
		"permissions": auth.PermissionsFor(actor.Role),
	})
}

// handleLogout handles the POST /logout endpoint.
func (h *authHandler) handleLogout(ctx *gin.Context) {
	h.authService.Logout()
	ctx.Status(http.StatusNoContent)
}

// handleSession handles the GET /session endpoint, reporting the actor
// restored on startup or established by login.
func (h *authHandler) handleSession(ctx *gin.Context) {
	actor := h.authService.Current()
	if actor == nil {
		ctx.JSON(http.StatusOK, gin.H{"actor": nil})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"actor":       actor,
		"permissions": auth.PermissionsFor(actor.Role),
	})
}
