package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fashion_pos/internal/auth"
)

// RequireLogin rejects requests when nobody is signed in.
func RequireLogin(authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authService.Current() == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not signed in"})
			return
		}
		c.Next()
	}
}

// RequireCapability lets the request through when the current actor
// holds any of the listed capabilities. This is advisory view gating
// carried over from the register's role table, not a security boundary.
func RequireCapability(authService *auth.Service, capabilities ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authService.Current() == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not signed in"})
			return
		}
		for _, capability := range capabilities {
			if authService.Can(capability) {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "permission denied"})
	}
}
