// Package middleware provides request guards for the admin API.
// File: middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"courtside/logger"
	"courtside/services"
)

// ContextUserEmail is the gin context key holding the authenticated
// admin's email after AuthRequired runs.
const ContextUserEmail = "userEmail"

// AuthRequired rejects requests that do not carry a valid bearer token
// for an enabled account. On success the account email is stored in the
// gin context under ContextUserEmail.
func AuthRequired(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		email, err := auth.Verify(c.Request.Context(), token)
		if err != nil {
			logger.Warn.Printf("[AuthRequired] rejected token for %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ContextUserEmail, email)
		c.Next()
	}
}
