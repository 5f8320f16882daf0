package middleware

import (
	"net/http"
	"strings"

	"smart_canteen/internal/auth"
	"smart_canteen/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID = "userID"
	ctxRole   = "role"
)

// Protect rejects requests without a valid Bearer token and stores the
// caller's identity in the gin context.
func Protect(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized, no token"})
			return
		}

		claims, err := auth.ParseToken(strings.TrimSpace(parts[1]), secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized, token failed"})
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

// OwnerOnly requires the owner role. Must run after Protect.
func OwnerOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if Role(c) != string(models.RoleOwner) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Not authorized as canteen owner"})
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user id set by Protect.
func UserID(c *gin.Context) uint {
	id, _ := c.Get(ctxUserID)
	userID, _ := id.(uint)
	return userID
}

// Role returns the authenticated role set by Protect.
func Role(c *gin.Context) string {
	r, _ := c.Get(ctxRole)
	role, _ := r.(string)
	return role
}
