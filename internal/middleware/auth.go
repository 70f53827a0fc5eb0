package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joinboard/join-api/internal/constants"
	"github.com/joinboard/join-api/internal/database"
	apierrors "github.com/joinboard/join-api/internal/errors"
	"github.com/joinboard/join-api/internal/models"
)

// RequireAuth checks the Authorization header for a valid bearer token and
// stores the token's user ID in the request context.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		key, ok := extractTokenKey(c.GetHeader("Authorization"))
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		var token models.AuthToken
		if err := database.GetDB().Where("key = ?", key).First(&token).Error; err != nil {
			apierrors.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, token.UserID)
		c.Next()
	}
}

// extractTokenKey parses "Bearer <key>" (or "Token <key>" for older clients)
// from an Authorization header value.
func extractTokenKey(header string) (string, bool) {
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return "", false
	}

	scheme := strings.ToLower(parts[0])
	if scheme != "bearer" && scheme != "token" {
		return "", false
	}

	key := strings.TrimSpace(parts[1])
	if key == "" {
		return "", false
	}

	return key, true
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
