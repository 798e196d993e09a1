package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	apperrors "kumbara/internal/errors"
)

// APIKeyHeader carries the shared secret guarding mutating routes.
const APIKeyHeader = "X-API-Key"

// APIKeyAuth creates a Gin middleware that validates the X-API-Key header
// against apiKey. An empty apiKey disables the check.
func APIKeyAuth(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}
		key := c.GetHeader(APIKeyHeader)
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			err := apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid or missing API key")
			c.AbortWithStatusJSON(err.StatusCode,
				gin.H{"error": gin.H{"code": err.Code, "message": err.Message}})
			return
		}
		c.Next()
	}
}
