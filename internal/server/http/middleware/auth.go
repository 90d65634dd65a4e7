package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/Abhijeetcode911/customgpt-payment/internal/pkg/auth"
	"github.com/Abhijeetcode911/customgpt-payment/internal/server/http/dto"
)

const apiKeyHeader = "X-API-Key"

// APIKeyRequired rejects requests that do not present a key accepted by verifier.
func APIKeyRequired(verifier pkgAuth.KeyVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := extractAPIKey(c)
		if key == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing api key"})
			return
		}

		if err := verifier.Verify(key); err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidAPIKey) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid api key"})
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Next()
	}
}

func extractAPIKey(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return strings.TrimSpace(c.GetHeader(apiKeyHeader))
}
