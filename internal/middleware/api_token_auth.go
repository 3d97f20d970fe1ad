package middleware

import (
	"log/slog"

	"github.com/SscSPs/currency_converter/internal/utils"
	"github.com/gin-gonic/gin"
)

const apiKeyHeader = "X-API-Key"

// apiKeySubject identifies requests authenticated with the raw admin key.
const apiKeySubject = "api-key"

// APIKeyAuth lets automation present the admin API key directly instead of a
// bearer token. A missing or wrong key is not rejected here; the request simply
// falls through to AuthMiddleware.
func APIKeyAuth(adminKeyHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(apiKeyHeader)
		if key == "" || adminKeyHash == "" {
			c.Next()
			return
		}

		if !utils.CheckAPIKeyHash(key, adminKeyHash) {
			GetLoggerFromCtx(c.Request.Context()).Warn("Rejected admin API key", slog.String("client_ip", c.ClientIP()))
			c.Next()
			return
		}

		setPrincipal(c, apiKeySubject, authMethodAPIKey)
		c.Next()
	}
}
