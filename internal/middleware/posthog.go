package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/currency_converter/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// PosthogMiddleware creates a Gin middleware handler that tracks API events with PostHog.
// Anonymous callers are tracked by client IP.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		// Event name from route template, e.g. "/api/v1/currencyconverter/convert" -> "api_v1_currencyconverter_convert"
		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		distinctID, ok := GetSubjectFromContext(c)
		if !ok {
			distinctID = c.ClientIP()
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
			"success":     len(c.Errors) == 0 && c.Writer.Status() < http.StatusBadRequest,
		}
		if from := c.Query("fromCurrency"); from != "" {
			props["from_currency"] = from
			props["to_currency"] = c.Query("toCurrency")
		}

		posthogClient.Enqueue(distinctID, eventName, props)
	}
}
