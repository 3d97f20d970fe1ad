package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
)

// contextKey is a private type for values stored in request contexts.
type contextKey string

const (
	subjectCtxKey    = contextKey("subject")
	authMethodGinKey = "authMethod"

	authMethodJWT    = "jwt"
	authMethodAPIKey = "api_key"
)

// setPrincipal records who the request is authenticated as in both the gin
// and the standard context, and enriches the request logger with it.
func setPrincipal(c *gin.Context, subject, method string) {
	c.Set(authMethodGinKey, method)

	logger := GetLoggerFromCtx(c.Request.Context()).With(slog.String("subject", subject))
	ctx := context.WithValue(c.Request.Context(), subjectCtxKey, subject)
	c.Request = c.Request.WithContext(WithLogger(ctx, logger))
}

// GetSubjectFromContext retrieves the authenticated principal from the request context.
// It returns the subject and a boolean indicating if it was found.
func GetSubjectFromContext(c *gin.Context) (string, bool) {
	subject, ok := c.Request.Context().Value(subjectCtxKey).(string)
	return subject, ok && subject != ""
}

// GetAuthMethod reports how the request was authenticated, if at all.
func GetAuthMethod(c *gin.Context) (string, bool) {
	method := c.GetString(authMethodGinKey)
	return method, method != ""
}
