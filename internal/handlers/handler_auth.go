package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/currency_converter/internal/dto"
	"github.com/SscSPs/currency_converter/internal/middleware"
	"github.com/SscSPs/currency_converter/internal/platform/config"
	"github.com/SscSPs/currency_converter/internal/utils"
	"github.com/gin-gonic/gin"
)

// adminSubject is the JWT subject of tokens issued for the admin key.
const adminSubject = "admin"

// AuthHandler exchanges the admin API key for short-lived bearer tokens.
type AuthHandler struct {
	apiKeyHash  string
	jwtSecret   string
	jwtIssuer   string
	jwtDuration time.Duration
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		apiKeyHash:  cfg.AdminAPIKeyHash,
		jwtSecret:   cfg.JWTSecret,
		jwtIssuer:   cfg.JWTIssuer,
		jwtDuration: cfg.JWTExpiryDuration,
	}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, authLimit gin.HandlerFunc) {
	h := NewAuthHandler(cfg)

	auth := rg.Group("/auth")
	{
		auth.POST("/token", authLimit, h.IssueToken)
	}
}

// IssueToken godoc
// @Summary Issue an admin token
// @Description Exchanges the admin API key for a JWT accepted by the configuration and load test endpoints.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.TokenRequest true "Admin API key"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if !utils.CheckAPIKeyHash(req.APIKey, h.apiKeyHash) {
		logger.Warn("Rejected token request", slog.String("client_ip", c.ClientIP()))
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid API key"})
		return
	}

	token, err := utils.GenerateAdminJWT(adminSubject, h.jwtSecret, h.jwtDuration, h.jwtIssuer)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: token, ExpiresIn: int64(h.jwtDuration.Seconds())})
}
