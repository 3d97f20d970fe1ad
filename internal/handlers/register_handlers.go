package handlers

import (
	"fmt"

	"github.com/SscSPs/currency_converter/cmd/docs"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/dto"
	"github.com/SscSPs/currency_converter/internal/middleware"
	"github.com/SscSPs/currency_converter/internal/platform/config"
	"github.com/SscSPs/currency_converter/internal/platform/metrics"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// m may be nil, in which case /metrics is not exposed.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	m *metrics.Metrics,
) error {
	if err := dto.RegisterValidators(); err != nil {
		return fmt.Errorf("register validators: %w", err)
	}

	registerHomeRoutes(r, services.Converter)
	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	if err := setupAPIV1Routes(r, cfg, services); err != nil {
		return err
	}

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group. Conversions are public; changing
// the configuration and running load tests require an admin principal.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	convertLimiter, err := middleware.NewIPRateLimiter(cfg.ConvertRateLimit)
	if err != nil {
		return fmt.Errorf("convert rate limiter: %w", err)
	}
	authLimiter, err := middleware.NewIPRateLimiter(cfg.AuthRateLimit)
	if err != nil {
		return fmt.Errorf("auth rate limiter: %w", err)
	}

	v1 := r.Group("/api/v1")
	admin := v1.Group("",
		middleware.APIKeyAuth(cfg.AdminAPIKeyHash),
		middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer),
	)

	registerAuthRoutes(v1, cfg, middleware.RateLimit(authLimiter))

	converter := newConverterHandler(services.Converter, services.SeedRates, cfg.AmountDisplayPrecision)
	registerConverterRoutes(v1, admin, converter, middleware.RateLimit(convertLimiter))

	if services.LoadTest != nil {
		registerLoadTestRoutes(admin, services.LoadTest, cfg.AmountDisplayPrecision)
	}
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
