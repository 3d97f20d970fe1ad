package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/currency_converter/internal/core/services"
	"github.com/SscSPs/currency_converter/internal/handlers"
	"github.com/SscSPs/currency_converter/internal/middleware"
	"github.com/SscSPs/currency_converter/internal/platform/config"
	"github.com/SscSPs/currency_converter/internal/platform/metrics"
	"github.com/SscSPs/currency_converter/internal/platform/seed"
	"github.com/SscSPs/currency_converter/internal/utils"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// @title Currency Converter API
// @version 1.0
// @description Converts amounts between currencies using configured direct rates, inferring multi-hop routes when needed.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	seedRates, err := seed.Load(cfg.SeedRatesFile)
	if err != nil {
		logger.Error("Failed to load seed rates", slog.String("file", cfg.SeedRatesFile), slog.String("error", err.Error()))
		os.Exit(1)
	}

	m := metrics.NewMetrics()
	observer := services.MultiObserver{
		services.NewLoggingObserver(logger),
		metrics.NewObserver(m),
	}

	serviceContainer, err := services.NewServiceContainer(cfg, seedRates, observer)
	if err != nil {
		logger.Error("Failed to create services", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Conversion engine ready", slog.String("strategy", serviceContainer.Converter.Strategy()))

	if cfg.ApplySeedOnStartup {
		if err := serviceContainer.Converter.UpdateConfiguration(context.Background(), seedRates); err != nil {
			logger.Error("Failed to apply seed rates", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Seed rates applied", slog.Int("rates", len(seedRates)))
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.MetricsMiddleware(m),
		middleware.PosthogMiddleware(posthogClient),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer, m); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shut down", slog.String("error", err.Error()))
	}
}
