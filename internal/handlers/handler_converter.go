package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/SscSPs/currency_converter/internal/core/domain"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/dto"
	"github.com/SscSPs/currency_converter/internal/middleware"
	"github.com/gin-gonic/gin"
)

// converterHandler handles HTTP requests for currency conversion and rate configuration.
type converterHandler struct {
	converter portssvc.ConverterSvcFacade
	seedRates []domain.ExchangeRate
	precision int
}

// newConverterHandler creates a new converterHandler.
func newConverterHandler(converter portssvc.ConverterSvcFacade, seedRates []domain.ExchangeRate, precision int) *converterHandler {
	return &converterHandler{
		converter: converter,
		seedRates: seedRates,
		precision: precision,
	}
}

// registerConverterRoutes registers the public and admin conversion routes.
// convertLimit guards the conversion endpoint.
func registerConverterRoutes(public, admin *gin.RouterGroup, h *converterHandler, convertLimit gin.HandlerFunc) {
	pub := public.Group("/currencyconverter")
	{
		pub.GET("", h.getSeedRates)
		pub.GET("/convert", convertLimit, h.convert)
		pub.GET("/rates", h.getConfiguration)
	}

	adm := admin.Group("/currencyconverter")
	{
		adm.POST("/configure", h.configure)
		adm.DELETE("/configure", h.clearConfiguration)
	}
}

// getSeedRates godoc
// @Summary List seed exchange rates
// @Description Returns the static direct rate pairs the service ships with
// @Tags currency converter
// @Produce json
// @Success 200 {array} dto.ExchangeRateResponse
// @Router /currencyconverter [get]
func (h *converterHandler) getSeedRates(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(h.seedRates))
}

// configure godoc
// @Summary Replace the conversion rates
// @Description Atomically replaces the current configuration with the given direct rates. Reciprocal rates are derived automatically.
// @Tags currency converter
// @Accept json
// @Produce json
// @Param rates body []dto.ExchangeRateRequest true "Direct exchange rates"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid rates"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /currencyconverter/configure [post]
func (h *converterHandler) configure(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req []dto.ExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for configure", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Error configuring conversion rates: " + err.Error()})
		return
	}

	rates := dto.ToExchangeRates(req)
	if err := h.converter.ReplaceConfiguration(c.Request.Context(), rates); err != nil {
		if errors.Is(err, apperrors.ErrInvalidRate) || errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error configuring rates", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Error configuring conversion rates: " + err.Error()})
		} else {
			logger.Error("Failed to configure rates", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to configure conversion rates"})
		}
		return
	}

	logger.Info("Conversion rates configured", slog.Int("rates", len(rates)))
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Configuration updated successfully"})
}

// clearConfiguration godoc
// @Summary Clear the conversion rates
// @Description Removes every configured rate and cached conversion
// @Tags currency converter
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /currencyconverter/configure [delete]
func (h *converterHandler) clearConfiguration(c *gin.Context) {
	h.converter.ClearConfiguration(c.Request.Context())
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Conversion rates cleared")
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Configuration cleared"})
}

// convert godoc
// @Summary Convert an amount between currencies
// @Description Converts using a direct rate when configured, otherwise through a chain of configured rates
// @Tags currency converter
// @Produce json
// @Param fromCurrency query string true "Source currency code"
// @Param toCurrency query string true "Target currency code"
// @Param amount query number true "Amount in the source currency"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid currency codes"
// @Failure 422 {object} dto.ErrorResponse "No conversion path"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.ErrorResponse
// @Router /currencyconverter/convert [get]
func (h *converterHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var q dto.ConvertQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind convert query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid currency codes or amount: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("from", q.FromCurrency), slog.String("to", q.ToCurrency))

	conv, err := h.converter.Convert(c.Request.Context(), domain.CurrencyCode(q.FromCurrency), domain.CurrencyCode(q.ToCurrency), *q.Amount)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownCurrency) {
			logger.Warn("Unknown currency in conversion", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid currency codes: " + err.Error()})
		} else if errors.Is(err, apperrors.ErrNoPathFound) {
			logger.Warn("No conversion path", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to convert", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to convert amount"})
		}
		return
	}

	logger.Debug("Conversion served", slog.Bool("cached", conv.Cached), slog.Int("hops", conv.Path.Hops()))
	c.JSON(http.StatusOK, dto.ToConvertResponse(conv, h.precision))
}

// getConfiguration godoc
// @Summary Show the live rate configuration
// @Description Lists every configured directed rate, derived reciprocals included
// @Tags currency converter
// @Produce json
// @Success 200 {object} dto.ConfigurationResponse
// @Router /currencyconverter/rates [get]
func (h *converterHandler) getConfiguration(c *gin.Context) {
	ctx := c.Request.Context()
	rates := h.converter.Rates(ctx)
	c.JSON(http.StatusOK, dto.ConfigurationResponse{
		Message:    "Current conversion configuration",
		Strategy:   h.converter.Strategy(),
		Currencies: dto.CurrencyStrings(h.converter.Currencies(ctx)),
		Rates:      dto.ToListExchangeRateResponse(rates),
	})
}
