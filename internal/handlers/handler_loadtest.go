package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/dto"
	"github.com/SscSPs/currency_converter/internal/middleware"
	"github.com/gin-gonic/gin"
)

type loadTestHandler struct {
	loadTest  portssvc.LoadTestSvc
	precision int
}

func registerLoadTestRoutes(admin *gin.RouterGroup, loadTest portssvc.LoadTestSvc, precision int) {
	h := &loadTestHandler{loadTest: loadTest, precision: precision}
	admin.POST("/loadtest/runLoadTest", h.runLoadTest)
}

// runLoadTest godoc
// @Summary Run a synthetic conversion load test
// @Description Issues numberOfRequests concurrent conversions of a fixed pair and reports timings in milliseconds
// @Tags load test
// @Produce json
// @Param numberOfRequests query int true "Number of conversions to issue" minimum(1)
// @Success 200 {object} dto.LoadTestResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 422 {object} dto.ErrorResponse "Conversion under test failed"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /loadtest/runLoadTest [post]
func (h *loadTestHandler) runLoadTest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var q dto.LoadTestQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid numberOfRequests: " + err.Error()})
		return
	}

	result, err := h.loadTest.Run(c.Request.Context(), q.NumberOfRequests)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrUnknownCurrency), errors.Is(err, apperrors.ErrNoPathFound):
			logger.Warn("Load test conversion failed", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Load test failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Load test failed"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLoadTestResponse(result, h.precision))
}
