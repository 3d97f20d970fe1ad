package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary Show the status of server.
// @Description get the status of server and the active resolver strategy.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func getHome(converter portssvc.ConverterReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":    "Currency Converter API v1",
			"strategy":   converter.Strategy(),
			"currencies": len(converter.Currencies(c.Request.Context())),
		})
	}
}

func registerHomeRoutes(r *gin.Engine, converter portssvc.ConverterReaderSvc) {
	r.GET("/", getHome(converter))
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
}
