package handlers_test

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/core/services"
	"github.com/SscSPs/currency_converter/internal/dto"
	"github.com/SscSPs/currency_converter/internal/handlers"
	"github.com/SscSPs/currency_converter/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newEngineRouter mounts the API over a real conversion engine.
func newEngineRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	converter, err := services.NewConversionService()
	require.NoError(t, err)

	r := gin.New()
	err = handlers.RegisterRoutes(r, testConfig(""), &portssvc.ServiceContainer{
		Converter: converter,
		LoadTest:  new(MockLoadTestService),
	}, nil)
	require.NoError(t, err)

	token, err := utils.GenerateAdminJWT("admin", testJWTSecret, time.Hour, testIssuer)
	require.NoError(t, err)
	return r, token
}

func configureRates(r *gin.Engine, token string, body []byte) int {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/currencyconverter/configure", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func convertUSDToGBP(r *gin.Engine, amount string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/currencyconverter/convert?fromCurrency=USD&toCurrency=GBP&amount="+amount, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

var seedBody = []byte(`[
	{"from": "USD", "to": "CAD", "rate": 1.34},
	{"from": "CAD", "to": "GBP", "rate": 0.58},
	{"from": "USD", "to": "EUR", "rate": 0.86}
]`)

func TestConvert_NonFiniteAmountRejectedBeforeEngine(t *testing.T) {
	r, token := newEngineRouter(t)
	require.Equal(t, http.StatusOK, configureRates(r, token, seedBody))

	for _, amount := range []string{"NaN", "nan", "Inf", "-Inf", "infinity"} {
		w := convertUSDToGBP(r, amount)
		assert.Equal(t, http.StatusBadRequest, w.Code, amount)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), amount)
		assert.Contains(t, resp.Error, "Invalid currency codes or amount", amount)
	}

	w := convertUSDToGBP(r, "100")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestConfigure_ConcurrentConvertsNeverSeeEmptyGraph(t *testing.T) {
	r, token := newEngineRouter(t)
	require.Equal(t, http.StatusOK, configureRates(r, token, seedBody))

	const (
		readers   = 4
		perReader = 100
	)

	var (
		failures atomic.Int64
		served   atomic.Int64
		wg       sync.WaitGroup
	)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			if code := configureRates(r, token, seedBody); code != http.StatusOK {
				failures.Add(1)
			}
		}
	}()

	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perReader; j++ {
				w := convertUSDToGBP(r, "100")
				served.Add(1)
				if w.Code != http.StatusOK {
					failures.Add(1)
					continue
				}
				var resp dto.ConvertResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || math.Abs(resp.ConvertedAmount-77.72) > 1e-6 {
					failures.Add(1)
				}
			}
		}()
	}

	wg.Wait()
	<-done

	assert.Equal(t, int64(readers*perReader), served.Load())
	assert.Zero(t, failures.Load())
}
