package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/SscSPs/currency_converter/internal/core/domain"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/dto"
	"github.com/SscSPs/currency_converter/internal/handlers"
	"github.com/SscSPs/currency_converter/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAdminRouter(t *testing.T, apiKeyHash string, loadTest portssvc.LoadTestSvc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	err := handlers.RegisterRoutes(r, testConfig(apiKeyHash), &portssvc.ServiceContainer{
		Converter: new(MockConverterService),
		LoadTest:  loadTest,
	}, nil)
	require.NoError(t, err)
	return r
}

func postToken(r *gin.Engine, apiKey string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(dto.TokenRequest{APIKey: apiKey})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/token", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIssueToken(t *testing.T) {
	hash, err := utils.HashAPIKey(testAPIKey)
	require.NoError(t, err)
	r := newAdminRouter(t, hash, nil)

	w := postToken(r, testAPIKey)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(time.Hour.Seconds()), resp.ExpiresIn)

	claims, err := utils.ParseAdminJWT(resp.Token, testJWTSecret, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, utils.RoleAdmin, claims.Role)
}

func TestIssueToken_Rejections(t *testing.T) {
	hash, err := utils.HashAPIKey(testAPIKey)
	require.NoError(t, err)
	r := newAdminRouter(t, hash, nil)

	w := postToken(r, "wrong-key")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/token", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Limit is two per minute for the same client.
	w = postToken(r, testAPIKey)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestIssueToken_DisabledWithoutKeyHash(t *testing.T) {
	r := newAdminRouter(t, "", nil)

	w := postToken(r, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postToken(r, testAPIKey)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRunLoadTest(t *testing.T) {
	loadTest := new(MockLoadTestService)
	r := newAdminRouter(t, "", loadTest)
	token, err := utils.GenerateAdminJWT("admin", testJWTSecret, time.Hour, testIssuer)
	require.NoError(t, err)

	loadTest.On("Run", mock.Anything, 50).Return(&domain.LoadTestResult{
		NumberOfRequests:    50,
		Concurrency:         8,
		From:                "CAD",
		To:                  "EUR",
		Amount:              100,
		ElapsedTime:         40 * time.Millisecond,
		AverageResponseTime: 800 * time.Microsecond,
		MaxResponseTime:     3 * time.Millisecond,
		Sample: &domain.Conversion{
			From: "CAD", To: "EUR", Amount: 100, Converted: 64.1791, Rate: 0.641791,
			Path: domain.Path{"CAD", "USD", "EUR"}, Strategy: "dfs",
		},
	}, nil).Once()
	loadTest.On("Run", mock.Anything, 7).Return(nil, fmt.Errorf("%w: CAD", apperrors.ErrUnknownCurrency)).Once()

	send := func(target, bearer string) *httptest.ResponseRecorder {
		req, _ := http.NewRequest(http.MethodPost, target, nil)
		if bearer != "" {
			req.Header.Set("Authorization", "Bearer "+bearer)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := send("/api/v1/loadtest/runLoadTest?numberOfRequests=50", token)
	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.LoadTestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 50, resp.NumberOfRequests)
	assert.Equal(t, int64(40), resp.ElapsedTime)
	assert.InDelta(t, 0.8, resp.AverageResponseTime, 1e-9)
	assert.InDelta(t, 3.0, resp.MaxResponseTime, 1e-9)
	require.NotNil(t, resp.Sample)
	assert.Equal(t, "64.18", resp.Sample.FormattedAmount)

	w = send("/api/v1/loadtest/runLoadTest?numberOfRequests=7", token)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = send("/api/v1/loadtest/runLoadTest?numberOfRequests=0", token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = send("/api/v1/loadtest/runLoadTest?numberOfRequests=50", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	loadTest.AssertExpectations(t)
}

func TestRunLoadTest_ContextReachesService(t *testing.T) {
	loadTest := new(MockLoadTestService)
	r := newAdminRouter(t, "", loadTest)
	token, err := utils.GenerateAdminJWT("admin", testJWTSecret, time.Hour, testIssuer)
	require.NoError(t, err)

	loadTest.On("Run", mock.MatchedBy(func(ctx context.Context) bool { return ctx != nil }), 1).
		Return(nil, fmt.Errorf("%w: numberOfRequests exceeds 0", apperrors.ErrValidation)).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/loadtest/runLoadTest?numberOfRequests=1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	loadTest.AssertExpectations(t)
}
