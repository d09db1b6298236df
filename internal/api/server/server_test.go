package server_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yhl125/iampocket-relay-server/internal/api/middleware"
	"github.com/yhl125/iampocket-relay-server/internal/api/server"
	"github.com/yhl125/iampocket-relay-server/internal/api/shared/dto"
	"github.com/yhl125/iampocket-relay-server/internal/domain"
	"github.com/yhl125/iampocket-relay-server/internal/metrics"
	"github.com/yhl125/iampocket-relay-server/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metrics.Init()
	srv := server.New(server.Config{}, mocks.NewMockAPIExecutor(ctrl),
		middleware.NewIPRateLimiter(middleware.RateLimitConfig{RequestsPerMinute: 10, Burst: 5}))
	router := srv.Router()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestRouter_RegisterPayerIsRateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec := mocks.NewMockAPIExecutor(ctrl)
	exec.EXPECT().RegisterPayer(gomock.Any(), domain.NetworkDatil, "").
		Return(&dto.RegisterPayerResponse{PayerWalletAddress: "0xabc", PayerPrivateKey: "0xkey"}, nil).
		Times(2)

	srv := server.New(server.Config{RequestTimeout: time.Minute}, exec,
		middleware.NewIPRateLimiter(middleware.RateLimitConfig{RequestsPerMinute: 1, Burst: 2}))
	router := srv.Router()

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/register-payer", bytes.NewBufferString(`{"network":"datil"}`))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "203.0.113.7:4000"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestShutdownBeforeStart(t *testing.T) {
	srv := server.New(server.Config{}, nil, middleware.NewIPRateLimiter(middleware.RateLimitConfig{}))
	assert.NoError(t, srv.Shutdown(context.Background()))
}
