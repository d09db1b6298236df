package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yhl125/iampocket-relay-server/internal/api/middleware"
	"github.com/yhl125/iampocket-relay-server/internal/api/rest"
	"github.com/yhl125/iampocket-relay-server/internal/api/shared/executor"
	"github.com/yhl125/iampocket-relay-server/internal/logger"
	"github.com/yhl125/iampocket-relay-server/internal/metrics"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	// RequestTimeout caps the time a handler may spend on one request
	RequestTimeout time.Duration
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	executor   executor.Executor
	limiter    *middleware.IPRateLimiter
	httpServer *http.Server
}

// New creates a new API server. limiter throttles payer wallet creation per client IP.
func New(cfg Config, exec executor.Executor, limiter *middleware.IPRateLimiter) *Server {
	return &Server{
		config:   cfg,
		executor: exec,
		limiter:  limiter,
	}
}

// Router builds the gin engine with every middleware and route
func (s *Server) Router() *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())
	router.Use(middleware.SetupCORS())
	if s.config.RequestTimeout > 0 {
		router.Use(requestTimeout(s.config.RequestTimeout))
	}

	rest.SetupRoutes(router, rest.NewHandler(s.executor), middleware.RateLimit(s.limiter))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	return router
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}

func requestTimeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
