package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apierrors "github.com/yhl125/iampocket-relay-server/internal/api/shared/errors"
	"github.com/yhl125/iampocket-relay-server/internal/logger"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// RequestID reuses the caller's request id or assigns a new one
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the id assigned by RequestID
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// Logger returns a gin middleware for structured logging using zap.
// Request bodies are never logged: they carry payer private keys.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := []zap.Field{
			zap.String("request_id", GetRequestID(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		logger.InfoCtx(c.Request.Context(), "API request", fields...)
	}
}

// Recovery returns a gin middleware for panic recovery with logging
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.ErrorCtx(c.Request.Context(), fmt.Errorf("panic recovered: %v", err),
					zap.String("request_id", GetRequestID(c)),
					zap.String("path", c.Request.URL.Path),
				)
				apiErr := apierrors.NewInternalError("Internal server error")
				c.AbortWithStatusJSON(apiErr.StatusCode(), apierrors.ErrorResponse{Error: apiErr})
			}
		}()
		c.Next()
	}
}
