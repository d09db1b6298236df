package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/yhl125/iampocket-relay-server/internal/api/shared/errors"
	"github.com/yhl125/iampocket-relay-server/internal/logger"
)

// respondError serves err with the status of its error taxonomy
func respondError(c *gin.Context, err error, message string) {
	apiErr := apierrors.FromError(err)
	if apiErr.StatusCode() >= 500 {
		logger.ErrorCtx(c.Request.Context(), err,
			zap.String("path", c.Request.URL.Path),
			zap.String("message", message))
	} else {
		logger.WarnCtx(c.Request.Context(), message,
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
	}
	_ = c.Error(err)
	c.JSON(apiErr.StatusCode(), apierrors.ErrorResponse{Error: apiErr})
}

// respondValidationError responds with a request validation error
func respondValidationError(c *gin.Context, details string) {
	apiErr := apierrors.NewValidationError(details)
	c.JSON(apiErr.StatusCode(), apierrors.ErrorResponse{Error: apiErr})
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	apiErr := apierrors.NewNotFoundError(message, details...)
	c.JSON(apiErr.StatusCode(), apierrors.ErrorResponse{Error: apiErr})
}
