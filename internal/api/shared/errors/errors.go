package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/yhl125/iampocket-relay-server/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest         ErrorCode = "bad_request"
	ErrCodeNotFound           ErrorCode = "not_found"
	ErrCodeValidationFailed   ErrorCode = "validation_failed"
	ErrCodeUnauthorized       ErrorCode = "unauthorized"
	ErrCodeForbidden          ErrorCode = "forbidden"
	ErrCodeConflict           ErrorCode = "conflict"
	ErrCodeRateLimited        ErrorCode = "rate_limited"
	ErrCodeUnsupportedNetwork ErrorCode = "unsupported_network"
	ErrCodeInvalidAddress     ErrorCode = "invalid_address"

	// Server errors (5xx)
	ErrCodeInternalError      ErrorCode = "internal_error"
	ErrCodeDatabaseError      ErrorCode = "database_error"
	ErrCodeServiceError       ErrorCode = "service_error"
	ErrCodeTransactionFailed  ErrorCode = "transaction_failed"
	ErrCodeMintFailed         ErrorCode = "mint_failed"
	ErrCodeProvisioningFailed ErrorCode = "provisioning_failed"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`

	status int
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error *APIError `json:"error"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// StatusCode returns the HTTP status the error is served with
func (e *APIError) StatusCode() int {
	if e.status == 0 {
		return http.StatusInternalServerError
	}
	return e.status
}

func newError(status int, code ErrorCode, message string, details ...string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Details: strings.Join(details, ", "),
		status:  status,
	}
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return newError(http.StatusBadRequest, ErrCodeBadRequest, message, details...)
}

func NewNotFoundError(message string, details ...string) *APIError {
	return newError(http.StatusNotFound, ErrCodeNotFound, message, details...)
}

func NewValidationError(details ...string) *APIError {
	return newError(http.StatusBadRequest, ErrCodeValidationFailed, "Validation failed", details...)
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return newError(http.StatusUnauthorized, ErrCodeUnauthorized, message, details...)
}

func NewForbiddenError(message string, details ...string) *APIError {
	return newError(http.StatusForbidden, ErrCodeForbidden, message, details...)
}

func NewConflictError(message string, details ...string) *APIError {
	return newError(http.StatusConflict, ErrCodeConflict, message, details...)
}

func NewRateLimitedError(details ...string) *APIError {
	return newError(http.StatusTooManyRequests, ErrCodeRateLimited, "Too many requests", details...)
}

func NewInternalError(message string, details ...string) *APIError {
	return newError(http.StatusInternalServerError, ErrCodeInternalError, message, details...)
}

func NewDatabaseError(message string, details ...string) *APIError {
	return newError(http.StatusInternalServerError, ErrCodeDatabaseError, message, details...)
}

func NewServiceError(message string, details ...string) *APIError {
	return newError(http.StatusBadGateway, ErrCodeServiceError, message, details...)
}

// errorMapping pairs a domain sentinel with how it is served. First match wins.
var errorMapping = []struct {
	target error
	status int
	code   ErrorCode
}{
	{domain.ErrInvalidAddress, http.StatusBadRequest, ErrCodeInvalidAddress},
	{domain.ErrUnsupportedNetwork, http.StatusBadRequest, ErrCodeUnsupportedNetwork},
	{domain.ErrInvalidTokenID, http.StatusBadRequest, ErrCodeValidationFailed},
	{domain.ErrInvalidPrivateKey, http.StatusBadRequest, ErrCodeValidationFailed},
	{domain.ErrAuthentication, http.StatusUnauthorized, ErrCodeUnauthorized},
	{domain.ErrPermissionDenied, http.StatusForbidden, ErrCodeForbidden},
	{domain.ErrProvisioningNotFound, http.StatusNotFound, ErrCodeNotFound},
	{domain.ErrProvisioningComplete, http.StatusConflict, ErrCodeConflict},
	{domain.ErrProvisioningFailed, http.StatusBadGateway, ErrCodeProvisioningFailed},
	{domain.ErrMintFailed, http.StatusBadGateway, ErrCodeMintFailed},
	{domain.ErrTransactionFailed, http.StatusBadGateway, ErrCodeTransactionFailed},
	{domain.ErrContractNotFound, http.StatusInternalServerError, ErrCodeInternalError},
}

// FromError converts any error into an APIError. Domain errors keep their sentinel as the
// message and the full chain as details; anything else becomes an internal error.
func FromError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	for _, m := range errorMapping {
		if errors.Is(err, m.target) {
			return newError(m.status, m.code, m.target.Error(), err.Error())
		}
	}

	return NewInternalError("Internal server error", err.Error())
}
