package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/feral-file/power-ledger/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest                ErrorCode = "bad_request"
	ErrCodeNotFound                  ErrorCode = "not_found"
	ErrCodeValidationFailed          ErrorCode = "validation_failed"
	ErrCodeInvalidRange              ErrorCode = "invalid_range"
	ErrCodeFirstAllocationMustBeFull ErrorCode = "first_allocation_must_be_full"
	ErrCodeMaxProjectLimitExceeded   ErrorCode = "max_project_limit_exceeded"
	ErrCodeConflict                  ErrorCode = "concurrent_modification"

	// Server errors (5xx)
	ErrCodeInternalError       ErrorCode = "internal_error"
	ErrCodeUpstreamUnavailable ErrorCode = "upstream_unavailable"
	ErrCodeServiceError        ErrorCode = "service_error"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewNotFoundError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeNotFound,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewValidationError(details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Details: strings.Join(details, ", "),
	}
}

func NewConflictError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeConflict,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewInternalError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeInternalError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewServiceError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeServiceError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// FromDomain maps an error to its HTTP status and API error. Anything outside the
// domain taxonomy is an internal error without details.
func FromDomain(err error) (int, *APIError) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return StatusOf(apiErr.Code), apiErr
	}

	switch {
	case errors.Is(err, domain.ErrInvalidRange):
		return http.StatusBadRequest, &APIError{Code: ErrCodeInvalidRange, Message: "Percentage out of range", Details: err.Error()}
	case errors.Is(err, domain.ErrFirstAllocationMustBeFull):
		return http.StatusBadRequest, &APIError{Code: ErrCodeFirstAllocationMustBeFull, Message: "First allocation must be 100 percent", Details: err.Error()}
	case errors.Is(err, domain.ErrMaxProjectLimitExceeded):
		return http.StatusBadRequest, &APIError{Code: ErrCodeMaxProjectLimitExceeded, Message: "Too many projects", Details: err.Error()}
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, NewValidationError(err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, NewNotFoundError("Not found", err.Error())
	case errors.Is(err, domain.ErrConcurrentModification):
		return http.StatusConflict, NewConflictError("Concurrent modification, retry the request")
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return http.StatusServiceUnavailable, &APIError{Code: ErrCodeUpstreamUnavailable, Message: "Upstream unavailable"}
	default:
		return http.StatusInternalServerError, NewInternalError("Internal server error")
	}
}

// StatusOf returns the HTTP status of an error code
func StatusOf(code ErrorCode) int {
	switch code {
	case ErrCodeBadRequest, ErrCodeValidationFailed, ErrCodeInvalidRange,
		ErrCodeFirstAllocationMustBeFull, ErrCodeMaxProjectLimitExceeded:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeUpstreamUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
