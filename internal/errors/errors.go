package errors

import (
	"net/http"
	"time"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Request errors (400xx)
	ErrInvalidRequest   ErrorCode = "40001"
	ErrValidationFailed ErrorCode = "40002"
	ErrInvalidFilter    ErrorCode = "40003"
	ErrInvalidInput     ErrorCode = "40004"

	// Server errors (500xx)
	ErrInternalServer     ErrorCode = "50001"
	ErrCatalogUnavailable ErrorCode = "50302"
)

// APIError represents a standardized API error
type APIError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Details    any       `json:"details,omitempty"`
	HTTPStatus int       `json:"-"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// ErrorDetail is the error portion of an error response
type ErrorDetail struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   any       `json:"details,omitempty"`
	Timestamp string    `json:"timestamp"`
	Path      string    `json:"path,omitempty"`
	Method    string    `json:"method,omitempty"`
}

// ErrorResponse represents the error response format
type ErrorResponse struct {
	Error         ErrorDetail `json:"error"`
	RequestID     string      `json:"request_id"`
	CorrelationID string      `json:"correlation_id,omitempty"`
}

// NewErrorResponse builds the standard error response envelope
func NewErrorResponse(err *APIError, requestID, correlationID, path, method string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:      err.Code,
			Message:   err.Message,
			Details:   err.Details,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Path:      path,
			Method:    method,
		},
		RequestID:     requestID,
		CorrelationID: correlationID,
	}
}

// GetHTTPStatusFromCode maps an error code to its HTTP status
func GetHTTPStatusFromCode(code ErrorCode) int {
	switch code {
	case ErrInvalidRequest, ErrValidationFailed, ErrInvalidFilter, ErrInvalidInput:
		return http.StatusBadRequest
	case ErrCatalogUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Common errors
var (
	ErrInternalServerError = &APIError{
		Code:       ErrInternalServer,
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
	}

	ErrCatalogUnavailableError = &APIError{
		Code:       ErrCatalogUnavailable,
		Message:    "Profile catalog unavailable",
		HTTPStatus: http.StatusServiceUnavailable,
	}
)

// NewValidationError creates a validation error with details
func NewValidationError(details any) *APIError {
	return &APIError{
		Code:       ErrValidationFailed,
		Message:    "Validation failed",
		Details:    details,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) *APIError {
	return &APIError{
		Code:       ErrInvalidRequest,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewInvalidFilterError creates an error for a malformed filter specification
func NewInvalidFilterError(message string) *APIError {
	return &APIError{
		Code:       ErrInvalidFilter,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewInvalidInputError creates an error for invalid estimation input
func NewInvalidInputError(message string) *APIError {
	return &APIError{
		Code:       ErrInvalidInput,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}
