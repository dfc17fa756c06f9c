package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Envelope is the wire format shared by every API response, success or
// failure: { success, data?, message?, error? }.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents a failed API response. The Code is kept
// server-side for status mapping and logging; only the envelope fields go
// over the wire.
type ErrorResponse struct {
	Envelope
	Code ErrorCode `json:"-"`
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithDetail sets the error detail string of the envelope
func WithDetail(detail string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error = detail
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Message = message
	}
}

// NewErrorResponse creates a standardized error response for the given code.
// Optional details can be added using functional options.
func NewErrorResponse(code ErrorCode, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Envelope: Envelope{
			Success: false,
			Message: GetErrorMessage(code),
		},
		Code: code,
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// WrapSystemError wraps an internal error with a generic system error
// message so internal details are not exposed to clients. The internal
// error is returned separately for server-side logging.
func WrapSystemError(err error) (*ErrorResponse, error) {
	response := &ErrorResponse{
		Envelope: Envelope{
			Success: false,
			Message: GetErrorMessage(SystemInternalError),
		},
		Code: SystemInternalError,
	}
	return response, err
}

// ToJSON serializes the error response to JSON bytes
func (er *ErrorResponse) ToJSON() ([]byte, error) {
	return json.Marshal(er)
}

// GetHTTPStatus returns the appropriate HTTP status code for the error code
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	// 400 Bad Request - validation failures, duplicate email, malformed IDs
	case ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat,
		ValidationInvalidEmail, ValidationInvalidPhone,
		CustomerAlreadyExists, CustomerInvalidID:
		return http.StatusBadRequest

	// 404 Not Found - missing resource or unknown route
	case CustomerNotFound, SystemRouteNotFound:
		return http.StatusNotFound

	// 429 Too Many Requests - rate limiting
	case SystemRateLimitExceeded:
		return http.StatusTooManyRequests

	// 503 Service Unavailable - database unreachable
	case SystemServiceUnavailable:
		return http.StatusServiceUnavailable

	// 500 Internal Server Error - system errors (default)
	case SystemInternalError, SystemDatabaseError:
		return http.StatusInternalServerError

	default:
		// Unknown error codes default to 500
		return http.StatusInternalServerError
	}
}

// GetHTTPStatus returns the HTTP status code for the error response
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(er.Code)
}

// IsClientError returns true if the error is a 4xx client error
func (er *ErrorResponse) IsClientError() bool {
	status := er.GetHTTPStatus()
	return status >= 400 && status < 500
}

// IsServerError returns true if the error is a 5xx server error
func (er *ErrorResponse) IsServerError() bool {
	return er.GetHTTPStatus() >= 500
}

// String returns a string representation of the error response
func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s", er.Code, er.Message)
}
