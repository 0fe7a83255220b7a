// Package dto holds the request and response shapes of the catalog HTTP API.
package dto

import "net/http"

// ErrorResponse is the body of every non-2xx catalog response.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail describes one failure. Details maps query parameter names to
// what was wrong with them.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// Machine-readable error codes.
const (
	ErrorCodeNotFound    = "NOT_FOUND"
	ErrorCodeValidation  = "VALIDATION_ERROR"
	ErrorCodeBadRequest  = "BAD_REQUEST"
	ErrorCodeRateLimited = "RATE_LIMITED"
	ErrorCodeTimeout     = "TIMEOUT"
	ErrorCodeInternal    = "INTERNAL_ERROR"

	// ErrorCodeUnavailable: a store is unconfigured or unreachable.
	ErrorCodeUnavailable = "SERVICE_UNAVAILABLE"

	// ErrorCodeStore: the relational or graph store failed a query.
	ErrorCodeStore = "STORE_ERROR"
)

var statusByCode = map[string]int{
	ErrorCodeNotFound:    http.StatusNotFound,
	ErrorCodeValidation:  http.StatusBadRequest,
	ErrorCodeBadRequest:  http.StatusBadRequest,
	ErrorCodeRateLimited: http.StatusTooManyRequests,
	ErrorCodeTimeout:     http.StatusGatewayTimeout,
	ErrorCodeUnavailable: http.StatusServiceUnavailable,
	ErrorCodeStore:       http.StatusBadGateway,
}

// NewErrorResponse creates an envelope without details.
func NewErrorResponse(code, message string) *ErrorResponse {
	return NewErrorResponseWithDetails(code, message, nil)
}

// NewErrorResponseWithDetails creates an envelope with per-parameter details.
func NewErrorResponseWithDetails(code, message string, details map[string]string) *ErrorResponse {
	return &ErrorResponse{Error: ErrorDetail{Code: code, Message: message, Details: details}}
}

// WithTraceID sets the trace ID and returns e.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// HTTPStatusFromCode returns the status for an error code; unknown codes
// are 500.
func HTTPStatusFromCode(code string) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}

	return http.StatusInternalServerError
}
