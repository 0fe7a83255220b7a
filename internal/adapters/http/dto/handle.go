package dto

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/journal-catalog/internal/domain"
	"github.com/jsamuelsen/journal-catalog/internal/platform/logging"
)

// ContextKeyTraceID is the gin.Context key consulted first by GetTraceID.
const ContextKeyTraceID = "trace_id"

// Request ID sources; mirrors the request ID middleware.
const (
	contextKeyRequestID = "request_id"
	headerRequestID     = "X-Request-ID"
)

// MapDomainError maps a domain error to an HTTP status code and error response.
// Unknown errors are mapped to 500 Internal Server Error with a generic message.
//
// A store failure caused by an unreachable endpoint maps to 503 rather than 502.
func MapDomainError(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	switch {
	case domain.IsConfiguration(err):
		return http.StatusServiceUnavailable, NewErrorResponse(ErrorCodeUnavailable, err.Error())

	case domain.IsValidation(err):
		resp := NewErrorResponse(ErrorCodeValidation, err.Error())

		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			resp.Error.Details = map[string]string{
				validationErr.Field: validationErr.Message,
			}
		}

		return http.StatusBadRequest, resp

	case domain.IsNotFound(err):
		return http.StatusNotFound, NewErrorResponse(ErrorCodeNotFound, err.Error())

	case domain.IsUnavailable(err):
		return http.StatusServiceUnavailable, NewErrorResponse(
			ErrorCodeUnavailable,
			"the catalog is temporarily unavailable, retry later",
		)

	case domain.IsStore(err):
		message := "a backing store failed"

		// The cause is logged, not returned; it can carry query text.
		var storeErr *domain.StoreError
		if errors.As(err, &storeErr) {
			message = storeErr.Store + " store: " + storeErr.Operation + " failed"
		}

		return http.StatusBadGateway, NewErrorResponse(ErrorCodeStore, message)

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, NewErrorResponse(ErrorCodeTimeout, "request timed out")

	default:
		return http.StatusInternalServerError, NewErrorResponse(
			ErrorCodeInternal,
			"an internal error occurred",
		)
	}
}

// HandleError writes the error envelope for err, tagged with the request's
// trace ID. Server-side failures are logged with the full cause.
func HandleError(c *gin.Context, err error) {
	status, resp := MapDomainError(err)
	if resp == nil {
		return
	}

	resp.WithTraceID(GetTraceID(c))

	if status >= http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).Error("request failed",
			"status", status,
			"error", err.Error(),
			"trace_id", resp.TraceID,
		)
	}

	c.JSON(status, resp)
}

// RespondWithCode writes an error envelope for an adapter-level failure that
// did not come from the domain, such as an unparseable query string.
func RespondWithCode(c *gin.Context, code, message string) {
	c.JSON(HTTPStatusFromCode(code), NewErrorResponse(code, message).WithTraceID(GetTraceID(c)))
}

// GetTraceID returns the trace ID for the request. It prefers an explicit
// trace_id context value, then the active span, then the request ID.
func GetTraceID(c *gin.Context) string {
	if v, exists := c.Get(ContextKeyTraceID); exists {
		if id, ok := v.(string); ok {
			return id
		}

		return ""
	}

	if c.Request == nil {
		return ""
	}

	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		return span.SpanContext().TraceID().String()
	}

	if id := c.GetString(contextKeyRequestID); id != "" {
		return id
	}

	return c.GetHeader(headerRequestID)
}
