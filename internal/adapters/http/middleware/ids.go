package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/journal-catalog/internal/platform/logging"
)

// Propagated IDs: headers read from and echoed to the client, and the
// gin.Context keys they are stored under.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"

	ContextKeyRequestID     = "request_id"
	ContextKeyCorrelationID = "correlation_id"
)

// maxIDLength bounds client-supplied IDs; longer values are replaced.
const maxIDLength = 128

// idTag is one ID the API accepts from clients or generates.
type idTag struct {
	header string
	key    string
	bind   func(ctx context.Context, id string) context.Context
}

var (
	requestIDTag = idTag{
		header: HeaderRequestID,
		key:    ContextKeyRequestID,
		bind: func(ctx context.Context, id string) context.Context {
			return logging.WithRequestID(ContextWithRequestID(ctx, id), id)
		},
	}

	correlationIDTag = idTag{
		header: HeaderCorrelationID,
		key:    ContextKeyCorrelationID,
		bind: func(ctx context.Context, id string) context.Context {
			return logging.WithCorrelationID(ContextWithCorrelationID(ctx, id), id)
		},
	}
)

// RequestID identifies each request. A usable X-Request-ID from the client
// is kept, otherwise a UUID is generated. The ID is echoed in the response,
// stored on the gin and request contexts and added to the context logger.
func RequestID() gin.HandlerFunc {
	return requestIDTag.middleware()
}

// CorrelationID does the same for X-Correlation-ID, which a client sets to
// tie several requests together. The graph store forwards both IDs to the
// SPARQL endpoint.
func CorrelationID() gin.HandlerFunc {
	return correlationIDTag.middleware()
}

// GetRequestID returns the request ID, or "" outside the middleware.
func GetRequestID(c *gin.Context) string {
	return c.GetString(ContextKeyRequestID)
}

// GetCorrelationID returns the correlation ID, or "" outside the middleware.
func GetCorrelationID(c *gin.Context) string {
	return c.GetString(ContextKeyCorrelationID)
}

func (t idTag) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(t.header)
		if !validID(id) {
			id = uuid.NewString()
		}

		c.Set(t.key, id)
		c.Header(t.header, id)
		c.Request = c.Request.WithContext(t.bind(c.Request.Context(), id))

		c.Next()
	}
}

// validID accepts non-empty printable ASCII up to maxIDLength, so a
// client-supplied value cannot forge log lines.
func validID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}

	for i := range len(id) {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}

	return true
}
