// Package middleware provides the Gin middleware of the catalog API.
package middleware

import "context"

type contextKey string

const (
	ctxKeyRequestID     contextKey = "request_id"
	ctxKeyCorrelationID contextKey = "correlation_id"
)

// RequestIDFromContext returns the request ID stored by the RequestID
// middleware, or "" when there is none. The graph store client forwards it
// to the SPARQL endpoint.
func RequestIDFromContext(ctx context.Context) string {
	return stringFromContext(ctx, ctxKeyRequestID)
}

// CorrelationIDFromContext returns the correlation ID stored by the
// CorrelationID middleware, or "" when there is none.
func CorrelationIDFromContext(ctx context.Context) string {
	return stringFromContext(ctx, ctxKeyCorrelationID)
}

// ContextWithRequestID returns a copy of ctx carrying the request ID.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, id)
}

// ContextWithCorrelationID returns a copy of ctx carrying the correlation ID.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyCorrelationID, id)
}

func stringFromContext(ctx context.Context, key contextKey) string {
	if ctx == nil {
		return ""
	}

	s, _ := ctx.Value(key).(string)

	return s
}
