package telemetry

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/journal-catalog/internal/platform/logging"
)

const instrumentationName = "github.com/jsamuelsen/journal-catalog/internal/platform/telemetry"

// HeaderTraceID returns the request's trace ID to the client.
const HeaderTraceID = "X-Trace-ID"

// ServerMetrics are the OpenTelemetry instruments of the HTTP server.
type ServerMetrics struct {
	duration metric.Float64Histogram
	requests metric.Int64Counter
	inFlight metric.Int64UpDownCounter
}

// NewServerMetrics creates the instruments on meter.
func NewServerMetrics(meter metric.Meter) (*ServerMetrics, error) {
	var (
		m   ServerMetrics
		err error
	)

	if m.duration, err = meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Duration of catalog API requests"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}

	if m.requests, err = meter.Int64Counter("http.server.request.total",
		metric.WithDescription("Catalog API requests by route and status"),
	); err != nil {
		return nil, err
	}

	if m.inFlight, err = meter.Int64UpDownCounter("http.server.active_requests",
		metric.WithDescription("Catalog API requests being served"),
	); err != nil {
		return nil, err
	}

	return &m, nil
}

// Middleware returns the otelgin span handler followed by a handler that
// records server metrics and tags the response and the context logger with
// the trace ID. Metrics are skipped when the global meter fails to create
// them.
func Middleware(serviceName string) []gin.HandlerFunc {
	m, err := NewServerMetrics(otel.Meter(instrumentationName))
	if err != nil {
		otel.Handle(err)
	}

	return []gin.HandlerFunc{otelgin.Middleware(serviceName), m.handle}
}

func (m *ServerMetrics) handle(c *gin.Context) {
	if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
		id := sc.TraceID().String()
		c.Header(HeaderTraceID, id)
		c.Request = c.Request.WithContext(logging.WithTraceID(c.Request.Context(), id))
	}

	if m == nil {
		c.Next()
		return
	}

	ctx := c.Request.Context()
	start := time.Now()
	base := []attribute.KeyValue{
		attribute.String("http.request.method", c.Request.Method),
		attribute.String("http.route", c.FullPath()),
	}

	m.inFlight.Add(ctx, 1, metric.WithAttributes(base...))
	defer m.inFlight.Add(ctx, -1, metric.WithAttributes(base...))

	c.Next()

	done := metric.WithAttributes(append(base, attribute.Int("http.response.status_code", c.Writer.Status()))...)
	m.duration.Record(ctx, time.Since(start).Seconds(), done)
	m.requests.Add(ctx, 1, done)
}
