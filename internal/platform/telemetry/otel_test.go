package telemetry

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

func TestNew_Disabled(t *testing.T) {
	previous := otel.GetTextMapPropagator()
	t.Cleanup(func() { otel.SetTextMapPropagator(previous) })

	p, err := New(t.Context(), Config{Enabled: false})
	require.NoError(t, err)
	require.NoError(t, p.Shutdown(t.Context()))

	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })

	ctx, span := tp.Tracer("test").Start(t.Context(), "query")
	defer span.End()

	header := http.Header{}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(header))

	assert.Contains(t, header.Get("traceparent"), trace.SpanContextFromContext(ctx).TraceID().String(),
		"trace context propagates with export off")
}
