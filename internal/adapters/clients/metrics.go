package clients

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// measures are the OpenTelemetry instruments shared by every request.
type measures struct {
	duration metric.Float64Histogram
	total    metric.Int64Counter
}

func newMeasures(meter metric.Meter) (*measures, error) {
	duration, err := meter.Float64Histogram("http.client.request.duration",
		metric.WithDescription("Duration of requests to a backing store endpoint, retries included"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}

	total, err := meter.Int64Counter("http.client.request.total",
		metric.WithDescription("Requests to a backing store endpoint by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request counter: %w", err)
	}

	return &measures{duration: duration, total: total}, nil
}

// record adds one request. status is 0 when no response was received.
func (m *measures) record(ctx context.Context, service, method string, status int, elapsed time.Duration, result string) {
	attrs := []attribute.KeyValue{
		attribute.String("http.request.method", method),
		attribute.String("peer.service", service),
		attribute.String("result", result),
	}

	if status > 0 {
		attrs = append(attrs, attribute.Int("http.response.status_code", status))
	}

	set := metric.WithAttributes(attrs...)
	m.duration.Record(ctx, elapsed.Seconds(), set)
	m.total.Add(ctx, 1, set)
}
