package telemetry

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/journal-catalog/internal/platform/logging"
)

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handlers := Middleware("journal-catalog-test")
	require.Len(t, handlers, 2)

	router := gin.New()
	router.Use(handlers...)

	var sawSpan bool

	router.GET("/api/v1/areas", func(c *gin.Context) {
		sawSpan = trace.SpanFromContext(c.Request.Context()) != nil
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/areas", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, sawSpan)
}

func TestServerMetrics_NilSkipsRecording(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var m *ServerMetrics

	router := gin.New()
	router.Use(m.handle)
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Header().Get(HeaderTraceID))
}

func TestServerMetrics_Records(t *testing.T) {
	gin.SetMode(gin.TestMode)

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	m, err := NewServerMetrics(provider.Meter("test"))
	require.NoError(t, err)

	router := gin.New()
	router.Use(m.handle)
	router.GET("/api/v1/categories", func(c *gin.Context) { c.Status(http.StatusOK) })

	for range 3 {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil))
	}

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(t.Context(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	names := map[string]metricdata.Aggregation{}
	for _, sm := range rm.ScopeMetrics[0].Metrics {
		names[sm.Name] = sm.Data
	}

	require.Contains(t, names, "http.server.request.duration")
	require.Contains(t, names, "http.server.active_requests")

	total, ok := names["http.server.request.total"].(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, total.DataPoints, 1)
	assert.Equal(t, int64(3), total.DataPoints[0].Value)

	route, _ := total.DataPoints[0].Attributes.Value("http.route")
	assert.Equal(t, "/api/v1/categories", route.AsString())
}

func TestMiddleware_PropagatesTraceID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	previous := otel.GetTracerProvider()
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)

	t.Cleanup(func() {
		_ = tp.Shutdown(t.Context())
		otel.SetTracerProvider(previous)
	})

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(logging.WithContext(c.Request.Context(), logger))
		c.Next()
	})
	router.Use(Middleware("journal-catalog-test")...)
	router.GET("/api/v1/journals", func(c *gin.Context) {
		logging.FromContext(c.Request.Context()).Info("listing journals")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/journals", nil))

	traceID := w.Header().Get(HeaderTraceID)
	require.Len(t, traceID, 32)
	assert.Contains(t, buf.String(), `"trace_id":"`+traceID+`"`)
}
