package clients

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/journal-catalog/internal/adapters/http/middleware"
	"github.com/jsamuelsen/journal-catalog/internal/platform/config"
	"github.com/jsamuelsen/journal-catalog/internal/platform/logging"
)

const instrumentationName = "github.com/jsamuelsen/journal-catalog/internal/adapters/clients"

// Fallbacks for a zero Config.
const (
	defaultTimeout             = 30 * time.Second
	defaultMaxIdleConns        = 100
	defaultMaxIdleConnsPerHost = 10
	defaultIdleConnTimeout     = 90 * time.Second
)

// Config configures a Client.
type Config struct {
	// BaseURL is the endpoint, e.g. http://localhost:9999/blazegraph/sparql.
	BaseURL string

	// ServiceName names the endpoint in logs, spans and metrics.
	ServiceName string

	// Timeout bounds one attempt. Retries and backoff come on top.
	Timeout time.Duration

	Retry     config.RetryConfig
	Circuit   config.CircuitBreakerConfig
	Transport config.TransportConfig

	// Headers are set on every request.
	Headers http.Header

	Logger *slog.Logger
}

// Client sends requests to one HTTP endpoint with retries, a circuit
// breaker, tracing and metrics. Request and correlation IDs found in the
// context are forwarded.
type Client struct {
	http     *http.Client
	baseURL  string
	name     string
	headers  http.Header
	retry    retryPolicy
	breaker  *CircuitBreaker
	logger   *slog.Logger
	tracer   trace.Tracer
	measures *measures
}

// New creates a Client for cfg.BaseURL.
func New(cfg Config) (*Client, error) {
	if cfg.ServiceName == "" {
		return nil, errors.New("service name is required")
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(slog.String("component", "clients"), slog.String("downstream", cfg.ServiceName))

	m, err := newMeasures(otel.Meter(instrumentationName))
	if err != nil {
		return nil, err
	}

	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout, Transport: newTransport(cfg.Transport)},
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		name:    cfg.ServiceName,
		headers: cfg.Headers.Clone(),
		retry:   newRetryPolicy(cfg.Retry),
		breaker: NewCircuitBreaker(CircuitBreakerConfig{
			Name:          cfg.ServiceName,
			MaxFailures:   cfg.Circuit.MaxFailures,
			Timeout:       cfg.Circuit.Timeout,
			HalfOpenLimit: cfg.Circuit.HalfOpenLimit,
			OnStateChange: func(from, to State) {
				logger.Warn("circuit breaker state changed",
					slog.String("from", from.String()),
					slog.String("to", to.String()),
				)
			},
		}),
		logger:   logger,
		tracer:   otel.Tracer(instrumentationName),
		measures: m,
	}, nil
}

// BaseURL returns the endpoint requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CircuitState returns the breaker state.
func (c *Client) CircuitState() State {
	return c.breaker.State()
}

// Get sends a GET to path below the base URL.
func (c *Client) Get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	return c.Do(ctx, req)
}

// PostForm sends values form-encoded to path below the base URL. SPARQL
// queries and updates both travel this way.
func (c *Client) PostForm(ctx context.Context, path string, values url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path), strings.NewReader(values.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.Do(ctx, req)
}

// Do sends req, retrying transport errors and retryable statuses.
//
// When retries run out on a retryable status the last response is returned
// without an error, so the caller can report the endpoint's message; the
// breaker still counts it as a failure. Exhausted transport errors wrap
// ErrMaxRetriesExceeded. A body is resent only if req.GetBody is set.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	logger := logging.FromContext(ctx).With(
		slog.String("downstream", c.name),
		slog.String("method", req.Method),
	)

	done, err := c.breaker.Allow()
	if err != nil {
		c.measures.record(ctx, c.name, req.Method, 0, time.Since(start), "circuit_open")
		logger.Warn("request blocked by circuit breaker")

		return nil, err
	}

	c.setHeaders(ctx, req)

	ctx, span := c.tracer.Start(ctx, "HTTP "+req.Method+" "+c.name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("server.address", req.URL.Host),
			attribute.String("peer.service", c.name),
		),
	)
	defer span.End()

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.send(ctx, req, logger)
	elapsed := time.Since(start)

	if err != nil {
		done(false)
		span.SetStatus(codes.Error, err.Error())
		c.measures.record(ctx, c.name, req.Method, 0, elapsed, "error")
		logger.Error("request failed", slog.Duration("duration", elapsed), slog.Any("error", err))

		return nil, err
	}

	done(!c.retry.retryableStatus(resp.StatusCode))

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode >= http.StatusBadRequest {
		span.SetStatus(codes.Error, "HTTP "+resp.Status)
	}

	c.measures.record(ctx, c.name, req.Method, resp.StatusCode, elapsed, statusClass(resp.StatusCode))
	logger.Debug("request completed", slog.Int("status", resp.StatusCode), slog.Duration("duration", elapsed))

	return resp, nil
}

// send runs the attempts of one request.
func (c *Client) send(ctx context.Context, req *http.Request, logger *slog.Logger) (*http.Response, error) {
	var lastErr error

	for attempt := range c.retry.attempts {
		if attempt > 0 {
			if err := rewindBody(req); err != nil {
				return nil, err
			}
		}

		resp, err := c.http.Do(req.WithContext(ctx))
		last := attempt == c.retry.attempts-1

		switch {
		case err != nil && !c.retry.retryableError(err):
			return nil, err
		case err != nil:
			lastErr = err
			logger.Debug("attempt failed", slog.Int("attempt", attempt+1), slog.Any("error", err))

			if last {
				break
			}

			if werr := c.retry.wait(ctx, attempt, nil); werr != nil {
				return nil, werr
			}
		case !c.retry.retryableStatus(resp.StatusCode) || last:
			return resp, nil
		default:
			logger.Debug("attempt got retryable status", slog.Int("attempt", attempt+1), slog.Int("status", resp.StatusCode))

			werr := c.retry.wait(ctx, attempt, resp)
			drain(resp, logger)

			if werr != nil {
				return nil, werr
			}
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrMaxRetriesExceeded, lastErr)
}

func (c *Client) setHeaders(ctx context.Context, req *http.Request) {
	for key, values := range c.headers {
		req.Header[key] = values
	}

	if id := middleware.RequestIDFromContext(ctx); id != "" {
		req.Header.Set(middleware.HeaderRequestID, id)
	}

	if id := middleware.CorrelationIDFromContext(ctx); id != "" {
		req.Header.Set(middleware.HeaderCorrelationID, id)
	}
}

// url joins path to the base URL; an empty path is the base URL itself.
func (c *Client) url(path string) string {
	if path == "" {
		return c.baseURL
	}

	return c.baseURL + "/" + strings.TrimPrefix(path, "/")
}

func rewindBody(req *http.Request) error {
	if req.Body == nil || req.Body == http.NoBody {
		return nil
	}

	if req.GetBody == nil {
		return errors.New("request body cannot be rewound for retry")
	}

	body, err := req.GetBody()
	if err != nil {
		return fmt.Errorf("rewinding request body: %w", err)
	}

	req.Body = body

	return nil
}

func drain(resp *http.Response, logger *slog.Logger) {
	if err := resp.Body.Close(); err != nil {
		logger.Debug("closing response body", slog.Any("error", err))
	}
}

func newTransport(cfg config.TransportConfig) *http.Transport {
	orDefault := func(v, fallback int) int {
		if v <= 0 {
			return fallback
		}

		return v
	}

	idle := cfg.IdleConnTimeout
	if idle <= 0 {
		idle = defaultIdleConnTimeout
	}

	return &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        orDefault(cfg.MaxIdleConns, defaultMaxIdleConns),
		MaxIdleConnsPerHost: orDefault(cfg.MaxIdleConnsPerHost, defaultMaxIdleConnsPerHost),
		IdleConnTimeout:     idle,
	}
}

func statusClass(status int) string {
	return fmt.Sprintf("%dxx", status/100)
}
