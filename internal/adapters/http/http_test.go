package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/journal-catalog/internal/adapters/http/dto"
	"github.com/jsamuelsen/journal-catalog/internal/adapters/http/handlers"
	"github.com/jsamuelsen/journal-catalog/internal/adapters/http/middleware"
	"github.com/jsamuelsen/journal-catalog/internal/app"
	"github.com/jsamuelsen/journal-catalog/internal/mocks"
	"github.com/jsamuelsen/journal-catalog/internal/platform/config"
	"github.com/jsamuelsen/journal-catalog/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestRouter wires a router over a catalog with one mocked relational source.
func newTestRouter(t *testing.T, cfg RouterConfig, setup func(*mocks.MockRelationalAssignmentSource)) *gin.Engine {
	t.Helper()

	source := mocks.NewMockRelationalAssignmentSource(t)
	if setup != nil {
		setup(source)
	}

	catalog := app.NewCatalog(app.CatalogConfig{Logger: discardLogger()})
	catalog.AddCategorySource(source)

	cfg.Logger = discardLogger()
	cfg.ServiceName = "journal-catalog-test"
	cfg.CatalogHandler = handlers.NewCatalogHandler(catalog)

	engine := gin.New()
	SetupRouter(engine, cfg)

	return engine
}

func get(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, path, nil))

	return w
}

func TestSetupRouter(t *testing.T) {
	registry := mocks.NewMockHealthRegistry(t)
	registry.EXPECT().CheckAll(mock.Anything).Return(&ports.HealthResult{
		Status: ports.HealthStatusHealthy,
		Checks: map[string]*ports.CheckResult{},
	}).Maybe()

	engine := newTestRouter(t, RouterConfig{
		HealthHandler: handlers.NewHealthHandler(registry, handlers.BuildInfo{}),
		Timeout:       time.Second,
	}, func(m *mocks.MockRelationalAssignmentSource) {
		m.EXPECT().GetAllAreas(mock.Anything).Return([]ports.AreaRow{{Name: "Medicine"}}, nil)
	})

	t.Run("catalog route", func(t *testing.T) {
		w := get(engine, http.MethodGet, "/api/v1/areas")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Medicine")
		assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
		assert.NotEmpty(t, w.Header().Get(middleware.HeaderCorrelationID))
	})

	t.Run("health route", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, get(engine, http.MethodGet, "/-/live").Code)
		assert.Equal(t, http.StatusOK, get(engine, http.MethodGet, "/-/ready").Code)
	})

	t.Run("unknown route gets envelope", func(t *testing.T) {
		w := get(engine, http.MethodGet, "/api/v1/publishers")

		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrorCodeNotFound, resp.Error.Code)
		assert.NotEmpty(t, resp.TraceID)
	})

	t.Run("wrong method gets envelope", func(t *testing.T) {
		w := get(engine, http.MethodDelete, "/api/v1/areas")

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.Contains(t, w.Body.String(), dto.ErrorCodeBadRequest)
	})
}

func TestSetupRouterWithNilHandlers(t *testing.T) {
	engine := gin.New()

	require.NotPanics(t, func() {
		SetupRouter(engine, RouterConfig{Logger: discardLogger()})
	})

	assert.Equal(t, http.StatusNotFound, get(engine, http.MethodGet, "/-/live").Code)
}

func TestSetupRouter_MCP(t *testing.T) {
	var methods []string

	engine := newTestRouter(t, RouterConfig{
		MCPPath: "/mcp",
		MCPHandler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			methods = append(methods, r.Method)
			w.WriteHeader(http.StatusAccepted)
		}),
	}, nil)

	assert.Equal(t, http.StatusAccepted, get(engine, http.MethodPost, "/mcp").Code)
	assert.Equal(t, http.StatusAccepted, get(engine, http.MethodGet, "/mcp").Code)
	assert.Equal(t, http.StatusAccepted, get(engine, http.MethodDelete, "/mcp").Code)
	assert.Equal(t, []string{http.MethodPost, http.MethodGet, http.MethodDelete}, methods)
}

func TestSetupRouter_RateLimit(t *testing.T) {
	engine := newTestRouter(t, RouterConfig{
		HealthHandler: handlers.NewHealthHandler(nil, handlers.BuildInfo{}),
		RateLimit:     &middleware.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1},
	}, func(m *mocks.MockRelationalAssignmentSource) {
		m.EXPECT().GetAllAreas(mock.Anything).Return([]ports.AreaRow{}, nil).Once()
	})

	assert.Equal(t, http.StatusOK, get(engine, http.MethodGet, "/api/v1/areas").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(engine, http.MethodGet, "/api/v1/areas").Code)
	assert.Equal(t, http.StatusOK, get(engine, http.MethodGet, "/-/live").Code)
}

func TestNewRouterConfig(t *testing.T) {
	mcpHandler := http.NotFoundHandler()

	tests := []struct {
		name          string
		cfg           config.Config
		wantMCP       bool
		wantRateLimit bool
	}{
		{
			name: "everything disabled",
			cfg:  config.Config{App: config.AppConfig{Name: "journal-catalog"}},
		},
		{
			name: "mcp and rate limit enabled",
			cfg: config.Config{
				App:       config.AppConfig{Name: "journal-catalog"},
				MCP:       config.MCPConfig{Enabled: true, Path: "/mcp"},
				RateLimit: config.RateLimitConfig{Enabled: true, RequestsPerSecond: 20, Burst: 40},
			},
			wantMCP:       true,
			wantRateLimit: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := NewRouterConfig(&tt.cfg, discardLogger(), nil, nil, mcpHandler)

			assert.Equal(t, "journal-catalog", rc.ServiceName)
			assert.Equal(t, DefaultRequestTimeout, rc.Timeout)

			if tt.wantMCP {
				assert.Equal(t, "/mcp", rc.MCPPath)
				assert.NotNil(t, rc.MCPHandler)
			} else {
				assert.Nil(t, rc.MCPHandler)
			}

			if tt.wantRateLimit {
				require.NotNil(t, rc.RateLimit)
				assert.InDelta(t, 20.0, rc.RateLimit.RequestsPerSecond, 0.001)
				assert.Equal(t, 40, rc.RateLimit.Burst)
			} else {
				assert.Nil(t, rc.RateLimit)
			}
		})
	}
}

func serverConfig(maxBody int64) *config.ServerConfig {
	return &config.ServerConfig{
		Host:           "127.0.0.1",
		Port:           0,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   5 * time.Second,
		IdleTimeout:    30 * time.Second,
		MaxRequestSize: maxBody,
	}
}

func TestServer_Addr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{host: "localhost", port: 8080, want: "localhost:8080"},
		{host: "0.0.0.0", port: 3000, want: "0.0.0.0:3000"},
		{host: "::1", port: 8080, want: "[::1]:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			srv := New(&config.ServerConfig{Host: tt.host, Port: tt.port}, discardLogger())
			assert.Equal(t, tt.want, srv.Addr())
		})
	}
}

func TestServer_StartShutdown(t *testing.T) {
	srv := New(serverConfig(1<<20), discardLogger())
	srv.Engine().GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	errCh, err := srv.Start()
	require.NoError(t, err)
	assert.NotEqual(t, "127.0.0.1:0", srv.Addr(), "bound port reported")

	resp, err := http.Get("http://" + srv.Addr() + "/ping")
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "pong", string(body))

	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer cancel()

	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err, ok := <-errCh:
		assert.False(t, ok, "channel closed without error, got %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_StartBindError(t *testing.T) {
	first := New(serverConfig(0), discardLogger())
	_, err := first.Start()
	require.NoError(t, err)

	t.Cleanup(func() { _ = first.Shutdown(context.Background()) })

	cfg := serverConfig(0)
	_, port, err := net.SplitHostPort(first.Addr())
	require.NoError(t, err)
	cfg.Port, err = strconv.Atoi(port)
	require.NoError(t, err)

	_, err = New(cfg, discardLogger()).Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listening on")
}

func TestServer_LimitsBody(t *testing.T) {
	srv := New(serverConfig(16), discardLogger())
	srv.Engine().POST("/echo", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}

		c.String(http.StatusOK, "%d", len(body))
	})

	post := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		srv.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body)))

		return w
	}

	assert.Equal(t, "4", post("ISSN").Body.String())
	assert.Equal(t, http.StatusRequestEntityTooLarge, post(strings.Repeat("x", 17)).Code)
}
