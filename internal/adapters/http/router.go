package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/journal-catalog/internal/adapters/http/handlers"
	"github.com/jsamuelsen/journal-catalog/internal/adapters/http/middleware"
	"github.com/jsamuelsen/journal-catalog/internal/platform/config"
	"github.com/jsamuelsen/journal-catalog/internal/platform/telemetry"
)

// DefaultRequestTimeout bounds /api/v1 requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig is what SetupRouter mounts. Nil handlers are skipped.
type RouterConfig struct {
	Logger      *slog.Logger
	ServiceName string

	HealthHandler  *handlers.HealthHandler
	CatalogHandler *handlers.CatalogHandler

	// MCPHandler is mounted at MCPPath for every method.
	MCPHandler http.Handler
	MCPPath    string

	// RateLimit throttles /api/v1 and MCP per client IP when set.
	RateLimit *middleware.RateLimitConfig

	// Timeout is the /api/v1 deadline; zero disables it.
	Timeout time.Duration
}

// NewRouterConfig derives the router settings from cfg.
func NewRouterConfig(
	cfg *config.Config,
	logger *slog.Logger,
	health *handlers.HealthHandler,
	catalog *handlers.CatalogHandler,
	mcp http.Handler,
) RouterConfig {
	rc := RouterConfig{
		Logger:         logger,
		ServiceName:    cfg.App.Name,
		HealthHandler:  health,
		CatalogHandler: catalog,
		Timeout:        DefaultRequestTimeout,
	}

	if cfg.MCP.Enabled && mcp != nil {
		rc.MCPHandler, rc.MCPPath = mcp, cfg.MCP.Path
	}

	if rl := cfg.RateLimit; rl.Enabled {
		rc.RateLimit = &middleware.RateLimitConfig{RequestsPerSecond: rl.RequestsPerSecond, Burst: rl.Burst}
	}

	return rc
}

// SetupRouter mounts the middleware chain and the routes on engine.
//
// Every request passes recovery, the request and correlation IDs, the otel
// span and metrics, and the access log, in that order. The /-/ probes are
// then served as is. /api/v1 adds the rate limit and the request deadline.
// The MCP endpoint is rate limited but has no deadline, since its event
// stream stays open.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.HandleMethodNotAllowed = true
	engine.NoRoute(noRoute)
	engine.NoMethod(noMethod)

	engine.Use(middleware.Recovery(cfg.Logger), middleware.RequestID(), middleware.CorrelationID())
	engine.Use(telemetry.Middleware(cfg.ServiceName)...)
	engine.Use(middleware.Logging(cfg.Logger))

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterRoutes(engine)
	}

	var throttle []gin.HandlerFunc
	if cfg.RateLimit != nil {
		throttle = []gin.HandlerFunc{middleware.RateLimit(*cfg.RateLimit)}
	}

	if cfg.CatalogHandler != nil {
		api := engine.Group("/api/v1", throttle...)
		if cfg.Timeout > 0 {
			api.Use(middleware.Timeout(cfg.Timeout))
		}

		cfg.CatalogHandler.RegisterCatalogRoutes(api)
	}

	if cfg.MCPHandler != nil && cfg.MCPPath != "" {
		engine.Group(cfg.MCPPath, throttle...).Any("", gin.WrapH(cfg.MCPHandler))
	}
}
