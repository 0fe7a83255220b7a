// Package handlers holds the Gin handlers of the catalog API and its probes.
package handlers

import (
	"net/http"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jsamuelsen/journal-catalog/internal/ports"
)

// BuildInfo is served at /-/build. Binaries set it through ldflags.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
}

// NewBuildInfo fills in the Go version. A commit left at "" or "unknown"
// is taken from the VCS stamp of the binary when there is one.
func NewBuildInfo(version, commit, buildTime string) BuildInfo {
	if commit == "" || commit == "unknown" {
		if rev := vcsRevision(); rev != "" {
			commit = rev
		}
	}

	return BuildInfo{Version: version, Commit: commit, BuildTime: buildTime, GoVersion: runtime.Version()}
}

func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}

	return ""
}

// HealthHandler serves the probes and metrics under /-/. They are never
// rate limited.
type HealthHandler struct {
	registry ports.HealthRegistry
	build    BuildInfo
	gatherer prometheus.Gatherer
}

type HealthOption func(*HealthHandler)

// WithGatherer serves /-/metrics from g instead of the default registry.
func WithGatherer(g prometheus.Gatherer) HealthOption {
	return func(h *HealthHandler) {
		if g != nil {
			h.gatherer = g
		}
	}
}

// NewHealthHandler creates the handler. A nil registry has no checks, so
// the service reports ready.
func NewHealthHandler(registry ports.HealthRegistry, build BuildInfo, opts ...HealthOption) *HealthHandler {
	h := &HealthHandler{registry: registry, build: build, gatherer: prometheus.DefaultGatherer}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// RegisterRoutes mounts live, ready, build and metrics below /-/.
func (h *HealthHandler) RegisterRoutes(engine *gin.Engine) {
	probes := engine.Group("/-")
	probes.GET("/live", h.Liveness)
	probes.GET("/ready", h.Readiness)
	probes.GET("/build", h.Build)
	probes.GET("/metrics", gin.WrapH(MetricsHandler(h.gatherer)))
}

type livenessResponse struct {
	Status string `json:"status"`
}

// Liveness answers while the process runs. No store is contacted.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, livenessResponse{Status: "ok"})
}

// Readiness checks every registered store and answers 503 when one fails.
func (h *HealthHandler) Readiness(c *gin.Context) {
	res := &ports.HealthResult{Status: ports.HealthStatusHealthy, Timestamp: time.Now().UTC()}
	if h.registry != nil {
		res = h.registry.CheckAll(c.Request.Context())
	}

	code := http.StatusOK
	if res.Status != ports.HealthStatusHealthy {
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, res)
}

func (h *HealthHandler) Build(c *gin.Context) {
	c.JSON(http.StatusOK, h.build)
}

// MetricsHandler exposes g in the Prometheus text format; nil means the
// default gatherer.
func MetricsHandler(g prometheus.Gatherer) http.Handler {
	if g == nil {
		g = prometheus.DefaultGatherer
	}

	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
