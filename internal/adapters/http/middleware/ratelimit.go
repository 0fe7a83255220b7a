package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen/journal-catalog/internal/adapters/http/dto"
	"github.com/jsamuelsen/journal-catalog/internal/platform/logging"
)

// defaultClientTTL is how long an idle client's bucket is kept.
const defaultClientTTL = 10 * time.Minute

// RateLimitConfig configures per-client rate limiting.
type RateLimitConfig struct {
	// RequestsPerSecond is the steady refill rate of each client's bucket.
	RequestsPerSecond float64

	// Burst is the bucket size.
	Burst int

	// ClientTTL drops buckets of clients idle for longer. Zero means 10 minutes.
	ClientTTL time.Duration

	// SkipPaths are never limited.
	SkipPaths []string
}

type rateLimitClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiter holds one token bucket per client IP.
type rateLimiter struct {
	cfg RateLimitConfig
	now func() time.Time

	mu        sync.Mutex
	clients   map[string]*rateLimitClient
	lastSweep time.Time
}

// RateLimit returns middleware that limits requests per client IP using a
// token bucket. Rejected requests get 429 with a Retry-After header.
// Health endpoints under /-/ are never limited.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	return newRateLimiter(cfg, time.Now).handle
}

func newRateLimiter(cfg RateLimitConfig, now func() time.Time) *rateLimiter {
	if cfg.ClientTTL <= 0 {
		cfg.ClientTTL = defaultClientTTL
	}

	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}

	return &rateLimiter{
		cfg:       cfg,
		now:       now,
		clients:   make(map[string]*rateLimitClient),
		lastSweep: now(),
	}
}

func (l *rateLimiter) handle(c *gin.Context) {
	path := c.Request.URL.Path
	if strings.HasPrefix(path, "/-/") || slices.Contains(l.cfg.SkipPaths, path) {
		c.Next()
		return
	}

	wait := l.reserve(c.ClientIP())
	if wait == nil {
		c.Next()
		return
	}

	logging.FromContext(c.Request.Context()).Warn("rate limit exceeded",
		slog.String("client_ip", c.ClientIP()),
		slog.String("path", path),
	)

	c.Header("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
	c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(
		dto.ErrorCodeRateLimited,
		"rate limit exceeded",
	).WithTraceID(dto.GetTraceID(c)))
}

// reserve takes a token for ip. It returns nil when the request may proceed,
// or the wait until the next token otherwise.
func (l *rateLimiter) reserve(ip string) *time.Duration {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > l.cfg.ClientTTL {
		for key, client := range l.clients {
			if now.Sub(client.lastSeen) > l.cfg.ClientTTL {
				delete(l.clients, key)
			}
		}

		l.lastSweep = now
	}

	client, ok := l.clients[ip]
	if !ok {
		client = &rateLimitClient{
			limiter: rate.NewLimiter(rate.Limit(l.cfg.RequestsPerSecond), l.cfg.Burst),
		}
		l.clients[ip] = client
	}

	client.lastSeen = now

	if client.limiter.AllowN(now, 1) {
		return nil
	}

	wait := time.Second
	if l.cfg.RequestsPerSecond > 0 {
		wait = time.Duration(float64(time.Second) / l.cfg.RequestsPerSecond)
	}

	return &wait
}
