package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/journal-catalog/internal/platform/logging"
)

// pathSet holds request paths a middleware leaves alone.
type pathSet map[string]struct{}

func newPathSet(paths []string) pathSet {
	set := make(pathSet, len(paths))
	for _, p := range paths {
		set[p] = struct{}{}
	}

	return set
}

func (s pathSet) has(path string) bool {
	_, ok := s[path]
	return ok
}

// Logging logs one line per completed request, at ERROR for 5xx, WARN for
// 4xx and INFO otherwise. Probe paths under /-/ and skipPaths are not logged.
//
// The logger RequestID put on the request context is used when present, so
// each line carries request_id and correlation_id.
func Logging(logger *slog.Logger, skipPaths ...string) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}

	skip := newPathSet(skipPaths)

	return func(c *gin.Context) {
		if p := c.Request.URL.Path; skip.has(p) || strings.HasPrefix(p, "/-/") {
			c.Next()
			return
		}

		start := time.Now()
		target := c.Request.URL.RequestURI()
		log := requestLogger(c, logger)

		log.Debug("request started",
			slog.String("method", c.Request.Method),
			slog.String("path", target),
			slog.String("client_ip", c.ClientIP()),
			slog.String("user_agent", c.Request.UserAgent()),
		)

		c.Next()

		elapsed := time.Since(start)
		status := c.Writer.Status()

		log.Log(c.Request.Context(), levelForStatus(status), "request completed",
			slog.String("method", c.Request.Method),
			slog.String("path", target),
			slog.String("route", c.FullPath()),
			slog.Int("status", status),
			slog.Duration("latency", elapsed),
			slog.Int("bytes", c.Writer.Size()),
		)
	}
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// requestLogger prefers the context logger over fallback.
func requestLogger(c *gin.Context, fallback *slog.Logger) *slog.Logger {
	if l, ok := logging.Lookup(c.Request.Context()); ok {
		return l
	}

	return fallback
}
