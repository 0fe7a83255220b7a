package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/journal-catalog/internal/adapters/http/dto"
	"github.com/jsamuelsen/journal-catalog/internal/platform/logging"
)

// Timeout bounds each request by d. Store queries run under the deadline;
// a handler that returns after it without having written anything gets a
// 504 envelope. skipPaths (the MCP stream) and d <= 0 disable it.
func Timeout(d time.Duration, skipPaths ...string) gin.HandlerFunc {
	skip := newPathSet(skipPaths)

	return func(c *gin.Context) {
		if d <= 0 || skip.has(c.Request.URL.Path) {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if c.Writer.Written() || !errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return
		}

		traceID := dto.GetTraceID(c)

		logging.FromContext(ctx).Warn("request deadline exceeded",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Duration("timeout", d),
		)

		c.AbortWithStatusJSON(http.StatusGatewayTimeout,
			dto.NewErrorResponse(dto.ErrorCodeTimeout, "request timeout exceeded").WithTraceID(traceID))
	}
}
