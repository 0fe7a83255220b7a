package clients

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen/journal-catalog/internal/platform/config"
)

const defaultJitterFactor = 0.25

// retryPolicy decides whether and when an attempt is repeated.
type retryPolicy struct {
	attempts   int
	initial    time.Duration
	max        time.Duration
	multiplier float64
	jitter     float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	p := retryPolicy{
		attempts:   max(cfg.MaxAttempts, 1),
		initial:    cfg.InitialInterval,
		max:        cfg.MaxInterval,
		multiplier: cfg.Multiplier,
		jitter:     cfg.JitterFactor,
	}

	if p.multiplier < 1 {
		p.multiplier = 1
	}

	if p.jitter <= 0 {
		p.jitter = defaultJitterFactor
	}

	if p.max < p.initial {
		p.max = p.initial
	}

	return p
}

// retryableStatus reports statuses an endpoint returns while overloaded or
// restarting. Some engines report transient faults as a plain 500.
func (p retryPolicy) retryableStatus(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// retryableError reports network failures worth another attempt. A done
// context is never retried.
func (p retryPolicy) retryableError(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var opErr *net.OpError

	return errors.As(err, &opErr)
}

// backoff returns the jittered exponential delay after attempt.
func (p retryPolicy) backoff(attempt int) time.Duration {
	d := float64(p.initial) * math.Pow(p.multiplier, float64(attempt))
	d = math.Min(d, float64(p.max))

	spread := rand.Float64()*2 - 1 //nolint:gosec // jitter only
	d += d * p.jitter * spread

	return time.Duration(d)
}

// delay prefers a Retry-After of whole seconds from resp, capped at the
// maximum interval, over the computed backoff.
func (p retryPolicy) delay(attempt int, resp *http.Response) time.Duration {
	if resp != nil {
		if secs, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil && secs >= 0 {
			return min(time.Duration(secs)*time.Second, p.max)
		}
	}

	return p.backoff(attempt)
}

// wait sleeps until the next attempt or until ctx is done.
func (p retryPolicy) wait(ctx context.Context, attempt int, resp *http.Response) error {
	timer := time.NewTimer(p.delay(attempt, resp))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
