package clients

import (
	"errors"
	"time"

	"github.com/sony/gobreaker"
)

// State is the circuit breaker state reported by gobreaker.
type State = gobreaker.State

// Circuit breaker states.
const (
	StateClosed   = gobreaker.StateClosed
	StateHalfOpen = gobreaker.StateHalfOpen
	StateOpen     = gobreaker.StateOpen
)

// CircuitBreakerConfig configures the circuit breaker behavior.
type CircuitBreakerConfig struct {
	// Name identifies the breaker in state change notifications.
	Name string

	// MaxFailures is the number of consecutive failures before the circuit opens.
	MaxFailures int

	// Timeout is how long the circuit stays open before probing in half-open state.
	Timeout time.Duration

	// HalfOpenLimit is the number of probe requests admitted in half-open state.
	// That many consecutive successes close the circuit again.
	HalfOpenLimit int

	// OnStateChange is called on every transition. Optional.
	OnStateChange func(from, to State)
}

// CircuitBreaker guards a downstream endpoint with a two-step gobreaker.
//
// State transitions:
//   - Closed → Open: after MaxFailures consecutive failures
//   - Open → HalfOpen: after Timeout has passed
//   - HalfOpen → Closed: after HalfOpenLimit consecutive successes
//   - HalfOpen → Open: on any failure
type CircuitBreaker struct {
	cb *gobreaker.TwoStepCircuitBreaker
}

// NewCircuitBreaker creates a circuit breaker with the given configuration.
func NewCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	maxFailures := uint32(max(cfg.MaxFailures, 1)) //nolint:gosec // clamped to a small positive value
	halfOpen := uint32(max(cfg.HalfOpenLimit, 1))  //nolint:gosec // clamped to a small positive value

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: halfOpen,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
	}

	if cfg.OnStateChange != nil {
		notify := cfg.OnStateChange
		settings.OnStateChange = func(_ string, from, to gobreaker.State) {
			notify(from, to)
		}
	}

	return &CircuitBreaker{cb: gobreaker.NewTwoStepCircuitBreaker(settings)}
}

// Allow admits one request. The returned done func must be called exactly
// once with the outcome. ErrCircuitOpen is returned when the request is
// rejected, either because the circuit is open or the half-open probe budget
// is spent.
func (b *CircuitBreaker) Allow() (func(success bool), error) {
	done, err := b.cb.Allow()
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, ErrCircuitOpen
		}

		return nil, err
	}

	return done, nil
}

// State returns the current state of the circuit breaker.
func (b *CircuitBreaker) State() State {
	return b.cb.State()
}
