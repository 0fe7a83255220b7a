package ports

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"
)

// ErrDuplicateChecker is returned when a checker name is registered twice.
var ErrDuplicateChecker = errors.New("duplicate health checker")

// HealthChecker probes one backing store. The relational and graph stores
// both implement it.
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}

// HealthRegistry backs the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker) error
	CheckAll(ctx context.Context) *HealthResult
}

type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResult is healthy only when every check passed.
type HealthResult struct {
	Status    HealthStatus            `json:"status"`
	Checks    map[string]*CheckResult `json:"checks"`
	Timestamp time.Time               `json:"timestamp"`
}

// CheckResult is one store's outcome. Message holds the failure.
type CheckResult struct {
	Status   HealthStatus  `json:"status"`
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"duration"`
}

// DefaultHealthRegistry runs its checks concurrently on every CheckAll.
type DefaultHealthRegistry struct {
	mu       sync.RWMutex
	checkers map[string]HealthChecker
	timeout  time.Duration
}

type HealthRegistryOption func(*DefaultHealthRegistry)

// WithCheckTimeout bounds each check by d. Zero leaves only the caller's deadline.
func WithCheckTimeout(d time.Duration) HealthRegistryOption {
	return func(r *DefaultHealthRegistry) {
		r.timeout = d
	}
}

func NewHealthRegistry(opts ...HealthRegistryOption) *DefaultHealthRegistry {
	r := &DefaultHealthRegistry{checkers: map[string]HealthChecker{}}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register adds checker under its name.
func (r *DefaultHealthRegistry) Register(checker HealthChecker) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := checker.Name()
	if _, ok := r.checkers[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateChecker, name)
	}

	r.checkers[name] = checker

	return nil
}

// Names lists the registered checkers in order.
func (r *DefaultHealthRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.checkers))
	for name := range r.checkers {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// CheckAll runs every check and waits for all of them. An empty registry
// is healthy.
func (r *DefaultHealthRegistry) CheckAll(ctx context.Context) *HealthResult {
	r.mu.RLock()
	checkers := make(map[string]HealthChecker, len(r.checkers))
	for name, c := range r.checkers {
		checkers[name] = c
	}
	r.mu.RUnlock()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results = make(map[string]*CheckResult, len(checkers))
	)

	for name, checker := range checkers {
		wg.Go(func() {
			res := r.check(ctx, checker)

			mu.Lock()
			results[name] = res
			mu.Unlock()
		})
	}

	wg.Wait()

	status := HealthStatusHealthy
	for _, res := range results {
		if res.Status != HealthStatusHealthy {
			status = HealthStatusUnhealthy
			break
		}
	}

	return &HealthResult{Status: status, Checks: results, Timestamp: time.Now().UTC()}
}

func (r *DefaultHealthRegistry) check(ctx context.Context, checker HealthChecker) *CheckResult {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	err := checker.Check(ctx)
	res := &CheckResult{Status: HealthStatusHealthy, Duration: time.Since(start)}

	switch {
	case err == nil:
	case errors.Is(err, context.DeadlineExceeded) && r.timeout > 0:
		res.Status = HealthStatusUnhealthy
		res.Message = fmt.Sprintf("check timed out after %s: %v", r.timeout, err)
	default:
		res.Status = HealthStatusUnhealthy
		res.Message = err.Error()
	}

	return res
}
