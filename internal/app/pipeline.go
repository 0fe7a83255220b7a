package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/journal-catalog/internal/platform/logging"
)

// Stage names a step of a Pipeline.
type Stage string

const (
	StageValidate Stage = "validate"
	StagePerform  Stage = "perform"
	StageVerify   Stage = "verify"
)

// StageError records where a pipeline stopped. It unwraps to the cause, so
// domain error kinds survive.
type StageError struct {
	Operation string
	Stage     Stage
	Cause     error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %s failed: %v", e.Operation, e.Stage, e.Cause)
}

func (e *StageError) Unwrap() error { return e.Cause }

// FailedStage returns the stage err stopped at, if err came from a Pipeline.
func FailedStage(err error) (Stage, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage, true
	}

	return "", false
}

// Pipeline is a store write in three stages. Validate runs before anything
// is written, Perform writes, and Verify rejects an outcome that wrote
// nothing useful. Validate and Verify are optional.
type Pipeline[I, O any] struct {
	Name     string
	Validate func(ctx context.Context, in I) error
	Perform  func(ctx context.Context, in I) (O, error)
	Verify   func(ctx context.Context, in I, out O) error
}

// Run executes the stages on in, logging through the context logger or
// logger.
func (p Pipeline[I, O]) Run(ctx context.Context, logger *slog.Logger, in I) (O, error) {
	var zero O

	if l, ok := logging.Lookup(ctx); ok {
		logger = l
	} else if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(slog.String("operation", p.Name))
	start := time.Now()

	stop := func(stage Stage, err error) (O, error) {
		logger.WarnContext(ctx, "operation stopped", slog.String("stage", string(stage)), slog.Any("error", err))
		return zero, &StageError{Operation: p.Name, Stage: stage, Cause: err}
	}

	if p.Validate != nil {
		if err := p.Validate(ctx, in); err != nil {
			return stop(StageValidate, err)
		}
	}

	if p.Perform == nil {
		return stop(StagePerform, errors.New("nothing to perform"))
	}

	out, err := p.Perform(ctx, in)
	if err != nil {
		return stop(StagePerform, err)
	}

	if p.Verify != nil {
		if err := p.Verify(ctx, in, out); err != nil {
			return stop(StageVerify, err)
		}
	}

	logger.InfoContext(ctx, "operation completed", slog.Duration("duration", time.Since(start)))

	return out, nil
}
