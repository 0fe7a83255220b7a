package app

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Unbounded lets Gather start every function at once.
const Unbounded = -1

// Gather calls fns with at most limit in flight and returns their results
// in argument order. A limit below 1 means Unbounded. The first error
// cancels the context of the others and is returned unwrapped.
//
// A limit of 1 calls fns one by one on the caller's goroutine, and none
// after the first failure is started.
func Gather[T any](ctx context.Context, limit int, fns ...func(context.Context) (T, error)) ([]T, error) {
	results := make([]T, len(fns))

	if limit == 1 {
		for i, fn := range fns {
			r, err := fn(ctx)
			if err != nil {
				return nil, err
			}

			results[i] = r
		}

		return results, nil
	}

	if limit < 1 {
		limit = Unbounded
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, fn := range fns {
		g.Go(func() (err error) {
			results[i], err = fn(gctx)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
