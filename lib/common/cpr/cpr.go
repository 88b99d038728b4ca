// Package cpr contains concurrency primitives.
package cpr

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Map applies f to every element of ts, running at most limit calls at the
// same time. Results are returned in the order of ts. The first error
// cancels the context passed to the remaining calls.
func Map[T, R any](ctx context.Context, limit int, ts []T, f func(context.Context, T) (R, error)) ([]R, error) {
	if limit < 1 {
		limit = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	res := make([]R, len(ts))
	for i, t := range ts {
		i, t := i, t
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := f(ctx, t)
			if err != nil {
				return err
			}
			res[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
