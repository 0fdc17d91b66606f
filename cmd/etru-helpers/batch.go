package main

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// mapAll applies fn to every input with at most workers calls in flight and
// returns the results in input order. The first failure cancels the rest.
func mapAll[T any](ctx context.Context, inputs []string, workers int, fn func(string) (T, error)) ([]T, error) {
	out := make([]T, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := fn(in)
			if err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
