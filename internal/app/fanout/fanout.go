// Package fanout runs a function over a slice of items on a bounded pool of
// goroutines. The board service uses it to load many boards at once for
// the summary view.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result is one item's outcome: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for each item with at most maxWorkers calls in flight and
// returns the results in input order. maxWorkers below 1 means 1.
//
// One item failing does not stop the others. Once ctx is done, items not
// yet started get ctx.Err() without fn being called; calls in flight finish
// on their own terms.
//
// An empty input yields an empty non-nil slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))

	var g errgroup.Group
	g.SetLimit(max(maxWorkers, 1))
	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result[R]{Err: err}
				return nil
			}
			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}
