// SPDX-License-Identifier: MIT

package evaluate

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tracegrade/geometry"
)

// ScoreBatch scores every attempt against the same template concurrently,
// with at most GOMAXPROCS evaluations in flight. Results keep the order of
// attempts.
//
// The first failing attempt cancels the rest; its error is returned as an
// *AttemptError wrapping the sentinel (errors.Is still matches it). A
// cancelled ctx returns ctx.Err().
func ScoreBatch(ctx context.Context, template []geometry.Stroke, attempts [][]geometry.Stroke, opts ...Option) ([]Score, error) {
	return New(opts...).ScoreBatch(ctx, template, attempts)
}

// ScoreBatch is the method form of the package-level ScoreBatch.
func (e *Evaluator) ScoreBatch(ctx context.Context, template []geometry.Stroke, attempts [][]geometry.Stroke) ([]Score, error) {
	scores := make([]Score, len(attempts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range attempts {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s, err := e.Evaluate(template, attempts[i])
			if err != nil {
				return &AttemptError{Index: i, Err: err}
			}
			scores[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return scores, nil
}
