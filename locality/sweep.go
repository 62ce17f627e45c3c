package locality

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result holds both stretch statistics for one curve at one order.
type Result struct {
	Kind    Kind
	Order   int
	Average float64
	Median  float64
}

// Sweep computes Result for every (kind, order) pair, kinds-major, with at
// most WithWorkers pairs in flight. The first error cancels the remaining
// pairs and is returned. Once ctx is done no further pair is scheduled and
// ctx.Err() is returned.
func Sweep(ctx context.Context, kinds []Kind, orders []int, opts ...Option) ([]Result, error) {
	cfg := newConfig(opts...)
	results := make([]Result, len(kinds)*len(orders))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
schedule:
	for ki, kind := range kinds {
		for oi, order := range orders {
			if gctx.Err() != nil {
				break schedule
			}
			slot := ki*len(orders) + oi
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				a, err := analyzerFor(kind, order, opts...)
				if err != nil {
					return err
				}
				avg, err := a.AverageStretch()
				if err != nil {
					return err
				}
				med, err := a.MedianStretch()
				if err != nil {
					return err
				}
				results[slot] = Result{Kind: kind, Order: order, Average: avg, Median: med}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
