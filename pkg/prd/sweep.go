package prd

import (
	"context"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Sweep computes the layout of every element of ps, running at most limit
// computations at once (runtime.NumCPU() when limit <= 0).
//
// The first error cancels the remaining work and is returned; layouts[i]
// belongs to ps[i].
func Sweep(ctx context.Context, ps []Parameters, limit int, log zerolog.Logger) ([]*Layout, error) {
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	layouts := make([]*Layout, len(ps))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := range ps {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			l, err := Compute(ps[i])
			if err != nil {
				return fmt.Errorf("prd: sweep entry %d: %w", i, err)
			}
			log.Debug().
				Int("index", i).
				Int("rows", l.Grid.Rows()).
				Int("cols", l.Grid.Cols()).
				Stringer("strategy", l.Parameters.Strategy).
				Str("fingerprint", l.Fingerprint.Short()).
				Msg("layout computed")
			layouts[i] = l
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Info().Int("layouts", len(layouts)).Msg("sweep done")
	return layouts, nil
}
