package wfc

import (
	"context"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"tilecollapse/pkg/tileset"
)

// Region is one independent grid of a batch
type Region struct {
	Name    string
	Options Options
	Seed    int64
}

// RegionResult is the outcome of one region. Err is set instead of Result
// when the region could not be solved.
type RegionResult struct {
	Region Region
	Result *Result
	Err    error
}

// SolveBatch solves independent regions concurrently, at most limit at a
// time (limit < 1 means one per region). Each region gets its own grid and an
// RNG seeded from Region.Seed, so results match solving the regions one by
// one. Per-region failures are reported in the results; the returned error is
// only set when ctx ends the batch.
func SolveBatch(ctx context.Context, ts *tileset.Tileset, regions []Region, limit int) ([]RegionResult, error) {
	out := make([]RegionResult, len(regions))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, region := range regions {
		g.Go(func() error {
			out[i].Region = region

			s, err := New(ts, region.Options)
			if err != nil {
				out[i].Err = err
				return nil
			}

			res, err := s.Solve(gctx, rand.New(rand.NewSource(region.Seed)))
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				out[i].Err = err
				return nil
			}
			out[i].Result = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return out, err
	}
	return out, nil
}
