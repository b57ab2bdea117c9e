package wfc

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// AttemptRand returns the RNG used for attempt k of a seeded parallel solve
func AttemptRand(seed int64, k int) *rand.Rand {
	mixed := uint64(seed) + uint64(k)*0x9E3779B97F4A7C15
	return rand.New(rand.NewSource(int64(mixed)))
}

// SolveParallel runs attempts on up to workers goroutines. Attempt k draws
// from AttemptRand(seed, k) and owns its grid, so the lowest-numbered
// successful attempt is the result no matter how attempts are scheduled.
func (s *Solver) SolveParallel(ctx context.Context, seed int64, workers int) (*Result, error) {
	if workers < 1 {
		workers = 1
	}

	var (
		next atomic.Int64
		mu   sync.Mutex
		best *Result

		// contradiction cell of the highest-numbered failed attempt
		last     = -1
		lastSeen = -1
	)
	bestAttempt := func() int {
		mu.Lock()
		defer mu.Unlock()
		if best == nil {
			return s.opts.MaxAttempts
		}
		return best.Attempts - 1
	}

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			grid := s.template.Clone()
			for {
				k := int(next.Add(1) - 1)
				if k >= s.opts.MaxAttempts || k > bestAttempt() {
					return nil
				}
				if err := gctx.Err(); err != nil {
					return err
				}

				grid.CopyFrom(s.template)
				c := s.attempt(grid, AttemptRand(seed, k), k+1)

				mu.Lock()
				switch c.State() {
				case Solved:
					if best == nil || k+1 < best.Attempts {
						res, err := newResult(grid, k+1, c.Steps())
						if err != nil {
							mu.Unlock()
							return err
						}
						best = res
					}
				case Contradiction:
					if k > lastSeen {
						lastSeen, last = k, c.ContradictionCell()
					}
				}
				mu.Unlock()
			}
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if best != nil {
		return best, nil
	}

	s.log.Warn().Int("attempts", s.opts.MaxAttempts).Int("workers", workers).Msg("solve-exhausted")
	return nil, &ExhaustedError{Attempts: s.opts.MaxAttempts, LastContradiction: last}
}
