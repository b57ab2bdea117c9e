// Package wfc fills a grid with tiles so every pair of touching cells is
// compatible, using Wave Function Collapse.
//
// A solve runs attempts. Each attempt starts from full superposition (plus
// any pinned cells), repeatedly collapses the lowest-entropy cell and
// propagates constraints. An attempt that empties a cell is discarded and the
// next one starts from scratch; only a fully resolved grid is ever returned.
package wfc

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"tilecollapse/pkg/tileset"
)

// Solver holds the validated inputs of a solve and the initial grid every
// attempt restarts from. A Solver may be used by several goroutines as long
// as each brings its own Rand.
type Solver struct {
	tiles    *tileset.Tileset
	opts     Options
	log      zerolog.Logger
	template *Grid
}

// New validates opts and prepares the initial grid. Pins are applied and
// propagated once here; if they contradict each other no attempt could
// succeed and ErrPinsUnsatisfiable is returned.
func New(ts *tileset.Tileset, opts Options) (*Solver, error) {
	if err := opts.Validate(ts); err != nil {
		return nil, err
	}

	template, err := NewGrid(ts, opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}

	if len(opts.Pins) > 0 {
		prop := NewPropagator(template)
		for _, p := range opts.Pins {
			i := template.layout.Index(p.Row, p.Col)
			if !template.cells[i].Has(p.Tile) {
				return nil, fmt.Errorf("%w: pin (%d,%d) tile %d already excluded", ErrPinsUnsatisfiable, p.Row, p.Col, p.Tile)
			}
			template.collapse(i, p.Tile)
			if res := prop.Propagate(i); res.Contradiction {
				return nil, fmt.Errorf("%w: cell %d emptied after pin (%d,%d)", ErrPinsUnsatisfiable, res.Cell, p.Row, p.Col)
			}
		}
	}

	return &Solver{
		tiles:    ts,
		opts:     opts,
		log:      opts.logger(),
		template: template,
	}, nil
}

// InitialGrid returns a fresh copy of the grid every attempt starts from
func (s *Solver) InitialGrid() *Grid {
	return s.template.Clone()
}

// Solve runs up to MaxAttempts attempts with rng. ctx is checked between
// attempts only; an attempt in progress always runs to a terminal state.
func (s *Solver) Solve(ctx context.Context, rng Rand) (*Result, error) {
	grid := s.template.Clone()
	last := -1

	for attempt := 1; attempt <= s.opts.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("wfc: canceled before attempt %d: %w", attempt, err)
		}
		if attempt > 1 {
			grid.CopyFrom(s.template)
		}

		c := s.attempt(grid, rng, attempt)
		if c.State() == Solved {
			return newResult(grid, attempt, c.Steps())
		}
		last = c.ContradictionCell()
	}

	s.log.Warn().Int("attempts", s.opts.MaxAttempts).Int("cell", last).Msg("solve-exhausted")
	return nil, &ExhaustedError{Attempts: s.opts.MaxAttempts, LastContradiction: last}
}

// attempt runs one collapser to a terminal state on grid
func (s *Solver) attempt(grid *Grid, rng Rand, n int) *Collapser {
	s.log.Debug().Int("attempt", n).Int("width", grid.Width()).Int("height", grid.Height()).Msg("attempt-start")

	c := NewCollapser(grid, rng, s.opts.TieBreak)
	switch c.Run() {
	case Solved:
		s.log.Info().Int("attempt", n).Int("steps", c.Steps()).Msg("attempt-solved")
	case Contradiction:
		s.log.Debug().Int("attempt", n).Int("cell", c.ContradictionCell()).Int("steps", c.Steps()).Msg("attempt-contradiction")
	}
	return c
}

// Solve fills a width × height grid from ts using rng, retrying from scratch
// up to maxAttempts times. It fails with an *ExhaustedError when every
// attempt contradicts.
func Solve(ts *tileset.Tileset, width, height int, rng Rand, maxAttempts int) (*Result, error) {
	s, err := New(ts, Options{
		Width:       width,
		Height:      height,
		MaxAttempts: maxAttempts,
	})
	if err != nil {
		return nil, err
	}
	return s.Solve(context.Background(), rng)
}
