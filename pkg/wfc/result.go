package wfc

import (
	"fmt"

	"tilecollapse/pkg/engine/world"
	"tilecollapse/pkg/tileset"
)

// Placement is what a renderer needs for one cell
type Placement struct {
	Index  int
	Row    int
	Col    int
	Tile   int
	Visual string
}

// Result is a fully resolved grid. It is read-only and carries no solver
// state.
type Result struct {
	layout     world.Layout
	tiles      *tileset.Tileset
	assignment []int

	Attempts int // attempts used, including the successful one
	Steps    int // cells committed by the successful attempt
}

func newResult(g *Grid, attempts, steps int) (*Result, error) {
	assignment := make([]int, g.Len())
	for i := range g.cells {
		t, ok := g.cells[i].Tile()
		if !ok {
			return nil, fmt.Errorf("%w: cell %d has %d candidates", ErrUnsolved, i, g.cells[i].Count())
		}
		assignment[i] = t
	}
	return &Result{
		layout:     g.layout,
		tiles:      g.tiles,
		assignment: assignment,
		Attempts:   attempts,
		Steps:      steps,
	}, nil
}

// NewResult snapshots a fully resolved grid
func NewResult(g *Grid) (*Result, error) {
	return newResult(g, 1, 0)
}

// Width returns the number of columns
func (r *Result) Width() int {
	return r.layout.Cols()
}

// Height returns the number of rows
func (r *Result) Height() int {
	return r.layout.Rows()
}

// Len returns the number of cells
func (r *Result) Len() int {
	return len(r.assignment)
}

// Layout returns the grid geometry
func (r *Result) Layout() world.Layout {
	return r.layout
}

// Tileset returns the tileset the result was solved with
func (r *Result) Tileset() *tileset.Tileset {
	return r.tiles
}

// TileIndex returns the tile at linear index i
func (r *Result) TileIndex(i int) int {
	return r.assignment[i]
}

// TileAt returns the tile at the given position
func (r *Result) TileAt(row, col int) int {
	return r.assignment[r.layout.Index(row, col)]
}

// Visual returns the visual reference of the tile at linear index i
func (r *Result) Visual(i int) string {
	return r.tiles.Visual(r.assignment[i])
}

// Assignment returns a copy of the per-cell tile indices in row-major order
func (r *Result) Assignment() []int {
	out := make([]int, len(r.assignment))
	copy(out, r.assignment)
	return out
}

// Placements lists every cell with its tile and visual reference
func (r *Result) Placements() []Placement {
	out := make([]Placement, len(r.assignment))
	r.layout.ForEachPosition(func(i, row, col int) {
		out[i] = Placement{
			Index:  i,
			Row:    row,
			Col:    col,
			Tile:   r.assignment[i],
			Visual: r.tiles.Visual(r.assignment[i]),
		}
	})
	return out
}

// Verify checks every orthogonally adjacent pair against the tileset's
// compatibility table.
func (r *Result) Verify() error {
	for i, a := range r.assignment {
		for _, dir := range []world.Direction{world.East, world.South} {
			n, ok := r.layout.Neighbor(i, dir)
			if !ok {
				continue
			}
			b := r.assignment[n]
			if !r.tiles.Compatible(a, dir, b) {
				return fmt.Errorf("%w: cell %d tile %d and %s neighbor %d tile %d", ErrIncompatible, i, a, dir, n, b)
			}
		}
	}
	return nil
}
