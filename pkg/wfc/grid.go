package wfc

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"tilecollapse/pkg/engine/world"
	"tilecollapse/pkg/tileset"
)

// Grid owns every cell's candidate set for one solve attempt.
type Grid struct {
	layout world.Layout
	tiles  *tileset.Tileset
	cells  []Cell
}

// NewGrid creates a width × height grid in full superposition
func NewGrid(ts *tileset.Tileset, width, height int) (*Grid, error) {
	if ts == nil || ts.Len() == 0 {
		return nil, ErrEmptyTileset
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	g := &Grid{
		layout: world.NewLayout(height, width),
		tiles:  ts,
		cells:  make([]Cell, width*height),
	}
	g.layout.ForEachPosition(func(i, row, col int) {
		g.cells[i] = Cell{
			Index:      i,
			Row:        row,
			Col:        col,
			candidates: ts.FullSet(),
		}
	})
	return g, nil
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.layout.Cols()
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.layout.Rows()
}

// Len returns the number of cells
func (g *Grid) Len() int {
	return len(g.cells)
}

// Layout returns the grid geometry
func (g *Grid) Layout() world.Layout {
	return g.layout
}

// Tileset returns the tileset the grid was built from
func (g *Grid) Tileset() *tileset.Tileset {
	return g.tiles
}

// Cell returns the cell at linear index i, or nil if out of bounds
func (g *Grid) Cell(i int) *Cell {
	if !g.layout.IsValidIndex(i) {
		return nil
	}
	return &g.cells[i]
}

// CellAt returns the cell at the given position, or nil if out of bounds
func (g *Grid) CellAt(row, col int) *Cell {
	if !g.layout.IsValidPosition(row, col) {
		return nil
	}
	return &g.cells[g.layout.Index(row, col)]
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(row, col int, cell *Cell)) {
	for i := range g.cells {
		fn(g.cells[i].Row, g.cells[i].Col, &g.cells[i])
	}
}

// Resolved reports whether every cell holds exactly one candidate
func (g *Grid) Resolved() bool {
	for i := range g.cells {
		if g.cells[i].candidates.Count() != 1 {
			return false
		}
	}
	return true
}

// Contradiction returns the first cell with an empty candidate set
func (g *Grid) Contradiction() (int, bool) {
	for i := range g.cells {
		if g.cells[i].candidates.None() {
			return i, true
		}
	}
	return 0, false
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	c := &Grid{
		layout: g.layout,
		tiles:  g.tiles,
		cells:  make([]Cell, len(g.cells)),
	}
	for i, cell := range g.cells {
		cell.candidates = cell.candidates.Clone()
		c.cells[i] = cell
	}
	return c
}

// CopyFrom overwrites every candidate set with src's. Both grids must share
// the same tileset and dimensions.
func (g *Grid) CopyFrom(src *Grid) {
	for i := range g.cells {
		src.cells[i].candidates.Copy(g.cells[i].candidates)
	}
}

// collapse commits cell i to a single tile
func (g *Grid) collapse(i, tile int) {
	g.cells[i].candidates.ClearAll().Set(uint(tile))
}

// restrict intersects cell i with allowed and returns how many candidates
// were removed
func (g *Grid) restrict(i int, allowed *bitset.BitSet) int {
	set := g.cells[i].candidates
	before := set.Count()
	set.InPlaceIntersection(allowed)
	return int(before - set.Count())
}
