package wfc

import (
	"github.com/bits-and-blooms/bitset"
)

// CellState classifies a cell by the size of its candidate set
type CellState int

const (
	Unresolved   CellState = iota // two or more candidates
	Resolved                      // exactly one candidate
	Contradicted                  // no candidates left
)

func (s CellState) String() string {
	switch s {
	case Unresolved:
		return "unresolved"
	case Resolved:
		return "resolved"
	case Contradicted:
		return "contradicted"
	default:
		return "unknown"
	}
}

// Cell is one grid position and the tiles still possible there.
// Cells are only mutated by the Grid during collapse and propagation.
type Cell struct {
	Index int
	Row   int
	Col   int

	candidates *bitset.BitSet
}

// Count returns the number of remaining candidates (the cell's entropy)
func (c *Cell) Count() int {
	return int(c.candidates.Count())
}

// State returns the cell state derived from its candidate count
func (c *Cell) State() CellState {
	switch c.candidates.Count() {
	case 0:
		return Contradicted
	case 1:
		return Resolved
	default:
		return Unresolved
	}
}

// Has reports whether tile is still a candidate
func (c *Cell) Has(tile int) bool {
	return tile >= 0 && c.candidates.Test(uint(tile))
}

// Candidates returns the remaining tile indices in ascending order
func (c *Cell) Candidates() []int {
	out := make([]int, 0, c.candidates.Count())
	for t, ok := c.candidates.NextSet(0); ok; t, ok = c.candidates.NextSet(t + 1) {
		out = append(out, int(t))
	}
	return out
}

// Tile returns the final tile of a resolved cell
func (c *Cell) Tile() (int, bool) {
	if c.candidates.Count() != 1 {
		return 0, false
	}
	t, _ := c.candidates.NextSet(0)
	return int(t), true
}
