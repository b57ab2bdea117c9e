// Package world provides generic 2D grid geometry primitives.
// These are engine-level constructs shared by the solver and the renderers.
package world

// Layout describes a fixed width × height grid addressed either by
// (row, col) or by a row-major linear index.
type Layout struct {
	rows int
	cols int
}

// NewLayout creates a layout with the given dimensions
func NewLayout(rows, cols int) Layout {
	if rows <= 0 || cols <= 0 {
		panic("Layout dimensions must be positive")
	}
	return Layout{rows: rows, cols: cols}
}

// Rows returns the number of rows in the layout
func (l Layout) Rows() int {
	return l.rows
}

// Cols returns the number of columns in the layout
func (l Layout) Cols() int {
	return l.cols
}

// Len returns the number of cells
func (l Layout) Len() int {
	return l.rows * l.cols
}

// IsValidPosition checks if a row/col position is within bounds
func (l Layout) IsValidPosition(row, col int) bool {
	return row >= 0 && row < l.rows && col >= 0 && col < l.cols
}

// IsValidIndex checks if a linear index is within bounds
func (l Layout) IsValidIndex(i int) bool {
	return i >= 0 && i < l.Len()
}

// Index returns the linear index of a position. The position must be valid.
func (l Layout) Index(row, col int) int {
	return row*l.cols + col
}

// Position returns the row and column of a linear index
func (l Layout) Position(i int) (row, col int) {
	return i / l.cols, i % l.cols
}

// Neighbor returns the linear index adjacent to i in the given direction.
// ok is false at the grid boundary or for an invalid direction.
func (l Layout) Neighbor(i int, dir Direction) (n int, ok bool) {
	if !dir.IsValid() {
		return 0, false
	}
	row, col := l.Position(i)
	rowRel, colRel := dir.Delta()
	row, col = row+rowRel, col+colRel
	if !l.IsValidPosition(row, col) {
		return 0, false
	}
	return l.Index(row, col), true
}

// ForEachPosition iterates over all positions in row-major order
func (l Layout) ForEachPosition(fn func(i, row, col int)) {
	for row := 0; row < l.rows; row++ {
		for col := 0; col < l.cols; col++ {
			fn(l.Index(row, col), row, col)
		}
	}
}
