// Package tileset builds the immutable tile catalog and the edge compatibility
// table consumed by the solver.
package tileset

import (
	"tilecollapse/pkg/engine/world"
)

// Socket identifies one edge of a tile. Two facing edges connect when their
// sockets are equal or declared as a pair.
type Socket string

// Sockets holds one socket per direction, indexed by world.Direction.
type Sockets [world.DirectionCount]Socket

// Tile is one entry of a Tileset. Tiles are values; a Tileset never hands out
// references to its internal storage.
type Tile struct {
	Index   int     // Stable index into the tileset
	Visual  string  // Opaque handle resolved by the renderer
	Sockets Sockets // N, E, S, W
	Weight  float64 // Relative selection weight, always > 0
}

// Socket returns the socket on the given edge
func (t Tile) Socket(dir world.Direction) Socket {
	if !dir.IsValid() {
		return ""
	}
	return t.Sockets[dir]
}

// Definition is the per-tile input to the Builder: a visual reference, its
// edge sockets and an optional weight (0 means uniform).
type Definition struct {
	Visual  string
	Sockets Sockets
	Weight  float64
}

// Uniform returns sockets with the same id on every edge
func Uniform(s Socket) Sockets {
	return Sockets{s, s, s, s}
}
