package tileset

import (
	"github.com/bits-and-blooms/bitset"

	"tilecollapse/pkg/engine/world"
)

// Tileset is an ordered, index-stable tile catalog plus the precomputed
// compatibility relation between tile edges. It is read-only after Build and
// safe to share between goroutines.
type Tileset struct {
	tiles []Tile

	// compat[dir][a] holds every tile b that may sit next to a in direction dir
	compat [world.DirectionCount][]*bitset.BitSet
}

// Len returns the number of tiles
func (ts *Tileset) Len() int {
	return len(ts.tiles)
}

// Tile returns the tile at index i
func (ts *Tileset) Tile(i int) Tile {
	return ts.tiles[i]
}

// Tiles returns a copy of the tile catalog
func (ts *Tileset) Tiles() []Tile {
	out := make([]Tile, len(ts.tiles))
	copy(out, ts.tiles)
	return out
}

// Weight returns the selection weight of tile i
func (ts *Tileset) Weight(i int) float64 {
	return ts.tiles[i].Weight
}

// Visual returns the visual reference of tile i
func (ts *Tileset) Visual(i int) string {
	return ts.tiles[i].Visual
}

// IndexOf returns the index of the first tile with the given visual reference
func (ts *Tileset) IndexOf(visual string) (int, bool) {
	for i, t := range ts.tiles {
		if t.Visual == visual {
			return i, true
		}
	}
	return 0, false
}

// Compatible reports whether b may be placed adjacent to a in direction dir.
func (ts *Tileset) Compatible(a int, dir world.Direction, b int) bool {
	if !dir.IsValid() || !ts.valid(a) || !ts.valid(b) {
		return false
	}
	return ts.compat[dir][a].Test(uint(b))
}

// CompatibleCount returns how many tiles may sit next to a in direction dir
func (ts *Tileset) CompatibleCount(a int, dir world.Direction) int {
	if !dir.IsValid() || !ts.valid(a) {
		return 0
	}
	return int(ts.compat[dir][a].Count())
}

// UnionAllowed ORs into dst every tile that is a valid dir-neighbor of at
// least one tile in from. dst and from must have Len() bits.
func (ts *Tileset) UnionAllowed(dst, from *bitset.BitSet, dir world.Direction) {
	row := ts.compat[dir]
	for a, ok := from.NextSet(0); ok; a, ok = from.NextSet(a + 1) {
		dst.InPlaceUnion(row[a])
	}
}

// NewSet returns an empty candidate set sized for this tileset
func (ts *Tileset) NewSet() *bitset.BitSet {
	return bitset.New(uint(len(ts.tiles)))
}

// FullSet returns a candidate set holding every tile index
func (ts *Tileset) FullSet() *bitset.BitSet {
	return ts.NewSet().FlipRange(0, uint(len(ts.tiles)))
}

func (ts *Tileset) valid(i int) bool {
	return i >= 0 && i < len(ts.tiles)
}
