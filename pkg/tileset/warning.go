package tileset

import (
	"fmt"

	"tilecollapse/pkg/engine/world"
)

// Warning reports a modeling inconsistency: an edge whose socket pairs with
// no tile's facing edge, so the tile can never have a neighbor on that side.
type Warning struct {
	Tile      int
	Visual    string
	Direction world.Direction
	Socket    Socket
}

func (w Warning) String() string {
	return fmt.Sprintf("tile %d (%s) %s socket %q has no compatible neighbor", w.Tile, w.Visual, w.Direction, w.Socket)
}

func collectWarnings(ts *Tileset) []Warning {
	var out []Warning
	for _, t := range ts.tiles {
		for _, dir := range world.AllDirections() {
			if ts.compat[dir][t.Index].None() {
				out = append(out, Warning{
					Tile:      t.Index,
					Visual:    t.Visual,
					Direction: dir,
					Socket:    t.Socket(dir),
				})
			}
		}
	}
	return out
}
