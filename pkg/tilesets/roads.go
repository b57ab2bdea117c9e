package tilesets

import (
	"fmt"
	"image/color"

	"tilecollapse/pkg/renderer"
	"tilecollapse/pkg/tileset"
)

// Box drawing glyphs indexed by a N=1 E=2 S=4 W=8 connection mask
var boxGlyphs = [16]string{
	"·", "╵", "╶", "└", "╷", "│", "┌", "├",
	"╴", "┘", "─", "┴", "┐", "┤", "┬", "┼",
}

// roadSockets turns a connection mask into edge sockets
func roadSockets(mask int, open, closed tileset.Socket) tileset.Sockets {
	var s tileset.Sockets
	for bit := range s {
		s[bit] = closed
		if mask&(1<<bit) != 0 {
			s[bit] = open
		}
	}
	return s
}

// RoadsTileset is a road network without dead ends or junctions. Straights
// and corners alone can paint themselves into a corner, so larger grids need
// a few attempts.
type RoadsTileset struct{}

// Name returns the name of this tileset
func (r *RoadsTileset) Name() string {
	return "roads"
}

// Description returns a one-line summary
func (r *RoadsTileset) Description() string {
	return "straight roads and bends on grass; can contradict"
}

var roadTiles = []struct {
	visual string
	mask   int
	weight float64
}{
	{"grass", 0, 4},
	{"road_ns", 5, 2},
	{"road_ew", 10, 3},
	{"bend_ne", 3, 3},
	{"bend_es", 6, 1},
	{"bend_sw", 12, 1},
	{"bend_wn", 9, 3},
}

// Build creates the tileset
func (r *RoadsTileset) Build() (*tileset.Tileset, []tileset.Warning, error) {
	b := tileset.NewBuilder()
	for _, t := range roadTiles {
		b.Add(tileset.Definition{Visual: t.visual, Sockets: roadSockets(t.mask, "road", "grass"), Weight: t.weight})
	}
	return b.Build()
}

// Palette returns the glyphs for each tile
func (r *RoadsTileset) Palette() renderer.Palette {
	pal := renderer.Palette{}
	for _, t := range roadTiles {
		g := renderer.Glyph{Symbol: boxGlyphs[t.mask], Color: color.RGBA{230, 200, 120, 255}}
		if t.mask == 0 {
			g.Color = color.RGBA{60, 170, 60, 255}
		}
		pal[t.visual] = g
	}
	return pal
}

// PipesTileset has a piece for every combination of open edges, so every
// neighborhood can be satisfied and no attempt ever contradicts.
type PipesTileset struct{}

// Name returns the name of this tileset
func (p *PipesTileset) Name() string {
	return "pipes"
}

// Description returns a one-line summary
func (p *PipesTileset) Description() string {
	return "all sixteen pipe pieces; never contradicts"
}

func pipeVisual(mask int) string {
	return fmt.Sprintf("pipe_%04b", mask)
}

// Build creates the tileset
func (p *PipesTileset) Build() (*tileset.Tileset, []tileset.Warning, error) {
	b := tileset.NewBuilder()
	for mask := 0; mask < 16; mask++ {
		weight := 1.0
		switch mask {
		case 0:
			weight = 8
		case 5, 10:
			weight = 3
		}
		b.Add(tileset.Definition{Visual: pipeVisual(mask), Sockets: roadSockets(mask, "open", "shut"), Weight: weight})
	}
	return b.Build()
}

// Palette returns the glyphs for each tile
func (p *PipesTileset) Palette() renderer.Palette {
	pal := renderer.Palette{}
	for mask := 0; mask < 16; mask++ {
		pal[pipeVisual(mask)] = renderer.Glyph{Symbol: boxGlyphs[mask], Color: color.RGBA{100, 180, 255, 255}}
	}
	pal[pipeVisual(0)] = renderer.Glyph{Symbol: " ", Color: color.RGBA{26, 26, 46, 255}}
	return pal
}
