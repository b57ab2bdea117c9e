package tilesets

import (
	"image/color"

	"tilecollapse/pkg/renderer"
	"tilecollapse/pkg/tileset"
)

// CheckerTileset alternates two squares. Each edge carries a directional
// socket that is paired with the facing edge of the other color only.
type CheckerTileset struct{}

// Name returns the name of this tileset
func (c *CheckerTileset) Name() string {
	return "checker"
}

// Description returns a one-line summary
func (c *CheckerTileset) Description() string {
	return "strict two-color checkerboard built from socket pairs"
}

// Build creates the tileset
func (c *CheckerTileset) Build() (*tileset.Tileset, []tileset.Warning, error) {
	return tileset.NewBuilder().
		Add(
			tileset.Definition{Visual: "dark", Sockets: tileset.Sockets{"dn", "de", "ds", "dw"}},
			tileset.Definition{Visual: "light", Sockets: tileset.Sockets{"ln", "le", "ls", "lw"}},
		).
		Pair("dn", "ls").
		Pair("ds", "ln").
		Pair("de", "lw").
		Pair("dw", "le").
		Build()
}

// Palette returns the glyphs for each tile
func (c *CheckerTileset) Palette() renderer.Palette {
	return renderer.Palette{
		"dark":  {Symbol: "█", Color: color.RGBA{90, 90, 110, 255}},
		"light": {Symbol: "░", Color: color.RGBA{220, 220, 235, 255}},
	}
}

// TerrainTileset layers water, sand, grass and forest. Each band only
// touches itself and its direct neighbors.
type TerrainTileset struct{}

// Name returns the name of this tileset
func (t *TerrainTileset) Name() string {
	return "terrain"
}

// Description returns a one-line summary
func (t *TerrainTileset) Description() string {
	return "water, sand, grass and forest bands joined by socket pairs"
}

// Build creates the tileset
func (t *TerrainTileset) Build() (*tileset.Tileset, []tileset.Warning, error) {
	return tileset.NewBuilder().
		Add(
			tileset.Definition{Visual: "water", Sockets: tileset.Uniform("water"), Weight: 3},
			tileset.Definition{Visual: "sand", Sockets: tileset.Uniform("sand"), Weight: 1},
			tileset.Definition{Visual: "grass", Sockets: tileset.Uniform("grass"), Weight: 3},
			tileset.Definition{Visual: "forest", Sockets: tileset.Uniform("forest"), Weight: 2},
		).
		Pair("water", "sand").
		Pair("sand", "grass").
		Pair("grass", "forest").
		Build()
}

// Palette returns the glyphs for each tile
func (t *TerrainTileset) Palette() renderer.Palette {
	return renderer.Palette{
		"water":  {Symbol: "≈", Color: color.RGBA{60, 110, 220, 255}},
		"sand":   {Symbol: "∴", Color: color.RGBA{230, 210, 140, 255}},
		"grass":  {Symbol: "\"", Color: color.RGBA{80, 190, 80, 255}},
		"forest": {Symbol: "♣", Color: color.RGBA{20, 110, 40, 255}},
	}
}

// SingleTileset is one tile compatible with itself on every side
type SingleTileset struct{}

// Name returns the name of this tileset
func (s *SingleTileset) Name() string {
	return "single"
}

// Description returns a one-line summary
func (s *SingleTileset) Description() string {
	return "one self-compatible tile; solves in a single attempt"
}

// Build creates the tileset
func (s *SingleTileset) Build() (*tileset.Tileset, []tileset.Warning, error) {
	return tileset.NewBuilder().
		Add(tileset.Definition{Visual: "floor", Sockets: tileset.Uniform("floor")}).
		Build()
}

// Palette returns the glyphs for each tile
func (s *SingleTileset) Palette() renderer.Palette {
	return renderer.Palette{"floor": {Symbol: "·", Color: color.RGBA{160, 160, 180, 255}}}
}

// IncompatibleTileset has two tiles that fit nowhere, not even next to
// themselves. Any grid larger than one cell exhausts its attempts.
type IncompatibleTileset struct{}

// Name returns the name of this tileset
func (i *IncompatibleTileset) Name() string {
	return "incompatible"
}

// Description returns a one-line summary
func (i *IncompatibleTileset) Description() string {
	return "two tiles with no matching edges; always exhausts"
}

// Build creates the tileset
func (i *IncompatibleTileset) Build() (*tileset.Tileset, []tileset.Warning, error) {
	return tileset.NewBuilder().
		Add(
			tileset.Definition{Visual: "A", Sockets: tileset.Sockets{"a1", "a2", "a3", "a4"}},
			tileset.Definition{Visual: "B", Sockets: tileset.Sockets{"b1", "b2", "b3", "b4"}},
		).
		Build()
}

// Palette returns the glyphs for each tile
func (i *IncompatibleTileset) Palette() renderer.Palette {
	return renderer.Palette{
		"A": {Symbol: "A", Color: color.RGBA{255, 100, 100, 255}},
		"B": {Symbol: "B", Color: color.RGBA{100, 150, 255, 255}},
	}
}
