// Package tilesets holds the built-in demo tilesets.
package tilesets

import (
	"sort"

	"tilecollapse/pkg/renderer"
	"tilecollapse/pkg/tileset"
)

// Catalog is a named, ready-to-build tileset with a palette for rendering
type Catalog interface {
	Name() string
	Description() string
	Build() (*tileset.Tileset, []tileset.Warning, error)
	Palette() renderer.Palette
}

// Available tilesets
var (
	Roads        = &RoadsTileset{}
	Pipes        = &PipesTileset{}
	Checker      = &CheckerTileset{}
	Terrain      = &TerrainTileset{}
	Single       = &SingleTileset{}
	Incompatible = &IncompatibleTileset{}
)

// Default is the tileset used when none is named
var Default Catalog = Roads

var registry = map[string]Catalog{}

func init() {
	for _, c := range []Catalog{Roads, Pipes, Checker, Terrain, Single, Incompatible} {
		registry[c.Name()] = c
	}
}

// Lookup finds a tileset by name
func Lookup(name string) (Catalog, bool) {
	c, ok := registry[name]
	return c, ok
}

// Names returns every registered name in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
