// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"tilecollapse/pkg/engine/world"
	"tilecollapse/pkg/renderer"
	"tilecollapse/pkg/tileset"
	"tilecollapse/pkg/wfc"
)

// DefaultDumpFilename is used when no path is given
const DefaultDumpFilename = "grid.txt"

// DumpInfo is everything written to a dump besides the grid itself
type DumpInfo struct {
	Tileset  string
	Seed     int64
	Palette  renderer.Palette
	Warnings []tileset.Warning
}

// WriteDump writes a debug dump of res: metadata, legend, map, tile table,
// compatibility counts and a per-cell listing. The format is plain
// "key: value" lines under section headers so it can be diffed.
func WriteDump(w io.Writer, res *wfc.Result, info DumpInfo) error {
	bw := bufio.NewWriter(w)
	ts := res.Tileset()

	// --- Metadata ---
	fmt.Fprintln(bw, "=== GRID DUMP ===")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Metadata ---")
	fmt.Fprintf(bw, "tileset: %s\n", info.Tileset)
	fmt.Fprintf(bw, "seed: %d\n", info.Seed)
	fmt.Fprintf(bw, "width: %d\n", res.Width())
	fmt.Fprintf(bw, "height: %d\n", res.Height())
	fmt.Fprintf(bw, "attempts: %d\n", res.Attempts)
	fmt.Fprintf(bw, "steps: %d\n", res.Steps)
	fmt.Fprintf(bw, "tiles: %d\n", ts.Len())
	fmt.Fprintf(bw, "coordinate_system: row,col (0-based, row=vertical, col=horizontal)\n")
	fmt.Fprintln(bw, "")

	// --- Legend ---
	fmt.Fprintln(bw, "--- Legend ---")
	for _, entry := range renderer.Legend(res, info.Palette) {
		fmt.Fprintln(bw, entry)
	}
	fmt.Fprintln(bw, "")

	// --- Map ---
	fmt.Fprintln(bw, "--- Map ---")
	for _, line := range renderer.Rows(res, info.Palette) {
		fmt.Fprintln(bw, line)
	}
	fmt.Fprintln(bw, "")

	// --- Tiles ---
	fmt.Fprintln(bw, "--- Tiles (index: visual weight sockets N,E,S,W; compatible counts N,E,S,W) ---")
	for _, t := range ts.Tiles() {
		fmt.Fprintf(bw, "%d: %s %g %s,%s,%s,%s; %d,%d,%d,%d\n", t.Index, t.Visual, t.Weight,
			t.Socket(world.North), t.Socket(world.East), t.Socket(world.South), t.Socket(world.West),
			ts.CompatibleCount(t.Index, world.North), ts.CompatibleCount(t.Index, world.East),
			ts.CompatibleCount(t.Index, world.South), ts.CompatibleCount(t.Index, world.West))
	}
	fmt.Fprintln(bw, "")

	// --- Warnings ---
	fmt.Fprintln(bw, "--- Warnings ---")
	if len(info.Warnings) == 0 {
		fmt.Fprintln(bw, "(none)")
	}
	for _, warning := range info.Warnings {
		fmt.Fprintln(bw, warning.String())
	}
	fmt.Fprintln(bw, "")

	// --- Cells ---
	fmt.Fprintln(bw, "--- Cells (row,col: tile visual) ---")
	for _, p := range res.Placements() {
		fmt.Fprintf(bw, "%d,%d: %d %s\n", p.Row, p.Col, p.Tile, p.Visual)
	}

	return bw.Flush()
}

// DumpToFile writes a dump to path (DefaultDumpFilename when empty) and
// returns the absolute path written.
func DumpToFile(path string, res *wfc.Result, info DumpInfo) (string, error) {
	if path == "" {
		path = DefaultDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteDump(f, res, info); err != nil {
		return "", err
	}
	return absPath, f.Close()
}
