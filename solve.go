package main

import (
	"errors"
	"fmt"
	"image"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"github.com/spf13/cobra"

	"tilecollapse/pkg/atlas"
	"tilecollapse/pkg/devtools"
	"tilecollapse/pkg/renderer"
	ebitenrenderer "tilecollapse/pkg/renderer/ebiten"
	"tilecollapse/pkg/renderer/tui"
	"tilecollapse/pkg/tileset"
	"tilecollapse/pkg/tilesets"
	"tilecollapse/pkg/wfc"
)

var (
	tilesetName string
	atlasPath   string
	metaPath    string
	width       int
	height      int
	seed        int64
	attempts    int
	workers     int
	tieBreak    string
	pinSpecs    []string
	renderMode  string
	dumpPath    string
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one grid and render it",
		Long: `Solve one grid and render it.

Examples:
  tilecollapse solve --tileset roads -W 30 -H 12 --seed 3
  tilecollapse solve --tileset pipes --pin 0,0,pipe_0110 --workers 4
  tilecollapse solve --atlas tiles.png --meta tiles.json --render window`,
		RunE: runSolve,
	}

	addTilesetFlags(solveCmd)
	solveCmd.Flags().StringArrayVar(&pinSpecs, "pin", nil, "Pin a cell before solving: row,col,tile (tile is an index or visual name); repeatable")
	solveCmd.Flags().StringVar(&renderMode, "render", "tui", "Output: tui, plain, window or none")
	solveCmd.Flags().StringVar(&dumpPath, "dump", "", "Write a debug dump of the solved grid to this file")

	rootCmd.AddCommand(solveCmd)
}

// addTilesetFlags registers the flags shared by solve and batch
func addTilesetFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&tilesetName, "tileset", "t", tilesets.Default.Name(), "Built-in tileset name")
	cmd.Flags().StringVar(&atlasPath, "atlas", "", "PNG tile atlas (overrides --tileset)")
	cmd.Flags().StringVar(&metaPath, "meta", "", "JSON slice list for --atlas (default: atlas path with .json)")
	cmd.Flags().IntVarP(&width, "width", "W", 24, "Grid width in cells")
	cmd.Flags().IntVarP(&height, "height", "H", 12, "Grid height in cells")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 picks one from the clock)")
	cmd.Flags().IntVarP(&attempts, "attempts", "a", 10, "Maximum attempts before giving up")
	cmd.Flags().IntVarP(&workers, "workers", "j", 1, "Attempts (solve) or regions (batch) run concurrently")
	cmd.Flags().StringVar(&tieBreak, "tie-break", wfc.TieBreakLowestIndex.String(), "Choice among equally constrained cells: lowest or random")
}

// source is a built tileset plus how to draw it
type source struct {
	name    string
	tiles   *tileset.Tileset
	palette renderer.Palette
	images  map[string]image.Image

	warnings []tileset.Warning
}

// loadSource builds the tileset named by the flags and logs its warnings
func loadSource() (*source, error) {
	var (
		src      = &source{}
		warnings []tileset.Warning
		err      error
	)

	if atlasPath != "" {
		meta := metaPath
		if meta == "" {
			meta = strings.TrimSuffix(atlasPath, filepath.Ext(atlasPath)) + ".json"
		}
		a, err := atlas.Load(atlasPath, meta)
		if err != nil {
			return nil, err
		}
		src.name = filepath.Base(atlasPath)
		src.palette = renderer.Palette{}
		src.images = a.Images()
		src.tiles, warnings, err = a.Build()
		if err != nil {
			return nil, err
		}
	} else {
		c, ok := tilesets.Lookup(tilesetName)
		if !ok {
			return nil, fmt.Errorf("unknown tileset %q (have %s)", tilesetName, strings.Join(tilesets.Names(), ", "))
		}
		src.name = c.Name()
		src.palette = c.Palette()
		src.tiles, warnings, err = c.Build()
		if err != nil {
			return nil, err
		}
	}

	src.warnings = warnings
	for _, w := range warnings {
		logger.Debug().
			Str("tile", w.Visual).
			Str("direction", w.Direction.String()).
			Str("socket", string(w.Socket)).
			Msg("tileset-warning")
		fmt.Fprintln(os.Stderr, color.Style{color.FgYellow}.Sprint(warningLine(w)))
	}
	return src, nil
}

// warningLine describes an edge that can never have a neighbor
func warningLine(w tileset.Warning) string {
	return fmt.Sprintf(gotext.Get("TILESET_WARNING"), w.Visual, w.Direction, w.Socket)
}

// options turns the shared flags into solver options
func options(ts *tileset.Tileset) (wfc.Options, error) {
	tb, ok := wfc.ParseTieBreak(tieBreak)
	if !ok {
		return wfc.Options{}, fmt.Errorf("unknown tie-break %q (use lowest or random)", tieBreak)
	}
	opts := wfc.Options{
		Width:       width,
		Height:      height,
		MaxAttempts: attempts,
		TieBreak:    tb,
		Logger:      &logger,
	}
	for _, spec := range pinSpecs {
		pin, err := parsePin(ts, spec)
		if err != nil {
			return wfc.Options{}, err
		}
		opts.Pins = append(opts.Pins, pin)
	}
	return opts, nil
}

// parsePin parses "row,col,tile" where tile is an index or a visual name
func parsePin(ts *tileset.Tileset, s string) (wfc.Pin, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return wfc.Pin{}, fmt.Errorf("invalid pin %q (use row,col,tile)", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return wfc.Pin{}, fmt.Errorf("invalid pin row: %w", err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return wfc.Pin{}, fmt.Errorf("invalid pin col: %w", err)
	}
	name := strings.TrimSpace(parts[2])
	tile, err := strconv.Atoi(name)
	if err != nil {
		var ok bool
		if tile, ok = ts.IndexOf(name); !ok {
			return wfc.Pin{}, fmt.Errorf("invalid pin tile %q: no such tile", name)
		}
	}
	return wfc.Pin{Row: row, Col: col, Tile: tile}, nil
}

func pickSeed() int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// reportExhausted prints the exhausted message when err is one
func reportExhausted(err error) {
	var exhausted *wfc.ExhaustedError
	if errors.As(err, &exhausted) {
		fmt.Fprintln(os.Stderr, color.Style{color.FgYellow}.Sprint(
			fmt.Sprintf(gotext.Get("EXHAUSTED"), exhausted.Attempts, exhausted.LastContradiction)))
	}
}

func newRenderer(src *source, seed int64) (renderer.Renderer, error) {
	switch renderMode {
	case "tui":
		return tui.New(), nil
	case "plain":
		return renderer.NewPlain(os.Stdout), nil
	case "window":
		return ebitenrenderer.New(src.name, seed, src.images), nil
	case "none":
		return nil, nil
	}
	return nil, fmt.Errorf("unknown render mode %q (use tui, plain, window or none)", renderMode)
}

func runSolve(cmd *cobra.Command, args []string) error {
	src, err := loadSource()
	if err != nil {
		return err
	}
	opts, err := options(src.tiles)
	if err != nil {
		return err
	}
	used := pickSeed()
	r, err := newRenderer(src, used)
	if err != nil {
		return err
	}

	s, err := wfc.New(src.tiles, opts)
	if err != nil {
		return err
	}

	logger.Debug().Int64("seed", used).Str("tileset", src.name).Int("workers", workers).Msg("solve-start")

	var res *wfc.Result
	if workers > 1 {
		res, err = s.SolveParallel(cmd.Context(), used, workers)
	} else {
		res, err = s.Solve(cmd.Context(), rand.New(rand.NewSource(used)))
	}
	if err != nil {
		reportExhausted(err)
		return err
	}
	if err := res.Verify(); err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, color.Style{color.FgGreen}.Sprint(
		fmt.Sprintf(gotext.Get("SOLVED_SUMMARY"), res.Width(), res.Height(), src.name, res.Attempts, res.Steps)))

	if r != nil {
		if err := r.Render(res, src.palette); err != nil {
			return err
		}
	}

	if dumpPath != "" {
		path, err := devtools.DumpToFile(dumpPath, res, devtools.DumpInfo{
			Tileset:  src.name,
			Seed:     used,
			Palette:  src.palette,
			Warnings: src.warnings,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, fmt.Sprintf(gotext.Get("DUMP_WRITTEN"), path))
	}
	return nil
}
