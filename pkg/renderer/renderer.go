// Package renderer draws solved grids. Backends live in subpackages; this
// package holds the shared palette and the plain-text backend.
package renderer

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/leonelquinteros/gotext"

	"tilecollapse/pkg/wfc"
)

// Renderer defines the interface for result rendering backends.
// Implementations can include plain text, TUI (ANSI colors) and Ebiten.
type Renderer interface {
	// Name returns the backend name used on the command line
	Name() string

	// Render draws a solved grid using pal for tile appearance
	Render(res *wfc.Result, pal Palette) error
}

// Glyph is how one tile looks in text and in a window without images
type Glyph struct {
	Symbol string
	Color  color.RGBA
}

// Palette maps tile visual references to glyphs
type Palette map[string]Glyph

var colorUnknown = color.RGBA{120, 130, 180, 255}

// Glyph returns the glyph for visual. Visuals missing from the palette fall
// back to their first rune in a neutral color.
func (p Palette) Glyph(visual string) Glyph {
	if g, ok := p[visual]; ok {
		return g
	}
	r, _ := utf8.DecodeRuneInString(visual)
	if r == utf8.RuneError {
		r = '?'
	}
	return Glyph{Symbol: string(r), Color: colorUnknown}
}

// Legend lists the palette entries used by res in tile order
func Legend(res *wfc.Result, pal Palette) []string {
	ts := res.Tileset()
	used := make([]bool, ts.Len())
	for _, t := range res.Assignment() {
		used[t] = true
	}
	var out []string
	for i, u := range used {
		if !u {
			continue
		}
		visual := ts.Visual(i)
		out = append(out, fmt.Sprintf("%s = %s", pal.Glyph(visual).Symbol, visual))
	}
	return out
}

// Rows returns the symbols of res one row per string
func Rows(res *wfc.Result, pal Palette) []string {
	out := make([]string, res.Height())
	var sb strings.Builder
	for row := 0; row < res.Height(); row++ {
		sb.Reset()
		for col := 0; col < res.Width(); col++ {
			sb.WriteString(pal.Glyph(res.Tileset().Visual(res.TileAt(row, col))).Symbol)
		}
		out[row] = sb.String()
	}
	return out
}

// Plain writes uncolored symbols, one line per row
type Plain struct {
	w io.Writer
}

// NewPlain creates a plain text renderer writing to w
func NewPlain(w io.Writer) *Plain {
	return &Plain{w: w}
}

func (p *Plain) Name() string {
	return "plain"
}

func (p *Plain) Render(res *wfc.Result, pal Palette) error {
	bw := bufio.NewWriter(p.w)
	for _, line := range Rows(res, pal) {
		fmt.Fprintln(bw, line)
	}
	fmt.Fprintln(bw, gotext.Get("LEGEND"))
	for _, entry := range Legend(res, pal) {
		fmt.Fprintf(bw, "  %s\n", entry)
	}
	return bw.Flush()
}
