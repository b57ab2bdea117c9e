// Package tui renders solved grids as colored glyphs in a terminal.
package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"tilecollapse/pkg/engine/terminal"
	"tilecollapse/pkg/renderer"
	"tilecollapse/pkg/wfc"
)

// TUIRenderer is the terminal renderer implementation
type TUIRenderer struct {
	out   io.Writer
	width int
	color bool

	colorSubtle color.Style
	colorTitle  color.Style
}

// New creates a TUI renderer on stdout, sized and colored to match it
func New() *TUIRenderer {
	return NewWriter(os.Stdout, terminal.Width(), terminal.IsTerminal(os.Stdout))
}

// NewWriter creates a TUI renderer writing to w. Rows are cropped to width
// columns; colors are only emitted when useColor is set.
func NewWriter(w io.Writer, width int, useColor bool) *TUIRenderer {
	return &TUIRenderer{
		out:         w,
		width:       width,
		color:       useColor,
		colorSubtle: color.Style{color.FgGray, color.OpBold},
		colorTitle:  color.Style{color.FgMagenta, color.OpBold},
	}
}

// Name returns the backend name
func (t *TUIRenderer) Name() string {
	return "tui"
}

func (t *TUIRenderer) style(s color.Style, text string) string {
	if !t.color {
		return text
	}
	return s.Sprint(text)
}

func (t *TUIRenderer) glyph(g renderer.Glyph) string {
	if !t.color {
		return g.Symbol
	}
	return color.RGB(g.Color.R, g.Color.G, g.Color.B).Sprint(g.Symbol)
}

// Render draws res row by row, then the legend
func (t *TUIRenderer) Render(res *wfc.Result, pal renderer.Palette) error {
	bw := bufio.NewWriter(t.out)
	ts := res.Tileset()

	cols := res.Width()
	if t.width > 0 && cols > t.width {
		cols = t.width
	}

	for row := 0; row < res.Height(); row++ {
		for col := 0; col < cols; col++ {
			bw.WriteString(t.glyph(pal.Glyph(ts.Visual(res.TileAt(row, col)))))
		}
		bw.WriteString("\n")
	}
	if cols < res.Width() {
		fmt.Fprintln(bw, t.style(t.colorSubtle, fmt.Sprintf(gotext.Get("CROPPED"), cols, res.Width())))
	}

	fmt.Fprintln(bw, t.style(t.colorTitle, gotext.Get("LEGEND")))
	for _, entry := range renderer.Legend(res, pal) {
		fmt.Fprintf(bw, "  %s\n", t.style(t.colorSubtle, entry))
	}
	return bw.Flush()
}
