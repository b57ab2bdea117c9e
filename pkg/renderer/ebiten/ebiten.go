// Package ebiten shows a solved grid in a window. Tiles are drawn from atlas
// images when available, otherwise as palette-colored squares.
package ebiten

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"tilecollapse/pkg/renderer"
	"tilecollapse/pkg/wfc"
)

var (
	colorBackground = color.RGBA{26, 26, 46, 255}
	colorGridLine   = color.RGBA{15, 15, 26, 255}
)

const (
	defaultTileSize = 24
	maxWindowSize   = 1024
	statusHeight    = 20
)

// EbitenRenderer opens a window showing one result until it is closed
type EbitenRenderer struct {
	title    string
	seed     int64
	tileSize int
	sources  map[string]image.Image

	res    *wfc.Result
	pal    renderer.Palette
	images map[string]*ebiten.Image
}

// New creates a window renderer. images maps tile visuals to atlas images
// and may be nil; name and seed only appear in the title and status line.
func New(name string, seed int64, images map[string]image.Image) *EbitenRenderer {
	tileSize := defaultTileSize
	for _, img := range images {
		// atlas slices share one size
		tileSize = img.Bounds().Dx()
		break
	}
	return &EbitenRenderer{
		title:    fmt.Sprintf(gotext.Get("WINDOW_TITLE"), name),
		seed:     seed,
		tileSize: tileSize,
		sources:  images,
		images:   map[string]*ebiten.Image{},
	}
}

// Name returns the backend name
func (e *EbitenRenderer) Name() string {
	return "window"
}

// Render blocks until the window is closed
func (e *EbitenRenderer) Render(res *wfc.Result, pal renderer.Palette) error {
	e.res = res
	e.pal = pal

	w, h := e.Layout(0, 0)
	scale := 1
	for w*(scale+1) <= maxWindowSize && h*(scale+1) <= maxWindowSize {
		scale++
	}
	ebiten.SetWindowSize(w*scale, h*scale)
	ebiten.SetWindowTitle(e.title)
	return ebiten.RunGame(e)
}

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

// tileImage converts an atlas image on first use
func (e *EbitenRenderer) tileImage(visual string) *ebiten.Image {
	if img, ok := e.images[visual]; ok {
		return img
	}
	src, ok := e.sources[visual]
	if !ok {
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	e.images[visual] = img
	return img
}

// Draw renders the grid and status line (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if e.res == nil {
		return
	}

	ts := e.res.Tileset()
	size := float32(e.tileSize)
	for _, p := range e.res.Placements() {
		x, y := float32(p.Col)*size, float32(p.Row)*size
		if img := e.tileImage(p.Visual); img != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x), float64(y))
			screen.DrawImage(img, op)
			continue
		}
		g := e.pal.Glyph(ts.Visual(p.Tile))
		vector.DrawFilledRect(screen, x, y, size, size, colorGridLine, false)
		vector.DrawFilledRect(screen, x+1, y+1, size-2, size-2, g.Color, false)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(gotext.Get("WINDOW_HINT"), e.seed, e.res.Attempts), 4, e.res.Height()*e.tileSize+2)
}

// Layout returns the logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if e.res == nil {
		return e.tileSize, e.tileSize + statusHeight
	}
	return e.res.Width() * e.tileSize, e.res.Height()*e.tileSize + statusHeight
}
