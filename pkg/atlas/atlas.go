// Package atlas turns a tile atlas image and its slice list into tile
// definitions. Sockets come from edge pixels, so two tiles fit across an
// edge exactly when the pixels on the touching edges are identical.
package atlas

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"sort"

	"tilecollapse/pkg/engine/world"
	"tilecollapse/pkg/tileset"
)

var (
	ErrNoSlices    = errors.New("atlas: no slices")
	ErrTileSize    = errors.New("atlas: slices differ in size")
	ErrSliceBounds = errors.New("atlas: slice outside image")
)

// Slice is one tile's rectangle in the atlas image
type Slice struct {
	Name   string  `json:"name"`
	X      int     `json:"x"`
	Y      int     `json:"y"`
	W      int     `json:"w"`
	H      int     `json:"h"`
	Weight float64 `json:"weight,omitempty"`
}

func (s Slice) rect() image.Rectangle {
	return image.Rect(s.X, s.Y, s.X+s.W, s.Y+s.H)
}

// Atlas is a decoded image plus its validated, name-sorted slices
type Atlas struct {
	img    image.Image
	slices []Slice
}

// New validates slices against img. Every slice must have the same size and
// lie inside the image. Slices are sorted by name, so the first tile is the
// alphabetically first slice.
func New(img image.Image, slices []Slice) (*Atlas, error) {
	if len(slices) == 0 {
		return nil, ErrNoSlices
	}
	sorted := make([]Slice, len(slices))
	copy(sorted, slices)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	w, h := sorted[0].W, sorted[0].H
	for _, s := range sorted {
		if s.W != w || s.H != h || s.W <= 0 || s.H <= 0 {
			return nil, fmt.Errorf("%w: %q is %dx%d, want %dx%d", ErrTileSize, s.Name, s.W, s.H, w, h)
		}
		if !s.rect().In(img.Bounds()) {
			return nil, fmt.Errorf("%w: %q at %v, image is %v", ErrSliceBounds, s.Name, s.rect(), img.Bounds())
		}
	}
	return &Atlas{img: img, slices: sorted}, nil
}

// Decode reads a PNG atlas and a JSON slice list
func Decode(pngData, meta io.Reader) (*Atlas, error) {
	img, err := png.Decode(pngData)
	if err != nil {
		return nil, fmt.Errorf("atlas: decoding image: %w", err)
	}
	var slices []Slice
	if err := json.NewDecoder(meta).Decode(&slices); err != nil {
		return nil, fmt.Errorf("atlas: decoding slices: %w", err)
	}
	return New(img, slices)
}

// Load opens and decodes an atlas from disk
func Load(imagePath, metaPath string) (*Atlas, error) {
	imgFile, err := os.Open(imagePath)
	if err != nil {
		return nil, err
	}
	defer imgFile.Close()

	metaFile, err := os.Open(metaPath)
	if err != nil {
		return nil, err
	}
	defer metaFile.Close()

	return Decode(imgFile, metaFile)
}

// Slices returns the slices in tile order
func (a *Atlas) Slices() []Slice {
	out := make([]Slice, len(a.slices))
	copy(out, a.slices)
	return out
}

// TileSize returns the shared slice size
func (a *Atlas) TileSize() (w, h int) {
	return a.slices[0].W, a.slices[0].H
}

// Definitions returns one tile definition per slice with edge-pixel sockets
func (a *Atlas) Definitions() []tileset.Definition {
	defs := make([]tileset.Definition, len(a.slices))
	for i, s := range a.slices {
		var sockets tileset.Sockets
		for _, dir := range world.AllDirections() {
			sockets[dir] = edgeSocket(a.img, s.rect(), dir)
		}
		defs[i] = tileset.Definition{Visual: s.Name, Sockets: sockets, Weight: s.Weight}
	}
	return defs
}

// Build creates a tileset from the atlas
func (a *Atlas) Build() (*tileset.Tileset, []tileset.Warning, error) {
	return tileset.NewBuilder().Add(a.Definitions()...).Build()
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// Images returns each tile's image keyed by slice name. It is empty when the
// decoded image type cannot be sliced.
func (a *Atlas) Images() map[string]image.Image {
	out := make(map[string]image.Image, len(a.slices))
	si, ok := a.img.(subImager)
	if !ok {
		return out
	}
	for _, s := range a.slices {
		out[s.Name] = si.SubImage(s.rect())
	}
	return out
}

// edgePixels lists the pixels of one edge of r. North and south read left to
// right, east and west top to bottom.
func edgePixels(img image.Image, r image.Rectangle, dir world.Direction) []color.NRGBA {
	var pts []image.Point
	switch dir {
	case world.North:
		for x := r.Min.X; x < r.Max.X; x++ {
			pts = append(pts, image.Pt(x, r.Min.Y))
		}
	case world.South:
		for x := r.Min.X; x < r.Max.X; x++ {
			pts = append(pts, image.Pt(x, r.Max.Y-1))
		}
	case world.East:
		for y := r.Min.Y; y < r.Max.Y; y++ {
			pts = append(pts, image.Pt(r.Max.X-1, y))
		}
	case world.West:
		for y := r.Min.Y; y < r.Max.Y; y++ {
			pts = append(pts, image.Pt(r.Min.X, y))
		}
	}
	out := make([]color.NRGBA, len(pts))
	for i, p := range pts {
		out[i] = color.NRGBAModel.Convert(img.At(p.X, p.Y)).(color.NRGBA)
	}
	return out
}

// edgeSocket spells out an edge's pixel run as hex RGBA, so sockets are
// equal exactly when the pixels are
func edgeSocket(img image.Image, r image.Rectangle, dir world.Direction) tileset.Socket {
	pixels := edgePixels(img, r, dir)
	buf := make([]byte, 0, 4*len(pixels))
	for _, c := range pixels {
		buf = append(buf, c.R, c.G, c.B, c.A)
	}
	return tileset.Socket(hex.EncodeToString(buf))
}
