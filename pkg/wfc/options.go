package wfc

import (
	"fmt"

	"github.com/rs/zerolog"

	"tilecollapse/pkg/tileset"
)

// Pin fixes a cell to a tile before the first collapse
type Pin struct {
	Row  int
	Col  int
	Tile int
}

// Options configures a solve. Every field is caller supplied; the zero value
// is not valid.
type Options struct {
	Width       int
	Height      int
	MaxAttempts int
	TieBreak    TieBreak
	Pins        []Pin

	// Logger receives attempt events. nil disables logging.
	Logger *zerolog.Logger
}

// DefaultOptions returns options for a width × height grid with a small
// attempt budget and lowest-index tie-breaking.
func DefaultOptions(width, height int) Options {
	return Options{
		Width:       width,
		Height:      height,
		MaxAttempts: 10,
		TieBreak:    TieBreakLowestIndex,
	}
}

// Validate checks the options against a tileset
func (o Options) Validate(ts *tileset.Tileset) error {
	if ts == nil || ts.Len() == 0 {
		return ErrEmptyTileset
	}
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, o.Width, o.Height)
	}
	if o.MaxAttempts <= 0 {
		return fmt.Errorf("%w: max attempts must be positive, got %d", ErrInvalidOptions, o.MaxAttempts)
	}
	if o.TieBreak != TieBreakLowestIndex && o.TieBreak != TieBreakRandom {
		return fmt.Errorf("%w: unknown tie-break %d", ErrInvalidOptions, o.TieBreak)
	}
	for _, p := range o.Pins {
		if p.Row < 0 || p.Row >= o.Height || p.Col < 0 || p.Col >= o.Width {
			return fmt.Errorf("%w: pin (%d,%d) outside %dx%d grid", ErrInvalidOptions, p.Row, p.Col, o.Width, o.Height)
		}
		if p.Tile < 0 || p.Tile >= ts.Len() {
			return fmt.Errorf("%w: pin (%d,%d) names unknown tile %d", ErrInvalidOptions, p.Row, p.Col, p.Tile)
		}
	}
	return nil
}

func (o Options) logger() zerolog.Logger {
	if o.Logger == nil {
		return zerolog.Nop()
	}
	return *o.Logger
}
