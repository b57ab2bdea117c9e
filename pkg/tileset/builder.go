package tileset

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/bits-and-blooms/bitset"
	"github.com/zyedidia/generic/mapset"

	"tilecollapse/pkg/engine/world"
)

var (
	ErrEmpty             = errors.New("tileset: no tiles")
	ErrMissingSockets    = errors.New("tileset: tile does not declare a socket for every direction")
	ErrSocketsOutOfRange = errors.New("tileset: edge metadata refers to an unknown tile")
	ErrInvalidWeight     = errors.New("tileset: weight must be a positive finite number")
)

// defaultWeight is used for tiles that declare no weight
const defaultWeight = 1.0

// Builder collects tile definitions and socket pairing rules and produces an
// immutable Tileset.
type Builder struct {
	defs         []Definition
	pairs        map[Socket]*mapset.Set[Socket]
	sortByVisual bool
}

// NewBuilder creates an empty builder
func NewBuilder() *Builder {
	return &Builder{
		pairs: make(map[Socket]*mapset.Set[Socket]),
	}
}

// Add appends tile definitions in catalog order
func (b *Builder) Add(defs ...Definition) *Builder {
	b.defs = append(b.defs, defs...)
	return b
}

// Pair declares that sockets x and y connect to each other. The rule is
// symmetric. Equal sockets always connect and need no declaration.
func (b *Builder) Pair(x, y Socket) *Builder {
	b.pairSet(x).Put(y)
	b.pairSet(y).Put(x)
	return b
}

// SortByVisual orders tiles by visual reference before indexing, so the
// catalog order does not depend on how the input was enumerated.
func (b *Builder) SortByVisual() *Builder {
	b.sortByVisual = true
	return b
}

func (b *Builder) pairSet(s Socket) *mapset.Set[Socket] {
	set, ok := b.pairs[s]
	if !ok {
		ns := mapset.New[Socket]()
		set = &ns
		b.pairs[s] = set
	}
	return set
}

// matches reports whether two facing sockets connect
func (b *Builder) matches(x, y Socket) bool {
	if x == y {
		return true
	}
	set, ok := b.pairs[x]
	return ok && set.Has(y)
}

// Build validates the definitions and precomputes the compatibility table.
// The returned warnings describe edges that can never have a neighbor; they
// limit achievable layouts but are not errors.
func (b *Builder) Build() (*Tileset, []Warning, error) {
	if len(b.defs) == 0 {
		return nil, nil, ErrEmpty
	}

	defs := slices.Clone(b.defs)
	if b.sortByVisual {
		slices.SortStableFunc(defs, func(x, y Definition) int {
			return cmp.Compare(x.Visual, y.Visual)
		})
	}

	ts := &Tileset{tiles: make([]Tile, len(defs))}
	for i, def := range defs {
		for _, dir := range world.AllDirections() {
			if def.Sockets[dir] == "" {
				return nil, nil, fmt.Errorf("%w: tile %d (%s) has no %s socket", ErrMissingSockets, i, def.Visual, dir)
			}
		}
		weight, err := normalizeWeight(def.Weight)
		if err != nil {
			return nil, nil, fmt.Errorf("tile %d (%s): %w", i, def.Visual, err)
		}
		ts.tiles[i] = Tile{
			Index:   i,
			Visual:  def.Visual,
			Sockets: def.Sockets,
			Weight:  weight,
		}
	}

	n := uint(len(ts.tiles))
	for _, dir := range world.AllDirections() {
		row := make([]*bitset.BitSet, n)
		for ai, a := range ts.tiles {
			set := bitset.New(n)
			for bi, other := range ts.tiles {
				if b.matches(a.Socket(dir), other.Socket(dir.Opposite())) {
					set.Set(uint(bi))
				}
			}
			row[ai] = set
		}
		ts.compat[dir] = row
	}

	return ts, collectWarnings(ts), nil
}

func normalizeWeight(w float64) (float64, error) {
	switch {
	case w == 0:
		return defaultWeight, nil
	case w < 0 || math.IsNaN(w) || math.IsInf(w, 0):
		return 0, fmt.Errorf("%w: got %v", ErrInvalidWeight, w)
	default:
		return w, nil
	}
}

// Build turns a visual catalog plus per-tile edge metadata into a Tileset.
// edges maps tile index to its four sockets; weights is optional and missing
// entries mean uniform weight.
func Build(visuals []string, edges map[int]Sockets, weights map[int]float64) (*Tileset, []Warning, error) {
	for i := range edges {
		if i < 0 || i >= len(visuals) {
			return nil, nil, fmt.Errorf("%w: index %d, catalog has %d tiles", ErrSocketsOutOfRange, i, len(visuals))
		}
	}
	for i := range weights {
		if i < 0 || i >= len(visuals) {
			return nil, nil, fmt.Errorf("%w: weight for index %d, catalog has %d tiles", ErrSocketsOutOfRange, i, len(visuals))
		}
	}

	b := NewBuilder()
	for i, visual := range visuals {
		sockets, ok := edges[i]
		if !ok {
			return nil, nil, fmt.Errorf("%w: tile %d (%s) has no edge metadata", ErrMissingSockets, i, visual)
		}
		b.Add(Definition{Visual: visual, Sockets: sockets, Weight: weights[i]})
	}
	return b.Build()
}
