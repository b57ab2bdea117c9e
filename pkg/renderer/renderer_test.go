package renderer

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"tilecollapse/pkg/tileset"
	"tilecollapse/pkg/wfc"
)

func solvedStripes(t *testing.T) *wfc.Result {
	t.Helper()
	ts, _, err := tileset.NewBuilder().Add(
		tileset.Definition{Visual: "wall", Sockets: tileset.Sockets{"w", "x", "w", "x"}},
		tileset.Definition{Visual: "floor", Sockets: tileset.Sockets{"f", "x", "f", "x"}},
	).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	opts := wfc.DefaultOptions(4, 2)
	opts.Pins = []wfc.Pin{{Row: 0, Col: 0, Tile: 0}, {Row: 0, Col: 1, Tile: 1}, {Row: 0, Col: 2, Tile: 0}, {Row: 0, Col: 3, Tile: 1}}
	s, err := wfc.New(ts, opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	res, err := s.Solve(t.Context(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	return res
}

func TestPalette_GlyphFallback(t *testing.T) {
	pal := Palette{"wall": {Symbol: "#"}}
	if got := pal.Glyph("wall").Symbol; got != "#" {
		t.Errorf("Glyph(wall) = %q, want #", got)
	}
	if got := pal.Glyph("floor").Symbol; got != "f" {
		t.Errorf("Glyph(floor) = %q, want f", got)
	}
	if got := pal.Glyph("").Symbol; got != "?" {
		t.Errorf("Glyph(\"\") = %q, want ?", got)
	}
}

func TestRows_ColumnsFollowPins(t *testing.T) {
	res := solvedStripes(t)
	pal := Palette{"wall": {Symbol: "#"}, "floor": {Symbol: "."}}

	got := Rows(res, pal)
	want := []string{"#.#.", "#.#."}
	if len(got) != len(want) {
		t.Fatalf("len(Rows) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPlain_Render(t *testing.T) {
	res := solvedStripes(t)
	var buf bytes.Buffer
	p := NewPlain(&buf)
	if p.Name() != "plain" {
		t.Errorf("Name() = %q, want plain", p.Name())
	}
	if err := p.Render(res, Palette{"wall": {Symbol: "#"}, "floor": {Symbol: "."}}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "#.#.\n#.#.\n") {
		t.Errorf("Render() output starts %q, want the two map rows", out)
	}
	for _, entry := range []string{"# = wall", ". = floor"} {
		if !strings.Contains(out, entry) {
			t.Errorf("Render() output missing legend entry %q", entry)
		}
	}
}
