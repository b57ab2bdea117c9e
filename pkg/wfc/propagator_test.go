package wfc

import (
	"testing"

	"tilecollapse/pkg/tileset"
)

func TestPropagate_SpreadsBreadthFirst(t *testing.T) {
	g, err := NewGrid(twoColours(t), 3, 1)
	if err != nil {
		t.Fatalf("NewGrid() error = %v", err)
	}
	p := NewPropagator(g)

	g.collapse(0, 0)
	res := p.Propagate(0)
	if res.Contradiction {
		t.Fatalf("Propagate() contradiction at %d, want none", res.Cell)
	}
	for i := 0; i < 3; i++ {
		if tile, ok := g.Cell(i).Tile(); !ok || tile != 0 {
			t.Errorf("cell %d Tile() = %d, %v, want 0, true", i, tile, ok)
		}
	}
	if res.Removed != 2 {
		t.Errorf("Removed = %d, want 2", res.Removed)
	}
	if res.Processed != 3 {
		t.Errorf("Processed = %d, want 3", res.Processed)
	}
}

func TestPropagate_ReportsContradiction(t *testing.T) {
	g, err := NewGrid(twoColours(t), 3, 1)
	if err != nil {
		t.Fatalf("NewGrid() error = %v", err)
	}
	p := NewPropagator(g)

	g.collapse(0, 0)
	g.collapse(2, 1)
	res := p.Propagate(0)
	if !res.Contradiction {
		t.Fatal("Propagate() contradiction = false, want true")
	}
	if res.Cell != 2 {
		t.Errorf("contradiction cell = %d, want 2", res.Cell)
	}

	if !p.work.Empty() {
		t.Error("worklist not empty after contradiction")
	}
	for i, pending := range p.pending {
		if pending {
			t.Errorf("cell %d still marked pending after contradiction", i)
		}
	}
}

func TestPropagate_EmptyOriginIsContradiction(t *testing.T) {
	g, err := NewGrid(twoColours(t), 2, 1)
	if err != nil {
		t.Fatalf("NewGrid() error = %v", err)
	}
	g.restrict(1, g.tiles.NewSet())
	res := NewPropagator(g).Propagate(1)
	if !res.Contradiction || res.Cell != 1 {
		t.Errorf("Propagate() = %+v, want contradiction at 1", res)
	}
}

func TestPropagateAll_RemovesDeadEdges(t *testing.T) {
	// D can never have a west neighbor: its west socket pairs with nothing.
	ts := mustBuild(t,
		tileset.Definition{Visual: "A", Sockets: tileset.Uniform("a")},
		tileset.Definition{Visual: "D", Sockets: tileset.Sockets{"a", "a", "a", "z"}},
	)
	g, err := NewGrid(ts, 2, 1)
	if err != nil {
		t.Fatalf("NewGrid() error = %v", err)
	}
	res := NewPropagator(g).PropagateAll()
	if res.Contradiction {
		t.Fatalf("PropagateAll() contradiction at %d", res.Cell)
	}
	if got := g.Cell(0).Count(); got != 2 {
		t.Errorf("cell 0 has %d candidates, want 2 (no west neighbor to constrain it)", got)
	}
	if g.Cell(1).Has(1) {
		t.Error("cell 1 still allows D, whose west edge has no partner")
	}
	if res.Removed != 1 {
		t.Errorf("Removed = %d, want 1", res.Removed)
	}
}

func TestPropagate_IdempotentAtFixedPoint(t *testing.T) {
	g, err := NewGrid(completeRoads(t), 5, 4)
	if err != nil {
		t.Fatalf("NewGrid() error = %v", err)
	}
	p := NewPropagator(g)

	g.collapse(7, 5)
	if res := p.Propagate(7); res.Contradiction {
		t.Fatalf("Propagate() contradiction at %d", res.Cell)
	}
	// cell 12 sits south of 7 and must keep a north road
	g.collapse(12, 5)
	if res := p.Propagate(12); res.Contradiction {
		t.Fatalf("Propagate() contradiction at %d", res.Cell)
	}
	before := candidatesOf(g)

	res := p.PropagateAll()
	if res.Contradiction || res.Removed != 0 {
		t.Errorf("PropagateAll() at fixed point = %+v, want no removals", res)
	}
	if !equalCandidates(before, candidatesOf(g)) {
		t.Error("PropagateAll() changed candidate sets at a fixed point")
	}

	res = p.Propagate(7)
	if res.Removed != 0 {
		t.Errorf("second Propagate(7) removed %d candidates, want 0", res.Removed)
	}
}
