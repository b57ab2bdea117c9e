package wfc

import (
	"math/rand"
	"testing"

	"tilecollapse/pkg/tileset"
)

func TestCollapser_SelectsLowestEntropyThenLowestIndex(t *testing.T) {
	g, err := NewGrid(interchangeable(t), 3, 2)
	if err != nil {
		t.Fatalf("NewGrid() error = %v", err)
	}
	c := NewCollapser(g, &fakeRand{}, TieBreakLowestIndex)

	cell, ok := c.selectCell()
	if !ok || cell != 0 {
		t.Errorf("selectCell() = %d, %v, want 0, true (all tied)", cell, ok)
	}

	// Narrow cell 4 so it has strictly fewer candidates than the rest.
	ts3 := mustBuild(t,
		tileset.Definition{Visual: "A", Sockets: tileset.Uniform("x")},
		tileset.Definition{Visual: "B", Sockets: tileset.Uniform("x")},
		tileset.Definition{Visual: "C", Sockets: tileset.Uniform("x")},
	)
	g3, err := NewGrid(ts3, 3, 2)
	if err != nil {
		t.Fatalf("NewGrid() error = %v", err)
	}
	allowed := ts3.NewSet()
	allowed.Set(0)
	allowed.Set(2)
	g3.restrict(4, allowed)
	c3 := NewCollapser(g3, &fakeRand{}, TieBreakLowestIndex)
	if cell, ok := c3.selectCell(); !ok || cell != 4 {
		t.Errorf("selectCell() = %d, %v, want 4, true", cell, ok)
	}
}

func TestCollapser_RandomTieBreakUsesRNG(t *testing.T) {
	g, err := NewGrid(interchangeable(t), 2, 2)
	if err != nil {
		t.Fatalf("NewGrid() error = %v", err)
	}
	c := NewCollapser(g, &fakeRand{ints: []int{2}}, TieBreakRandom)
	if cell, ok := c.selectCell(); !ok || cell != 2 {
		t.Errorf("selectCell() = %d, %v, want 2, true", cell, ok)
	}
}

func TestCollapser_WeightedPick(t *testing.T) {
	ts := mustBuild(t,
		tileset.Definition{Visual: "A", Sockets: tileset.Uniform("x"), Weight: 1},
		tileset.Definition{Visual: "B", Sockets: tileset.Uniform("x"), Weight: 3},
	)
	cases := []struct {
		roll float64
		want int
	}{
		{0.0, 0},
		{0.2, 0},  // 0.8 of 4 falls in A's share
		{0.25, 1}, // 1.0 is the boundary into B
		{0.5, 1},
		{0.999, 1},
	}
	for _, tc := range cases {
		g, err := NewGrid(ts, 1, 1)
		if err != nil {
			t.Fatalf("NewGrid() error = %v", err)
		}
		c := NewCollapser(g, &fakeRand{floats: []float64{tc.roll}}, TieBreakLowestIndex)
		if got := c.pick(0); got != tc.want {
			t.Errorf("pick with roll %v = %d, want %d", tc.roll, got, tc.want)
		}
	}
}

func TestCollapser_SingleTileSolvesWithoutSteps(t *testing.T) {
	ts := mustBuild(t, tileset.Definition{Visual: "only", Sockets: tileset.Uniform("s")})
	g, err := NewGrid(ts, 7, 5)
	if err != nil {
		t.Fatalf("NewGrid() error = %v", err)
	}
	c := NewCollapser(g, rand.New(rand.NewSource(1)), TieBreakLowestIndex)
	if state := c.Run(); state != Solved {
		t.Fatalf("Run() = %v, want solved", state)
	}
	if c.Steps() != 0 {
		t.Errorf("Steps() = %d, want 0", c.Steps())
	}
}

func TestCollapser_StepStateMachine(t *testing.T) {
	g, err := NewGrid(interchangeable(t), 2, 1)
	if err != nil {
		t.Fatalf("NewGrid() error = %v", err)
	}
	c := NewCollapser(g, rand.New(rand.NewSource(3)), TieBreakLowestIndex)

	if s := c.Step(); s != InProgress {
		t.Fatalf("first Step() = %v, want in progress", s)
	}
	if s := c.Step(); s != InProgress {
		t.Fatalf("second Step() = %v, want in progress", s)
	}
	if s := c.Step(); s != Solved {
		t.Fatalf("third Step() = %v, want solved", s)
	}
	if s := c.Step(); s != Solved {
		t.Errorf("Step() after Solved = %v, want solved (terminal)", s)
	}
	if c.Steps() != 2 {
		t.Errorf("Steps() = %d, want 2", c.Steps())
	}
}

func TestCollapser_ContradictionIsTerminal(t *testing.T) {
	ts := mustBuild(t,
		tileset.Definition{Visual: "A", Sockets: tileset.Sockets{"a1", "a2", "a3", "a4"}},
		tileset.Definition{Visual: "B", Sockets: tileset.Sockets{"b1", "b2", "b3", "b4"}},
	)
	g, err := NewGrid(ts, 2, 1)
	if err != nil {
		t.Fatalf("NewGrid() error = %v", err)
	}
	c := NewCollapser(g, rand.New(rand.NewSource(1)), TieBreakLowestIndex)
	if s := c.Run(); s != Contradiction {
		t.Fatalf("Run() = %v, want contradiction", s)
	}
	if c.ContradictionCell() != 1 {
		t.Errorf("ContradictionCell() = %d, want 1", c.ContradictionCell())
	}
	if s := c.Step(); s != Contradiction {
		t.Errorf("Step() after contradiction = %v, want contradiction", s)
	}
}

func TestParseTieBreak(t *testing.T) {
	for _, tb := range []TieBreak{TieBreakLowestIndex, TieBreakRandom} {
		got, ok := ParseTieBreak(tb.String())
		if !ok || got != tb {
			t.Errorf("ParseTieBreak(%q) = %v, %v", tb.String(), got, ok)
		}
	}
	if _, ok := ParseTieBreak("median"); ok {
		t.Error("ParseTieBreak(\"median\") ok = true, want false")
	}
}
