package tileset

import (
	"errors"
	"testing"

	"tilecollapse/pkg/engine/world"
)

// roadTiles is a small road network: "r" edges carry a road, "g" edges are grass.
func roadTiles() []Definition {
	return []Definition{
		{Visual: "grass", Sockets: Uniform("g"), Weight: 4},
		{Visual: "road_ns", Sockets: Sockets{"r", "g", "r", "g"}, Weight: 2},
		{Visual: "road_ew", Sockets: Sockets{"g", "r", "g", "r"}},
		{Visual: "corner_ne", Sockets: Sockets{"r", "r", "g", "g"}},
	}
}

func TestBuild_EmptyCatalog(t *testing.T) {
	_, _, err := NewBuilder().Build()
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("Build() error = %v, want ErrEmpty", err)
	}
}

func TestBuild_MissingSocket(t *testing.T) {
	_, _, err := NewBuilder().Add(Definition{Visual: "half", Sockets: Sockets{"a", "a", "", "a"}}).Build()
	if !errors.Is(err, ErrMissingSockets) {
		t.Errorf("Build() error = %v, want ErrMissingSockets", err)
	}
}

func TestBuild_InvalidWeight(t *testing.T) {
	_, _, err := NewBuilder().Add(Definition{Visual: "neg", Sockets: Uniform("a"), Weight: -1}).Build()
	if !errors.Is(err, ErrInvalidWeight) {
		t.Errorf("Build() error = %v, want ErrInvalidWeight", err)
	}
}

func TestBuild_DefaultWeightIsUniform(t *testing.T) {
	ts, _, err := NewBuilder().Add(roadTiles()...).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if ts.Weight(2) != 1 {
		t.Errorf("Weight(road_ew) = %v, want 1", ts.Weight(2))
	}
	if ts.Weight(0) != 4 {
		t.Errorf("Weight(grass) = %v, want 4", ts.Weight(0))
	}
}

func TestCompatible_FollowsSocketEquality(t *testing.T) {
	ts, _, err := NewBuilder().Add(roadTiles()...).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	// road_ns north edge "r" faces road_ns south edge "r".
	if !ts.Compatible(1, world.North, 1) {
		t.Error("road_ns should accept road_ns to its north")
	}
	// road_ns east edge "g" faces road_ew west edge "r".
	if ts.Compatible(1, world.East, 2) {
		t.Error("road_ns should not accept road_ew to its east")
	}
	if !ts.Compatible(0, world.East, 1) {
		t.Error("grass should accept road_ns to its east (g faces g)")
	}
	if ts.Compatible(0, world.Direction(7), 0) {
		t.Error("Compatible with invalid direction should be false")
	}
	if ts.Compatible(0, world.North, 99) {
		t.Error("Compatible with unknown tile should be false")
	}
}

func TestCompatible_SymmetricUnderDirectionInversion(t *testing.T) {
	ts, _, err := NewBuilder().Add(roadTiles()...).Pair("r", "x").Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	for a := 0; a < ts.Len(); a++ {
		for b := 0; b < ts.Len(); b++ {
			for _, dir := range world.AllDirections() {
				if ts.Compatible(a, dir, b) != ts.Compatible(b, dir.Opposite(), a) {
					t.Errorf("Compatible(%d,%v,%d) != Compatible(%d,%v,%d)", a, dir, b, b, dir.Opposite(), a)
				}
			}
		}
	}
}

func TestPair_ConnectsDistinctSockets(t *testing.T) {
	ts, _, err := NewBuilder().
		Add(Definition{Visual: "plug", Sockets: Sockets{"x", "male", "x", "x"}}).
		Add(Definition{Visual: "jack", Sockets: Sockets{"x", "x", "x", "female"}}).
		Pair("male", "female").
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !ts.Compatible(0, world.East, 1) {
		t.Error("plug should accept jack to its east via declared pair")
	}
	if !ts.Compatible(1, world.West, 0) {
		t.Error("jack should accept plug to its west via declared pair")
	}
}

func TestBuild_WarnsOnUnpairedSocket(t *testing.T) {
	_, warnings, err := NewBuilder().
		Add(Definition{Visual: "lonely", Sockets: Sockets{"a", "b", "c", "d"}}).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(warnings) != 4 {
		t.Fatalf("len(warnings) = %d, want 4 (no edge of lonely has a partner)", len(warnings))
	}
	if warnings[0].Direction != world.North || warnings[0].Socket != "a" {
		t.Errorf("warnings[0] = %+v, want North socket a", warnings[0])
	}
	if warnings[0].String() == "" {
		t.Error("Warning.String() is empty")
	}
}

func TestBuild_NoWarningsForClosedSet(t *testing.T) {
	_, warnings, err := NewBuilder().Add(roadTiles()...).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
}

func TestSortByVisual(t *testing.T) {
	ts, _, err := NewBuilder().Add(roadTiles()...).SortByVisual().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	want := []string{"corner_ne", "grass", "road_ew", "road_ns"}
	for i, v := range want {
		if ts.Visual(i) != v {
			t.Errorf("Visual(%d) = %q, want %q", i, ts.Visual(i), v)
		}
		if ts.Tile(i).Index != i {
			t.Errorf("Tile(%d).Index = %d, want %d", i, ts.Tile(i).Index, i)
		}
	}
	if i, ok := ts.IndexOf("grass"); !ok || i != 1 {
		t.Errorf("IndexOf(grass) = %d, %v, want 1, true", i, ok)
	}
}

func TestBuildFromMetadata(t *testing.T) {
	visuals := []string{"A", "B"}
	edges := map[int]Sockets{0: Uniform("x"), 1: Uniform("x")}
	ts, _, err := Build(visuals, edges, map[int]float64{1: 3})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if ts.Len() != 2 || ts.Weight(0) != 1 || ts.Weight(1) != 3 {
		t.Errorf("unexpected tileset: len=%d weights=%v,%v", ts.Len(), ts.Weight(0), ts.Weight(1))
	}

	_, _, err = Build(visuals, map[int]Sockets{0: Uniform("x")}, nil)
	if !errors.Is(err, ErrMissingSockets) {
		t.Errorf("Build() with missing metadata error = %v, want ErrMissingSockets", err)
	}
	_, _, err = Build(visuals, map[int]Sockets{0: Uniform("x"), 1: Uniform("x"), 5: Uniform("x")}, nil)
	if !errors.Is(err, ErrSocketsOutOfRange) {
		t.Errorf("Build() with stray metadata error = %v, want ErrSocketsOutOfRange", err)
	}
}

func TestUnionAllowed(t *testing.T) {
	ts, _, err := NewBuilder().Add(roadTiles()...).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	from := ts.NewSet()
	from.Set(1) // road_ns: north edge "r"
	dst := ts.NewSet()
	ts.UnionAllowed(dst, from, world.North)
	// Tiles with "r" on their south edge: road_ns only.
	if dst.Count() != 1 || !dst.Test(1) {
		t.Errorf("UnionAllowed north of road_ns = %v, want {1}", dst)
	}
	if got := ts.FullSet().Count(); got != uint(ts.Len()) {
		t.Errorf("FullSet().Count() = %d, want %d", got, ts.Len())
	}
}

func TestTile_Socket(t *testing.T) {
	ts, _, err := NewBuilder().Add(roadTiles()...).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	roadNS := ts.Tile(1)
	if got := roadNS.Socket(world.South); got != "r" {
		t.Errorf("Socket(South) = %q, want r", got)
	}
	if got := roadNS.Socket(world.East); got != "g" {
		t.Errorf("Socket(East) = %q, want g", got)
	}
	if got := roadNS.Socket(world.Direction(7)); got != "" {
		t.Errorf("Socket(invalid) = %q, want empty", got)
	}
}
