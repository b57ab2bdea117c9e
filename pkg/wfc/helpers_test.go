package wfc

import (
	"fmt"
	"testing"

	"tilecollapse/pkg/tileset"
)

// fakeRand returns scripted values so weighted picks and tie-breaks can be
// asserted exactly.
type fakeRand struct {
	floats []float64
	ints   []int
}

func (f *fakeRand) Float64() float64 {
	if len(f.floats) == 0 {
		return 0
	}
	v := f.floats[0]
	f.floats = f.floats[1:]
	return v
}

func (f *fakeRand) Intn(n int) int {
	if len(f.ints) == 0 {
		return 0
	}
	v := f.ints[0] % n
	f.ints = f.ints[1:]
	return v
}

func mustBuild(t *testing.T, defs ...tileset.Definition) *tileset.Tileset {
	t.Helper()
	ts, _, err := tileset.NewBuilder().Add(defs...).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return ts
}

// twoColours has tiles that only sit next to themselves.
func twoColours(t *testing.T) *tileset.Tileset {
	return mustBuild(t,
		tileset.Definition{Visual: "A", Sockets: tileset.Uniform("a")},
		tileset.Definition{Visual: "B", Sockets: tileset.Uniform("b")},
	)
}

// interchangeable has two tiles that fit anywhere next to each other.
func interchangeable(t *testing.T) *tileset.Tileset {
	return mustBuild(t,
		tileset.Definition{Visual: "A", Sockets: tileset.Uniform("x")},
		tileset.Definition{Visual: "B", Sockets: tileset.Uniform("x")},
	)
}

// completeRoads has a tile for every road/no-road combination of the four
// edges, so any neighborhood is satisfiable and attempts never contradict.
func completeRoads(t *testing.T) *tileset.Tileset {
	var defs []tileset.Definition
	for mask := 0; mask < 16; mask++ {
		var s tileset.Sockets
		for bit := 0; bit < 4; bit++ {
			s[bit] = "0"
			if mask&(1<<bit) != 0 {
				s[bit] = "1"
			}
		}
		weight := 1.0
		if mask == 0 {
			weight = 6
		}
		defs = append(defs, tileset.Definition{Visual: fmt.Sprintf("road_%04b", mask), Sockets: s, Weight: weight})
	}
	return mustBuild(t, defs...)
}

// demoRoads is the classic road demo: straights, corners and empty ground
// but no dead ends or junctions, so attempts can contradict.
func demoRoads(t *testing.T) *tileset.Tileset {
	return mustBuild(t,
		tileset.Definition{Visual: "Empty", Sockets: tileset.Sockets{"0", "0", "0", "0"}, Weight: 4},
		tileset.Definition{Visual: "Road_NS", Sockets: tileset.Sockets{"1", "0", "1", "0"}, Weight: 2},
		tileset.Definition{Visual: "Road_EW", Sockets: tileset.Sockets{"0", "1", "0", "1"}, Weight: 3},
		tileset.Definition{Visual: "Corner_NE", Sockets: tileset.Sockets{"1", "1", "0", "0"}, Weight: 3},
		tileset.Definition{Visual: "Corner_ES", Sockets: tileset.Sockets{"0", "1", "1", "0"}, Weight: 1},
		tileset.Definition{Visual: "Corner_SW", Sockets: tileset.Sockets{"0", "0", "1", "1"}, Weight: 1},
		tileset.Definition{Visual: "Corner_WN", Sockets: tileset.Sockets{"1", "0", "0", "1"}, Weight: 3},
	)
}

func candidatesOf(g *Grid) [][]int {
	out := make([][]int, g.Len())
	for i := range out {
		out[i] = g.Cell(i).Candidates()
	}
	return out
}

func equalCandidates(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}
