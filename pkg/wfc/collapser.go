package wfc

// State is the collapser's state machine position
type State int

const (
	InProgress State = iota
	Solved
	Contradiction
)

func (s State) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Solved:
		return "solved"
	case Contradiction:
		return "contradiction"
	default:
		return "unknown"
	}
}

// TieBreak selects among unresolved cells sharing the minimal entropy
type TieBreak int

const (
	// TieBreakLowestIndex takes the lowest row-major index. It consumes no
	// randomness.
	TieBreakLowestIndex TieBreak = iota
	// TieBreakRandom draws one of the tied cells from the RNG.
	TieBreakRandom
)

func (t TieBreak) String() string {
	switch t {
	case TieBreakLowestIndex:
		return "lowest"
	case TieBreakRandom:
		return "random"
	default:
		return "unknown"
	}
}

// ParseTieBreak parses the names produced by TieBreak.String
func ParseTieBreak(s string) (TieBreak, bool) {
	switch s {
	case "lowest", "":
		return TieBreakLowestIndex, true
	case "random":
		return TieBreakRandom, true
	default:
		return TieBreakLowestIndex, false
	}
}

// Rand is the randomness the collapser consumes. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Collapser drives one attempt: pick the lowest-entropy cell, commit it to a
// weighted random candidate, propagate, repeat.
type Collapser struct {
	grid     *Grid
	prop     *Propagator
	rng      Rand
	tieBreak TieBreak

	state         State
	steps         int
	contradiction int
	ties          []int
}

// NewCollapser creates a collapser over grid. The rng is owned by the caller
// and must not be shared with a concurrently running collapser.
func NewCollapser(grid *Grid, rng Rand, tieBreak TieBreak) *Collapser {
	return &Collapser{
		grid:          grid,
		prop:          NewPropagator(grid),
		rng:           rng,
		tieBreak:      tieBreak,
		contradiction: -1,
	}
}

// State returns the current state
func (c *Collapser) State() State {
	return c.state
}

// Steps returns how many cells were committed so far
func (c *Collapser) Steps() int {
	return c.steps
}

// ContradictionCell returns the cell that emptied, or -1
func (c *Collapser) ContradictionCell() int {
	return c.contradiction
}

// Grid returns the grid being collapsed
func (c *Collapser) Grid() *Grid {
	return c.grid
}

// Step performs one select/commit/propagate cycle. Terminal states are
// sticky.
func (c *Collapser) Step() State {
	if c.state != InProgress {
		return c.state
	}

	cell, ok := c.selectCell()
	if c.state == Contradiction {
		return c.state
	}
	if !ok {
		c.state = Solved
		return c.state
	}

	c.grid.collapse(cell, c.pick(cell))
	c.steps++

	if res := c.prop.Propagate(cell); res.Contradiction {
		c.state = Contradiction
		c.contradiction = res.Cell
	}
	return c.state
}

// Run steps until Solved or Contradiction
func (c *Collapser) Run() State {
	for c.Step() == InProgress {
	}
	return c.state
}

// selectCell finds the unresolved cell with the fewest candidates. An empty
// cell moves the collapser to Contradiction.
func (c *Collapser) selectCell() (int, bool) {
	best := -1
	bestCount := 0
	c.ties = c.ties[:0]

	for i := range c.grid.cells {
		n := c.grid.cells[i].Count()
		switch {
		case n == 0:
			c.state = Contradiction
			c.contradiction = i
			return 0, false
		case n == 1:
			continue
		case best < 0 || n < bestCount:
			best, bestCount = i, n
			c.ties = append(c.ties[:0], i)
		case n == bestCount:
			c.ties = append(c.ties, i)
		}
	}

	if best < 0 {
		return 0, false
	}
	if c.tieBreak == TieBreakRandom && len(c.ties) > 1 {
		return c.ties[c.rng.Intn(len(c.ties))], true
	}
	return best, true
}

// pick draws one candidate of cell, weighted by tile weight
func (c *Collapser) pick(cell int) int {
	set := c.grid.cells[cell].candidates
	ts := c.grid.tiles

	var total float64
	for t, ok := set.NextSet(0); ok; t, ok = set.NextSet(t + 1) {
		total += ts.Weight(int(t))
	}

	r := c.rng.Float64() * total
	last := 0
	for t, ok := set.NextSet(0); ok; t, ok = set.NextSet(t + 1) {
		w := ts.Weight(int(t))
		if r < w {
			return int(t)
		}
		r -= w
		last = int(t)
	}
	// Rounding can leave r marginally above the final weight
	return last
}
