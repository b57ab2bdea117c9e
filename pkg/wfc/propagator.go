package wfc

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/zyedidia/generic/queue"

	"tilecollapse/pkg/engine/world"
)

// PropagationResult describes the outcome of one propagation run
type PropagationResult struct {
	// Contradiction is true when some cell's candidate set became empty.
	// Cell is then the first such cell found.
	Contradiction bool
	Cell          int

	Processed int // cells popped from the worklist
	Removed   int // candidates removed across all cells
}

// Propagator relaxes neighbor constraints breadth-first until a fixed point
// or a contradiction. It keeps its worklist between runs to avoid allocating
// in the collapse loop; one Propagator serves one Grid.
type Propagator struct {
	grid    *Grid
	work    *queue.Queue[int]
	pending []bool
	allowed *bitset.BitSet
}

// NewPropagator creates a propagator bound to grid
func NewPropagator(grid *Grid) *Propagator {
	return &Propagator{
		grid:    grid,
		work:    queue.New[int](),
		pending: make([]bool, grid.Len()),
		allowed: grid.tiles.NewSet(),
	}
}

// Propagate re-checks the neighbors of origin and everything that shrinks
// as a consequence. On contradiction the grid is left as is for the caller
// to discard.
func (p *Propagator) Propagate(origin int) PropagationResult {
	p.push(origin)
	return p.drain()
}

// PropagateAll enqueues every cell, bringing an arbitrary grid to its fixed
// point. On a grid already at a fixed point it changes nothing.
func (p *Propagator) PropagateAll() PropagationResult {
	for i := 0; i < p.grid.Len(); i++ {
		p.push(i)
	}
	return p.drain()
}

func (p *Propagator) push(i int) {
	if p.pending[i] {
		return
	}
	p.pending[i] = true
	p.work.Enqueue(i)
}

func (p *Propagator) drain() PropagationResult {
	var res PropagationResult
	g := p.grid

	for !p.work.Empty() {
		c := p.work.Dequeue()
		p.pending[c] = false
		res.Processed++

		current := g.cells[c].candidates
		if current.None() {
			p.abort()
			res.Contradiction = true
			res.Cell = c
			return res
		}

		for _, dir := range world.AllDirections() {
			n, ok := g.layout.Neighbor(c, dir)
			if !ok {
				continue
			}

			p.allowed.ClearAll()
			g.tiles.UnionAllowed(p.allowed, current, dir)

			removed := g.restrict(n, p.allowed)
			if removed == 0 {
				continue
			}
			res.Removed += removed

			if g.cells[n].candidates.None() {
				p.abort()
				res.Contradiction = true
				res.Cell = n
				return res
			}
			p.push(n)
		}
	}
	return res
}

// abort empties the worklist so the propagator can be reused
func (p *Propagator) abort() {
	for !p.work.Empty() {
		p.pending[p.work.Dequeue()] = false
	}
}
