package fleas

import (
	"fmt"

	"fleas/pkg/core"
)

// Result is the outcome of one trial.
type Result struct {
	// Empty is the number of cells nobody ended up on.
	Empty int
	// Counts holds the number of fleas on each cell, indexed like the grid.
	Counts []int
}

// Walk is the flea population of a single trial. Positions are double
// buffered: a ring reads every flea's old cell from cur and writes the new
// one to nxt before the two are swapped.
type Walk struct {
	nb  *Neighbors
	cur []int
	nxt []int
}

// NewWalk allocates a population for the table's grid with one flea per cell.
func NewWalk(nb *Neighbors) *Walk {
	w := &Walk{nb: nb, cur: make([]int, nb.Cells()), nxt: make([]int, nb.Cells())}
	w.Reset()
	return w
}

// Reset places flea i back on cell i.
func (w *Walk) Reset() {
	for i := range w.cur {
		w.cur[i] = i
	}
}

// Ring moves every flea to a uniformly chosen neighbor of its current cell,
// drawing exactly one value per flea in flea order. A flea on a cell without
// neighbors (a 1x1 grid) stays put and draws nothing.
func (w *Walk) Ring(rng core.Chooser) {
	for i, pos := range w.cur {
		opts := w.nb.adj[pos]
		if len(opts) == 0 {
			w.nxt[i] = pos
			continue
		}
		w.nxt[i] = opts[rng.IntN(len(opts))]
	}
	w.cur, w.nxt = w.nxt, w.cur
}

// Positions returns the current cell of every flea. The slice is overwritten
// by the next Ring or Reset.
func (w *Walk) Positions() []int { return w.cur }

// Tally writes the occupancy of every cell into counts, which must hold one
// entry per cell, and returns the number of empty cells.
func (w *Walk) Tally(counts []int) int {
	for i := range counts {
		counts[i] = 0
	}
	for _, pos := range w.cur {
		counts[pos]++
	}
	empty := 0
	for _, c := range counts {
		if c == 0 {
			empty++
		}
	}
	return empty
}

// Simulator runs trials on a fixed topology, reusing its buffers between them.
type Simulator struct {
	walk   *Walk
	counts []int
}

// NewSimulator prepares a simulator for the given neighbor table.
func NewSimulator(nb *Neighbors) *Simulator {
	return &Simulator{walk: NewWalk(nb), counts: make([]int, nb.Cells())}
}

// Run performs one trial of the given number of rings. The returned Counts
// slice belongs to the simulator and is overwritten by the next Run.
func (s *Simulator) Run(steps int, rng core.Chooser) (Result, error) {
	if steps < 0 {
		return Result{}, fmt.Errorf("steps %d: %w", steps, ErrInvalidSteps)
	}
	s.walk.Reset()
	for i := 0; i < steps; i++ {
		s.walk.Ring(rng)
	}
	empty := s.walk.Tally(s.counts)
	return Result{Empty: empty, Counts: s.counts}, nil
}

// RunTrial performs a single trial with freshly allocated buffers.
func RunTrial(nb *Neighbors, steps int, rng core.Chooser) (Result, error) {
	if nb == nil {
		return Result{}, ErrTopologyMismatch
	}
	return NewSimulator(nb).Run(steps, rng)
}
