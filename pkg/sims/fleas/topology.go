package fleas

import "fmt"

// Neighbors maps every cell index of a side x side grid to the indices of its
// orthogonally adjacent cells. Edges do not wrap. A table is immutable once
// built and may be shared by any number of trials.
type Neighbors struct {
	side int
	adj  [][]int
}

// BuildNeighbors computes the neighbor table for a grid with the given side
// length. Cells are indexed row*side + col; each list is ordered up, down,
// left, right with out-of-bounds directions omitted.
func BuildNeighbors(side int) (*Neighbors, error) {
	if side <= 0 {
		return nil, fmt.Errorf("size %d: %w", side, ErrInvalidSize)
	}
	cells := side * side
	backing := make([]int, 0, 4*cells)
	adj := make([][]int, cells)
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			start := len(backing)
			if r > 0 {
				backing = append(backing, (r-1)*side+c)
			}
			if r < side-1 {
				backing = append(backing, (r+1)*side+c)
			}
			if c > 0 {
				backing = append(backing, r*side+c-1)
			}
			if c < side-1 {
				backing = append(backing, r*side+c+1)
			}
			end := len(backing)
			adj[r*side+c] = backing[start:end:end]
		}
	}
	return &Neighbors{side: side, adj: adj}, nil
}

// Side returns the grid side length the table was built for.
func (nb *Neighbors) Side() int { return nb.side }

// Cells returns the number of cells covered by the table.
func (nb *Neighbors) Cells() int { return len(nb.adj) }

// Of returns the neighbors of cell. The slice must not be modified.
func (nb *Neighbors) Of(cell int) []int { return nb.adj[cell] }
