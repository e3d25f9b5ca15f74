package fleas

import (
	"errors"
	"slices"
	"testing"
)

func TestBuildNeighborsRejectsNonPositiveSize(t *testing.T) {
	for _, side := range []int{0, -1, -30} {
		if _, err := BuildNeighbors(side); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("BuildNeighbors(%d) err = %v, want ErrInvalidSize", side, err)
		}
	}
}

func TestNeighborDegreesAndSymmetry(t *testing.T) {
	for _, side := range []int{2, 3, 5, 30} {
		nb, err := BuildNeighbors(side)
		if err != nil {
			t.Fatalf("BuildNeighbors(%d): %v", side, err)
		}
		if nb.Cells() != side*side || nb.Side() != side {
			t.Fatalf("side %d: got %d cells, side %d", side, nb.Cells(), nb.Side())
		}
		for cell := 0; cell < nb.Cells(); cell++ {
			r, c := cell/side, cell%side
			want := 4
			if r == 0 || r == side-1 {
				want--
			}
			if c == 0 || c == side-1 {
				want--
			}
			opts := nb.Of(cell)
			if len(opts) != want {
				t.Fatalf("side %d cell (%d,%d): %d neighbors, want %d", side, r, c, len(opts), want)
			}
			for _, n := range opts {
				if n < 0 || n >= nb.Cells() {
					t.Fatalf("side %d cell %d: neighbor %d out of range", side, cell, n)
				}
				dr, dc := n/side-r, n%side-c
				if dr*dr+dc*dc != 1 {
					t.Fatalf("side %d cell %d: %d is not orthogonally adjacent", side, cell, n)
				}
				if !slices.Contains(nb.Of(n), cell) {
					t.Fatalf("side %d: %d lists %d but not the reverse", side, cell, n)
				}
			}
		}
	}
}

func TestNeighborOrder(t *testing.T) {
	nb, err := BuildNeighbors(3)
	if err != nil {
		t.Fatal(err)
	}
	cases := map[int][]int{
		0: {3, 1},
		1: {4, 0, 2},
		4: {1, 7, 3, 5},
		8: {5, 7},
	}
	for cell, want := range cases {
		if got := nb.Of(cell); !slices.Equal(got, want) {
			t.Fatalf("cell %d neighbors = %v, want %v", cell, got, want)
		}
	}
}

func TestSingleCellGridHasNoNeighbors(t *testing.T) {
	nb, err := BuildNeighbors(1)
	if err != nil {
		t.Fatal(err)
	}
	if nb.Cells() != 1 || len(nb.Of(0)) != 0 {
		t.Fatalf("1x1 grid: cells=%d neighbors=%v", nb.Cells(), nb.Of(0))
	}
}

func TestBuildNeighborsDeterministic(t *testing.T) {
	a, _ := BuildNeighbors(6)
	b, _ := BuildNeighbors(6)
	for cell := 0; cell < a.Cells(); cell++ {
		if !slices.Equal(a.Of(cell), b.Of(cell)) {
			t.Fatalf("cell %d differs between builds", cell)
		}
	}
}
