package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 1000; i++ {
		x, y := a.IntN(4), b.IntN(4)
		if x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
		if x < 0 || x >= 4 {
			t.Fatalf("draw %d out of range: %d", i, x)
		}
	}
}

func TestRNGSourceSharesState(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	a.Source().IntN(10)
	b.IntN(10)
	if a.IntN(1000) != b.IntN(1000) {
		t.Fatal("Source and IntN must advance the same stream")
	}
}
