package fleas

import (
	"slices"
	"testing"

	"fleas/pkg/core"
)

func TestWorldMatchesRunTrial(t *testing.T) {
	cfg := Config{Size: 8, Steps: 15, Trials: 1, Seed: 31}
	world, err := NewWorld(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for !world.Done() {
		world.Step()
	}
	world.Step()
	if world.Ring() != cfg.Steps {
		t.Fatalf("world played %d rings, want %d", world.Ring(), cfg.Steps)
	}

	res, err := RunTrial(mustNeighbors(t, cfg.Size), cfg.Steps, core.NewRNG(cfg.Seed))
	if err != nil {
		t.Fatal(err)
	}
	if world.Empty() != res.Empty || !slices.Equal(world.Counts(), res.Counts) {
		t.Fatal("stepping the world diverged from RunTrial with the same seed")
	}
}

func TestWorldResetDeterministic(t *testing.T) {
	world, err := NewWorld(Config{Size: 6, Steps: 10, Trials: 1, Seed: 3})
	if err != nil {
		t.Fatal(err)
	}
	for i, c := range world.Cells() {
		if c != 1 {
			t.Fatalf("fresh world cell %d holds %d fleas", i, c)
		}
	}

	world.Reset(777)
	for i := 0; i < 5; i++ {
		world.Step()
	}
	first := slices.Clone(world.Cells())

	world.Reset(777)
	for i := 0; i < 5; i++ {
		world.Step()
	}
	if !slices.Equal(first, world.Cells()) {
		t.Fatal("Reset with explicit seed not deterministic")
	}
	if world.Name() != "fleas" || world.Size() != (core.Size{W: 6, H: 6}) {
		t.Fatalf("unexpected identity %q %+v", world.Name(), world.Size())
	}
}

func TestWorldRegistered(t *testing.T) {
	factory, ok := core.Sims()["fleas"]
	if !ok {
		t.Fatal("fleas sim not registered")
	}
	sim := factory(map[string]string{"size": "4", "steps": "3"})
	if sim == nil || sim.Size().W != 4 || len(sim.Cells()) != 16 {
		t.Fatalf("factory built %+v", sim)
	}
}
