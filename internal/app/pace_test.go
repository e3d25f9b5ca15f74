package app

import (
	"testing"
	"time"
)

func TestPaceReleasesAtRate(t *testing.T) {
	clock := time.Unix(1000, 0)
	p := NewPace(4)
	p.now = func() time.Time { return clock }

	if !p.Ready() {
		t.Fatal("first call must be ready")
	}
	if p.Ready() {
		t.Fatal("no time passed, must not be ready")
	}
	clock = clock.Add(100 * time.Millisecond)
	if p.Ready() {
		t.Fatal("100ms is under the 250ms step")
	}
	clock = clock.Add(150 * time.Millisecond)
	if !p.Ready() {
		t.Fatal("250ms elapsed, ring is due")
	}
}

func TestPaceDefaultsRate(t *testing.T) {
	p := NewPace(0)
	if p.step != 250*time.Millisecond {
		t.Fatalf("step = %s, want 250ms", p.step)
	}
}
