package fleas

import (
	"image/color"

	"fleas/pkg/core"
)

// World plays a single trial one ring at a time for the interactive viewer.
type World struct {
	cfg    Config
	walk   *Walk
	rng    *core.RNG
	ring   int
	empty  int
	counts []int
	cells  []uint8
}

// NewWorld builds a world for cfg and resets it with cfg.Seed.
func NewWorld(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	nb, err := BuildNeighbors(cfg.Size)
	if err != nil {
		return nil, err
	}
	w := &World{
		cfg:    cfg,
		walk:   NewWalk(nb),
		counts: make([]int, nb.Cells()),
		cells:  make([]uint8, nb.Cells()),
	}
	w.Reset(0)
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "fleas" }

// Size returns the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Size, H: w.cfg.Size} }

// Cells exposes per-cell occupancy shades (see Shade).
func (w *World) Cells() []uint8 { return w.cells }

// Counts exposes the raw occupancy histogram of the current ring.
func (w *World) Counts() []int { return w.counts }

// Ring returns how many rings have been played since the last Reset.
func (w *World) Ring() int { return w.ring }

// Empty returns the number of empty cells after the current ring.
func (w *World) Empty() int { return w.empty }

// Done reports whether the configured number of rings has been played.
func (w *World) Done() bool { return w.ring >= w.cfg.Steps }

// Palette exposes the color palette used for rendering occupancy.
func (w *World) Palette() []color.RGBA { return Palette() }

// Reset puts every flea back on its own cell. A zero seed reuses the
// configured one.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.rng = core.NewRNG(seed)
	w.walk.Reset()
	w.ring = 0
	w.refresh()
}

// Step plays one ring unless the configured count has been reached.
func (w *World) Step() {
	if w.Done() {
		return
	}
	w.walk.Ring(w.rng)
	w.ring++
	w.refresh()
}

func (w *World) refresh() {
	w.empty = w.walk.Tally(w.counts)
	for i, c := range w.counts {
		w.cells[i] = Shade(c)
	}
}

func init() {
	core.Register("fleas", func(cfg map[string]string) core.Sim {
		w, err := NewWorld(FromMap(cfg))
		if err != nil {
			return nil
		}
		return w
	})
}
