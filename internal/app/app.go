//go:build ebiten

package app

import (
	"image/color"
	"time"

	"fleas/internal/render"
	"fleas/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *HUD
	pace    *Pace
	palette []color.RGBA

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation. rings is the number of
// rings the simulation plays before it stops; rate is rings per second.
func New(sim core.Sim, scale int, seed int64, rings, rate int) *Game {
	size := sim.Size()
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     NewHUD(sim, rings),
		pace:    NewPace(rate),
		palette: []color.RGBA{{A: 255}, {R: 255, G: 255, B: 255, A: 255}},
		scale:   scale,
		seed:    seed,
	}
	if p, ok := sim.(paletteProvider); ok {
		g.palette = p.Palette()
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if g.tickOnce || (!g.paused && g.pace.Ready()) {
		g.sim.Step()
		g.tickOnce = false
	}
	g.hud.Update(g.seed, g.paused)
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	s := g.sim.Size()
	g.hud.Draw(screen, s.W*g.scale, s.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H*g.scale + HUDHeight
}
