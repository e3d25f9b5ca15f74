//go:build ebiten

package app

import (
	"fmt"
	"image/color"

	"fleas/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUDHeight is the number of pixels the status bar occupies below the grid.
const HUDHeight = 20

type ringProvider interface {
	Ring() int
	Empty() int
}

// HUD renders a one-line status bar under the simulation view.
type HUD struct {
	sim   core.Sim
	total int
	panel *ebiten.Image
	line  string
}

// NewHUD constructs a HUD for the provided simulation. total is the ring
// count at which the simulation stops advancing.
func NewHUD(sim core.Sim, total int) *HUD {
	return &HUD{sim: sim, total: total}
}

// Update refreshes the status line.
func (h *HUD) Update(seed int64, paused bool) {
	if h == nil {
		return
	}
	h.line = fmt.Sprintf("seed %d", seed)
	if p, ok := h.sim.(ringProvider); ok {
		h.line = fmt.Sprintf("ring %d/%d  empty %d  seed %d", p.Ring(), h.total, p.Empty(), seed)
	}
	if paused {
		h.line += "  [paused]"
	}
}

// Draw paints the status bar at vertical offset y.
func (h *HUD) Draw(screen *ebiten.Image, width, y int) {
	if h == nil || width <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != width {
		h.panel = ebiten.NewImage(width, HUDHeight)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	text.Draw(h.panel, h.line, basicfont.Face7x13, 4, 14, color.White)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(y))
	screen.DrawImage(h.panel, op)
}
