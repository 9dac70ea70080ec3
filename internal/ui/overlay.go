//go:build ebiten

package ui

import (
	"torus-life/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay prints the generation counter and population over the grid.
// H toggles it.
type Overlay struct {
	universe *life.Universe
	visible  bool
}

// NewOverlay constructs a visible overlay for u.
func NewOverlay(u *life.Universe) *Overlay {
	return &Overlay{universe: u, visible: true}
}

// Update polls the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

// Draw prints the status line in the top-left corner.
func (o *Overlay) Draw(screen *ebiten.Image, paused bool) {
	if !o.visible {
		return
	}
	ebitenutil.DebugPrint(screen, Status(o.universe, paused))
}
