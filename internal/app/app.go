//go:build ebiten

package app

import (
	"torus-life/internal/render"
	"torus-life/internal/sims/life"
	"torus-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
)

// Game adapts a universe to the ebiten.Game interface, advancing one
// generation per tick.
type Game struct {
	universe *life.Universe
	painter  *render.GridPainter
	overlay  *ui.Overlay
	log      zerolog.Logger

	limit    uint64
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided universe. A non-zero steps value
// ends the game once that many generations have been shown.
func New(u *life.Universe, scale, steps int, log zerolog.Logger) *Game {
	canvas := render.NewCanvas(u.Size(), scale)
	limit := uint64(0)
	if steps > 0 {
		limit = uint64(steps)
	}
	return &Game{
		universe: u,
		painter:  render.NewGridPainter(canvas, render.DefaultPalette()),
		overlay:  ui.NewOverlay(u),
		log:      log,
		limit:    limit,
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.log.Debug().Bool("paused", g.paused).Uint64("generation", g.universe.Generation()).Msg("toggle pause")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.universe.Reset()
		g.log.Info().Msg("universe reset")
	}

	g.overlay.Update()

	if g.limit > 0 && g.universe.Generation() >= g.limit {
		return ebiten.Termination
	}
	if !g.paused || g.tickOnce {
		g.universe.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.universe.Cells())
	g.overlay.Draw(screen, g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.painter.Size()
}
