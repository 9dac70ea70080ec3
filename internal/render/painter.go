//go:build ebiten

package render

import (
	"torus-life/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps one RGBA image in sync with a universe's cells.
type GridPainter struct {
	canvas  Canvas
	palette Palette
	img     *ebiten.Image
	buf     []byte
}

// NewGridPainter allocates a painter for the given canvas layout.
func NewGridPainter(c Canvas, p Palette) *GridPainter {
	w, h := c.Bounds()
	return &GridPainter{
		canvas:  c,
		palette: p,
		img:     ebiten.NewImage(w, h),
		buf:     make([]byte, c.BufferLen()),
	}
}

// Blit uploads the current generation into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []life.Cell) {
	if !Fill(gp.canvas, gp.buf, cells, gp.palette) {
		return
	}
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.canvas.Bounds() }
