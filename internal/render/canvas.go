package render

import (
	"image/color"

	"torus-life/internal/core"
)

// Palette holds the three colors of the bordered canvas.
type Palette struct {
	Grid  color.RGBA
	Dead  color.RGBA
	Alive color.RGBA
}

// DefaultPalette is a light grey grid with white dead cells and pale green
// live cells.
func DefaultPalette() Palette {
	return Palette{
		Grid:  color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff},
		Dead:  color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Alive: color.RGBA{R: 0xaf, G: 0xe1, B: 0xaf, A: 0xff},
	}
}

// Canvas lays a grid out as CellSize×CellSize squares separated and framed
// by one-pixel grid lines.
type Canvas struct {
	Grid     core.Size
	CellSize int
}

// NewCanvas returns a canvas for grid with the given cell size in pixels.
// Cell sizes below one are raised to one.
func NewCanvas(grid core.Size, cellSize int) Canvas {
	if cellSize < 1 {
		cellSize = 1
	}
	return Canvas{Grid: grid, CellSize: cellSize}
}

// Bounds returns the canvas size in pixels.
func (c Canvas) Bounds() (int, int) {
	pitch := c.CellSize + 1
	return pitch*c.Grid.W + 1, pitch*c.Grid.H + 1
}

// CellOrigin returns the top-left pixel of the cell at (row, col).
func (c Canvas) CellOrigin(row, col int) (int, int) {
	pitch := c.CellSize + 1
	return col*pitch + 1, row*pitch + 1
}

// BufferLen is the RGBA byte length needed by Fill.
func (c Canvas) BufferLen() int {
	w, h := c.Bounds()
	return 4 * w * h
}

// Fill paints cells into buf as RGBA pixels. It reports false without
// touching buf when either slice has the wrong length.
func Fill[T ~uint8](c Canvas, buf []byte, cells []T, p Palette) bool {
	if len(cells) != c.Grid.W*c.Grid.H || len(buf) != c.BufferLen() {
		return false
	}
	w, _ := c.Bounds()
	for i := 0; i < len(buf); i += 4 {
		putPixel(buf, i, p.Grid)
	}
	for row := 0; row < c.Grid.H; row++ {
		for col := 0; col < c.Grid.W; col++ {
			px := p.Dead
			if cells[row*c.Grid.W+col] != 0 {
				px = p.Alive
			}
			x0, y0 := c.CellOrigin(row, col)
			for y := y0; y < y0+c.CellSize; y++ {
				base := (y*w + x0) * 4
				for x := 0; x < c.CellSize; x++ {
					putPixel(buf, base+x*4, px)
				}
			}
		}
	}
	return true
}

func putPixel(buf []byte, base int, px color.RGBA) {
	buf[base+0] = px.R
	buf[base+1] = px.G
	buf[base+2] = px.B
	buf[base+3] = px.A
}
