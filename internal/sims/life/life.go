package life

import (
	"errors"
	"strings"
	"unicode/utf8"

	"torus-life/internal/core"
)

// Cell is the state of one grid position. It occupies a single byte so the
// buffer can be copied straight into a host pixel buffer.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

const (
	deadGlyph  = '◻'
	aliveGlyph = '◼'
)

// ErrInvalidSize is returned when a universe is requested with a
// non-positive width or height.
var ErrInvalidSize = errors.New("life: width and height must be positive")

// Universe implements Conway's Game of Life on a toroidal grid.
type Universe struct {
	grid     core.Torus
	divisors []int
	cur      []Cell
	nxt      []Cell
	gen      uint64
}

// New returns a w×h universe seeded with the default pattern.
func New(w, h int) (*Universe, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// Default returns the 64×64 universe with the default seed pattern.
func Default() *Universe {
	u, err := NewWithConfig(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return u
}

// NewWithConfig returns a universe sized and seeded from cfg.
func NewWithConfig(cfg Config) (*Universe, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid := core.NewTorus(cfg.Width, cfg.Height)
	u := &Universe{
		grid:     grid,
		divisors: append([]int(nil), cfg.Divisors...),
		cur:      make([]Cell, grid.Len()),
		nxt:      make([]Cell, grid.Len()),
	}
	u.Reset()
	return u, nil
}

// Reset restores the seed pattern and the generation counter.
func (u *Universe) Reset() {
	for i := range u.cur {
		u.cur[i] = seedCell(i, u.divisors)
	}
	u.gen = 0
}

// seedCell marks index i alive when any divisor divides it. Non-positive
// divisors never match.
func seedCell(i int, divisors []int) Cell {
	for _, d := range divisors {
		if d > 0 && i%d == 0 {
			return Alive
		}
	}
	return Dead
}

// Width returns the number of columns.
func (u *Universe) Width() int { return u.grid.W }

// Height returns the number of rows.
func (u *Universe) Height() int { return u.grid.H }

// Size returns the grid dimensions.
func (u *Universe) Size() core.Size { return u.grid.Size() }

// Generation counts the steps taken since construction or the last Reset.
func (u *Universe) Generation() uint64 { return u.gen }

// Cells exposes the current generation. The slice must not be modified and
// is no longer current after the next Step.
func (u *Universe) Cells() []Cell { return u.cur }

// AppendBytes appends the current generation to dst as one byte per cell,
// row-major, and returns the extended slice. Hosts pass dst[:0] to reuse a
// buffer across frames.
func (u *Universe) AppendBytes(dst []uint8) []uint8 {
	for _, c := range u.cur {
		dst = append(dst, uint8(c))
	}
	return dst
}

// Index returns the linear index of (row, col).
func (u *Universe) Index(row, col int) int { return u.grid.Index(row, col) }

// Set places a cell, wrapping out-of-range coordinates onto the torus.
func (u *Universe) Set(row, col int, c Cell) {
	row, col = u.grid.Wrap(row, col)
	u.cur[u.grid.Index(row, col)] = c
}

// Get returns the cell at (row, col), wrapping like Set.
func (u *Universe) Get(row, col int) Cell {
	row, col = u.grid.Wrap(row, col)
	return u.cur[u.grid.Index(row, col)]
}

// Population counts live cells in the current generation.
func (u *Universe) Population() int {
	n := 0
	for _, c := range u.cur {
		if c == Alive {
			n++
		}
	}
	return n
}

// NeighborCount counts live cells in the Moore neighborhood of (row, col),
// taking missing edge neighbors from the opposite edge.
func (u *Universe) NeighborCount(row, col int) uint8 {
	w, h := u.grid.W, u.grid.H
	var total uint8
	for _, dr := range u.grid.RowOffsets() {
		for _, dc := range u.grid.ColOffsets() {
			if dr == 0 && dc == 0 {
				continue
			}
			n := u.grid.Index((row+dr)%h, (col+dc)%w)
			total += uint8(u.cur[n])
		}
	}
	return total
}

// next applies the transition rule to one cell.
func next(c Cell, neighbors uint8) Cell {
	switch {
	case c == Alive && (neighbors < 2 || neighbors > 3):
		return Dead
	case c == Alive:
		return Alive
	case c == Dead && neighbors == 3:
		return Alive
	default:
		return c
	}
}

// Step advances the universe by one generation. Every cell of the next
// generation is computed from the current buffer before the two are swapped.
func (u *Universe) Step() {
	w, h := u.grid.W, u.grid.H
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			idx := u.grid.Index(row, col)
			u.nxt[idx] = next(u.cur[idx], u.NeighborCount(row, col))
		}
	}
	u.cur, u.nxt = u.nxt, u.cur
	u.gen++
}

// Render draws the current generation as text, one newline-terminated line
// per row.
func (u *Universe) Render() string {
	var b strings.Builder
	w := u.grid.W
	b.Grow(len(u.cur)*utf8.RuneLen(aliveGlyph) + u.grid.H)
	for start := 0; start < len(u.cur); start += w {
		for _, c := range u.cur[start : start+w] {
			if c == Dead {
				b.WriteRune(deadGlyph)
			} else {
				b.WriteRune(aliveGlyph)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String implements fmt.Stringer using Render.
func (u *Universe) String() string { return u.Render() }
