package core

// Torus describes a W×H row-major grid whose opposite edges are adjacent.
type Torus struct {
	W, H int
}

// NewTorus returns the geometry for a w×h grid. Non-positive dimensions are
// clamped to 1 so that modular arithmetic stays defined.
func NewTorus(w, h int) Torus {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Torus{W: w, H: h}
}

// Len is the number of cells on the torus.
func (t Torus) Len() int { return t.W * t.H }

// Index returns the linear slice index for (row, col). Both must be in range.
func (t Torus) Index(row, col int) int { return row*t.W + col }

// Wrap maps arbitrary signed coordinates back onto the torus.
func (t Torus) Wrap(row, col int) (int, int) {
	row = (row%t.H + t.H) % t.H
	col = (col%t.W + t.W) % t.W
	return row, col
}

// RowOffsets returns the additive offsets for the rows above, at and below a
// cell. Adding H-1 modulo H is the same as subtracting one without going
// negative.
func (t Torus) RowOffsets() [3]int { return [3]int{t.H - 1, 0, 1} }

// ColOffsets is the column counterpart of RowOffsets.
func (t Torus) ColOffsets() [3]int { return [3]int{t.W - 1, 0, 1} }

// Size reports the torus dimensions.
func (t Torus) Size() Size { return Size{W: t.W, H: t.H} }
