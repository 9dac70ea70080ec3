package core

import "testing"

func TestTorusWrap(t *testing.T) {
	tor := NewTorus(4, 3)
	cases := []struct {
		row, col         int
		wantRow, wantCol int
	}{
		{0, 0, 0, 0},
		{-1, -1, 2, 3},
		{3, 4, 0, 0},
		{5, -6, 2, 2},
	}
	for _, tc := range cases {
		r, c := tor.Wrap(tc.row, tc.col)
		if r != tc.wantRow || c != tc.wantCol {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", tc.row, tc.col, r, c, tc.wantRow, tc.wantCol)
		}
	}
}

func TestTorusIndexIsRowMajor(t *testing.T) {
	tor := NewTorus(5, 2)
	if got := tor.Index(1, 3); got != 8 {
		t.Fatalf("Index(1,3) = %d, want 8", got)
	}
	if tor.Len() != 10 {
		t.Fatalf("Len = %d, want 10", tor.Len())
	}
}

func TestTorusOffsetsWrapToNeighbors(t *testing.T) {
	tor := NewTorus(6, 4)
	rows := tor.RowOffsets()
	if got := (0 + rows[0]) % tor.H; got != 3 {
		t.Fatalf("row above 0 = %d, want 3", got)
	}
	cols := tor.ColOffsets()
	if got := (5 + cols[2]) % tor.W; got != 0 {
		t.Fatalf("column right of 5 = %d, want 0", got)
	}
}

func TestNewTorusClampsDimensions(t *testing.T) {
	tor := NewTorus(0, -3)
	if tor.Size() != (Size{W: 1, H: 1}) {
		t.Fatalf("unexpected size %+v", tor.Size())
	}
}
