package view

import "math"

// Viewport maps track space onto screen cells: x runs across, z runs up the screen
// Row 0 is the far edge; the runner sits near the bottom
type Viewport struct {
	Cols, Rows int
	Behind     float64 // meters drawn behind the runner
	Ahead      float64 // meters drawn ahead of the runner
	HalfSpan   float64 // meters from the track center to either screen edge
}

func (v Viewport) cellDepth() float64 { return (v.Ahead + v.Behind) / float64(v.Rows) }

func (v Viewport) cellWidth() float64 { return 2 * v.HalfSpan / float64(v.Cols) }

// ZAt is the track z at the center of row
func (v Viewport) ZAt(row int) float64 {
	return v.Ahead - (float64(row)+0.5)*v.cellDepth()
}

// XAt is the track x at the center of col
func (v Viewport) XAt(col int) float64 {
	return -v.HalfSpan + (float64(col)+0.5)*v.cellWidth()
}

// Cell maps a track point to its screen cell; ok is false off screen
func (v Viewport) Cell(x, z float64) (col, row int, ok bool) {
	if v.Cols <= 0 || v.Rows <= 0 {
		return 0, 0, false
	}
	col = int(math.Floor((x + v.HalfSpan) / v.cellWidth()))
	row = int(math.Floor((v.Ahead - z) / v.cellDepth()))
	ok = col >= 0 && col < v.Cols && row >= 0 && row < v.Rows
	return col, row, ok
}

// Span is the column range [from, to] covering x in [lo, hi], clipped to the screen
func (v Viewport) Span(lo, hi float64) (from, to int) {
	w := v.cellWidth()
	from = max(0, int(math.Ceil((lo+v.HalfSpan)/w-0.5)))
	to = min(v.Cols-1, int(math.Floor((hi+v.HalfSpan)/w-0.5)))
	return from, to
}
