// Package geom holds the small value types the block tree and the table
// hunting engine share: points, quads, and axis-aligned rectangles.
//
// Y grows downward, matching a page coordinate system: Y0 is the top of a
// rectangle, Y1 the bottom.
package geom

import "math"

// Point is a single coordinate pair.
type Point struct {
	X, Y float64
}

// Quad is an arbitrary (possibly rotated) quadrilateral, corners in
// reading order: upper-left, upper-right, lower-left, lower-right.
type Quad struct {
	UL, UR, LL, LR Point
}

// Rect returns the axis-aligned bounding rectangle of q.
func (q Quad) Rect() Rect {
	xs := [4]float64{q.UL.X, q.UR.X, q.LL.X, q.LR.X}
	ys := [4]float64{q.UL.Y, q.UR.Y, q.LL.Y, q.LR.Y}
	r := Rect{X0: xs[0], Y0: ys[0], X1: xs[0], Y1: ys[0]}
	for i := 1; i < 4; i++ {
		r.X0 = math.Min(r.X0, xs[i])
		r.X1 = math.Max(r.X1, xs[i])
		r.Y0 = math.Min(r.Y0, ys[i])
		r.Y1 = math.Max(r.Y1, ys[i])
	}
	return r
}

// Rect is an axis-aligned rectangle, X0<=X1 and Y0<=Y1 for a well-formed
// (non-empty) rectangle. Y0 is the top.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// InfiniteRect is a sentinel covering the whole plane: the identity for
// Intersect. (Union accumulators start from EmptyRect instead.)
var InfiniteRect = Rect{X0: -math.MaxFloat64, Y0: -math.MaxFloat64, X1: math.MaxFloat64, Y1: math.MaxFloat64}

// EmptyRect is a canonical empty rectangle.
var EmptyRect = Rect{X0: 1, Y0: 1, X1: 0, Y1: 0}

// Empty reports whether r contains no points. The test is inclusive:
// a zero-width or zero-height rectangle (X0==X1 or Y0==Y1) is NOT empty.
// This matters for degenerate candidates like bare spaces or hairline
// rules, whose bounding boxes collapse to a line or a point but still
// carry position information the hunting engine needs to keep.
func (r Rect) Empty() bool {
	return r.X0 > r.X1 || r.Y0 > r.Y1
}

// Width returns X1-X0, or 0 if r is empty.
func (r Rect) Width() float64 {
	if r.Empty() {
		return 0
	}
	return r.X1 - r.X0
}

// Height returns Y1-Y0, or 0 if r is empty.
func (r Rect) Height() float64 {
	if r.Empty() {
		return 0
	}
	return r.Y1 - r.Y0
}

// Union returns the smallest rectangle containing both r and s. An empty
// operand is ignored.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	return Rect{
		X0: math.Min(r.X0, s.X0),
		Y0: math.Min(r.Y0, s.Y0),
		X1: math.Max(r.X1, s.X1),
		Y1: math.Max(r.Y1, s.Y1),
	}
}

// Intersect returns the overlap of r and s, or EmptyRect if they don't
// overlap.
func (r Rect) Intersect(s Rect) Rect {
	out := Rect{
		X0: math.Max(r.X0, s.X0),
		Y0: math.Max(r.Y0, s.Y0),
		X1: math.Min(r.X1, s.X1),
		Y1: math.Min(r.Y1, s.Y1),
	}
	if out.Empty() {
		return EmptyRect
	}
	return out
}

// Overlaps reports whether r and s share at least one point.
func (r Rect) Overlaps(s Rect) bool {
	return !r.Intersect(s).Empty()
}

// Contains reports whether p lies within r, inclusive of the boundary.
func (r Rect) Contains(p Point) bool {
	if r.Empty() {
		return false
	}
	return p.X >= r.X0 && p.X <= r.X1 && p.Y >= r.Y0 && p.Y <= r.Y1
}

// ContainsRect reports whether r fully contains s.
func (r Rect) ContainsRect(s Rect) bool {
	if s.Empty() {
		return true
	}
	if r.Empty() {
		return false
	}
	return s.X0 >= r.X0 && s.X1 <= r.X1 && s.Y0 >= r.Y0 && s.Y1 <= r.Y1
}

// CenterX returns the horizontal midpoint of r.
func (r Rect) CenterX() float64 { return (r.X0 + r.X1) / 2 }

// CenterY returns the vertical midpoint of r.
func (r Rect) CenterY() float64 { return (r.Y0 + r.Y1) / 2 }
