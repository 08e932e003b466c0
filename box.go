package conic

import (
	"fmt"
	"math"
)

// Box is an axis-aligned rectangle. Any of its sides may be infinite, which
// makes the box unbounded in that direction.
//
// The boundary of a bounded box is traversed counter-clockwise (in a y-up
// space), starting at (MinX, MinY): first the bottom side, then the right,
// top and left sides. Positions along the boundary are in [0, 4), side k
// covering [k, k+1).
type Box struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// NewBox returns the box with the given extents, swapping values so that
// MinX ≤ MaxX and MinY ≤ MaxY.
func NewBox(x0, x1, y0, y1 float64) Box {
	return Box{
		MinX: min(x0, x1),
		MaxX: max(x0, x1),
		MinY: min(y0, y1),
		MaxY: max(y0, y1),
	}
}

// InfiniteBox returns the box covering the whole plane.
func InfiniteBox() Box {
	inf := math.Inf(1)
	return Box{-inf, inf, -inf, inf}
}

// BoxFromPoints returns the smallest box containing all points. It returns
// the zero Box when called without points.
func BoxFromPoints(pts ...Point) Box {
	if len(pts) == 0 {
		return Box{}
	}
	b := Box{pts[0].X, pts[0].X, pts[0].Y, pts[0].Y}
	for _, pt := range pts[1:] {
		b = b.UnionPoint(pt)
	}
	return b
}

func (b Box) String() string {
	return fmt.Sprintf("[%g, %g]×[%g, %g]", b.MinX, b.MaxX, b.MinY, b.MaxY)
}

func (b Box) Width() float64  { return b.MaxX - b.MinX }
func (b Box) Height() float64 { return b.MaxY - b.MinY }

// Center returns the center of the box. It is not finite for unbounded
// boxes.
func (b Box) Center() Point {
	return Point{(b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2}
}

// IsBounded reports whether all four sides of the box are finite.
func (b Box) IsBounded() bool {
	return isFinite(b.MinX) && isFinite(b.MaxX) && isFinite(b.MinY) && isFinite(b.MaxY)
}

// IsEmpty reports whether the box has zero area.
func (b Box) IsEmpty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// Contains reports whether pt lies in the closed box, within [Accuracy].
// Points at infinity are only contained in boxes that are unbounded in
// their direction.
func (b Box) Contains(pt Point) bool {
	var ex, ey float64
	if isFinite(pt.X) {
		ex = scaledAccuracy(pt.X)
	}
	if isFinite(pt.Y) {
		ey = scaledAccuracy(pt.Y)
	}
	return pt.X >= b.MinX-ex && pt.X <= b.MaxX+ex &&
		pt.Y >= b.MinY-ey && pt.Y <= b.MaxY+ey
}

// ContainsBox reports whether o lies entirely in b.
func (b Box) ContainsBox(o Box) bool {
	return b.Contains(Point{o.MinX, o.MinY}) && b.Contains(Point{o.MaxX, o.MaxY})
}

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	return Box{
		MinX: min(b.MinX, o.MinX),
		MaxX: max(b.MaxX, o.MaxX),
		MinY: min(b.MinY, o.MinY),
		MaxY: max(b.MaxY, o.MaxY),
	}
}

// UnionPoint returns the smallest box containing both b and pt.
func (b Box) UnionPoint(pt Point) Box {
	return Box{
		MinX: min(b.MinX, pt.X),
		MaxX: max(b.MaxX, pt.X),
		MinY: min(b.MinY, pt.Y),
		MaxY: max(b.MaxY, pt.Y),
	}
}

// Intersect returns the intersection of two boxes. If they don't overlap, the
// result has zero width or height, positioned at the edge of b.
func (b Box) Intersect(o Box) Box {
	x0 := max(b.MinX, o.MinX)
	y0 := max(b.MinY, o.MinY)
	x1 := min(b.MaxX, o.MaxX)
	y1 := min(b.MaxY, o.MaxY)
	return Box{x0, max(x0, x1), y0, max(y0, y1)}
}

// Corners returns the corners in counter-clockwise order, starting at
// (MinX, MinY). Corners of unbounded boxes may have infinite coordinates.
func (b Box) Corners() [4]Point {
	return [4]Point{
		{b.MinX, b.MinY},
		{b.MaxX, b.MinY},
		{b.MaxX, b.MaxY},
		{b.MinX, b.MaxY},
	}
}

// Edges returns the sides of the box, oriented so that the interior lies on
// their left. Infinite sides are omitted; sides that extend to infinity are
// rays or straight lines. For a bounded box, the edges are in boundary
// order.
//
// Each edge is parametrized by the coordinate that varies along it, negated
// for the top and left sides.
func (b Box) Edges() []Line {
	edges := make([]Line, 0, 4)
	if isFinite(b.MinY) {
		edges = append(edges, Line{P0: Point{0, b.MinY}, Dir: Vec2{1, 0}, T0: b.MinX, T1: b.MaxX})
	}
	if isFinite(b.MaxX) {
		edges = append(edges, Line{P0: Point{b.MaxX, 0}, Dir: Vec2{0, 1}, T0: b.MinY, T1: b.MaxY})
	}
	if isFinite(b.MaxY) {
		edges = append(edges, Line{P0: Point{0, b.MaxY}, Dir: Vec2{-1, 0}, T0: -b.MaxX, T1: -b.MinX})
	}
	if isFinite(b.MinX) {
		edges = append(edges, Line{P0: Point{b.MinX, 0}, Dir: Vec2{0, -1}, T0: -b.MaxY, T1: -b.MinY})
	}
	return edges
}

// Boundary returns the boundary of a bounded box as a closed contour of four
// segments, parametrized like [Box.BoundaryPosition].
func (b Box) Boundary() (Contour, error) {
	if !b.IsBounded() {
		return Contour{}, fmt.Errorf("boundary of %s: %w", b, ErrUnbounded)
	}
	c := b.Corners()
	return NewContour(
		segment(c[0], c[1]),
		segment(c[1], c[2]),
		segment(c[2], c[3]),
		segment(c[3], c[0]),
	), nil
}

// BoundaryPosition returns the position in [0, 4) of the point of the box
// boundary that is closest to pt. Side k of the boundary covers [k, k+1).
// Zero-width or zero-height sides are skipped over. The box must be bounded.
func (b Box) BoundaryPosition(pt Point) float64 {
	w, h := b.Width(), b.Height()
	x := clamp(pt.X, b.MinX, b.MaxX)
	y := clamp(pt.Y, b.MinY, b.MaxY)
	frac := func(v, size float64) float64 {
		if size == 0 {
			return 0
		}
		return v / size
	}
	// Distances to bottom, right, top, left.
	dists := [4]float64{
		math.Abs(pt.Y - b.MinY),
		math.Abs(pt.X - b.MaxX),
		math.Abs(pt.Y - b.MaxY),
		math.Abs(pt.X - b.MinX),
	}
	side := 0
	for i := 1; i < 4; i++ {
		if dists[i] < dists[side] {
			side = i
		}
	}
	var pos float64
	switch side {
	case 0:
		pos = frac(x-b.MinX, w)
	case 1:
		pos = 1 + frac(y-b.MinY, h)
	case 2:
		pos = 2 + frac(b.MaxX-x, w)
	case 3:
		pos = 3 + frac(b.MaxY-y, h)
	}
	if pos >= 4 {
		pos -= 4
	}
	return pos
}

// BoundaryPoint returns the point at position pos along the boundary. pos is
// taken modulo 4.
func (b Box) BoundaryPoint(pos float64) Point {
	pos = math.Mod(pos, 4)
	if pos < 0 {
		pos += 4
	}
	side := min(int(pos), 3)
	f := pos - float64(side)
	c := b.Corners()
	return c[side].Lerp(c[(side+1)%4], f)
}

// Transform returns the bounding box of b's image under aff. Boxes with
// infinite sides map to boxes with infinite sides.
func (b Box) Transform(aff Affine) Box {
	if !b.IsBounded() {
		// Infinite corners produce NaN when combined by the linear part.
		if aff.N1 == 0 && aff.N2 == 0 {
			return NewBox(aff.N0*b.MinX+aff.N4, aff.N0*b.MaxX+aff.N4,
				aff.N3*b.MinY+aff.N5, aff.N3*b.MaxY+aff.N5)
		}
		return InfiniteBox()
	}
	c := b.Corners()
	return BoxFromPoints(
		c[0].Transform(aff),
		c[1].Transform(aff),
		c[2].Transform(aff),
		c[3].Transform(aff),
	)
}
