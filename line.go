package conic

import (
	"fmt"
	"math"
)

// Line is a straight curve: an infinite line, a ray or a segment.
//
// Points are P0 + t·Dir for t ∈ [T0, T1]. Either bound may be infinite; a
// segment has both bounds finite, a ray has one infinite bound, and a
// straight line has T0 = -∞ and T1 = +∞. Segments created with [NewSegment]
// use t ∈ [0, 1].
//
// Line is both a [Curve] and the clipping edge type of [Box].
type Line struct {
	P0  Point
	Dir Vec2
	T0  float64
	T1  float64
}

var _ Curve = Line{}
var _ Sided = Line{}

// LineKind classifies a [Line] by which of its bounds are finite.
type LineKind int

const (
	SegmentKind LineKind = iota
	RayKind
	StraightLineKind
)

func (k LineKind) String() string {
	switch k {
	case SegmentKind:
		return "segment"
	case RayKind:
		return "ray"
	case StraightLineKind:
		return "straight line"
	default:
		return fmt.Sprintf("LineKind(%d)", int(k))
	}
}

// NewLine returns the infinite straight line through p with direction dir.
func NewLine(p Point, dir Vec2) (Line, error) {
	if dir.IsZero() {
		return Line{}, fmt.Errorf("straight line with direction %s: %w", dir, ErrDegenerate)
	}
	return Line{P0: p, Dir: dir, T0: math.Inf(-1), T1: math.Inf(1)}, nil
}

// LineThrough returns the infinite straight line through p1 and p2,
// parametrized so that p1 is at t = 0 and p2 at t = 1.
func LineThrough(p1, p2 Point) (Line, error) {
	return NewLine(p1, p2.Sub(p1))
}

// NewRay returns the ray starting at p and extending along dir.
func NewRay(p Point, dir Vec2) (Line, error) {
	if dir.IsZero() {
		return Line{}, fmt.Errorf("ray with direction %s: %w", dir, ErrDegenerate)
	}
	return Line{P0: p, Dir: dir, T0: 0, T1: math.Inf(1)}, nil
}

// NewSegment returns the segment from p0 to p1.
func NewSegment(p0, p1 Point) (Line, error) {
	if p0.Distance(p1) < Accuracy {
		return Line{}, fmt.Errorf("segment from %s to %s: %w", p0, p1, ErrDegenerate)
	}
	return segment(p0, p1), nil
}

// segment is NewSegment without validation, for callers that know the end
// points are distinct or that tolerate a zero-length segment.
func segment(p0, p1 Point) Line {
	return Line{P0: p0, Dir: p1.Sub(p0), T0: 0, T1: 1}
}

// Kind reports whether l is a segment, a ray or a straight line.
func (l Line) Kind() LineKind {
	inf0, inf1 := math.IsInf(l.T0, 0), math.IsInf(l.T1, 0)
	switch {
	case inf0 && inf1:
		return StraightLineKind
	case inf0 || inf1:
		return RayKind
	default:
		return SegmentKind
	}
}

func (l Line) isCurve() {}

func (l Line) Point(t float64) Point {
	if math.IsInf(t, 0) {
		return pointAtInfinity(l.P0, l.Dir, t)
	}
	return l.P0.Translate(l.Dir.Mul(t))
}

// pointAtInfinity returns the limit of p + t·dir for an infinite t. Axes
// along which dir is zero keep the coordinate of p.
func pointAtInfinity(p Point, dir Vec2, t float64) Point {
	coord := func(c, d float64) float64 {
		if d == 0 {
			return c
		}
		return math.Inf(int(math.Copysign(1, d*t)))
	}
	return Point{X: coord(p.X, dir.X), Y: coord(p.Y, dir.Y)}
}

func (l Line) Tangent(t float64) Vec2      { return l.Dir }
func (l Line) Curvature(t float64) float64 { return 0 }
func (l Line) FirstPoint() Point           { return l.Point(l.T0) }
func (l Line) LastPoint() Point            { return l.Point(l.T1) }
func (l Line) IsClosed() bool              { return false }

func (l Line) IsBounded() bool {
	return isFinite(l.T0) && isFinite(l.T1)
}

// Domain returns the bounds of the parameter.
func (l Line) Domain() (float64, float64) { return l.T0, l.T1 }

// Length returns the length of the line, which is infinite for rays and
// straight lines.
func (l Line) Length() float64 {
	return (l.T1 - l.T0) * l.Dir.Hypot()
}

// Supporting returns the infinite straight line containing l, with the same
// parametrization.
func (l Line) Supporting() Line {
	l.T0 = math.Inf(-1)
	l.T1 = math.Inf(1)
	return l
}

// paramAccuracy converts Accuracy, a distance, into a parameter tolerance.
func (l Line) paramAccuracy() float64 {
	return Accuracy / l.Dir.Hypot()
}

// containsParam reports whether t lies in the domain of l, within tolerance.
func (l Line) containsParam(t float64) bool {
	eps := l.paramAccuracy()
	return t >= l.T0-eps && t <= l.T1+eps
}

// supportingDistance returns the distance from pt to the supporting line.
func (l Line) supportingDistance(pt Point) float64 {
	return math.Abs(l.Dir.Cross(pt.Sub(l.P0))) / l.Dir.Hypot()
}

// rawPosition returns the parameter of the orthogonal projection of pt onto
// the supporting line.
func (l Line) rawPosition(pt Point) float64 {
	return pt.Sub(l.P0).Dot(l.Dir) / l.Dir.Hypot2()
}

func (l Line) Position(pt Point) (float64, bool) {
	if l.supportingDistance(pt) > scaledAccuracy(Vec2(pt).Hypot()) {
		return 0, false
	}
	t := l.rawPosition(pt)
	if !l.containsParam(t) {
		return 0, false
	}
	return clamp(t, l.T0, l.T1), true
}

// Contains reports whether pt lies on l, within [Accuracy].
func (l Line) Contains(pt Point) bool {
	_, ok := l.Position(pt)
	return ok
}

func (l Line) Project(pt Point) float64 {
	return clamp(l.rawPosition(pt), l.T0, l.T1)
}

// Distance returns the distance between pt and the closest point of l.
func (l Line) Distance(pt Point) float64 {
	return pt.Distance(l.Point(l.Project(pt)))
}

// SignedDistance returns the distance to l, negative when pt is on the left
// side of the supporting line.
func (l Line) SignedDistance(pt Point) float64 {
	d := l.Distance(pt)
	if l.IsInside(pt) {
		return -d
	}
	return d
}

// IsInside reports whether pt lies strictly on the left of the supporting
// line, when looking along Dir.
func (l Line) IsInside(pt Point) bool {
	return l.Dir.Cross(pt.Sub(l.P0)) > 0
}

func (l Line) SubCurve(t0, t1 float64) Curve {
	return l.SubLine(t0, t1)
}

// SubLine is like SubCurve but returns a Line. When t0 > t1 the result runs in
// the opposite direction.
func (l Line) SubLine(t0, t1 float64) Line {
	if t0 > t1 {
		return l.SubLine(t1, t0).ReverseLine()
	}
	lo := clamp(t0, l.T0, l.T1)
	hi := clamp(t1, l.T0, l.T1)
	l.T0, l.T1 = lo, hi
	return l
}

func (l Line) Reverse() Curve { return l.ReverseLine() }

// ReverseLine is like Reverse but returns a Line.
func (l Line) ReverseLine() Line {
	return Line{P0: l.P0, Dir: l.Dir.Negate(), T0: -l.T1, T1: -l.T0}
}

func (l Line) BoundingBox() Box {
	return BoxFromPoints(l.FirstPoint(), l.LastPoint())
}

// Parallel returns the line offset by d to the right of its direction.
func (l Line) Parallel(d float64) Line {
	n := Vec2{X: l.Dir.Y, Y: -l.Dir.X}.Normalize()
	l.P0 = l.P0.Translate(n.Mul(d))
	return l
}

// Perpendicular returns the straight line through pt that is perpendicular
// to l, rotated counter-clockwise from its direction.
func (l Line) Perpendicular(pt Point) Line {
	return Line{P0: pt, Dir: l.Dir.Rot90(), T0: math.Inf(-1), T1: math.Inf(1)}
}

// Transform applies aff to l. The parametrization is preserved.
func (l Line) Transform(aff Affine) Line {
	return Line{
		P0:  l.P0.Transform(aff),
		Dir: l.Dir.Transform(aff),
		T0:  l.T0,
		T1:  l.T1,
	}
}

// Crossing returns the parameters on l and o of the point where the
// supporting lines cross. It reports false for parallel lines.
func (l Line) Crossing(o Line) (tl, to float64, ok bool) {
	den := l.Dir.Cross(o.Dir)
	if math.Abs(den) < Accuracy*l.Dir.Hypot()*o.Dir.Hypot() {
		return 0, 0, false
	}
	d := o.P0.Sub(l.P0)
	return d.Cross(o.Dir) / den, d.Cross(l.Dir) / den, true
}

// Intersection returns the point shared by l and o, taking the bounds of
// both into account. Parallel and coincident lines have no single
// intersection point and report false.
func (l Line) Intersection(o Line) (Point, bool) {
	tl, to, ok := l.Crossing(o)
	if !ok || !l.containsParam(tl) || !o.containsParam(to) {
		return Point{}, false
	}
	return l.Point(clamp(tl, l.T0, l.T1)), true
}
