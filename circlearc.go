package conic

import (
	"fmt"
	"math"
)

// CircleArc is a portion of a circle, starting at angle Start and sweeping
// Extent radians. A positive Extent sweeps counter-clockwise, a negative one
// clockwise. Start is in [0, 2π) and Extent in [−2π, 2π].
//
// The parameter is t ∈ [0, |Extent|], the point at t having the angle
// Start + t (or Start − t for clockwise arcs). The orientation is carried by
// the sign of Extent alone; Circle.Indirect is ignored.
type CircleArc struct {
	Circle Circle
	Start  float64
	Extent float64
}

var _ Curve = CircleArc{}
var _ Sided = CircleArc{}

// NewCircleArc returns the arc of the circle with the given center and
// radius.
func NewCircleArc(center Point, radius, start, extent float64) (CircleArc, error) {
	c, err := NewCircle(center, radius)
	if err != nil {
		return CircleArc{}, err
	}
	if math.Abs(extent) > twoPi+Accuracy || math.IsNaN(extent) {
		return CircleArc{}, fmt.Errorf("circle arc with extent %g: %w", extent, ErrDegenerate)
	}
	return CircleArc{Circle: c, Start: NormalizeAngle(start), Extent: clamp(extent, -twoPi, twoPi)}, nil
}

func (a CircleArc) isCurve() {}

// IsDirect reports whether the arc sweeps counter-clockwise.
func (a CircleArc) IsDirect() bool { return a.Extent >= 0 }

func (a CircleArc) sign() float64 {
	if a.Extent < 0 {
		return -1
	}
	return 1
}

// angle returns the polar angle of the point at t.
func (a CircleArc) angle(t float64) float64 {
	return a.Start + a.sign()*t
}

// ContainsAngle reports whether the arc sweeps over the polar angle th.
func (a CircleArc) ContainsAngle(th float64) bool {
	return ContainsAngle(a.Start, a.Extent, th)
}

func (a CircleArc) Point(t float64) Point {
	sin, cos := math.Sincos(a.angle(t))
	return Point{a.Circle.Center.X + a.Circle.Radius*cos, a.Circle.Center.Y + a.Circle.Radius*sin}
}

func (a CircleArc) Tangent(t float64) Vec2 {
	sin, cos := math.Sincos(a.angle(t))
	s := a.sign() * a.Circle.Radius
	return Vec2{-s * sin, s * cos}
}

func (a CircleArc) Curvature(t float64) float64 {
	return a.sign() / a.Circle.Radius
}

// param returns the angle swept from the start of the arc to the polar angle
// of pt, in [0, 2π).
func (a CircleArc) param(pt Point) float64 {
	th := pt.Sub(a.Circle.Center).Angle()
	if a.Extent < 0 {
		return NormalizeAngle(a.Start - th)
	}
	return NormalizeAngle(th - a.Start)
}

// inDomain maps a swept angle onto the domain, reporting false if it lies
// outside of it. Angles just short of 2π are treated as 0.
func (a CircleArc) inDomain(t float64) (float64, bool) {
	ext := math.Abs(a.Extent)
	switch {
	case t <= ext+Accuracy:
		return min(t, ext), true
	case t >= twoPi-Accuracy:
		return 0, true
	default:
		return 0, false
	}
}

func (a CircleArc) Position(pt Point) (float64, bool) {
	if _, ok := a.Circle.Position(pt); !ok {
		return 0, false
	}
	return a.inDomain(a.param(pt))
}

func (a CircleArc) Project(pt Point) float64 {
	if t, ok := a.inDomain(a.param(pt)); ok {
		return t
	}
	ext := math.Abs(a.Extent)
	if pt.DistanceSquared(a.Point(0)) <= pt.DistanceSquared(a.Point(ext)) {
		return 0
	}
	return ext
}

func (a CircleArc) Domain() (float64, float64) { return 0, math.Abs(a.Extent) }

func (a CircleArc) FirstPoint() Point { return a.Point(0) }
func (a CircleArc) LastPoint() Point  { return a.Point(math.Abs(a.Extent)) }
func (a CircleArc) IsBounded() bool   { return true }

func (a CircleArc) IsClosed() bool {
	return math.Abs(a.Extent) >= twoPi-Accuracy
}

func (a CircleArc) SubCurve(t0, t1 float64) Curve {
	return a.SubArc(t0, t1)
}

// SubArc is like SubCurve but returns a CircleArc. When t0 > t1 the result
// runs in the opposite direction, unless the arc is closed, in which case it
// passes through the first point.
func (a CircleArc) SubArc(t0, t1 float64) CircleArc {
	ext := math.Abs(a.Extent)
	t0 = clamp(t0, 0, ext)
	t1 = clamp(t1, 0, ext)
	if t1 < t0 && a.IsClosed() {
		t1 += ext
	}
	return CircleArc{
		Circle: a.Circle,
		Start:  NormalizeAngle(a.angle(t0)),
		Extent: a.sign() * (t1 - t0),
	}
}

func (a CircleArc) Reverse() Curve { return a.ReverseArc() }

// ReverseArc is like Reverse but returns a CircleArc.
func (a CircleArc) ReverseArc() CircleArc {
	return CircleArc{
		Circle: a.Circle,
		Start:  NormalizeAngle(a.Start + a.Extent),
		Extent: -a.Extent,
	}
}

func (a CircleArc) BoundingBox() Box {
	var ts [4]float64
	for i := range ts {
		th := float64(i) * math.Pi / 2
		if a.Extent < 0 {
			ts[i] = NormalizeAngle(a.Start - th)
		} else {
			ts[i] = NormalizeAngle(th - a.Start)
		}
	}
	return boxOfParams(a, ts[:]...)
}

// IsInside reports whether pt lies on the left of the arc.
//
// Near the open ends the side is decided in order by: the disk of the
// supporting circle, the chord between the end points (for arcs sweeping at
// most π), the angular span of the arc, and the tangent lines at the two end
// points.
func (a CircleArc) IsInside(pt Point) bool {
	direct := a.IsDirect()
	if pt.Distance(a.Circle.Center) < a.Circle.Radius {
		return direct
	}

	p1, p2 := a.FirstPoint(), a.LastPoint()
	if math.Abs(a.Extent) <= math.Pi && !p1.AlmostEqual(p2) {
		side := p2.Sub(p1).Cross(pt.Sub(p1))
		if direct && side > 0 {
			return true
		}
		if !direct && side < 0 {
			return false
		}
	}

	if a.ContainsAngle(pt.Sub(a.Circle.Center).Angle()) {
		return !direct
	}

	ext := math.Abs(a.Extent)
	in1 := Line{P0: p1, Dir: a.Tangent(0)}.IsInside(pt)
	in2 := Line{P0: p2, Dir: a.Tangent(ext)}.IsInside(pt)
	if direct {
		return in1 && in2
	}
	return in1 || in2
}

func (a CircleArc) SignedDistance(pt Point) float64 {
	d := pt.Distance(a.Point(a.Project(pt)))
	if a.IsInside(pt) {
		return -d
	}
	return d
}

// Parallel returns the arc at distance d on the right of a. It returns
// ErrDegenerate when the result would have a non-positive radius.
func (a CircleArc) Parallel(d float64) (CircleArc, error) {
	r := a.Circle.Radius + a.sign()*d
	if r <= 0 {
		return CircleArc{}, fmt.Errorf("parallel of arc with radius %g at distance %g: %w", a.Circle.Radius, d, ErrDegenerate)
	}
	a.Circle.Radius = r
	return a, nil
}

func (a CircleArc) linePositions(l Line) []float64 {
	var out []float64
	for _, pt := range lineCircleIntersections(l, a.Circle.Center, a.Circle.Radius) {
		if t, ok := a.inDomain(a.param(pt)); ok {
			out = append(out, t)
		}
	}
	return out
}
