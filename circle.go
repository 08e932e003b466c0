package conic

import (
	"fmt"
	"math"
)

// Circle is a full circle. The zero value of Indirect describes a
// counter-clockwise (direct) circle.
//
// The parameter is the angle t ∈ [0, 2π). A direct circle has points
// Center + Radius·(cos t, sin t); an indirect one Center + Radius·(cos t,
// −sin t), so that reversing a circle maps t to −t.
type Circle struct {
	Center   Point
	Radius   float64
	Indirect bool
}

var _ Curve = Circle{}
var _ Sided = Circle{}

// NewCircle returns the direct circle with the given center and radius. The
// radius must be positive and finite.
func NewCircle(center Point, radius float64) (Circle, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return Circle{}, fmt.Errorf("circle with radius %g: %w", radius, ErrDegenerate)
	}
	return Circle{Center: center, Radius: radius}, nil
}

// CircumCircle returns the circle passing through the three points. It
// returns ErrDegenerate if the points are colinear, in which case the
// bisectors of the sides don't cross.
//
// The circle is direct.
func CircumCircle(p1, p2, p3 Point) (Circle, error) {
	if Colinear(p1, p2, p3) {
		return Circle{}, fmt.Errorf("circumcircle of %s, %s, %s: %w", p1, p2, p3, ErrDegenerate)
	}
	b1 := Line{P0: p1.Midpoint(p2), Dir: p2.Sub(p1).Rot90(), T0: math.Inf(-1), T1: math.Inf(1)}
	b2 := Line{P0: p2.Midpoint(p3), Dir: p3.Sub(p2).Rot90(), T0: math.Inf(-1), T1: math.Inf(1)}
	t, _, ok := b1.Crossing(b2)
	if !ok {
		return Circle{}, fmt.Errorf("circumcircle of %s, %s, %s: %w", p1, p2, p3, ErrDegenerate)
	}
	center := b1.Point(t)
	return Circle{Center: center, Radius: center.Distance(p1)}, nil
}

// CirclesIntersections returns the points shared by two circles.
//
// With d the distance between the centers, there are no points when d is
// smaller than |r1 − r2| or larger than r1 + r2, a single point when d equals
// either bound within tolerance, and two points otherwise. Concentric circles
// have no intersection points, even when they coincide.
func CirclesIntersections(c1, c2 Circle) []Point {
	v := c2.Center.Sub(c1.Center)
	d := v.Hypot()
	if d < Accuracy {
		return nil
	}
	r1, r2 := c1.Radius, c2.Radius
	eps := scaledAccuracy(max(r1, r2))
	outer, inner := r1+r2, math.Abs(r1-r2)
	if d > outer+eps || d < inner-eps {
		return nil
	}
	u := v.Div(d)
	d1 := (d*d + r1*r1 - r2*r2) / (2 * d)
	base := c1.Center.Translate(u.Mul(d1))
	if math.Abs(d-outer) <= eps || math.Abs(d-inner) <= eps {
		return []Point{base}
	}
	h := math.Sqrt(max(0, r1*r1-d1*d1))
	n := u.Rot90().Mul(h)
	return []Point{base.Translate(n), base.Translate(n.Negate())}
}

// RadicalAxis returns the radical axis of two circles: the straight line of
// points that have the same power with respect to both. It returns
// ErrDegenerate when the centers coincide.
//
// The axis is perpendicular to the line joining the centers and crosses it at
// distance (d² + r1² − r2²)/(2d) from the center of c1.
func RadicalAxis(c1, c2 Circle) (Line, error) {
	v := c2.Center.Sub(c1.Center)
	d := v.Hypot()
	if d < Accuracy {
		return Line{}, fmt.Errorf("radical axis of circles centered at %s: %w", c1.Center, ErrDegenerate)
	}
	u := v.Div(d)
	off := (d*d + c1.Radius*c1.Radius - c2.Radius*c2.Radius) / (2 * d)
	centers := Line{P0: c1.Center, Dir: u, T0: math.Inf(-1), T1: math.Inf(1)}
	return centers.Perpendicular(centers.Point(off)), nil
}

// lineCircleIntersections returns the points where l crosses the circle
// with the given center and radius, restricted to the domain of l. A line
// tangent to the circle yields its single point of contact.
func lineCircleIntersections(l Line, center Point, r float64) []Point {
	t := l.rawPosition(center)
	foot := l.P0.Translate(l.Dir.Mul(t))
	dist := foot.Distance(center)
	eps := scaledAccuracy(r)
	if dist > r+eps {
		return nil
	}
	var ts []float64
	if math.Abs(dist-r) <= eps {
		ts = []float64{t}
	} else {
		h := math.Sqrt(r*r-dist*dist) / l.Dir.Hypot()
		ts = []float64{t - h, t + h}
	}
	var out []Point
	for _, t := range ts {
		if l.containsParam(t) {
			out = append(out, l.P0.Translate(l.Dir.Mul(t)))
		}
	}
	return out
}

func (c Circle) isCurve() {}

// IsDirect reports whether the circle is traversed counter-clockwise.
func (c Circle) IsDirect() bool { return !c.Indirect }

// sign returns 1 for direct circles and -1 for indirect ones.
func (c Circle) sign() float64 {
	if c.Indirect {
		return -1
	}
	return 1
}

func (c Circle) Point(t float64) Point {
	sin, cos := math.Sincos(t)
	return Point{c.Center.X + c.Radius*cos, c.Center.Y + c.sign()*c.Radius*sin}
}

func (c Circle) Tangent(t float64) Vec2 {
	sin, cos := math.Sincos(t)
	return Vec2{-c.Radius * sin, c.sign() * c.Radius * cos}
}

func (c Circle) Curvature(t float64) float64 {
	return c.sign() / c.Radius
}

// param returns the parameter of the point of the circle in the direction of
// pt as seen from the center.
func (c Circle) param(pt Point) float64 {
	th := pt.Sub(c.Center).Angle()
	if c.Indirect {
		return NormalizeAngle(-th)
	}
	return th
}

func (c Circle) Position(pt Point) (float64, bool) {
	if math.Abs(pt.Distance(c.Center)-c.Radius) > scaledAccuracy(c.Radius) {
		return 0, false
	}
	return c.param(pt), true
}

// Project returns the parameter of the point closest to pt. The center
// projects to t = 0.
func (c Circle) Project(pt Point) float64 {
	return c.param(pt)
}

func (c Circle) Domain() (float64, float64) { return 0, twoPi }

func (c Circle) FirstPoint() Point { return c.Point(0) }
func (c Circle) LastPoint() Point  { return c.Point(0) }
func (c Circle) IsBounded() bool   { return true }
func (c Circle) IsClosed() bool    { return true }

// SubCurve returns the arc from t0 to t1. When t1 < t0, the arc passes
// through t = 0.
func (c Circle) SubCurve(t0, t1 float64) Curve {
	return c.Arc(t0, t1)
}

// Arc is like SubCurve but returns a CircleArc.
func (c Circle) Arc(t0, t1 float64) CircleArc {
	ext := t1 - t0
	if ext < 0 {
		ext += twoPi
	}
	start := t0
	if c.Indirect {
		start, ext = -t0, -ext
	}
	return CircleArc{
		Circle: Circle{Center: c.Center, Radius: c.Radius},
		Start:  NormalizeAngle(start),
		Extent: ext,
	}
}

func (c Circle) Reverse() Curve { return c.ReverseCircle() }

// ReverseCircle is like Reverse but returns a Circle.
func (c Circle) ReverseCircle() Circle {
	c.Indirect = !c.Indirect
	return c
}

func (c Circle) BoundingBox() Box {
	r := c.Radius
	return Box{c.Center.X - r, c.Center.X + r, c.Center.Y - r, c.Center.Y + r}
}

// SignedDistance returns the distance to the circle, negative inside the
// disk for direct circles and outside it for indirect ones.
func (c Circle) SignedDistance(pt Point) float64 {
	return c.sign() * (pt.Distance(c.Center) - c.Radius)
}

func (c Circle) IsInside(pt Point) bool {
	return c.SignedDistance(pt) < 0
}

// Power returns the power of pt with respect to the circle: the squared
// distance to the center minus the squared radius.
func (c Circle) Power(pt Point) float64 {
	return pt.DistanceSquared(c.Center) - c.Radius*c.Radius
}

// Parallel returns the circle at distance d on the right of c, that is,
// outside for direct circles. It returns ErrDegenerate when the result would
// have a non-positive radius.
func (c Circle) Parallel(d float64) (Circle, error) {
	r := c.Radius + c.sign()*d
	if r <= 0 {
		return Circle{}, fmt.Errorf("parallel of circle with radius %g at distance %g: %w", c.Radius, d, ErrDegenerate)
	}
	c.Radius = r
	return c, nil
}

// AsEllipse returns the circle as an ellipse with equal radii.
func (c Circle) AsEllipse() Ellipse {
	return Ellipse{Center: c.Center, R1: c.Radius, R2: c.Radius, Indirect: c.Indirect}
}

// Transform applies aff to the circle. The image of a circle under an
// affine transform is an ellipse in general. Singular transforms return
// ErrDegenerate.
func (c Circle) Transform(aff Affine) (Ellipse, error) {
	return c.AsEllipse().Transform(aff)
}

func (c Circle) linePositions(l Line) []float64 {
	pts := lineCircleIntersections(l, c.Center, c.Radius)
	out := make([]float64, len(pts))
	for i, pt := range pts {
		out[i] = c.param(pt)
	}
	return out
}
