package conic

import (
	"fmt"
	"math"
)

// CircleInversion is the inversion in the circle with the given center and
// radius. It maps a point x to Center + Radius²·(x − Center)/|x − Center|²,
// and is its own inverse.
type CircleInversion struct {
	Center Point
	Radius float64
}

// NewCircleInversion returns the inversion in the given circle. The radius
// must be positive and finite.
func NewCircleInversion(center Point, radius float64) (CircleInversion, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return CircleInversion{}, fmt.Errorf("inversion with radius %g: %w", radius, ErrDegenerate)
	}
	return CircleInversion{Center: center, Radius: radius}, nil
}

// Apply returns the image of pt. The center maps to a point at infinity, and
// points at infinity map to the center.
func (inv CircleInversion) Apply(pt Point) Point {
	if pt.IsInf() {
		return inv.Center
	}
	v := pt.Sub(inv.Center)
	d2 := v.Hypot2()
	if d2 == 0 {
		return Point{math.Inf(1), math.Inf(1)}
	}
	return inv.Center.Translate(v.Mul(inv.Radius * inv.Radius / d2))
}

// Invert returns the image of c under inv. Circles and straight curves map
// to circles and straight curves; the images of curves passing through the
// center of inversion may be unbounded and are returned as a CurveSet when
// they fall apart into two pieces.
//
// Full circles and straight lines keep their inside: the image of the left
// side of c is the left side of the image. Arcs, rays and segments keep
// their direction of travel instead, so that the images of connected curves
// stay connected.
//
// Curves that aren't circulinear return ErrNotCirculinear. Ellipses that
// are circles are treated as such.
func Invert(c Curve, inv CircleInversion) (Curve, error) {
	switch c := c.(type) {
	case Circle:
		return inv.circle(c), nil
	case Ellipse:
		if circle, ok := c.AsCircle(); ok {
			return inv.circle(circle), nil
		}
	case CircleArc:
		return inv.circleArc(c), nil
	case EllipseArc:
		if circle, ok := c.Ellipse.AsCircle(); ok {
			return inv.circleArc(CircleArc{Circle: circle, Start: c.Start, Extent: c.Extent}), nil
		}
	case Line:
		return inv.line(c), nil
	case Contour:
		return inv.pieces(c.Elements(), true)
	case CurveSet:
		return inv.pieces(c, false)
	}
	return nil, fmt.Errorf("inverting %T: %w", c, ErrNotCirculinear)
}

// pieces inverts every curve of cs. When contour is true and no image falls
// apart, the images are joined into a Contour.
func (inv CircleInversion) pieces(cs []Curve, contour bool) (Curve, error) {
	var out []Curve
	split := false
	for _, c := range cs {
		img, err := Invert(c, inv)
		if err != nil {
			return nil, err
		}
		if set, ok := img.(CurveSet); ok {
			split = true
			out = append(out, set...)
		} else {
			out = append(out, img)
		}
	}
	if contour && !split {
		return NewContour(out...), nil
	}
	return CurveSet(out), nil
}

func (inv CircleInversion) circle(c Circle) Curve {
	o := inv.Center
	k2 := inv.Radius * inv.Radius
	v := c.Center.Sub(o)
	d := v.Hypot()
	u := Vec2{1, 0}
	if d > Accuracy {
		u = v.Div(d)
	}

	if math.Abs(d-c.Radius) <= scaledAccuracy(c.Radius) {
		// Through the center: the image of the farthest point, at distance
		// 2r along u, lies on the image line.
		foot := o.Translate(u.Mul(k2 / (2 * c.Radius)))
		dir := Vec2{u.Y, -u.X}
		if c.Indirect {
			dir = dir.Negate()
		}
		return Line{P0: foot, Dir: dir, T0: math.Inf(-1), T1: math.Inf(1)}
	}

	p1 := inv.Apply(c.Center.Translate(u.Mul(c.Radius)))
	p2 := inv.Apply(c.Center.Translate(u.Mul(-c.Radius)))
	inside := d < c.Radius
	return Circle{
		Center:   p1.Midpoint(p2),
		Radius:   p1.Distance(p2) / 2,
		Indirect: c.Indirect != inside,
	}
}

func (inv CircleInversion) circleArc(a CircleArc) Curve {
	o := inv.Center
	ext := math.Abs(a.Extent)
	if math.Abs(a.Circle.Center.Distance(o)-a.Circle.Radius) > scaledAccuracy(a.Circle.Radius) {
		if a.IsClosed() {
			img := inv.circle(Circle{Center: a.Circle.Center, Radius: a.Circle.Radius, Indirect: !a.IsDirect()}).(Circle)
			t := img.param(inv.Apply(a.FirstPoint()))
			return img.Arc(t, t+twoPi)
		}
		arc, err := threePointArc(inv.Apply(a.FirstPoint()), inv.Apply(a.Point(ext/2)), inv.Apply(a.LastPoint()))
		if err != nil {
			return segment(inv.Apply(a.FirstPoint()), inv.Apply(a.LastPoint()))
		}
		return arc
	}

	// The supporting circle passes through the center: the image is part of
	// a straight line.
	tO, onArc := a.Position(o)
	eps := scaledAccuracy(a.Circle.Radius) / a.Circle.Radius
	switch {
	case !onArc:
		return segment(inv.Apply(a.FirstPoint()), inv.Apply(a.LastPoint()))
	case tO <= eps:
		end := inv.Apply(a.LastPoint())
		dir := end.Sub(inv.Apply(a.Point(ext / 2)))
		return Line{P0: end, Dir: dir, T0: math.Inf(-1), T1: 0}
	case tO >= ext-eps:
		start := inv.Apply(a.FirstPoint())
		dir := inv.Apply(a.Point(ext / 2)).Sub(start)
		return Line{P0: start, Dir: dir, T0: 0, T1: math.Inf(1)}
	default:
		start := inv.Apply(a.FirstPoint())
		end := inv.Apply(a.LastPoint())
		d1 := inv.Apply(a.Point(tO / 2)).Sub(start)
		d2 := end.Sub(inv.Apply(a.Point((tO + ext) / 2)))
		return CurveSet{
			Line{P0: start, Dir: d1, T0: 0, T1: math.Inf(1)},
			Line{P0: end, Dir: d2, T0: math.Inf(-1), T1: 0},
		}
	}
}

func (inv CircleInversion) line(l Line) Curve {
	o := inv.Center
	k2 := inv.Radius * inv.Radius
	u := l.Dir.Normalize()

	if l.supportingDistance(o) <= scaledAccuracy(Vec2(o).Hypot()) {
		if l.Kind() == StraightLineKind {
			return l
		}
		// Signed distances from the center along u, mapped by s ↦ k²/s. The
		// image is parametrized by σ = −k²/s, which grows along the line.
		n := l.Dir.Hypot()
		base := l.P0.Sub(o).Dot(u)
		s0, s1 := base+l.T0*n, base+l.T1*n
		sigma := func(s float64, atEnd bool) float64 {
			if math.Abs(s) <= Accuracy {
				// Leaving the center goes to −∞, arriving at it to +∞.
				if atEnd {
					return math.Inf(1)
				}
				return math.Inf(-1)
			}
			if math.IsInf(s, 0) {
				return 0
			}
			return -k2 / s
		}
		img := Line{P0: o, Dir: u.Negate()}
		if s0 < -Accuracy && s1 > Accuracy {
			first, second := img, img
			first.T0, first.T1 = sigma(s0, false), math.Inf(1)
			second.T0, second.T1 = math.Inf(-1), sigma(s1, true)
			return CurveSet{first, second}
		}
		img.T0, img.T1 = sigma(s0, false), sigma(s1, true)
		return img
	}

	// Not through the center: the image circle has the segment from the
	// center to the image of the foot of the perpendicular as a diameter.
	foot := l.Supporting().Point(l.rawPosition(o))
	fi := inv.Apply(foot)
	circle := Circle{
		Center:   o.Midpoint(fi),
		Radius:   o.Distance(fi) / 2,
		Indirect: l.IsInside(o),
	}
	if l.Kind() == StraightLineKind {
		return circle
	}
	first := inv.Apply(l.FirstPoint())
	last := inv.Apply(l.LastPoint())
	mid := inv.Apply(l.Point(MidParam(l.T0, l.T1)))
	arc, err := threePointArc(first, mid, last)
	if err != nil {
		return segment(first, last)
	}
	return arc
}

// threePointArc returns the arc of the circle through the three points that
// starts at p1, passes through pm and ends at p2.
func threePointArc(p1, pm, p2 Point) (CircleArc, error) {
	c, err := CircumCircle(p1, pm, p2)
	if err != nil {
		return CircleArc{}, err
	}
	a1 := p1.Sub(c.Center).Angle()
	a2 := p2.Sub(c.Center).Angle()
	ext := AngleDiff(a1, a2)
	if pm.Sub(p1).Cross(p2.Sub(p1)) < 0 {
		ext = -AngleDiff(a2, a1)
	}
	return CircleArc{Circle: c, Start: a1, Extent: ext}, nil
}
