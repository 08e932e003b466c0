package conic

import (
	"fmt"
	"iter"
	"math"
)

// Curve is a parametrized planar curve. All implementations live in this
// package: lines, the conic families and their arcs, [Contour] and
// [CurveSet].
//
// The parameter ranges over [t0, t1] as reported by Domain, either bound of
// which may be infinite. Algorithms that depend on the kind of curve, such as
// [IntersectLine], [TransformCurve] and [Invert], are functions that switch on
// the concrete type.
type Curve interface {
	// Point evaluates the curve at parameter t.
	Point(t float64) Point
	// Tangent returns the derivative of the curve at t.
	Tangent(t float64) Vec2
	// Curvature returns the signed curvature at t. It is positive where the
	// curve turns left.
	Curvature(t float64) float64
	// Position returns the parameter of pt, and false if pt isn't on the
	// curve within [Accuracy].
	Position(pt Point) (float64, bool)
	// Project returns the parameter of the point of the curve closest to pt.
	Project(pt Point) float64
	// Domain returns the bounds of the parameter.
	Domain() (t0, t1 float64)
	FirstPoint() Point
	LastPoint() Point
	// SubCurve returns the portion of the curve between t0 and t1, as a
	// curve of the same family.
	SubCurve(t0, t1 float64) Curve
	// Reverse returns the same point set traversed in the opposite
	// direction.
	Reverse() Curve
	// BoundingBox returns the smallest box containing the curve. Unbounded
	// curves have boxes with infinite sides.
	BoundingBox() Box
	IsBounded() bool
	IsClosed() bool

	isCurve()
}

// Sided describes curves that separate the plane into an inside, on their
// left, and an outside.
type Sided interface {
	// SignedDistance returns the distance between pt and the curve,
	// negative when pt is inside.
	SignedDistance(pt Point) float64
	// IsInside reports whether pt lies on the inner side of the curve.
	IsInside(pt Point) bool
}

// Sample returns n points of c, evenly spaced in parameter space over its
// whole domain. Closed curves repeat their first point at the end.
func Sample(c Curve, n int) ([]Point, error) {
	if !c.IsBounded() {
		return nil, fmt.Errorf("sampling %T: %w", c, ErrUnbounded)
	}
	if n < 2 {
		return nil, fmt.Errorf("sampling %d points: %w", n, ErrDegenerate)
	}
	out := make([]Point, 0, n)
	for pt := range Points(c, n) {
		out = append(out, pt)
	}
	return out, nil
}

// Points returns an iterator over n points of c, evenly spaced in parameter
// space. Unlike [Sample], it doesn't validate its arguments; unbounded
// curves produce points at infinity.
func Points(c Curve, n int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		t0, t1 := c.Domain()
		for i := range n {
			t := t0
			if n > 1 {
				t = t0 + (t1-t0)*float64(i)/float64(n-1)
			}
			if i == n-1 {
				t = t1
			}
			if !yield(c.Point(t)) {
				return
			}
		}
	}
}

// curvature returns the signed curvature of a curve with first derivative d1
// and second derivative d2.
func curvature(d1, d2 Vec2) float64 {
	n := d1.Hypot()
	return d1.Cross(d2) / (n * n * n)
}

// boxOfParams returns the bounding box of the points of c at the end points
// of its domain and at those of ts that lie inside it.
func boxOfParams(c Curve, ts ...float64) Box {
	t0, t1 := c.Domain()
	b := BoxFromPoints(c.Point(t0), c.Point(t1))
	for _, t := range ts {
		if t > t0 && t < t1 {
			b = b.UnionPoint(c.Point(t))
		}
	}
	return b
}

// MidParam returns a parameter strictly between t0 and t1, also when either
// bound is infinite.
func MidParam(t0, t1 float64) float64 {
	inf0, inf1 := math.IsInf(t0, 0), math.IsInf(t1, 0)
	switch {
	case inf0 && inf1:
		return 0
	case inf0:
		return t1 - 1
	case inf1:
		return t0 + 1
	default:
		return (t0 + t1) / 2
	}
}

// toUnit maps t ∈ [t0, t1] monotonically onto [0, 1]. Infinite bounds are
// handled with rational maps, so that rays and lines have a finite
// normalized domain too.
func toUnit(t, t0, t1 float64) float64 {
	inf0, inf1 := math.IsInf(t0, 0), math.IsInf(t1, 0)
	switch {
	case inf0 && inf1:
		if math.IsInf(t, 0) {
			return math.Max(0, math.Copysign(1, t))
		}
		return 0.5 + math.Atan(t)/math.Pi
	case inf1:
		s := t - t0
		if math.IsInf(s, 1) {
			return 1
		}
		return s / (1 + s)
	case inf0:
		s := t1 - t
		if math.IsInf(s, 1) {
			return 0
		}
		return 1 - s/(1+s)
	case t1 == t0:
		return 0
	default:
		return (t - t0) / (t1 - t0)
	}
}

// fromUnit is the inverse of toUnit.
func fromUnit(u, t0, t1 float64) float64 {
	inf0, inf1 := math.IsInf(t0, 0), math.IsInf(t1, 0)
	switch {
	case inf0 && inf1:
		if u <= 0 {
			return math.Inf(-1)
		}
		if u >= 1 {
			return math.Inf(1)
		}
		return math.Tan(math.Pi * (u - 0.5))
	case inf1:
		if u >= 1 {
			return math.Inf(1)
		}
		return t0 + u/(1-u)
	case inf0:
		if u <= 0 {
			return math.Inf(-1)
		}
		return t1 - (1-u)/u
	default:
		return t0 + u*(t1-t0)
	}
}

// CurveSet is an ordered collection of curves, not necessarily connected. It
// is the result type of clipping.
//
// As a Curve, member i covers the parameter range [2i, 2i+1], onto which its
// own domain is mapped monotonically. The gaps between members don't belong
// to the domain.
type CurveSet []Curve

var _ Curve = CurveSet(nil)

func (cs CurveSet) isCurve() {}

// locate returns the member and its local parameter for t.
func (cs CurveSet) locate(t float64) (Curve, float64) {
	i := int(math.Floor(t / 2))
	i = min(max(i, 0), len(cs)-1)
	u := clamp(t-2*float64(i), 0, 1)
	c := cs[i]
	t0, t1 := c.Domain()
	return c, fromUnit(u, t0, t1)
}

// global converts the local parameter t of member i to a set parameter.
func (cs CurveSet) global(i int, t float64) float64 {
	t0, t1 := cs[i].Domain()
	return 2*float64(i) + toUnit(t, t0, t1)
}

// Members returns an iterator over the curves of the set.
func (cs CurveSet) Members() iter.Seq2[int, Curve] {
	return func(yield func(int, Curve) bool) {
		for i, c := range cs {
			if !yield(i, c) {
				return
			}
		}
	}
}

func (cs CurveSet) Point(t float64) Point {
	c, lt := cs.locate(t)
	return c.Point(lt)
}

// Tangent returns the tangent of the member at t, in its own
// parametrization.
func (cs CurveSet) Tangent(t float64) Vec2 {
	c, lt := cs.locate(t)
	return c.Tangent(lt)
}

func (cs CurveSet) Curvature(t float64) float64 {
	c, lt := cs.locate(t)
	return c.Curvature(lt)
}

func (cs CurveSet) Position(pt Point) (float64, bool) {
	for i, c := range cs {
		if t, ok := c.Position(pt); ok {
			return cs.global(i, t), true
		}
	}
	return 0, false
}

func (cs CurveSet) Project(pt Point) float64 {
	best, bestDist := 0.0, math.Inf(1)
	for i, c := range cs {
		t := c.Project(pt)
		if d := pt.Distance(c.Point(t)); d < bestDist {
			best, bestDist = cs.global(i, t), d
		}
	}
	return best
}

func (cs CurveSet) Domain() (float64, float64) {
	if len(cs) == 0 {
		return 0, 0
	}
	return 0, 2*float64(len(cs)-1) + 1
}

func (cs CurveSet) FirstPoint() Point { return cs[0].FirstPoint() }
func (cs CurveSet) LastPoint() Point  { return cs[len(cs)-1].LastPoint() }
func (cs CurveSet) IsClosed() bool    { return false }

func (cs CurveSet) IsBounded() bool {
	for _, c := range cs {
		if !c.IsBounded() {
			return false
		}
	}
	return true
}

// SubCurve returns the members, or portions of members, between t0 and t1.
func (cs CurveSet) SubCurve(t0, t1 float64) Curve {
	if t0 > t1 {
		return cs.SubCurve(t1, t0).Reverse()
	}
	var out CurveSet
	for i, c := range cs {
		lo, hi := 2*float64(i), 2*float64(i)+1
		if hi < t0 || lo > t1 {
			continue
		}
		ct0, ct1 := c.Domain()
		a := fromUnit(clamp(t0-lo, 0, 1), ct0, ct1)
		b := fromUnit(clamp(t1-lo, 0, 1), ct0, ct1)
		if a == ct0 && b == ct1 {
			out = append(out, c)
		} else {
			out = append(out, c.SubCurve(a, b))
		}
	}
	return out
}

func (cs CurveSet) Reverse() Curve {
	out := make(CurveSet, len(cs))
	for i, c := range cs {
		out[len(cs)-1-i] = c.Reverse()
	}
	return out
}

func (cs CurveSet) BoundingBox() Box {
	if len(cs) == 0 {
		return Box{}
	}
	b := cs[0].BoundingBox()
	for _, c := range cs[1:] {
		b = b.Union(c.BoundingBox())
	}
	return b
}
