package conic

import (
	"iter"
	"math"
)

// Contour is a chain of curves, each starting where the previous one ends.
// It is closed when the last curve ends at the start of the first. Contours
// are produced by boundary stitching, where they describe closed regions.
//
// The parameter ranges over [0, n] for n curves; curve k covers [k, k+1],
// onto which its own domain is mapped monotonically.
type Contour struct {
	curves []Curve
}

var _ Curve = Contour{}
var _ Sided = Contour{}

// NewContour returns the contour made of the given curves. Nested contours
// are flattened.
func NewContour(curves ...Curve) Contour {
	out := make([]Curve, 0, len(curves))
	for _, c := range curves {
		if sub, ok := c.(Contour); ok {
			out = append(out, sub.curves...)
		} else {
			out = append(out, c)
		}
	}
	return Contour{curves: out}
}

// Elements returns a copy of the curves of the contour.
func (c Contour) Elements() []Curve {
	return append([]Curve(nil), c.curves...)
}

// Len returns the number of curves.
func (c Contour) Len() int { return len(c.curves) }

func (c Contour) isCurve() {}

func (c Contour) locate(t float64) (Curve, float64) {
	n := len(c.curves)
	k := min(max(int(math.Floor(t)), 0), n-1)
	u := clamp(t-float64(k), 0, 1)
	e := c.curves[k]
	t0, t1 := e.Domain()
	return e, fromUnit(u, t0, t1)
}

func (c Contour) global(k int, t float64) float64 {
	t0, t1 := c.curves[k].Domain()
	return float64(k) + toUnit(t, t0, t1)
}

func (c Contour) Point(t float64) Point {
	e, lt := c.locate(t)
	return e.Point(lt)
}

// Tangent returns the tangent of the curve at t, in that curve's own
// parametrization.
func (c Contour) Tangent(t float64) Vec2 {
	e, lt := c.locate(t)
	return e.Tangent(lt)
}

func (c Contour) Curvature(t float64) float64 {
	e, lt := c.locate(t)
	return e.Curvature(lt)
}

func (c Contour) Position(pt Point) (float64, bool) {
	for k, e := range c.curves {
		if t, ok := e.Position(pt); ok {
			return c.global(k, t), true
		}
	}
	return 0, false
}

func (c Contour) Project(pt Point) float64 {
	best, bestD := 0.0, math.Inf(1)
	for k, e := range c.curves {
		t := e.Project(pt)
		if d := pt.DistanceSquared(e.Point(t)); d < bestD {
			best, bestD = c.global(k, t), d
		}
	}
	return best
}

func (c Contour) Domain() (float64, float64) { return 0, float64(len(c.curves)) }

func (c Contour) FirstPoint() Point { return c.curves[0].FirstPoint() }
func (c Contour) LastPoint() Point  { return c.curves[len(c.curves)-1].LastPoint() }

func (c Contour) IsBounded() bool {
	for _, e := range c.curves {
		if !e.IsBounded() {
			return false
		}
	}
	return true
}

func (c Contour) IsClosed() bool {
	if len(c.curves) == 0 {
		return false
	}
	if len(c.curves) == 1 {
		return c.curves[0].IsClosed()
	}
	return c.LastPoint().Distance(c.FirstPoint()) <= scaledAccuracy(Vec2(c.FirstPoint()).Hypot())
}

// SubCurve returns the portion of the contour between t0 and t1. For closed
// contours, t1 < t0 selects the portion that wraps around through the first
// point.
func (c Contour) SubCurve(t0, t1 float64) Curve {
	return c.SubContour(t0, t1)
}

// SubContour is like SubCurve but returns a Contour.
func (c Contour) SubContour(t0, t1 float64) Contour {
	n := float64(len(c.curves))
	t0, t1 = clamp(t0, 0, n), clamp(t1, 0, n)
	if t1 < t0 {
		if c.IsClosed() {
			return NewContour(c.span(t0, n), c.span(0, t1))
		}
		return c.span(t1, t0).ReverseContour()
	}
	return c.span(t0, t1)
}

// span returns the pieces of the curves between t0 ≤ t1.
func (c Contour) span(t0, t1 float64) Contour {
	var out []Curve
	for k, e := range c.curves {
		lo, hi := float64(k), float64(k+1)
		if hi <= t0 || lo >= t1 {
			if !(t0 == t1 && t0 >= lo && t0 <= hi) {
				continue
			}
		}
		et0, et1 := e.Domain()
		a := fromUnit(clamp(t0-lo, 0, 1), et0, et1)
		b := fromUnit(clamp(t1-lo, 0, 1), et0, et1)
		if a == et0 && b == et1 {
			out = append(out, e)
		} else {
			out = append(out, e.SubCurve(a, b))
		}
		if t0 == t1 {
			break
		}
	}
	return Contour{curves: out}
}

func (c Contour) Reverse() Curve { return c.ReverseContour() }

// ReverseContour is like Reverse but returns a Contour.
func (c Contour) ReverseContour() Contour {
	out := make([]Curve, len(c.curves))
	for i, e := range c.curves {
		out[len(c.curves)-1-i] = e.Reverse()
	}
	return Contour{curves: out}
}

func (c Contour) BoundingBox() Box {
	if len(c.curves) == 0 {
		return Box{}
	}
	b := c.curves[0].BoundingBox()
	for _, e := range c.curves[1:] {
		b = b.Union(e.BoundingBox())
	}
	return b
}

// Winding returns the winding number of the contour around pt, positive for
// counter-clockwise turns. It counts the crossings of the horizontal ray
// starting at pt. Upward crossings at the end of a curve and downward
// crossings at its start are not counted, so that crossings through the
// joints of open curves are counted once.
func (c Contour) Winding(pt Point) int {
	ray := Line{P0: pt, Dir: Vec2{1, 0}, T0: 0, T1: math.Inf(1)}
	at := func(t, bound float64) bool {
		return t == bound || (isFinite(bound) && math.Abs(t-bound) <= scaledAccuracy(bound))
	}
	w := 0
	for _, e := range c.curves {
		et0, et1 := e.Domain()
		closed := e.IsClosed()
		for _, t := range LinePositions(e, ray) {
			switch dy := e.Tangent(t).Y; {
			case dy > 0 && (closed || !at(t, et1)):
				w++
			case dy < 0 && (closed || !at(t, et0)):
				w--
			}
		}
	}
	return w
}

// Vertices returns an iterator over the points of a polyline approximating
// the contour. Straight pieces contribute their end points, curved ones n
// points each. Points shared by consecutive pieces are yielded once.
func (c Contour) Vertices(n int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for k, e := range c.curves {
			m := n
			if _, ok := e.(Line); ok {
				m = 2
			}
			i := 0
			for pt := range Points(e, m) {
				if i > 0 || k == 0 {
					if !yield(pt) {
						return
					}
				}
				i++
			}
		}
	}
}

// Area returns the signed area enclosed by a closed bounded contour,
// positive for counter-clockwise contours. Curved pieces are approximated
// by n-gons.
func (c Contour) Area(n int) float64 {
	var a float64
	var prev Point
	first := true
	for pt := range c.Vertices(n) {
		if !first {
			a += prev.X*pt.Y - pt.X*prev.Y
		}
		prev, first = pt, false
	}
	return a / 2
}

// IsInside reports whether pt is on the left of the contour. For closed
// contours this is decided by the winding number: counter-clockwise contours
// contain the points they wind around, clockwise ones the points they don't.
// Open contours defer to their closest curve.
func (c Contour) IsInside(pt Point) bool {
	if c.IsClosed() && c.IsBounded() {
		w := c.Winding(pt)
		if c.Area(16) < 0 {
			w++
		}
		return w > 0
	}
	e, _ := c.locate(c.Project(pt))
	if s, ok := e.(Sided); ok {
		return s.IsInside(pt)
	}
	return false
}

func (c Contour) SignedDistance(pt Point) float64 {
	d := pt.Distance(c.Point(c.Project(pt)))
	if c.IsInside(pt) {
		return -d
	}
	return d
}

// WindingAngle returns the total angle swept by the vector from pt to the
// point of c as c is traversed, approximated with n samples per curve. It is
// 2π times the winding number for closed curves that don't pass through pt.
func WindingAngle(c Curve, pt Point, n int) float64 {
	var curves []Curve
	switch c := c.(type) {
	case Contour:
		curves = c.curves
	case CurveSet:
		curves = c
	default:
		curves = []Curve{c}
	}
	var total float64
	for _, e := range curves {
		prev := math.NaN()
		for p := range Points(e, n) {
			a := math.Atan2(p.Y-pt.Y, p.X-pt.X)
			if !math.IsNaN(prev) {
				d := a - prev
				switch {
				case d > math.Pi:
					d -= twoPi
				case d < -math.Pi:
					d += twoPi
				}
				total += d
			}
			prev = a
		}
	}
	return total
}
