package conic

import (
	"fmt"
	"math"
)

// Parabola is the curve y = A·x² in the frame with origin Vertex and x axis
// along the direction Theta. The parameter is the local x coordinate, so
// the point at t is Vertex + rot(Theta)·(t, A·t²).
//
// The parabola is direct, turning counter-clockwise, when A > 0. Its inside
// is the region above the curve in the local frame, on its left.
type Parabola struct {
	Vertex Point
	A      float64
	Theta  float64
}

var _ Curve = Parabola{}
var _ Sided = Parabola{}

// NewParabola returns a parabola. A must be finite and non-zero.
func NewParabola(vertex Point, a, theta float64) (Parabola, error) {
	if a == 0 || !isFinite(a) {
		return Parabola{}, fmt.Errorf("parabola with coefficient %g: %w", a, ErrDegenerate)
	}
	return Parabola{Vertex: vertex, A: a, Theta: theta}, nil
}

func (p Parabola) isCurve() {}

func (p Parabola) IsDirect() bool { return p.A > 0 }

// toLocal returns the transform into the frame where the parabola is
// y = A·x².
func (p Parabola) toLocal() Affine {
	return Rotate(-p.Theta).Mul(Translate(Vec2(p.Vertex).Negate()))
}

func (p Parabola) toGlobal() Affine {
	return Translate(Vec2(p.Vertex)).Mul(Rotate(p.Theta))
}

// limit returns the limit of c0 + l·t + q·t² for an infinite t.
func limit(c0, l, q, t float64) float64 {
	switch {
	case math.Abs(q) > Accuracy*math.Abs(l):
		return math.Copysign(math.Inf(1), q)
	case l != 0:
		return math.Copysign(math.Inf(1), l*t)
	default:
		return c0
	}
}

func (p Parabola) Point(t float64) Point {
	if math.IsInf(t, 0) {
		sin, cos := math.Sincos(p.Theta)
		return Point{
			limit(p.Vertex.X, cos, -sin*p.A, t),
			limit(p.Vertex.Y, sin, cos*p.A, t),
		}
	}
	return Point{t, p.A * t * t}.Transform(p.toGlobal())
}

func (p Parabola) Tangent(t float64) Vec2 {
	return Vec2{1, 2 * p.A * t}.Rotate(p.Theta)
}

func (p Parabola) Curvature(t float64) float64 {
	return curvature(Vec2{1, 2 * p.A * t}, Vec2{0, 2 * p.A})
}

// param returns the local x coordinate of pt.
func (p Parabola) param(pt Point) float64 {
	return pt.Transform(p.toLocal()).X
}

func (p Parabola) Position(pt Point) (float64, bool) {
	t := p.param(pt)
	if pt.Distance(p.Point(t)) > scaledAccuracy(Vec2(pt).Hypot()) {
		return 0, false
	}
	return t, true
}

// Project returns the parameter of the closest point, as the best real root
// of the cubic 2A²·t³ + (1 − 2A·y)·t − x = 0 in local coordinates.
func (p Parabola) Project(pt Point) float64 {
	return p.projectIn(pt, math.Inf(-1), math.Inf(1))
}

func (p Parabola) projectIn(pt Point, t0, t1 float64) float64 {
	loc := pt.Transform(p.toLocal())
	cands := SolveCubic(-loc.X, 1-2*p.A*loc.Y, 0, 2*p.A*p.A)
	cands = append(cands, t0, t1)
	best, bestD := 0.0, math.Inf(1)
	for _, t := range cands {
		if math.IsInf(t, 0) {
			continue
		}
		t = clamp(t, t0, t1)
		if d := pt.DistanceSquared(p.Point(t)); d < bestD {
			best, bestD = t, d
		}
	}
	return best
}

func (p Parabola) Domain() (float64, float64) { return math.Inf(-1), math.Inf(1) }

func (p Parabola) FirstPoint() Point { return p.Point(math.Inf(-1)) }
func (p Parabola) LastPoint() Point  { return p.Point(math.Inf(1)) }
func (p Parabola) IsBounded() bool   { return false }
func (p Parabola) IsClosed() bool    { return false }

func (p Parabola) SubCurve(t0, t1 float64) Curve {
	return p.Arc(t0, t1)
}

// Arc returns the portion of the parabola between t0 and t1. When t0 > t1
// the result runs in the opposite direction.
func (p Parabola) Arc(t0, t1 float64) ParabolaArc {
	if t0 > t1 {
		return p.ReverseParabola().Arc(-t0, -t1)
	}
	return ParabolaArc{Parabola: p, T0: t0, T1: t1}
}

func (p Parabola) Reverse() Curve { return p.ReverseParabola() }

// ReverseParabola is like Reverse but returns a Parabola. The point at t of
// the result is the point at −t of p.
func (p Parabola) ReverseParabola() Parabola {
	return Parabola{Vertex: p.Vertex, A: -p.A, Theta: p.Theta + math.Pi}
}

func (p Parabola) BoundingBox() Box {
	return p.boxIn(math.Inf(-1), math.Inf(1))
}

func (p Parabola) boxIn(t0, t1 float64) Box {
	pts := []Point{p.Point(t0), p.Point(t1)}
	sin, cos := math.Sincos(p.Theta)
	// Extrema of cos·t − sin·A·t² and sin·t + cos·A·t².
	if sin != 0 {
		if t := cos / (2 * p.A * sin); t > t0 && t < t1 {
			pts = append(pts, p.Point(t))
		}
	}
	if cos != 0 {
		if t := -sin / (2 * p.A * cos); t > t0 && t < t1 {
			pts = append(pts, p.Point(t))
		}
	}
	return BoxFromPoints(pts...)
}

// Focus returns the focus of the parabola.
func (p Parabola) Focus() Point {
	return Point{0, 1 / (4 * p.A)}.Transform(p.toGlobal())
}

// Directrix returns the directrix, oriented like the parabola.
func (p Parabola) Directrix() Line {
	return Line{
		P0:  Point{0, -1 / (4 * p.A)}.Transform(p.toGlobal()),
		Dir: VecFromAngle(p.Theta),
		T0:  math.Inf(-1),
		T1:  math.Inf(1),
	}
}

func (p Parabola) IsInside(pt Point) bool {
	loc := pt.Transform(p.toLocal())
	return loc.Y > p.A*loc.X*loc.X
}

func (p Parabola) SignedDistance(pt Point) float64 {
	d := pt.Distance(p.Point(p.Project(pt)))
	if p.IsInside(pt) {
		return -d
	}
	return d
}

// Coefficients returns the implicit equation of the parabola.
func (p Parabola) Coefficients() Quadratic {
	q, err := Quadratic{A: p.A, E: -1}.Transform(p.toGlobal())
	if err != nil {
		panic(fmt.Sprintf("rigid motion has zero determinant: %v", err))
	}
	return q
}

// Transform returns the image of the parabola under aff. The direction of
// travel follows the image of p.
func (p Parabola) Transform(aff Affine) (Parabola, error) {
	q, err := p.Coefficients().Transform(aff)
	if err != nil {
		return Parabola{}, err
	}
	out, err := reduceParabola(q.Normalize())
	if err != nil {
		return Parabola{}, err
	}
	v := p.Vertex.Transform(aff)
	if out.Tangent(out.param(v)).Dot(p.Tangent(0).Transform(aff)) < 0 {
		out = out.ReverseParabola()
	}
	return out, nil
}

func (p Parabola) linePositions(l Line) []float64 {
	loc := l.Transform(p.toLocal())
	px, py := loc.P0.X, loc.P0.Y
	dx, dy := loc.Dir.X, loc.Dir.Y
	// A·(px + dx·t)² = py + dy·t
	var out []float64
	for _, t := range SolveQuadratic(p.A*px*px-py, 2*p.A*px*dx-dy, p.A*dx*dx) {
		if loc.containsParam(t) {
			out = append(out, px+dx*t)
		}
	}
	return out
}

// ParabolaArc is the portion [T0, T1] of a parabola. Either bound may be
// infinite, in which case the arc is unbounded.
type ParabolaArc struct {
	Parabola Parabola
	T0, T1   float64
}

var _ Curve = ParabolaArc{}
var _ Sided = ParabolaArc{}

func (a ParabolaArc) isCurve() {}

func (a ParabolaArc) Point(t float64) Point       { return a.Parabola.Point(t) }
func (a ParabolaArc) Tangent(t float64) Vec2      { return a.Parabola.Tangent(t) }
func (a ParabolaArc) Curvature(t float64) float64 { return a.Parabola.Curvature(t) }
func (a ParabolaArc) Domain() (float64, float64)  { return a.T0, a.T1 }
func (a ParabolaArc) FirstPoint() Point           { return a.Parabola.Point(a.T0) }
func (a ParabolaArc) LastPoint() Point            { return a.Parabola.Point(a.T1) }
func (a ParabolaArc) IsClosed() bool              { return false }

func (a ParabolaArc) IsBounded() bool {
	return isFinite(a.T0) && isFinite(a.T1)
}

func (a ParabolaArc) containsParam(t float64) bool {
	eps := scaledAccuracy(t)
	return t >= a.T0-eps && t <= a.T1+eps
}

func (a ParabolaArc) Position(pt Point) (float64, bool) {
	t, ok := a.Parabola.Position(pt)
	if !ok || !a.containsParam(t) {
		return 0, false
	}
	return clamp(t, a.T0, a.T1), true
}

func (a ParabolaArc) Project(pt Point) float64 {
	return a.Parabola.projectIn(pt, a.T0, a.T1)
}

func (a ParabolaArc) SubCurve(t0, t1 float64) Curve {
	return a.SubArc(t0, t1)
}

// SubArc is like SubCurve but returns a ParabolaArc.
func (a ParabolaArc) SubArc(t0, t1 float64) ParabolaArc {
	return a.Parabola.Arc(clamp(t0, a.T0, a.T1), clamp(t1, a.T0, a.T1))
}

func (a ParabolaArc) Reverse() Curve { return a.ReverseArc() }

// ReverseArc is like Reverse but returns a ParabolaArc.
func (a ParabolaArc) ReverseArc() ParabolaArc {
	return ParabolaArc{Parabola: a.Parabola.ReverseParabola(), T0: -a.T1, T1: -a.T0}
}

func (a ParabolaArc) BoundingBox() Box {
	return a.Parabola.boxIn(a.T0, a.T1)
}

// IsInside uses the inside of the parabola for points that project into
// [T0, T1]. Other points are decided by the tangent line at the end point
// they project beyond.
func (a ParabolaArc) IsInside(pt Point) bool {
	t := a.Parabola.Project(pt)
	switch {
	case t < a.T0 && isFinite(a.T0):
		return Line{P0: a.FirstPoint(), Dir: a.Tangent(a.T0)}.IsInside(pt)
	case t > a.T1 && isFinite(a.T1):
		return Line{P0: a.LastPoint(), Dir: a.Tangent(a.T1)}.IsInside(pt)
	default:
		return a.Parabola.IsInside(pt)
	}
}

func (a ParabolaArc) SignedDistance(pt Point) float64 {
	d := pt.Distance(a.Point(a.Project(pt)))
	if a.IsInside(pt) {
		return -d
	}
	return d
}

// Transform returns the image of the arc under aff.
func (a ParabolaArc) Transform(aff Affine) (ParabolaArc, error) {
	p, err := a.Parabola.Transform(aff)
	if err != nil {
		return ParabolaArc{}, err
	}
	bound := func(t float64) float64 {
		if math.IsInf(t, 0) {
			return t
		}
		return p.param(a.Parabola.Point(t).Transform(aff))
	}
	t0, t1 := bound(a.T0), bound(a.T1)
	return ParabolaArc{Parabola: p, T0: min(t0, t1), T1: max(t0, t1)}, nil
}

func (a ParabolaArc) linePositions(l Line) []float64 {
	var out []float64
	for _, t := range a.Parabola.linePositions(l) {
		if a.containsParam(t) {
			out = append(out, clamp(t, a.T0, a.T1))
		}
	}
	return out
}
