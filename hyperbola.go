package conic

import (
	"fmt"
	"math"
)

// Branch selects one of the two branches of a hyperbola.
type Branch bool

const (
	// PositiveBranch is the branch crossing the transverse axis at +A.
	PositiveBranch Branch = true
	// NegativeBranch is the branch crossing the transverse axis at −A.
	NegativeBranch Branch = false
)

func (b Branch) String() string {
	if b {
		return "positive"
	}
	return "negative"
}

// Hyperbola is a hyperbola with semi-axis A along the transverse direction
// Theta and semi-axis B perpendicular to it. In its local frame, obtained by
// translating by −Center, rotating by −Theta and scaling by (1/A, 1/B), it is
// x² − y² = 1.
//
// A hyperbola consists of two branches, both owned by value: Branch returns
// a [HyperbolaBranch] holding a copy of the hyperbola and a tag.
//
// As a Curve, the hyperbola is its two branches in the order returned by
// [Hyperbola.Branches], with the parameter of each branch mapped like a
// [CurveSet].
type Hyperbola struct {
	Center   Point
	A, B     float64
	Theta    float64
	Indirect bool
}

var _ Curve = Hyperbola{}
var _ Sided = Hyperbola{}

// NewHyperbola returns a direct hyperbola. The semi-axes must be positive
// and finite.
func NewHyperbola(center Point, a, b, theta float64) (Hyperbola, error) {
	if !(a > 0 && b > 0) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return Hyperbola{}, fmt.Errorf("hyperbola with semi-axes %g and %g: %w", a, b, ErrDegenerate)
	}
	return Hyperbola{Center: center, A: a, B: b, Theta: theta}, nil
}

// Branch returns one of the two branches.
func (h Hyperbola) Branch(b Branch) HyperbolaBranch {
	return HyperbolaBranch{Hyperbola: h, Branch: b}
}

// Branches returns the negative and the positive branch of a direct
// hyperbola, and the positive and the negative branch of an indirect one.
// The indirect order makes h.Reverse() trace h backwards.
func (h Hyperbola) Branches() CurveSet {
	if h.Indirect {
		return CurveSet{h.Branch(PositiveBranch), h.Branch(NegativeBranch)}
	}
	return CurveSet{h.Branch(NegativeBranch), h.Branch(PositiveBranch)}
}

func (h Hyperbola) IsDirect() bool { return !h.Indirect }

func (h Hyperbola) sign() float64 {
	if h.Indirect {
		return -1
	}
	return 1
}

// ToLocal returns the transform into the local frame, where the hyperbola
// is x² − y² = 1.
func (h Hyperbola) ToLocal() Affine {
	return Scale(1/h.A, 1/h.B).
		Mul(Rotate(-h.Theta)).
		Mul(Translate(Vec2(h.Center).Negate()))
}

// ToGlobal is the inverse of [Hyperbola.ToLocal].
func (h Hyperbola) ToGlobal() Affine {
	return Translate(Vec2(h.Center)).
		Mul(Rotate(h.Theta)).
		Mul(Scale(h.A, h.B))
}

// Asymptotes returns the two asymptotes, both passing through the center.
func (h Hyperbola) Asymptotes() (Line, Line) {
	d1 := Vec2{h.A, h.B}.Rotate(h.Theta)
	d2 := Vec2{h.A, -h.B}.Rotate(h.Theta)
	inf := math.Inf(1)
	return Line{P0: h.Center, Dir: d1, T0: -inf, T1: inf},
		Line{P0: h.Center, Dir: d2, T0: -inf, T1: inf}
}

// Foci returns the foci of the negative and the positive branch.
func (h Hyperbola) Foci() (Point, Point) {
	c := math.Hypot(h.A, h.B)
	v := VecFromAngle(h.Theta).Mul(c)
	return h.Center.Translate(v.Negate()), h.Center.Translate(v)
}

// Coefficients returns the implicit equation of the hyperbola.
func (h Hyperbola) Coefficients() Quadratic {
	sin, cos := math.Sincos(h.Theta)
	i1 := 1 / (h.A * h.A)
	i2 := -1 / (h.B * h.B)
	q := Quadratic{
		A: cos*cos*i1 + sin*sin*i2,
		B: 2 * sin * cos * (i1 - i2),
		C: sin*sin*i1 + cos*cos*i2,
	}
	cx, cy := h.Center.X, h.Center.Y
	q.D = -2*q.A*cx - q.B*cy
	q.E = -q.B*cx - 2*q.C*cy
	q.F = q.A*cx*cx + q.B*cx*cy + q.C*cy*cy - 1
	return q
}

// Transform returns the image of the hyperbola under aff. The labels of the
// branches are not preserved; see [HyperbolaBranch.Transform].
func (h Hyperbola) Transform(aff Affine) (Hyperbola, error) {
	q, err := h.Coefficients().Transform(aff)
	if err != nil {
		return Hyperbola{}, err
	}
	cq, center, err := q.Centered()
	if err != nil {
		return Hyperbola{}, err
	}
	out, err := ReduceCenteredHyperbola(cq)
	if err != nil {
		return Hyperbola{}, err
	}
	out.Center = center
	out.Indirect = h.Indirect != (aff.Determinant() < 0)
	return out, nil
}

// localLinePositions returns the line parameters where l crosses the local
// hyperbola x² − y² = 1, restricted to the domain of l.
func (h Hyperbola) localLinePositions(l Line) []float64 {
	loc := l.Transform(h.ToLocal())
	p, d := loc.P0, loc.Dir
	var ts []float64
	if math.Abs(d.X) >= math.Abs(d.Y) {
		// Parametrize by x: y = y0 + k·(x − x0).
		k := d.Y / d.X
		m := p.Y - k*p.X
		// x² − (k·x + m)² = 1
		for _, x := range SolveQuadratic(-m*m-1, -2*k*m, 1-k*k) {
			ts = append(ts, (x-p.X)/d.X)
		}
	} else {
		k := d.X / d.Y
		m := p.X - k*p.Y
		// (k·y + m)² − y² = 1
		for _, y := range SolveQuadratic(m*m-1, 2*k*m, k*k-1) {
			ts = append(ts, (y-p.Y)/d.Y)
		}
	}
	out := ts[:0]
	for _, t := range ts {
		if loc.containsParam(t) {
			out = append(out, t)
		}
	}
	return out
}

// IntersectLine returns the points where l crosses either branch.
func (h Hyperbola) IntersectLine(l Line) []Point {
	var out []Point
	for _, t := range h.localLinePositions(l) {
		out = append(out, l.Point(t))
	}
	return out
}

func (h Hyperbola) isCurve() {}

func (h Hyperbola) Point(t float64) Point             { return h.Branches().Point(t) }
func (h Hyperbola) Tangent(t float64) Vec2            { return h.Branches().Tangent(t) }
func (h Hyperbola) Curvature(t float64) float64       { return h.Branches().Curvature(t) }
func (h Hyperbola) Position(pt Point) (float64, bool) { return h.Branches().Position(pt) }
func (h Hyperbola) Project(pt Point) float64          { return h.Branches().Project(pt) }
func (h Hyperbola) Domain() (float64, float64)        { return h.Branches().Domain() }
func (h Hyperbola) FirstPoint() Point                 { return h.Branches().FirstPoint() }
func (h Hyperbola) LastPoint() Point                  { return h.Branches().LastPoint() }
func (h Hyperbola) SubCurve(t0, t1 float64) Curve     { return h.Branches().SubCurve(t0, t1) }
func (h Hyperbola) IsBounded() bool                   { return false }
func (h Hyperbola) IsClosed() bool                    { return false }

// Reverse flips the orientation of both branches, which also swaps their
// order in the Curve view.
func (h Hyperbola) Reverse() Curve {
	h.Indirect = !h.Indirect
	return h
}

func (h Hyperbola) BoundingBox() Box { return InfiniteBox() }

// IsInside reports whether pt lies on the left of both branches: between
// them for direct hyperbolas, and on the focus side of either branch for
// indirect ones.
func (h Hyperbola) IsInside(pt Point) bool {
	loc := pt.Transform(h.ToLocal())
	return (loc.X*loc.X-loc.Y*loc.Y < 1) != h.Indirect
}

func (h Hyperbola) SignedDistance(pt Point) float64 {
	d := min(
		h.Branch(PositiveBranch).distance(pt),
		h.Branch(NegativeBranch).distance(pt),
	)
	if h.IsInside(pt) {
		return -d
	}
	return d
}

// HyperbolaBranch is one branch of a hyperbola, parametrized over the whole
// real line. In the local frame of the hyperbola, the positive branch is
// (cosh t, sinh t) and the negative branch (−cosh t, −sinh t), with the
// second coordinate negated for indirect hyperbolas.
//
// A direct branch turns away from its focus, which lies on its right.
type HyperbolaBranch struct {
	Hyperbola Hyperbola
	Branch    Branch
}

var _ Curve = HyperbolaBranch{}
var _ Sided = HyperbolaBranch{}

func (hb HyperbolaBranch) isCurve() {}

func (hb HyperbolaBranch) IsPositive() bool { return hb.Branch == PositiveBranch }

// branchSign returns 1 for the positive branch and -1 for the negative one.
func (hb HyperbolaBranch) branchSign() float64 {
	if hb.IsPositive() {
		return 1
	}
	return -1
}

// local returns the point at t in the local frame.
func (hb HyperbolaBranch) local(t float64) Point {
	s := hb.branchSign()
	return Point{s * math.Cosh(t), s * hb.Hyperbola.sign() * math.Sinh(t)}
}

func (hb HyperbolaBranch) Point(t float64) Point {
	if math.IsInf(t, 0) {
		return hb.pointAtInfinity(t)
	}
	return hb.local(t).Transform(hb.Hyperbola.ToGlobal())
}

// pointAtInfinity returns the limit point of the branch for t = ±∞, which
// lies along the corresponding asymptote.
func (hb HyperbolaBranch) pointAtInfinity(t float64) Point {
	s := hb.branchSign()
	dir := Vec2{s, s * hb.Hyperbola.sign() * math.Copysign(1, t)}.Transform(hb.Hyperbola.ToGlobal())
	return pointAtInfinity(hb.Hyperbola.Center, dir, 1)
}

func (hb HyperbolaBranch) Tangent(t float64) Vec2 {
	s := hb.branchSign()
	d := Vec2{s * math.Sinh(t), s * hb.Hyperbola.sign() * math.Cosh(t)}
	return d.Transform(hb.Hyperbola.ToGlobal())
}

func (hb HyperbolaBranch) Curvature(t float64) float64 {
	g := hb.Hyperbola.ToGlobal()
	s := hb.branchSign()
	d1 := Vec2{s * math.Sinh(t), s * hb.Hyperbola.sign() * math.Cosh(t)}.Transform(g)
	d2 := Vec2{s * math.Cosh(t), s * hb.Hyperbola.sign() * math.Sinh(t)}.Transform(g)
	return curvature(d1, d2)
}

// param returns the parameter of the point of the branch at the same local
// height as pt.
func (hb HyperbolaBranch) param(pt Point) float64 {
	loc := pt.Transform(hb.Hyperbola.ToLocal())
	return math.Asinh(hb.branchSign() * hb.Hyperbola.sign() * loc.Y)
}

// onBranch reports whether pt, in global coordinates, lies on the side of
// the conjugate axis that this branch occupies.
func (hb HyperbolaBranch) onBranch(pt Point) bool {
	return hb.branchSign()*pt.Transform(hb.Hyperbola.ToLocal()).X > 0
}

func (hb HyperbolaBranch) Position(pt Point) (float64, bool) {
	if !hb.onBranch(pt) {
		return 0, false
	}
	t := hb.param(pt)
	if pt.Distance(hb.Point(t)) > scaledAccuracy(max(hb.Hyperbola.A, hb.Hyperbola.B, Vec2(pt).Hypot())) {
		return 0, false
	}
	return t, true
}

// Project returns the parameter of the closest point, found by sampling the
// branch and polishing the best sample with Newton steps.
func (hb HyperbolaBranch) Project(pt Point) float64 {
	return hb.projectIn(pt, math.Inf(-1), math.Inf(1))
}

// projectIn is Project restricted to [t0, t1].
func (hb HyperbolaBranch) projectIn(pt Point, t0, t1 float64) float64 {
	// The local height grows like sinh, so a window around the projection
	// of pt onto the branch by height covers the closest point.
	c := hb.param(pt)
	lo := clamp(c-8, t0, t1)
	hi := clamp(c+8, t0, t1)
	if lo == hi {
		return lo
	}
	const n = 64
	best, bestD := lo, math.Inf(1)
	for i := range n + 1 {
		t := lo + (hi-lo)*float64(i)/n
		if d := pt.DistanceSquared(hb.Point(t)); d < bestD {
			best, bestD = t, d
		}
	}
	// Newton on f(t) = (P(t) − pt)·P'(t).
	t := best
	for range 16 {
		v := hb.Point(t).Sub(pt)
		d1 := hb.Tangent(t)
		s := hb.branchSign()
		d2 := Vec2{s * math.Cosh(t), s * hb.Hyperbola.sign() * math.Sinh(t)}.Transform(hb.Hyperbola.ToGlobal().Linear())
		f := v.Dot(d1)
		df := d1.Hypot2() + v.Dot(d2)
		if df <= 0 {
			break
		}
		nt := clamp(t-f/df, lo, hi)
		if math.Abs(nt-t) < Accuracy {
			t = nt
			break
		}
		t = nt
	}
	if pt.DistanceSquared(hb.Point(t)) > bestD {
		return best
	}
	return t
}

func (hb HyperbolaBranch) distance(pt Point) float64 {
	return pt.Distance(hb.Point(hb.Project(pt)))
}

func (hb HyperbolaBranch) Domain() (float64, float64) { return math.Inf(-1), math.Inf(1) }

func (hb HyperbolaBranch) FirstPoint() Point { return hb.Point(math.Inf(-1)) }
func (hb HyperbolaBranch) LastPoint() Point  { return hb.Point(math.Inf(1)) }
func (hb HyperbolaBranch) IsBounded() bool   { return false }
func (hb HyperbolaBranch) IsClosed() bool    { return false }

func (hb HyperbolaBranch) SubCurve(t0, t1 float64) Curve {
	return hb.Arc(t0, t1)
}

// Arc returns the portion of the branch between t0 and t1. When t0 > t1
// the result runs in the opposite direction.
func (hb HyperbolaBranch) Arc(t0, t1 float64) HyperbolaBranchArc {
	if t0 > t1 {
		return hb.ReverseBranch().Arc(-t0, -t1)
	}
	return HyperbolaBranchArc{Branch: hb, T0: t0, T1: t1}
}

func (hb HyperbolaBranch) Reverse() Curve { return hb.ReverseBranch() }

// ReverseBranch is like Reverse but returns a HyperbolaBranch. The point at t
// of the result is the point at −t of hb.
func (hb HyperbolaBranch) ReverseBranch() HyperbolaBranch {
	hb.Hyperbola.Indirect = !hb.Hyperbola.Indirect
	return hb
}

func (hb HyperbolaBranch) BoundingBox() Box {
	return hb.boxIn(math.Inf(-1), math.Inf(1))
}

// boxIn returns the bounding box of the portion [t0, t1] of the branch.
func (hb HyperbolaBranch) boxIn(t0, t1 float64) Box {
	pts := []Point{hb.Point(t0), hb.Point(t1)}
	// Extrema: derivative of each global coordinate, a·sinh t + b·cosh t,
	// vanishes at tanh t = −b/a.
	g := hb.Hyperbola.ToGlobal()
	s := hb.branchSign()
	sy := s * hb.Hyperbola.sign()
	for _, row := range [2][2]float64{{g.N0 * s, g.N2 * sy}, {g.N1 * s, g.N3 * sy}} {
		a, b := row[0], row[1]
		if math.Abs(b) < math.Abs(a) {
			if t := math.Atanh(-b / a); t > t0 && t < t1 {
				pts = append(pts, hb.Point(t))
			}
		}
	}
	return BoxFromPoints(pts...)
}

// IsInside reports whether pt lies on the left of the branch. That is the
// side away from the focus for direct branches.
func (hb HyperbolaBranch) IsInside(pt Point) bool {
	loc := pt.Transform(hb.Hyperbola.ToLocal())
	focusSide := hb.branchSign()*loc.X > 0 && loc.X*loc.X-loc.Y*loc.Y > 1
	return focusSide == hb.Hyperbola.Indirect
}

func (hb HyperbolaBranch) SignedDistance(pt Point) float64 {
	d := hb.distance(pt)
	if hb.IsInside(pt) {
		return -d
	}
	return d
}

// Transform returns the image of the branch under aff. The branch of the
// transformed hyperbola is chosen as the one closest to the image of the
// vertex of hb.
func (hb HyperbolaBranch) Transform(aff Affine) (HyperbolaBranch, error) {
	h, err := hb.Hyperbola.Transform(aff)
	if err != nil {
		return HyperbolaBranch{}, err
	}
	vertex := hb.Point(0).Transform(aff)
	best, bestD := h.Branch(PositiveBranch), math.Inf(1)
	for _, b := range [2]Branch{PositiveBranch, NegativeBranch} {
		cand := h.Branch(b)
		if d := cand.distance(vertex); d < bestD {
			best, bestD = cand, d
		}
	}
	// Keep the direction of travel: the image of the tangent at the vertex
	// must agree with the tangent of the result there.
	t := best.Project(vertex)
	if best.Tangent(t).Dot(hb.Tangent(0).Transform(aff)) < 0 {
		best = best.ReverseBranch()
	}
	return best, nil
}

func (hb HyperbolaBranch) linePositions(l Line) []float64 {
	var out []float64
	for _, t := range hb.Hyperbola.localLinePositions(l) {
		pt := l.Point(t)
		if hb.onBranch(pt) {
			out = append(out, hb.param(pt))
		}
	}
	return out
}
