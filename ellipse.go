package conic

import (
	"fmt"
	"math"
)

// Ellipse is a full ellipse with semi-axis R1 along the direction Theta and
// semi-axis R2 perpendicular to it. R1 and R2 are not ordered. The zero
// value of Indirect describes a counter-clockwise (direct) ellipse.
//
// The parameter is t ∈ [0, 2π), and the point at t is
//
//	Center + rot(Theta)·(R1·cos t, ±R2·sin t)
//
// with the minus sign for indirect ellipses.
type Ellipse struct {
	Center   Point
	R1, R2   float64
	Theta    float64
	Indirect bool
}

var _ Curve = Ellipse{}
var _ Sided = Ellipse{}

// NewEllipse returns a direct ellipse. The semi-axes must be positive and
// finite.
func NewEllipse(center Point, r1, r2, theta float64) (Ellipse, error) {
	if !(r1 > 0 && r2 > 0) || math.IsInf(r1, 0) || math.IsInf(r2, 0) {
		return Ellipse{}, fmt.Errorf("ellipse with semi-axes %g and %g: %w", r1, r2, ErrDegenerate)
	}
	return Ellipse{Center: center, R1: r1, R2: r2, Theta: theta}, nil
}

// NewEllipseFromBox returns the axis-aligned ellipse inscribed in a bounded
// box.
func NewEllipseFromBox(b Box) (Ellipse, error) {
	if !b.IsBounded() {
		return Ellipse{}, fmt.Errorf("ellipse in %s: %w", b, ErrUnbounded)
	}
	return NewEllipse(b.Center(), b.Width()/2, b.Height()/2, 0)
}

func (e Ellipse) isCurve() {}

func (e Ellipse) IsDirect() bool { return !e.Indirect }

func (e Ellipse) sign() float64 {
	if e.Indirect {
		return -1
	}
	return 1
}

// IsCircle reports whether the semi-axes are equal within [Accuracy].
func (e Ellipse) IsCircle() bool {
	return math.Abs(e.R1-e.R2) < Accuracy
}

// AsCircle returns the ellipse as a circle, and false if it isn't one.
func (e Ellipse) AsCircle() (Circle, bool) {
	if !e.IsCircle() {
		return Circle{}, false
	}
	return Circle{Center: e.Center, Radius: (e.R1 + e.R2) / 2, Indirect: e.Indirect}, true
}

// toUnit returns the transform that maps the ellipse onto the unit circle,
// with the point at t mapped to (cos t, sin t).
func (e Ellipse) toUnit() Affine {
	return Scale(1/e.R1, e.sign()/e.R2).
		Mul(Rotate(-e.Theta)).
		Mul(Translate(Vec2(e.Center).Negate()))
}

// fromUnit is the inverse of toUnit.
func (e Ellipse) fromUnit() Affine {
	return Translate(Vec2(e.Center)).
		Mul(Rotate(e.Theta)).
		Mul(Scale(e.R1, e.sign()*e.R2))
}

func (e Ellipse) Point(t float64) Point {
	sin, cos := math.Sincos(t)
	return Point{cos, sin}.Transform(e.fromUnit())
}

func (e Ellipse) Tangent(t float64) Vec2 {
	sin, cos := math.Sincos(t)
	return Vec2{-e.R1 * sin, e.sign() * e.R2 * cos}.Rotate(e.Theta)
}

func (e Ellipse) Curvature(t float64) float64 {
	sin, cos := math.Sincos(t)
	d1 := Vec2{-e.R1 * sin, e.sign() * e.R2 * cos}
	d2 := Vec2{-e.R1 * cos, -e.sign() * e.R2 * sin}
	return curvature(d1, d2)
}

// param returns the parameter whose point lies in the direction of pt, in
// the normalized frame of the ellipse.
func (e Ellipse) param(pt Point) float64 {
	return Vec2(pt.Transform(e.toUnit())).Angle()
}

func (e Ellipse) Position(pt Point) (float64, bool) {
	t := e.param(pt)
	if pt.Distance(e.Point(t)) > scaledAccuracy(max(e.R1, e.R2)) {
		return 0, false
	}
	return t, true
}

// Project returns the parameter of the point of the ellipse closest to pt.
func (e Ellipse) Project(pt Point) float64 {
	return e.param(e.foot(pt))
}

// foot returns the point of the ellipse closest to pt. Failure to converge
// is logged; the best estimate is used.
func (e Ellipse) foot(pt Point) Point {
	pv, err := e.ProjectedVector(pt, 0)
	if err != nil {
		Logger().Warn("ellipse projection", "point", pt, "err", err)
	}
	return pt.Translate(pv.Vec2().Negate())
}

func (e Ellipse) Domain() (float64, float64) { return 0, twoPi }

func (e Ellipse) FirstPoint() Point { return e.Point(0) }
func (e Ellipse) LastPoint() Point  { return e.Point(0) }
func (e Ellipse) IsBounded() bool   { return true }
func (e Ellipse) IsClosed() bool    { return true }

// SubCurve returns the arc from t0 to t1. When t1 < t0, the arc passes
// through t = 0.
func (e Ellipse) SubCurve(t0, t1 float64) Curve {
	return e.Arc(t0, t1)
}

// Arc is like SubCurve but returns an EllipseArc.
func (e Ellipse) Arc(t0, t1 float64) EllipseArc {
	ext := t1 - t0
	if ext < 0 {
		ext += twoPi
	}
	start := t0
	if e.Indirect {
		start, ext = -t0, -ext
	}
	e.Indirect = false
	return EllipseArc{Ellipse: e, Start: NormalizeAngle(start), Extent: ext}
}

func (e Ellipse) Reverse() Curve { return e.ReverseEllipse() }

// ReverseEllipse is like Reverse but returns an Ellipse.
func (e Ellipse) ReverseEllipse() Ellipse {
	e.Indirect = !e.Indirect
	return e
}

func (e Ellipse) BoundingBox() Box {
	sin, cos := math.Sincos(e.Theta)
	dx := math.Hypot(e.R1*cos, e.R2*sin)
	dy := math.Hypot(e.R1*sin, e.R2*cos)
	return Box{e.Center.X - dx, e.Center.X + dx, e.Center.Y - dy, e.Center.Y + dy}
}

// IsInside reports whether pt is inside the ellipse for direct ellipses, or
// outside of it for indirect ones.
func (e Ellipse) IsInside(pt Point) bool {
	inDisk := Vec2(pt.Transform(e.toUnit())).Hypot2() < 1
	return inDisk != e.Indirect
}

func (e Ellipse) SignedDistance(pt Point) float64 {
	pv, err := e.ProjectedVector(pt, 0)
	if err != nil {
		Logger().Warn("ellipse projection", "point", pt, "err", err)
	}
	return e.sign() * pv.Rho
}

// Coefficients returns the implicit equation of the ellipse.
func (e Ellipse) Coefficients() Quadratic {
	sin, cos := math.Sincos(e.Theta)
	i1 := 1 / (e.R1 * e.R1)
	i2 := 1 / (e.R2 * e.R2)
	q := Quadratic{
		A: cos*cos*i1 + sin*sin*i2,
		B: 2 * sin * cos * (i1 - i2),
		C: sin*sin*i1 + cos*cos*i2,
		F: -1,
	}
	// Translate the centered equation to the center.
	cx, cy := e.Center.X, e.Center.Y
	q.D = -2*q.A*cx - q.B*cy
	q.E = -q.B*cx - 2*q.C*cy
	q.F = q.A*cx*cx + q.B*cx*cy + q.C*cy*cy - 1
	return q
}

// Foci returns the two foci, on the axis of the longer semi-axis.
func (e Ellipse) Foci() (Point, Point) {
	a, b, th := e.R1, e.R2, e.Theta
	if a < b {
		a, b, th = b, a, th+math.Pi/2
	}
	c := math.Sqrt(a*a - b*b)
	v := VecFromAngle(th).Mul(c)
	return e.Center.Translate(v.Negate()), e.Center.Translate(v)
}

// Transform returns the image of the ellipse under aff. Its orientation is
// flipped by transforms that don't preserve orientation. Singular transforms
// flatten the ellipse and return ErrDegenerate.
//
// The semi-axes of the result follow the conventions of [ReduceCentered].
func (e Ellipse) Transform(aff Affine) (Ellipse, error) {
	if math.Abs(aff.Determinant()) < Accuracy {
		return Ellipse{}, fmt.Errorf("transforming ellipse by %v: %w", aff, ErrDegenerate)
	}
	sin, cos := math.Sincos(e.Theta)
	i1 := 1 / (e.R1 * e.R1)
	i2 := 1 / (e.R2 * e.R2)
	centered := Quadratic{
		A: cos*cos*i1 + sin*sin*i2,
		B: 2 * sin * cos * (i1 - i2),
		C: sin*sin*i1 + cos*cos*i2,
		F: -1,
	}
	q, err := TransformCentered(centered, aff)
	if err != nil {
		return Ellipse{}, fmt.Errorf("transforming ellipse: %w", err)
	}
	out, err := ReduceCentered(q)
	if err != nil {
		return Ellipse{}, fmt.Errorf("transforming ellipse: %w", err)
	}
	out.Center = e.Center.Transform(aff)
	out.Indirect = e.Indirect != (aff.Determinant() < 0)
	return out, nil
}

func (e Ellipse) linePositions(l Line) []float64 {
	pts := lineCircleIntersections(l.Transform(e.toUnit()), Point{}, 1)
	out := make([]float64, len(pts))
	for i, pt := range pts {
		out[i] = Vec2(pt).Angle()
	}
	return out
}

// PolarVector is a vector given by its signed length and its angle.
type PolarVector struct {
	Rho   float64
	Theta float64
}

// Vec2 returns the vector in Cartesian coordinates.
func (pv PolarVector) Vec2() Vec2 {
	return VecFromAngle(pv.Theta).Mul(pv.Rho)
}

const (
	// DefaultProjectionTolerance is the half-angle tolerance used by
	// [Ellipse.ProjectedVector] when given a non-positive tolerance.
	DefaultProjectionTolerance = 1e-14

	maxProjectionIterations = 100
)

// ProjectedVector returns the offset of pt from the closest point of the
// ellipse, along the outward normal at that point: pt equals the closest
// point plus Rho·(cos Theta, sin Theta). Rho is negative when pt is inside
// the ellipse. The orientation of the ellipse doesn't matter.
//
// The closest point is found in the axis-aligned frame of the ellipse,
// folded onto the first quadrant, by Newton iteration on the half-angle
// tangent u = tan(φ/2) of its eccentric angle φ, starting from the closed-form
// estimate φ = atan2(a·y, b·x). Iteration stops when the correction to u
// drops below tolerance; after 100 iterations ErrNonConvergence is returned
// along with the best estimate.
func (e Ellipse) ProjectedVector(pt Point, tolerance float64) (PolarVector, error) {
	if tolerance <= 0 {
		tolerance = DefaultProjectionTolerance
	}
	// Local frame with the longer axis along x.
	a, b, th := e.R1, e.R2, e.Theta
	if a < b {
		a, b, th = b, a, th+math.Pi/2
	}
	q := pt.Sub(e.Center).Rotate(-th)
	px, py := math.Abs(q.X), math.Abs(q.Y)

	phi, err := quadrantFoot(a, b, px, py, tolerance)

	sin, cos := math.Sincos(phi)
	foot := Vec2{math.Copysign(a*cos, q.X), math.Copysign(b*sin, q.Y)}
	normal := Vec2{math.Copysign(b*cos, q.X), math.Copysign(a*sin, q.Y)}.Normalize()
	rho := q.Sub(foot).Hypot()
	if (px/a)*(px/a)+(py/b)*(py/b) < 1 {
		rho = -rho
	}
	return PolarVector{Rho: rho, Theta: NormalizeAngle(normal.Angle() + th)}, err
}

// quadrantFoot returns the eccentric angle φ ∈ [0, π/2] of the point of the
// ellipse x²/a² + y²/b² = 1 closest to (px, py), where a ≥ b and px, py ≥ 0.
func quadrantFoot(a, b, px, py, tolerance float64) (float64, error) {
	c2 := a*a - b*b
	ap := a * px
	bp := b * py

	if bp <= Accuracy*max(1, a*a) {
		// On the major axis. Besides the vertex (u = 0), there is a second
		// normal foot when the point is inside the evolute.
		if ap >= c2 {
			return 0, nil
		}
		u := math.Sqrt((c2 - ap) / (c2 + ap))
		phi := 2 * math.Atan(u)
		d0 := math.Hypot(a-px, py)
		sin, cos := math.Sincos(phi)
		if math.Hypot(a*cos-px, b*sin-py) < d0 {
			return phi, nil
		}
		return 0, nil
	}

	// The normal condition c²·cos φ·sin φ − a·px·sin φ + b·py·cos φ = 0,
	// rewritten in u = tan(φ/2), is a quartic with a single root in [0, 1]:
	// Q(0) = −b·py < 0 and Q(1) = 4·a·px ≥ 0.
	f := func(u float64) float64 {
		return (((bp*u+2*(ap+c2))*u)*u+2*(ap-c2))*u - bp
	}
	df := func(u float64) float64 {
		return (4*bp*u+6*(ap+c2))*u*u + 2*(ap-c2)
	}
	u0 := math.Tan(math.Atan2(a*py, b*px) / 2)
	u, err := newtonBracketed(f, df, 0, 1, u0, tolerance, maxProjectionIterations)
	return 2 * math.Atan(u), err
}
