package conic

import (
	"fmt"
	"math"
)

// EllipseArc is a portion of an ellipse, starting at the eccentric angle
// Start and sweeping Extent radians, with the same conventions as
// [CircleArc]. The orientation is carried by the sign of Extent alone;
// Ellipse.Indirect is ignored.
type EllipseArc struct {
	Ellipse Ellipse
	Start   float64
	Extent  float64
}

var _ Curve = EllipseArc{}
var _ Sided = EllipseArc{}

// NewEllipseArc returns an arc of the given ellipse.
func NewEllipseArc(e Ellipse, start, extent float64) (EllipseArc, error) {
	if math.Abs(extent) > twoPi+Accuracy || math.IsNaN(extent) {
		return EllipseArc{}, fmt.Errorf("ellipse arc with extent %g: %w", extent, ErrDegenerate)
	}
	e.Indirect = false
	return EllipseArc{Ellipse: e, Start: NormalizeAngle(start), Extent: clamp(extent, -twoPi, twoPi)}, nil
}

func (a EllipseArc) isCurve() {}

func (a EllipseArc) IsDirect() bool { return a.Extent >= 0 }

func (a EllipseArc) sign() float64 {
	if a.Extent < 0 {
		return -1
	}
	return 1
}

// direct returns the supporting ellipse with counter-clockwise orientation,
// whose parameter is the eccentric angle used by the arc.
func (a EllipseArc) direct() Ellipse {
	e := a.Ellipse
	e.Indirect = false
	return e
}

// unitArc returns the arc of the unit circle that the normalizing transform
// of the supporting ellipse maps a to.
func (a EllipseArc) unitArc() CircleArc {
	return CircleArc{Circle: Circle{Radius: 1}, Start: a.Start, Extent: a.Extent}
}

func (a EllipseArc) angle(t float64) float64 {
	return a.Start + a.sign()*t
}

// ContainsAngle reports whether the arc sweeps over the eccentric angle th.
func (a EllipseArc) ContainsAngle(th float64) bool {
	return ContainsAngle(a.Start, a.Extent, th)
}

func (a EllipseArc) Point(t float64) Point {
	return a.direct().Point(a.angle(t))
}

func (a EllipseArc) Tangent(t float64) Vec2 {
	return a.direct().Tangent(a.angle(t)).Mul(a.sign())
}

func (a EllipseArc) Curvature(t float64) float64 {
	return a.sign() * a.direct().Curvature(a.angle(t))
}

// param converts an eccentric angle into the angle swept from the start.
func (a EllipseArc) param(th float64) float64 {
	if a.Extent < 0 {
		return NormalizeAngle(a.Start - th)
	}
	return NormalizeAngle(th - a.Start)
}

func (a EllipseArc) inDomain(t float64) (float64, bool) {
	return a.unitArc().inDomain(t)
}

func (a EllipseArc) Position(pt Point) (float64, bool) {
	th, ok := a.direct().Position(pt)
	if !ok {
		return 0, false
	}
	return a.inDomain(a.param(th))
}

func (a EllipseArc) Project(pt Point) float64 {
	if t, ok := a.inDomain(a.param(a.direct().Project(pt))); ok {
		return t
	}
	ext := math.Abs(a.Extent)
	if pt.DistanceSquared(a.Point(0)) <= pt.DistanceSquared(a.Point(ext)) {
		return 0
	}
	return ext
}

func (a EllipseArc) Domain() (float64, float64) { return 0, math.Abs(a.Extent) }

func (a EllipseArc) FirstPoint() Point { return a.Point(0) }
func (a EllipseArc) LastPoint() Point  { return a.Point(math.Abs(a.Extent)) }
func (a EllipseArc) IsBounded() bool   { return true }

func (a EllipseArc) IsClosed() bool {
	return math.Abs(a.Extent) >= twoPi-Accuracy
}

func (a EllipseArc) SubCurve(t0, t1 float64) Curve {
	return a.SubArc(t0, t1)
}

// SubArc is like SubCurve but returns an EllipseArc. It handles t0 > t1
// like [CircleArc.SubArc].
func (a EllipseArc) SubArc(t0, t1 float64) EllipseArc {
	ext := math.Abs(a.Extent)
	t0 = clamp(t0, 0, ext)
	t1 = clamp(t1, 0, ext)
	if t1 < t0 && a.IsClosed() {
		t1 += ext
	}
	return EllipseArc{
		Ellipse: a.Ellipse,
		Start:   NormalizeAngle(a.angle(t0)),
		Extent:  a.sign() * (t1 - t0),
	}
}

func (a EllipseArc) Reverse() Curve { return a.ReverseArc() }

// ReverseArc is like Reverse but returns an EllipseArc.
func (a EllipseArc) ReverseArc() EllipseArc {
	return EllipseArc{
		Ellipse: a.Ellipse,
		Start:   NormalizeAngle(a.Start + a.Extent),
		Extent:  -a.Extent,
	}
}

func (a EllipseArc) BoundingBox() Box {
	e := a.Ellipse
	sin, cos := math.Sincos(e.Theta)
	tx := math.Atan2(-e.R2*sin, e.R1*cos)
	ty := math.Atan2(e.R2*cos, e.R1*sin)
	return boxOfParams(a,
		a.param(tx), a.param(tx+math.Pi),
		a.param(ty), a.param(ty+math.Pi))
}

// IsInside reports whether pt lies on the left of the arc, deciding near the
// open ends like [CircleArc.IsInside]. The decision is made on the unit
// circle the ellipse normalizes to; the tests involved are invariant under
// that mapping.
func (a EllipseArc) IsInside(pt Point) bool {
	return a.unitArc().IsInside(pt.Transform(a.direct().toUnit()))
}

func (a EllipseArc) SignedDistance(pt Point) float64 {
	d := pt.Distance(a.Point(a.Project(pt)))
	if a.IsInside(pt) {
		return -d
	}
	return d
}

// Transform returns the image of the arc under aff. The end points of the
// result are the images of the end points of a. Singular transforms return
// ErrDegenerate.
func (a EllipseArc) Transform(aff Affine) (EllipseArc, error) {
	e, err := a.direct().Transform(aff)
	if err != nil {
		return EllipseArc{}, err
	}
	e.Indirect = false
	ext := a.Extent
	if aff.Determinant() < 0 {
		ext = -ext
	}
	start := e.param(a.FirstPoint().Transform(aff))
	if math.Abs(ext) < twoPi-Accuracy {
		end := e.param(a.LastPoint().Transform(aff))
		if ext >= 0 {
			ext = AngleDiff(start, end)
		} else {
			ext = -AngleDiff(end, start)
		}
	}
	return EllipseArc{Ellipse: e, Start: start, Extent: ext}, nil
}

func (a EllipseArc) linePositions(l Line) []float64 {
	var out []float64
	for _, th := range a.direct().linePositions(l) {
		if t, ok := a.inDomain(a.param(th)); ok {
			out = append(out, t)
		}
	}
	return out
}
