package conic

import (
	"math"
)

// HyperbolaBranchArc is the portion [T0, T1] of a hyperbola branch. Either
// bound may be infinite, in which case the arc is unbounded.
//
// HyperbolaBranchArc doesn't implement [Sided]: which side of an open
// portion of a branch is inside is not defined.
type HyperbolaBranchArc struct {
	Branch HyperbolaBranch
	T0, T1 float64
}

var _ Curve = HyperbolaBranchArc{}

func (a HyperbolaBranchArc) isCurve() {}

func (a HyperbolaBranchArc) Point(t float64) Point       { return a.Branch.Point(t) }
func (a HyperbolaBranchArc) Tangent(t float64) Vec2      { return a.Branch.Tangent(t) }
func (a HyperbolaBranchArc) Curvature(t float64) float64 { return a.Branch.Curvature(t) }
func (a HyperbolaBranchArc) Domain() (float64, float64)  { return a.T0, a.T1 }
func (a HyperbolaBranchArc) FirstPoint() Point           { return a.Branch.Point(a.T0) }
func (a HyperbolaBranchArc) LastPoint() Point            { return a.Branch.Point(a.T1) }
func (a HyperbolaBranchArc) IsClosed() bool              { return false }

func (a HyperbolaBranchArc) IsBounded() bool {
	return isFinite(a.T0) && isFinite(a.T1)
}

func (a HyperbolaBranchArc) containsParam(t float64) bool {
	return t >= a.T0-Accuracy && t <= a.T1+Accuracy
}

func (a HyperbolaBranchArc) Position(pt Point) (float64, bool) {
	t, ok := a.Branch.Position(pt)
	if !ok || !a.containsParam(t) {
		return 0, false
	}
	return clamp(t, a.T0, a.T1), true
}

func (a HyperbolaBranchArc) Project(pt Point) float64 {
	return a.Branch.projectIn(pt, a.T0, a.T1)
}

func (a HyperbolaBranchArc) SubCurve(t0, t1 float64) Curve {
	return a.SubArc(t0, t1)
}

// SubArc is like SubCurve but returns a HyperbolaBranchArc. When t0 > t1 the
// result runs in the opposite direction.
func (a HyperbolaBranchArc) SubArc(t0, t1 float64) HyperbolaBranchArc {
	return a.Branch.Arc(clamp(t0, a.T0, a.T1), clamp(t1, a.T0, a.T1))
}

func (a HyperbolaBranchArc) Reverse() Curve { return a.ReverseArc() }

// ReverseArc is like Reverse but returns a HyperbolaBranchArc, with bounds
// [−T1, −T0] on the reversed branch.
func (a HyperbolaBranchArc) ReverseArc() HyperbolaBranchArc {
	return HyperbolaBranchArc{Branch: a.Branch.ReverseBranch(), T0: -a.T1, T1: -a.T0}
}

func (a HyperbolaBranchArc) BoundingBox() Box {
	return a.Branch.boxIn(a.T0, a.T1)
}

// Transform returns the image of the arc under aff, with bounds re-derived
// from the images of its end points.
func (a HyperbolaBranchArc) Transform(aff Affine) (HyperbolaBranchArc, error) {
	b, err := a.Branch.Transform(aff)
	if err != nil {
		return HyperbolaBranchArc{}, err
	}
	bound := func(t float64) float64 {
		if math.IsInf(t, 0) {
			return t
		}
		return b.param(a.Branch.Point(t).Transform(aff))
	}
	t0, t1 := bound(a.T0), bound(a.T1)
	// The transformed branch has the direction of travel of a, so infinite
	// bounds keep their sign.
	return HyperbolaBranchArc{Branch: b, T0: min(t0, t1), T1: max(t0, t1)}, nil
}

func (a HyperbolaBranchArc) linePositions(l Line) []float64 {
	var out []float64
	for _, t := range a.Branch.linePositions(l) {
		if a.containsParam(t) {
			out = append(out, clamp(t, a.T0, a.T1))
		}
	}
	return out
}
