package conic

import (
	"errors"
	"math"
	"testing"
)

func TestProjectedVector(t *testing.T) {
	ellipses := []Ellipse{
		{R1: 10, R2: 4},
		{R1: 4, R2: 10},
		{Center: Pt(1, 2), R1: 10, R2: 4, Theta: 0.3},
		{Center: Pt(-3, 1), R1: 10, R2: 4, Theta: 2, Indirect: true},
	}
	offsets := []Vec2{
		{0, 0},
		{0.1, 0.2},
		{5, 0},
		{3, 1},
		{-7, -2.5},
		{0, 10},
		{12, 5},
		{20, 0},
		{-30, 40},
		{9.99, 0.01},
	}
	for _, e := range ellipses {
		q := e.Coefficients()
		for _, off := range offsets {
			pt := e.Center.Translate(off)
			pv, err := e.ProjectedVector(pt, 0)
			if err != nil {
				t.Fatalf("%v, %s: %s", e, pt, err)
			}
			foot := pt.Translate(pv.Vec2().Negate())
			if v := q.Eval(foot); math.Abs(v) > 1e-9 {
				t.Errorf("%v, %s: foot %s isn't on the ellipse: %g", e, pt, foot, v)
			}
			// The gradient of the equation is the outward normal.
			grad := Vec2{2*q.A*foot.X + q.B*foot.Y + q.D, q.B*foot.X + 2*q.C*foot.Y + q.E}
			dir := VecFromAngle(pv.Theta)
			if c := grad.Normalize().Cross(dir); math.Abs(c) > 1e-9 {
				t.Errorf("%v, %s: direction %s isn't normal to the ellipse", e, pt, dir)
			}
			if grad.Dot(dir) < 0 {
				t.Errorf("%v, %s: direction %s points inward", e, pt, dir)
			}

			// No sampled point is closer than the foot.
			best := math.Inf(1)
			for p := range Points(e, 5000) {
				best = min(best, p.Distance(pt))
			}
			if math.Abs(pv.Rho) > best+1e-9 {
				t.Errorf("%v, %s: got distance %g, but sampling found %g", e, pt, math.Abs(pv.Rho), best)
			}

			inside := Vec2(pt.Transform(e.toUnit())).Hypot2() < 1
			if inside != (pv.Rho < 0) {
				t.Errorf("%v, %s: got Rho = %g", e, pt, pv.Rho)
			}
		}
	}
}

func TestProjectedVectorAxes(t *testing.T) {
	e := Ellipse{R1: 10, R2: 4}
	pv, err := e.ProjectedVector(Pt(20, 0), 0)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, PolarVector{Rho: 10, Theta: 0}, pv, approx(1e-12))

	pv, err = e.ProjectedVector(Pt(0, 0), 0)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, PolarVector{Rho: -4, Theta: math.Pi / 2}, pv, approx(1e-12))
}

func TestEllipseParametrization(t *testing.T) {
	for _, e := range []Ellipse{
		{Center: Pt(1, -1), R1: 3, R2: 1, Theta: 0.5},
		{Center: Pt(1, -1), R1: 3, R2: 1, Theta: 0.5, Indirect: true},
	} {
		q := e.Coefficients()
		for _, tt := range []float64{0, 1, 2.5, 4, 6} {
			p := e.Point(tt)
			if v := q.Eval(p); math.Abs(v) > 1e-12 {
				t.Errorf("%v: point at %g isn't on the ellipse: %g", e, tt, v)
			}
			got, ok := e.Position(p)
			if !ok {
				t.Fatalf("%v: point at %g not found", e, tt)
			}
			assertNearFloat(t, got, tt, 1e-9)
			assertNearFloat(t, e.Project(p), tt, 1e-9)
		}
	}

	e := Ellipse{R1: 10, R2: 4}
	assertNearFloat(t, e.Curvature(0), 10.0/16, 1e-12)
	assertNearFloat(t, e.ReverseEllipse().Curvature(0), -10.0/16, 1e-12)
	assertNear(t, e.ReverseEllipse().Point(math.Pi/2), Pt(0, -4), 1e-12)

	diff(t, Box{-4, 4, -10, 10}, Ellipse{R1: 10, R2: 4, Theta: math.Pi / 2}.BoundingBox(), approx(1e-12))
}

func TestNewEllipse(t *testing.T) {
	if _, err := NewEllipse(Pt(0, 0), 1, 0, 0); !errors.Is(err, ErrDegenerate) {
		t.Errorf("got error %v, expected ErrDegenerate", err)
	}
	if _, err := NewEllipseFromBox(Box{0, math.Inf(1), 0, 1}); !errors.Is(err, ErrUnbounded) {
		t.Errorf("got error %v, expected ErrUnbounded", err)
	}
	e, err := NewEllipseFromBox(Box{0, 4, 0, 2})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Ellipse{Center: Pt(2, 1), R1: 2, R2: 1}, e)
}

func TestEllipseFoci(t *testing.T) {
	for _, e := range []Ellipse{
		{R1: 5, R2: 3},
		{Center: Pt(2, 2), R1: 3, R2: 5, Theta: 1},
	} {
		f1, f2 := e.Foci()
		assertNearFloat(t, f1.Distance(f2), 8, 1e-12)
		for p := range Points(e, 10) {
			assertNearFloat(t, p.Distance(f1)+p.Distance(f2), 10, 1e-9)
		}
	}
}

func TestEllipseTransform(t *testing.T) {
	e := Ellipse{Center: Pt(1, 2), R1: 3, R2: 1, Theta: 0.4}
	affs := []Affine{
		Rotate(0.7),
		Scale(2, 0.5).ThenTranslate(Vec(1, 1)),
		Skew(0.5, 0),
		FlipX,
	}
	for _, aff := range affs {
		img, err := e.Transform(aff)
		if err != nil {
			t.Fatalf("%v: %s", aff, err)
		}
		for p := range Points(e, 12) {
			if _, ok := img.Position(p.Transform(aff)); !ok {
				t.Errorf("%v: image of %s isn't on %v", aff, p, img)
			}
		}
		if img.Indirect != (aff.Determinant() < 0) {
			t.Errorf("%v: got Indirect = %t", aff, img.Indirect)
		}
		if img.R1 < img.R2 {
			t.Errorf("%v: R1 = %g is shorter than R2 = %g", aff, img.R1, img.R2)
		}
	}

	// Singular transforms flatten the ellipse.
	for _, aff := range []Affine{Scale(1, 0), Scale(0, 0), {1, 2, 2, 4, 0, 0}} {
		if img, err := e.Transform(aff); !errors.Is(err, ErrDegenerate) {
			t.Errorf("%v: got %v, %v, expected ErrDegenerate", aff, img, err)
		}
	}
}

func TestEllipseSides(t *testing.T) {
	e := Ellipse{R1: 10, R2: 4}
	if !e.IsInside(Pt(9, 0)) || e.IsInside(Pt(0, 5)) {
		t.Error("direct ellipse should contain its interior")
	}
	r := e.ReverseEllipse()
	if r.IsInside(Pt(9, 0)) || !r.IsInside(Pt(0, 5)) {
		t.Error("indirect ellipse should contain its exterior")
	}
	assertNearFloat(t, e.SignedDistance(Pt(0, 5)), 1, 1e-12)
	assertNearFloat(t, r.SignedDistance(Pt(0, 5)), -1, 1e-12)
	assertNearFloat(t, e.SignedDistance(Pt(0, 3)), -1, 1e-12)
}

func TestEllipseArc(t *testing.T) {
	e := Ellipse{R1: 2, R2: 1}
	a, err := NewEllipseArc(e, 0, math.Pi/2)
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, a.FirstPoint(), Pt(2, 0), 1e-12)
	assertNear(t, a.LastPoint(), Pt(0, 1), 1e-12)
	diff(t, Box{0, 2, 0, 1}, a.BoundingBox(), approx(1e-12))

	if !a.IsInside(Pt(1, 0.5)) || a.IsInside(Pt(2, 1)) {
		t.Error("wrong sides for arc")
	}
	r := a.ReverseArc()
	if r.IsInside(Pt(1, 0.5)) || !r.IsInside(Pt(2, 1)) {
		t.Error("wrong sides for reversed arc")
	}

	p := e.Point(0.7)
	got, ok := a.Position(p)
	if !ok {
		t.Fatal("point not found on arc")
	}
	assertNearFloat(t, got, 0.7, 1e-9)
	got, ok = r.Position(p)
	if !ok {
		t.Fatal("point not found on reversed arc")
	}
	assertNearFloat(t, got, math.Pi/2-0.7, 1e-9)
	if _, ok := a.Position(e.Point(3)); ok {
		t.Error("point outside of the arc's span found")
	}

	// Ellipse.Arc follows the orientation of the ellipse.
	arc := e.ReverseEllipse().Arc(0, math.Pi/2)
	assertNear(t, arc.FirstPoint(), Pt(2, 0), 1e-12)
	assertNear(t, arc.LastPoint(), Pt(0, -1), 1e-12)
	wrap := e.Arc(3*math.Pi/2, math.Pi/2)
	assertNearFloat(t, wrap.Extent, math.Pi, 1e-12)
	assertNear(t, wrap.Point(math.Pi/2), Pt(2, 0), 1e-12)

	img, err := a.Transform(FlipY)
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, img.FirstPoint(), Pt(2, 0), 1e-12)
	assertNear(t, img.LastPoint(), Pt(0, -1), 1e-12)
	if img.IsDirect() {
		t.Error("reflected arc should be indirect")
	}

	if _, err := a.Transform(Scale(0, 1)); !errors.Is(err, ErrDegenerate) {
		t.Errorf("got error %v, expected ErrDegenerate", err)
	}

	l, _ := NewLine(Pt(0, 0.5), Vec(1, 0))
	diff(t, []Point{Pt(math.Sqrt(3), 0.5)}, IntersectLine(a, l), approx(1e-12))
}
