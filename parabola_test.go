package conic

import (
	"errors"
	"math"
	"testing"
)

func TestParabolaGeometry(t *testing.T) {
	if _, err := NewParabola(Pt(0, 0), 0, 0); !errors.Is(err, ErrDegenerate) {
		t.Errorf("got error %v, expected ErrDegenerate", err)
	}

	p := Parabola{Vertex: Pt(1, 1), A: 0.5}
	assertNear(t, p.Point(2), Pt(3, 3), 1e-12)
	assertNear(t, p.Focus(), Pt(1, 1.5), 1e-12)

	for _, p := range []Parabola{
		{Vertex: Pt(1, 1), A: 0.5},
		{Vertex: Pt(-2, 3), A: -2, Theta: 0.3},
	} {
		f, d := p.Focus(), p.Directrix()
		q := p.Coefficients()
		for _, tt := range []float64{-3, -0.5, 0, 1, 4} {
			pt := p.Point(tt)
			assertNearFloat(t, pt.Distance(f), d.Distance(pt), 1e-9)
			if v := q.Eval(pt); math.Abs(v) > 1e-9 {
				t.Errorf("%v: point at %g isn't on the parabola: %g", p, tt, v)
			}
			got, ok := p.Position(pt)
			if !ok {
				t.Fatalf("%v: point at %g not found", p, tt)
			}
			assertNearFloat(t, got, tt, 1e-9)
			assertNearFloat(t, p.Project(pt), tt, 1e-9)
		}
		r := p.ReverseParabola()
		assertNear(t, r.Point(1.5), p.Point(-1.5), 1e-12)
	}
}

func TestParabolaInfinity(t *testing.T) {
	p := Parabola{A: 1}
	inf := math.Inf(1)
	diff(t, Pt(-inf, inf), p.FirstPoint())
	diff(t, Pt(inf, inf), p.LastPoint())
	diff(t, Box{-inf, inf, 0, inf}, p.BoundingBox())

	p = Parabola{A: 1, Theta: math.Pi / 2}
	bb := p.BoundingBox()
	if !math.IsInf(bb.MinX, -1) || math.Abs(bb.MaxX) > 1e-12 || !math.IsInf(bb.MinY, -1) || !math.IsInf(bb.MaxY, 1) {
		t.Errorf("got bounding box %s", bb)
	}
}

func TestParabolaProject(t *testing.T) {
	p := Parabola{A: 1}
	got := p.Project(Pt(0, 5))
	assertNearFloat(t, math.Abs(got), math.Sqrt(4.5), 1e-9)
	assertNearFloat(t, p.Project(Pt(0, -1)), 0, 1e-12)
	assertNearFloat(t, p.SignedDistance(Pt(0, -1)), 1, 1e-12)
	assertNearFloat(t, p.SignedDistance(Pt(0, 0.25)), -0.25, 1e-12)

	if !p.IsInside(Pt(0, 1)) || p.IsInside(Pt(2, 1)) {
		t.Error("wrong sides for parabola")
	}
	r := p.ReverseParabola()
	if r.IsInside(Pt(0, 1)) || !r.IsInside(Pt(2, 1)) {
		t.Error("wrong sides for reversed parabola")
	}
}

func TestParabolaLine(t *testing.T) {
	p := Parabola{A: 1}
	l, _ := NewLine(Pt(-10, 4), Vec(1, 0))
	diff(t, []float64{-2, 2}, LinePositions(p, l), approx(1e-12))

	tangent, _ := NewLine(Pt(-10, 0), Vec(1, 0))
	diff(t, []float64{0}, LinePositions(p, tangent), approx(1e-12))

	// Lines parallel to the axis cross once.
	axis, _ := NewLine(Pt(3, 0), Vec(0, 1))
	diff(t, []Point{Pt(3, 9)}, IntersectLine(p, axis), approx(1e-9))

	a := p.Arc(-1, 2)
	diff(t, []float64{2}, LinePositions(a, l), approx(1e-12))
}

func TestParabolaTransform(t *testing.T) {
	p := Parabola{Vertex: Pt(1, 1), A: 0.5, Theta: 0.2}
	for _, aff := range []Affine{
		Rotate(math.Pi / 2),
		Scale(2, 3).ThenTranslate(Vec(1, -1)),
		FlipY,
		Skew(0.3, 0),
	} {
		img, err := p.Transform(aff)
		if err != nil {
			t.Fatal(err)
		}
		for _, tt := range []float64{-2, 0, 1, 3} {
			pt := p.Point(tt).Transform(aff)
			s := img.Project(pt)
			if d := img.Point(s).Distance(pt); d > 1e-9 {
				t.Fatalf("%v: image of point at %g is %g away from %v", aff, tt, d, img)
			}
			if img.Tangent(s).Dot(p.Tangent(tt).Transform(aff)) <= 0 {
				t.Errorf("%v: transformed parabola runs backwards at %g", aff, tt)
			}
		}
	}
	if _, err := p.Transform(Scale(1, 0)); !errors.Is(err, ErrDegenerate) {
		t.Errorf("got error %v, expected ErrDegenerate", err)
	}
}

func TestParabolaArc(t *testing.T) {
	p := Parabola{A: 1}
	a := p.Arc(-1, 2)
	if !a.IsBounded() {
		t.Error("arc should be bounded")
	}
	assertNear(t, a.FirstPoint(), Pt(-1, 1), 1e-12)
	assertNear(t, a.LastPoint(), Pt(2, 4), 1e-12)
	diff(t, Box{-1, 2, 0, 4}, a.BoundingBox(), approx(1e-12))

	r := p.Arc(2, -1)
	assertNear(t, r.FirstPoint(), Pt(2, 4), 1e-12)
	assertNear(t, r.LastPoint(), Pt(-1, 1), 1e-12)
	r = a.ReverseArc()
	assertNear(t, r.FirstPoint(), Pt(2, 4), 1e-12)

	if _, ok := a.Position(Pt(3, 9)); ok {
		t.Error("point outside of the arc found")
	}
	assertNearFloat(t, a.Project(Pt(10, 50)), 2, 1e-12)

	tests := []struct {
		pt     Point
		inside bool
	}{
		{Pt(0, 1), true},
		{Pt(5, 0), false},
		// Beyond the end, the tangent at (2, 4) decides.
		{Pt(3, 20), true},
		{Pt(4, 5), false},
	}
	for _, tt := range tests {
		if got := a.IsInside(tt.pt); got != tt.inside {
			t.Errorf("%s: got %t, expected %t", tt.pt, got, tt.inside)
		}
	}

	img, err := a.Transform(Translate(Vec(1, 1)))
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, img.FirstPoint(), Pt(0, 2), 1e-9)
	assertNear(t, img.LastPoint(), Pt(3, 5), 1e-9)
}
