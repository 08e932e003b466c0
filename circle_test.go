package conic

import (
	"errors"
	"math"
	"testing"
)

func TestCircumCircle(t *testing.T) {
	c, err := CircumCircle(Pt(0, 0), Pt(4, 0), Pt(0, 4))
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, c.Center, Pt(2, 2), 1e-12)
	assertNearFloat(t, c.Radius, math.Sqrt(8), 1e-12)

	if _, err := CircumCircle(Pt(0, 0), Pt(1, 1), Pt(2, 2)); !errors.Is(err, ErrDegenerate) {
		t.Errorf("got error %v, expected ErrDegenerate", err)
	}
}

func TestCirclesIntersections(t *testing.T) {
	c1 := Circle{Center: Pt(0, 0), Radius: 5}
	tests := []struct {
		name string
		c2   Circle
		want []Point
	}{
		{"two points", Circle{Center: Pt(8, 0), Radius: 5}, []Point{Pt(4, 3), Pt(4, -3)}},
		{"external tangency", Circle{Center: Pt(10, 0), Radius: 5}, []Point{Pt(5, 0)}},
		{"internal tangency", Circle{Center: Pt(2, 0), Radius: 3}, []Point{Pt(5, 0)}},
		{"disjoint", Circle{Center: Pt(11, 0), Radius: 5}, nil},
		{"nested", Circle{Center: Pt(1, 0), Radius: 1}, nil},
		{"concentric", Circle{Center: Pt(0, 0), Radius: 5}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CirclesIntersections(c1, tt.c2)
			diff(t, tt.want, got, approx(1e-9))
			for _, p := range got {
				assertNearFloat(t, p.Distance(c1.Center), c1.Radius, 1e-9)
				assertNearFloat(t, p.Distance(tt.c2.Center), tt.c2.Radius, 1e-9)
			}
		})
	}
}

func TestRadicalAxis(t *testing.T) {
	c1 := Circle{Center: Pt(0, 0), Radius: 5}
	c2 := Circle{Center: Pt(8, 0), Radius: 3}
	axis, err := RadicalAxis(c1, c2)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []float64{-10, 0, 2.5} {
		p := axis.Point(s)
		assertNearFloat(t, c1.Power(p), c2.Power(p), 1e-9)
	}
	assertNear(t, axis.Point(0), Pt(5, 0), 1e-12)
	assertNearFloat(t, axis.Dir.Dot(Vec(1, 0)), 0, 1e-12)

	if _, err := RadicalAxis(c1, Circle{Center: Pt(0, 0), Radius: 2}); !errors.Is(err, ErrDegenerate) {
		t.Errorf("got error %v, expected ErrDegenerate", err)
	}
}

func TestCircleParametrization(t *testing.T) {
	for _, c := range []Circle{
		{Center: Pt(1, 2), Radius: 3},
		{Center: Pt(1, 2), Radius: 3, Indirect: true},
	} {
		for _, tt := range []float64{0, 0.5, 2, 4, 6} {
			got, ok := c.Position(c.Point(tt))
			if !ok {
				t.Fatalf("%v: point at %v not on the circle", c, tt)
			}
			assertNearFloat(t, got, tt, 1e-9)
		}
		if _, ok := c.Position(Pt(1, 2)); ok {
			t.Errorf("%v: center shouldn't be on the circle", c)
		}
	}

	c := Circle{Center: Pt(0, 0), Radius: 1}
	assertNear(t, c.Point(math.Pi/2), Pt(0, 1), 1e-12)
	assertNear(t, c.ReverseCircle().Point(math.Pi/2), Pt(0, -1), 1e-12)
	assertNearFloat(t, c.Curvature(0), 1, 0)
	assertNearFloat(t, c.ReverseCircle().Curvature(0), -1, 0)
	diff(t, c, c.ReverseCircle().ReverseCircle())
}

func TestCircleSides(t *testing.T) {
	c := Circle{Center: Pt(0, 0), Radius: 2}
	if !c.IsInside(Pt(1, 0)) || c.IsInside(Pt(3, 0)) {
		t.Error("direct circle should contain its disk")
	}
	r := c.ReverseCircle()
	if r.IsInside(Pt(1, 0)) || !r.IsInside(Pt(3, 0)) {
		t.Error("indirect circle should contain the exterior of its disk")
	}
	assertNearFloat(t, c.SignedDistance(Pt(0.5, 0)), -1.5, 1e-12)
	assertNearFloat(t, r.SignedDistance(Pt(0.5, 0)), 1.5, 1e-12)

	p, err := c.Parallel(1)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 3.0, p.Radius)
	if _, err := c.Parallel(-2); !errors.Is(err, ErrDegenerate) {
		t.Errorf("got error %v, expected ErrDegenerate", err)
	}
}

func TestCircleLine(t *testing.T) {
	c := Circle{Center: Pt(0, 0), Radius: 1}
	l, _ := NewLine(Pt(-5, 0), Vec(1, 0))
	diff(t, []float64{0, math.Pi}, LinePositions(c, l), approx(1e-12))

	tangent, _ := NewLine(Pt(-5, 1), Vec(1, 0))
	diff(t, []Point{Pt(0, 1)}, IntersectLine(c, tangent), approx(1e-12))

	s, _ := NewSegment(Pt(0, 0), Pt(5, 0))
	diff(t, []Point{Pt(1, 0)}, IntersectLine(c, s), approx(1e-12))

	far, _ := NewLine(Pt(-5, 2), Vec(1, 0))
	if got := IntersectLine(c, far); len(got) != 0 {
		t.Errorf("expected no intersections, got %v", got)
	}
}

func TestCircleTransform(t *testing.T) {
	c := Circle{Center: Pt(1, 1), Radius: 1}
	e, err := c.Transform(Scale(2, 1))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Ellipse{Center: Pt(2, 1), R1: 2, R2: 1}, e, approx(1e-12))

	e, err = c.Transform(Scale(1, 2))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Ellipse{Center: Pt(1, 2), R1: 2, R2: 1, Theta: math.Pi / 2}, e, approx(1e-12))

	for _, aff := range []Affine{Scale(0, 0), Scale(1, 0), {1, 2, 2, 4, 0, 0}} {
		if _, err := c.Transform(aff); !errors.Is(err, ErrDegenerate) {
			t.Errorf("%v: got error %v, expected ErrDegenerate", aff, err)
		}
	}

	img, err := TransformCurve(c, Rotate(1).Then(Translate(Vec(3, 0))))
	if err != nil {
		t.Fatal(err)
	}
	got, ok := img.(Circle)
	if !ok {
		t.Fatalf("got %T, expected Circle", img)
	}
	assertNear(t, got.Center, Pt(1, 1).Transform(Rotate(1)).Translate(Vec(3, 0)), 1e-12)
	assertNearFloat(t, got.Radius, 1, 1e-12)

	img, err = TransformCurve(c, FlipY)
	if err != nil {
		t.Fatal(err)
	}
	if !img.(Circle).Indirect {
		t.Error("reflection should flip the orientation of the circle")
	}

	if _, err := TransformCurve(c, Scale(1, 0)); !errors.Is(err, ErrDegenerate) {
		t.Errorf("got error %v, expected ErrDegenerate", err)
	}
}
