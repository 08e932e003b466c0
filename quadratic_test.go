package conic

import (
	"errors"
	"math"
	"testing"
)

func TestQuadraticCenter(t *testing.T) {
	e := Ellipse{Center: Pt(3, -2), R1: 5, R2: 2, Theta: 0.7}
	q := e.Coefficients()
	c, err := q.Center()
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, c, e.Center, 1e-12)

	cq, c, err := q.Centered()
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, c, e.Center, 1e-12)
	for p := range Points(e, 8) {
		local := p.Translate(Vec2(e.Center).Negate())
		if v := cq.Eval(local); math.Abs(v) > 1e-12 {
			t.Errorf("%s: centered equation gives %g", p, v)
		}
	}

	if _, err := (Parabola{A: 1}).Coefficients().Center(); !errors.Is(err, ErrDegenerate) {
		t.Errorf("got error %v, expected ErrDegenerate", err)
	}
}

func TestQuadraticDiscriminant(t *testing.T) {
	if d := (Ellipse{R1: 2, R2: 1}).Coefficients().Discriminant(); d >= 0 {
		t.Errorf("ellipse has discriminant %g", d)
	}
	if d := (Hyperbola{A: 2, B: 1}).Coefficients().Discriminant(); d <= 0 {
		t.Errorf("hyperbola has discriminant %g", d)
	}
	if d := (Parabola{A: 1, Theta: 0.4}).Coefficients().Discriminant(); math.Abs(d) > 1e-12 {
		t.Errorf("parabola has discriminant %g", d)
	}

	q := Quadratic{A: 2, B: -8, C: 1, D: 0.5, E: 4, F: -3}
	n := q.Normalize()
	diff(t, Quadratic{A: 0.25, B: -1, C: 0.125, D: 0.0625, E: 0.5, F: -0.375}, n)
	diff(t, Quadratic{}, Quadratic{}.Normalize())
}

func TestQuadraticTransform(t *testing.T) {
	e := Ellipse{Center: Pt(1, 1), R1: 3, R2: 1, Theta: 0.2}
	aff := Rotate(0.5).Then(Scale(2, 1)).ThenTranslate(Vec(-1, 4))
	q, err := e.Coefficients().Transform(aff)
	if err != nil {
		t.Fatal(err)
	}
	for p := range Points(e, 8) {
		if v := q.Eval(p.Transform(aff)); math.Abs(v) > 1e-12 {
			t.Errorf("image of %s gives %g", p, v)
		}
	}
	if _, err := q.Transform(Scale(1, 0)); !errors.Is(err, ErrDegenerate) {
		t.Errorf("got error %v, expected ErrDegenerate", err)
	}
}

func TestReduceCentered(t *testing.T) {
	tests := []struct {
		q    Quadratic
		want Ellipse
	}{
		// x²/4 + y² = 1
		{Quadratic{A: 0.25, C: 1, F: -1}, Ellipse{R1: 2, R2: 1}},
		// x² + y²/4 = 1, longer axis vertical
		{Quadratic{A: 1, C: 0.25, F: -1}, Ellipse{R1: 2, R2: 1, Theta: math.Pi / 2}},
		// Negated equation
		{Quadratic{A: -0.25, C: -1, F: 1}, Ellipse{R1: 2, R2: 1}},
		// Circle
		{Quadratic{A: 1, C: 1, F: -9}, Ellipse{R1: 3, R2: 3}},
	}
	for _, tt := range tests {
		got, err := ReduceCentered(tt.q)
		if err != nil {
			t.Fatalf("%s: %s", tt.q, err)
		}
		diff(t, tt.want, got, approx(1e-12))
	}

	// Rotated ellipses round-trip through their coefficients.
	for _, th := range []float64{0.1, 1, 2, 3} {
		e := Ellipse{R1: 5, R2: 2, Theta: th}
		got, err := ReduceCentered(e.Coefficients())
		if err != nil {
			t.Fatal(err)
		}
		diff(t, e, got, approx(1e-9))
	}

	for _, q := range []Quadratic{
		{A: 1, C: 1, F: 1},
		{A: 1, C: -1, F: -1},
		{A: 1, C: 1},
	} {
		if _, err := ReduceCentered(q); !errors.Is(err, ErrDegenerate) {
			t.Errorf("%s: got error %v, expected ErrDegenerate", q, err)
		}
	}
}

func TestReduceCenteredHyperbola(t *testing.T) {
	h, err := ReduceCenteredHyperbola(Quadratic{A: 0.25, C: -1, F: -1})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Hyperbola{A: 2, B: 1}, h, approx(1e-12))

	// −x² + y²/4 = 1 opens along y.
	h, err = ReduceCenteredHyperbola(Quadratic{A: -1, C: 0.25, F: -1})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Hyperbola{A: 2, B: 1, Theta: math.Pi / 2}, h, approx(1e-12))

	// x² − y² = 0 is a pair of lines.
	if _, err := ReduceCenteredHyperbola(Quadratic{A: 1, C: -1}); !errors.Is(err, ErrDegenerate) {
		t.Errorf("got error %v, expected ErrDegenerate", err)
	}
}

func TestReduceConic(t *testing.T) {
	curves := []Curve{
		Circle{Center: Pt(1, 2), Radius: 3},
		Ellipse{Center: Pt(-1, 2), R1: 4, R2: 1, Theta: 0.6},
		Hyperbola{Center: Pt(2, 2), A: 1, B: 3, Theta: 1.2},
		Parabola{Vertex: Pt(1, -1), A: 0.5, Theta: 0.3},
		Parabola{Vertex: Pt(1, -1), A: 2, Theta: 2},
	}
	coefficients := func(c Curve) Quadratic {
		switch c := c.(type) {
		case Circle:
			return c.AsEllipse().Coefficients()
		case Ellipse:
			return c.Coefficients()
		case Hyperbola:
			return c.Coefficients()
		case Parabola:
			return c.Coefficients()
		}
		panic("unreachable")
	}
	for _, c := range curves {
		got, err := ReduceConic(coefficients(c))
		if err != nil {
			t.Fatalf("%v: %s", c, err)
		}
		if want, got := typeName(c), typeName(got); want != got {
			t.Fatalf("got %s, expected %s", got, want)
		}
		q := coefficients(got).Normalize()
		var pts []Point
		if hyp, ok := c.(Hyperbola); ok {
			for p := range Points(hyp.Branch(PositiveBranch).Arc(-2, 2), 5) {
				pts = append(pts, p)
			}
			for p := range Points(hyp.Branch(NegativeBranch).Arc(-2, 2), 5) {
				pts = append(pts, p)
			}
		} else if par, ok := c.(Parabola); ok {
			for p := range Points(par.Arc(-3, 3), 7) {
				pts = append(pts, p)
			}
		} else {
			for p := range Points(c, 8) {
				pts = append(pts, p)
			}
		}
		for _, p := range pts {
			if v := q.Eval(p); math.Abs(v) > 1e-9 {
				t.Errorf("%v: %s isn't on the reduced %v: %g", c, p, got, v)
			}
		}
	}

	for _, q := range []Quadratic{
		{D: 1, E: 1, F: 1},
		{A: 1, C: 1, F: 1},
		{A: 1, C: -1},
		{A: 1, F: -1},
	} {
		if _, err := ReduceConic(q); !errors.Is(err, ErrDegenerate) {
			t.Errorf("%s: got error %v, expected ErrDegenerate", q, err)
		}
	}
}

func typeName(c Curve) string {
	switch c.(type) {
	case Circle:
		return "circle"
	case Ellipse:
		return "ellipse"
	case Hyperbola:
		return "hyperbola"
	case Parabola:
		return "parabola"
	default:
		return "other"
	}
}
