package conic

import (
	"errors"
	"math"
	"testing"
)

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		c0, c1, c2 float64
		want       []float64
	}{
		{-6, 1, 1, []float64{-3, 2}},
		{1, 0, 1, nil},
		{1, 2, 1, []float64{-1}},
		{-2, 1, 0, []float64{2}},
		{0, 0, 0, []float64{0}},
		{3, 0, 0, nil},
	}
	for _, tt := range tests {
		got := SolveQuadratic(tt.c0, tt.c1, tt.c2)
		diff(t, tt.want, got, approx(1e-12))
	}
}

func TestSolveCubic(t *testing.T) {
	// (x − 1)(x − 2)(x − 3)
	diff(t, []float64{1, 2, 3}, SolveCubic(-6, 11, -6, 1), approx(1e-9))
	// x³ − 8
	diff(t, []float64{2}, SolveCubic(-8, 0, 0, 1), approx(1e-12))
	// Degenerates to the quadratic x² − 4.
	diff(t, []float64{-2, 2}, SolveCubic(-4, 0, 1, 0), approx(1e-12))

	for _, c := range [][4]float64{{1, -3, 0, 2}, {-0.5, 2, 7, -3}} {
		for _, x := range SolveCubic(c[0], c[1], c[2], c[3]) {
			if f := ((c[3]*x+c[2])*x+c[1])*x + c[0]; math.Abs(f) > 1e-9 {
				t.Errorf("%v: root %v has residual %v", c, x, f)
			}
		}
	}
}

func TestNewtonBracketed(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	df := func(x float64) float64 { return 2 * x }
	x, err := newtonBracketed(f, df, 0, 2, 1, 1e-14, 100)
	if err != nil {
		t.Fatal(err)
	}
	assertNearFloat(t, x, math.Sqrt2, 1e-12)

	if _, err := newtonBracketed(f, df, 0, 2, 1, 0, 2); !errors.Is(err, ErrNonConvergence) {
		t.Errorf("got error %v, expected ErrNonConvergence", err)
	}
}
