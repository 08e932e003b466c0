package conic

import (
	"fmt"
	"math"
	"slices"
)

// SolveQuadratic returns the real roots of c0 + c1·x + c2·x² = 0 in
// increasing order.
//
// A nearly vanishing c2 degrades the equation to a linear one, so that the
// root that stays in range is still found. When all coefficients are zero
// every x is a solution and a single 0 is returned. Double roots are
// reported once.
func SolveQuadratic(c0, c1, c2 float64) []float64 {
	s0 := c0 / c2
	s1 := c1 / c2
	if math.IsInf(s0, 0) || math.IsInf(s1, 0) || math.IsNaN(s0) || math.IsNaN(s1) {
		switch {
		case c1 != 0:
			return []float64{-c0 / c1}
		case c0 == 0:
			return []float64{0}
		default:
			return nil
		}
	}
	disc := s1*s1 - 4*s0
	var r1 float64
	switch {
	case math.IsInf(disc, 0):
		// s1² overflowed; x² + s1·x ≈ 0 has the large root -s1.
		r1 = -s1
	case disc < 0:
		return nil
	case disc == 0:
		return []float64{-s1 / 2}
	default:
		// Avoid cancellation by computing the larger root first.
		r1 = -(s1 + math.Copysign(math.Sqrt(disc), s1)) / 2
	}
	r2 := s0 / r1
	if math.IsInf(r2, 0) || math.IsNaN(r2) {
		return []float64{r1}
	}
	return []float64{min(r1, r2), max(r1, r2)}
}

// SolveCubic returns the real roots of c0 + c1·x + c2·x² + c3·x³ = 0 in
// increasing order. It falls back to [SolveQuadratic] when c3 is zero or
// negligible.
//
// The method is Blinn's, as described in "How to Solve a Cubic Equation"
// and https://momentsingraphics.de/CubicRoots.html, followed by one Newton
// step per root.
func SolveCubic(c0, c1, c2, c3 float64) []float64 {
	inv := 1 / c3
	a2 := c2 * inv / 3
	a1 := c1 * inv / 3
	a0 := c0 * inv
	if math.IsInf(a0, 0) || math.IsInf(a1, 0) || math.IsInf(a2, 0) {
		return SolveQuadratic(c0, c1, c2)
	}
	delta0 := math.FMA(-a2, a2, a1)
	delta1 := math.FMA(-a1, a2, a0)
	delta2 := a2*a0 - a1*a1
	disc := 4*delta0*delta2 - delta1*delta1
	dx := math.FMA(-2*a2, delta0, delta1)

	var roots []float64
	switch {
	case disc < 0:
		sq := math.Sqrt(-disc / 4)
		r := -dx / 2
		roots = []float64{math.Cbrt(r+sq) + math.Cbrt(r-sq) - a2}
	case disc == 0:
		t := math.Copysign(math.Sqrt(-delta0), dx)
		roots = []float64{t - a2, -2*t - a2}
	default:
		th := math.Atan2(math.Sqrt(disc), -dx) / 3
		sin, cos := math.Sincos(th)
		s3 := sin * math.Sqrt(3)
		t := 2 * math.Sqrt(-delta0)
		roots = []float64{
			math.FMA(t, cos, -a2),
			math.FMA(t, (-cos+s3)/2, -a2),
			math.FMA(t, (-cos-s3)/2, -a2),
		}
	}

	f := func(x float64) float64 { return ((c3*x+c2)*x+c1)*x + c0 }
	df := func(x float64) float64 { return (3*c3*x+2*c2)*x + c1 }
	for i, x := range roots {
		if d := df(x); d != 0 {
			if nx := x - f(x)/d; math.Abs(f(nx)) < math.Abs(f(x)) {
				roots[i] = nx
			}
		}
	}
	slices.Sort(roots)
	return slices.Compact(roots)
}

// newtonBracketed finds a root of f in [lo, hi], where f(lo) and f(hi) have
// opposite signs, starting at x0. Newton steps that leave the bracket are
// replaced by bisection. It stops once a step is smaller than eps and
// returns ErrNonConvergence after maxIter steps.
func newtonBracketed(f, df func(float64) float64, lo, hi, x0, eps float64, maxIter int) (float64, error) {
	flo := f(lo)
	if flo == 0 {
		return lo, nil
	}
	if fhi := f(hi); fhi == 0 {
		return hi, nil
	}
	x := clamp(x0, lo, hi)
	for range maxIter {
		fx := f(x)
		if fx == 0 {
			return x, nil
		}
		if (fx < 0) == (flo < 0) {
			lo, flo = x, fx
		} else {
			hi = x
		}
		nx := x - fx/df(x)
		if !(nx > lo && nx < hi) {
			nx = (lo + hi) / 2
		}
		step := math.Abs(nx - x)
		x = nx
		if step < eps {
			return x, nil
		}
	}
	return x, fmt.Errorf("no root within %g after %d iterations: %w", eps, maxIter, ErrNonConvergence)
}
