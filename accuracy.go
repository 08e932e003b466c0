package conic

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Accuracy is the tolerance used for every equality, containment and
// degeneracy decision in this package. Two coordinates closer than Accuracy
// are considered equal.
const Accuracy = 1e-12

const twoPi = 2 * math.Pi

func almostEqual[F constraints.Float](a, b, eps F) bool {
	if a < b {
		return b-a <= eps
	}
	return a-b <= eps
}

func almostZero[F constraints.Float](a F) bool {
	return almostEqual(a, 0, F(Accuracy))
}

// clamp restricts v to [lo, hi].
func clamp[F constraints.Float](v, lo, hi F) F {
	return min(max(v, lo), hi)
}

// scaledAccuracy returns a tolerance for comparisons on values of magnitude
// scale. Quantities that are computed from coordinates of size s carry a
// rounding error proportional to s.
func scaledAccuracy(scale float64) float64 {
	return Accuracy * max(1, math.Abs(scale))
}

// NormalizeAngle returns the angle th in the range [0, 2π).
func NormalizeAngle(th float64) float64 {
	th = math.Mod(th, twoPi)
	if th < 0 {
		th += twoPi
	}
	// math.Mod can return values that round to 2π after the addition above.
	if th >= twoPi {
		th = 0
	}
	return th
}

// ContainsAngle reports whether the angle th lies in the angular span that
// starts at start and sweeps extent radians. A negative extent sweeps
// clockwise. The end points are included, within [Accuracy].
func ContainsAngle(start, extent, th float64) bool {
	if math.Abs(extent) >= twoPi-Accuracy {
		return true
	}
	var d float64
	if extent >= 0 {
		d = NormalizeAngle(th - start)
	} else {
		d = NormalizeAngle(start - th)
	}
	// d close to 2π means th is just before start.
	if d > twoPi-Accuracy {
		return true
	}
	return d <= math.Abs(extent)+Accuracy
}

// AngleDiff returns the counter-clockwise angle from a to b, in [0, 2π).
func AngleDiff(a, b float64) float64 {
	return NormalizeAngle(b - a)
}

// isFinite reports whether f is neither infinite nor NaN.
func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
