package conic

import "errors"

var (
	// ErrDegenerate is returned for inputs that do not define the requested
	// object: colinear points for a circumcircle, coincident centers for a
	// radical axis, zero-length direction vectors, non-positive radii, or
	// quadratic forms that describe no proper conic.
	ErrDegenerate = errors.New("conic: degenerate input")

	// ErrNonConvergence is returned when an iterative refinement exceeds its
	// iteration cap before reaching the requested tolerance.
	ErrNonConvergence = errors.New("conic: iteration did not converge")

	// ErrUnbounded is returned when an operation needs a bounded curve or box
	// (sampling, closing a boundary) and was given an unbounded one.
	ErrUnbounded = errors.New("conic: unbounded curve")

	// ErrNotCirculinear is returned when a circle inversion is applied to a
	// curve that is neither a straight line nor a circle. The image of such a
	// curve is not a conic.
	ErrNotCirculinear = errors.New("conic: curve is not circulinear")
)
