package conic

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, and the floats inside structs and slices, with
// the given absolute tolerance.
func approx(eps float64) cmp.Option {
	return cmpopts.EquateApprox(0, eps)
}

func assertNear(t *testing.T, got, want Point, epsilon float64) {
	t.Helper()
	if d := got.Distance(want); !(d <= epsilon) {
		t.Fatalf("got %s, expected %s", got, want)
	}
}

func assertNearFloat(t *testing.T, got, want, epsilon float64) {
	t.Helper()
	if !(math.Abs(got-want) <= epsilon) {
		t.Fatalf("got %v, expected %v", got, want)
	}
}
