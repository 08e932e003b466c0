package conic

import (
	"fmt"
	"math"
	"slices"
)

// LinePositions returns the parameters on c of the points where l crosses
// it, in increasing order. Points where l is tangent to a conic are
// included once. Lines that overlap c are not reported.
func LinePositions(c Curve, l Line) []float64 {
	var ts []float64
	switch c := c.(type) {
	case Line:
		tc, tl, ok := c.Crossing(l)
		if ok && c.containsParam(tc) && l.containsParam(tl) {
			ts = []float64{clamp(tc, c.T0, c.T1)}
		}
	case Circle:
		ts = c.linePositions(l)
	case CircleArc:
		ts = c.linePositions(l)
	case Ellipse:
		ts = c.linePositions(l)
	case EllipseArc:
		ts = c.linePositions(l)
	case Hyperbola:
		ts = LinePositions(c.Branches(), l)
	case HyperbolaBranch:
		ts = c.linePositions(l)
	case HyperbolaBranchArc:
		ts = c.linePositions(l)
	case Parabola:
		ts = c.linePositions(l)
	case ParabolaArc:
		ts = c.linePositions(l)
	case Contour:
		for i, e := range c.curves {
			for _, t := range LinePositions(e, l) {
				ts = append(ts, c.global(i, t))
			}
		}
	case CurveSet:
		for i, m := range c {
			for _, t := range LinePositions(m, l) {
				ts = append(ts, c.global(i, t))
			}
		}
	default:
		panic(fmt.Sprintf("unhandled curve type %T", c))
	}
	return sortPositions(ts)
}

// IntersectLine returns the points where l crosses c, ordered along c.
func IntersectLine(c Curve, l Line) []Point {
	ts := LinePositions(c, l)
	out := make([]Point, len(ts))
	for i, t := range ts {
		out[i] = c.Point(t)
	}
	return out
}

// sortPositions sorts ts and removes values within Accuracy of their
// predecessor.
func sortPositions(ts []float64) []float64 {
	slices.Sort(ts)
	return slices.CompactFunc(ts, func(a, b float64) bool {
		return math.Abs(a-b) <= scaledAccuracy(a)
	})
}
