// Package clip clips conic curves against axis-aligned boxes and rebuilds the
// closed boundaries of clipped regions.
//
// Regions are described by their boundaries: closed curves whose left side
// is the inside of the region. Clipping a region against a box, as done by
// [Boundary], yields the closed boundaries of the intersection of the region
// and the box.
package clip

import (
	"math"
	"slices"

	"honnef.co/go/conic"
)

// Curve returns the portions of c that lie inside box. Curve sets are
// clipped member by member, and their results flattened.
func Curve(c conic.Curve, box conic.Box) conic.CurveSet {
	switch c := c.(type) {
	case conic.CurveSet:
		var out conic.CurveSet
		for _, m := range c {
			out = append(out, Curve(m, box)...)
		}
		return out
	case conic.Hyperbola:
		return Curve(c.Branches(), box)
	default:
		return ContinuousCurve(c, box)
	}
}

// ContinuousCurve clips a continuous curve against box. It splits the curve
// at its crossings with the sides of the box and keeps the pieces lying
// inside. For closed curves, the piece running from the last crossing back
// to the first one is kept as a single piece. A curve that doesn't cross the
// box is kept or dropped as a whole.
func ContinuousCurve(c conic.Curve, box conic.Box) conic.CurveSet {
	if box.ContainsBox(c.BoundingBox()) {
		return conic.CurveSet{c}
	}
	var ts []float64
	for _, edge := range box.Edges() {
		ts = append(ts, conic.LinePositions(c, edge)...)
	}
	return split(c, ts, box.Contains)
}

// SmoothCurve clips c against box by cutting it with the supporting lines of
// the box's sides one after the other, each pass discarding the pieces on
// the outer side of the line. It is more robust than [ContinuousCurve] for
// curves that graze the corners of the box.
func SmoothCurve(c conic.Curve, box conic.Box) conic.CurveSet {
	frags := []conic.Curve{c}
	if hyp, ok := c.(conic.Hyperbola); ok {
		frags = hyp.Branches()
	} else if set, ok := c.(conic.CurveSet); ok {
		frags = set
	}
	for _, edge := range box.Edges() {
		l := edge.Supporting()
		inside := func(pt conic.Point) bool {
			return l.SignedDistance(pt) <= accuracy(pt)
		}
		var next []conic.Curve
		for _, f := range frags {
			next = append(next, split(f, conic.LinePositions(f, l), inside)...)
		}
		frags = next
	}
	return conic.CurveSet(frags)
}

func accuracy(pt conic.Point) float64 {
	return conic.Accuracy * max(1, math.Abs(pt.X), math.Abs(pt.Y))
}

// split cuts c at the parameters ts and returns the pieces whose middle
// point satisfies keep. Pieces of zero length are dropped.
func split(c conic.Curve, ts []float64, keep func(conic.Point) bool) conic.CurveSet {
	t0, t1 := c.Domain()
	closed := c.IsClosed()
	period := t1 - t0

	ts = slices.Clone(ts)
	if closed {
		// The end of a closed curve is its start.
		for i, t := range ts {
			if math.Abs(t-t1) <= paramAccuracy(t1) {
				ts[i] = t0
			}
		}
	}
	slices.Sort(ts)
	ts = slices.CompactFunc(ts, func(a, b float64) bool {
		return math.Abs(a-b) <= paramAccuracy(a)
	})

	if len(ts) == 0 || (closed && len(ts) == 1) {
		if keep(c.Point(conic.MidParam(t0, t1))) {
			return conic.CurveSet{c}
		}
		return nil
	}

	var out conic.CurveSet
	piece := func(a, b float64) {
		if math.Abs(b-a) <= paramAccuracy(a) {
			return
		}
		if keep(c.Point(conic.MidParam(a, b))) {
			out = append(out, c.SubCurve(a, b))
		}
	}

	if closed {
		for i := range len(ts) - 1 {
			piece(ts[i], ts[i+1])
		}
		first, last := ts[0], ts[len(ts)-1]
		mid := (last + first + period) / 2
		if mid > t1 {
			mid -= period
		}
		if first == t0 {
			piece(last, t1)
		} else if keep(c.Point(mid)) {
			out = append(out, c.SubCurve(last, first))
		}
		return out
	}

	bounds := make([]float64, 0, len(ts)+2)
	if ts[0] > t0+paramAccuracy(t0) {
		bounds = append(bounds, t0)
	}
	bounds = append(bounds, ts...)
	if ts[len(ts)-1] < t1-paramAccuracy(t1) {
		bounds = append(bounds, t1)
	}
	for i := range len(bounds) - 1 {
		piece(bounds[i], bounds[i+1])
	}
	return out
}

func paramAccuracy(t float64) float64 {
	if math.IsInf(t, 0) {
		return 0
	}
	return conic.Accuracy * max(1, math.Abs(t))
}
