package clip

import (
	"fmt"
	"math"

	"honnef.co/go/conic"
)

// Options configures [Boundary]. The zero value is valid.
type Options struct {
	// Smooth selects [SmoothCurve] instead of [ContinuousCurve] for clipping
	// the boundaries.
	Smooth bool
	// Tolerance is the tolerance for comparing positions along the boundary
	// of the box. It defaults to [conic.Accuracy].
	Tolerance float64
}

func (opts *Options) tolerance() float64 {
	if opts == nil || opts.Tolerance <= 0 {
		return conic.Accuracy
	}
	return opts.Tolerance
}

func (opts *Options) clip(c conic.Curve, box conic.Box) conic.CurveSet {
	if opts != nil && opts.Smooth {
		return SmoothCurve(c, box)
	}
	return Curve(c, box)
}

// fragment is a piece of a clipped boundary. Open fragments start and end on
// the boundary of the box; start and end are their positions along it.
// Closed fragments have NaN positions.
type fragment struct {
	curve      conic.Curve
	start, end float64
}

func (f fragment) closed() bool { return math.IsNaN(f.start) }

// Boundary clips the region described by boundaries against box and returns
// the closed boundaries of their intersection. The inside of each boundary
// is on its left, as reported by [conic.Sided].
//
// Pieces of boundaries that cross the box are reconnected along the sides of
// the box, turning counter-clockwise around it. Pieces that only touch a side
// stay joined. When no boundary crosses the box, the outline of the box is
// part of the result if the region contains the box. Boundary returns
// [conic.ErrUnbounded] for unbounded boxes. opts may be nil.
func Boundary(boundaries []conic.Curve, box conic.Box, opts *Options) ([]conic.Contour, error) {
	if !box.IsBounded() {
		return nil, fmt.Errorf("clipping boundaries against %s: %w", box, conic.ErrUnbounded)
	}
	if box.IsEmpty() {
		return nil, nil
	}
	log := conic.Logger()

	tol := opts.tolerance()
	var frags []fragment
	open := 0
	for _, b := range boundaries {
		for _, c := range clipJoined(b, box, opts, tol) {
			if c.IsClosed() {
				frags = append(frags, fragment{c, math.NaN(), math.NaN()})
				continue
			}
			frags = append(frags, fragment{
				curve: c,
				start: box.BoundaryPosition(c.FirstPoint()),
				end:   box.BoundaryPosition(c.LastPoint()),
			})
			open++
		}
	}
	log.Debug("clipped boundaries", "boundaries", len(boundaries), "fragments", len(frags), "open", open)

	var out []conic.Contour
	if open == 0 && contains(boundaries, box.BoundaryPoint(0)) {
		outline, err := box.Boundary()
		if err != nil {
			return nil, err
		}
		out = append(out, outline)
	}

	consumed := make([]bool, len(frags))
	starts := make([]float64, len(frags))
	for i := range frags {
		if consumed[i] {
			continue
		}
		first := frags[i]
		consumed[i] = true
		if first.closed() {
			out = append(out, conic.NewContour(first.curve))
			continue
		}

		pieces := []conic.Curve{first.curve}
		cur := first
		for {
			// Candidates are the unconsumed open fragments, and the first
			// fragment of the chain, which closes it.
			for j, f := range frags {
				if j == i || (!consumed[j] && !f.closed()) {
					starts[j] = f.start
				} else {
					starts[j] = math.NaN()
				}
			}
			j := findNext(starts, cur.end, tol)
			if j < 0 {
				panic(fmt.Sprintf("no successor for boundary fragment ending at position %g", cur.end))
			}
			next := frags[j]
			pieces = append(pieces, connect(box, cur.curve.LastPoint(), cur.end, next.curve.FirstPoint(), next.start, tol)...)
			if j == i {
				break
			}
			consumed[j] = true
			pieces = append(pieces, next.curve)
			cur = next
		}
		log.Debug("stitched boundary", "pieces", len(pieces))
		out = append(out, conic.NewContour(pieces...))
	}
	return out, nil
}

// clipJoined clips b against box and joins consecutive pieces of each of
// its members that meet at a point. They meet where the member touches a
// side of the box without crossing it; stitching must see them as one
// fragment, or its two halves would start and end at the same position.
func clipJoined(b conic.Curve, box conic.Box, opts *Options, tol float64) []conic.Curve {
	var members []conic.Curve
	switch b := b.(type) {
	case conic.Hyperbola:
		members = b.Branches()
	case conic.CurveSet:
		members = b
	default:
		members = []conic.Curve{b}
	}
	var out []conic.Curve
	for _, m := range members {
		var groups [][]conic.Curve
		for _, c := range opts.clip(m, box) {
			if n := len(groups); n > 0 && meets(groups[n-1][len(groups[n-1])-1], c, tol) {
				groups[n-1] = append(groups[n-1], c)
			} else {
				groups = append(groups, []conic.Curve{c})
			}
		}
		// Pieces of a closed member are in cyclic order.
		if n := len(groups); m.IsClosed() && n > 1 {
			last := groups[n-1]
			if meets(last[len(last)-1], groups[0][0], tol) {
				groups[0] = append(last, groups[0]...)
				groups = groups[:n-1]
			}
		}
		for _, g := range groups {
			if len(g) == 1 {
				out = append(out, g[0])
			} else {
				out = append(out, conic.NewContour(g...))
			}
		}
	}
	return out
}

func meets(a, b conic.Curve, tol float64) bool {
	if a.IsClosed() || b.IsClosed() {
		return false
	}
	p, q := a.LastPoint(), b.FirstPoint()
	return !p.IsInf() && p.Distance(q) <= tol*max(1, math.Abs(p.X), math.Abs(p.Y))
}

// connect returns the straight segments leading from p, at position a on the
// boundary of box, to q at position b, following the boundary
// counter-clockwise through the corners in between.
func connect(box conic.Box, p conic.Point, a float64, q conic.Point, b float64, tol float64) []conic.Curve {
	if b < a-tol {
		b += 4
	}
	corners := box.Corners()
	var out []conic.Curve
	from := p
	add := func(to conic.Point) {
		if from.Distance(to) <= accuracy(to) {
			return
		}
		out = append(out, conic.Line{P0: from, Dir: to.Sub(from), T0: 0, T1: 1})
		from = to
	}
	for k := math.Floor(a) + 1; k < b-tol; k++ {
		add(corners[int(k)%4])
	}
	add(q)
	return out
}

// contains reports whether pt lies inside the region described by
// boundaries, using the sidedness of the boundary closest to it.
func contains(boundaries []conic.Curve, pt conic.Point) bool {
	inside := false
	best := math.Inf(1)
	for _, b := range boundaries {
		s, ok := b.(conic.Sided)
		if !ok {
			continue
		}
		if d := math.Abs(s.SignedDistance(pt)); d < best {
			best = d
			inside = s.IsInside(pt)
		}
	}
	return inside
}

// FindNextCurveIndex returns the index of the smallest of positions that is
// greater than pos by more than [conic.Accuracy]. If there is no such
// position, it returns the index of the smallest position, wrapping around.
// NaN positions are ignored. It returns -1 if all positions are NaN.
func FindNextCurveIndex(positions []float64, pos float64) int {
	return findNext(positions, pos, conic.Accuracy)
}

func findNext(positions []float64, pos, tol float64) int {
	next, smallest := -1, -1
	for i, p := range positions {
		if math.IsNaN(p) {
			continue
		}
		if smallest < 0 || p < positions[smallest] {
			smallest = i
		}
		if p > pos+tol && (next < 0 || p < positions[next]) {
			next = i
		}
	}
	if next < 0 {
		return smallest
	}
	return next
}
