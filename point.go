package conic

import (
	"fmt"
	"math"
)

type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub computes pt−o.
// To subtract a vector from pt, use Translate and negate the vector.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec2(pt).Lerp(Vec2(o), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// AlmostEqual reports whether pt and o are within [Accuracy] of each other on
// both axes.
func (pt Point) AlmostEqual(o Point) bool {
	return almostEqual(pt.X, o.X, Accuracy) && almostEqual(pt.Y, o.Y, Accuracy)
}

// Rotate rotates pt by th radians around center.
func (pt Point) Rotate(th float64, center Point) Point {
	return center.Translate(pt.Sub(center).Rotate(th))
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// Centroid returns the arithmetic mean of the points. It returns the zero
// point for an empty slice.
func Centroid(pts ...Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	var x, y float64
	for _, p := range pts {
		x += p.X
		y += p.Y
	}
	n := float64(len(pts))
	return Point{X: x / n, Y: y / n}
}

// Colinear reports whether the three points lie on one straight line, within
// [Accuracy].
func Colinear(p1, p2, p3 Point) bool {
	return math.Abs(p2.Sub(p1).Cross(p3.Sub(p1))) < Accuracy
}

// CCW returns the orientation of the triangle (p1, p2, p3): +1 for a
// counter-clockwise turn, -1 for a clockwise turn and 0 for colinear points.
func CCW(p1, p2, p3 Point) int {
	c := p2.Sub(p1).Cross(p3.Sub(p1))
	switch {
	case c > Accuracy:
		return 1
	case c < -Accuracy:
		return -1
	default:
		return 0
	}
}
