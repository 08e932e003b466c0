package conic

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// The idea is that (A * B) * v == A * (B * v).
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// FlipY is a transform that is flipped on the y-axis. Useful for converting
// between y-up and y-down spaces.
var FlipY = Affine{1, 0, 0, -1, 0, 0}

// FlipX is a transform that is flipped on the x-axis.
var FlipX = Affine{-1, 0, 0, 1, 0, 0}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate creates an affine transform representing a counter-clockwise
// rotation (in a y-up space) by th radians.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// RotateAbout creates an affine transform representing a rotation of th radians
// about center.
func RotateAbout(th float64, center Point) Affine {
	c := Vec2(center)
	return Translate(c).Mul(Rotate(th)).Mul(Translate(c.Negate()))
}

// Skew creates an affine transformation representing a skew.
//
// The x and y parameters represent skew factors for the horizontal and vertical
// directions, respectively.
func Skew(x, y float64) Affine {
	return Affine{1, y, x, 1, 0, 0}
}

// Mul returns the composition aff ∘ o, which applies o first.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// Then returns the transform that applies aff, then o.
//
// Equivalent to "o * aff"
func (aff Affine) Then(o Affine) Affine {
	return o.Mul(aff)
}

// ThenTranslate creates aff followed by a translation of v.
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// Determinant computes the determinant of the linear part.
func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// IsDirect reports whether the transform preserves orientation, that is,
// whether its determinant is positive.
func (aff Affine) IsDirect() bool {
	return aff.Determinant() > 0
}

// IsSimilarity reports whether the transform preserves angles and scales
// uniformly, possibly with a reflection.
func (aff Affine) IsSimilarity() bool {
	a := Vec2{aff.N0, aff.N1}
	b := Vec2{aff.N2, aff.N3}
	return almostEqual(a.Hypot2(), b.Hypot2(), scaledAccuracy(a.Hypot2())) &&
		almostZero(a.Dot(b)/max(1, a.Hypot2()))
}

// Invert computes the inverse transform.
//
// Produces NaN values when the determinant is zero.
func (aff Affine) Invert() Affine {
	invDet := 1 / aff.Determinant()
	return Affine{
		+invDet * aff.N3,
		-invDet * aff.N1,
		-invDet * aff.N2,
		+invDet * aff.N0,
		+invDet * (aff.N2*aff.N5 - aff.N3*aff.N4),
		+invDet * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}

// Linear returns the transform with its translation removed.
func (aff Affine) Linear() Affine {
	aff.N4 = 0
	aff.N5 = 0
	return aff
}

// Aff3 returns the transform in the row-major layout used by
// golang.org/x/image/draw.
func (aff Affine) Aff3() f64.Aff3 {
	return f64.Aff3{
		aff.N0, aff.N2, aff.N4,
		aff.N1, aff.N3, aff.N5,
	}
}

// AffineFromAff3 is the inverse of [Affine.Aff3].
func AffineFromAff3(m f64.Aff3) Affine {
	return Affine{m[0], m[3], m[1], m[4], m[2], m[5]}
}
