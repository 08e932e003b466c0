package clip

import (
	"fmt"

	"golang.org/x/image/vector"

	"honnef.co/go/conic"
)

// ToRasterizer adds the closed curves to ras as polygons, each curve
// flattened with n points per curved piece and mapped to pixel space by
// aff. Regions with holes are filled correctly as long as holes turn in the
// opposite direction of their outer boundary, as produced by [Boundary].
//
// It returns an error wrapping [conic.ErrUnbounded] if any curve is
// unbounded.
func ToRasterizer(ras *vector.Rasterizer, curves []conic.Curve, aff conic.Affine, n int) error {
	for _, c := range curves {
		if !c.IsBounded() {
			return fmt.Errorf("rasterizing %T: %w", c, conic.ErrUnbounded)
		}
		pts := conic.Points(c, n)
		if ct, ok := c.(conic.Contour); ok {
			// Keep the corners of straight pieces.
			pts = ct.Vertices(n)
		}
		first := true
		for pt := range pts {
			pt = pt.Transform(aff)
			if first {
				ras.MoveTo(float32(pt.X), float32(pt.Y))
				first = false
			} else {
				ras.LineTo(float32(pt.X), float32(pt.Y))
			}
		}
		ras.ClosePath()
	}
	return nil
}

// Contours returns the contours as a slice of curves, for use with
// [ToRasterizer].
func Contours(cs []conic.Contour) []conic.Curve {
	out := make([]conic.Curve, len(cs))
	for i, c := range cs {
		out[i] = c
	}
	return out
}
