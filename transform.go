package conic

import (
	"fmt"
	"iter"
	"math"
)

// TransformCurve returns the image of c under aff, as a curve of the same
// family. Circles become ellipses unless aff is a similarity. It returns
// ErrDegenerate for transforms that collapse the curve.
func TransformCurve(c Curve, aff Affine) (Curve, error) {
	if math.Abs(aff.Determinant()) < Accuracy {
		return nil, fmt.Errorf("transforming %T by %v: %w", c, aff, ErrDegenerate)
	}
	switch c := c.(type) {
	case Line:
		return c.Transform(aff), nil
	case Circle:
		e, err := c.Transform(aff)
		if err != nil {
			return nil, err
		}
		if circle, ok := e.AsCircle(); ok {
			return circle, nil
		}
		return e, nil
	case CircleArc:
		ea, err := EllipseArc{Ellipse: c.Circle.AsEllipse(), Start: c.Start, Extent: c.Extent}.Transform(aff)
		if err != nil {
			return nil, err
		}
		if circle, ok := ea.Ellipse.AsCircle(); ok {
			return circleArcFromEllipseArc(ea, circle), nil
		}
		return ea, nil
	case Ellipse:
		return c.Transform(aff)
	case EllipseArc:
		return c.Transform(aff)
	case Hyperbola:
		return c.Transform(aff)
	case HyperbolaBranch:
		return c.Transform(aff)
	case HyperbolaBranchArc:
		return c.Transform(aff)
	case Parabola:
		return c.Transform(aff)
	case ParabolaArc:
		return c.Transform(aff)
	case Contour:
		out := make([]Curve, 0, len(c.curves))
		for _, e := range c.curves {
			img, err := TransformCurve(e, aff)
			if err != nil {
				return nil, err
			}
			out = append(out, img)
		}
		return NewContour(out...), nil
	case CurveSet:
		out := make(CurveSet, 0, len(c))
		for _, m := range c {
			img, err := TransformCurve(m, aff)
			if err != nil {
				return nil, err
			}
			out = append(out, img)
		}
		return out, nil
	default:
		panic(fmt.Sprintf("unhandled curve type %T", c))
	}
}

// circleArcFromEllipseArc converts an arc of an ellipse with equal radii into
// a circle arc with the same end points.
func circleArcFromEllipseArc(ea EllipseArc, circle Circle) CircleArc {
	circle.Indirect = false
	start := ea.FirstPoint().Sub(circle.Center).Angle()
	return CircleArc{Circle: circle, Start: start, Extent: ea.Extent}
}

// Transform applies aff to every curve of seq, stopping at the first error.
// Transformed curves are yielded with a nil error; a failure is yielded once
// with a nil curve.
func Transform(seq iter.Seq[Curve], aff Affine) iter.Seq2[Curve, error] {
	return func(yield func(Curve, error) bool) {
		for c := range seq {
			img, err := TransformCurve(c, aff)
			if !yield(img, err) || err != nil {
				return
			}
		}
	}
}
