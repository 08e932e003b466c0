package conic

import (
	"fmt"
	"math"
)

// Quadratic holds the coefficients of the implicit conic equation
//
//	A·x² + B·x·y + C·y² + D·x + E·y + F = 0
type Quadratic struct {
	A, B, C, D, E, F float64
}

func (q Quadratic) String() string {
	return fmt.Sprintf("%g·x² + %g·xy + %g·y² + %g·x + %g·y + %g", q.A, q.B, q.C, q.D, q.E, q.F)
}

// Eval evaluates the left-hand side of the equation at pt.
func (q Quadratic) Eval(pt Point) float64 {
	x, y := pt.X, pt.Y
	return q.A*x*x + q.B*x*y + q.C*y*y + q.D*x + q.E*y + q.F
}

// Discriminant returns B² − 4AC. It is negative for ellipses, zero for
// parabolas and positive for hyperbolas.
func (q Quadratic) Discriminant() float64 {
	return q.B*q.B - 4*q.A*q.C
}

// scale returns the largest coefficient magnitude.
func (q Quadratic) scale() float64 {
	return max(math.Abs(q.A), math.Abs(q.B), math.Abs(q.C),
		math.Abs(q.D), math.Abs(q.E), math.Abs(q.F))
}

// Normalize divides all coefficients by the one of largest magnitude. It
// leaves the zero quadratic unchanged.
func (q Quadratic) Normalize() Quadratic {
	s := q.scale()
	if s == 0 {
		return q
	}
	return Quadratic{q.A / s, q.B / s, q.C / s, q.D / s, q.E / s, q.F / s}
}

// Center returns the center of symmetry of the conic. Parabolas and
// degenerate conics have none and return ErrDegenerate.
func (q Quadratic) Center() (Point, error) {
	// Gradient is zero: 2A·x + B·y + D = 0 and B·x + 2C·y + E = 0.
	det := 4*q.A*q.C - q.B*q.B
	if math.Abs(det) < Accuracy*max(1, q.A*q.A, q.C*q.C) {
		return Point{}, fmt.Errorf("center of %s: %w", q, ErrDegenerate)
	}
	return Point{
		X: (q.B*q.E - 2*q.C*q.D) / det,
		Y: (q.B*q.D - 2*q.A*q.E) / det,
	}, nil
}

// Centered returns the equation of the conic translated so that its center
// is at the origin. Only A, B, C and F are meaningful in the result.
func (q Quadratic) Centered() (Quadratic, Point, error) {
	c, err := q.Center()
	if err != nil {
		return Quadratic{}, Point{}, err
	}
	f := q.F + (q.D*c.X+q.E*c.Y)/2
	return Quadratic{A: q.A, B: q.B, C: q.C, F: f}, c, nil
}

// Transform returns the equation of the image of the conic under aff. It
// returns ErrDegenerate for non-invertible transforms.
func (q Quadratic) Transform(aff Affine) (Quadratic, error) {
	if math.Abs(aff.Determinant()) < Accuracy {
		return Quadratic{}, fmt.Errorf("transforming conic by singular %v: %w", aff, ErrDegenerate)
	}
	inv := aff.Invert()
	// Points p' of the image satisfy q(inv·p') = 0. Substitute
	// x = a·x' + c·y' + e and y = b·x' + d·y' + f.
	a, b, c, d, e, f := inv.N0, inv.N1, inv.N2, inv.N3, inv.N4, inv.N5
	A, B, C, D, E, F := q.A, q.B, q.C, q.D, q.E, q.F
	return Quadratic{
		A: A*a*a + B*a*b + C*b*b,
		B: 2*A*a*c + B*(a*d+b*c) + 2*C*b*d,
		C: A*c*c + B*c*d + C*d*d,
		D: 2*A*a*e + B*(a*f+b*e) + 2*C*b*f + D*a + E*b,
		E: 2*A*c*e + B*(c*f+d*e) + 2*C*d*f + D*c + E*d,
		F: A*e*e + B*e*f + C*f*f + D*e + E*f + F,
	}, nil
}

// TransformCentered applies the linear part of aff to a centered conic
// given by A, B and C; the constant term is unchanged by linear maps.
func TransformCentered(q Quadratic, aff Affine) (Quadratic, error) {
	out, err := Quadratic{A: q.A, B: q.B, C: q.C, F: q.F}.Transform(aff.Linear())
	if err != nil {
		return Quadratic{}, err
	}
	return Quadratic{A: out.A, B: out.B, C: out.C, F: out.F}, nil
}

// principalAngle returns the rotation that diagonalizes the quadratic part
// of q, in [0, π).
func principalAngle(q Quadratic) float64 {
	scale := max(math.Abs(q.A), math.Abs(q.B), math.Abs(q.C))
	switch {
	case math.Abs(q.B) <= Accuracy*scale:
		return 0
	case math.Abs(q.A-q.C) <= Accuracy*scale:
		return math.Pi / 4
	}
	th := math.Atan2(q.B, q.A-q.C) / 2
	if q.B < 0 {
		th += math.Pi
	}
	return math.Mod(th, math.Pi)
}

// rotateQuadratic returns the diagonal coefficients of the quadratic part of
// q in a frame rotated by th.
func rotateQuadratic(q Quadratic, th float64) (a2, c2 float64) {
	sin, cos := math.Sincos(th)
	a2 = q.A*cos*cos + q.B*sin*cos + q.C*sin*sin
	c2 = q.A*sin*sin - q.B*sin*cos + q.C*cos*cos
	return a2, c2
}

// ReduceCentered returns the ellipse centered at the origin described by the
// centered equation A·x² + B·x·y + C·y² + F = 0.
//
// The axis associated with the smaller diagonal coefficient, that is the
// longer axis, is reported first as R1, and Theta is its angle in [0, π).
// The ellipse is direct. It returns ErrDegenerate if the equation describes
// no real ellipse.
func ReduceCentered(q Quadratic) (Ellipse, error) {
	th := principalAngle(q)
	a2, c2 := rotateQuadratic(q, th)
	f := -q.F
	if a2 < 0 && c2 < 0 {
		a2, c2, f = -a2, -c2, -f
	}
	if !(a2 > 0 && c2 > 0 && f > 0) {
		return Ellipse{}, fmt.Errorf("reducing %s to an ellipse: %w", q, ErrDegenerate)
	}
	r1 := math.Sqrt(f / a2)
	r2 := math.Sqrt(f / c2)
	if a2 > c2 {
		r1, r2 = r2, r1
		th += math.Pi / 2
	}
	return Ellipse{R1: r1, R2: r2, Theta: math.Mod(th, math.Pi)}, nil
}

// ReduceCenteredHyperbola returns the hyperbola centered at the origin
// described by the centered equation A·x² + B·x·y + C·y² + F = 0. Theta is
// the direction of the transverse axis. It returns ErrDegenerate for pairs
// of lines and for equations that aren't hyperbolas.
func ReduceCenteredHyperbola(q Quadratic) (Hyperbola, error) {
	th := principalAngle(q)
	a2, c2 := rotateQuadratic(q, th)
	if a2*c2 >= 0 || math.Abs(q.F) < Accuracy*max(1, math.Abs(a2), math.Abs(c2)) {
		return Hyperbola{}, fmt.Errorf("reducing %s to a hyperbola: %w", q, ErrDegenerate)
	}
	// a2·x² + c2·y² = −F
	sx := -q.F / a2
	sy := -q.F / c2
	if sx > 0 {
		return Hyperbola{A: math.Sqrt(sx), B: math.Sqrt(-sy), Theta: th}, nil
	}
	return Hyperbola{A: math.Sqrt(sy), B: math.Sqrt(-sx), Theta: th + math.Pi/2}, nil
}

// ReduceConic returns the curve described by q: a Circle, an Ellipse, a
// Hyperbola or a Parabola, each direct. Empty, single-point and
// line-pair conics return ErrDegenerate.
func ReduceConic(q Quadratic) (Curve, error) {
	q = q.Normalize()
	if max(math.Abs(q.A), math.Abs(q.B), math.Abs(q.C)) < Accuracy {
		return nil, fmt.Errorf("reducing %s: not a conic: %w", q, ErrDegenerate)
	}
	disc := q.Discriminant()
	switch {
	case disc < -Accuracy:
		cq, center, err := q.Centered()
		if err != nil {
			return nil, err
		}
		e, err := ReduceCentered(cq)
		if err != nil {
			return nil, err
		}
		e.Center = center
		if e.IsCircle() {
			return Circle{Center: center, Radius: e.R1}, nil
		}
		return e, nil
	case disc > Accuracy:
		cq, center, err := q.Centered()
		if err != nil {
			return nil, err
		}
		h, err := ReduceCenteredHyperbola(cq)
		if err != nil {
			return nil, err
		}
		h.Center = center
		return h, nil
	default:
		return reduceParabola(q)
	}
}

func reduceParabola(q Quadratic) (Parabola, error) {
	th := principalAngle(q)
	a2, c2 := rotateQuadratic(q, th)
	sin, cos := math.Sincos(th)
	// Linear terms in the rotated frame, where x = cos·x' − sin·y' and
	// y = sin·x' + cos·y'.
	d2 := q.D*cos + q.E*sin
	e2 := -q.D*sin + q.E*cos
	rot := Rotate(th)

	if math.Abs(c2) < math.Abs(a2) {
		// a2·x² + d2·x + e2·y + F = 0
		if math.Abs(e2) < Accuracy {
			return Parabola{}, fmt.Errorf("reducing %s to a parabola: %w", q, ErrDegenerate)
		}
		xv := -d2 / (2 * a2)
		yv := -(a2*xv*xv + d2*xv + q.F) / e2
		return Parabola{
			Vertex: Point{xv, yv}.Transform(rot),
			A:      -a2 / e2,
			Theta:  th,
		}, nil
	}
	// c2·y² + d2·x + e2·y + F = 0
	if math.Abs(d2) < Accuracy {
		return Parabola{}, fmt.Errorf("reducing %s to a parabola: %w", q, ErrDegenerate)
	}
	yv := -e2 / (2 * c2)
	xv := -(c2*yv*yv + e2*yv + q.F) / d2
	return Parabola{
		Vertex: Point{xv, yv}.Transform(rot),
		A:      -c2 / d2,
		Theta:  th - math.Pi/2,
	}, nil
}
