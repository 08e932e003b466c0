package conic_test

import (
	"fmt"
	"math"

	"honnef.co/go/conic"
)

func ExampleCircumCircle() {
	c, err := conic.CircumCircle(conic.Pt(3, 2), conic.Pt(2, 3), conic.Pt(1, 2))
	if err != nil {
		panic(err)
	}
	fmt.Printf("center (%.3f, %.3f), radius %.3f\n", c.Center.X, c.Center.Y, c.Radius)

	// Output:
	// center (2.000, 2.000), radius 1.000
}

func ExampleIntersectLine() {
	c := conic.Circle{Center: conic.Pt(2, 2), Radius: 1}
	l, err := conic.NewLine(conic.Pt(5, 2), conic.Vec(1, 0))
	if err != nil {
		panic(err)
	}
	// The points are ordered along the circle, starting at angle 0.
	for _, pt := range conic.IntersectLine(c, l) {
		fmt.Printf("(%.3f, %.3f)\n", pt.X, pt.Y)
	}

	// Output:
	// (3.000, 2.000)
	// (1.000, 2.000)
}

func ExampleInvert() {
	inv, err := conic.NewCircleInversion(conic.Pt(0, 0), 2)
	if err != nil {
		panic(err)
	}
	l, err := conic.NewLine(conic.Pt(0, 1), conic.Vec(1, 0))
	if err != nil {
		panic(err)
	}
	img, err := conic.Invert(l, inv)
	if err != nil {
		panic(err)
	}
	c := img.(conic.Circle)
	fmt.Printf("%T through the center, top at y = %.3f\n", c, c.Center.Y+c.Radius)

	// Output:
	// conic.Circle through the center, top at y = 4.000
}

func ExampleTransformCurve() {
	c := conic.Circle{Center: conic.Pt(1, 1), Radius: 1}
	img, err := conic.TransformCurve(c, conic.Scale(3, 1))
	if err != nil {
		panic(err)
	}
	e := img.(conic.Ellipse)
	fmt.Printf("%T with radii %.3f and %.3f, rotated by %.3f\n", e, e.R1, e.R2, math.Abs(e.Theta))

	// Output:
	// conic.Ellipse with radii 3.000 and 1.000, rotated by 0.000
}
