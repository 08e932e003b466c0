// Package conic provides exact (to floating point tolerance) algebra over the
// planar conics: circles, ellipses, parabolas, and hyperbolas, as well as
// their arcs. It was designed to serve as the geometric kernel of drawing
// and construction software, where shapes have to be intersected,
// transformed, and clipped without first being flattened to polylines.
//
// # Curves
//
// Every curve implements [Curve], a sealed interface describing a
// parametric curve. Curves map parameters in [Curve.Domain] to points, can
// find the parameter of a point lying on them ([Curve.Position]) or the
// parameter of the nearest point ([Curve.Project]), and can be split
// ([Curve.SubCurve]) and reversed ([Curve.Reverse]). Unbounded curves, such
// as lines, parabolas, and hyperbola branches, have infinite domains and
// bounding boxes with infinite sides.
//
// This package includes the following curves:
//   - [Line], which also describes rays and segments
//   - [Circle] and [CircleArc]
//   - [Ellipse] and [EllipseArc]
//   - [Hyperbola], [HyperbolaBranch] and [HyperbolaBranchArc]
//   - [Parabola] and [ParabolaArc]
//   - [CurveSet], an ordered collection of curves
//   - [Contour], a chain of curves joined end to end
//
// Most curves additionally implement [Sided], which classifies points as
// lying on the left (inside) or the right (outside) of the curve. Closed
// curves that turn counter-clockwise are "direct" and contain their
// interior; clockwise curves contain their exterior.
//
// Operations whose result depends on the kind of curve are free functions:
// [LinePositions] and [IntersectLine] intersect curves with lines,
// [TransformCurve] applies an [Affine] transformation, and [Invert] applies a
// [CircleInversion].
//
// # Conics as quadratic forms
//
// The implicit form A·x² + B·x·y + C·y² + D·x + E·y + F = 0 of a conic is
// represented by [Quadratic]. Affine transformations act on these
// coefficients, and [ReduceConic] recovers the geometric parameters of the
// resulting conic. [ReduceCentered] and [ReduceCenteredHyperbola] do the
// same for conics centered on the origin.
//
// # Tolerance
//
// All equality, containment, and degeneracy decisions use the fixed absolute
// tolerance [Accuracy], scaled by the magnitude of the values being compared
// where appropriate. Tangential configurations are never reported as
// ambiguous; they resolve to a definite number of intersections.
//
// # Errors and logging
//
// Constructors validate their input and return errors wrapping one of the
// sentinel errors, such as [ErrDegenerate]. Numerical routines that can fail
// to converge report [ErrNonConvergence]. Diagnostics are written to the
// [log/slog] logger configured with [SetLogger], which discards everything
// by default.
//
// # Clipping
//
// The clip subpackage clips curves against a [Box] and reconstructs closed
// boundaries of clipped regions.
//
// # References
//
// The following resources were used in the implementation of this package:
//   - [Distance from a point to an ellipse]
//   - [How to solve a cubic equation, revisited]
//   - [Inversive geometry]
//   - [Matrix representation of conic sections]
//
// [Distance from a point to an ellipse]: https://www.geometrictools.com/Documentation/DistancePointEllipseEllipsoid.pdf
// [How to solve a cubic equation, revisited]: https://momentsingraphics.de/CubicRoots.html
// [Inversive geometry]: https://en.wikipedia.org/wiki/Inversive_geometry
// [Matrix representation of conic sections]: https://en.wikipedia.org/wiki/Matrix_representation_of_conic_sections
package conic
