/*
Package bezpline implements 2D points and affine transformations as the
base layer for smooth Bezier splines through a sequence of knots.

Sub-package bezier computes the splines, sub-package polygon flattens them
into polygons.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package bezpline

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/bezpline/numutil"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bezpline'
func tracer() tracing.Trace {
	return tracing.Select("bezpline")
}

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
const Deg2Rad float64 = math.Pi / 180

// Epsilon is the tolerance of AlmostEqual, per axis.
const Epsilon float64 = 0.001

// === Point Data Type =======================================================

// Point is a 2D point. The underlying complex type lets clients
// write p + q and p - q directly.
type Point complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// P is a quick notation for contructing a point from floats.
func P(x, y float64) Point {
	return Point(complex(x, y))
}

// C2P returns a Point from a complex number.
func C2P(c complex128) Point {
	return Point(c)
}

// Pretty Stringer for points.
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X(), p.Y())
}

// C returns a Point as a complex number.
func (p Point) C() complex128 {
	return complex128(p)
}

// F is a quick notation for getting float values from a point.
func (p Point) F() (float64, float64) {
	return p.X(), p.Y()
}

// X is the x-part of a point.
func (p Point) X() float64 {
	return real(p)
}

// Y is the y-part of a point.
func (p Point) Y() float64 {
	return imag(p)
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return p + q
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return p - q
}

// Neg returns -p.
func (p Point) Neg() Point {
	return -p
}

// Scaled returns a new point scaled by factor a.
func (p Point) Scaled(a float64) Point {
	return P(p.X()*a, p.Y()*a)
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X()*q.X() + p.Y()*q.Y()
}

// Cross returns the z-component of the cross product p × q.
// It is 0 for collinear vectors.
func (p Point) Cross(q Point) float64 {
	return p.X()*q.Y() - p.Y()*q.X()
}

// Norm2 returns the squared norm of p.
func (p Point) Norm2() float64 {
	return numutil.Square(p.X()) + numutil.Square(p.Y())
}

// Norm returns the norm of p.
func (p Point) Norm() float64 {
	return math.Hypot(p.X(), p.Y())
}

// Distance2 returns the squared distance between p and q.
func (p Point) Distance2(q Point) float64 {
	return (p - q).Norm2()
}

// Distance returns the euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return (p - q).Norm()
}

// Equal compares two points exactly, as == does.
func (p Point) Equal(q Point) bool {
	return p == q
}

// AlmostEqual is a predicate: do p and q differ less than Epsilon on
// both axes?
func (p Point) AlmostEqual(q Point) bool {
	return math.Abs(p.X()-q.X()) < Epsilon && math.Abs(p.Y()-q.Y()) < Epsilon
}

// Hash combines the bit patterns of both coordinates. Points which are ==
// have the same hash.
func (p Point) Hash() uint64 {
	return floatbits(p.X()) ^ floatbits(p.Y())
}

// +0 and -0 compare equal and must hash equal.
func floatbits(f float64) uint64 {
	if f == 0 {
		f = 0
	}
	return math.Float64bits(f)
}

// IsFinite is a predicate: are both coordinates neither NaN nor infinite?
func (p Point) IsFinite() bool {
	return !cmplx.IsNaN(p.C()) && !cmplx.IsInf(p.C())
}

// IsOrigin is a predicate: is this point origin?
func (p Point) IsOrigin() bool {
	return p == Origin
}

// Centroid returns the center of mass of a set of points, all of equal
// weight. For an empty set it traces an error and returns a NaN point.
func Centroid(pts ...Point) Point {
	if len(pts) == 0 {
		tracer().Errorf("centroid of empty point set")
	}
	return P(numutil.CenterOfMass(Flatten(pts)))
}

// Flatten returns points as interleaved coordinates x0,y0,x1,y1,...
func Flatten(pts []Point) []float64 {
	coords := make([]float64, 0, 2*len(pts))
	for _, pt := range pts {
		coords = append(coords, pt.X(), pt.Y())
	}
	return coords
}
