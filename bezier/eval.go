package bezier

import "github.com/npillmayer/bezpline"

// Cubic calculates the interpolated value of a cubic Bezier curve from p0
// to p1 with control points cpA and cpB, at position s. At s = 0 Cubic
// returns p0, at s = 1 it returns p1.
//
// Cubic does not check s; outside [0…1] the curve is extrapolated.
// Spline.Evaluate checks its arguments before calling it.
func Cubic(p0, cpA, cpB, p1 bezpline.Point, s float64) bezpline.Point {
	oneMinusS := 1 - s
	A := oneMinusS * oneMinusS * oneMinusS
	B := oneMinusS * oneMinusS * s * 3
	C := oneMinusS * s * s * 3
	D := s * s * s
	return bezpline.P(
		p0.X()*A+cpA.X()*B+cpB.X()*C+p1.X()*D,
		p0.Y()*A+cpA.Y()*B+cpB.Y()*C+p1.Y()*D,
	)
}

// Quadratic calculates the interpolated value of a quadratic Bezier curve
// from p0 to p1 with control point cp, at position s. Like Cubic, it does
// not check s.
func Quadratic(p0, cp, p1 bezpline.Point, s float64) bezpline.Point {
	oneMinusS := 1 - s
	A := oneMinusS * oneMinusS
	B := 2 * oneMinusS * s
	C := s * s
	return bezpline.P(
		p0.X()*A+cp.X()*B+p1.X()*C,
		p0.Y()*A+cp.Y()*B+p1.Y()*C,
	)
}

// Elevate returns the cubic control points describing the same curve as the
// quadratic Bezier curve (p0, cp, p1).
func Elevate(p0, cp, p1 bezpline.Point) (bezpline.Point, bezpline.Point) {
	c1 := p0 + (cp - p0).Scaled(2.0/3.0)
	c2 := p1 + (cp - p1).Scaled(2.0/3.0)
	return c1, c2
}
