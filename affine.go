package bezpline

import (
	"fmt"
	"math"
)

// === Affine Transformations ================================================

// AT is an affine transform, a matrix type used for transforming points.
type AT [9]float64 // a 3x3 matrix, flattened by rows

func (m *AT) set(row, col int, value float64) {
	m[row*3+col] = value
}

func (m *AT) row(row int) [3]float64 {
	return [3]float64{m[row*3], m[row*3+1], m[row*3+2]}
}

func (m *AT) col(col int) [3]float64 {
	return [3]float64{m[col], m[3+col], m[6+col]}
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	var m AT
	m.set(0, 0, 1.0)
	m.set(1, 1, 1.0)
	m.set(2, 2, 1.0)
	return m
}

// Translation transform. Translate a point by (dx,dy).
func Translation(p Point) AT {
	m := Identity()
	m.set(0, 2, p.X())
	m.set(1, 2, p.Y())
	return m
}

// Scaling transform. Scale a point by sx in x-direction and sy in
// y-direction, relative to the origin.
func Scaling(sx, sy float64) AT {
	var m AT
	m.set(0, 0, sx)
	m.set(1, 1, sy)
	m.set(2, 2, 1.0)
	return m
}

// Rotation transform. Rotate a point counter-clockwise around the origin.
// Argument is in radians.
func Rotation(theta float64) AT {
	var m AT
	sin := math.Sin(theta)
	cos := math.Cos(theta)
	m.set(0, 0, cos)
	m.set(0, 1, -sin)
	m.set(1, 0, sin)
	m.set(1, 1, cos)
	m.set(2, 2, 1.0)
	return m
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

// v1 × v2, v.n = [a,b,c]
func dotProd(vec1, vec2 [3]float64) float64 {
	return vec1[0]*vec2[0] + vec1[1]*vec2[1] + vec1[2]*vec2[2]
}

// Combine 2 affine transformations to a new one: the result applies m
// first, then n. The arguments are unchanged.
func (m AT) Combine(n AT) AT {
	var o AT
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			o.set(row, col, dotProd(n.row(row), m.col(col)))
		}
	}
	return o
}

// Transform a 2D-point. The argument is unchanged and a new point is returned.
func (m AT) Transform(p Point) Point {
	v := [3]float64{p.X(), p.Y(), 1.0}
	return P(dotProd(m.row(0), v), dotProd(m.row(1), v))
}

// TransformAll transforms a slice of points into a new slice.
func (m AT) TransformAll(pts []Point) []Point {
	r := make([]Point, len(pts))
	for i, pt := range pts {
		r[i] = m.Transform(pt)
	}
	return r
}
