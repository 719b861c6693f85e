package numutil

import (
	"fmt"
	"math"
)

// Point3 is a point in 3D space.
type Point3 struct {
	X, Y, Z float64
}

// P3 is a quick notation for constructing a 3D point.
func P3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

func (p Point3) String() string {
	return fmt.Sprintf("(%g,%g,%g)", p.X, p.Y, p.Z)
}

// Add returns p+q.
func (p Point3) Add(q Point3) Point3 {
	return Point3{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Sub returns p-q.
func (p Point3) Sub(q Point3) Point3 {
	return Point3{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Scaled returns p scaled by a.
func (p Point3) Scaled(a float64) Point3 {
	return Point3{p.X * a, p.Y * a, p.Z * a}
}

// Dot returns the dot product of p and q.
func (p Point3) Dot(q Point3) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Norm2 returns the squared length of p.
func (p Point3) Norm2() float64 {
	return Square(p.X) + Square(p.Y) + Square(p.Z)
}

// Norm returns the length of p.
func (p Point3) Norm() float64 {
	return math.Sqrt(p.Norm2())
}

// Distance returns the euclidean distance between p and q.
func (p Point3) Distance(q Point3) float64 {
	return p.Sub(q).Norm()
}

// Slerp interpolates spherically between a and b. Theta is the angle between
// a and b in radians, t is in [0…1]. For sin(theta) = 0 Slerp degrades to
// linear interpolation.
//
// See https://en.wikipedia.org/wiki/Slerp
func Slerp(a, b Point3, t, theta float64) Point3 {
	A, B := 1-t, t
	if norm := math.Sin(theta); norm != 0 {
		norm = 1 / norm
		A = math.Sin(A*theta) * norm
		B = math.Sin(B*theta) * norm
	}
	return a.Scaled(A).Add(b.Scaled(B))
}
