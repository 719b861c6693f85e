/*
Package numutil collects small numeric helpers used around the spline code:
squares and cubes, rounding, clamping, center of mass of contours, plane and
volume duplication and spherical interpolation of 3D points.

None of these helpers carries state.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package numutil

import (
	"cmp"
	"fmt"
	"math"
	"sync"
)

// Square returns x².
func Square(x float64) float64 {
	return x * x
}

// Cube returns x³.
func Cube(x float64) float64 {
	return x * x * x
}

// Round rounds x half away from zero and returns it as an int.
func Round(x float64) int {
	return int(math.Round(x))
}

// Clamp returns val clamped to [min,max]. It panics if max is not greater
// than min.
func Clamp[T cmp.Ordered](val, min, max T) T {
	if cmp.Compare(max, min) <= 0 {
		panic(fmt.Sprintf("clamp: max %v must be greater than min %v", max, min))
	}
	if cmp.Less(val, min) {
		return min
	}
	if cmp.Less(max, val) {
		return max
	}
	return val
}

// InRange is a predicate: is min ≤ val ≤ max ?
func InRange(val, min, max float64) bool {
	return val >= min && val <= max
}

// CenterOfMass computes the center of mass of a contour given as interleaved
// coordinates x0,y0,x1,y1,... All points have the same weight.
// For an empty contour NaN values are returned.
func CenterOfMass(contour []float64) (float64, float64) {
	l := len(contour) / 2
	if l == 0 {
		return math.NaN(), math.NaN()
	}
	var x, y float64
	for k := 0; k < l; k++ {
		x += contour[2*k]
		y += contour[2*k+1]
	}
	n := 1.0 / float64(l)
	return x * n, y * n
}

// CopyPlane makes a deep copy of a 2D plane. Rows of the copy share a single
// backing array.
func CopyPlane[T any](src [][]T) [][]T {
	if src == nil {
		return nil
	}
	size := 0
	for _, row := range src {
		size += len(row)
	}
	backing := make([]T, size)
	dst := make([][]T, len(src))
	at := 0
	for r, row := range src {
		dst[r] = backing[at : at+len(row) : at+len(row)]
		copy(dst[r], row)
		at += len(row)
	}
	return dst
}

// CopyVolume makes a deep copy of a volume (a slice of plane slices).
// Planes are copied in parallel, one goroutine per plane.
func CopyVolume[T any](src [][][]T) [][][]T {
	if src == nil {
		return nil
	}
	dst := make([][][]T, len(src))
	var wg sync.WaitGroup
	wg.Add(len(src))
	for iz := range src {
		go func(iz int) {
			defer wg.Done()
			dst[iz] = CopyPlane(src[iz])
		}(iz)
	}
	wg.Wait()
	return dst
}

// MakeBitImage returns a bit image of a plane, where a bit is set for every
// negative value. If no value is negative, MakeBitImage returns nil.
func MakeBitImage(plane [][]int16) [][]bool {
	if plane == nil {
		return nil
	}
	image := make([][]bool, len(plane))
	sum := 0
	for r, row := range plane {
		image[r] = make([]bool, len(row))
		for c, v := range row {
			if v < 0 {
				image[r][c] = true
				sum++
			}
		}
	}
	if sum == 0 {
		return nil
	}
	return image
}
