package bezier

import (
	"fmt"
	"math"

	"github.com/npillmayer/bezpline"
)

// ControlPoints computes the pair of control points at knot p1, given its
// neighbors p0 and p2 and tension t.
//
// cp1 is p1's control point looking back toward p0, closing the segment
// ending at p1. cp2 looks forward toward p2, opening the segment starting
// at p1. Both lie on the line through p1 parallel to p0→p2, so adjacent
// segments join smoothly. The tension is split between them in proportion
// to the distances to the neighbors.
//
// If p0, p1 and p2 coincide, ControlPoints returns ErrDegenerateKnots.
// If the control points are not representable as finite numbers, it
// returns ErrNumericOverflow.
func ControlPoints(p0, p1, p2 bezpline.Point, t float64) (cp1, cp2 bezpline.Point, err error) {
	d01 := p0.Distance(p1)
	d12 := p1.Distance(p2)
	if d01+d12 == 0 {
		return p1, p1, fmt.Errorf("%w at %s", ErrDegenerateKnots, p1)
	}
	fa := t * d01 / (d01 + d12)
	fb := t - fa
	chord := p0 - p2
	cp1 = p1 + chord.Scaled(fa)
	cp2 = p1 - chord.Scaled(fb)
	if !cp1.IsFinite() || !cp2.IsFinite() {
		return p1, p1, fmt.Errorf("%w at %s", ErrNumericOverflow, p1)
	}
	return cp1, cp2, nil
}

// solveControls runs ControlPoints for every window of three consecutive
// knots, starting at knots[0] and covering cnt windows. Control points are
// returned as a flat sequence back₁, fwd₁, back₂, fwd₂, …
func solveControls(knots []bezpline.Point, cnt int, t float64) ([]bezpline.Point, error) {
	controls := make([]bezpline.Point, 0, 2*cnt+1)
	for k := 0; k < cnt; k++ {
		cp1, cp2, err := ControlPoints(knots[k], knots[k+1], knots[k+2], t)
		if err != nil {
			return nil, err
		}
		tracer().Debugf("controls at knot %s: %s and %s", knots[k+1], cp1, cp2)
		controls = append(controls, cp1, cp2)
	}
	return controls, nil
}

// validateInput checks knots and tension before any control points are solved.
func validateInput(knots []bezpline.Point, t float64) error {
	if len(knots) < MinKnots {
		return fmt.Errorf("%w: need at least %d knots, got %d", ErrTooFewKnots, MinKnots, len(knots))
	}
	for i, z := range knots {
		if !z.IsFinite() {
			return fmt.Errorf("%w at knot %d", ErrInvalidKnot, i)
		}
	}
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidTension, t)
	}
	return nil
}

// pointsFromCoords converts interleaved coordinates x0,y0,x1,y1,… to points.
func pointsFromCoords(coords []float64) ([]bezpline.Point, error) {
	if len(coords)%2 != 0 {
		return nil, fmt.Errorf("%w: %d values", ErrOddCoordinates, len(coords))
	}
	pts := make([]bezpline.Point, len(coords)/2)
	for k := range pts {
		pts[k] = bezpline.P(coords[2*k], coords[2*k+1])
	}
	return pts, nil
}
