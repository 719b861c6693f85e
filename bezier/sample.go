package bezier

import (
	"fmt"

	"github.com/npillmayer/bezpline"
)

// Sample evaluates every segment of a spline at positions s = i/steps,
// for i = 0 … steps-1. For steps = 10 this is the grid 0.0, 0.1, … 0.9.
// The end point of the last segment is not included; see Flatten.
func Sample(sp Spline, steps int) ([]bezpline.Point, error) {
	if steps < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewSteps, steps)
	}
	pts := make([]bezpline.Point, 0, sp.SegmentCount()*steps+1)
	for k := 0; k < sp.SegmentCount(); k++ {
		for i := 0; i < steps; i++ {
			pt, err := sp.Evaluate(k, float64(i)/float64(steps))
			if err != nil {
				return nil, err
			}
			pts = append(pts, pt)
		}
	}
	return pts, nil
}

// Flatten approximates a spline by a polyline, sampling each segment at
// steps positions. For open splines the final knot is appended. Closed
// splines do not repeat their first point.
func Flatten(sp Spline, steps int) ([]bezpline.Point, error) {
	pts, err := Sample(sp, steps)
	if err != nil {
		return nil, err
	}
	if !sp.IsCycle() {
		end, err := sp.Evaluate(sp.SegmentCount()-1, 1)
		if err != nil {
			return nil, err
		}
		pts = append(pts, end)
	}
	return pts, nil
}
