package bezier

import "github.com/npillmayer/bezpline"

// OpenSpline is a spline with distinct start and end knot.
//
// Knots are stored as given. Every interior knot gets a pair of control
// points, so there are 2·(SegmentCount-1) of them. The first and the last
// segment have a single control point only and are quadratic Bezier curves;
// all other segments are cubic.
type OpenSpline struct {
	spline
}

var _ Spline = (*OpenSpline)(nil)

// NewOpen constructs an open spline through at least 3 knots.
func NewOpen(knots []bezpline.Point, tension float64) (*OpenSpline, error) {
	if err := validateInput(knots, tension); err != nil {
		tracer().Errorf("cannot construct open spline: %v", err)
		return nil, err
	}
	tracer().Debugf("open spline with %d knots, tension %.4g", len(knots), tension)
	sp := &OpenSpline{}
	sp.tension = tension
	sp.length = len(knots) - 1 // one segment less than knots
	sp.knots = make([]bezpline.Point, len(knots))
	copy(sp.knots, knots)
	var err error
	if sp.controls, err = solveControls(sp.knots, sp.length-1, tension); err != nil {
		tracer().Errorf("cannot construct open spline: %v", err)
		return nil, err
	}
	tracer().Infof("open spline with %d segments", sp.length)
	return sp, nil
}

// NewOpenCoords constructs an open spline from interleaved knot coordinates
// x0,y0,x1,y1,…
func NewOpenCoords(coords []float64, tension float64) (*OpenSpline, error) {
	knots, err := pointsFromCoords(coords)
	if err != nil {
		tracer().Errorf("cannot construct open spline: %v", err)
		return nil, err
	}
	return NewOpen(knots, tension)
}

// MustNewOpen is like NewOpen, but panics on invalid input.
func MustNewOpen(knots []bezpline.Point, tension float64) *OpenSpline {
	sp, err := NewOpen(knots, tension)
	if err != nil {
		panic(err)
	}
	return sp
}

// IsCycle returns false.
func (sp *OpenSpline) IsCycle() bool {
	return false
}

// Evaluate interpolates segment k at position s. Segment k runs from
// knot k (s = 0) to knot k+1 (s = 1).
func (sp *OpenSpline) Evaluate(k int, s float64) (bezpline.Point, error) {
	if err := sp.checkArgs(k, s); err != nil {
		return bezpline.Point(0), err
	}
	last := len(sp.controls) - 1
	switch k {
	case 0: // first segment, can do only quadratic spline
		return Quadratic(sp.knots[0], sp.controls[0], sp.knots[1], s), nil
	case sp.length - 1: // last segment, can do only quadratic spline
		return Quadratic(sp.knots[k], sp.controls[last], sp.knots[k+1], s), nil
	}
	return Cubic(sp.knots[k], sp.controls[2*k-1], sp.controls[2*k], sp.knots[k+1], s), nil
}

func (sp *OpenSpline) cubicSegment(k int) [4]bezpline.Point {
	p0, p1 := sp.knots[k], sp.knots[k+1]
	switch k {
	case 0:
		c1, c2 := Elevate(p0, sp.controls[0], p1)
		return [4]bezpline.Point{p0, c1, c2, p1}
	case sp.length - 1:
		c1, c2 := Elevate(p0, sp.controls[len(sp.controls)-1], p1)
		return [4]bezpline.Point{p0, c1, c2, p1}
	}
	return [4]bezpline.Point{p0, sp.controls[2*k-1], sp.controls[2*k], p1}
}

// Transformed returns a new open spline through the knots of sp, transformed
// by at. sp is unchanged.
func (sp *OpenSpline) Transformed(at bezpline.AT) (*OpenSpline, error) {
	return NewOpen(at.TransformAll(sp.knots), sp.tension)
}
