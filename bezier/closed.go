package bezier

import "github.com/npillmayer/bezpline"

// ClosedSpline is a spline looping back from its last knot to its first one.
//
// For n input knots the spline has n segments. The knot sequence has n+3
// entries: the last input knot is prepended and the first two input knots
// are appended, so that every input knot has a predecessor and a successor.
// The 2·n control points are followed by a copy of the first one, which
// closes the loop.
type ClosedSpline struct {
	spline
}

var _ Spline = (*ClosedSpline)(nil)

// NewClosed constructs a closed spline through at least 3 knots.
func NewClosed(knots []bezpline.Point, tension float64) (*ClosedSpline, error) {
	if err := validateInput(knots, tension); err != nil {
		tracer().Errorf("cannot construct closed spline: %v", err)
		return nil, err
	}
	n := len(knots)
	tracer().Debugf("closed spline with %d knots, tension %.4g", n, tension)
	sp := &ClosedSpline{}
	sp.tension = tension
	sp.length = n
	sp.knots = make([]bezpline.Point, 0, n+3)
	sp.knots = append(sp.knots, knots[n-1])
	sp.knots = append(sp.knots, knots...)
	sp.knots = append(sp.knots, knots[0], knots[1])
	controls, err := solveControls(sp.knots, n, tension)
	if err != nil {
		tracer().Errorf("cannot construct closed spline: %v", err)
		return nil, err
	}
	sp.controls = append(controls, controls[0])
	tracer().Infof("closed spline with %d segments", sp.length)
	return sp, nil
}

// NewClosedCoords constructs a closed spline from interleaved knot
// coordinates x0,y0,x1,y1,…
func NewClosedCoords(coords []float64, tension float64) (*ClosedSpline, error) {
	knots, err := pointsFromCoords(coords)
	if err != nil {
		tracer().Errorf("cannot construct closed spline: %v", err)
		return nil, err
	}
	return NewClosed(knots, tension)
}

// MustNewClosed is like NewClosed, but panics on invalid input.
func MustNewClosed(knots []bezpline.Point, tension float64) *ClosedSpline {
	sp, err := NewClosed(knots, tension)
	if err != nil {
		panic(err)
	}
	return sp
}

// IsCycle returns true.
func (sp *ClosedSpline) IsCycle() bool {
	return true
}

// InputKnots returns a copy of the knots the spline was constructed from,
// without the wraparound duplicates.
func (sp *ClosedSpline) InputKnots() []bezpline.Point {
	return append([]bezpline.Point(nil), sp.knots[1:sp.length+1]...)
}

// Evaluate interpolates segment k at position s. Segment k runs from
// input knot k (s = 0) to input knot (k+1) mod n (s = 1).
func (sp *ClosedSpline) Evaluate(k int, s float64) (bezpline.Point, error) {
	if err := sp.checkArgs(k, s); err != nil {
		return bezpline.Point(0), err
	}
	seg := sp.cubicSegment(k)
	return Cubic(seg[0], seg[1], seg[2], seg[3], s), nil
}

func (sp *ClosedSpline) cubicSegment(k int) [4]bezpline.Point {
	kk := k + 1 // index shift because last knot was prepended
	return [4]bezpline.Point{
		sp.knots[kk],
		sp.controls[2*kk-1],
		sp.controls[2*kk],
		sp.knots[kk+1],
	}
}

// Transformed returns a new closed spline through the knots of sp,
// transformed by at. sp is unchanged.
func (sp *ClosedSpline) Transformed(at bezpline.AT) (*ClosedSpline, error) {
	return NewClosed(at.TransformAll(sp.InputKnots()), sp.tension)
}
