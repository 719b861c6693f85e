package bezier

import (
	"errors"
	"fmt"

	"github.com/npillmayer/bezpline"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bezier'
func tracer() tracing.Trace {
	return tracing.Select("bezier")
}

// MinKnots is the minimum number of knots for both open and closed splines.
const MinKnots = 3

var (
	// ErrTooFewKnots indicates a knot count insufficient for a spline.
	ErrTooFewKnots = errors.New("spline has too few knots")
	// ErrOddCoordinates indicates a flat coordinate list of odd length.
	ErrOddCoordinates = errors.New("coordinate list has odd length")
	// ErrInvalidKnot indicates a knot coordinate contains NaN/Inf.
	ErrInvalidKnot = errors.New("spline has invalid knot coordinate")
	// ErrInvalidTension indicates a tension of NaN/Inf.
	ErrInvalidTension = errors.New("spline tension must be finite")
	// ErrDegenerateKnots indicates three consecutive knots collapsing to one point.
	ErrDegenerateKnots = errors.New("spline has coincident neighbor knots")
	// ErrNumericOverflow indicates knots too far apart to solve for control points.
	ErrNumericOverflow = errors.New("control point calculation overflows")
	// ErrParameterOutOfRange indicates an interpolation position outside [0…1].
	ErrParameterOutOfRange = errors.New("parameter out of range")
	// ErrSegmentOutOfRange indicates an invalid segment index.
	ErrSegmentOutOfRange = errors.New("segment index out of range")
	// ErrTooFewSteps indicates a sampling resolution below 1.
	ErrTooFewSteps = errors.New("sampling needs at least 1 step per segment")
)

// Spline is a chain of Bezier segments through a sequence of knots.
// Splines are immutable once constructed and safe for concurrent reads.
//
// The two implementations are OpenSpline and ClosedSpline.
type Spline interface {
	// Evaluate interpolates segment k at position s, with s in [0…1].
	Evaluate(k int, s float64) (bezpline.Point, error)
	// SegmentCount returns the number of Bezier segments.
	SegmentCount() int
	// Knots returns a copy of the knot sequence.
	Knots() []bezpline.Point
	// Controls returns a copy of the control point sequence.
	Controls() []bezpline.Point
	// Tension returns the spline tension.
	Tension() float64
	// IsCycle is a predicate: does this spline close into a loop?
	IsCycle() bool

	cubicSegment(k int) [4]bezpline.Point
}

// spline holds the state common to both variants.
type spline struct {
	knots    []bezpline.Point // knots, see variants for layout
	controls []bezpline.Point // control points, see variants for layout
	tension  float64          // spline tension
	length   int              // number of segments
}

// Knots returns a copy of the knots of a spline.
func (sp *spline) Knots() []bezpline.Point {
	return append([]bezpline.Point(nil), sp.knots...)
}

// Controls returns a copy of the control points of a spline.
func (sp *spline) Controls() []bezpline.Point {
	return append([]bezpline.Point(nil), sp.controls...)
}

// Tension returns the spline tension.
func (sp *spline) Tension() float64 {
	return sp.tension
}

// SegmentCount returns the number of Bezier segments of a spline.
func (sp *spline) SegmentCount() int {
	return sp.length
}

func (sp *spline) checkArgs(k int, s float64) error {
	if k < 0 || k >= sp.length {
		return fmt.Errorf("%w: segment %d not in [0,%d)", ErrSegmentOutOfRange, k, sp.length)
	}
	if !(s >= 0 && s <= 1) { // catches NaN, too
		return fmt.Errorf("%w: s = %g not in [0,1]", ErrParameterOutOfRange, s)
	}
	return nil
}
