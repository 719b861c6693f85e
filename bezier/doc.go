// Package bezier computes smooth splines through a sequence of 2D knots,
// built from Bezier segments with an adjustable tension.
/*

The construction follows "parallel tangent" Catmull-Rom style splines, as
explained in

   Smooth Bezier Spline Through Prescribed Points
   http://scaledinnovation.com/analytics/splines/aboutSplines.html

At every knot z.i the two control points of the adjacent segments are placed
on a line through z.i, parallel to the chord z.[i-1] → z.[i+1]. Their
distance from z.i is the tension, split in proportion to the lengths of the
neighboring chords. A tension of 0 yields a polyline, values around 0.5 give
pleasing curves, larger values exaggerate the bends.

Usage

Splines come in two flavours. An open spline starts at its first knot and
ends at its last one:

   sp, err := NewOpen([]bezpline.Point{P(20,50), P(100,100), P(150,50)}, 0.5)

A closed spline loops back from the last knot to the first one:

   sp, err := NewClosedCoords([]float64{260,240, 360,240, 310,340}, 0.5)

Control points are calculated once on construction, splines are immutable
afterwards. Clients then evaluate segment k at a position s in [0…1]:

   pt, err := sp.Evaluate(k, s)

Open splines have no knot before the first or after the last one, therefore
the tangent at either end is unknown. The first and the last segment of an
open spline are quadratic Bezier curves, all other segments are cubic.


BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package bezier

import (
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/bezpline"
)

// AsString returns a spline including its control points as a (debugging)
// string. Quadratic segments are shown by their equivalent cubic control
// points.
//
// Example, a closed triangle with tension 0.5:
//
//	(260,240) .. controls (271.8034,216.3932) and (348.1966,216.3932)
//	  .. (360,240) .. controls (373.1966,266.3932) and (335.0000,340.0000)
//	  .. (310,340) .. controls (285.0000,340.0000) and (246.8034,266.3932)
//	  .. cycle
//
// The format is not fully equivalent to MetaPost's, but close.
func AsString(sp Spline) string {
	var b strings.Builder
	for k := 0; k < sp.SegmentCount(); k++ {
		seg := sp.cubicSegment(k)
		if k > 0 {
			b.WriteString("\n  .. ")
		}
		fmt.Fprintf(&b, "%s .. controls %s and %s", ptstring(seg[0], false),
			ptstring(seg[1], true), ptstring(seg[2], true))
		if k == sp.SegmentCount()-1 && !sp.IsCycle() {
			fmt.Fprintf(&b, "\n  .. %s", ptstring(seg[3], false))
		}
	}
	if sp.IsCycle() {
		b.WriteString("\n  .. cycle")
	}
	return b.String()
}

func ptstring(p bezpline.Point, iscontrol bool) string {
	if !p.IsFinite() {
		return "(<unknown>)"
	}
	if iscontrol {
		return fmt.Sprintf("(%.4f,%.4f)", round(p.X()), round(p.Y()))
	}
	return fmt.Sprintf("(%.4g,%.4g)", round(p.X()), round(p.Y()))
}

func round(x float64) float64 {
	return math.Round(x*10000.0) / 10000.0
}
