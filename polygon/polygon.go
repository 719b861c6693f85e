/*
Package polygon deals with polygons and polylines, in particular with
polygonal approximations of Bezier splines.

Boolean operations on polygons (union, intersection, difference, xor) are
delegated to package polyclip, an implementation of the
Martinez-Rueda-Feito clipping algorithm.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"errors"
	"fmt"
	"math"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/bezpline"
	"github.com/npillmayer/bezpline/bezier"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'polygon'
func tracer() tracing.Trace {
	return tracing.Select("polygon")
}

var (
	// ErrNotClosed indicates an operation which needs a closed polygon.
	ErrNotClosed = errors.New("polygon is not closed")
	// ErrTooFewPoints indicates a polygon with less than 3 points.
	ErrTooFewPoints = errors.New("polygon has too few points")
)

// Polygon is a sequence of points, either open (a polyline) or closed.
// To construct a polygon, start with NullPolygon() and extend it.
type Polygon struct {
	points []bezpline.Point // point i
	cycle  bool             // is this polygon closed ?
}

// NullPolygon creates an empty polygon, to be extended by subsequent builder
// calls.
//
//	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot adds a point to a polygon. Part of builder functionality.
func (pg *Polygon) Knot(p bezpline.Point) *Polygon {
	pg.points = append(pg.points, p)
	return pg
}

// Cycle closes a polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// End ends an open polygon. Part of builder functionality.
func (pg *Polygon) End() *Polygon {
	return pg
}

// Box creates a closed, axis-parallel rectangle from two opposite corners.
func Box(a, b bezpline.Point) *Polygon {
	ll := bezpline.P(math.Min(a.X(), b.X()), math.Min(a.Y(), b.Y()))
	ur := bezpline.P(math.Max(a.X(), b.X()), math.Max(a.Y(), b.Y()))
	return NullPolygon().Knot(ll).Knot(bezpline.P(ur.X(), ll.Y())).
		Knot(ur).Knot(bezpline.P(ll.X(), ur.Y())).Cycle()
}

// FromSpline approximates a spline by a polygon, sampling each of its
// segments at steps positions. Closed splines result in closed polygons.
func FromSpline(sp bezier.Spline, steps int) (*Polygon, error) {
	pts, err := bezier.Flatten(sp, steps)
	if err != nil {
		return nil, err
	}
	pg := &Polygon{points: pts, cycle: sp.IsCycle()}
	tracer().Debugf("flattened spline of %d segments into %d points",
		sp.SegmentCount(), pg.N())
	return pg, nil
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// N returns the number of points of a polygon.
func (pg *Polygon) N() int {
	return len(pg.points)
}

// Pt returns point i, with i taken modulo N for closed polygons.
// An empty polygon has no points; Pt then returns a NaN point.
func (pg *Polygon) Pt(i int) bezpline.Point {
	if pg.N() == 0 {
		tracer().Errorf("point %d of empty polygon", i)
		return bezpline.P(math.NaN(), math.NaN())
	}
	if pg.cycle {
		i = ((i % pg.N()) + pg.N()) % pg.N()
	}
	return pg.points[i]
}

// Points returns a copy of the points of a polygon.
func (pg *Polygon) Points() []bezpline.Point {
	return append([]bezpline.Point(nil), pg.points...)
}

// Length returns the length of the polygon's outline. For closed polygons
// this includes the edge from the last point back to the first one.
func (pg *Polygon) Length() float64 {
	l := 0.0
	for i := 1; i < pg.N(); i++ {
		l += pg.points[i-1].Distance(pg.points[i])
	}
	if pg.cycle && pg.N() > 1 {
		l += pg.points[pg.N()-1].Distance(pg.points[0])
	}
	return l
}

// Area returns the signed area of a closed polygon (shoelace formula). It is
// positive for counter-clockwise orientation.
func (pg *Polygon) Area() (float64, error) {
	if !pg.cycle {
		return 0, ErrNotClosed
	}
	a := 0.0
	for i := 0; i < pg.N(); i++ {
		a += pg.Pt(i).Cross(pg.Pt(i + 1))
	}
	return a / 2, nil
}

// BoundingBox returns the lower left and upper right corner of the smallest
// axis-parallel rectangle containing the polygon. For an empty polygon
// both corners are NaN points.
func (pg *Polygon) BoundingBox() (bezpline.Point, bezpline.Point) {
	if pg.N() == 0 {
		nan := bezpline.P(math.NaN(), math.NaN())
		return nan, nan
	}
	r := pg.contour().BoundingBox()
	return fromClip(r.Min), fromClip(r.Max)
}

// Contains is a predicate: is p inside the closed polygon pg?
func (pg *Polygon) Contains(p bezpline.Point) bool {
	if !pg.cycle {
		tracer().Errorf("contains: polygon is not closed")
		return false
	}
	return pg.contour().Contains(toClip(p))
}

// Op is a boolean operation on polygons.
type Op polyclip.Op

// Boolean operations for Clip.
const (
	Union        = Op(polyclip.UNION)
	Intersection = Op(polyclip.INTERSECTION)
	Difference   = Op(polyclip.DIFFERENCE)
	Xor          = Op(polyclip.XOR)
)

// Clip applies a boolean operation to two closed polygons. The result may
// consist of zero or more closed polygons.
func Clip(subject, clipping *Polygon, op Op) ([]*Polygon, error) {
	for _, pg := range []*Polygon{subject, clipping} {
		if !pg.cycle {
			return nil, ErrNotClosed
		}
		if pg.N() < 3 {
			return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, pg.N())
		}
	}
	s := polyclip.Polygon{subject.contour()}
	c := polyclip.Polygon{clipping.contour()}
	result := s.Construct(polyclip.Op(op), c)
	pgs := make([]*Polygon, 0, len(result))
	for _, cont := range result {
		pg := NullPolygon()
		for _, p := range cont {
			pg.Knot(fromClip(p))
		}
		pgs = append(pgs, pg.Cycle())
	}
	tracer().Debugf("clipping resulted in %d polygon(s)", len(pgs))
	return pgs, nil
}

// AsString returns a polygon as a (debugging) string, in MetaPost notation.
func AsString(pg *Polygon) string {
	var s string
	for i, pt := range pg.points {
		if i > 0 {
			s += " -- "
		}
		s += pt.String()
	}
	if pg.cycle {
		s += " -- cycle"
	}
	return s
}

func (pg *Polygon) contour() polyclip.Contour {
	cont := make(polyclip.Contour, 0, pg.N())
	for _, pt := range pg.points {
		cont.Add(toClip(pt))
	}
	return cont
}

func toClip(p bezpline.Point) polyclip.Point {
	return polyclip.Point{X: p.X(), Y: p.Y()}
}

func fromClip(p polyclip.Point) bezpline.Point {
	return bezpline.P(p.X, p.Y)
}
