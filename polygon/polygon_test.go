package polygon

import (
	"math"
	"testing"

	"github.com/npillmayer/bezpline"
	"github.com/npillmayer/bezpline/bezier"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := NullPolygon().Knot(bezpline.P(0, 0)).Knot(bezpline.P(1, 3)).Knot(bezpline.P(3, 0)).Cycle()
	tracer().Infof("pg = %s", AsString(pg))
	if pg.N() != 3 {
		t.Fail()
	}
	assert.Equal(t, "(0,0) -- (1,3) -- (3,0) -- cycle", AsString(pg))
	assert.Equal(t, bezpline.P(0, 0), pg.Pt(3))
	assert.Equal(t, bezpline.P(3, 0), pg.Pt(-1))
}

func TestBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(bezpline.P(0, 5), bezpline.P(4, 1))
	tracer().Infof("box = %s", AsString(box))
	if box.N() != 4 {
		t.Fail()
	}
	area, err := box.Area()
	require.NoError(t, err)
	assert.Equal(t, 16.0, area)
	assert.Equal(t, 16.0, box.Length())
	ll, ur := box.BoundingBox()
	assert.Equal(t, bezpline.P(0, 1), ll)
	assert.Equal(t, bezpline.P(4, 5), ur)
	assert.True(t, box.Contains(bezpline.P(2, 3)))
	assert.False(t, box.Contains(bezpline.P(5, 3)))
}

func TestEmptyPolygon(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := NullPolygon().Cycle()
	assert.NotPanics(t, func() { pg.Pt(0) })
	assert.False(t, pg.Pt(0).IsFinite())
	ll, ur := pg.BoundingBox()
	assert.False(t, ll.IsFinite())
	assert.False(t, ur.IsFinite())
	area, err := pg.Area()
	require.NoError(t, err)
	assert.Equal(t, 0.0, area)
	assert.Equal(t, 0.0, pg.Length())
}

func TestOpenPolyline(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pl := NullPolygon().Knot(bezpline.P(0, 0)).Knot(bezpline.P(3, 4)).Knot(bezpline.P(3, 0)).End()
	assert.Equal(t, 9.0, pl.Length())
	_, err := pl.Area()
	assert.ErrorIs(t, err, ErrNotClosed)
	assert.False(t, pl.Contains(bezpline.P(2, 1)))
	_, err = Clip(pl, Box(bezpline.P(0, 0), bezpline.P(1, 1)), Union)
	assert.ErrorIs(t, err, ErrNotClosed)
}

func totalArea(t *testing.T, pgs []*Polygon) float64 {
	t.Helper()
	sum := 0.0
	for _, pg := range pgs {
		a, err := pg.Area()
		require.NoError(t, err)
		sum += math.Abs(a)
	}
	return sum
}

func TestClipBoxes(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := Box(bezpline.P(0, 0), bezpline.P(2, 2))
	b := Box(bezpline.P(1, 1), bezpline.P(3, 3))
	for _, c := range []struct {
		op   Op
		area float64
	}{
		{Union, 7},
		{Intersection, 1},
		{Difference, 3},
	} {
		pgs, err := Clip(a, b, c.op)
		require.NoError(t, err)
		assert.InDelta(t, c.area, totalArea(t, pgs), 1e-9, "op %d", c.op)
	}
}

func TestFromSpline(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	square := []bezpline.Point{
		bezpline.P(50, 200), bezpline.P(150, 200), bezpline.P(150, 300), bezpline.P(50, 300),
	}
	closed := bezier.MustNewClosed(square, 0.5)
	pg, err := FromSpline(closed, 16)
	require.NoError(t, err)
	assert.True(t, pg.IsCycle())
	assert.Equal(t, 4*16, pg.N())
	assert.True(t, pg.Contains(bezpline.P(100, 250)))
	assert.True(t, pg.Contains(bezpline.P(160, 250)), "spline bulges out of the square")
	assert.False(t, pg.Contains(bezpline.P(40, 190)), "spline cuts the corners")
	area, err := pg.Area()
	require.NoError(t, err)
	assert.InDelta(t, 15225.6, area, 0.1)
	ll, ur := pg.BoundingBox()
	assert.InDelta(t, 31.25, ll.X(), 1e-9)
	assert.InDelta(t, 181.25, ll.Y(), 1e-9)
	assert.InDelta(t, 168.75, ur.X(), 1e-9)
	assert.InDelta(t, 318.75, ur.Y(), 1e-9)

	open := bezier.MustNewOpen(square, 0.5)
	pl, err := FromSpline(open, 16)
	require.NoError(t, err)
	assert.False(t, pl.IsCycle())
	assert.Equal(t, 3*16+1, pl.N())
	assert.Equal(t, square[3], pl.Pt(pl.N()-1))

	_, err = FromSpline(open, 0)
	assert.ErrorIs(t, err, bezier.ErrTooFewSteps)
}

func TestClipSplineWithBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tri := bezier.MustNewClosed([]bezpline.Point{
		bezpline.P(260, 240), bezpline.P(360, 240), bezpline.P(310, 340),
	}, 0.5)
	pg, err := FromSpline(tri, 32)
	require.NoError(t, err)
	whole, err := pg.Area()
	require.NoError(t, err)
	ll, ur := pg.BoundingBox()
	mid := (ll.Y() + ur.Y()) / 2
	lower := Box(bezpline.P(ll.X()-1, ll.Y()-1), bezpline.P(ur.X()+1, mid))
	upper := Box(bezpline.P(ll.X()-1, mid), bezpline.P(ur.X()+1, ur.Y()+1))
	below, err := Clip(pg, lower, Intersection)
	require.NoError(t, err)
	above, err := Clip(pg, upper, Intersection)
	require.NoError(t, err)
	assert.InDelta(t, math.Abs(whole), totalArea(t, below)+totalArea(t, above), 1e-3)
}
