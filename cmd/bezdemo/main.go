// Command bezdemo samples Bezier splines through a few demo shapes and
// prints the interpolated points, one "x y" pair per line.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/npillmayer/bezpline"
	"github.com/npillmayer/bezpline/bezier"
	"github.com/npillmayer/bezpline/polygon"
	"github.com/npillmayer/schuko/tracing"
)

// shapes maps shape names to knot coordinates x0,y0,x1,y1,…
var shapes = map[string][]float64{
	"triangle": {260, 240, 360, 240, 310, 340},
	"square":   {50, 200, 150, 200, 150, 300, 50, 300},
	"curve": {20, 50, 100, 100, 150, 50, 200, 150,
		250, 50, 300, 70, 310, 130, 380, 30},
}

func main() {
	var (
		shape   = flag.String("shape", "curve", "demo shape: triangle, square or curve")
		tension = flag.Float64("tension", 2.0, "spline tension")
		steps   = flag.Int("steps", 10, "samples per segment")
		closed  = flag.Bool("closed", false, "close the curve into a loop (triangle and square are always closed)")
		stats   = flag.Bool("stats", false, "print length and area of the flattened spline")
		trace   = flag.Bool("trace", false, "trace spline construction")
	)
	flag.Parse()

	if *trace {
		tracing.Select("bezier").SetTraceLevel(tracing.LevelInfo)
	} else {
		tracing.Select("bezier").SetTraceLevel(tracing.LevelError)
	}
	coords, ok := shapes[*shape]
	if !ok {
		log.Fatalf("unknown shape %q", *shape)
	}
	sp, err := build(coords, *tension, *closed || *shape != "curve")
	if err != nil {
		log.Fatalf("cannot build spline: %v", err)
	}
	if err := printSamples(os.Stdout, sp, *steps); err != nil {
		log.Fatalf("cannot sample spline: %v", err)
	}
	if *stats {
		if err := printStats(os.Stdout, sp, *steps); err != nil {
			log.Fatalf("cannot flatten spline: %v", err)
		}
	}
}

func build(coords []float64, tension float64, closed bool) (bezier.Spline, error) {
	if closed {
		return bezier.NewClosedCoords(coords, tension)
	}
	return bezier.NewOpenCoords(coords, tension)
}

func printSamples(w io.Writer, sp bezier.Spline, steps int) error {
	pts, err := bezier.Sample(sp, steps)
	if err != nil {
		return err
	}
	for _, pt := range pts {
		fmt.Fprintf(w, "   %g   %g\n", pt.X(), pt.Y())
	}
	return nil
}

func printStats(w io.Writer, sp bezier.Spline, steps int) error {
	pg, err := polygon.FromSpline(sp, steps)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "length   %.4f\n", pg.Length())
	if area, err := pg.Area(); err == nil {
		fmt.Fprintf(w, "area     %.4f\n", area)
		fmt.Fprintf(w, "center   %s\n", bezpline.Centroid(pg.Points()...))
	}
	return nil
}
