package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"honnef.co/go/pointset"
	"honnef.co/go/pointset/internal/plot"
	"honnef.co/go/pointset/internal/pointio"
)

// floatList is a flag holding comma-separated numbers.
type floatList []float64

func (l *floatList) String() string {
	parts := make([]string, len(*l))
	for i, f := range *l {
		parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *floatList) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return err
		}
		*l = append(*l, f)
	}
	return nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}

func runInterp(e *env, args []string) error {
	fs := newFlagSet("interp")
	var xs floatList
	fs.Var(&xs, "x", "comma-separated x values to interpolate at")
	sort := fs.Bool("sort", true, "sort the points by x before interpolating")
	if err := fs.Parse(args); err != nil {
		return err
	}
	points, err := e.readPoints(fs)
	if err != nil {
		return err
	}
	if *sort {
		points = pointio.SortByX(points)
	}
	ys, err := pointset.InterpolateAll(points, xs)
	if err != nil {
		return err
	}
	for i, y := range ys {
		fmt.Fprintf(e.stdout, "%g,%g\n", xs[i], y)
	}
	return nil
}

func runPolyline(e *env, args []string) error {
	fs := newFlagSet("polyline")
	closed := fs.Bool("closed", false, "connect the last point to the first")
	if err := fs.Parse(args); err != nil {
		return err
	}
	points, err := e.readPoints(fs)
	if err != nil {
		return err
	}
	lines, err := pointset.Polyline(points, *closed)
	if err != nil {
		return err
	}
	for _, l := range lines {
		fmt.Fprintf(e.stdout, "%g,%g,%g,%g\n", l.P0.X, l.P0.Y, l.P1.X, l.P1.Y)
	}
	return nil
}

func runHull(e *env, args []string) error {
	fs := newFlagSet("hull")
	cw := fs.Bool("cw", false, "produce a clockwise hull")
	if err := fs.Parse(args); err != nil {
		return err
	}
	points, err := e.readPoints(fs)
	if err != nil {
		return err
	}
	orientation := pointset.CounterClockwise
	if *cw {
		orientation = pointset.Clockwise
	}
	hull, err := e.adapter.ConvexHull(points, orientation)
	if err != nil {
		return err
	}
	return pointio.WriteCSV(e.stdout, hull)
}

func runFitLine(e *env, args []string) error {
	fs := newFlagSet("fitline")
	distName := fs.String("dist", "l2", "distance type")
	if err := fs.Parse(args); err != nil {
		return err
	}
	dist, err := pointset.ParseDistanceType(*distName)
	if err != nil {
		return err
	}
	points, err := e.readPoints(fs)
	if err != nil {
		return err
	}
	dir, pt, err := e.adapter.FitLine(points, dist)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "direction %v\npoint %v\n", dir, pt)
	return nil
}

func runFitEllipse(e *env, args []string) error {
	fs := newFlagSet("fitellipse")
	if err := fs.Parse(args); err != nil {
		return err
	}
	points, err := e.readPoints(fs)
	if err != nil {
		return err
	}
	el, err := e.adapter.FitEllipse(points)
	if err != nil {
		return err
	}
	radii, rot := el.RadiiRotation()
	fmt.Fprintf(e.stdout, "center %v\nradii %v\nrotation %g\n", el.Center(), radii, rot)
	return nil
}

func runBBox(e *env, args []string) error {
	fs := newFlagSet("bbox")
	if err := fs.Parse(args); err != nil {
		return err
	}
	points, err := e.readPoints(fs)
	if err != nil {
		return err
	}
	r, err := e.adapter.BoundingRectangle(points)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "origin %v\nsize %dx%d\n", r.Min, r.Dx(), r.Dy())
	return nil
}

var (
	colorBackground = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorPoints     = color.RGBA{0x20, 0x20, 0x20, 0xff}
	colorPolyline   = color.RGBA{0x30, 0x70, 0xc0, 0xff}
	colorHull       = color.RGBA{0xd0, 0x50, 0x30, 0xff}
	colorFit        = color.RGBA{0x30, 0xa0, 0x50, 0xff}
)

func runPlot(e *env, args []string) error {
	fs := newFlagSet("plot")
	out := fs.String("o", "", "output PNG `file`")
	closed := fs.Bool("closed", false, "close the polyline")
	hull := fs.Bool("hull", false, "draw the convex hull")
	ellipse := fs.Bool("ellipse", false, "draw the fitted ellipse")
	fit := fs.String("fit", "", "draw the line fitted with this distance type")
	width := fs.Int("width", 800, "image width")
	height := fs.Int("height", 600, "image height")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		return fmt.Errorf("plot: -o is required")
	}
	points, err := e.readPoints(fs)
	if err != nil {
		return err
	}
	// A single point has no segments to connect; it is still drawn as a dot.
	var lines []pointset.Line
	if len(points) >= 2 {
		lines, err = pointset.Polyline(points, *closed)
		if err != nil {
			return err
		}
	}

	var world pointset.Rect
	for i, pt := range points {
		if i == 0 {
			world = pointset.NewRectFromPoints(pt, pt)
		}
		world = world.UnionPoint(pt)
	}

	var shapes []func(c *plot.Canvas)
	if *hull {
		h, err := e.adapter.ConvexHull(points, pointset.CounterClockwise)
		if err != nil {
			return err
		}
		hullLines, err := pointset.Polyline(h, true)
		if err != nil {
			return err
		}
		shapes = append(shapes, func(c *plot.Canvas) { c.StrokeLines(hullLines, 2, colorHull) })
	}
	if *ellipse {
		el, err := e.adapter.FitEllipse(points)
		if err != nil {
			return err
		}
		world = world.Union(el.BoundingBox())
		shapes = append(shapes, func(c *plot.Canvas) { c.StrokeEllipse(el, 2, colorFit) })
	}
	if *fit != "" {
		dist, err := pointset.ParseDistanceType(*fit)
		if err != nil {
			return err
		}
		dir, pt, err := e.adapter.FitLine(points, dist)
		if err != nil {
			return err
		}
		shapes = append(shapes, func(c *plot.Canvas) { c.StrokeInfiniteLine(dir, pt, 2, colorFit) })
	}

	c := plot.NewCanvas(world, *width, *height, 20, colorBackground)
	c.StrokeLines(lines, 1.5, colorPolyline)
	for _, draw := range shapes {
		draw(c)
	}
	c.Dots(points, 3, colorPoints)

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := c.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	e.log.Debug("wrote plot", "file", *out, "points", len(points))
	return f.Close()
}
