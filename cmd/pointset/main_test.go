package main

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"honnef.co/go/pointset"
	"honnef.co/go/pointset/geomengine"
)

func run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	log := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	e := &env{
		stdin:   strings.NewReader(input),
		stdout:  &out,
		log:     log,
		adapter: pointset.NewAdapter(geomengine.New(geomengine.Config{Logger: log})),
	}
	err := dispatch(e, args[0], args[1:])
	return out.String(), err
}

const samples = "x,y\n10,10\n0,0\n20,5\n"

func TestInterp(t *testing.T) {
	out, err := run(t, samples, "interp", "-x", "5,15", "-x", "-5")
	if err != nil {
		t.Fatal(err)
	}
	if want := "5,5\n15,7.5\n-5,-5\n"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}

	// without sorting, the unsorted input picks the wrong segment
	out, err = run(t, samples, "interp", "-sort=false", "-x", "5")
	if err != nil {
		t.Fatal(err)
	}
	if out == "5,5\n" {
		t.Errorf("-sort=false had no effect")
	}

	if _, err := run(t, "x,y\n1,1\n", "interp", "-x", "1"); !errors.Is(err, pointset.ErrInvalidArgument) {
		t.Errorf("got error %v, want %v", err, pointset.ErrInvalidArgument)
	}
}

func TestPolyline(t *testing.T) {
	out, err := run(t, "0,0\n1,1\n2,0\n", "polyline", "-closed")
	if err != nil {
		t.Fatal(err)
	}
	if want := "2,0,0,0\n0,0,1,1\n1,1,2,0\n"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestHull(t *testing.T) {
	in := "0,0\n2,0\n1,1\n2,2\n0,2\n"
	out, err := run(t, in, "hull")
	if err != nil {
		t.Fatal(err)
	}
	if want := "x,y\n0,0\n2,0\n2,2\n0,2\n"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}
	out, err = run(t, in, "hull", "-cw")
	if err != nil {
		t.Fatal(err)
	}
	if want := "x,y\n0,0\n0,2\n2,2\n2,0\n"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestBBox(t *testing.T) {
	out, err := run(t, "0.5,-1.5\n3.2,2.9\n", "bbox")
	if err != nil {
		t.Fatal(err)
	}
	if want := "origin (0,-2)\nsize 4x5\n"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestFitCommands(t *testing.T) {
	out, err := run(t, "0,1\n1,3\n2,5\n3,7\n", "fitline", "-dist", "huber")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "direction ") || !strings.Contains(out, "\npoint ") {
		t.Errorf("unexpected output %q", out)
	}

	if _, err := run(t, "0,1\n1,3\n", "fitline", "-dist", "nope"); !errors.Is(err, pointset.ErrInvalidArgument) {
		t.Errorf("got error %v, want %v", err, pointset.ErrInvalidArgument)
	}

	out, err = run(t, ellipseCSV(20), "fitellipse")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "center (") || !strings.Contains(out, "\nradii ⟨") {
		t.Errorf("unexpected output %q", out)
	}

	if _, err := run(t, "0,0\n1,1\n", "fitellipse"); !errors.Is(err, pointset.ErrEngineFailure) {
		t.Errorf("got error %v, want %v", err, pointset.ErrEngineFailure)
	}
}

// ellipseCSV returns n points on an ellipse, one per line.
func ellipseCSV(n int) string {
	var b strings.Builder
	el := pointset.NewEllipse(pointset.Pt(5, 3), pointset.Vec(4, 2), 0.5)
	for i := range n {
		pt := el.Eval(2 * math.Pi * float64(i) / float64(n))
		fmt.Fprintf(&b, "%g,%g\n", pt.X, pt.Y)
	}
	return b.String()
}

func TestPlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	in := ellipseCSV(12)
	if _, err := run(t, in, "plot", "-o", path, "-closed", "-hull", "-ellipse", "-fit", "l2", "-width", "200", "-height", "100"); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Errorf("got image bounds %v", b)
	}

	if _, err := run(t, in, "plot"); err == nil {
		t.Error("plot without -o succeeded")
	}
}

func TestPlotSinglePoint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one.png")
	if _, err := run(t, "3,4\n", "plot", "-o", path, "-width", "50", "-height", "50"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}
	// the fits still need enough points
	if _, err := run(t, "3,4\n", "plot", "-o", path, "-ellipse"); !errors.Is(err, pointset.ErrEngineFailure) {
		t.Errorf("got error %v, want %v", err, pointset.ErrEngineFailure)
	}
}

func TestDispatchUnknown(t *testing.T) {
	if _, err := run(t, "", "frobnicate"); err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("got error %v", err)
	}
}

func TestReadPointsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.csv")
	if err := os.WriteFile(path, []byte("0,0\n1,2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "", "polyline", path)
	if err != nil {
		t.Fatal(err)
	}
	if want := "0,0,1,2\n"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}

	if _, err := run(t, "", "polyline", path, path); err == nil {
		t.Error("expected error for too many arguments")
	}
}
