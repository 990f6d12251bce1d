// Command pointset applies the routines of the pointset package to points
// read from CSV.
//
// Usage:
//
//	pointset [-v] <command> [flags] [file]
//
// The points are read from file or, if it is omitted, from standard input.
// The commands are:
//
//	interp      interpolate y for the x values given with -x
//	polyline    print the segments connecting the points
//	hull        print the convex hull
//	fitline     fit a line
//	fitellipse  fit an ellipse
//	bbox        print the integer bounding rectangle
//	plot        render the points and derived shapes to PNG
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"honnef.co/go/pointset"
	"honnef.co/go/pointset/geomengine"
	"honnef.co/go/pointset/internal/pointio"
)

type command struct {
	name  string
	usage string
	run   func(e *env, args []string) error
}

var commands = []command{
	{"interp", "interp -x v[,v...] [-sort=false] [file]", runInterp},
	{"polyline", "polyline [-closed] [file]", runPolyline},
	{"hull", "hull [-cw] [file]", runHull},
	{"fitline", "fitline [-dist l2|l1|l12|fair|welsch|huber] [file]", runFitLine},
	{"fitellipse", "fitellipse [file]", runFitEllipse},
	{"bbox", "bbox [file]", runBBox},
	{"plot", "plot -o out.png [-closed] [-hull] [-ellipse] [-fit dist] [file]", runPlot},
}

// env is what commands run against.
type env struct {
	stdin   io.Reader
	stdout  io.Writer
	log     *slog.Logger
	adapter *pointset.Adapter
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: pointset [-v] <command> [flags] [file]")
	fmt.Fprintln(os.Stderr, "commands:")
	for _, cmd := range commands {
		fmt.Fprintf(os.Stderr, "  %s\n", cmd.usage)
	}
	flag.PrintDefaults()
}

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = usage
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	pointset.SetLogger(log)

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	e := &env{
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		log:     log,
		adapter: pointset.NewAdapter(geomengine.New(geomengine.Config{Logger: log})),
	}
	if err := dispatch(e, flag.Arg(0), flag.Args()[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "pointset:", err)
		os.Exit(1)
	}
}

func dispatch(e *env, name string, args []string) error {
	for _, cmd := range commands {
		if cmd.name == name {
			return cmd.run(e, args)
		}
	}
	return fmt.Errorf("unknown command %q", name)
}

// readPoints reads the points from the file named by the flag set's only
// positional argument, or from stdin.
func (e *env) readPoints(fs *flag.FlagSet) ([]pointset.Point, error) {
	switch fs.NArg() {
	case 0:
		return pointio.ReadCSV(e.stdin)
	case 1:
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			return nil, err
		}
		defer f.Close()
		points, err := pointio.ReadCSV(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fs.Arg(0), err)
		}
		return points, nil
	default:
		return nil, fmt.Errorf("%s: too many arguments", fs.Name())
	}
}
