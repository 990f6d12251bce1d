package pointset

import (
	"fmt"
	"image"
	"iter"
)

// minPolylinePoints returns the smallest number of points that form a
// polyline.
func minPolylinePoints(closed bool) int {
	if closed {
		return 1
	}
	return 2
}

// polyline yields the segments connecting consecutive points. Closed
// polylines start with the segment from the last point to the first.
func polyline[P any, S any](points []P, closed bool, seg func(p0, p1 P) S) iter.Seq[S] {
	return func(yield func(S) bool) {
		if len(points) < minPolylinePoints(closed) {
			return
		}
		start := 1
		last := points[0]
		if closed {
			start = 0
			last = points[len(points)-1]
		}
		for _, pt := range points[start:] {
			if !yield(seg(last, pt)) {
				return
			}
			last = pt
		}
	}
}

func buildPolyline[P any, S any](points []P, closed bool, seg func(p0, p1 P) S) ([]S, error) {
	if n := minPolylinePoints(closed); len(points) < n {
		return nil, fmt.Errorf("polyline of %d points, need at least %d: %w", len(points), n, ErrInvalidArgument)
	}
	n := len(points)
	if !closed {
		n--
	}
	out := make([]S, 0, n)
	for s := range polyline(points, closed, seg) {
		out = append(out, s)
	}
	return out, nil
}

func newLine(p0, p1 Point) Line { return Line{p0, p1} }

func newIntLine(p0, p1 image.Point) IntLine { return IntLine{p0, p1} }

// Polyline converts a sequence of points into the line segments connecting
// them.
//
// An open polyline consists of len(points)-1 segments, the i-th connecting
// points[i] and points[i+1]. A closed polyline consists of len(points)
// segments: the first connects the last point to points[0], and the i-th,
// for i ≥ 1, connects points[i-1] and points[i].
//
// Open polylines need at least two points and closed ones at least one,
// otherwise [ErrInvalidArgument] is returned. A closed polyline of a single
// point consists of one zero-length segment.
func Polyline(points []Point, closed bool) ([]Line, error) {
	return buildPolyline(points, closed, newLine)
}

// IntPolyline is like [Polyline], but for integer points.
func IntPolyline(points []image.Point, closed bool) ([]IntLine, error) {
	return buildPolyline(points, closed, newIntLine)
}

// PolylineSeq returns an iterator over the segments that [Polyline] would
// return. If there are too few points, it yields nothing.
func PolylineSeq(points []Point, closed bool) iter.Seq[Line] {
	return polyline(points, closed, newLine)
}
