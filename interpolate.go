package pointset

import (
	"fmt"
	"math"
)

// Interpolate performs first degree interpolation to look up the y
// coordinate for x in points, which must be sorted ascending by x.
//
// If a point with an x coordinate equal to x exists, its y coordinate is
// returned unmodified. Otherwise, the result is the value at x of the line
// through the two points bracketing x. Values of x smaller than all x
// coordinates are extrapolated along the first segment, values larger than
// all x coordinates along the last one.
//
// Interpolate returns [ErrInvalidArgument] if points has fewer than two
// elements or if x is NaN or infinite, and [ErrUndefinedInterpolation] if the
// bracketing segment is vertical or the result isn't finite.
func Interpolate(points []Point, x float64) (float64, error) {
	if len(points) < 2 {
		return 0, fmt.Errorf("interpolating over %d points: %w", len(points), ErrInvalidArgument)
	}
	return interpolate(points, x)
}

func interpolate(points []Point, x float64) (float64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("interpolating at %g: %w", x, ErrInvalidArgument)
	}
	seg := BracketingSegment(points, x)
	if seg.exact {
		return seg.Line.P0.Y, nil
	}
	y, ok := seg.Line.YByX(x)
	if !ok {
		return 0, fmt.Errorf("interpolating at %g over vertical segment %v–%v: %w",
			x, seg.Line.P0, seg.Line.P1, ErrUndefinedInterpolation)
	}
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, fmt.Errorf("interpolating at %g over segment %v–%v yields %g: %w",
			x, seg.Line.P0, seg.Line.P1, y, ErrUndefinedInterpolation)
	}
	return y, nil
}

// Segment identifies a segment of a point sequence, starting at Index.
type Segment struct {
	Line  Line
	Index int

	// exact is set when the query matched a point, which is then stored in
	// both end points of Line.
	exact bool
}

// BracketingSegment returns the segment that [Interpolate] uses for x. points
// must be sorted ascending by x and have at least two elements.
//
// If x matches a point exactly, the returned segment is that point repeated.
func BracketingSegment(points []Point, x float64) Segment {
	res := LocateX(points, x)
	if res.Exact {
		pt := points[res.Index]
		return Segment{Line: Line{pt, pt}, Index: res.Index, exact: true}
	}

	var idx int
	switch res.Index {
	case 0:
		// x is smaller than all x coordinates
		idx = 0
	case len(points):
		// x is larger than all x coordinates
		idx = len(points) - 2
	default:
		// the segment to the left of the insertion point
		idx = res.Index - 1
	}
	return Segment{Line: Line{points[idx], points[idx+1]}, Index: idx}
}

// Exact reports whether the query matched a point of the sequence.
func (s Segment) Exact() bool { return s.exact }

// InterpolateAll calls [Interpolate] for each element of xs. The i-th
// element of the result is the value for xs[i].
//
// If any query fails, InterpolateAll returns the first error, annotated with
// the index of the failing query.
func InterpolateAll(points []Point, xs []float64) ([]float64, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("interpolating over %d points: %w", len(points), ErrInvalidArgument)
	}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		y, err := interpolate(points, x)
		if err != nil {
			return nil, fmt.Errorf("query %d: %w", i, err)
		}
		ys[i] = y
	}
	return ys, nil
}

// Interpolator interpolates over a fixed point sequence. Its zero value is
// not usable; use [NewInterpolator].
//
// An Interpolator doesn't copy the points. They must not be modified while
// the Interpolator is in use. It is safe for concurrent use.
type Interpolator struct {
	points []Point
}

// NewInterpolator returns an interpolator over points, which must be sorted
// ascending by x and contain at least two elements.
func NewInterpolator(points []Point) (*Interpolator, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("interpolating over %d points: %w", len(points), ErrInvalidArgument)
	}
	return &Interpolator{points: points}, nil
}

// At returns the interpolated y coordinate for x. See [Interpolate].
func (ip *Interpolator) At(x float64) (float64, error) {
	return interpolate(ip.points, x)
}

// All returns the interpolated y coordinates for xs. See [InterpolateAll].
func (ip *Interpolator) All(xs []float64) ([]float64, error) {
	return InterpolateAll(ip.points, xs)
}

// Points returns the point sequence the interpolator was created with.
func (ip *Interpolator) Points() []Point {
	return ip.points
}
