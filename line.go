package pointset

import (
	"image"
	"math"
)

// Line represents a line segment between two points.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// IsVertical reports whether both end points have the same x coordinate.
// Zero-length lines are vertical.
func (l Line) IsVertical() bool {
	return l.P0.X == l.P1.X
}

// YByX evaluates the line supporting the segment at x. The result is not
// limited to the segment's extent.
//
// It returns false for vertical lines, which have no unique y for any x.
func (l Line) YByX(x float64) (float64, bool) {
	if l.IsVertical() {
		return 0, false
	}
	x0, y0 := l.P0.Splat()
	x1, y1 := l.P1.Splat()
	return y0 + (y1-y0)*(x-x0)/(x1-x0), true
}

// Eval returns the point at t ∈ [0, 1] along the segment.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Reverse returns the line with its end points swapped.
func (l Line) Reverse() Line {
	return Line{l.P1, l.P0}
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

// BoundingBox returns the smallest rectangle containing the line, with
// non-negative width and height.
func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

// IntLine is a line segment between two integer points.
type IntLine struct {
	P0 image.Point
	P1 image.Point
}

// Length returns the euclidean length of the line.
func (l IntLine) Length() float64 {
	d := l.P1.Sub(l.P0)
	return math.Hypot(float64(d.X), float64(d.Y))
}

// Float returns the line with floating point coordinates.
func (l IntLine) Float() Line {
	return Line{PtFromInt(l.P0), PtFromInt(l.P1)}
}
