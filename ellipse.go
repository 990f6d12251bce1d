package pointset

import (
	"fmt"
	"math"
)

// Ellipse is an ellipse, represented as an affine transformation of the unit
// circle.
type Ellipse struct {
	inner Affine
}

// NewEllipse returns the ellipse that results from stretching the unit circle
// by radii along the x and y axes, rotating it by xRotation radians, and
// translating it to center.
//
// A positive rotation turns the positive x axis towards the positive y axis.
func NewEllipse(center Point, radii Vec2, xRotation float64) Ellipse {
	// The circle is symmetric about both axes, so negative radii describe
	// the same ellipse.
	return Ellipse{
		inner: Translate(Vec2(center)).
			Mul(Rotate(xRotation)).
			Mul(Scale(math.Abs(radii.X), math.Abs(radii.Y))),
	}
}

// NewEllipseFromAffine creates an ellipse from an affine transformation of the unit
// circle.
func NewEllipseFromAffine(aff Affine) Ellipse {
	return Ellipse{inner: aff}
}

func (e Ellipse) String() string {
	radii, rot := e.RadiiRotation()
	return fmt.Sprintf("Ellipse{center: %v, radii: %v, rotation: %g}", e.Center(), radii, rot)
}

// Center returns the center of the ellipse.
func (e Ellipse) Center() Point {
	return Point(e.inner.Translation())
}

// Radii returns the two radii of the ellipse, before rotation. The larger
// radius is returned in X.
func (e Ellipse) Radii() Vec2 {
	radii, _ := e.inner.svd()
	return radii
}

// Rotation returns the rotation of the ellipse's major axis, in radians.
func (e Ellipse) Rotation() float64 {
	_, rot := e.inner.svd()
	return rot
}

// RadiiRotation returns the radii and the rotation of this ellipse.
//
// This is equivalent to, but more efficient than, using [Ellipse.Radii] and
// [Ellipse.Rotation].
func (e Ellipse) RadiiRotation() (Vec2, float64) {
	return e.inner.svd()
}

// Eval returns the point at angle th on the unit circle, mapped onto the
// ellipse.
func (e Ellipse) Eval(th float64) Point {
	sin, cos := math.Sincos(th)
	return Pt(cos, sin).Transform(e.inner)
}

func (e Ellipse) Area() float64 {
	x, y := e.Radii().Splat()
	return math.Pi * x * y
}

// BoundingBox returns the tight axis-aligned bounding box of the ellipse.
func (e Ellipse) BoundingBox() Rect {
	// Applying the map to (1, 0) and (0, 1) gives the radius vectors (a, b)
	// and (c, d); the extent along each axis is the norm of the
	// corresponding components.
	aff := e.inner.Coefficients()
	rangeX := math.Hypot(aff[0], aff[2])
	rangeY := math.Hypot(aff[1], aff[3])
	cx := aff[4]
	cy := aff[5]
	return Rect{
		X0: cx - rangeX,
		Y0: cy - rangeY,
		X1: cx + rangeX,
		Y1: cy + rangeY,
	}
}

// Winding returns 1 if pt lies strictly inside the ellipse and 0 otherwise.
func (e Ellipse) Winding(pt Point) int {
	inv := e.inner.Invert()
	if Vec2(pt.Transform(inv)).Hypot2() < 1.0 {
		return 1
	} else {
		return 0
	}
}

func (e Ellipse) Contains(pt Point) bool {
	return e.Winding(pt) != 0
}

func (e Ellipse) Translate(v Vec2) Ellipse {
	return Ellipse{
		inner: Translate(v).Mul(e.inner),
	}
}

// Transform returns the ellipse transformed by aff.
func (e Ellipse) Transform(aff Affine) Ellipse {
	return Ellipse{
		inner: aff.Mul(e.inner),
	}
}

func (e Ellipse) IsInf() bool {
	return e.inner.IsInf()
}

func (e Ellipse) IsNaN() bool {
	return e.inner.IsNaN()
}

// RotatedBox is a rectangle of the given size, centered at Center and
// rotated by Angle degrees. It is the shape in which engines report fitted
// ellipses: the box's sides are the ellipse's full axes.
type RotatedBox struct {
	Center Point
	Size   Size
	// Rotation of the box's width side, in degrees.
	Angle float64
}

// Ellipse returns the ellipse inscribed in the box.
func (b RotatedBox) Ellipse() Ellipse {
	return NewEllipse(b.Center, Vec(b.Size.Width/2, b.Size.Height/2), b.Angle*math.Pi/180)
}
