package pointset

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestEllipseArea(t *testing.T) {
	approxEqual := func(x, y float64) bool {
		return math.Abs(x-y) < 1e-7
	}

	center := Pt(5.0, 5.0)
	e := NewEllipse(center, Vec(5.0, 5.0), 1.0)
	if a := e.Area(); !approxEqual(a, 25.0*math.Pi) {
		t.Errorf("got area %v, expected %v", a, 25.0*math.Pi)
	}
	e = NewEllipse(center, Vec(5.0, 10.0), 1.0)
	if a := e.Area(); !approxEqual(a, 50.0*math.Pi) {
		t.Errorf("got area %v, expected %v", a, 50.0*math.Pi)
	}
	if w := e.Winding(center); w != 1 {
		t.Errorf("got winding number %d, expected 1", w)
	}

	eNegRadius := NewEllipse(center, Vec(-5.0, 10.0), 1.0)
	if a := eNegRadius.Area(); !approxEqual(a, 50.0*math.Pi) {
		t.Errorf("got area %v, expected %v", a, 50.0*math.Pi)
	}
}

func TestEllipseRadiiRotation(t *testing.T) {
	e := NewEllipse(Pt(1, 2), Vec(4, 2), math.Pi/6)
	radii, rot := e.RadiiRotation()
	diff(t, Vec(4, 2), radii, cmpopts.EquateApprox(0, 1e-9))
	if math.Abs(rot-math.Pi/6) > 1e-9 {
		t.Errorf("got rotation %g, want %g", rot, math.Pi/6)
	}
	diff(t, Pt(1, 2), e.Center())

	// The point at angle 0 lies at the end of the major axis.
	assertNear(t, e.Eval(0), Pt(1, 2).Translate(VecFromAngle(math.Pi/6).Mul(4)), 1e-9)
}

func TestEllipseBoundingBox(t *testing.T) {
	e := NewEllipse(Pt(0, 0), Vec(4, 2), math.Pi/2)
	diff(t, Rect{-2, -4, 2, 4}, e.BoundingBox(), cmpopts.EquateApprox(0, 1e-9))

	moved := e.Translate(Vec(1, 1))
	diff(t, Rect{-1, -3, 3, 5}, moved.BoundingBox(), cmpopts.EquateApprox(0, 1e-9))
}

func TestRotatedBoxEllipse(t *testing.T) {
	box := RotatedBox{Center: Pt(5, 3), Size: Sz(8, 4), Angle: 30}
	e := box.Ellipse()
	radii, rot := e.RadiiRotation()
	diff(t, Vec(4, 2), radii, cmpopts.EquateApprox(0, 1e-9))
	if want := math.Pi / 6; math.Abs(rot-want) > 1e-9 {
		t.Errorf("got rotation %g, want %g", rot, want)
	}
	if !e.Contains(Pt(5, 3)) {
		t.Error("ellipse doesn't contain its center")
	}
	if e.Contains(Pt(5, 6)) {
		t.Error("ellipse contains point outside of it")
	}
}
