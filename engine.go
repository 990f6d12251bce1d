package pointset

import (
	"fmt"
	"image"
	"log/slog"
	"strings"
)

// Engine is a geometry engine that provides fitting routines over point
// buffers. Implementations must not retain buf after returning.
type Engine interface {
	// FitLine fits a line to the points, minimizing the sum of ρ(rᵢ), where
	// rᵢ is the distance of the i-th point to the line and ρ is selected by
	// dist. param is a numerical parameter for some distance types, 0
	// selecting a default. reps and aeps are the accuracies for the
	// distance of the line to the origin and for its angle.
	//
	// The result is (vx, vy, x0, y0), a normalized direction vector and a
	// point on the line.
	FitLine(buf *Buffer, dist DistanceType, param, reps, aeps float64) ([4]float32, error)

	// FitEllipse fits an ellipse to the points in the least squares sense.
	FitEllipse(buf *Buffer) (RotatedBox, error)

	// ConvexHull returns the points of the convex hull in the given
	// orientation.
	ConvexHull(buf *Buffer, orientation Orientation) (*Buffer, error)

	// BoundingRect returns the smallest integer rectangle containing the
	// points. If update is false and buf.Bounds is set, it may return
	// buf.Bounds instead. If update is true, it recomputes the rectangle and
	// stores it in buf.Bounds.
	BoundingRect(buf *Buffer, update bool) (image.Rectangle, error)
}

// DistanceType selects the distance metric minimized by [Engine.FitLine].
type DistanceType int

const (
	// DistUser is a user-defined distance. Engines may not support it.
	DistUser DistanceType = iota
	// DistL1 is ρ(r) = r.
	DistL1
	// DistL2 is ρ(r) = r²/2, the ordinary least squares distance.
	DistL2
	// DistC is the uniform distance. Engines may not support it.
	DistC
	// DistL12 is ρ(r) = 2(√(1+r²/2) − 1).
	DistL12
	// DistFair is ρ(r) = c²(r/c − log(1+r/c)).
	DistFair
	// DistWelsch is ρ(r) = c²/2 (1 − exp(−(r/c)²)).
	DistWelsch
	// DistHuber is ρ(r) = r²/2 if r < c, else c(r − c/2).
	DistHuber
)

var distanceNames = [...]string{
	DistUser:   "user",
	DistL1:     "l1",
	DistL2:     "l2",
	DistC:      "c",
	DistL12:    "l12",
	DistFair:   "fair",
	DistWelsch: "welsch",
	DistHuber:  "huber",
}

func (dist DistanceType) String() string {
	if dist < 0 || int(dist) >= len(distanceNames) {
		return fmt.Sprintf("DistanceType(%d)", int(dist))
	}
	return distanceNames[dist]
}

// ParseDistanceType returns the distance type with the given name, as
// returned by [DistanceType.String]. Case is ignored.
func ParseDistanceType(s string) (DistanceType, error) {
	for i, name := range distanceNames {
		if strings.EqualFold(s, name) {
			return DistanceType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown distance type %q: %w", s, ErrInvalidArgument)
}

// Orientation is the winding direction of a convex hull.
type Orientation int

const (
	Clockwise Orientation = iota + 1
	CounterClockwise
)

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// FitLineOptions are the tuning parameters passed to [Engine.FitLine].
type FitLineOptions struct {
	// Param is the distance type's numerical parameter. 0 selects the
	// engine's default.
	Param float64
	// Reps is the accuracy of the line's distance from the origin.
	Reps float64
	// Aeps is the accuracy of the line's angle.
	Aeps float64
}

var DefaultFitLineOptions = FitLineOptions{
	Param: 0,
	Reps:  0.01,
	Aeps:  0.01,
}

// Adapter forwards fitting operations on point sequences to an [Engine].
//
// For every call, the points are copied into a buffer that is released
// before the call returns. Inputs are not validated; the engine decides what
// it accepts. Engine errors are wrapped in [ErrEngineFailure].
//
// An Adapter is safe for concurrent use if its engine is.
type Adapter struct {
	Engine      Engine
	LineOptions FitLineOptions
}

// NewAdapter returns an adapter for e using [DefaultFitLineOptions].
func NewAdapter(e Engine) *Adapter {
	return &Adapter{
		Engine:      e,
		LineOptions: DefaultFitLineOptions,
	}
}

func (a *Adapter) call(op string, points []Point, fn func(buf *Buffer) error) error {
	log := Logger()
	buf := acquireBuffer(points)
	defer releaseBuffer(buf)

	log.Debug("engine call", slog.String("op", op), slog.Int("points", buf.Count))
	if err := fn(buf); err != nil {
		log.Warn("engine call failed", slog.String("op", op), slog.Int("points", buf.Count), slog.Any("err", err))
		return fmt.Errorf("%s: %w: %w", op, ErrEngineFailure, err)
	}
	return nil
}

// FitLine fits a line to points using the distance metric dist. It returns
// the line's normalized direction and a point on the line.
func (a *Adapter) FitLine(points []Point, dist DistanceType) (direction Vec2, pointOnLine Point, err error) {
	var res [4]float32
	err = a.call("fit line", points, func(buf *Buffer) error {
		var err error
		res, err = a.Engine.FitLine(buf, dist, a.LineOptions.Param, a.LineOptions.Reps, a.LineOptions.Aeps)
		return err
	})
	if err != nil {
		return Vec2{}, Point{}, err
	}
	return Vec(float64(res[0]), float64(res[1])), Pt(float64(res[2]), float64(res[3])), nil
}

// FitEllipse fits an ellipse to points in the least squares sense.
func (a *Adapter) FitEllipse(points []Point) (Ellipse, error) {
	var box RotatedBox
	err := a.call("fit ellipse", points, func(buf *Buffer) error {
		var err error
		box, err = a.Engine.FitEllipse(buf)
		return err
	})
	if err != nil {
		return Ellipse{}, err
	}
	return box.Ellipse(), nil
}

// ConvexHull returns the convex hull of points, in the given orientation.
func (a *Adapter) ConvexHull(points []Point, orientation Orientation) ([]Point, error) {
	var hull []Point
	err := a.call("convex hull", points, func(buf *Buffer) error {
		out, err := a.Engine.ConvexHull(buf, orientation)
		if err != nil {
			return err
		}
		hull = out.Points()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return hull, nil
}

// BoundingRectangle returns the smallest integer rectangle containing
// points. The engine is always asked to recompute it.
func (a *Adapter) BoundingRectangle(points []Point) (image.Rectangle, error) {
	var r image.Rectangle
	err := a.call("bounding rectangle", points, func(buf *Buffer) error {
		var err error
		r, err = a.Engine.BoundingRect(buf, true)
		return err
	})
	if err != nil {
		return image.Rectangle{}, err
	}
	return r, nil
}
