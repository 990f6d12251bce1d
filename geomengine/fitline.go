package geomengine

import (
	"fmt"
	"log/slog"
	"math"

	"honnef.co/go/pointset"
)

// Default constants of the robust distance types.
const (
	fairC   = 1.3998
	welschC = 2.9846
	huberC  = 1.345
)

// weightFunc returns the reweighting function for dist, which maps a
// residual to the weight of its point in the next least squares step.
func weightFunc(dist pointset.DistanceType, param float64) (func(r float64) float64, error) {
	pick := func(def float64) float64 {
		if param > 0 {
			return param
		}
		return def
	}
	switch dist {
	case pointset.DistL2:
		return func(float64) float64 { return 1 }, nil
	case pointset.DistL1:
		return func(r float64) float64 { return 1 / max(r, 1e-6) }, nil
	case pointset.DistL12:
		return func(r float64) float64 { return 1 / math.Sqrt(1+r*r/2) }, nil
	case pointset.DistFair:
		c := pick(fairC)
		return func(r float64) float64 { return 1 / (1 + r/c) }, nil
	case pointset.DistWelsch:
		c := pick(welschC)
		return func(r float64) float64 { return math.Exp(-(r / c) * (r / c)) }, nil
	case pointset.DistHuber:
		c := pick(huberC)
		return func(r float64) float64 {
			if r < c {
				return 1
			}
			return c / r
		}, nil
	default:
		return nil, fmt.Errorf("distance type %v: %w", dist, ErrUnsupported)
	}
}

// line is a line through pt with unit direction dir.
type line struct {
	dir pointset.Vec2
	pt  pointset.Point
}

func (l line) distance(pt pointset.Point) float64 {
	return math.Abs(l.dir.Cross(pt.Sub(l.pt)))
}

// fitWeighted returns the weighted total least squares line: the principal
// axis of the weighted covariance of the points, through their weighted
// mean.
func fitWeighted(points []pointset.Point, w []float64) (line, bool) {
	var sw, sx, sy float64
	for i, pt := range points {
		sw += w[i]
		sx += w[i] * pt.X
		sy += w[i] * pt.Y
	}
	if sw == 0 || math.IsInf(sw, 0) || math.IsNaN(sw) {
		return line{}, false
	}
	mean := pointset.Pt(sx/sw, sy/sw)

	var dx2, dy2, dxy float64
	for i, pt := range points {
		d := pt.Sub(mean)
		dx2 += w[i] * d.X * d.X
		dy2 += w[i] * d.Y * d.Y
		dxy += w[i] * d.X * d.Y
	}
	t := 0.5 * math.Atan2(2*dxy, dx2-dy2)
	return line{dir: pointset.VecFromAngle(t), pt: mean}, true
}

func (e *Engine) FitLine(buf *pointset.Buffer, dist pointset.DistanceType, param, reps, aeps float64) ([4]float32, error) {
	if buf.Count < 2 {
		return [4]float32{}, fmt.Errorf("fitting line to %d points: %w", buf.Count, ErrTooFewPoints)
	}
	weight, err := weightFunc(dist, param)
	if err != nil {
		return [4]float32{}, err
	}

	points := buf.Points()
	w := make([]float64, len(points))
	for i := range w {
		w[i] = 1
	}
	l, ok := fitWeighted(points, w)
	if !ok {
		return [4]float32{}, fmt.Errorf("fitting line: %w", ErrDegenerate)
	}

	if dist != pointset.DistL2 {
		iter := 0
		for ; iter < e.cfg.MaxIterations; iter++ {
			for i, pt := range points {
				w[i] = weight(l.distance(pt))
			}
			next, ok := fitWeighted(points, w)
			if !ok {
				return [4]float32{}, fmt.Errorf("fitting line: %w", ErrDegenerate)
			}
			dAngle := math.Acos(min(math.Abs(next.dir.Dot(l.dir)), 1))
			dPos := l.distance(next.pt)
			l = next
			if dAngle < aeps && dPos < reps {
				break
			}
		}
		e.logger().Debug("fitted line",
			slog.String("dist", dist.String()),
			slog.Int("points", len(points)),
			slog.Int("iterations", iter))
	}

	return [4]float32{
		float32(l.dir.X), float32(l.dir.Y),
		float32(l.pt.X), float32(l.pt.Y),
	}, nil
}
