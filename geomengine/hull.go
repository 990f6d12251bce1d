package geomengine

import (
	"cmp"
	"fmt"
	"slices"

	"honnef.co/go/pointset"
)

// cross returns the z component of (a−o) × (b−o). It is positive if o, a, b
// turn counter-clockwise in a y-up frame.
func cross(o, a, b pointset.Point) float64 {
	return a.Sub(o).Cross(b.Sub(o))
}

func comparePoints(p1, p2 pointset.Point) int {
	if c := cmp.Compare(p1.X, p2.X); c != 0 {
		return c
	}
	return cmp.Compare(p1.Y, p2.Y)
}

// ConvexHull computes the convex hull with Andrew's monotone chain. Collinear
// points on the hull's edges are omitted. The hull starts at the point with
// the smallest x, and among those the smallest y.
//
// CounterClockwise produces a positive signed area in a y-up frame, which is
// clockwise on screen in a y-down frame.
func (e *Engine) ConvexHull(buf *pointset.Buffer, orientation pointset.Orientation) (*pointset.Buffer, error) {
	if orientation != pointset.Clockwise && orientation != pointset.CounterClockwise {
		return nil, fmt.Errorf("convex hull orientation %v: %w", orientation, ErrUnsupported)
	}
	if buf.Count == 0 {
		return nil, fmt.Errorf("convex hull of 0 points: %w", ErrTooFewPoints)
	}

	points := buf.Points()
	slices.SortFunc(points, comparePoints)
	points = slices.Compact(points)

	hull := make([]pointset.Point, 0, 2*len(points))
	if len(points) < 3 {
		hull = append(hull, points...)
	} else {
		for _, pt := range points {
			for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], pt) <= 0 {
				hull = hull[:len(hull)-1]
			}
			hull = append(hull, pt)
		}
		lower := len(hull) + 1
		for i := len(points) - 2; i >= 0; i-- {
			pt := points[i]
			for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], pt) <= 0 {
				hull = hull[:len(hull)-1]
			}
			hull = append(hull, pt)
		}
		// The last point is the first one again.
		hull = hull[:len(hull)-1]
	}

	if orientation == pointset.Clockwise && len(hull) > 1 {
		slices.Reverse(hull[1:])
	}
	return pointset.NewBuffer(hull), nil
}
