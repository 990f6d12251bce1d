package geomengine

import (
	"image"
	"math"

	"honnef.co/go/pointset"
)

// BoundingRect returns the smallest integer rectangle that contains all
// points, treating each point as the pixel it falls into. An empty buffer
// has an empty rectangle.
func (e *Engine) BoundingRect(buf *pointset.Buffer, update bool) (image.Rectangle, error) {
	if !update && buf.Bounds != nil {
		return *buf.Bounds, nil
	}

	var r image.Rectangle
	if buf.Count > 0 {
		minX, minY := buf.Data[0], buf.Data[1]
		maxX, maxY := minX, minY
		for i := 1; i < buf.Count; i++ {
			x, y := buf.Data[2*i], buf.Data[2*i+1]
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
		x0 := int(math.Floor(float64(minX)))
		y0 := int(math.Floor(float64(minY)))
		x1 := int(math.Floor(float64(maxX))) + 1
		y1 := int(math.Floor(float64(maxY))) + 1
		r = image.Rect(x0, y0, x1, y1)
	}

	if update {
		buf.Bounds = &r
	}
	return r, nil
}
