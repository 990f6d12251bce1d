package pointset

import (
	"image"
	"sync"
)

// Buffer is the point layout that engines consume: Count points stored as
// consecutive x, y pairs of 32-bit floats in Data.
type Buffer struct {
	Data  []float32
	Count int

	// Bounds caches the integer bounding rectangle of the points. Engines
	// fill it when asked to update it, see [Engine.BoundingRect].
	Bounds *image.Rectangle
}

// NewBuffer returns a buffer holding points.
func NewBuffer(points []Point) *Buffer {
	buf := &Buffer{}
	buf.fill(points)
	return buf
}

func (buf *Buffer) fill(points []Point) {
	buf.Data = buf.Data[:0]
	for _, pt := range points {
		buf.Data = append(buf.Data, float32(pt.X), float32(pt.Y))
	}
	buf.Count = len(points)
	buf.Bounds = nil
}

// At returns the i-th point.
func (buf *Buffer) At(i int) Point {
	return Pt(float64(buf.Data[2*i]), float64(buf.Data[2*i+1]))
}

// Points returns the points stored in the buffer.
func (buf *Buffer) Points() []Point {
	out := make([]Point, buf.Count)
	for i := range out {
		out[i] = buf.At(i)
	}
	return out
}

var bufferPool = sync.Pool{
	New: func() any { return new(Buffer) },
}

// acquireBuffer returns a pooled buffer holding points. It must be handed
// back with releaseBuffer and not be used afterwards.
func acquireBuffer(points []Point) *Buffer {
	buf := bufferPool.Get().(*Buffer)
	buf.fill(points)
	return buf
}

func releaseBuffer(buf *Buffer) {
	buf.Data = buf.Data[:0]
	buf.Count = 0
	buf.Bounds = nil
	bufferPool.Put(buf)
}
