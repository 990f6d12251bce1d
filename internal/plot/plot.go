// Package plot renders point sets and the shapes derived from them to
// raster images.
package plot

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"honnef.co/go/pointset"
)

// Canvas maps a rectangle of world coordinates onto an image. The world's y
// axis points up.
type Canvas struct {
	img   *image.RGBA
	world pointset.Rect
	// world to pixel transform
	aff pointset.Affine
}

// NewCanvas returns a canvas of width×height pixels showing world, scaled
// uniformly and surrounded by margin pixels on every side. The canvas is
// filled with bg.
func NewCanvas(world pointset.Rect, width, height, margin int, bg color.Color) *Canvas {
	world = world.Abs()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	innerW := float64(width - 2*margin)
	innerH := float64(height - 2*margin)
	ww, wh := world.Width(), world.Height()
	if ww == 0 {
		ww = 1
	}
	if wh == 0 {
		wh = 1
	}
	s := min(innerW/ww, innerH/wh)
	// Center the world and flip y.
	offX := float64(margin) + (innerW-s*world.Width())/2
	offY := float64(margin) + (innerH-s*world.Height())/2
	aff := pointset.Translate(pointset.Vec(offX, float64(height)-offY)).
		Mul(pointset.Scale(s, -s)).
		Mul(pointset.Translate(pointset.Vec(-world.X0, -world.Y0)))
	return &Canvas{img: img, world: world, aff: aff}
}

// Image returns the canvas' image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// ToPixel maps a world point to pixel coordinates.
func (c *Canvas) ToPixel(pt pointset.Point) pointset.Point {
	return pt.Transform(c.aff)
}

func (c *Canvas) rasterizer() *vector.Rasterizer {
	b := c.img.Bounds()
	return vector.NewRasterizer(b.Dx(), b.Dy())
}

func (c *Canvas) fill(r *vector.Rasterizer, col color.Color) {
	r.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// addQuad adds the rectangle of the given pixel width around the pixel
// segment p0–p1.
func addQuad(r *vector.Rasterizer, p0, p1 pointset.Point, width float64) {
	d := p1.Sub(p0)
	if d.Hypot2() == 0 {
		return
	}
	n := pointset.Vec(-d.Y, d.X).Normalize().Mul(width / 2)
	a := p0.Translate(n)
	b := p1.Translate(n)
	cc := p1.Translate(n.Negate())
	dd := p0.Translate(n.Negate())
	r.MoveTo(float32(a.X), float32(a.Y))
	r.LineTo(float32(b.X), float32(b.Y))
	r.LineTo(float32(cc.X), float32(cc.Y))
	r.LineTo(float32(dd.X), float32(dd.Y))
	r.ClosePath()
}

// StrokeLines draws each line with the given pixel width.
func (c *Canvas) StrokeLines(lines []pointset.Line, width float64, col color.Color) {
	r := c.rasterizer()
	for _, l := range lines {
		addQuad(r, c.ToPixel(l.P0), c.ToPixel(l.P1), width)
	}
	c.fill(r, col)
}

// StrokeInfiniteLine draws the line through pt with direction dir across
// the whole canvas.
func (c *Canvas) StrokeInfiniteLine(dir pointset.Vec2, pt pointset.Point, width float64, col color.Color) {
	reach := math.Hypot(c.world.Width(), c.world.Height()) + pt.Distance(c.world.Center())
	d := dir.Normalize().Mul(reach)
	c.StrokeLines([]pointset.Line{{P0: pt.Translate(d.Negate()), P1: pt.Translate(d)}}, width, col)
}

// StrokeEllipse draws the outline of e, approximated by segments.
func (c *Canvas) StrokeEllipse(e pointset.Ellipse, width float64, col color.Color) {
	const n = 64
	pts := make([]pointset.Point, n)
	for i := range pts {
		pts[i] = e.Eval(2 * math.Pi * float64(i) / n)
	}
	lines, err := pointset.Polyline(pts, true)
	if err != nil {
		panic("unreachable")
	}
	c.StrokeLines(lines, width, col)
}

// Dots draws a disc of the given pixel radius at every point.
func (c *Canvas) Dots(points []pointset.Point, radius float64, col color.Color) {
	const n = 16
	r := c.rasterizer()
	for _, pt := range points {
		p := c.ToPixel(pt)
		for i := range n {
			th := 2 * math.Pi * float64(i) / n
			q := p.Translate(pointset.VecFromAngle(th).Mul(radius))
			if i == 0 {
				r.MoveTo(float32(q.X), float32(q.Y))
			} else {
				r.LineTo(float32(q.X), float32(q.Y))
			}
		}
		r.ClosePath()
	}
	c.fill(r, col)
}

// WritePNG encodes the canvas as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}
