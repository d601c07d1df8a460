// Package raster draws planar graphs as anti-aliased PNG images without
// external tools.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/matzehuels/planargrid/pkg/planar"
	"github.com/matzehuels/planargrid/pkg/render"
)

// Options configures PNG rendering.
type Options struct {
	// Resolution is the image side length in pixels. Zero selects
	// render.DefaultResolution.
	Resolution int
	// Background fills the canvas before drawing. Nil leaves it transparent.
	Background color.Color
}

// DefaultOptions returns a white canvas at the default resolution.
func DefaultOptions() Options {
	return Options{Resolution: render.DefaultResolution, Background: color.White}
}

// kappa places cubic Bézier control points for a quarter circle.
const kappa = 0.5522847498

// RenderPNG encodes the drawing of g to w as PNG.
func RenderPNG(g *planar.Graph, w io.Writer, opts Options) error {
	return png.Encode(w, Render(g, opts))
}

// Render draws g onto a new square RGBA image.
func Render(g *planar.Graph, opts Options) *image.RGBA {
	f := render.NewFrame(g.GridSize(), opts.Resolution)
	size := f.Resolution
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if opts.Background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}

	c := &canvas{img: img, r: vector.NewRasterizer(size, size)}

	for idx, e := range g.Edges() {
		col := render.EdgeColor(idx).Clamped()
		width := f.StrokeWidth(e.Count)
		if e.IsLoop() {
			cx, cy := f.LoopCenter(g.Vertex(e.I))
			c.ring(cx, cy, f.Cells(render.LoopRadius), width, col)
			continue
		}
		a, b := g.Segment(e)
		x1, y1 := f.Pixel(a)
		x2, y2 := f.Pixel(b)
		c.line(x1, y1, x2, y2, width, col)
	}

	radius := f.Cells(render.VertexRadius)
	for _, v := range g.Vertices() {
		x, y := f.Pixel(v)
		c.disc(x, y, radius, color.Black)
	}

	return img
}

// canvas fills one shape at a time with a reusable rasterizer.
type canvas struct {
	img *image.RGBA
	r   *vector.Rasterizer
}

func (c *canvas) fill(col color.Color) {
	c.r.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
	b := c.img.Bounds()
	c.r.Reset(b.Dx(), b.Dy())
}

// line strokes a segment with butt caps as a filled quadrilateral.
func (c *canvas) line(x1, y1, x2, y2, width float64, col color.Color) {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2

	c.r.MoveTo(float32(x1+nx), float32(y1+ny))
	c.r.LineTo(float32(x2+nx), float32(y2+ny))
	c.r.LineTo(float32(x2-nx), float32(y2-ny))
	c.r.LineTo(float32(x1-nx), float32(y1-ny))
	c.r.ClosePath()
	c.fill(col)
}

func (c *canvas) disc(cx, cy, radius float64, col color.Color) {
	c.circle(cx, cy, radius, false)
	c.fill(col)
}

// ring strokes a circle outline; the inner contour runs the other way so
// its area cancels out.
func (c *canvas) ring(cx, cy, radius, width float64, col color.Color) {
	c.circle(cx, cy, radius+width/2, false)
	c.circle(cx, cy, max(radius-width/2, 0), true)
	c.fill(col)
}

// circle adds a closed circular path built from four cubic arcs.
func (c *canvas) circle(cx, cy, r float64, reverse bool) {
	k := r * kappa
	sign := 1.0
	if reverse {
		sign = -1
	}
	pt := func(x, y float64) (float32, float32) { return float32(cx + x), float32(cy + sign*y) }

	c.r.MoveTo(pt(r, 0))
	x1, y1 := pt(r, k)
	x2, y2 := pt(k, r)
	x3, y3 := pt(0, r)
	c.r.CubeTo(x1, y1, x2, y2, x3, y3)
	x1, y1 = pt(-k, r)
	x2, y2 = pt(-r, k)
	x3, y3 = pt(-r, 0)
	c.r.CubeTo(x1, y1, x2, y2, x3, y3)
	x1, y1 = pt(-r, -k)
	x2, y2 = pt(-k, -r)
	x3, y3 = pt(0, -r)
	c.r.CubeTo(x1, y1, x2, y2, x3, y3)
	x1, y1 = pt(k, -r)
	x2, y2 = pt(r, -k)
	x3, y3 = pt(r, 0)
	c.r.CubeTo(x1, y1, x2, y2, x3, y3)
	c.r.ClosePath()
}
