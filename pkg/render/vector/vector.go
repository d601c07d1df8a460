// Package vector draws planar graphs as SVG documents.
package vector

import (
	"bytes"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"

	"github.com/matzehuels/planargrid/pkg/planar"
	"github.com/matzehuels/planargrid/pkg/render"
)

// Options configures SVG rendering.
type Options struct {
	// Resolution is the document side length in pixels. Zero selects
	// render.DefaultResolution.
	Resolution int
	// Background is a CSS colour for a full-size backdrop rectangle. Empty
	// leaves the document transparent.
	Background string
}

// RenderSVG writes the drawing of g to w.
func RenderSVG(g *planar.Graph, w io.Writer, opts Options) error {
	data := Bytes(g, opts)
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

// Bytes returns the drawing of g as an SVG document.
func Bytes(g *planar.Graph, opts Options) []byte {
	f := render.NewFrame(g.GridSize(), opts.Resolution)
	size := float64(f.Resolution)

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(size, size)
	canvas.Title(fmt.Sprintf("v=%d e=%d c=%d f=%d", g.V(), g.E(), g.C(), g.F()))
	if opts.Background != "" {
		canvas.Rect(0, 0, size, size, "fill:"+opts.Background)
	}

	canvas.Gid("edges")
	for idx, e := range g.Edges() {
		style := fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g", render.EdgeCSS(idx), f.StrokeWidth(e.Count))
		if e.IsLoop() {
			cx, cy := f.LoopCenter(g.Vertex(e.I))
			canvas.Circle(cx, cy, f.Cells(render.LoopRadius), style)
			continue
		}
		a, b := g.Segment(e)
		x1, y1 := f.Pixel(a)
		x2, y2 := f.Pixel(b)
		canvas.Line(x1, y1, x2, y2, style)
	}
	canvas.Gend()

	canvas.Gid("vertices")
	radius := f.Cells(render.VertexRadius)
	for _, v := range g.Vertices() {
		x, y := f.Pixel(v)
		canvas.Circle(x, y, radius, "fill:#000")
	}
	canvas.Gend()

	canvas.End()
	return buf.Bytes()
}
