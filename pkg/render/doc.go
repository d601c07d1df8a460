// Package render holds what the planar graph renderers share: the mapping
// from grid cells to pixels, edge colours and stroke sizes, and SVG
// conversion through rsvg-convert.
//
// # Renderers
//
//   - [raster]: native anti-aliased PNG
//   - [vector]: SVG
//   - [dot]: Graphviz DOT with pinned positions, rendered by neato
//
// All renderers read a finished *planar.Graph and never modify it.
//
// # Drawing Model
//
// The grid is scaled so that gridSize cells fill the target resolution and
// shifted by half a cell, so vertex (x, y) lands at ((x+0.5)·s, (y+0.5)·s)
// with s = resolution / gridSize. Edges are stroked in enumeration order
// with hue edgeIndex·10°, full saturation, half lightness; vertices are
// black discs drawn on top.
//
//	f := render.NewFrame(g.GridSize(), render.DefaultResolution)
//	x, y := f.Pixel(g.Vertex(0))
//
// # Format Conversion
//
// [ToPDF] converts any SVG using the external rsvg-convert tool (from
// librsvg). Without it PDF export fails with an UNSUPPORTED error.
//
//	svg, _ := vector.Bytes(g, vector.Options{})
//	pdf, err := render.ToPDF(ctx, svg)
package render
