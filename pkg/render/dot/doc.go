// Package dot exports planar graphs as Graphviz DOT and renders them with
// the neato engine.
//
// # Overview
//
// Every vertex is pinned to its grid position (pos="x,y!"), so Graphviz
// only draws the embedding and never moves a vertex. Grid rows grow
// downwards while Graphviz y grows upwards; [ToDOT] flips rows so the
// output matches the PNG and SVG renderers.
//
// # Usage
//
//	src := dot.ToDOT(g, dot.Options{})
//	svg, err := dot.RenderSVG(ctx, src)
//
// # Styling
//
// Edges carry the same hsl(edgeIndex·10, 100%, 50%) colour as the other
// renderers, written as a hex RGB value. Parallel edges are a single
// edge with a proportionally larger penwidth; self-loops use Graphviz's
// native loop drawing.
package dot
