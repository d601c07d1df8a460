package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/planargrid/pkg/planar"
	"github.com/matzehuels/planargrid/pkg/render"
)

// DefaultCellSize is the distance between adjacent grid points in inches.
const DefaultCellSize = 0.5

// Options configures DOT generation.
type Options struct {
	// CellSize is the grid spacing in inches. Zero selects DefaultCellSize.
	CellSize float64
	// Labels shows vertex indices next to the points.
	Labels bool
}

// ToDOT converts g to an undirected Graphviz graph with pinned positions.
func ToDOT(g *planar.Graph, opts Options) string {
	cell := opts.CellSize
	if cell <= 0 {
		cell = DefaultCellSize
	}
	top := max(g.GridSize()-1, 0)

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  splines=line;\n")
	buf.WriteString("  overlap=true;\n")
	fmt.Fprintf(&buf, "  node [shape=point, width=%s, color=black];\n", fmtFloat(2*render.VertexRadius*cell))
	buf.WriteString("\n")

	for i, v := range g.Vertices() {
		attrs := fmt.Sprintf("pos=\"%s,%s!\"", fmtFloat(float64(v.X)*cell), fmtFloat(float64(top-v.Y)*cell))
		if opts.Labels {
			attrs += fmt.Sprintf(", xlabel=\"%d\"", i)
		}
		fmt.Fprintf(&buf, "  %s [%s];\n", nodeID(i), attrs)
	}

	buf.WriteString("\n")
	for idx, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %s -- %s [color=%q, penwidth=%s];\n",
			nodeID(e.I), nodeID(e.J), render.EdgeColor(idx).Hex(), fmtFloat(penWidth(e.Count)))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(i int) string { return "v" + strconv.Itoa(i) }

// penWidth scales Graphviz's default 1pt line by the edge multiplicity.
func penWidth(count int) float64 { return float64(max(count, 1)) }

func fmtFloat(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// RenderSVG renders DOT source to SVG using Graphviz's neato engine.
func RenderSVG(ctx context.Context, src string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(src))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element with an origin-based viewBox
// and explicit pixel dimensions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
