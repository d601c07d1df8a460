package pipeline

import (
	"bytes"
	"context"
	"fmt"

	"github.com/matzehuels/planargrid/pkg/graph"
	"github.com/matzehuels/planargrid/pkg/planar"
	"github.com/matzehuels/planargrid/pkg/render"
	"github.com/matzehuels/planargrid/pkg/render/dot"
	"github.com/matzehuels/planargrid/pkg/render/raster"
	"github.com/matzehuels/planargrid/pkg/render/vector"
)

// Render generates output artifacts in the requested formats.
// Options must already be validated.
func Render(ctx context.Context, g *planar.Graph, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if _, done := artifacts[format]; done {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := renderFormat(ctx, g, format, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, g *planar.Graph, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatPNG:
		bg, err := ParseBackground(opts.Background)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := raster.RenderPNG(g, &buf, raster.Options{Resolution: opts.Resolution, Background: bg}); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatSVG:
		return svgBytes(g, opts), nil
	case FormatPDF:
		return renderPDF(ctx, g, opts)
	case FormatDOT:
		return []byte(dot.ToDOT(g, dot.Options{})), nil
	case FormatNeato:
		return dot.RenderSVG(ctx, dot.ToDOT(g, dot.Options{}))
	case FormatJSON:
		return graph.MarshalGraph(g)
	default:
		return nil, ValidateFormat(format)
	}
}

func svgBytes(g *planar.Graph, opts Options) []byte {
	return vector.Bytes(g, vector.Options{Resolution: opts.Resolution, Background: opts.Background})
}

func renderPDF(ctx context.Context, g *planar.Graph, opts Options) ([]byte, error) {
	return render.ToPDF(ctx, svgBytes(g, opts))
}
