package dot

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/planargrid/pkg/geom"
	"github.com/matzehuels/planargrid/pkg/planar"
)

func path3() *planar.Graph {
	vs := planar.VertexSet{geom.Pt(0, 0), geom.Pt(2, 0), geom.Pt(2, 2)}
	adj := planar.NewAdjacency(len(vs))
	adj.Set(1, 0)
	adj.Add(2, 1, 2)
	adj.Add(0, 0, 1)
	return planar.FromParts(3, vs, adj)
}

func TestToDOT(t *testing.T) {
	src := ToDOT(path3(), Options{CellSize: 1})

	wants := []string{
		"graph G {",
		"layout=neato;",
		`v0 [pos="0,2!"];`,
		`v1 [pos="2,2!"];`,
		`v2 [pos="2,0!"];`,
		`v0 -- v0 [color="#ff0000", penwidth=1];`,
		`v1 -- v0 [color="#ff2`,
		`v2 -- v1 [color="#ff5500", penwidth=2];`,
	}
	for _, w := range wants {
		if !strings.Contains(src, w) {
			t.Errorf("ToDOT() missing %q\n%s", w, src)
		}
	}
	if strings.Contains(src, "xlabel") {
		t.Error("ToDOT() should not label vertices by default")
	}
}

func TestToDOT_Labels(t *testing.T) {
	src := ToDOT(path3(), Options{Labels: true})
	if !strings.Contains(src, `xlabel="2"`) {
		t.Errorf("ToDOT() labels missing:\n%s", src)
	}
	// default cell size halves the coordinates
	if !strings.Contains(src, `pos="1,0!"`) {
		t.Errorf("ToDOT() default cell size:\n%s", src)
	}
}

func TestToDOT_Empty(t *testing.T) {
	g := planar.FromParts(0, nil, planar.NewAdjacency(0))
	src := ToDOT(g, Options{})
	if strings.Contains(src, "--") {
		t.Errorf("empty graph should have no edges:\n%s", src)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		want string
	}{
		{
			name: "with viewBox",
			svg:  `<svg viewBox="10 20 800 600" xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 800.00 600.00" width="800" height="600">content</svg>`,
		},
		{
			name: "no viewBox",
			svg:  `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
		},
		{
			name: "zero dimensions",
			svg:  `<svg viewBox="0 0 0 0">content</svg>`,
			want: `<svg viewBox="0 0 0 0">content</svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeViewBox([]byte(tt.svg))
			if string(got) != tt.want {
				t.Errorf("normalizeViewBox() = %q, want %q", string(got), tt.want)
			}
		})
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(path3(), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output missing <svg> tag")
	}
}

func TestRenderSVG_InvalidDOT(t *testing.T) {
	_, err := RenderSVG(context.Background(), `not valid DOT {{{`)
	if err == nil {
		t.Error("RenderSVG() should return error for invalid DOT")
	}
}
