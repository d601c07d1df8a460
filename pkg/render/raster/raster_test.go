package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/matzehuels/planargrid/pkg/geom"
	"github.com/matzehuels/planargrid/pkg/planar"
)

// unitSquare is the 4-cycle on a 2x2 grid.
func unitSquare() *planar.Graph {
	vs := planar.VertexSet{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0, 1), geom.Pt(1, 1)}
	adj := planar.NewAdjacency(len(vs))
	adj.Set(1, 0)
	adj.Set(2, 0)
	adj.Set(3, 1)
	adj.Set(3, 2)
	return planar.FromParts(2, vs, adj)
}

func rgba(c color.Color) (r, g, b, a uint8) {
	cr, cg, cb, ca := c.RGBA()
	return uint8(cr >> 8), uint8(cg >> 8), uint8(cb >> 8), uint8(ca >> 8)
}

func TestRender(t *testing.T) {
	img := Render(unitSquare(), DefaultOptions())

	if got := img.Bounds().Dx(); got != 800 {
		t.Fatalf("width = %d, want 800", got)
	}

	tests := []struct {
		name       string
		x, y       int
		r, g, b, a uint8
	}{
		{"VertexIsBlack", 200, 200, 0, 0, 0, 255},
		{"FirstEdgeIsRed", 400, 200, 255, 0, 0, 255},
		{"FaceIsBackground", 400, 400, 255, 255, 255, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := rgba(img.At(tt.x, tt.y))
			if r != tt.r || g != tt.g || b != tt.b || a != tt.a {
				t.Errorf("pixel (%d,%d) = %d,%d,%d,%d, want %d,%d,%d,%d",
					tt.x, tt.y, r, g, b, a, tt.r, tt.g, tt.b, tt.a)
			}
		})
	}
}

func TestRenderSecondEdgeHue(t *testing.T) {
	img := Render(unitSquare(), DefaultOptions())
	// Edge 1 joins (0,0) and (0,1): hsl(10, 100%, 50%)
	r, g, b, _ := rgba(img.At(200, 400))
	if r != 255 || b != 0 || g < 40 || g > 45 {
		t.Errorf("edge 1 pixel = %d,%d,%d, want ~255,42,0", r, g, b)
	}
}

func TestRenderLoop(t *testing.T) {
	vs := planar.VertexSet{geom.Pt(0, 0)}
	adj := planar.NewAdjacency(1)
	adj.Add(0, 0, 1)
	g := planar.FromParts(2, vs, adj)

	img := Render(g, DefaultOptions())

	// Loop circle: centre (200,140), radius 60.
	if r, g, b, _ := rgba(img.At(200, 80)); r != 255 || g != 0 || b != 0 {
		t.Errorf("loop outline = %d,%d,%d, want red", r, g, b)
	}
	if r, g, b, _ := rgba(img.At(200, 140)); r != 255 || g != 255 || b != 255 {
		t.Errorf("loop interior = %d,%d,%d, want background", r, g, b)
	}
}

func TestRenderTransparent(t *testing.T) {
	img := Render(unitSquare(), Options{Resolution: 100})
	if _, _, _, a := rgba(img.At(50, 50)); a != 0 {
		t.Errorf("alpha = %d, want 0 without background", a)
	}
	if got := img.Bounds().Dx(); got != 100 {
		t.Errorf("width = %d, want 100", got)
	}
}

func TestRenderEmpty(t *testing.T) {
	g := planar.FromParts(0, nil, planar.NewAdjacency(0))
	img := Render(g, Options{})
	if got := img.Bounds().Dx(); got != 800 {
		t.Errorf("width = %d, want default 800", got)
	}
}

func TestRenderPNG(t *testing.T) {
	g := planar.Generate(planar.Config{GridSize: 12, VertexProbability: 0.5, RelativePotentialEdgeCount: 2}, 3)

	var buf bytes.Buffer
	if err := RenderPNG(g, &buf, Options{Resolution: 240, Background: color.White}); err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 240 || b.Dy() != 240 {
		t.Errorf("size = %v, want 240x240", b)
	}
}
