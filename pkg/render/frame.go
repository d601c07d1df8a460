package render

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/planargrid/pkg/geom"
)

// DefaultResolution is the side length in pixels of rendered images.
const DefaultResolution = 800

// Sizes in grid cells.
const (
	EdgeWidth    = 0.025
	VertexRadius = 0.05
	LoopRadius   = 0.15
)

// hueStep is the hue advance in degrees between consecutive edges.
const hueStep = 10

// Frame maps grid coordinates to a square pixel canvas.
type Frame struct {
	Resolution int
	GridSize   int
	Scale      float64 // pixels per cell
}

// NewFrame returns the frame for a gridSize grid drawn at resolution pixels.
// A zero resolution selects DefaultResolution. An empty grid is treated as
// one cell wide.
func NewFrame(gridSize, resolution int) Frame {
	if resolution <= 0 {
		resolution = DefaultResolution
	}
	cells := max(gridSize, 1)
	return Frame{
		Resolution: resolution,
		GridSize:   gridSize,
		Scale:      float64(resolution) / float64(cells),
	}
}

// Pixel returns the canvas position of grid point p.
func (f Frame) Pixel(p geom.Point) (x, y float64) {
	return (float64(p.X) + 0.5) * f.Scale, (float64(p.Y) + 0.5) * f.Scale
}

// Cells converts a length in grid cells to pixels.
func (f Frame) Cells(n float64) float64 { return n * f.Scale }

// StrokeWidth returns the stroke width in pixels for an edge drawn count times.
func (f Frame) StrokeWidth(count int) float64 {
	return f.Cells(EdgeWidth * float64(max(count, 1)))
}

// LoopCenter returns the centre of the circle that represents a self-loop
// on p. The circle touches p from above.
func (f Frame) LoopCenter(p geom.Point) (x, y float64) {
	x, y = f.Pixel(p)
	return x, y - f.Cells(LoopRadius)
}

// EdgeHue returns the hue in degrees of the edge with the given enumeration index.
func EdgeHue(index int) float64 {
	return math.Mod(float64(index*hueStep), 360)
}

// EdgeColor returns hsl(index·10, 100%, 50%).
func EdgeColor(index int) colorful.Color {
	return colorful.Hsl(EdgeHue(index), 1, 0.5)
}

// EdgeCSS returns the edge colour as a CSS hsl() value.
func EdgeCSS(index int) string {
	return fmt.Sprintf("hsl(%d, 100%%, 50%%)", int(EdgeHue(index)))
}
