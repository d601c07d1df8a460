package planar

import "github.com/matzehuels/planargrid/pkg/geom"

// VertexSet is the ordered vertex sequence of a graph. A vertex is identified by
// its index, which is assigned at sampling time and never changes.
type VertexSet []geom.Point

// Len returns the number of vertices.
func (vs VertexSet) Len() int { return len(vs) }

// SampleVertices keeps every cell of the gridSize × gridSize grid independently
// with probability vertexProbability. Cells are visited row by row (y outer,
// x inner), which fixes the index order. Exactly gridSize² values are drawn from
// rng. The result may be empty.
func SampleVertices(rng Source, gridSize int, vertexProbability float64) VertexSet {
	var vs VertexSet
	for y := 0; y < gridSize; y++ {
		for x := 0; x < gridSize; x++ {
			if rng.Float64() < vertexProbability {
				vs = append(vs, geom.Pt(x, y))
			}
		}
	}
	return vs
}
