package graph

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/planargrid/pkg/geom"
	"github.com/matzehuels/planargrid/pkg/planar"
)

// =============================================================================
// Graph - Planar Graph Serialization
// =============================================================================

// Graph is the canonical serialization format for generated planar graphs.
// Used for API responses, the run archive, caching and file export.
//
// Vertices are listed in index order and edges in row-major adjacency
// order, so encoding the same graph twice yields identical bytes.
type Graph struct {
	GridSize int          `json:"grid_size" bson:"grid_size"`
	Seed     uint64       `json:"seed,omitempty" bson:"seed,omitempty"`
	Stats    planar.Stats `json:"stats" bson:"stats"`
	Vertices []Vertex     `json:"vertices" bson:"vertices"`
	Edges    []Edge       `json:"edges" bson:"edges"`
}

// Vertex is a grid point together with its index in the vertex set.
type Vertex struct {
	ID int `json:"id" bson:"id"`
	X  int `json:"x" bson:"x"`
	Y  int `json:"y" bson:"y"`
}

// Edge connects two vertex indices. From is the larger index (From == To
// for a self-loop). Count is 1 unless parallel edges were enabled.
type Edge struct {
	From  int `json:"from" bson:"from"`
	To    int `json:"to" bson:"to"`
	Count int `json:"count" bson:"count"`
}

// =============================================================================
// planar.Graph ↔ Graph Conversion
// =============================================================================

// FromPlanar converts a finished graph to its serialization format.
func FromPlanar(g *planar.Graph) Graph {
	vs := g.Vertices()
	es := g.Edges()

	out := Graph{
		GridSize: g.GridSize(),
		Stats:    g.Stats(),
		Vertices: make([]Vertex, len(vs)),
		Edges:    make([]Edge, len(es)),
	}
	for i, p := range vs {
		out.Vertices[i] = Vertex{ID: i, X: p.X, Y: p.Y}
	}
	for i, e := range es {
		out.Edges[i] = Edge{From: e.I, To: e.J, Count: e.Count}
	}
	return out
}

// ToPlanar rebuilds an analyzed planar.Graph from its serialization.
//
// Structural problems (out-of-range coordinates or indices, vertex IDs out
// of order, non-positive counts) are reported as errors. When the stored
// stats are non-zero they must agree with the recomputed ones. Planarity is
// not re-verified.
func ToPlanar(gj Graph) (*planar.Graph, error) {
	if gj.GridSize < 0 {
		return nil, fmt.Errorf("grid size %d is negative", gj.GridSize)
	}

	vertices := make(planar.VertexSet, len(gj.Vertices))
	occupied := make(map[geom.Point]int, len(gj.Vertices))
	for i, vj := range gj.Vertices {
		if vj.ID != i {
			return nil, fmt.Errorf("vertex %d: id %d out of order", i, vj.ID)
		}
		if !inGrid(vj.X, gj.GridSize) || !inGrid(vj.Y, gj.GridSize) {
			return nil, fmt.Errorf("vertex %d: (%d,%d) outside %dx%d grid", i, vj.X, vj.Y, gj.GridSize, gj.GridSize)
		}
		p := geom.Pt(vj.X, vj.Y)
		if j, ok := occupied[p]; ok {
			return nil, fmt.Errorf("vertex %d: %v already taken by vertex %d", i, p, j)
		}
		occupied[p] = i
		vertices[i] = p
	}

	adj := planar.NewAdjacency(len(vertices))
	for _, ej := range gj.Edges {
		if !inGrid(ej.From, len(vertices)) || !inGrid(ej.To, len(vertices)) {
			return nil, fmt.Errorf("edge %d→%d: index out of range", ej.From, ej.To)
		}
		if ej.Count < 1 {
			return nil, fmt.Errorf("edge %d→%d: count %d must be positive", ej.From, ej.To, ej.Count)
		}
		adj.Add(ej.From, ej.To, ej.Count)
	}

	g := planar.FromParts(gj.GridSize, vertices, adj)
	if gj.Stats != (planar.Stats{}) && gj.Stats != g.Stats() {
		return nil, fmt.Errorf("stats mismatch: stored %+v, computed %+v", gj.Stats, g.Stats())
	}
	return g, nil
}

// UnmarshalGraph deserializes JSON bytes to a Graph.
func UnmarshalGraph(data []byte) (Graph, error) {
	var g Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return Graph{}, err
	}
	return g, nil
}

// =============================================================================
// Internal Helpers
// =============================================================================

func inGrid(v, n int) bool { return v >= 0 && v < n }
