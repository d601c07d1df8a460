package planar

import (
	"slices"

	"github.com/matzehuels/planargrid/pkg/geom"
)

// Config holds the construction parameters of a graph.
type Config struct {
	// GridSize is the side length of the square grid.
	GridSize int `json:"grid_size" bson:"grid_size" toml:"grid_size"`
	// VertexProbability is the per-cell inclusion probability, in [0, 1].
	VertexProbability float64 `json:"vertex_probability" bson:"vertex_probability" toml:"vertex_probability"`
	// RelativePotentialEdgeCount scales v² into the attempt budget.
	RelativePotentialEdgeCount float64 `json:"relative_potential_edge_count" bson:"relative_potential_edge_count" toml:"relative_potential_edge_count"`
	// Policy enables the self-edge and multi-edge variants.
	Policy Policy `json:"policy" bson:"policy" toml:"policy"`
}

// Stats are the four derived invariants of a graph.
type Stats struct {
	V int `json:"v" bson:"v"` // vertices
	E int `json:"e" bson:"e"` // edges, counting parallel edges and loops
	C int `json:"c" bson:"c"` // connected components
	F int `json:"f" bson:"f"` // faces, including the outer face
}

// Graph is a finished planar graph on the grid. It is immutable; every derived
// value is computed once during construction.
type Graph struct {
	gridSize   int
	vertices   VertexSet
	adj        *Adjacency
	components [][]int
	stats      Stats
	build      BuildStats
}

// New builds a graph from cfg, drawing every random value from rng.
func New(cfg Config, rng Source) *Graph {
	vertices := SampleVertices(rng, cfg.GridSize, cfg.VertexProbability)
	adj, build := BuildEdges(rng, vertices, cfg.RelativePotentialEdgeCount, cfg.Policy)
	g := analyze(cfg.GridSize, vertices, adj)
	g.build = build
	return g
}

// Generate builds a graph from cfg with the deterministic source for seed.
func Generate(cfg Config, seed uint64) *Graph {
	return New(cfg, NewSource(seed))
}

// FromParts analyzes an existing vertex set and adjacency, typically decoded from
// storage. The embedding is trusted, not re-checked. adj must be sized for
// len(vertices); both are copied.
func FromParts(gridSize int, vertices VertexSet, adj *Adjacency) *Graph {
	return analyze(gridSize, slices.Clone(vertices), adj.Clone())
}

func analyze(gridSize int, vertices VertexSet, adj *Adjacency) *Graph {
	components := Components(adj)
	v, e, c := len(vertices), adj.EdgeCount(), len(components)
	return &Graph{
		gridSize:   gridSize,
		vertices:   vertices,
		adj:        adj,
		components: components,
		stats:      Stats{V: v, E: e, C: c, F: FaceCount(v, e, c)},
	}
}

// V returns the vertex count.
func (g *Graph) V() int { return g.stats.V }

// E returns the edge count.
func (g *Graph) E() int { return g.stats.E }

// C returns the number of connected components.
func (g *Graph) C() int { return g.stats.C }

// F returns the face count.
func (g *Graph) F() int { return g.stats.F }

// Stats returns v, e, c and f together.
func (g *Graph) Stats() Stats { return g.stats }

// BuildStats returns the attempt breakdown of the edge builder. It is zero for
// graphs created by [FromParts].
func (g *Graph) BuildStats() BuildStats { return g.build }

// GridSize returns the grid side length the graph was sampled on.
func (g *Graph) GridSize() int { return g.gridSize }

// Vertex returns the coordinates of vertex i.
func (g *Graph) Vertex(i int) geom.Point { return g.vertices[i] }

// Vertices returns a copy of the vertex sequence.
func (g *Graph) Vertices() VertexSet { return slices.Clone(g.vertices) }

// Edges lists the admitted edges in row-major order.
func (g *Graph) Edges() []Edge { return g.adj.Edges() }

// EdgeCount returns the number of edges between i and j.
func (g *Graph) EdgeCount(i, j int) int { return g.adj.Count(i, j) }

// Degree returns the degree of vertex i.
func (g *Graph) Degree(i int) int { return g.adj.Degree(i) }

// Adjacency returns a copy of the adjacency matrix.
func (g *Graph) Adjacency() *Adjacency { return g.adj.Clone() }

// Components returns the connected components. Only their number and membership
// are meaningful, not the order of vertices inside the traversal.
func (g *Graph) Components() [][]int {
	out := make([][]int, len(g.components))
	for i, c := range g.components {
		out[i] = slices.Clone(c)
	}
	return out
}

// Segment returns the endpoints of edge e.
func (g *Graph) Segment(e Edge) (geom.Point, geom.Point) {
	return g.vertices[e.I], g.vertices[e.J]
}
