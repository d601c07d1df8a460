package planar

import (
	"math"

	"github.com/matzehuels/planargrid/pkg/geom"
)

// Policy selects the optional edge variants. The zero value is the baseline:
// no self-edges and no parallel edges.
type Policy struct {
	// AllowSelfEdges admits a loop when both drawn indices are equal.
	AllowSelfEdges bool `json:"allow_self_edges,omitempty" bson:"allow_self_edges" toml:"allow_self_edges"`
	// AllowMultiEdges lets an already joined pair gain further parallel edges.
	AllowMultiEdges bool `json:"allow_multi_edges,omitempty" bson:"allow_multi_edges" toml:"allow_multi_edges"`
}

// BuildStats counts what happened to the attempts of one [BuildEdges] run.
// Attempts = Admitted + SelfSkipped + Duplicates + ThroughVertex + Crossing.
type BuildStats struct {
	Attempts      int `json:"attempts"`
	Admitted      int `json:"admitted"`
	SelfSkipped   int `json:"self_skipped"`
	Duplicates    int `json:"duplicates"`
	ThroughVertex int `json:"through_vertex"`
	Crossing      int `json:"crossing"`
}

// Rejected returns the number of attempts that did not add an edge.
func (s BuildStats) Rejected() int { return s.Attempts - s.Admitted }

// AttemptBudget returns round(rel × v²), the number of candidate pairs drawn for v
// vertices.
func AttemptBudget(v int, rel float64) int {
	return int(math.Round(rel * float64(v) * float64(v)))
}

// BuildEdges samples candidate edges among vertices and returns the admitted ones.
//
// Each of the AttemptBudget(len(vertices), rel) attempts draws two indices with
// rng.IntN. A candidate is discarded when its segment passes through any other
// vertex or properly crosses an admitted edge; see [geom.SegmentPassesThroughVertex]
// and [geom.SegmentsIntersect]. Both checks scan the full current state. The loop
// always spends its whole budget, so fewer edges than attempts is normal.
func BuildEdges(rng Source, vertices VertexSet, rel float64, policy Policy) (*Adjacency, BuildStats) {
	v := len(vertices)
	adj := NewAdjacency(v)
	stats := BuildStats{}
	if v == 0 {
		return adj, stats
	}

	b := edgeBuilder{vertices: vertices, adj: adj, policy: policy}
	attempts := AttemptBudget(v, rel)
	for p := 0; p < attempts; p++ {
		b.attempt(rng.IntN(v), rng.IntN(v), &stats)
	}
	stats.Attempts = attempts
	return adj, stats
}

// edgeBuilder keeps the admitted segments in a flat list so the crossing scan is
// linear in the number of distinct edges.
type edgeBuilder struct {
	vertices VertexSet
	adj      *Adjacency
	policy   Policy
	segments [][2]int
}

func (b *edgeBuilder) attempt(index1, index2 int, stats *BuildStats) {
	if index1 < index2 {
		index1, index2 = index2, index1
	}

	if index1 == index2 {
		if !b.policy.AllowSelfEdges {
			stats.SelfSkipped++
			return
		}
		b.admitLoop(index1, stats)
		return
	}

	exists := b.adj.Has(index1, index2)
	if exists && !b.policy.AllowMultiEdges {
		stats.Duplicates++
		return
	}

	if b.throughVertex(index1, index2) {
		stats.ThroughVertex++
		return
	}
	if b.crossesEdge(index1, index2) {
		stats.Crossing++
		return
	}

	b.adj.Add(index1, index2, 1)
	if !exists {
		b.segments = append(b.segments, [2]int{index1, index2})
	}
	stats.Admitted++
}

// admitLoop records a self-edge. Loops have no geometric extent, so they are
// never rejected by the intersection tests.
func (b *edgeBuilder) admitLoop(i int, stats *BuildStats) {
	if b.adj.Has(i, i) && !b.policy.AllowMultiEdges {
		stats.Duplicates++
		return
	}
	b.adj.Add(i, i, 1)
	stats.Admitted++
}

func (b *edgeBuilder) throughVertex(i, j int) bool {
	a, c := b.vertices[i], b.vertices[j]
	for k, p := range b.vertices {
		if k == i || k == j {
			continue
		}
		if geom.SegmentPassesThroughVertex(a, c, p) {
			return true
		}
	}
	return false
}

func (b *edgeBuilder) crossesEdge(i, j int) bool {
	a, c := b.vertices[i], b.vertices[j]
	for _, s := range b.segments {
		if geom.SegmentsIntersect(a, c, b.vertices[s[0]], b.vertices[s[1]]) {
			return true
		}
	}
	return false
}
