package planar

import "fmt"

// Edge is one occupied cell of an [Adjacency]. I ≥ J always holds; I == J marks a
// self-edge. Count is 1 unless multi-edges are enabled.
type Edge struct {
	I     int `json:"i"`
	J     int `json:"j"`
	Count int `json:"count"`
}

// IsLoop reports whether the edge is a self-edge.
func (e Edge) IsLoop() bool { return e.I == e.J }

// Adjacency is a lower-triangular edge-count matrix over vertex indices.
//
// Row i has i+1 cells. Cell (i, j) with j < i stores the pair {i, j}; cell (i, i)
// is the self slot. Pairs are always stored under (max, min); there is no mirrored
// upper triangle.
type Adjacency struct {
	rows [][]int
}

// NewAdjacency returns an empty adjacency for n vertices.
func NewAdjacency(n int) *Adjacency {
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, i+1)
	}
	return &Adjacency{rows: rows}
}

// Len returns the number of vertices the matrix is sized for.
func (a *Adjacency) Len() int { return len(a.rows) }

// canonical orders an index pair as (max, min).
func canonical(i, j int) (int, int) {
	if i < j {
		return j, i
	}
	return i, j
}

func (a *Adjacency) check(i, j int) {
	if i < 0 || j < 0 || i >= len(a.rows) || j >= len(a.rows) {
		panic(fmt.Sprintf("planar: adjacency index (%d,%d) out of range [0,%d)", i, j, len(a.rows)))
	}
}

// Count returns the number of edges between i and j, in either order.
func (a *Adjacency) Count(i, j int) int {
	a.check(i, j)
	i, j = canonical(i, j)
	return a.rows[i][j]
}

// Has reports whether at least one edge joins i and j.
func (a *Adjacency) Has(i, j int) bool { return a.Count(i, j) > 0 }

// Set marks the pair as joined by exactly one edge.
func (a *Adjacency) Set(i, j int) {
	a.check(i, j)
	i, j = canonical(i, j)
	a.rows[i][j] = 1
}

// Add adds n parallel edges between i and j.
func (a *Adjacency) Add(i, j, n int) {
	a.check(i, j)
	i, j = canonical(i, j)
	a.rows[i][j] += n
}

// EdgeCount returns the sum of all cells.
func (a *Adjacency) EdgeCount() int {
	total := 0
	for _, row := range a.rows {
		for _, n := range row {
			total += n
		}
	}
	return total
}

// Edges lists the occupied cells in row-major order (i ascending, then j
// ascending, self slot last in its row).
func (a *Adjacency) Edges() []Edge {
	var edges []Edge
	for i, row := range a.rows {
		for j, n := range row {
			if n > 0 {
				edges = append(edges, Edge{I: i, J: j, Count: n})
			}
		}
	}
	return edges
}

// Neighbors returns the distinct vertices joined to i, ascending. Self-edges
// are not included.
func (a *Adjacency) Neighbors(i int) []int {
	a.check(i, i)
	var out []int
	for j := 0; j < i; j++ {
		if a.rows[i][j] > 0 {
			out = append(out, j)
		}
	}
	for k := i + 1; k < len(a.rows); k++ {
		if a.rows[k][i] > 0 {
			out = append(out, k)
		}
	}
	return out
}

// Degree returns the number of edge ends at i. A self-edge contributes two.
func (a *Adjacency) Degree(i int) int {
	a.check(i, i)
	d := 2 * a.rows[i][i]
	for j := 0; j < i; j++ {
		d += a.rows[i][j]
	}
	for k := i + 1; k < len(a.rows); k++ {
		d += a.rows[k][i]
	}
	return d
}

// Clone returns a deep copy.
func (a *Adjacency) Clone() *Adjacency {
	rows := make([][]int, len(a.rows))
	for i, row := range a.rows {
		rows[i] = append([]int(nil), row...)
	}
	return &Adjacency{rows: rows}
}
