// Package planar generates random planar graphs embedded on an integer grid and
// derives their combinatorial invariants.
//
// # Overview
//
// Construction runs three stages in strict sequence, each consuming the finished
// output of the previous one:
//
//  1. [SampleVertices] scans a gridSize × gridSize grid in row-major order and keeps
//     each cell independently with probability vertexProbability.
//  2. [BuildEdges] spends a fixed budget of round(rel × v²) attempts drawing random
//     vertex pairs and admits a pair only if its segment neither runs through
//     another vertex nor properly crosses an admitted edge.
//  3. [Components] and [FaceCount] derive the connected components and the face
//     count f = c + e - v + 1 (Euler's formula for c components).
//
// [New] and [Generate] run the whole pass and return an immutable [Graph]:
//
//	g := planar.Generate(planar.Config{
//	    GridSize:                   6,
//	    VertexProbability:          0.3,
//	    RelativePotentialEdgeCount: 0.5,
//	}, 42)
//	fmt.Println(g.V(), g.E(), g.C(), g.F())
//
// # Randomness
//
// Every random draw goes through a [Source], normally a PCG generator built by
// [NewSource]. The draw order is fixed (one Float64 per grid cell, then two IntN
// per attempt), so a seed fully determines the vertex order and the adjacency.
//
// # Adjacency
//
// [Adjacency] is a lower-triangular count matrix. Row i holds i+1 cells: cells
// j < i are the pairs with smaller indices and cell i is the self slot, which is
// only written when [Policy.AllowSelfEdges] is set. In the baseline policy every
// cell is 0 or 1; with [Policy.AllowMultiEdges] a cell counts parallel edges.
//
// # Empty Graphs
//
// A graph without vertices reports v = e = c = 0 and f = 0. Euler's formula would
// give 1 there, but an empty point set does not subdivide the plane, so the face
// count is pinned to zero.
//
// # Input Domain
//
// The package does not validate its parameters. gridSize must be non-negative,
// vertexProbability must lie in [0, 1] and relativePotentialEdgeCount must be
// non-negative; behaviour outside that domain is undefined. Validation happens at
// the process boundary (see pkg/pipeline).
//
// # Concurrency
//
// Construction is single-threaded. A finished [Graph] is never mutated and is
// safe for concurrent reads.
package planar
