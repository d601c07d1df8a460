// Package graph provides the serialization format for generated planar graphs.
//
// This package defines the canonical wire format for planargrid's graph data,
// used for JSON files, API responses, the Redis/file cache and the MongoDB
// run archive (the structs carry both json and bson tags).
//
// # Architecture
//
// The package sits at the serialization boundary between the internal
// representation and external formats:
//
//   - [Graph]: Serialization type (this package)
//   - pkg/planar.Graph: Internal, immutable, analyzed graph
//
// Use [FromPlanar]/[ToPlanar] to convert between them.
//
// # Format
//
//	{
//	  "grid_size": 4,
//	  "seed": 42,
//	  "stats": {"v": 3, "e": 2, "c": 1, "f": 1},
//	  "vertices": [{"id": 0, "x": 1, "y": 0}, ...],
//	  "edges": [{"from": 1, "to": 0, "count": 1}, ...]
//	}
//
// Edge endpoints are vertex indices with from ≥ to, matching the
// lower-triangular adjacency storage. A self-loop has from == to.
//
// Common operations:
//
//	g, _ := graph.ReadGraphFile("grid.json")   // File → planar.Graph
//	graph.WriteGraphFile(g, "output.json")     // planar.Graph → File
//	data, _ := graph.MarshalGraph(g)           // planar.Graph → []byte
//	parsed, _ := graph.UnmarshalGraph(data)    // []byte → Graph
//
// # Concurrency
//
// All functions are safe for concurrent use.
package graph
