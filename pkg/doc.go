// Package pkg provides the core libraries for planargrid, a generator of random
// planar graphs on an integer grid.
//
// # Overview
//
// planargrid samples vertices on a square grid, joins random pairs with
// straight segments whenever doing so keeps the drawing planar, and reports
// the resulting vertex, edge, component and face counts. The pkg directory is
// organized into four main areas:
//
//  1. Domain logic: [geom], [planar] and [graph]
//  2. Rendering: [render] with its [render/raster], [render/vector] and [render/dot] backends
//  3. Infrastructure: [cache], [store], [config], [observability] and [errors]
//  4. Orchestration: [pipeline] and [server]
//
// # Architecture
//
// The typical data flow through planargrid:
//
//	Options (grid size, probabilities, seed)
//	         ↓
//	    [planar] package (sample vertices, build edges, derive invariants)
//	         ↓
//	    [graph] package (JSON node-link document)
//	         ↓
//	    [render] packages (PNG/SVG/PDF/DOT)
//
// [pipeline] wraps these stages with caching so the CLI and the HTTP server
// behave the same way.
//
// # Quick Start
//
// Generate a graph and render it to PNG:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/planargrid/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	res, err := runner.Execute(context.Background(), pipeline.Options{
//	    GridSize:                   6,
//	    VertexProbability:          0.3,
//	    RelativePotentialEdgeCount: 0.5,
//	    Seed:                       42,
//	    Formats:                    []string{pipeline.FormatPNG},
//	})
//	fmt.Println(res.Stats.V, res.Stats.E, res.Stats.C, res.Stats.F)
//
// Without the pipeline, call the generator directly:
//
//	g := planar.Generate(planar.Config{GridSize: 6, VertexProbability: 0.3}, 42)
//
// # Main Packages
//
// [geom] - Integer points, orientation and the proper segment crossing test.
//
// [planar] - Vertex sampling, planar edge construction, components and faces.
//
// [graph] - Serialization of generated graphs (JSON node-link format).
//
// [render] - Pixel framing shared by the raster and vector backends, plus
// SVG to PDF conversion.
//
// [cache] - Content-addressed caching with file, Redis and null backends.
//
// [store] - Archive of generated runs with memory, file and MongoDB backends.
//
// [pipeline] - Complete pipeline (generate → render) used by CLI and server.
//
// [server] - HTTP API exposing the pipeline and the run archive.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/planar/...     # Specific package
//	go test -run Example         # Examples only
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/planargrid/pkg/geom
// [planar]: https://pkg.go.dev/github.com/matzehuels/planargrid/pkg/planar
// [graph]: https://pkg.go.dev/github.com/matzehuels/planargrid/pkg/graph
// [render]: https://pkg.go.dev/github.com/matzehuels/planargrid/pkg/render
// [render/raster]: https://pkg.go.dev/github.com/matzehuels/planargrid/pkg/render/raster
// [render/vector]: https://pkg.go.dev/github.com/matzehuels/planargrid/pkg/render/vector
// [render/dot]: https://pkg.go.dev/github.com/matzehuels/planargrid/pkg/render/dot
// [cache]: https://pkg.go.dev/github.com/matzehuels/planargrid/pkg/cache
// [store]: https://pkg.go.dev/github.com/matzehuels/planargrid/pkg/store
// [config]: https://pkg.go.dev/github.com/matzehuels/planargrid/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/planargrid/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/planargrid/pkg/errors
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/planargrid/pkg/pipeline
// [server]: https://pkg.go.dev/github.com/matzehuels/planargrid/pkg/server
package pkg
