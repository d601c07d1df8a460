package graph_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/planargrid/pkg/geom"
	"github.com/matzehuels/planargrid/pkg/graph"
	"github.com/matzehuels/planargrid/pkg/planar"
)

func ExampleWriteGraph() {
	// A path of two edges on a 2x2 grid
	vs := planar.VertexSet{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(1, 1)}
	adj := planar.NewAdjacency(len(vs))
	adj.Set(1, 0)
	adj.Set(2, 1)
	g := planar.FromParts(2, vs, adj)

	var buf bytes.Buffer
	if err := graph.WriteGraph(g, &buf); err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Print(buf.String())
	// Output:
	// {
	//   "grid_size": 2,
	//   "stats": {
	//     "v": 3,
	//     "e": 2,
	//     "c": 1,
	//     "f": 1
	//   },
	//   "vertices": [
	//     {
	//       "id": 0,
	//       "x": 0,
	//       "y": 0
	//     },
	//     {
	//       "id": 1,
	//       "x": 1,
	//       "y": 0
	//     },
	//     {
	//       "id": 2,
	//       "x": 1,
	//       "y": 1
	//     }
	//   ],
	//   "edges": [
	//     {
	//       "from": 1,
	//       "to": 0,
	//       "count": 1
	//     },
	//     {
	//       "from": 2,
	//       "to": 1,
	//       "count": 1
	//     }
	//   ]
	// }
}

func ExampleReadGraph() {
	jsonData := `{
		"grid_size": 3,
		"vertices": [
			{"id": 0, "x": 0, "y": 0},
			{"id": 1, "x": 2, "y": 0},
			{"id": 2, "x": 1, "y": 2},
			{"id": 3, "x": 2, "y": 2}
		],
		"edges": [
			{"from": 1, "to": 0, "count": 1},
			{"from": 2, "to": 0, "count": 1},
			{"from": 2, "to": 1, "count": 1}
		]
	}`

	g, err := graph.ReadGraph(strings.NewReader(jsonData))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Printf("v=%d e=%d c=%d f=%d\n", g.V(), g.E(), g.C(), g.F())
	// Output:
	// v=4 e=3 c=2 f=2
}

func ExampleReadGraphFile() {
	g := planar.Generate(planar.Config{
		GridSize:                   6,
		VertexProbability:          0.5,
		RelativePotentialEdgeCount: 1,
	}, 7)

	path := filepath.Join(os.TempDir(), "planargrid-example.json")
	defer os.Remove(path)

	if err := graph.WriteGraphFile(g, path); err != nil {
		fmt.Println("Error:", err)
		return
	}

	back, err := graph.ReadGraphFile(path)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println("Same stats:", back.Stats() == g.Stats())
	// Output:
	// Same stats: true
}
