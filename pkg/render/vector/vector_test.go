package vector

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/planargrid/pkg/geom"
	"github.com/matzehuels/planargrid/pkg/planar"
)

func triangleWithLoop() *planar.Graph {
	vs := planar.VertexSet{geom.Pt(0, 0), geom.Pt(2, 0), geom.Pt(1, 2)}
	adj := planar.NewAdjacency(len(vs))
	adj.Set(1, 0)
	adj.Add(2, 0, 2)
	adj.Set(2, 1)
	adj.Add(2, 2, 1)
	return planar.FromParts(3, vs, adj)
}

// countElements parses doc and counts start elements by local name.
func countElements(t *testing.T, doc []byte) map[string]int {
	t.Helper()
	counts := map[string]int{}
	dec := xml.NewDecoder(bytes.NewReader(doc))
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return counts
			}
			t.Fatalf("invalid svg: %v", err)
		}
		if se, ok := tok.(xml.StartElement); ok {
			counts[se.Name.Local]++
		}
	}
}

func TestBytes(t *testing.T) {
	doc := Bytes(triangleWithLoop(), Options{Resolution: 300})
	counts := countElements(t, doc)

	// three straight edges plus one loop circle, three vertex discs
	assert.Equal(t, 1, counts["svg"])
	assert.Equal(t, 3, counts["line"])
	assert.Equal(t, 4, counts["circle"])
	assert.Equal(t, 0, counts["rect"])

	s := string(doc)
	assert.Contains(t, s, "hsl(0, 100%, 50%)")
	assert.Contains(t, s, "hsl(30, 100%, 50%)")
	assert.Contains(t, s, "v=3 e=5 c=1 f=4")
}

func TestBytesBackground(t *testing.T) {
	doc := Bytes(triangleWithLoop(), Options{Background: "white"})
	counts := countElements(t, doc)
	assert.Equal(t, 1, counts["rect"])
	assert.Contains(t, string(doc), "fill:white")
}

func TestBytesMultiEdgeWidth(t *testing.T) {
	// 300px over 3 cells: one edge is 2.5px wide, a doubled edge 5px.
	doc := string(Bytes(triangleWithLoop(), Options{Resolution: 300}))
	assert.Contains(t, doc, "stroke-width:2.5")
	assert.Contains(t, doc, "stroke-width:5")
}

func TestBytesEmpty(t *testing.T) {
	g := planar.FromParts(0, nil, planar.NewAdjacency(0))
	counts := countElements(t, Bytes(g, Options{}))
	assert.Equal(t, 0, counts["line"])
	assert.Equal(t, 0, counts["circle"])
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRenderSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderSVG(triangleWithLoop(), &buf, Options{}))
	assert.True(t, strings.HasPrefix(buf.String(), "<?xml"))

	err := RenderSVG(triangleWithLoop(), failWriter{}, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
