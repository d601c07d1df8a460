package cache

// Keyer builds cache keys for the pipeline stages.
type Keyer interface {
	// GraphKey identifies a generated graph.
	GraphKey(opts GraphKeyOpts) string
	// ArtifactKey identifies a rendered artifact of the graph with the given hash.
	ArtifactKey(graphHash string, opts ArtifactKeyOpts) string
}

// GraphKeyOpts lists every input of graph generation.
type GraphKeyOpts struct {
	GridSize        int     `json:"grid_size"`
	Probability     float64 `json:"p"`
	RelEdgeCount    float64 `json:"rel"`
	Seed            uint64  `json:"seed"`
	AllowSelfEdges  bool    `json:"self"`
	AllowMultiEdges bool    `json:"multi"`
}

// ArtifactKeyOpts lists every render input besides the graph itself.
type ArtifactKeyOpts struct {
	Format     string `json:"format"`
	Resolution int    `json:"resolution"`
	Background string `json:"background"`
}

// DefaultKeyer hashes key options with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// GraphKey returns "graph:<sha256>".
func (k *DefaultKeyer) GraphKey(opts GraphKeyOpts) string {
	return hashKey("graph", opts)
}

// ArtifactKey returns "artifact:<sha256>".
func (k *DefaultKeyer) ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", graphHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
