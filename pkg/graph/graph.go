package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/planargrid/pkg/planar"
)

// =============================================================================
// Graph Serialization API
// =============================================================================

// MarshalGraph converts a planar graph to indented JSON bytes.
func MarshalGraph(g *planar.Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := encode(FromPlanar(g), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteGraphFile writes a planar graph to a JSON file.
// The file is created with 0644 permissions.
func WriteGraphFile(g *planar.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return encode(FromPlanar(g), f)
}

// WriteGraph writes a planar graph as JSON to an io.Writer.
func WriteGraph(g *planar.Graph, w io.Writer) error {
	return encode(FromPlanar(g), w)
}

// Write encodes an already converted Graph, keeping fields such as Seed
// that a planar.Graph does not carry.
func Write(gj Graph, w io.Writer) error {
	return encode(gj, w)
}

// ReadGraphFile reads a JSON file and returns the decoded planar graph.
func ReadGraphFile(path string) (*planar.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadGraph(f)
}

// ReadGraph decodes a JSON graph from an io.Reader.
func ReadGraph(r io.Reader) (*planar.Graph, error) {
	var data Graph
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return ToPlanar(data)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func encode(gj Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(gj); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
