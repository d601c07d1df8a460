// Package pipeline provides the generate → render pipeline for planargrid.
//
// This package implements the pipeline used by the CLI, the HTTP server and
// batch runs. Centralizing it keeps defaults, validation and caching
// identical across entry points.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Generate: sample vertices, build edges, analyze (pkg/planar)
//  2. Render: produce artifacts in the requested formats (pkg/render/...)
//
// Both stages are cached. A generated graph is keyed by every generation
// parameter including the seed; artifacts are keyed by the graph's content
// hash plus the render options.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    GridSize:                   20,
//	    VertexProbability:          0.4,
//	    RelativePotentialEdgeCount: 2,
//	    Seed:                       7,
//	    Formats:                    []string{"png"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts["png"]
//
// Run individual stages:
//
//	g, err := runner.Generate(ctx, opts)
//	artifacts, err := runner.Render(ctx, g, opts)
package pipeline

import (
	"fmt"
	"image/color"
	"io"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/planargrid/pkg/cache"
	"github.com/matzehuels/planargrid/pkg/errors"
	"github.com/matzehuels/planargrid/pkg/planar"
	"github.com/matzehuels/planargrid/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and Batch
// =============================================================================

const (
	// DefaultGridSize is the grid side length used when none is given.
	DefaultGridSize = 6

	// DefaultResolution is the default image side length in pixels.
	DefaultResolution = render.DefaultResolution

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = uint64(42)
)

// Format constants for output formats.
const (
	FormatPNG   = "png"
	FormatSVG   = "svg"
	FormatPDF   = "pdf"
	FormatDOT   = "dot"
	FormatNeato = "neato" // SVG laid out by Graphviz
	FormatJSON  = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG:   true,
	FormatSVG:   true,
	FormatPDF:   true,
	FormatDOT:   true,
	FormatNeato: true,
	FormatJSON:  true,
}

// FormatExtensions maps each format to the file extension used when writing
// artifacts to disk.
var FormatExtensions = map[string]string{
	FormatPNG:   ".png",
	FormatSVG:   ".svg",
	FormatPDF:   ".pdf",
	FormatDOT:   ".dot",
	FormatNeato: ".neato.svg",
	FormatJSON:  ".json",
}

// ContentTypes maps each format to its MIME type.
var ContentTypes = map[string]string{
	FormatPNG:   "image/png",
	FormatSVG:   "image/svg+xml",
	FormatPDF:   "application/pdf",
	FormatDOT:   "text/vnd.graphviz; charset=utf-8",
	FormatNeato: "image/svg+xml",
	FormatJSON:  "application/json",
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
//
// GridSize, Resolution, Formats and Seed fall back to defaults when zero.
// VertexProbability and RelativePotentialEdgeCount are used as given,
// since zero is meaningful for both.
type Options struct {
	// Generate options
	GridSize                   int     `json:"grid_size"`
	VertexProbability          float64 `json:"vertex_probability"`
	RelativePotentialEdgeCount float64 `json:"relative_potential_edge_count"`
	Seed                       uint64  `json:"seed,omitempty"`
	AllowSelfEdges             bool    `json:"allow_self_edges,omitempty"`
	AllowMultiEdges            bool    `json:"allow_multi_edges,omitempty"`
	Refresh                    bool    `json:"refresh,omitempty"`

	// Render options
	Formats    []string `json:"formats,omitempty"`
	Resolution int      `json:"resolution,omitempty"`
	Background string   `json:"background,omitempty"` // "", "white", "black" or #rrggbb

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has succeeded.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the generated graph.
	Graph *planar.Graph

	// Seed is the seed the graph was generated from.
	Seed uint64

	// GraphHash is the content hash of the serialized graph.
	GraphHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	planar.Stats
	Build        planar.BuildStats // zero when the graph came from cache
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	GenerateHit bool // Whether the graph came from cache
	RenderHit   bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: png, svg, pdf, dot, neato, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseBackground converts a background option to a colour. An empty
// string yields nil (transparent).
func ParseBackground(s string) (color.Color, error) {
	switch s {
	case "":
		return nil, nil
	case "white":
		return color.White, nil
	case "black":
		return color.Black, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid background %q", s)
	}
	return c, nil
}

// RandomSeed returns a fresh non-zero seed for runs that did not ask for one.
func RandomSeed() uint64 {
	for {
		if s := rand.Uint64(); s != 0 {
			return s
		}
	}
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills zero-valued fields that have defaults.
func (o *Options) SetDefaults() {
	if o.GridSize == 0 {
		o.GridSize = DefaultGridSize
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Resolution == 0 {
		o.Resolution = DefaultResolution
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPNG}
	}
	o.Formats = uniqueFormats(o.Formats)
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// uniqueFormats drops repeated formats, keeping the first occurrence.
func uniqueFormats(formats []string) []string {
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// Validate checks every field against its documented range.
func (o *Options) Validate() error {
	if err := errors.ValidateGridSize(o.GridSize); err != nil {
		return err
	}
	if err := errors.ValidateProbability(o.VertexProbability); err != nil {
		return err
	}
	if err := errors.ValidateRelativeEdgeCount(o.RelativePotentialEdgeCount); err != nil {
		return err
	}
	if err := errors.ValidateResolution(o.Resolution); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	_, err := ParseBackground(o.Background)
	return err
}

// ValidateAndSetDefaults applies defaults and validates.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := o.Validate(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// Config returns the generation parameters.
func (o *Options) Config() planar.Config {
	return planar.Config{
		GridSize:                   o.GridSize,
		VertexProbability:          o.VertexProbability,
		RelativePotentialEdgeCount: o.RelativePotentialEdgeCount,
		Policy: planar.Policy{
			AllowSelfEdges:  o.AllowSelfEdges,
			AllowMultiEdges: o.AllowMultiEdges,
		},
	}
}

// GraphKeyOpts returns cache key options for graph generation.
func (o *Options) GraphKeyOpts() cache.GraphKeyOpts {
	return cache.GraphKeyOpts{
		GridSize:        o.GridSize,
		Probability:     o.VertexProbability,
		RelEdgeCount:    o.RelativePotentialEdgeCount,
		Seed:            o.Seed,
		AllowSelfEdges:  o.AllowSelfEdges,
		AllowMultiEdges: o.AllowMultiEdges,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:     format,
		Resolution: o.Resolution,
		Background: o.Background,
	}
}

// String describes the generation parameters for logs.
func (o Options) String() string {
	return fmt.Sprintf("grid=%d p=%g rel=%g seed=%d", o.GridSize, o.VertexProbability, o.RelativePotentialEdgeCount, o.Seed)
}
