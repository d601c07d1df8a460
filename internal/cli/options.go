package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/planargrid/pkg/errors"
	"github.com/matzehuels/planargrid/pkg/pipeline"
)

// genFlags holds the generation and render flags shared by generate, batch,
// serve and explore. Values only override the config file when the flag was
// set on the command line.
type genFlags struct {
	gridSize   int
	prob       float64
	rel        float64
	seed       uint64
	self       bool
	multi      bool
	resolution int
	formats    string
	background string
	refresh    bool
}

// register binds the generation flags to fs.
func (f *genFlags) register(fs *pflag.FlagSet) {
	fs.IntVarP(&f.gridSize, "grid", "n", pipeline.DefaultGridSize, "grid side length")
	fs.Float64VarP(&f.prob, "prob", "p", 0.3, "probability that a grid cell becomes a vertex")
	fs.Float64VarP(&f.rel, "rel", "r", 0.5, "edge attempts per squared vertex count")
	fs.Uint64VarP(&f.seed, "seed", "s", 0, "random seed (0 picks a fresh one)")
	fs.BoolVar(&f.self, "self-edges", false, "allow loops")
	fs.BoolVar(&f.multi, "multi-edges", false, "allow parallel edges")
	fs.IntVar(&f.resolution, "res", pipeline.DefaultResolution, "image side length in pixels")
	fs.StringVarP(&f.formats, "format", "f", "", "output format(s): png, svg, pdf, dot, neato, json (comma-separated)")
	fs.StringVar(&f.background, "bg", "", "background: white, black, #rrggbb, or none")
	fs.BoolVar(&f.refresh, "refresh", false, "ignore cached results")
}

// options merges config file values with explicitly set flags. The second
// result reports whether the seed was chosen by the user; otherwise a random
// one is drawn. Explicit sizes are checked here because zero would otherwise
// be replaced by the default.
func (c *CLI) options(cmd *cobra.Command, f *genFlags) (pipeline.Options, bool, error) {
	gen := c.Config.Generate
	rnd := c.Config.Render
	opts := pipeline.Options{
		GridSize:                   gen.GridSize,
		VertexProbability:          gen.VertexProbability,
		RelativePotentialEdgeCount: gen.RelativePotentialEdgeCount,
		Seed:                       gen.Seed,
		AllowSelfEdges:             gen.AllowSelfEdges,
		AllowMultiEdges:            gen.AllowMultiEdges,
		Resolution:                 rnd.Resolution,
		Formats:                    rnd.Formats,
		Background:                 rnd.Background,
		Logger:                     c.Logger,
	}

	fs := cmd.Flags()
	if fs.Changed("grid") {
		if err := errors.ValidateGridSize(f.gridSize); err != nil {
			return opts, false, err
		}
		opts.GridSize = f.gridSize
	}
	if fs.Changed("prob") {
		opts.VertexProbability = f.prob
	}
	if fs.Changed("rel") {
		opts.RelativePotentialEdgeCount = f.rel
	}
	if fs.Changed("seed") {
		opts.Seed = f.seed
	}
	if fs.Changed("self-edges") {
		opts.AllowSelfEdges = f.self
	}
	if fs.Changed("multi-edges") {
		opts.AllowMultiEdges = f.multi
	}
	if fs.Changed("res") {
		if err := errors.ValidateResolution(f.resolution); err != nil {
			return opts, false, err
		}
		opts.Resolution = f.resolution
	}
	if formats := parseFormats(f.formats); len(formats) > 0 {
		opts.Formats = formats
	}
	if fs.Changed("bg") {
		opts.Background = f.background
		if opts.Background == "none" {
			opts.Background = ""
		}
	}
	opts.Refresh = f.refresh

	seeded := opts.Seed != 0
	if !seeded {
		opts.Seed = pipeline.RandomSeed()
	}
	return opts, seeded, nil
}
