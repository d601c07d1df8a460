package cli

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/planargrid/pkg/graph"
	"github.com/matzehuels/planargrid/pkg/pipeline"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	gen    genFlags
	output string
}

// renderCommand creates the render command, which draws a graph saved with
// "generate -f json".
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [graph.json]",
		Short: "Render a saved graph to PNG, SVG, PDF or DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			popts, _, err := c.options(cmd, &opts.gen)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], popts, opts.output)
		},
	}

	fs := cmd.Flags()
	fs.IntVar(&opts.gen.resolution, "res", pipeline.DefaultResolution, "image side length in pixels")
	fs.StringVarP(&opts.gen.formats, "format", "f", "", "output format(s): png, svg, pdf, dot, neato (comma-separated)")
	fs.StringVar(&opts.gen.background, "bg", "", "background: white, black, #rrggbb, or none")
	fs.BoolVar(&opts.gen.refresh, "refresh", false, "ignore cached results")
	fs.StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (default: input name)")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, popts pipeline.Options, output string) error {
	g, err := graph.ReadGraphFile(input)
	if err != nil {
		return err
	}
	popts.GridSize = g.GridSize()
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	artifacts, hit, err := runner.RenderWithCacheInfo(ctx, g, popts)
	if err != nil {
		return err
	}

	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input))
	}
	paths, err := writeArtifacts(output, popts.Formats, artifacts)
	if err != nil {
		return err
	}

	printSuccess("Rendered %s", input)
	printStats(g.Stats(), hit)
	for _, p := range paths {
		printFile(p)
	}
	return nil
}
