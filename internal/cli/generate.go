package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/planargrid/pkg/pipeline"
	"github.com/matzehuels/planargrid/pkg/store"
)

// generateOpts holds the flags of the generate command.
type generateOpts struct {
	gen      genFlags
	output   string // output file (single format) or base path
	archive  bool   // save the run to MongoDB
	mongoURI string
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random planar graph and render it",
		Long: `Generate samples vertices on an n×n grid with probability p, then draws
round(rel·v²) random vertex pairs and keeps each straight edge that neither
crosses an earlier edge nor passes through another vertex.

Without --seed a fresh seed is drawn and printed so the run can be repeated.`,
		Example: `  planargrid generate -n 6 -p 0.3 -r 0.5
  planargrid generate -n 20 -p 0.5 -r 2 --seed 7 -f png,svg,json -o out/graph`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			popts, seeded, err := c.options(cmd, &opts.gen)
			if err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), popts, seeded, opts)
		},
	}

	opts.gen.register(cmd.Flags())
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (default planargrid-<seed>)")
	cmd.Flags().BoolVar(&opts.archive, "archive", false, "save the run to the archive (MongoDB or the local data dir)")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", "", "MongoDB URI for --archive (default from config, else local files)")

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, popts pipeline.Options, seeded bool, opts generateOpts) error {
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	if !seeded {
		c.Logger.Info("using random seed", "seed", popts.Seed)
	}
	logOptions(c.Logger, popts)

	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	var st store.Store
	if opts.archive {
		if st, err = c.openStore(ctx, opts.mongoURI, true); err != nil {
			return fmt.Errorf("open archive: %w", err)
		}
		defer st.Close(context.Background())
	}

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, "Generating graph...")
	spinner.Start()
	result, err := runner.Execute(ctx, popts)
	spinner.Stop()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %d vertices", result.Graph.V()))

	base := opts.output
	if base == "" {
		base = defaultBase(".", result.Seed)
	}
	paths, err := writeArtifacts(base, popts.Formats, result.Artifacts)
	if err != nil {
		return err
	}

	printSuccess("Generated planar graph")
	printKeyValue("seed", strconv.FormatUint(result.Seed, 10))
	printKeyValue("grid", fmt.Sprintf("%d×%d", popts.GridSize, popts.GridSize))
	printStats(result.Graph.Stats(), result.CacheInfo.GenerateHit)
	for _, p := range paths {
		printFile(p)
	}

	if st != nil {
		rec := store.NewRecord(popts.Config(), result.Seed, result.Graph)
		if err := st.Save(ctx, rec); err != nil {
			return fmt.Errorf("archive run: %w", err)
		}
		printKeyValue("run", rec.ID)
	}

	if !seeded {
		printNextStep("Reproduce", fmt.Sprintf("%s generate -n %d -p %g -r %g --seed %d",
			appName, popts.GridSize, popts.VertexProbability, popts.RelativePotentialEdgeCount, result.Seed))
	}
	return nil
}
