package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/planargrid/pkg/pipeline"
)

// batchOpts holds the flags of the batch command.
type batchOpts struct {
	gen         genFlags
	count       int
	startSeed   uint64
	concurrency int
	outDir      string // write artifacts per seed when set
}

// batchCommand creates the batch command, which sweeps consecutive seeds.
func (c *CLI) batchCommand() *cobra.Command {
	opts := batchOpts{count: 10, startSeed: 1}

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate many seeds in parallel and summarize the results",
		Example: `  planargrid batch -n 10 -p 0.5 -r 1 --count 100
  planargrid batch --count 8 --start-seed 100 --out-dir runs -f png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			popts, _, err := c.options(cmd, &opts.gen)
			if err != nil {
				return err
			}
			return c.runBatch(cmd.Context(), popts, opts)
		},
	}

	opts.gen.register(cmd.Flags())
	cmd.Flags().IntVar(&opts.count, "count", opts.count, "number of seeds")
	cmd.Flags().Uint64Var(&opts.startSeed, "start-seed", opts.startSeed, "first seed")
	cmd.Flags().IntVarP(&opts.concurrency, "concurrency", "j", 0, "parallel workers (default GOMAXPROCS)")
	cmd.Flags().StringVar(&opts.outDir, "out-dir", "", "write rendered artifacts for each seed into this directory")

	return cmd
}

func (c *CLI) runBatch(ctx context.Context, popts pipeline.Options, opts batchOpts) error {
	if opts.count < 1 {
		return fmt.Errorf("--count must be positive, got %d", opts.count)
	}

	logOptions(c.Logger, popts)

	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Generating %d graphs...", opts.count))
	spinner.Start()
	results, err := runner.Batch(ctx, pipeline.BatchOptions{
		Options:     popts,
		StartSeed:   opts.startSeed,
		Count:       opts.count,
		Concurrency: opts.concurrency,
		Render:      opts.outDir != "",
	})
	spinner.Stop()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %d graphs", len(results)))

	if opts.outDir != "" {
		formats := popts.Formats
		if len(formats) == 0 {
			formats = []string{pipeline.FormatPNG}
		}
		for _, r := range results {
			if _, err := writeArtifacts(defaultBase(opts.outDir, r.Seed), formats, r.Artifacts); err != nil {
				return err
			}
		}
		printSuccess("Wrote artifacts for %d seeds", len(results))
		printDetail("Directory: %s", opts.outDir)
	}

	fmt.Println(batchTable(results))
	printSummary(pipeline.Summarize(results))
	return nil
}

// batchTable renders per-seed results as a table.
func batchTable(results []pipeline.BatchResult) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		status := stateFresh
		if r.Cached {
			status = stateCached
		}
		rows = append(rows, []string{
			strconv.FormatUint(r.Seed, 10),
			strconv.Itoa(r.Stats.V),
			strconv.Itoa(r.Stats.E),
			strconv.Itoa(r.Stats.C),
			strconv.Itoa(r.Stats.F),
			status,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorLabel).Bold(true)
	numberStyle := lipgloss.NewStyle().Foreground(colorAccent).Align(lipgloss.Right)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		Headers("seed", "v", "e", "c", "f", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return styleValue
			case col == 5:
				return styleFresh
			}
			return numberStyle
		}).
		Render()
}

func printSummary(s pipeline.BatchSummary) {
	printKeyValue("runs", strconv.Itoa(s.Runs))
	printKeyValue("mean v", fmt.Sprintf("%.2f", s.MeanV))
	printKeyValue("mean e", fmt.Sprintf("%.2f  (min %d, max %d)", s.MeanE, s.MinE, s.MaxE))
	printKeyValue("mean c", fmt.Sprintf("%.2f", s.MeanC))
	printKeyValue("mean f", fmt.Sprintf("%.2f  (min %d, max %d)", s.MeanF, s.MinF, s.MaxF))
}
