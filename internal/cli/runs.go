package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/planargrid/pkg/store"
)

// runsCommand creates the runs command for browsing the archive.
func (c *CLI) runsCommand() *cobra.Command {
	var mongoURI string

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Browse archived runs",
	}
	cmd.PersistentFlags().StringVar(&mongoURI, "mongo-uri", "", "MongoDB URI (default from config, else local files)")

	cmd.AddCommand(c.runsListCommand(&mongoURI))
	cmd.AddCommand(c.runsShowCommand(&mongoURI))

	return cmd
}

// runsListCommand creates the "runs list" subcommand.
func (c *CLI) runsListCommand(mongoURI *string) *cobra.Command {
	limit := store.DefaultListLimit

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List archived runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(cmd.Context(), *mongoURI, func(st store.Store) error {
				runs, err := st.List(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if len(runs) == 0 {
					printInfo("No archived runs")
					return nil
				}
				fmt.Println(runsTable(runs))
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", limit, "maximum number of runs")
	return cmd
}

// runsShowCommand creates the "runs show" subcommand.
func (c *CLI) runsShowCommand(mongoURI *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print an archived run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(cmd.Context(), *mongoURI, func(st store.Store) error {
				rec, err := st.Get(cmd.Context(), args[0])
				if err != nil {
					return fmt.Errorf("run %s: %w", args[0], err)
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(rec)
			})
		},
	}
}

func (c *CLI) withStore(ctx context.Context, uri string, fn func(store.Store) error) error {
	st, err := c.openStore(ctx, uri, true)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer st.Close(context.Background())
	return fn(st)
}

// runsTable renders archive records as a table.
func runsTable(runs []store.Record) string {
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		st := r.Graph.Stats
		rows = append(rows, []string{
			r.ID,
			r.CreatedAt.Local().Format(time.DateTime),
			strconv.Itoa(r.Config.GridSize),
			strconv.FormatUint(r.Seed, 10),
			fmt.Sprintf("%d/%d/%d/%d", st.V, st.E, st.C, st.F),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorLabel).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		Headers("id", "created", "grid", "seed", "v/e/c/f").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return styleMuted
			}
			return styleValue
		}).
		Render()
}
