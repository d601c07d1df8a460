package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/planargrid/pkg/server"
)

// serveOpts holds the flags of the serve command.
type serveOpts struct {
	gen      genFlags
	addr     string
	mongoURI string
}

// serveCommand creates the serve command, which runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve graphs over HTTP",
		Long: `Serve runs the HTTP API:

  GET /healthz
  GET /v1/graph?grid=&p=&rel=&seed=&self=&multi=
  GET /v1/graph.{png,svg,pdf,dot,neato,json}
  GET /v1/runs, /v1/runs/{id}   (with --mongo-uri or store.dir)

Generation flags set the defaults for parameters a request omits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, opts)
		},
	}

	opts.gen.register(cmd.Flags())
	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default from config, then :8080)")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", "", "archive generated graphs in MongoDB")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, opts serveOpts) error {
	ctx := cmd.Context()
	defaults, seeded, err := c.options(cmd, &opts.gen)
	if err != nil {
		return err
	}
	if !seeded {
		defaults.Seed = 0 // drawn per request
	}
	defaults.Logger = nil

	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	st, err := c.openStore(ctx, opts.mongoURI, false)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	if st != nil {
		defer st.Close(context.Background())
		c.Logger.Info("archiving runs")
	}

	addr := opts.addr
	if addr == "" {
		addr = c.Config.Server.Addr
	}

	srv := server.New(runner, st, defaults, c.Logger)
	return srv.ListenAndServe(ctx, addr)
}
