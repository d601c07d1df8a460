package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/planargrid/pkg/buildinfo"
	"github.com/matzehuels/planargrid/pkg/cache"
	"github.com/matzehuels/planargrid/pkg/config"
	"github.com/matzehuels/planargrid/pkg/observability"
	"github.com/matzehuels/planargrid/pkg/pipeline"
	"github.com/matzehuels/planargrid/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = config.AppName
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Config is loaded before any subcommand runs.
	Config config.Config

	configPath string
	noCache    bool
	redisAddr  string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Planargrid generates random planar graphs on an integer grid",
		Long:         `Planargrid samples vertices on an n×n grid, connects random pairs with straight edges that never cross or pass through another vertex, and reports vertex, edge, component and face counts.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/planargrid/config.toml)")
	pf.BoolVar(&c.noCache, "no-cache", false, "disable the result cache")
	pf.StringVar(&c.redisAddr, "redis-addr", "", "use a Redis cache at host:port")

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.batchCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.runsCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config file and attaches the logger to the command context.
func (c *CLI) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	if c.noCache {
		c.Config.Cache.Disabled = true
	}
	if c.redisAddr != "" {
		c.Config.Cache.RedisAddr = c.redisAddr
	}
	if c.Logger.GetLevel() == log.DebugLevel {
		observability.NewLogHooks(c.Logger).Register()
	}
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context) (*pipeline.Runner, error) {
	cc, err := newCache(ctx, c.Config.Cache)
	if err != nil {
		return nil, err
	}
	var keyer cache.Keyer
	if c.Config.Cache.Prefix != "" {
		keyer = cache.NewScopedKeyer(cache.NewDefaultKeyer(), c.Config.Cache.Prefix)
	}
	return pipeline.NewRunner(cc, keyer, loggerFromContext(ctx)), nil
}

// newCache picks the cache backend: disabled, Redis, or the file cache.
// An unusable cache directory degrades to no caching.
func newCache(ctx context.Context, cfg config.CacheConfig) (cache.Cache, error) {
	if cfg.Disabled {
		return cache.NewNullCache(), nil
	}
	if cfg.RedisAddr != "" {
		c, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, fmt.Errorf("connect redis cache: %w", err)
		}
		return c, nil
	}
	dir := cfg.Dir
	if dir == "" {
		d, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		dir = d
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return fc, nil
}

// openStore opens the run archive: MongoDB when a URI is given or
// configured, else the configured archive directory. With fallback set, a
// missing directory setting selects DataDir()/runs. It returns nil when no
// archive is configured.
func (c *CLI) openStore(ctx context.Context, uri string, fallback bool) (store.Store, error) {
	if uri == "" {
		uri = c.Config.Store.MongoURI
	}
	if uri != "" {
		st, err := store.NewMongoStore(ctx, store.MongoConfig{URI: uri, Database: c.Config.Store.Database})
		if err != nil {
			return nil, err
		}
		return st, nil
	}

	dir := c.Config.Store.Dir
	if dir == "" && fallback {
		data, err := config.DataDir()
		if err != nil {
			return nil, fmt.Errorf("get data dir: %w", err)
		}
		dir = filepath.Join(data, "runs")
	}
	if dir == "" {
		return nil, nil
	}
	st, err := store.NewFileStore(dir)
	if err != nil {
		return nil, err
	}
	return st, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/planargrid/).
func cacheDir() (string, error) {
	return config.CacheDir()
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
