// Package config loads the optional planargrid TOML configuration file.
//
// The file lives at $XDG_CONFIG_HOME/planargrid/config.toml (falling back to
// ~/.config/planargrid/config.toml) unless --config names another path.
// Every key is optional; missing keys keep their defaults and command-line
// flags override both.
//
//	[generate]
//	grid_size = 20
//	vertex_probability = 0.4
//	relative_potential_edge_count = 2.0
//	allow_self_edges = false
//	allow_multi_edges = false
//
//	[render]
//	resolution = 1200
//	formats = ["png", "svg"]
//
//	[cache]
//	redis_addr = "localhost:6379"
//
//	[store]
//	mongo_uri = "mongodb://localhost:27017"
//
//	[server]
//	addr = ":8080"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/planargrid/pkg/errors"
)

// AppName names the configuration and cache directories.
const AppName = "planargrid"

// Config is the full file layout.
type Config struct {
	Generate GenerateConfig `toml:"generate"`
	Render   RenderConfig   `toml:"render"`
	Cache    CacheConfig    `toml:"cache"`
	Store    StoreConfig    `toml:"store"`
	Server   ServerConfig   `toml:"server"`
}

// GenerateConfig holds graph generation parameters. A zero Seed means
// "pick a fresh seed for every run".
type GenerateConfig struct {
	GridSize                   int     `toml:"grid_size"`
	VertexProbability          float64 `toml:"vertex_probability"`
	RelativePotentialEdgeCount float64 `toml:"relative_potential_edge_count"`
	Seed                       uint64  `toml:"seed"`
	AllowSelfEdges             bool    `toml:"allow_self_edges"`
	AllowMultiEdges            bool    `toml:"allow_multi_edges"`
}

// RenderConfig holds output settings.
type RenderConfig struct {
	Resolution int      `toml:"resolution"`
	Formats    []string `toml:"formats"`
	Background string   `toml:"background"`
}

// CacheConfig selects the cache backend. Redis wins over the file cache
// when RedisAddr is set.
type CacheConfig struct {
	Disabled      bool   `toml:"disabled"`
	Dir           string `toml:"dir"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	Prefix        string `toml:"prefix"`
}

// StoreConfig selects the run archive. MongoURI wins over Dir; with
// neither set, archiving falls back to DataDir()/runs when requested.
type StoreConfig struct {
	MongoURI string `toml:"mongo_uri"`
	Database string `toml:"database"`
	Dir      string `toml:"dir"`
}

// ServerConfig configures `planargrid serve`.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Default returns the built-in configuration: a 6x6 grid with p=0.3 and
// half as many edge attempts as v².
func Default() Config {
	return Config{
		Generate: GenerateConfig{
			GridSize:                   6,
			VertexProbability:          0.3,
			RelativePotentialEdgeCount: 0.5,
		},
		Render: RenderConfig{
			Resolution: 800,
			Formats:    []string{"png"},
			Background: "white",
		},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// DefaultPath returns the config file location following the XDG standard.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// CacheDir returns the cache directory using XDG standard (~/.cache/planargrid/).
func CacheDir() (string, error) {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", AppName), nil
}

// DataDir returns the data directory using XDG standard (~/.local/share/planargrid/).
func DataDir() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", AppName), nil
}

// Load reads the config file at path on top of Default(). With an empty path
// the default location is tried and a missing file is not an error; an
// explicit path must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML on top of Default(). Unknown keys are rejected so that
// typos do not silently fall back to defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return cfg, nil
}
