package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/planargrid/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		check   func(t *testing.T, c Config)
		wantErr string
	}{
		{
			name:  "Empty",
			input: "",
			check: func(t *testing.T, c Config) {
				if c.Generate.GridSize != 6 || c.Render.Resolution != 800 {
					t.Errorf("defaults not applied: %+v", c)
				}
			},
		},
		{
			name: "Overrides",
			input: `
[generate]
grid_size = 20
vertex_probability = 0.45
seed = 7
allow_multi_edges = true

[render]
formats = ["svg", "dot"]

[cache]
redis_addr = "localhost:6379"
`,
			check: func(t *testing.T, c Config) {
				g := c.Generate
				if g.GridSize != 20 || g.VertexProbability != 0.45 || g.Seed != 7 || !g.AllowMultiEdges {
					t.Errorf("generate = %+v", g)
				}
				if g.RelativePotentialEdgeCount != 0.5 {
					t.Errorf("unset key should keep default, got %v", g.RelativePotentialEdgeCount)
				}
				if strings.Join(c.Render.Formats, ",") != "svg,dot" {
					t.Errorf("formats = %v", c.Render.Formats)
				}
				if c.Cache.RedisAddr != "localhost:6379" {
					t.Errorf("redis_addr = %q", c.Cache.RedisAddr)
				}
			},
		},
		{
			name:    "UnknownKey",
			input:   "[generate]\ngridsize = 5\n",
			wantErr: "generate.gridsize",
		},
		{
			name:    "Malformed",
			input:   "[generate\n",
			wantErr: "parse config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.input))
			if tt.wantErr != "" {
				if err == nil {
					t.Fatal("expected error")
				}
				if !errors.Is(err, errors.ErrCodeInvalidConfig) {
					t.Errorf("code = %q, want INVALID_CONFIG", errors.GetCode(err))
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error %q missing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			tt.check(t, c)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	// Missing default file falls back to defaults
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load default: %v", err)
	}
	if c.Generate.GridSize != Default().Generate.GridSize {
		t.Errorf("grid = %d", c.Generate.GridSize)
	}

	// Default location is picked up
	path := filepath.Join(dir, AppName, "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[server]\naddr = \":9000\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	c, err = Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Server.Addr != ":9000" {
		t.Errorf("addr = %q", c.Server.Addr)
	}

	// Explicit missing path is an error
	if _, err := Load(filepath.Join(dir, "nope.toml")); err == nil {
		t.Error("expected error for missing explicit path")
	}
}

func TestPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_CACHE_HOME", "/tmp/cache")

	if p, _ := DefaultPath(); p != "/tmp/cfg/planargrid/config.toml" {
		t.Errorf("DefaultPath = %s", p)
	}
	if p, _ := CacheDir(); p != "/tmp/cache/planargrid" {
		t.Errorf("CacheDir = %s", p)
	}

	t.Setenv("XDG_CACHE_HOME", "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if p, _ := CacheDir(); p != filepath.Join(home, ".cache", AppName) {
		t.Errorf("CacheDir fallback = %s", p)
	}

	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	if p, _ := DataDir(); p != "/tmp/data/planargrid" {
		t.Errorf("DataDir = %s", p)
	}
	t.Setenv("XDG_DATA_HOME", "")
	if p, _ := DataDir(); p != filepath.Join(home, ".local", "share", AppName) {
		t.Errorf("DataDir fallback = %s", p)
	}
}
