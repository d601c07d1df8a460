package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"io"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/planargrid/pkg/errors"
	"github.com/matzehuels/planargrid/pkg/graph"
	"github.com/matzehuels/planargrid/pkg/observability"
	"github.com/matzehuels/planargrid/pkg/planar"
)

// memCache is an in-memory cache.Cache that counts operations.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func newMemCache() *memCache { return &memCache{data: make(map[string][]byte)} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.data[key]
	return d, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
	c.sets++
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memCache) Close() error { return nil }

func quietLogger() *log.Logger { return log.New(io.Discard) }

func testOptions() Options {
	return Options{
		GridSize:                   8,
		VertexProbability:          0.4,
		RelativePotentialEdgeCount: 1,
		Seed:                       7,
		Formats:                    []string{FormatSVG},
		Resolution:                 200,
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"dot", false},
		{"neato", false},
		{"json", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s, want %s", tt.format, errors.GetCode(err), errors.ErrCodeInvalidFormat)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestParseBackground(t *testing.T) {
	tests := []struct {
		in      string
		wantNil bool
		wantErr bool
	}{
		{"", true, false},
		{"white", false, false},
		{"black", false, false},
		{"#336699", false, false},
		{"mauve", false, true},
		{"#12", false, true},
	}

	for _, tt := range tests {
		c, err := ParseBackground(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseBackground(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && (c == nil) != tt.wantNil {
			t.Errorf("ParseBackground(%q) = %v, wantNil %v", tt.in, c, tt.wantNil)
		}
	}
}

func TestOptionsSetDefaults(t *testing.T) {
	var opts Options
	opts.SetDefaults()

	if opts.GridSize != DefaultGridSize {
		t.Errorf("GridSize = %d, want %d", opts.GridSize, DefaultGridSize)
	}
	if opts.Seed != DefaultSeed {
		t.Errorf("Seed = %d, want %d", opts.Seed, DefaultSeed)
	}
	if opts.Resolution != DefaultResolution {
		t.Errorf("Resolution = %d, want %d", opts.Resolution, DefaultResolution)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatPNG {
		t.Errorf("Formats = %v, want [png]", opts.Formats)
	}
	if opts.VertexProbability != 0 || opts.RelativePotentialEdgeCount != 0 {
		t.Error("probability and edge count must not be defaulted")
	}
	if opts.Logger == nil {
		t.Error("Logger should be set")
	}
}

func TestOptionsSetDefaultsDropsRepeatedFormats(t *testing.T) {
	opts := Options{Formats: []string{FormatSVG, FormatPNG, FormatSVG, FormatPNG}}
	opts.SetDefaults()
	if want := []string{FormatSVG, FormatPNG}; !slices.Equal(opts.Formats, want) {
		t.Errorf("Formats = %v, want %v", opts.Formats, want)
	}
}

// renderRecorder records the formats of every render pass.
type renderRecorder struct {
	observability.NoopRenderHooks
	mu     sync.Mutex
	passes [][]string
}

func (r *renderRecorder) OnRenderStart(_ context.Context, formats []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.passes = append(r.passes, slices.Clone(formats))
}

func TestRunnerRenderRepeatedFormatOnce(t *testing.T) {
	rec := &renderRecorder{}
	observability.SetRenderHooks(rec)
	t.Cleanup(observability.Reset)

	c := newMemCache()
	runner := NewRunner(c, nil, quietLogger())
	g := planar.Generate(planar.Config{GridSize: 4, VertexProbability: 0.5, RelativePotentialEdgeCount: 1}, 3)

	opts := testOptions()
	opts.Formats = []string{FormatSVG, FormatSVG, FormatDOT, FormatSVG}
	artifacts, hit, err := runner.RenderWithCacheInfo(context.Background(), g, opts)
	if err != nil {
		t.Fatalf("RenderWithCacheInfo: %v", err)
	}
	if hit {
		t.Error("empty cache should miss")
	}
	if len(artifacts) != 2 {
		t.Errorf("got %d artifacts, want 2", len(artifacts))
	}
	if len(rec.passes) != 1 || !slices.Equal(rec.passes[0], []string{FormatSVG, FormatDOT}) {
		t.Errorf("render passes = %v, want [[svg dot]]", rec.passes)
	}
	if c.sets != 2 {
		t.Errorf("cache sets = %d, want 2", c.sets)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr bool
	}{
		{"valid", func(*Options) {}, false},
		{"negative grid", func(o *Options) { o.GridSize = -1 }, true},
		{"huge grid", func(o *Options) { o.GridSize = errors.MaxGridSize + 1 }, true},
		{"probability above one", func(o *Options) { o.VertexProbability = 1.5 }, true},
		{"negative probability", func(o *Options) { o.VertexProbability = -0.1 }, true},
		{"negative edge count", func(o *Options) { o.RelativePotentialEdgeCount = -1 }, true},
		{"tiny resolution", func(o *Options) { o.Resolution = 4 }, true},
		{"bad format", func(o *Options) { o.Formats = []string{"gif"} }, true},
		{"bad background", func(o *Options) { o.Background = "nope" }, true},
		{"zero probability", func(o *Options) { o.VertexProbability = 0 }, false},
		{"zero edge count", func(o *Options) { o.RelativePotentialEdgeCount = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions()
			tt.mutate(&opts)
			err := opts.ValidateAndSetDefaults()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAndSetDefaults() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOptionsConfig(t *testing.T) {
	opts := testOptions()
	opts.AllowSelfEdges = true
	cfg := opts.Config()

	want := planar.Config{
		GridSize:                   8,
		VertexProbability:          0.4,
		RelativePotentialEdgeCount: 1,
		Policy:                     planar.Policy{AllowSelfEdges: true},
	}
	if cfg != want {
		t.Errorf("Config() = %+v, want %+v", cfg, want)
	}
}

func TestGraphKeyOptsIncludeSeed(t *testing.T) {
	a := testOptions()
	b := testOptions()
	b.Seed = 8
	if a.GraphKeyOpts() == b.GraphKeyOpts() {
		t.Error("different seeds should produce different key options")
	}
}

func TestRunnerExecute(t *testing.T) {
	c := newMemCache()
	runner := NewRunner(c, nil, quietLogger())
	ctx := context.Background()

	first, err := runner.Execute(ctx, testOptions())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if first.CacheInfo.GenerateHit || first.CacheInfo.RenderHit {
		t.Error("first run should miss the cache")
	}
	if first.Seed != 7 {
		t.Errorf("Seed = %d, want 7", first.Seed)
	}
	if first.GraphHash == "" {
		t.Error("GraphHash should be set")
	}
	if len(first.Artifacts[FormatSVG]) == 0 {
		t.Error("expected svg artifact")
	}
	if first.Stats.Stats != first.Graph.Stats() {
		t.Errorf("Stats = %+v, want %+v", first.Stats.Stats, first.Graph.Stats())
	}

	second, err := runner.Execute(ctx, testOptions())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !second.CacheInfo.GenerateHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run should hit the cache: %+v", second.CacheInfo)
	}
	if second.GraphHash != first.GraphHash {
		t.Error("cached graph should hash the same")
	}
	if !bytes.Equal(second.Artifacts[FormatSVG], first.Artifacts[FormatSVG]) {
		t.Error("cached artifact differs")
	}
}

func TestRunnerExecuteMatchesGenerate(t *testing.T) {
	runner := NewRunner(nil, nil, quietLogger())
	opts := testOptions()

	result, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	direct := planar.Generate(opts.Config(), opts.Seed)
	if result.Graph.Stats() != direct.Stats() {
		t.Errorf("Execute stats = %+v, direct = %+v", result.Graph.Stats(), direct.Stats())
	}
}

func TestRunnerRefresh(t *testing.T) {
	c := newMemCache()
	runner := NewRunner(c, nil, quietLogger())
	ctx := context.Background()

	if _, err := runner.Execute(ctx, testOptions()); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	opts := testOptions()
	opts.Refresh = true
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.CacheInfo.GenerateHit || result.CacheInfo.RenderHit {
		t.Error("refresh should bypass the cache")
	}
}

func TestRunnerCorruptCacheEntry(t *testing.T) {
	c := newMemCache()
	runner := NewRunner(c, nil, quietLogger())
	opts := testOptions()
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	key := runner.Keyer.GraphKey(opts.GraphKeyOpts())
	_ = c.Set(context.Background(), key, []byte("{not json"), 0)

	g, hit, err := runner.GenerateWithCacheInfo(context.Background(), opts)
	if err != nil {
		t.Fatalf("GenerateWithCacheInfo: %v", err)
	}
	if hit {
		t.Error("corrupt entry should count as a miss")
	}
	if g == nil {
		t.Fatal("expected graph")
	}
}

func TestRunnerCachedGraphKeepsSeed(t *testing.T) {
	c := newMemCache()
	runner := NewRunner(c, nil, quietLogger())
	opts := testOptions()
	if _, err := runner.Generate(context.Background(), opts); err != nil {
		t.Fatal(err)
	}
	_ = opts.ValidateAndSetDefaults()
	data, hit, _ := c.Get(context.Background(), runner.Keyer.GraphKey(opts.GraphKeyOpts()))
	if !hit {
		t.Fatal("graph should be cached")
	}
	gj, err := graph.UnmarshalGraph(data)
	if err != nil {
		t.Fatal(err)
	}
	if gj.Seed != 7 {
		t.Errorf("cached seed = %d, want 7", gj.Seed)
	}
}

func TestRunnerInvalidOptions(t *testing.T) {
	runner := NewRunner(nil, nil, quietLogger())
	opts := testOptions()
	opts.VertexProbability = 2

	_, err := runner.Execute(context.Background(), opts)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidInput)
	}
}

func TestRenderFormats(t *testing.T) {
	opts := testOptions()
	opts.Formats = []string{FormatPNG, FormatSVG, FormatDOT, FormatJSON, FormatSVG}
	opts.Background = "white"
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	g := planar.Generate(opts.Config(), opts.Seed)

	artifacts, err := Render(context.Background(), g, opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(artifacts) != 4 {
		t.Errorf("got %d artifacts, want 4", len(artifacts))
	}

	img, err := png.Decode(bytes.NewReader(artifacts[FormatPNG]))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 200 {
		t.Errorf("png size = %v, want 200x200", b)
	}

	if !strings.Contains(string(artifacts[FormatSVG]), "<svg") {
		t.Error("svg artifact missing <svg")
	}
	if !strings.HasPrefix(string(artifacts[FormatDOT]), "graph G {") {
		t.Error("dot artifact should start with graph G {")
	}

	var gj graph.Graph
	if err := json.Unmarshal(artifacts[FormatJSON], &gj); err != nil {
		t.Fatalf("json artifact: %v", err)
	}
	if gj.Stats != g.Stats() {
		t.Errorf("json stats = %+v, want %+v", gj.Stats, g.Stats())
	}
}

func TestRenderCanceled(t *testing.T) {
	opts := testOptions()
	_ = opts.ValidateAndSetDefaults()
	g := planar.Generate(opts.Config(), opts.Seed)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Render(ctx, g, opts); err == nil {
		t.Error("expected error for canceled context")
	}
}

func TestBatch(t *testing.T) {
	runner := NewRunner(newMemCache(), nil, quietLogger())
	opts := BatchOptions{
		Options:     testOptions(),
		StartSeed:   10,
		Count:       6,
		Concurrency: 3,
	}

	results, err := runner.Batch(context.Background(), opts)
	if err != nil {
		t.Fatalf("Batch: %v", err)
	}
	if len(results) != 6 {
		t.Fatalf("got %d results, want 6", len(results))
	}
	cfg := opts.Options.Config()
	for i, r := range results {
		if r.Seed != uint64(10+i) {
			t.Errorf("results[%d].Seed = %d, want %d", i, r.Seed, 10+i)
		}
		want := planar.Generate(cfg, r.Seed).Stats()
		if r.Stats != want {
			t.Errorf("seed %d: stats = %+v, want %+v", r.Seed, r.Stats, want)
		}
		if r.Artifacts != nil {
			t.Error("artifacts should be nil without Render")
		}
	}
}

func TestBatchExplicitSeedsAndRender(t *testing.T) {
	runner := NewRunner(nil, nil, quietLogger())
	results, err := runner.Batch(context.Background(), BatchOptions{
		Options: testOptions(),
		Seeds:   []uint64{3, 1, 2},
		Render:  true,
	})
	if err != nil {
		t.Fatalf("Batch: %v", err)
	}
	for i, seed := range []uint64{3, 1, 2} {
		if results[i].Seed != seed {
			t.Errorf("results[%d].Seed = %d, want %d", i, results[i].Seed, seed)
		}
		if len(results[i].Artifacts[FormatSVG]) == 0 {
			t.Errorf("seed %d: missing svg", seed)
		}
	}
}

func TestBatchInvalidOptions(t *testing.T) {
	runner := NewRunner(nil, nil, quietLogger())
	opts := testOptions()
	opts.Formats = []string{"bmp"}
	if _, err := runner.Batch(context.Background(), BatchOptions{Options: opts, Count: 2}); err == nil {
		t.Error("expected validation error")
	}
}

func TestSummarize(t *testing.T) {
	if s := Summarize(nil); s.Runs != 0 || s.MeanV != 0 {
		t.Errorf("empty summary = %+v", s)
	}

	results := []BatchResult{
		{Stats: planar.Stats{V: 4, E: 2, C: 2, F: 1}},
		{Stats: planar.Stats{V: 6, E: 6, C: 1, F: 2}},
	}
	s := Summarize(results)
	if s.Runs != 2 || s.MeanV != 5 || s.MeanE != 4 || s.MeanC != 1.5 || s.MeanF != 1.5 {
		t.Errorf("means = %+v", s)
	}
	if s.MinE != 2 || s.MaxE != 6 || s.MinF != 1 || s.MaxF != 2 {
		t.Errorf("extremes = %+v", s)
	}
}

func TestRandomSeed(t *testing.T) {
	seen := make(map[uint64]bool)
	for range 16 {
		s := RandomSeed()
		if s == 0 {
			t.Fatal("RandomSeed returned zero")
		}
		seen[s] = true
	}
	if len(seen) < 2 {
		t.Error("RandomSeed should vary")
	}
}
