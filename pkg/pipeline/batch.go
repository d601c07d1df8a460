package pipeline

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/planargrid/pkg/planar"
)

// DefaultBatchConcurrency bounds the number of graphs generated at once.
var DefaultBatchConcurrency = runtime.GOMAXPROCS(0)

// BatchOptions configures a multi-seed run.
type BatchOptions struct {
	// Options are shared by every run. Seed is ignored.
	Options Options
	// Seeds lists the seeds to generate. When empty, Count consecutive
	// seeds starting at StartSeed are used.
	Seeds     []uint64
	StartSeed uint64
	Count     int
	// Concurrency bounds parallel workers. Zero selects DefaultBatchConcurrency.
	Concurrency int
	// Render also produces artifacts for each seed.
	Render bool
}

// BatchResult is the outcome for one seed.
type BatchResult struct {
	Seed      uint64
	Stats     planar.Stats
	Build     planar.BuildStats
	Cached    bool
	Artifacts map[string][]byte
}

// BatchSummary aggregates the results of a batch.
type BatchSummary struct {
	Runs                       int
	MeanV, MeanE, MeanC, MeanF float64
	MinE, MaxE                 int
	MinF, MaxF                 int
}

// seeds returns the seeds a batch covers.
func (b BatchOptions) seeds() []uint64 {
	if len(b.Seeds) > 0 {
		return b.Seeds
	}
	start := b.StartSeed
	if start == 0 {
		start = 1
	}
	out := make([]uint64, 0, max(b.Count, 0))
	for i := 0; i < b.Count; i++ {
		out = append(out, start+uint64(i))
	}
	return out
}

// Batch generates one graph per seed in parallel. Results keep the order of
// the seeds. The first failure cancels the remaining work.
func (r *Runner) Batch(ctx context.Context, opts BatchOptions) ([]BatchResult, error) {
	base := opts.Options
	r.applyLogger(&base)
	if err := base.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	seeds := opts.seeds()
	results := make([]BatchResult, len(seeds))

	limit := opts.Concurrency
	if limit <= 0 {
		limit = DefaultBatchConcurrency
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, seed := range seeds {
		g.Go(func() error {
			runOpts := base
			runOpts.Seed = seed
			graph, hit, err := r.GenerateWithCacheInfo(ctx, runOpts)
			if err != nil {
				return err
			}
			res := BatchResult{
				Seed:   seed,
				Stats:  graph.Stats(),
				Build:  graph.BuildStats(),
				Cached: hit,
			}
			if opts.Render {
				artifacts, err := r.Render(ctx, graph, runOpts)
				if err != nil {
					return err
				}
				res.Artifacts = artifacts
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.Logger.Info("batch complete", "runs", len(results), "concurrency", limit)
	return results, nil
}

// Summarize computes aggregate statistics over batch results.
func Summarize(results []BatchResult) BatchSummary {
	s := BatchSummary{Runs: len(results)}
	if len(results) == 0 {
		return s
	}
	s.MinE, s.MinF = results[0].Stats.E, results[0].Stats.F
	s.MaxE, s.MaxF = s.MinE, s.MinF
	for _, r := range results {
		st := r.Stats
		s.MeanV += float64(st.V)
		s.MeanE += float64(st.E)
		s.MeanC += float64(st.C)
		s.MeanF += float64(st.F)
		s.MinE, s.MaxE = min(s.MinE, st.E), max(s.MaxE, st.E)
		s.MinF, s.MaxF = min(s.MinF, st.F), max(s.MaxF, st.F)
	}
	n := float64(len(results))
	s.MeanV /= n
	s.MeanE /= n
	s.MeanC /= n
	s.MeanF /= n
	return s
}
