package server

import (
	"net/url"
	"strconv"

	"github.com/matzehuels/planargrid/pkg/errors"
	"github.com/matzehuels/planargrid/pkg/pipeline"
)

// parseOptions overlays query parameters on the server defaults. The
// returned flag reports whether the client chose the seed. Explicit sizes
// are checked here because zero would otherwise be replaced by the default.
func parseOptions(q url.Values, defaults pipeline.Options) (pipeline.Options, bool, error) {
	opts := defaults
	opts.Formats = nil
	opts.Logger = nil

	var err error
	if opts.GridSize, err = intParam(q, "grid", opts.GridSize); err != nil {
		return opts, false, err
	}
	if q.Has("grid") {
		if err := errors.ValidateGridSize(opts.GridSize); err != nil {
			return opts, false, err
		}
	}
	if opts.VertexProbability, err = floatParam(q, "p", opts.VertexProbability); err != nil {
		return opts, false, err
	}
	if opts.RelativePotentialEdgeCount, err = floatParam(q, "rel", opts.RelativePotentialEdgeCount); err != nil {
		return opts, false, err
	}
	if opts.Resolution, err = intParam(q, "res", opts.Resolution); err != nil {
		return opts, false, err
	}
	if q.Has("res") {
		if err := errors.ValidateResolution(opts.Resolution); err != nil {
			return opts, false, err
		}
	}
	if opts.AllowSelfEdges, err = boolParam(q, "self", opts.AllowSelfEdges); err != nil {
		return opts, false, err
	}
	if opts.AllowMultiEdges, err = boolParam(q, "multi", opts.AllowMultiEdges); err != nil {
		return opts, false, err
	}
	if opts.Refresh, err = boolParam(q, "refresh", false); err != nil {
		return opts, false, err
	}
	if bg := q.Get("bg"); bg != "" {
		opts.Background = bg
	}

	seeded := q.Has("seed")
	if seeded {
		if opts.Seed, err = strconv.ParseUint(q.Get("seed"), 10, 64); err != nil || opts.Seed == 0 {
			return opts, false, errors.New(errors.ErrCodeInvalidInput, "invalid seed: %q (must be a positive integer)", q.Get("seed"))
		}
	} else if opts.Seed == 0 {
		opts.Seed = pipeline.RandomSeed()
	} else {
		seeded = true
	}
	return opts, seeded, nil
}

func intParam(q url.Values, name string, def int) (int, error) {
	if !q.Has(name) {
		return def, nil
	}
	v, err := strconv.Atoi(q.Get(name))
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "invalid %s: %q", name, q.Get(name))
	}
	return v, nil
}

func floatParam(q url.Values, name string, def float64) (float64, error) {
	if !q.Has(name) {
		return def, nil
	}
	v, err := strconv.ParseFloat(q.Get(name), 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "invalid %s: %q", name, q.Get(name))
	}
	return v, nil
}

func boolParam(q url.Values, name string, def bool) (bool, error) {
	if !q.Has(name) {
		return def, nil
	}
	if q.Get(name) == "" {
		return true, nil
	}
	v, err := strconv.ParseBool(q.Get(name))
	if err != nil {
		return false, errors.New(errors.ErrCodeInvalidInput, "invalid %s: %q", name, q.Get(name))
	}
	return v, nil
}
