package server

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/planargrid/pkg/buildinfo"
	"github.com/matzehuels/planargrid/pkg/cache"
	"github.com/matzehuels/planargrid/pkg/errors"
	"github.com/matzehuels/planargrid/pkg/graph"
	"github.com/matzehuels/planargrid/pkg/pipeline"
	"github.com/matzehuels/planargrid/pkg/planar"
	"github.com/matzehuels/planargrid/pkg/store"
)

// Response headers carrying run metadata for artifact responses.
const (
	headerSeed  = "X-Planargrid-Seed"
	headerStats = "X-Planargrid-Stats"
)

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

type graphResponse struct {
	RunID     string       `json:"run_id,omitempty"`
	Seed      uint64       `json:"seed"`
	GraphHash string       `json:"graph_hash"`
	Cached    bool         `json:"cached"`
	Stats     planar.Stats `json:"stats"`
	Graph     graph.Graph  `json:"graph"`
}

type runsResponse struct {
	Runs []store.Record `json:"runs"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	opts, _, err := parseOptions(r.URL.Query(), s.Defaults)
	if err != nil {
		writeError(w, err)
		return
	}

	ctx := r.Context()
	g, hit, err := s.Runner.GenerateWithCacheInfo(ctx, opts)
	if err != nil {
		writeError(w, err)
		return
	}
	data, err := graph.MarshalGraph(g)
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "serialize graph"))
		return
	}

	gj := graph.FromPlanar(g)
	gj.Seed = opts.Seed
	resp := graphResponse{
		Seed:      opts.Seed,
		GraphHash: cache.Hash(data),
		Cached:    hit,
		Stats:     g.Stats(),
		Graph:     gj,
	}

	if s.Store != nil {
		rec := store.NewRecord(opts.Config(), opts.Seed, g)
		if err := s.Store.Save(ctx, rec); err != nil {
			s.Logger.Warn("archive run failed", "error", err)
		} else {
			resp.RunID = rec.ID
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleArtifact(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		writeError(w, err)
		return
	}
	opts, seeded, err := parseOptions(r.URL.Query(), s.Defaults)
	if err != nil {
		writeError(w, err)
		return
	}
	opts.Formats = []string{format}

	result, err := s.Runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}

	st := result.Graph.Stats()
	h := w.Header()
	h.Set("Content-Type", pipeline.ContentTypes[format])
	h.Set(headerSeed, strconv.FormatUint(result.Seed, 10))
	h.Set(headerStats, fmt.Sprintf("v=%d e=%d c=%d f=%d", st.V, st.E, st.C, st.F))
	if seeded {
		h.Set("Cache-Control", "public, max-age=86400, immutable")
	} else {
		h.Set("Cache-Control", "no-store")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		writeError(w, errArchiveDisabled())
		return
	}
	limit, err := intParam(r.URL.Query(), "limit", store.DefaultListLimit)
	if err != nil {
		writeError(w, err)
		return
	}
	runs, err := s.Store.List(r.Context(), limit)
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeUnavailable, err, "list runs"))
		return
	}
	if runs == nil {
		runs = []store.Record{}
	}
	writeJSON(w, http.StatusOK, runsResponse{Runs: runs})
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		writeError(w, errArchiveDisabled())
		return
	}
	id := chi.URLParam(r, "id")
	if !store.ValidID(id) {
		writeError(w, errNotFound("run %q not found", id))
		return
	}
	rec, err := s.Store.Get(r.Context(), id)
	if stderrors.Is(err, store.ErrNotFound) {
		writeError(w, errNotFound("run %q not found", id))
		return
	}
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeUnavailable, err, "get run"))
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func errArchiveDisabled() error {
	return errors.New(errors.ErrCodeUnsupported, "run archive is not configured")
}
