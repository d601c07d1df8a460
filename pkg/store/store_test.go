package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/planargrid/pkg/graph"
	"github.com/matzehuels/planargrid/pkg/planar"
)

func sampleRecord(t *testing.T, seed uint64) Record {
	t.Helper()
	cfg := planar.Config{GridSize: 6, VertexProbability: 0.5, RelativePotentialEdgeCount: 1}
	return NewRecord(cfg, seed, planar.Generate(cfg, seed))
}

func TestNewRecord(t *testing.T) {
	rec := sampleRecord(t, 9)

	assert.True(t, ValidID(rec.ID))
	assert.False(t, rec.CreatedAt.IsZero())
	assert.Equal(t, uint64(9), rec.Seed)
	assert.Equal(t, uint64(9), rec.Graph.Seed)
	assert.Equal(t, 6, rec.Graph.GridSize)

	// the archived graph decodes back to the same stats
	g, err := graph.ToPlanar(rec.Graph)
	require.NoError(t, err)
	assert.Equal(t, rec.Graph.Stats, g.Stats())

	assert.NotEqual(t, rec.ID, sampleRecord(t, 9).ID)
}

func TestValidID(t *testing.T) {
	assert.True(t, ValidID("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	assert.False(t, ValidID("not-an-id"))
	assert.False(t, ValidID(""))
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	a, b, c := sampleRecord(t, 1), sampleRecord(t, 2), sampleRecord(t, 3)
	for _, r := range []Record{a, b, c} {
		require.NoError(t, s.Save(ctx, r))
	}

	got, err := s.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b, got)

	_, err = s.Get(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNotFound))

	assert.Error(t, s.Save(ctx, a), "duplicate id must fail")

	list, err := s.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, c.ID, list[0].ID)
	assert.Equal(t, b.ID, list[1].ID)

	all, err := s.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMemoryStoreEmptyList(t *testing.T) {
	list, err := NewMemoryStore().List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "runs")
	s, err := NewFileStore(dir)
	require.NoError(t, err)
	defer s.Close(ctx)
	assert.Equal(t, dir, s.Path())

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	recs := []Record{sampleRecord(t, 1), sampleRecord(t, 2), sampleRecord(t, 3)}
	for i := range recs {
		recs[i].CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, s.Save(ctx, recs[i]))
	}

	got, err := s.Get(ctx, recs[1].ID)
	require.NoError(t, err)
	assert.Equal(t, recs[1].ID, got.ID)
	assert.Equal(t, recs[1].Config, got.Config)
	assert.Equal(t, recs[1].Graph.Stats, got.Graph.Stats)
	assert.True(t, recs[1].CreatedAt.Equal(got.CreatedAt))

	_, err = s.Get(ctx, "6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = s.Get(ctx, "../escape")
	assert.True(t, errors.Is(err, ErrNotFound))

	assert.Error(t, s.Save(ctx, recs[0]), "duplicate id must fail")

	// junk files are ignored by List
	require.NoError(t, os.WriteFile(filepath.Join(dir, "junk.json"), []byte("{"), 0o644))

	list, err := s.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, recs[2].ID, list[0].ID)
	assert.Equal(t, recs[1].ID, list[1].ID)
}

func TestNewFileStoreEmptyDir(t *testing.T) {
	_, err := NewFileStore("")
	assert.Error(t, err)
}

func TestNewMongoStoreBadURI(t *testing.T) {
	_, err := NewMongoStore(context.Background(), MongoConfig{URI: "not-a-mongo-uri"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect mongo")
}
