// Package store archives generated graphs so they can be fetched again by ID.
//
// Three backends implement [Store]:
//   - [MemoryStore]: process-local, for tests and single-shot CLI runs
//   - [FileStore]: one JSON file per run, for CLI archives without a database
//   - [MongoStore]: MongoDB collection "runs", shared by server instances
//
// Records hold the generation config and the serialized graph, so a run can
// be re-rendered without regenerating it.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/planargrid/pkg/graph"
	"github.com/matzehuels/planargrid/pkg/planar"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when no record has the requested ID.
	ErrNotFound = errors.New("not found")
)

// DefaultListLimit caps List when no positive limit is given.
const DefaultListLimit = 50

// Record is one archived generation run.
type Record struct {
	ID        string        `json:"id" bson:"_id"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
	Config    planar.Config `json:"config" bson:"config"`
	Seed      uint64        `json:"seed" bson:"seed"`
	Graph     graph.Graph   `json:"graph" bson:"graph"`
}

// NewRecord wraps a finished graph in a record with a fresh random ID.
func NewRecord(cfg planar.Config, seed uint64, g *planar.Graph) Record {
	gj := graph.FromPlanar(g)
	gj.Seed = seed
	return Record{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Config:    cfg,
		Seed:      seed,
		Graph:     gj,
	}
}

// Store is the interface for run archive backends.
type Store interface {
	// Save inserts a record. IDs are unique; saving an existing ID fails.
	Save(ctx context.Context, rec Record) error

	// Get returns the record with the given ID or ErrNotFound.
	Get(ctx context.Context, id string) (Record, error)

	// List returns up to limit records, newest first.
	List(ctx context.Context, limit int) ([]Record, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// ValidID reports whether id is a well-formed record ID.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func listLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return limit
}
