package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
)

// FileStore keeps one JSON file per record in a directory. It serves CLI
// archives where no database is configured.
type FileStore struct {
	mu  sync.RWMutex
	dir string
}

// NewFileStore creates the directory if needed and returns a store over it.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("file store: empty directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create archive dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Path returns the archive directory.
func (s *FileStore) Path() string { return s.dir }

func (s *FileStore) recordPath(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// Save writes rec to <dir>/<id>.json. An existing file with the same ID is
// an error.
func (s *FileStore) Save(_ context.Context, rec Record) error {
	if !ValidID(rec.ID) {
		return fmt.Errorf("save %q: invalid id", rec.ID)
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.recordPath(rec.ID), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, os.ErrExist) {
		return fmt.Errorf("save %s: duplicate id", rec.ID)
	}
	if err != nil {
		return fmt.Errorf("create record file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write record file: %w", err)
	}
	return f.Close()
}

// Get reads the record with the given ID.
func (s *FileStore) Get(_ context.Context, id string) (Record, error) {
	if !ValidID(id) {
		return Record{}, ErrNotFound
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, err := readRecord(s.recordPath(id))
	if errors.Is(err, os.ErrNotExist) {
		return Record{}, ErrNotFound
	}
	return rec, err
}

// List returns up to limit records, newest first. Unreadable files are
// skipped.
func (s *FileStore) List(ctx context.Context, limit int) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read archive dir: %w", err)
	}

	var out []Record
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		rec, err := readRecord(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			continue
		}
		out = append(out, rec)
	}

	slices.SortFunc(out, func(a, b Record) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out[:min(len(out), listLimit(limit))], nil
}

// Close does nothing for the file store.
func (s *FileStore) Close(context.Context) error { return nil }

func readRecord(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, err
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("parse record %s: %w", filepath.Base(path), err)
	}
	return rec, nil
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
