// Package cache provides a small key/value cache used by the pipeline to
// skip regenerating graphs and re-rendering artifacts.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under a directory (CLI default)
//   - [RedisCache]: shared cache for the HTTP server
//   - [NullCache]: disables caching
//
// # Keys
//
// Keys come from a [Keyer]. [DefaultKeyer] hashes every parameter that
// influences the output, so a key changes whenever the result could.
// [ScopedKeyer] adds a namespace prefix.
package cache

import (
	"context"
	"time"
)

// Cache TTLs. Generated graphs are a pure function of their options, so
// entries only expire to bound disk and memory use.
const (
	TTLGraph    = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store with per-entry expiry.
//
// Get reports a miss as (nil, false, nil); errors are reserved for backend
// failures. A ttl of zero means no expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
