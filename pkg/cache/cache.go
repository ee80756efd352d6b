// Package cache stores rendered artifacts and walk results between runs.
//
// Three backends implement [Cache]:
//   - [FileCache] for the CLI, under the XDG cache directory
//   - [RedisCache] for the HTTP server, shared between instances
//   - [NullCache] when caching is disabled
//
// Keys are produced by a [Keyer] so that every caller agrees on the key
// layout. Entries are content addressed: the same graph, walk options and
// output format always map to the same key.
package cache

import (
	"context"
	"time"
)

// Default time-to-live values per entry kind.
const (
	TTLArtifact = 7 * 24 * time.Hour
	TTLResult   = 24 * time.Hour
)

// Cache is a byte-oriented key/value store with expiry.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the stored value and whether the key was found.
	// A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the backend.
	Close() error
}
