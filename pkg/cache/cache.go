// Package cache provides pluggable caching for resolution results.
//
// Three backends are available: FileCache for CLI usage, RedisCache for
// server deployments, and NullCache to disable caching. Keys are built by
// a Keyer so every input that changes the output (document hash, seed,
// sampler options) is part of the key.
package cache

import (
	"context"
	"time"
)

// Cache TTLs per payload type. Graphs depend only on the document and can
// live long; resolved scenes embed sampled state and are kept shorter so
// stale seeds age out of shared backends.
const (
	TTLGraph = 7 * 24 * time.Hour
	TTLScene = 24 * time.Hour
)

// Cache is the interface all cache backends implement.
// A miss is (nil, false, nil); errors are reserved for backend failures.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
