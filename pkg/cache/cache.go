// Package cache provides pluggable byte caches for layout results: a
// directory-backed file cache for CLI usage, Redis and MongoDB backends for
// shared deployments, and a null cache that disables caching.
package cache

import (
	"context"
	"strings"
	"time"

	"github.com/lattica/lattica/pkg/errors"
)

// Default TTLs per entry kind.
const (
	// TTLLayout is the lifetime of cached layout computations.
	TTLLayout = 7 * 24 * time.Hour

	// TTLGraph is the lifetime of cached imported graphs.
	TTLGraph = 24 * time.Hour
)

// Cache stores opaque byte values under string keys with a TTL.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// found; expired or corrupt entries count as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl stores the entry without
	// expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Open constructs a cache from a target string:
//
//   - "none" or "" disables caching (null cache)
//   - "redis://..." connects to Redis
//   - "mongodb://..." or "mongodb+srv://..." connects to MongoDB
//   - anything else is treated as a directory path for the file cache
func Open(ctx context.Context, target string) (Cache, error) {
	switch {
	case target == "" || target == "none":
		return NewNullCache(), nil
	case strings.HasPrefix(target, "redis://") || strings.HasPrefix(target, "rediss://"):
		return NewRedisCache(ctx, target)
	case strings.HasPrefix(target, "mongodb://") || strings.HasPrefix(target, "mongodb+srv://"):
		return NewMongoCache(ctx, target)
	case strings.Contains(target, "://"):
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported cache scheme in %q", target)
	default:
		return NewFileCache(target)
	}
}
