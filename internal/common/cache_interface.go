package common

import "time"

// CacheInterface abstracts the summary cache. Production prefers Redis so
// warmed stats entries survive restarts and are shared across instances;
// tests and degraded startup fall back to the in-process implementation.
type CacheInterface interface {
	// Set stores a value under key for the given duration.
	Set(key string, value interface{}, duration time.Duration)

	// Get returns the value for key and whether it was present. Implementations
	// that serialize (Redis) hand back the decoded generic form, not the
	// stored Go type; callers needing a typed value decode it themselves.
	Get(key string) (interface{}, bool)

	// Delete drops key. Record write paths use this to invalidate stale
	// deployment summaries.
	Delete(key string)

	// GetOrSet returns the cached value, or runs loader and caches its result.
	GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error)

	// Close releases any underlying connection.
	Close() error
}
