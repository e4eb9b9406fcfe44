// internal/core/ports/cache.go
package ports

import (
	"context"
	"time"
)

// CacheRepository defines the interface for cache operations. Every entry
// carries an explicit TTL; Delete is the explicit invalidation path.
type CacheRepository interface {
	SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, keys ...string) (bool, error)

	// GetOrSet returns the cached value for key, or runs fetch and caches
	// its result with the given TTL.
	GetOrSet(ctx context.Context, key string, dest interface{},
		fetch func() (interface{}, error), ttl time.Duration) error

	TTL(ctx context.Context, key string) (time.Duration, error)
	Ping(ctx context.Context) error
}
