// ABOUTME: In-memory cache implementation backed by patrickmn/go-cache
// ABOUTME: Provides TTL support with automatic cleanup of expired entries

package memory

import (
	"context"
	"errors"

	"time"

	gocache "github.com/patrickmn/go-cache"
)

// ErrCacheMiss is returned when a key is not found in the cache.
var ErrCacheMiss = errors.New("cache: key not found")

// MemoryCache implements the Cache interface using in-process storage.
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates an in-memory cache. defaultExpiration applies to
// entries stored with a zero TTL; cleanupInterval controls how often
// expired entries are purged.
func NewMemoryCache(defaultExpiration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultExpiration, cleanupInterval),
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	value, found := c.cache.Get(key)
	if !found {
		return nil, ErrCacheMiss
	}

	stored, ok := value.([]byte)
	if !ok {
		return nil, ErrCacheMiss
	}

	// Return a copy so callers cannot mutate the cached bytes
	result := make([]byte, len(stored))
	copy(result, stored)
	return result, nil
}

// Set stores a value in the cache with the given TTL. A zero TTL uses the
// cache's default expiration.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	if ttl == 0 {
		c.cache.SetDefault(key, stored)
	} else {
		c.cache.Set(key, stored, ttl)
	}
	return nil
}

// Delete removes a key from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	c.cache.Delete(key)
	return nil
}

// ItemCount returns the number of entries currently stored, including ones
// not yet purged.
func (c *MemoryCache) ItemCount() int {
	return c.cache.ItemCount()
}
