package reconcile

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// entry is a cached value with its build time.
type entry[T any] struct {
	value T
	built time.Time
	ttl   time.Duration
}

func (e *entry[T]) expired() bool {
	if e.ttl == 0 {
		return true
	}
	return time.Since(e.built) > e.ttl
}

// Cache is a TTL cache whose builds are de-duplicated per key.
type Cache[T any] struct {
	mu      sync.RWMutex
	entries map[string]*entry[T]
	sf      singleflight.Group
}

// NewCache creates an empty Cache.
func NewCache[T any]() *Cache[T] {
	return &Cache[T]{entries: make(map[string]*entry[T])}
}

// GetOrBuild returns the cached value for key, or builds it if it is missing or expired.
// Concurrent callers for the same key share one build.
func (c *Cache[T]) GetOrBuild(ctx context.Context, key string, ttl time.Duration, build func(context.Context) (T, error)) (T, error) {
	if v, ok := c.fresh(key); ok {
		return v, nil
	}

	out, err, _ := c.sf.Do(key, func() (any, error) {
		// Double-check after acquiring the flight
		if v, ok := c.fresh(key); ok {
			return v, nil
		}
		v, err := build(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = &entry[T]{value: v, built: time.Now(), ttl: ttl}
		c.mu.Unlock()
		return v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out.(T), nil
}

// Invalidate removes a key.
func (c *Cache[T]) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

func (c *Cache[T]) fresh(key string) (T, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || e.expired() {
		var zero T
		return zero, false
	}
	return e.value, true
}
