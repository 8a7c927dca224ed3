package storage

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/craftboard/internal/metrics"
	"github.com/osse101/craftboard/internal/repository"
)

// CachedStore is a read-through, write-through LRU cache in front of another store.
// Only successful loads are cached; misses always reach the backing store.
type CachedStore struct {
	next repository.Save
	lru  *expirable.LRU[string, []byte]
}

// NewCachedStore wraps next with a cache of at most size entries, each living for ttl.
// A ttl of zero disables expiry.
func NewCachedStore(next repository.Save, size int, ttl time.Duration) *CachedStore {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &CachedStore{
		next: next,
		lru:  expirable.NewLRU[string, []byte](size, nil, ttl),
	}
}

// Load implements repository.Save
func (c *CachedStore) Load(ctx context.Context, saveID string) ([]byte, error) {
	if data, ok := c.lru.Get(saveID); ok {
		metrics.SaveCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
		return append([]byte(nil), data...), nil
	}
	metrics.SaveCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()

	data, err := c.next.Load(ctx, saveID)
	if err != nil {
		return nil, err
	}
	c.lru.Add(saveID, append([]byte(nil), data...))
	return data, nil
}

// Save implements repository.Save. The cache is only updated once the backing write succeeds.
func (c *CachedStore) Save(ctx context.Context, saveID string, data []byte) error {
	if err := c.next.Save(ctx, saveID, data); err != nil {
		c.lru.Remove(saveID)
		return err
	}
	c.lru.Add(saveID, append([]byte(nil), data...))
	return nil
}

// Delete implements repository.Save
func (c *CachedStore) Delete(ctx context.Context, saveID string) error {
	c.lru.Remove(saveID)
	return c.next.Delete(ctx, saveID)
}

// List implements repository.Save. Listing always reads the backing store.
func (c *CachedStore) List(ctx context.Context) ([]repository.SaveInfo, error) {
	return c.next.List(ctx)
}

// Len returns the number of cached entries
func (c *CachedStore) Len() int {
	return c.lru.Len()
}

// Purge drops every cached entry
func (c *CachedStore) Purge() {
	c.lru.Purge()
}
