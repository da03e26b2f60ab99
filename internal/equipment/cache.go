package equipment

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/BrandishRPG_Go/internal/domain"
	"github.com/osse101/BrandishRPG_Go/internal/metrics"
	"github.com/osse101/BrandishRPG_Go/internal/repository"
)

// cachedItemEntry wraps an item with version metadata for cache invalidation
type cachedItemEntry struct {
	Version  string
	Item     *domain.Item
	CachedAt time.Time
}

// CachedItemStore decorates an item store with an expiring LRU.
// Writes through this store keep it coherent. Writes that bypass it, such as
// a transactional level update, must call Invalidate after commit.
type CachedItemStore struct {
	next repository.Item
	lru  *expirable.LRU[string, *cachedItemEntry]
}

var _ repository.Item = (*CachedItemStore)(nil)

// NewCachedItemStore wraps next with a cache of at most size entries
func NewCachedItemStore(next repository.Item, size int, ttl time.Duration) *CachedItemStore {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &CachedItemStore{
		next: next,
		lru:  expirable.NewLRU[string, *cachedItemEntry](size, nil, ttl),
	}
}

// GetItem returns a copy of the cached item or loads it from the wrapped store
func (c *CachedItemStore) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	if entry, ok := c.lru.Get(id); ok {
		if entry.Version == CacheSchemaVersion {
			metrics.ItemCacheLookups.WithLabelValues(metrics.CacheResultHit).Inc()
			return entry.Item.Clone(), nil
		}
		c.lru.Remove(id)
	}
	metrics.ItemCacheLookups.WithLabelValues(metrics.CacheResultMiss).Inc()

	item, err := c.next.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	c.set(item)
	return item, nil
}

// InsertItem writes through and caches the new item
func (c *CachedItemStore) InsertItem(ctx context.Context, item *domain.Item) error {
	if err := c.next.InsertItem(ctx, item); err != nil {
		return err
	}
	c.set(item)
	return nil
}

// UpdateItemLevel writes through and drops the cached copy
func (c *CachedItemStore) UpdateItemLevel(ctx context.Context, itemID string, level int) error {
	if err := c.next.UpdateItemLevel(ctx, itemID, level); err != nil {
		return err
	}
	c.Invalidate(itemID)
	return nil
}

// Invalidate removes an item from the cache
func (c *CachedItemStore) Invalidate(itemID string) {
	c.lru.Remove(itemID)
}

// Clear removes all entries from the cache
func (c *CachedItemStore) Clear() {
	c.lru.Purge()
}

// Len returns the number of cached items
func (c *CachedItemStore) Len() int {
	return c.lru.Len()
}

func (c *CachedItemStore) set(item *domain.Item) {
	c.lru.Add(item.ID, &cachedItemEntry{
		Version:  CacheSchemaVersion,
		Item:     item.Clone(),
		CachedAt: time.Now(),
	})
}
