// Package zonecache memoizes parse results with an LRU policy. Keys are the
// full source text; entries are hashed internally so the cache never holds
// more than one digest per source.
package zonecache

import (
	"crypto/sha256"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/taich001/DNSzonefileManager/internal/zonefile/domain"
	"github.com/taich001/DNSzonefileManager/internal/zonefile/services/manager"
)

// zoneCache is an LRU-backed implementation of manager.ZoneCache.
// It tracks basic metrics: hits, misses, and evictions.
type zoneCache struct {
	lru       *lru.Cache[[32]byte, *domain.Zone]
	hits      uint64
	misses    uint64
	evictions uint64
}

// disabledCache is a no-op ZoneCache used when size <= 0.
type disabledCache struct{}

// New creates a ZoneCache with the given capacity. If size <= 0, a disabled
// no-op cache is returned that always misses and tracks no metrics.
func New(size int) (manager.ZoneCache, error) {
	if size <= 0 {
		return &disabledCache{}, nil
	}

	var zc zoneCache
	// NewWithEvict observes evictions, including Purge-induced ones.
	cache, err := lru.NewWithEvict(size, func(_ [32]byte, _ *domain.Zone) {
		atomic.AddUint64(&zc.evictions, 1)
	})
	if err != nil {
		return nil, err
	}
	zc.lru = cache
	return &zc, nil
}

// Get looks up a memoized zone by source text. The returned zone is shared;
// callers must treat it as read-only.
func (c *zoneCache) Get(key string) (*domain.Zone, bool) {
	if z, ok := c.lru.Get(sha256.Sum256([]byte(key))); ok {
		atomic.AddUint64(&c.hits, 1)
		return z, true
	}
	atomic.AddUint64(&c.misses, 1)
	return nil, false
}

// Put memoizes a parse result under its source text.
func (c *zoneCache) Put(key string, z *domain.Zone) {
	c.lru.Add(sha256.Sum256([]byte(key)), z)
}

// Len returns the number of entries in the cache.
func (c *zoneCache) Len() int { return c.lru.Len() }

// Purge clears all entries. Evictions are counted via the eviction callback.
func (c *zoneCache) Purge() { c.lru.Purge() }

// Stats returns cumulative hit/miss/eviction counters.
func (c *zoneCache) Stats() (hits, misses, evictions uint64) {
	return atomic.LoadUint64(&c.hits), atomic.LoadUint64(&c.misses), atomic.LoadUint64(&c.evictions)
}

// disabledCache implementation

func (d *disabledCache) Get(string) (*domain.Zone, bool) { return nil, false }

func (d *disabledCache) Put(string, *domain.Zone) {}

func (d *disabledCache) Len() int { return 0 }

func (d *disabledCache) Purge() {}

func (d *disabledCache) Stats() (uint64, uint64, uint64) { return 0, 0, 0 }

var _ manager.ZoneCache = (*zoneCache)(nil)
var _ manager.ZoneCache = (*disabledCache)(nil)
