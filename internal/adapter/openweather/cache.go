package openweather

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/hydranaut/rtrwh-assessment/internal/domain"
	"github.com/hydranaut/rtrwh-assessment/internal/observability"
)

// CachedProvider wraps a RainfallProvider with an in-memory LRU cache.
// Weather snapshots go stale, so entries also expire after a TTL.
type CachedProvider struct {
	inner   domain.RainfallProvider
	cache   *lruCache
	metrics *observability.Metrics
}

// NewCachedProvider creates a cache decorator around a rainfall provider.
func NewCachedProvider(inner domain.RainfallProvider, maxEntries int, ttl time.Duration, metrics *observability.Metrics) *CachedProvider {
	return &CachedProvider{
		inner:   inner,
		cache:   newLRUCache(maxEntries, ttl, clockwork.NewRealClock()),
		metrics: metrics,
	}
}

func (c *CachedProvider) AnnualByCoordinates(ctx context.Context, lat, lon float64) (float64, error) {
	key := fmt.Sprintf("geo:%s,%s", formatCoord(lat), formatCoord(lon))
	if mm, ok := c.cache.get(key); ok {
		c.metrics.RainfallCache.WithLabelValues("coordinates", "hit").Inc()
		return mm, nil
	}
	c.metrics.RainfallCache.WithLabelValues("coordinates", "miss").Inc()

	mm, err := c.inner.AnnualByCoordinates(ctx, lat, lon)
	if err != nil {
		return mm, err
	}
	// Only cache positive results so "no rainfall reported" responses can be retried.
	if mm > 0 {
		c.cache.put(key, mm)
	}
	return mm, nil
}

func (c *CachedProvider) AnnualByPlace(ctx context.Context, place string) (float64, error) {
	key := "place:" + place
	if mm, ok := c.cache.get(key); ok {
		c.metrics.RainfallCache.WithLabelValues("place", "hit").Inc()
		return mm, nil
	}
	c.metrics.RainfallCache.WithLabelValues("place", "miss").Inc()

	mm, err := c.inner.AnnualByPlace(ctx, place)
	if err != nil {
		return mm, err
	}
	if mm > 0 {
		c.cache.put(key, mm)
	}
	return mm, nil
}

// lruCache is a simple thread-safe LRU cache with per-entry expiry.
type lruCache struct {
	maxEntries int
	ttl        time.Duration
	clock      clockwork.Clock
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key       string
	value     float64
	expiresAt time.Time
	prev      *entry
	next      *entry
}

func newLRUCache(maxEntries int, ttl time.Duration, clock clockwork.Clock) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		ttl:        ttl,
		clock:      clock,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return 0, false
	}
	if c.clock.Now().After(e.expiresAt) {
		delete(c.entries, key)
		c.remove(e)
		return 0, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	if e, ok := c.entries[key]; ok {
		e.value = value
		e.expiresAt = now.Add(c.ttl)
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value, expiresAt: now.Add(c.ttl)}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
