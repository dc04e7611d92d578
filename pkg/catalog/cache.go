package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/symptor-ai/symptor/pkg/common/logger"
)

// Lister is the read side of the persistence collaborator.
type Lister interface {
	List(ctx context.Context) ([]Condition, error)
}

// Cache holds a time-bounded snapshot of the condition catalog so request
// handlers do not refetch it on every scoring pass. The clock is injected so
// staleness is testable without wall-clock sleeps. Concurrent refreshes are
// idempotent; last writer wins.
type Cache struct {
	source Lister
	ttl    time.Duration
	now    func() time.Time

	mu        sync.RWMutex
	snapshot  []Condition
	fetchedAt time.Time
}

func NewCache(source Lister, ttl time.Duration, now func() time.Time) *Cache {
	if now == nil {
		now = time.Now
	}
	return &Cache{source: source, ttl: ttl, now: now}
}

// Conditions returns the cached snapshot, refreshing it when stale. When a
// refresh fails but an older snapshot exists, the stale snapshot is served
// so a flaky database does not take down matching.
func (c *Cache) Conditions(ctx context.Context) ([]Condition, error) {
	c.mu.RLock()
	if c.snapshot != nil && c.now().Sub(c.fetchedAt) < c.ttl {
		snapshot := c.snapshot
		c.mu.RUnlock()
		return snapshot, nil
	}
	c.mu.RUnlock()

	conditions, err := c.source.List(ctx)
	if err != nil {
		c.mu.RLock()
		stale := c.snapshot
		c.mu.RUnlock()
		if stale != nil {
			logger.Log.WithError(err).Warn("catalog refresh failed, serving stale snapshot")
			return stale, nil
		}
		return nil, err
	}

	c.mu.Lock()
	c.snapshot = conditions
	c.fetchedAt = c.now()
	c.mu.Unlock()

	return conditions, nil
}

// Invalidate forces the next Conditions call to refetch.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.fetchedAt = time.Time{}
	c.mu.Unlock()
}
