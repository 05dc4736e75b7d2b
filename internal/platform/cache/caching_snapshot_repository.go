// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"stocks_api/internal/feature/stockinfo/domain/entity"
	"stocks_api/internal/feature/stockinfo/usecase"
)

// CachingSnapshotRepository decorates a SnapshotRepository with Redis
// caching. It implements the decorator pattern, transparently adding
// caching without modifying the underlying repository. Snapshot rows are
// immutable, so a cached entry never goes stale within its day; entries
// expire at the next UTC midnight, when "today" rolls over anyway.
type CachingSnapshotRepository struct {
	inner     usecase.SnapshotRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.SnapshotRepository = (*CachingSnapshotRepository)(nil)

// NewCachingSnapshotRepository decorates a SnapshotRepository with Redis caching.
// If ttl is 0, each entry lives until the next UTC midnight. If namespace
// is empty, it uses "snapshots".
func NewCachingSnapshotRepository(rdb *redis.Client, ttl time.Duration, inner usecase.SnapshotRepository, namespace string) *CachingSnapshotRepository {
	if namespace == "" {
		namespace = "snapshots"
	}
	return &CachingSnapshotRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// FindBySymbolAndDate retrieves a snapshot, checking cache first then
// falling back to the database. Absence is not cached: a nil result
// always reaches the inner repository, so a snapshot inserted elsewhere
// becomes visible immediately.
func (c *CachingSnapshotRepository) FindBySymbolAndDate(ctx context.Context, symbol string, date time.Time) (*entity.StockSnapshot, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindBySymbolAndDate(ctx, symbol, date)
	}

	key := c.cacheKey(symbol, date)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.StockSnapshot
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.FindBySymbolAndDate(ctx, symbol, date)
	if err != nil || out == nil {
		return out, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.entryTTL()).Err()
	}

	return out, nil
}

// Create inserts the snapshot and, on success, writes it through to the
// cache. Rows are insert-only, so the fresh row can be cached under its
// exact key without any invalidation sweep.
func (c *CachingSnapshotRepository) Create(ctx context.Context, snapshot *entity.StockSnapshot) error {
	if err := c.inner.Create(ctx, snapshot); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	if b, err := json.Marshal(snapshot); err == nil {
		// Best effort: don't fail the insert if the cache write fails
		_ = c.rdb.Set(ctx, c.cacheKey(snapshot.Symbol, snapshot.Date), b, c.entryTTL()).Err()
	}
	return nil
}

// entryTTL returns the lifetime for a new cache entry.
func (c *CachingSnapshotRepository) entryTTL() time.Duration {
	if c.ttl > 0 {
		return c.ttl
	}
	return TimeUntilNextMidnightUTC()
}

// cacheKey generates the cache key for a (symbol, date) pair.
func (c *CachingSnapshotRepository) cacheKey(symbol string, date time.Time) string {
	return fmt.Sprintf("%s:%s:%s",
		c.namespace,
		safe(symbol),
		date.UTC().Format("2006-01-02"),
	)
}

// safe normalizes a key segment so symbols cannot break the key layout.
func safe(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), ":", "_")
}
