// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"stock_compare/internal/feature/symbollist/domain/entity"
	"stock_compare/internal/feature/symbollist/usecase"
)

// CachingListingRepository decorates a ListingRepository with Redis caching.
// Only exchange listings are cached. Price histories always go to the API.
type CachingListingRepository struct {
	inner     usecase.ListingRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
	now       func() time.Time
}

var _ usecase.ListingRepository = (*CachingListingRepository)(nil)

// NewCachingListingRepository decorates a ListingRepository with Redis caching.
// If ttl is 0, entries live until the next DefaultRefreshHour (UTC).
// If namespace is empty, it uses "symbols".
func NewCachingListingRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ListingRepository, namespace string) *CachingListingRepository {
	if ttl < 0 {
		ttl = 0
	}
	if namespace == "" {
		namespace = "symbols"
	}
	return &CachingListingRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
		now:       time.Now,
	}
}

// ListSymbols retrieves the listing, checking cache first then falling back to the API.
func (c *CachingListingRepository) ListSymbols(ctx context.Context, exchange string) ([]entity.Symbol, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.ListSymbols(ctx, exchange)
	}

	key := c.cacheKey(exchange)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Symbol
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		slog.Warn("corrupted listing cache entry", "key", key)
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the upstream listing
	out, err := c.inner.ListSymbols(ctx, exchange)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		if err := c.rdb.Set(ctx, key, b, c.expiry()).Err(); err != nil {
			slog.Warn("failed to cache listing", "key", key, "error", err)
		}
	}

	return out, nil
}

// expiry returns the configured TTL or the time left until the next daily refresh.
func (c *CachingListingRepository) expiry() time.Duration {
	if c.ttl > 0 {
		return c.ttl
	}
	return TimeUntilNext(c.now(), DefaultRefreshHour, time.UTC)
}

// cacheKey generates a cache key for an exchange listing.
func (c *CachingListingRepository) cacheKey(exchange string) string {
	return fmt.Sprintf("%s:%s", c.namespace, safe(exchange))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
