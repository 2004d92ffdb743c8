// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"stock_compare/internal/feature/symbollist/usecase"
	"stock_compare/internal/platform/cache"
	"stock_compare/internal/platform/config"
	"stock_compare/internal/platform/externalapi/alphavantage"
	infrahttp "stock_compare/internal/platform/http"
	infraredis "stock_compare/internal/platform/redis"
)

// NewMarket creates a fully configured Alpha Vantage client with HTTP client.
func NewMarket(cfg *config.Config) *alphavantage.Market {
	avCfg := alphavantage.Config{
		APIKey:  cfg.AlphaVantage.APIKey,
		BaseURL: cfg.AlphaVantage.BaseURL,
		Timeout: cfg.AlphaVantage.Timeout,
	}
	httpClient := infrahttp.NewHTTPClient(avCfg.Timeout, cfg.Proxy)
	return alphavantage.NewMarket(avCfg, httpClient)
}

// NewRedis returns a connected client, or nil when Redis is not configured or unreachable.
// The application runs without the listing cache in that case.
func NewRedis(ctx context.Context, cfg *config.Config) *redis.Client {
	addr := cfg.RedisAddr()
	if addr == "" {
		return nil
	}
	rdb, err := infraredis.NewRedisClient(ctx, infraredis.Config{
		Addr:     addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil
	}
	return rdb
}

// NewListingRepository wraps the upstream listing with the Redis cache.
// If rdb is nil, the cache is bypassed.
func NewListingRepository(rdb *redis.Client, inner usecase.ListingRepository, ttl time.Duration) usecase.ListingRepository {
	return cache.NewCachingListingRepository(rdb, ttl, inner, "symbols")
}
