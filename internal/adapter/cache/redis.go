// Package cache provides a Redis-backed result page cache.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/skyroute/itinerary-search-service/internal/domain"
	"github.com/skyroute/itinerary-search-service/internal/infrastructure/logger"
	"github.com/skyroute/itinerary-search-service/internal/usecase"
)

const keyPrefix = "itinerary:search:"

var _ usecase.PageCache = (*RedisPageCache)(nil)

// RedisPageCache stores whole result pages in Redis keyed by the full
// search criteria. Redis failures are logged and treated as misses so
// the cache can never break a search.
type RedisPageCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

// NewRedisPageCache creates a page cache over the given Redis client.
func NewRedisPageCache(client *redis.Client, ttl time.Duration, log *logger.Logger) *RedisPageCache {
	if log == nil {
		log = logger.Nop()
	}
	return &RedisPageCache{
		client: client,
		ttl:    ttl,
		log:    log.WithComponent("cache"),
	}
}

// cacheKey derives a stable key from the full criteria value. Any change
// to any criteria field, including the page number, produces a new key.
func cacheKey(criteria domain.SearchCriteria) string {
	raw, err := json.Marshal(criteria)
	if err != nil {
		// SearchCriteria contains only marshalable fields.
		return keyPrefix + "invalid"
	}
	sum := sha256.Sum256(raw)
	return keyPrefix + hex.EncodeToString(sum[:])
}

// Get returns the cached page for the criteria, if present.
func (c *RedisPageCache) Get(ctx context.Context, criteria domain.SearchCriteria) (domain.ResultPage, bool) {
	raw, err := c.client.Get(ctx, cacheKey(criteria)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("cache read failed")
		}
		return domain.ResultPage{}, false
	}

	var page domain.ResultPage
	if err := json.Unmarshal(raw, &page); err != nil {
		c.log.Warn().Err(err).Msg("cache entry corrupt, ignoring")
		return domain.ResultPage{}, false
	}
	return page, true
}

// Set stores the page under the criteria's key with the configured TTL.
func (c *RedisPageCache) Set(ctx context.Context, criteria domain.SearchCriteria, page domain.ResultPage) {
	raw, err := json.Marshal(page)
	if err != nil {
		c.log.Warn().Err(err).Msg("cache marshal failed")
		return
	}
	if err := c.client.Set(ctx, cacheKey(criteria), raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("cache write failed")
	}
}
