package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"airaware_backend/platform/config"
	"airaware_backend/platform/logger"

	"github.com/redis/go-redis/v9"
)

// Cache is a short-TTL store for full analysis responses, keyed on the
// normalized location string and the budget. Identical queries seconds
// apart skip the whole provider pipeline. A nil *Cache is a no-op.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

func NewCache(cfg config.CacheConfig, log *logger.Logger) *Cache {
	if !cfg.IsCacheEnabled() {
		return nil
	}

	opts, err := redis.ParseURL(cfg.GetRedisURL())
	if err != nil {
		log.Error("invalid redis url, analysis cache disabled", "error", err.Error())
		return nil
	}

	return &Cache{
		client: redis.NewClient(opts),
		ttl:    cfg.GetAnalysisCacheTTL(),
		log:    log,
	}
}

func newCacheWithClient(client *redis.Client, ttl time.Duration, log *logger.Logger) *Cache {
	return &Cache{client: client, ttl: ttl, log: log}
}

func cacheKey(location string, budget int) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(location), " "))
	return fmt.Sprintf("analyze:%s:%d", normalized, budget)
}

// Get returns the cached response for the query, or nil on miss or any
// cache error. Cache failures never affect the request.
func (c *Cache) Get(ctx context.Context, location string, budget int) *AnalysisResponse {
	if c == nil {
		return nil
	}

	raw, err := c.client.Get(ctx, cacheKey(location, budget)).Bytes()
	if err != nil {
		return nil
	}

	var resp AnalysisResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil
	}
	return &resp
}

// Set stores the response under the normalized query key.
func (c *Cache) Set(ctx context.Context, location string, budget int, resp *AnalysisResponse) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, cacheKey(location, budget), raw, c.ttl).Err(); err != nil {
		c.log.Warn("analysis cache write failed", "error", err.Error())
	}
}
