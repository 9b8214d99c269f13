package persistence

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/civic-voice/internal/domain"
)

const feedKey = "issues:feed:recent"

// FeedCache keeps the community issue feed in Redis for a short TTL.
// Every operation is best-effort: cache failures are logged and the caller
// falls back to the database.
type FeedCache struct {
	redis  *Redis
	ttl    time.Duration
	logger *zap.Logger
}

// NewFeedCache builds a cache over the shared Redis client.
func NewFeedCache(r *Redis, ttl time.Duration, logger *zap.Logger) *FeedCache {
	return &FeedCache{redis: r, ttl: ttl, logger: logger}
}

// Get returns the cached feed and whether it was present.
func (c *FeedCache) Get(ctx context.Context) ([]domain.IssueWithReporter, bool) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return nil, false
	}
	raw, err := c.redis.Client.Get(ctx, feedKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("feed cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var items []domain.IssueWithReporter
	if err := json.Unmarshal(raw, &items); err != nil {
		c.logger.Warn("feed cache payload corrupt", zap.Error(err))
		return nil, false
	}
	return items, true
}

// Set stores the feed snapshot.
func (c *FeedCache) Set(ctx context.Context, items []domain.IssueWithReporter) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return
	}
	raw, err := json.Marshal(items)
	if err != nil {
		c.logger.Warn("feed cache encode failed", zap.Error(err))
		return
	}
	if err := c.redis.Client.Set(ctx, feedKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("feed cache write failed", zap.Error(err))
	}
}

// Invalidate drops the snapshot after a new report lands.
func (c *FeedCache) Invalidate(ctx context.Context) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return
	}
	if err := c.redis.Client.Del(ctx, feedKey).Err(); err != nil {
		c.logger.Warn("feed cache invalidation failed", zap.Error(err))
	}
}
