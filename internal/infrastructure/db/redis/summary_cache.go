package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/campusboard/result-api/internal/api/metrics"
	"github.com/campusboard/result-api/internal/core/domain"
)

const summaryTTL = 5 * time.Minute

// SummaryCache caches computed class summaries in Redis.
// Key format: summary:<class_key>
type SummaryCache struct {
	client *redis.Client
}

// NewSummaryCache creates a SummaryCache wrapping the given Redis client.
func NewSummaryCache(client *redis.Client) *SummaryCache {
	return &SummaryCache{client: client}
}

// Get returns the cached summary for a class, or (nil, nil) on a miss.
func (c *SummaryCache) Get(ctx context.Context, classKey string) (*domain.ResultSummary, error) {
	raw, err := c.client.Get(ctx, c.key(classKey)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.SummaryCacheTotal.WithLabelValues("miss").Inc()
			return nil, nil
		}
		return nil, fmt.Errorf("summary cache get: %w", err)
	}

	var summary domain.ResultSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		// Treat a corrupt entry as a miss; the next Set overwrites it.
		metrics.SummaryCacheTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}
	metrics.SummaryCacheTotal.WithLabelValues("hit").Inc()
	return &summary, nil
}

// Set stores a summary with a TTL so even a lost invalidation heals itself.
func (c *SummaryCache) Set(ctx context.Context, summary *domain.ResultSummary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("summary cache marshal: %w", err)
	}
	return c.client.Set(ctx, c.key(summary.ClassKey), raw, summaryTTL).Err()
}

// Invalidate drops the cached summary for a class after an ingest.
func (c *SummaryCache) Invalidate(ctx context.Context, classKey string) error {
	return c.client.Del(ctx, c.key(classKey)).Err()
}

func (c *SummaryCache) key(classKey string) string {
	return "summary:" + classKey
}
