package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pizzeria-brothers/restaurant-system/internal/api/metrics"
	"github.com/pizzeria-brothers/restaurant-system/internal/core/domain"
)

const (
	statsKey        = "mesas:estadisticas"
	defaultStatsTTL = 15 * time.Second
)

// StatsCache keeps the table occupancy aggregate in Redis for a short TTL.
// The floor dashboard polls the statistics endpoint, so a brief cache keeps
// the aggregation off the store's hot path. A stale-by-seconds read is
// acceptable for a display counter.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache creates a StatsCache. A non-positive ttl falls back to the
// default.
func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	if ttl <= 0 {
		ttl = defaultStatsTTL
	}
	return &StatsCache{client: client, ttl: ttl}
}

// Get returns the cached aggregate, or (nil, nil) on a miss.
func (c *StatsCache) Get(ctx context.Context) (*domain.TableStatistics, error) {
	raw, err := c.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.StatsCacheTotal.WithLabelValues("miss").Inc()
			return nil, nil
		}
		metrics.StatsCacheTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("stats cache get: %w", err)
	}

	var stats domain.TableStatistics
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("stats cache decode: %w", err)
	}
	metrics.StatsCacheTotal.WithLabelValues("hit").Inc()
	return &stats, nil
}

// Set stores the aggregate until the TTL elapses.
func (c *StatsCache) Set(ctx context.Context, stats domain.TableStatistics) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}
	return c.client.Set(ctx, statsKey, raw, c.ttl).Err()
}
