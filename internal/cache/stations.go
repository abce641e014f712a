package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/voltpoint/voltpoint/internal/model"
)

// stationListKey holds the cached public station listing with usage stats.
// The listing changes only when a station or a reservation is created, so
// writers invalidate it and readers repopulate on miss.
const stationListKey = "stations:list"

// DefaultStationListTTL is the fallback TTL for the cached station listing.
const DefaultStationListTTL = 60 * time.Second

// ErrCacheMiss indicates the requested entry is not in cache.
var ErrCacheMiss = errors.New("cache miss")

// GetStationList retrieves the cached station listing.
// Returns ErrCacheMiss if not found.
func (c *Cache) GetStationList(ctx context.Context) ([]*model.StationUsage, error) {
	data, err := c.client.Get(ctx, stationListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var stations []*model.StationUsage
	if err := json.Unmarshal(data, &stations); err != nil {
		// Treat a corrupt entry as a miss and drop it.
		c.client.Del(ctx, stationListKey)
		return nil, ErrCacheMiss
	}

	return stations, nil
}

// SetStationList stores the station listing with the given TTL.
func (c *Cache) SetStationList(ctx context.Context, stations []*model.StationUsage, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultStationListTTL
	}

	data, err := json.Marshal(stations)
	if err != nil {
		return fmt.Errorf("failed to marshal station list: %w", err)
	}

	if err := c.client.Set(ctx, stationListKey, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache station list: %w", err)
	}

	return nil
}

// InvalidateStationList drops the cached station listing.
func (c *Cache) InvalidateStationList(ctx context.Context) error {
	if err := c.client.Del(ctx, stationListKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate station list: %w", err)
	}
	return nil
}
