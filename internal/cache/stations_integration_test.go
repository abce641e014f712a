//go:build integration

package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/voltpoint/voltpoint/internal/model"
	"github.com/voltpoint/voltpoint/internal/testutil"
)

func newCacheTestEnv(t *testing.T) (context.Context, *Cache) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	ctx := context.Background()
	redisURL := testutil.RequireEnv(t, "REDIS_URL")

	c, err := New(ctx, redisURL)
	if err != nil {
		t.Fatalf("connect redis: %v", err)
	}
	t.Cleanup(func() {
		_ = c.Close()
	})

	if err := testutil.FlushRedis(ctx, c.Client()); err != nil {
		t.Fatalf("flush redis: %v", err)
	}

	return ctx, c
}

func TestIntegrationStationListCache_RoundTrip(t *testing.T) {
	ctx, c := newCacheTestEnv(t)

	if _, err := c.GetStationList(ctx); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("empty cache error = %v, want ErrCacheMiss", err)
	}

	stations := []*model.StationUsage{
		{
			Station:         *testutil.NewTestStation(t, "Via Roma 1"),
			UtilizziTotali:  7,
			EnergiaMedia:    14.2,
			Classificazione: model.UsageMedium,
		},
	}

	if err := c.SetStationList(ctx, stations, time.Minute); err != nil {
		t.Fatalf("SetStationList failed: %v", err)
	}

	cached, err := c.GetStationList(ctx)
	if err != nil {
		t.Fatalf("GetStationList failed: %v", err)
	}
	if len(cached) != 1 {
		t.Fatalf("cached stations = %d, want 1", len(cached))
	}
	if cached[0].UtilizziTotali != 7 || cached[0].Classificazione != model.UsageMedium {
		t.Errorf("cached station = %d/%s, want 7/medium",
			cached[0].UtilizziTotali, cached[0].Classificazione)
	}
}

func TestIntegrationStationListCache_Invalidate(t *testing.T) {
	ctx, c := newCacheTestEnv(t)

	stations := []*model.StationUsage{
		{Station: *testutil.NewTestStation(t, "Via Roma 1")},
	}
	if err := c.SetStationList(ctx, stations, time.Minute); err != nil {
		t.Fatalf("SetStationList failed: %v", err)
	}

	if err := c.InvalidateStationList(ctx); err != nil {
		t.Fatalf("InvalidateStationList failed: %v", err)
	}

	if _, err := c.GetStationList(ctx); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("after invalidation error = %v, want ErrCacheMiss", err)
	}
}

func TestIntegrationRateLimit_TokenBucket(t *testing.T) {
	ctx, c := newCacheTestEnv(t)

	ip := "203.0.113.7"

	// Burst of 3 at 1 rps: three requests pass, the fourth is throttled.
	for i := 0; i < 3; i++ {
		result, err := c.CheckIPRateLimit(ctx, ip, 1, 3)
		if err != nil {
			t.Fatalf("CheckIPRateLimit failed: %v", err)
		}
		if !result.Allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	result, err := c.CheckIPRateLimit(ctx, ip, 1, 3)
	if err != nil {
		t.Fatalf("CheckIPRateLimit failed: %v", err)
	}
	if result.Allowed {
		t.Error("request over burst should be throttled")
	}
	if result.RetryAfter <= 0 {
		t.Errorf("RetryAfter = %s, want positive", result.RetryAfter)
	}

	// A different IP has its own bucket.
	other, err := c.CheckIPRateLimit(ctx, "198.51.100.9", 1, 3)
	if err != nil {
		t.Fatalf("CheckIPRateLimit failed: %v", err)
	}
	if !other.Allowed {
		t.Error("separate IP should not share the bucket")
	}
}
