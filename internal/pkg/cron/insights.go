package cron

import (
	"context"

	"github.com/MotionPhix/workhub-backend-go/internal/pkg/cache"
)

// NewInsightCacheHygieneJob drops all cached insight payloads. Cached entries
// carry a TTL already; this job additionally clears them on a daily schedule
// so rolling windows (last 30 days, trailing weeks) never straddle a day
// boundary with stale data.
func NewInsightCacheHygieneJob(c *cache.Cache) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return c.DeletePrefix(ctx, cache.KeyPrefix)
	}
}
