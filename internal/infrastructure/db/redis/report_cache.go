package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tajer/shop-finance-api/internal/api/metrics"
	"github.com/tajer/shop-finance-api/internal/core/domain"
)

const reportTTL = 15 * time.Minute

// ReportCache stores generated report payloads in Redis.
// Key format: report:<shop_id>:<report_type>:<from_unix>:<to_unix>
type ReportCache struct {
	client *redis.Client
}

// NewReportCache creates a ReportCache wrapping the given Redis client.
func NewReportCache(client *redis.Client) *ReportCache {
	return &ReportCache{client: client}
}

// Get returns a cached payload, or (nil, nil) on a miss.
func (c *ReportCache) Get(ctx context.Context, shopID string, reportType domain.ReportType, from, to time.Time) ([]byte, error) {
	payload, err := c.client.Get(ctx, c.key(shopID, reportType, from, to)).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.ReportCacheTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("report cache get: %w", err)
	}
	metrics.ReportCacheTotal.WithLabelValues("hit").Inc()
	return payload, nil
}

// Set stores a payload (expires after reportTTL).
func (c *ReportCache) Set(ctx context.Context, shopID string, reportType domain.ReportType, from, to time.Time, payload []byte) error {
	return c.client.Set(ctx, c.key(shopID, reportType, from, to), payload, reportTTL).Err()
}

func (c *ReportCache) key(shopID string, reportType domain.ReportType, from, to time.Time) string {
	return fmt.Sprintf("report:%s:%s:%d:%d", shopID, reportType, from.Unix(), to.Unix())
}
