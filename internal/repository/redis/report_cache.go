package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	return &ReportCache{
		client: client,
		ttl:    ttl,
	}
}

func (r *ReportCache) key(report string) string {
	return fmt.Sprintf("report:%s", report)
}

func (r *ReportCache) Get(ctx context.Context, report string, dest interface{}) error {
	val, err := r.client.Get(ctx, r.key(report)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return fmt.Errorf("failed to get report from Redis: %w", err)
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return fmt.Errorf("failed to unmarshal cached report: %w", err)
	}

	return nil
}

func (r *ReportCache) Set(ctx context.Context, report string, value interface{}) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := r.client.Set(ctx, r.key(report), jsonData, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store report in Redis: %w", err)
	}

	return nil
}

// Invalidate drops a cached report, used after writes that change the
// underlying rows.
func (r *ReportCache) Invalidate(ctx context.Context, reports ...string) error {
	keys := make([]string, 0, len(reports))
	for _, report := range reports {
		keys = append(keys, r.key(report))
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached reports: %w", err)
	}

	return nil
}
