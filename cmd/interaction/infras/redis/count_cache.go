package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"vidtube.com/cmd/model"
)

// Like count cache key: like:count:{target_kind}:{target_id}
const countKeyTemplate = "like:count:%s:%d"

// CountCache keeps hot like counters out of MySQL. The database stays the
// source of truth; a toggle only invalidates, the next read repopulates.
type CountCache struct {
	client     redis.Cmdable
	defaultTTL time.Duration
}

func NewCountCache(client redis.Cmdable) *CountCache {
	return &CountCache{
		client:     client,
		defaultTTL: 24 * time.Hour,
	}
}

func countKey(kind model.TargetKind, targetId int64) string {
	return fmt.Sprintf(countKeyTemplate, kind, targetId)
}

// GetLikeCount returns (count, true) on a cache hit.
func (c *CountCache) GetLikeCount(ctx context.Context, kind model.TargetKind, targetId int64) (int64, bool, error) {
	count, err := c.client.Get(ctx, countKey(kind, targetId)).Int64()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return count, true, nil
}

func (c *CountCache) SetLikeCount(ctx context.Context, kind model.TargetKind, targetId, count int64) error {
	return c.client.Set(ctx, countKey(kind, targetId), count, c.defaultTTL).Err()
}

func (c *CountCache) InvalidateLikeCount(ctx context.Context, kind model.TargetKind, targetId int64) error {
	return c.client.Del(ctx, countKey(kind, targetId)).Err()
}
