package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"vidtube.com/cmd/model"
	"vidtube.com/config"
)

const (
	RedisDBVideo = 1

	videoInfoKeyTemplate = "video:info:%d"
)

func NewClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
		DB:       RedisDBVideo,
	})
}

// VideoInfoCache keeps hot video rows in redis. Writers invalidate; readers
// repopulate from MySQL. The visit counter lives in the row, so a counted
// view must invalidate too.
type VideoInfoCache struct {
	client     redis.Cmdable
	defaultTTL time.Duration
}

func NewVideoInfoCache(client redis.Cmdable) *VideoInfoCache {
	return &VideoInfoCache{
		client:     client,
		defaultTTL: 10 * time.Minute,
	}
}

func videoInfoKey(videoId int64) string {
	return fmt.Sprintf(videoInfoKeyTemplate, videoId)
}

func (c *VideoInfoCache) Get(ctx context.Context, videoId int64) (*model.Video, bool, error) {
	data, err := c.client.Get(ctx, videoInfoKey(videoId)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	video := &model.Video{}
	if err := json.Unmarshal(data, video); err != nil {
		return nil, false, err
	}
	return video, true, nil
}

func (c *VideoInfoCache) Set(ctx context.Context, video *model.Video) error {
	data, err := json.Marshal(video)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, videoInfoKey(video.VideoId), data, c.defaultTTL).Err()
}

func (c *VideoInfoCache) Invalidate(ctx context.Context, videoId int64) error {
	return c.client.Del(ctx, videoInfoKey(videoId)).Err()
}
