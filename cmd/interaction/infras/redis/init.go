package redis

import (
	"github.com/redis/go-redis/v9"

	"vidtube.com/config"
)

const RedisDBInteraction = 0

// NewClient builds the interaction cache client from config.
func NewClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
		DB:       RedisDBInteraction,
	})
}
