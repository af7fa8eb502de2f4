package redis

import (
	"time"

	"github.com/redis/go-redis/v9"

	"lifedash/internal/config"
)

// NewClient creates a Redis client from the application config.
func NewClient(conf *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         conf.RedisAddr,
		Password:     conf.RedisPassword,
		DB:           conf.RedisDB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
		PoolSize:     10,
	})
}
