package config

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisClient backs the public-checkout rate limiter. It stays nil when
// REDIS_URL is not configured and the limiter becomes a pass-through.
var RedisClient *redis.Client

// InitRedis connects to Redis when a URL is configured.
func InitRedis() error {
	if App == nil || App.RedisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(App.RedisURL)
	if err != nil {
		return fmt.Errorf("invalid REDIS_URL: %v", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %v", err)
	}

	RedisClient = client
	return nil
}
