// Package cache provides the Redis-backed implementation of the cache provider.
package cache

import (
	"context"
	"time"

	"petspa/config"
	"petspa/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// connectTimeout bounds the startup ping so a down Redis fails fast.
const connectTimeout = 5 * time.Second

// NewRedisClient creates a Redis client and verifies the connection.
func NewRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to connect to redis")
	}

	return client, nil
}

// redisCache is the Redis-backed implementation of service.CacheProvider.
type redisCache struct {
	client *redis.Client
}

// NewRedisCache wraps a Redis client as a CacheProvider.
func NewRedisCache(client *redis.Client) service.CacheProvider {
	return &redisCache{client: client}
}

// Get retrieves the raw value stored under key.
func (c *redisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, service.ErrCacheMiss
		}

		return nil, errors.Wrap(err, "redis get failed")
	}

	return val, nil
}

// Set stores value under key with the given time-to-live.
func (c *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set failed")
	}

	return nil
}

// Delete removes one or more keys. Missing keys are ignored.
func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return errors.Wrap(err, "redis del failed")
	}

	return nil
}
