package service

import (
	"context"
	"time"

	"petspa/internal/errors"
)

// ErrCacheMiss is returned when a key is not present in the cache.
var ErrCacheMiss = errors.New("cache miss")

// CacheProvider defines the interface for a key-value cache with expiration.
// This abstracts the backing store (e.g., Redis) from the use cases.
type CacheProvider interface {
	// Get retrieves the raw value stored under key, or ErrCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key with the given time-to-live.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes one or more keys. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
}
