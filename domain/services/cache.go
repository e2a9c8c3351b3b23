package services

import (
	"context"
	"time"
)

// Cache is a small string cache with per-key TTL. Implementations must be
// safe for concurrent use. Get returns ("", nil) on a miss; cache failures
// are returned as errors and callers treat them as misses.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
