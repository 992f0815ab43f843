package ratelimit

import "context"

// RateLimiter decides whether a request identified by key may proceed
// within the configured window.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Remaining(ctx context.Context, key string) (int64, error)
	Reset(ctx context.Context, key string) error
}
