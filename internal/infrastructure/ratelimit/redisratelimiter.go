package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter is a fixed-window counter limiter. Each key gets an
// INCR-ed counter that expires with the window.
type RedisRateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewRedisRateLimiter creates a fixed-window limiter.
func NewRedisRateLimiter(client *redis.Client, limit int, window time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := l.redisKey(key)

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("increment rate counter: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, fmt.Errorf("set rate window expiry: %w", err)
		}
	}
	return count <= int64(l.limit), nil
}

func (l *RedisRateLimiter) Remaining(ctx context.Context, key string) (int64, error) {
	count, err := l.client.Get(ctx, l.redisKey(key)).Int64()
	if err != nil {
		if err == redis.Nil {
			return int64(l.limit), nil
		}
		return 0, fmt.Errorf("get rate counter: %w", err)
	}

	remaining := int64(l.limit) - count
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.redisKey(key)).Err(); err != nil {
		return fmt.Errorf("reset rate counter: %w", err)
	}
	return nil
}

func (l *RedisRateLimiter) redisKey(key string) string {
	window := time.Now().Unix() / int64(l.window.Seconds())
	return fmt.Sprintf("ratelimit:%s:%d", key, window)
}
