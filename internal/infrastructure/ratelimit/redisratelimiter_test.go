package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)

	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client, 5, time.Minute)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, "scan:1.2.3.4")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, "scan:1.2.3.4")
	require.NoError(t, err)
	assert.False(t, allowed, "6th request should be denied")
}

func TestRedisRateLimiter_KeysAreIndependent(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client, 1, time.Minute)
	ctx := context.Background()

	allowed, err := limiter.Allow(ctx, "scan:1.1.1.1")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "scan:1.1.1.1")
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = limiter.Allow(ctx, "scan:2.2.2.2")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisRateLimiter_Remaining(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client, 3, time.Minute)
	ctx := context.Background()

	remaining, err := limiter.Remaining(ctx, "scan:1.2.3.4")
	require.NoError(t, err)
	assert.EqualValues(t, 3, remaining)

	_, err = limiter.Allow(ctx, "scan:1.2.3.4")
	require.NoError(t, err)

	remaining, err = limiter.Remaining(ctx, "scan:1.2.3.4")
	require.NoError(t, err)
	assert.EqualValues(t, 2, remaining)
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client, 1, time.Minute)
	ctx := context.Background()

	_, err := limiter.Allow(ctx, "scan:1.2.3.4")
	require.NoError(t, err)

	require.NoError(t, limiter.Reset(ctx, "scan:1.2.3.4"))

	allowed, err := limiter.Allow(ctx, "scan:1.2.3.4")
	require.NoError(t, err)
	assert.True(t, allowed)
}
