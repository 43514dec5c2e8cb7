package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, max int, window time.Duration) (*Limiter, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return New(client, max, window), mr
}

func TestLimiterAllowsUpToMax(t *testing.T) {
	l, _ := newTestLimiter(t, 3, time.Hour)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow(ctx, "1.2.3.4"), "request %d should be allowed", i+1)
	}
	assert.False(t, l.Allow(ctx, "1.2.3.4"))
}

func TestLimiterIsolatesKeys(t *testing.T) {
	l, _ := newTestLimiter(t, 1, time.Hour)
	ctx := context.Background()

	assert.True(t, l.Allow(ctx, "1.2.3.4"))
	assert.False(t, l.Allow(ctx, "1.2.3.4"))
	assert.True(t, l.Allow(ctx, "5.6.7.8"))
}

func TestLimiterWindowExpires(t *testing.T) {
	l, mr := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	assert.True(t, l.Allow(ctx, "1.2.3.4"))
	assert.False(t, l.Allow(ctx, "1.2.3.4"))

	mr.FastForward(2 * time.Minute)
	assert.True(t, l.Allow(ctx, "1.2.3.4"))
}

func TestLimiterFailsOpenWhenRedisDown(t *testing.T) {
	l, mr := newTestLimiter(t, 1, time.Minute)
	mr.Close()

	assert.True(t, l.Allow(context.Background(), "1.2.3.4"))
}

func TestRetryAfter(t *testing.T) {
	l, _ := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	l.Allow(ctx, "1.2.3.4")
	retry := l.RetryAfter(ctx, "1.2.3.4")
	assert.Greater(t, retry, time.Duration(0))
	assert.LessOrEqual(t, retry, time.Minute)
}
