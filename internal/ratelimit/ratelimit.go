// Package ratelimit provides a Redis-backed fixed-window rate limiter for
// the public contact endpoint.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/baobabstack/website-api/internal/pkg/logger"
)

// Limiter counts submissions per client key in fixed windows. Redis errors
// fail open: enforcement is best-effort and must never take the contact form
// down with it.
type Limiter struct {
	client *redis.Client
	max    int
	window time.Duration
}

// New creates a limiter over the given Redis client.
func New(client *redis.Client, max int, window time.Duration) *Limiter {
	return &Limiter{client: client, max: max, window: window}
}

// Allow reports whether the client identified by key may submit now.
// The first request in a window sets the key's expiry; subsequent requests
// increment the same counter until it expires.
func (l *Limiter) Allow(ctx context.Context, key string) bool {
	redisKey := fmt.Sprintf("contact:ratelimit:%s", key)

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		logger.Warn("rate limiter unavailable; allowing request", "error", err)
		return true
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			logger.Warn("rate limiter expire failed", "error", err)
		}
	}

	return count <= int64(l.max)
}

// RetryAfter returns how long the client should wait before retrying.
func (l *Limiter) RetryAfter(ctx context.Context, key string) time.Duration {
	ttl, err := l.client.TTL(ctx, fmt.Sprintf("contact:ratelimit:%s", key)).Result()
	if err != nil || ttl < 0 {
		return l.window
	}
	return ttl
}
