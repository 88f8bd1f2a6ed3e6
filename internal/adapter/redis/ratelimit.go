package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// FixedWindowLimiter counts hits per key in fixed windows shared by every
// server instance.
type FixedWindowLimiter struct {
	client *goredis.Client
	prefix string
}

// NewFixedWindowLimiter creates a limiter. prefix namespaces every key.
func NewFixedWindowLimiter(client *goredis.Client, prefix string) *FixedWindowLimiter {
	return &FixedWindowLimiter{client: client, prefix: prefix}
}

// Allow records a hit for key and reports whether it is within limit for the
// current window. When denied, retryAfter is the time left in the window.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error) {
	k := l.prefix + "ratelimit:" + key

	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, 0, fmt.Errorf("rate limit %s: %w", key, err)
	}
	if n == 1 {
		if err := l.client.PExpire(ctx, k, window).Err(); err != nil {
			return false, 0, fmt.Errorf("rate limit %s: %w", key, err)
		}
	}

	if n <= int64(limit) {
		return true, 0, nil
	}

	ttl, err := l.client.PTTL(ctx, k).Result()
	if err != nil {
		return false, 0, fmt.Errorf("rate limit %s: %w", key, err)
	}
	if ttl < 0 {
		// Counter lost its expiry; start a fresh window.
		_ = l.client.PExpire(ctx, k, window).Err()
		ttl = window
	}
	return false, ttl, nil
}
