package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginThrottle counts failed login attempts per subject in a fixed window.
// Key format: login_attempts:<subject>
type LoginThrottle struct {
	client *redis.Client
	max    int64
	window time.Duration
}

// NewLoginThrottle creates a throttle allowing max attempts per window.
func NewLoginThrottle(client *redis.Client, max int, window time.Duration) *LoginThrottle {
	return &LoginThrottle{client: client, max: int64(max), window: window}
}

// Allow increments the attempt counter for subject and reports whether the
// attempt is within the window budget. The window starts at the first attempt.
func (t *LoginThrottle) Allow(ctx context.Context, subject string) (bool, error) {
	key := t.key(subject)

	n, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("throttle incr: %w", err)
	}
	if n == 1 {
		if err := t.client.Expire(ctx, key, t.window).Err(); err != nil {
			return false, fmt.Errorf("throttle expire: %w", err)
		}
	}
	return n <= t.max, nil
}

// Reset clears the attempt counter for subject after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, subject string) error {
	return t.client.Del(ctx, t.key(subject)).Err()
}

func (t *LoginThrottle) key(subject string) string {
	return "login_attempts:" + subject
}
