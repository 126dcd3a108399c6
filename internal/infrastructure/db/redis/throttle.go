package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	maxFailures   = 5
	failureWindow = 15 * time.Minute
)

// LoginThrottle counts failed login attempts per (name, role) in Redis.
// Key format: login_fail:<role>:<name>
type LoginThrottle struct {
	client *redis.Client
}

// NewLoginThrottle creates a LoginThrottle wrapping the given Redis client.
func NewLoginThrottle(client *redis.Client) *LoginThrottle {
	return &LoginThrottle{client: client}
}

// TooManyFailures reports whether the account has exceeded the failure limit
// within the current window.
func (t *LoginThrottle) TooManyFailures(ctx context.Context, name, role string) (bool, error) {
	n, err := t.client.Get(ctx, t.key(name, role)).Int64()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n >= maxFailures, nil
}

// RecordFailure increments the failure counter. The window TTL is set on the
// first failure and left untouched afterwards.
func (t *LoginThrottle) RecordFailure(ctx context.Context, name, role string) error {
	key := t.key(name, role)
	n, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("throttle incr: %w", err)
	}
	if n == 1 {
		if err := t.client.Expire(ctx, key, failureWindow).Err(); err != nil {
			return fmt.Errorf("throttle expire: %w", err)
		}
	}
	return nil
}

// Reset clears the counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, name, role string) error {
	return t.client.Del(ctx, t.key(name, role)).Err()
}

func (t *LoginThrottle) key(name, role string) string {
	return fmt.Sprintf("login_fail:%s:%s", role, name)
}
