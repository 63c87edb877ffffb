package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const defaultPrefix = "filmoradmin:ratelimit:login:"

type LimiterConfig struct {
	MaxAttempts   int64 `mapstructure:"login_max_attempts" json:"login_max_attempts"`
	WindowMinutes int   `mapstructure:"login_window_minutes" json:"login_window_minutes"`
}

type loginLimiter struct {
	client      goredis.Cmdable
	prefix      string
	maxAttempts int64
	window      time.Duration
}

func NewLoginLimiter(client goredis.Cmdable, cfg LimiterConfig) *loginLimiter {
	if client == nil {
		panic("redis.NewLoginLimiter: nil client")
	}
	if cfg.MaxAttempts <= 0 || cfg.WindowMinutes <= 0 {
		panic("redis.NewLoginLimiter: max attempts and window must be positive")
	}
	return &loginLimiter{
		client:      client,
		prefix:      defaultPrefix,
		maxAttempts: cfg.MaxAttempts,
		window:      time.Duration(cfg.WindowMinutes) * time.Minute,
	}
}

func (l *loginLimiter) key(ip, username string) string {
	return fmt.Sprintf("%s%s:%s", l.prefix, ip, strings.ToLower(username))
}

// Allow counts a login attempt and reports whether it is within the window's budget.
// The window starts with the first attempt. INCR and EXPIRE NX run in one MULTI so a counter
// never outlives its window.
func (l *loginLimiter) Allow(ctx context.Context, ip, username string) (bool, error) {
	key := l.key(ip, username)

	var incr *goredis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, l.window)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("loginLimiter.Allow: %w", err)
	}

	return incr.Val() <= l.maxAttempts, nil
}

// Reset clears the counter after a successful login.
func (l *loginLimiter) Reset(ctx context.Context, ip, username string) error {
	if err := l.client.Del(ctx, l.key(ip, username)).Err(); err != nil {
		return fmt.Errorf("loginLimiter.Reset: %w", err)
	}
	return nil
}
