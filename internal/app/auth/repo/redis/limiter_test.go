//go:build testutil

package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/66gu1/filmoradmin/internal/infrastructure/db"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

var client *goredis.Client

func TestMain(m *testing.M) {
	addr, stop := db.StartRedis()
	client = goredis.NewClient(&goredis.Options{Addr: addr})
	code := m.Run()
	_ = client.Close()
	stop()
	os.Exit(code)
}

func newLimiter(t *testing.T, maxAttempts int64) *loginLimiter {
	t.Helper()
	l := NewLoginLimiter(client, LimiterConfig{MaxAttempts: maxAttempts, WindowMinutes: 15})
	l.prefix = "test:" + uuid.NewString() + ":"
	return l
}

func TestLoginLimiter_Allow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	l := newLimiter(t, 3)

	for i := range 3 {
		ok, err := l.Allow(ctx, "10.0.0.1", "Alice")
		require.NoError(t, err)
		require.True(t, ok, "attempt %d", i+1)
	}

	ok, err := l.Allow(ctx, "10.0.0.1", "alice")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = l.Allow(ctx, "10.0.0.2", "alice")
	require.NoError(t, err)
	require.True(t, ok)

	ttl, err := client.TTL(ctx, l.key("10.0.0.1", "alice")).Result()
	require.NoError(t, err)
	require.Greater(t, ttl, 14*time.Minute)
}

func TestLoginLimiter_Allow_AlwaysSetsWindow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("counter left without ttl gets one", func(t *testing.T) {
		t.Parallel()
		l := newLimiter(t, 5)
		key := l.key("10.0.0.1", "carol")
		require.NoError(t, client.Set(ctx, key, 2, 0).Err())

		ok, err := l.Allow(ctx, "10.0.0.1", "carol")
		require.NoError(t, err)
		require.True(t, ok)

		ttl, err := client.TTL(ctx, key).Result()
		require.NoError(t, err)
		require.Greater(t, ttl, 14*time.Minute)
		count, err := client.Get(ctx, key).Int64()
		require.NoError(t, err)
		require.Equal(t, int64(3), count)
	})

	t.Run("later attempts do not extend the window", func(t *testing.T) {
		t.Parallel()
		l := newLimiter(t, 5)
		key := l.key("10.0.0.1", "dave")

		_, err := l.Allow(ctx, "10.0.0.1", "dave")
		require.NoError(t, err)
		require.NoError(t, client.Expire(ctx, key, time.Minute).Err())

		_, err = l.Allow(ctx, "10.0.0.1", "dave")
		require.NoError(t, err)

		ttl, err := client.TTL(ctx, key).Result()
		require.NoError(t, err)
		require.Greater(t, ttl, time.Duration(0))
		require.LessOrEqual(t, ttl, time.Minute)
	})
}

func TestLoginLimiter_Reset(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	l := newLimiter(t, 1)

	ok, err := l.Allow(ctx, "10.0.0.1", "bob")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = l.Allow(ctx, "10.0.0.1", "bob")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, l.Reset(ctx, "10.0.0.1", "bob"))

	ok, err = l.Allow(ctx, "10.0.0.1", "bob")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestNewLoginLimiter_Panics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { NewLoginLimiter(nil, LimiterConfig{MaxAttempts: 1, WindowMinutes: 1}) })
	require.Panics(t, func() { NewLoginLimiter(client, LimiterConfig{MaxAttempts: 0, WindowMinutes: 1}) })
	require.Panics(t, func() { NewLoginLimiter(client, LimiterConfig{MaxAttempts: 1}) })
}
