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

func newCache(t *testing.T) *tagCache {
	t.Helper()
	c := NewCache(client, time.Minute)
	c.prefix = "test:" + uuid.NewString() + ":"
	return c
}

func TestTagCache(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := newCache(t)

	_, hit, err := c.Get(ctx, "branches", "k1")
	require.NoError(t, err)
	require.False(t, hit)

	require.NoError(t, c.Set(ctx, "branches", "k1", []byte(`{"count":1}`)))
	require.NoError(t, c.Set(ctx, "branches", "k2", []byte(`{"id":1}`)))
	require.NoError(t, c.Set(ctx, "halls", "k1", []byte(`{"count":0}`)))

	body, hit, err := c.Get(ctx, "branches", "k1")
	require.NoError(t, err)
	require.True(t, hit)
	require.JSONEq(t, `{"count":1}`, string(body))

	ttl, err := client.TTL(ctx, c.entryKey("branches", "k1")).Result()
	require.NoError(t, err)
	require.Greater(t, ttl, time.Duration(0))

	require.NoError(t, c.Invalidate(ctx, "branches"))

	for _, k := range []string{"k1", "k2"} {
		_, hit, err = c.Get(ctx, "branches", k)
		require.NoError(t, err)
		require.False(t, hit, k)
	}

	_, hit, err = c.Get(ctx, "halls", "k1")
	require.NoError(t, err)
	require.True(t, hit, "other tags survive")

	require.NoError(t, c.Invalidate(ctx, "never-used"))
}
