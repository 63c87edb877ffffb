//go:build testutil

package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/66gu1/filmoradmin/internal/app/session"
	"github.com/66gu1/filmoradmin/internal/infrastructure/db"
	"github.com/66gu1/filmoradmin/internal/infrastructure/system"
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

func newStore(t *testing.T) *redisStore {
	t.Helper()
	s := NewStore(client, &system.TimeGenerator{})
	s.prefix = "test:" + uuid.NewString() + ":"
	return s
}

func TestRedisStore_SaveLoadDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newStore(t)

	exp := time.Now().Add(time.Hour)
	require.NoError(t, s.Save(ctx, session.Record{ID: "a", UserID: "1", Data: []byte("sealed"), ExpiresAt: exp}))

	rec, err := s.Load(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, "a", rec.ID)
	require.Equal(t, []byte("sealed"), rec.Data)
	require.WithinDuration(t, exp, rec.ExpiresAt, 5*time.Second)

	ttl, err := client.TTL(ctx, s.key("a")).Result()
	require.NoError(t, err)
	require.Greater(t, ttl, 59*time.Minute)

	require.NoError(t, s.Delete(ctx, "a"))
	require.NoError(t, s.Delete(ctx, "a"))

	_, err = s.Load(ctx, "a")
	require.ErrorIs(t, err, session.ErrNotFound)
}

func TestRedisStore_SaveExpiredDeletes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newStore(t)

	require.NoError(t, s.Save(ctx, session.Record{ID: "a", Data: []byte("x"), ExpiresAt: time.Now().Add(time.Hour)}))
	require.NoError(t, s.Save(ctx, session.Record{ID: "a", Data: []byte("x"), ExpiresAt: time.Now().Add(-time.Second)}))

	_, err := s.Load(ctx, "a")
	require.ErrorIs(t, err, session.ErrNotFound)

	require.Error(t, s.Save(ctx, session.Record{}))
}
