package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/66gu1/filmoradmin/internal/app/session"
	"github.com/66gu1/filmoradmin/internal/app/session/mocks"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := mocks.NewTimeGeneratorMock(t)
	clock.NowMock.Set(func() time.Time { return now })
	store := session.NewMemoryStore(clock)

	require.Error(t, store.Save(ctx, session.Record{}))

	data := []byte("sealed")
	require.NoError(t, store.Save(ctx, session.Record{ID: "a", UserID: "1", Data: data, ExpiresAt: now.Add(time.Minute)}))
	require.NoError(t, store.Save(ctx, session.Record{ID: "b", UserID: "2", Data: []byte("x"), ExpiresAt: now.Add(time.Hour)}))
	data[0] = 'X'

	rec, err := store.Load(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, "1", rec.UserID)
	require.Equal(t, []byte("sealed"), rec.Data)

	_, err = store.Load(ctx, "missing")
	require.ErrorIs(t, err, session.ErrNotFound)

	now = now.Add(2 * time.Minute)
	_, err = store.Load(ctx, "a")
	require.ErrorIs(t, err, session.ErrNotFound)

	// expired records are pruned on the next save
	require.NoError(t, store.Save(ctx, session.Record{ID: "c", Data: []byte("y"), ExpiresAt: now}))
	require.Equal(t, 1, store.Len())

	require.NoError(t, store.Delete(ctx, "b"))
	require.NoError(t, store.Delete(ctx, "b"))
	require.Zero(t, store.Len())
}
