//go:build testutil

package gorm

import (
	"os"
	"testing"
	"time"

	"github.com/66gu1/filmoradmin/internal/app/session"
	"github.com/66gu1/filmoradmin/internal/app/session/repo/gorm/mocks"
	"github.com/66gu1/filmoradmin/internal/infrastructure/db"
	"github.com/stretchr/testify/require"
)

//go:generate minimock -o ./mocks -s _mock.go

var shared *db.TestDB

func TestMain(m *testing.M) {
	var stop func()
	shared, stop = db.StartPostgres()
	code := m.Run()
	stop()
	os.Exit(code)
}

// newStore returns a store whose clock reads *now on every call.
func newStore(t *testing.T, now *time.Time) (*gormStore, func()) {
	gdb, _, cleanup := shared.CreateIsolatedDB(t)
	t.Cleanup(cleanup)
	clock := mocks.NewTimeGeneratorMock(t)
	clock.NowMock.Set(func() time.Time { return *now })
	store, err := NewStore(gdb, clock)
	require.NoError(t, err)
	return store, cleanup
}

func TestNewStore(t *testing.T) {
	t.Parallel()

	_, err := NewStore(nil, mocks.NewTimeGeneratorMock(t))
	require.Error(t, err)
}

func TestSaveAndLoad(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC().Truncate(time.Second)
	store, cleanup := newStore(t, &now)

	rec := session.Record{ID: "sid-1", UserID: "42", Data: []byte("sealed-1"), ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, store.Save(t.Context(), rec))

	got, err := store.Load(t.Context(), "sid-1")
	require.NoError(t, err)
	require.Equal(t, rec.ID, got.ID)
	require.Equal(t, rec.UserID, got.UserID)
	require.Equal(t, rec.Data, got.Data)
	require.True(t, rec.ExpiresAt.Equal(got.ExpiresAt))

	// upsert
	rec.Data = []byte("sealed-2")
	rec.ExpiresAt = now.Add(2 * time.Hour)
	require.NoError(t, store.Save(t.Context(), rec))
	got, err = store.Load(t.Context(), "sid-1")
	require.NoError(t, err)
	require.Equal(t, []byte("sealed-2"), got.Data)
	require.True(t, rec.ExpiresAt.Equal(got.ExpiresAt))

	_, err = store.Load(t.Context(), "missing")
	require.ErrorIs(t, err, session.ErrNotFound)

	require.Error(t, store.Save(t.Context(), session.Record{}))

	// pool closed error
	cleanup()
	_, err = store.Load(t.Context(), "sid-1")
	require.Error(t, err)
	require.NotErrorIs(t, err, session.ErrNotFound)
}

func TestLoad_Expired(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC().Truncate(time.Second)
	start := now
	store, _ := newStore(t, &now)

	require.NoError(t, store.Save(t.Context(), session.Record{ID: "a", UserID: "1", Data: []byte("x"), ExpiresAt: start.Add(time.Minute)}))
	require.NoError(t, store.Save(t.Context(), session.Record{ID: "b", UserID: "1", Data: []byte("y"), ExpiresAt: start.Add(time.Hour)}))

	now = start.Add(2 * time.Minute)
	_, err := store.Load(t.Context(), "a")
	require.ErrorIs(t, err, session.ErrNotFound)

	n, err := store.DeleteExpired(t.Context())
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	_, err = store.Load(t.Context(), "b")
	require.NoError(t, err)
}

func TestDelete(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()
	store, _ := newStore(t, &now)

	require.NoError(t, store.Save(t.Context(), session.Record{ID: "a", UserID: "1", Data: []byte("x"), ExpiresAt: now.Add(time.Hour)}))
	require.NoError(t, store.Delete(t.Context(), "a"))
	require.NoError(t, store.Delete(t.Context(), "a"))

	_, err := store.Load(t.Context(), "a")
	require.ErrorIs(t, err, session.ErrNotFound)
}
