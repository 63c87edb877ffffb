package http_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/66gu1/filmoradmin/internal/app/auth"
	authhttp "github.com/66gu1/filmoradmin/internal/app/auth/transport/http"
	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/require"
)

func TestSessionMiddleware(t *testing.T) {
	t.Parallel()

	refreshed := signedIn()
	refreshed.AccessToken = "fresh"

	tests := []struct {
		name        string
		setup       func(m mock)
		wantSession *auth.Session
	}{
		{
			name: "no cookie",
			setup: func(m mock) {
				m.store.LoadMock.Return(nil, nil)
			},
		},
		{
			name: "store error reads as anonymous",
			setup: func(m mock) {
				m.store.LoadMock.Return(nil, errors.New("redis down"))
			},
		},
		{
			name: "valid session untouched",
			setup: func(m mock) {
				m.store.LoadMock.Return(signedIn(), nil)
				m.svc.ResolveMock.Expect(minimock.AnyContext, signedIn()).Return(signedIn(), auth.TransitionNone)
			},
			wantSession: signedIn(),
		},
		{
			name: "refreshed session is saved",
			setup: func(m mock) {
				m.store.LoadMock.Return(signedIn(), nil)
				m.svc.ResolveMock.Expect(minimock.AnyContext, signedIn()).Return(refreshed, auth.TransitionRefreshed)
				m.store.SaveMock.Times(1).Return(nil)
			},
			wantSession: refreshed,
		},
		{
			name: "failed save still serves the refreshed session",
			setup: func(m mock) {
				m.store.LoadMock.Return(signedIn(), nil)
				m.svc.ResolveMock.Expect(minimock.AnyContext, signedIn()).Return(refreshed, auth.TransitionRefreshed)
				m.store.SaveMock.Times(1).Return(errors.New("redis down"))
			},
			wantSession: refreshed,
		},
		{
			name: "signed out clears cookie",
			setup: func(m mock) {
				m.store.LoadMock.Return(signedIn(), nil)
				m.svc.ResolveMock.Expect(minimock.AnyContext, signedIn()).Return(nil, auth.TransitionSignedOut)
				m.store.ClearMock.Times(1).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := newMock(t)
			tt.setup(m)

			var (
				got    *auth.Session
				called bool
			)
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				got, _ = auth.FromContext(r.Context())
				w.WriteHeader(http.StatusNoContent)
			})

			rec := httptest.NewRecorder()
			authhttp.SessionMiddleware(m.svc, m.store)(next).
				ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/movies", nil))

			require.True(t, called)
			require.Equal(t, http.StatusNoContent, rec.Code)
			require.Equal(t, tt.wantSession, got)
		})
	}
}

func TestSessionMiddleware_Panics(t *testing.T) {
	t.Parallel()

	m := newMock(t)
	require.Panics(t, func() { authhttp.SessionMiddleware(nil, m.store) })
	require.Panics(t, func() { authhttp.SessionMiddleware(m.svc, nil) })
}
