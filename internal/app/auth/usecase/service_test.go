package usecase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/66gu1/filmoradmin/internal/app/auth"
	"github.com/66gu1/filmoradmin/internal/app/auth/usecase"
	"github.com/66gu1/filmoradmin/internal/app/auth/usecase/mocks"
	"github.com/66gu1/filmoradmin/internal/infrastructure/apperr"
	"github.com/66gu1/filmoradmin/internal/infrastructure/metrics"
	"github.com/stretchr/testify/require"
)

//go:generate minimock -o ./mocks -s _mock.go

type mock struct {
	core     *mocks.CoreMock
	limiter  *mocks.LimiterMock
	observer *mocks.ObserverMock
}

func newMock(t *testing.T) *mock {
	t.Helper()
	return &mock{
		core:     mocks.NewCoreMock(t),
		limiter:  mocks.NewLimiterMock(t),
		observer: mocks.NewObserverMock(t),
	}
}

func TestNewService_Panics(t *testing.T) {
	t.Parallel()

	m := newMock(t)
	require.Panics(t, func() { usecase.NewService(nil, nil, m.observer) })
	require.Panics(t, func() { usecase.NewService(m.core, nil, nil) })
	require.NotPanics(t, func() { usecase.NewService(m.core, nil, m.observer) })
}

func TestService_Login(t *testing.T) {
	t.Parallel()

	var (
		ctx      = t.Context()
		ip       = "1.1.1.1"
		signedIn = &auth.Session{User: auth.User{ID: "7"}, AccessToken: "a", ExpiresAt: time.Now().Add(time.Hour)}
		errExp   = errors.New("dial tcp: refused")
	)

	tests := []struct {
		name        string
		cmd         usecase.LoginCmd
		withLimiter bool
		setup       func(m *mock)
		class       apperr.Class
		code        apperr.Code
	}{
		{
			name:        "ok",
			cmd:         usecase.LoginCmd{Username: " alice ", Password: []byte("secret"), IP: ip},
			withLimiter: true,
			setup: func(m *mock) {
				m.limiter.AllowMock.Expect(ctx, ip, "alice").Return(true, nil)
				m.core.AuthorizeMock.Expect(ctx, "alice", "secret").Return(signedIn, nil)
				m.limiter.ResetMock.Expect(ctx, ip, "alice").Return(nil)
				m.observer.LoginMock.Expect(metrics.ResultSuccess).Return()
			},
		},
		{
			name: "ok without limiter",
			cmd:  usecase.LoginCmd{Username: "alice", Password: []byte("secret")},
			setup: func(m *mock) {
				m.core.AuthorizeMock.Expect(ctx, "alice", "secret").Return(signedIn, nil)
				m.observer.LoginMock.Expect(metrics.ResultSuccess).Return()
			},
		},
		{
			name:        "empty password",
			cmd:         usecase.LoginCmd{Username: "alice"},
			withLimiter: true,
			setup: func(m *mock) {
				m.observer.LoginMock.Expect(metrics.ResultRejected).Return()
			},
			class: apperr.ClassUnauthorized,
			code:  usecase.CodeInvalidCredentials,
		},
		{
			name:        "rejected credentials",
			cmd:         usecase.LoginCmd{Username: "alice", Password: []byte("wrong"), IP: ip},
			withLimiter: true,
			setup: func(m *mock) {
				m.limiter.AllowMock.Expect(ctx, ip, "alice").Return(true, nil)
				m.core.AuthorizeMock.Expect(ctx, "alice", "wrong").Return(nil, nil)
				m.observer.LoginMock.Expect(metrics.ResultRejected).Return()
			},
			class: apperr.ClassUnauthorized,
			code:  usecase.CodeInvalidCredentials,
		},
		{
			name: "backend failure looks like bad credentials",
			cmd:  usecase.LoginCmd{Username: "alice", Password: []byte("secret")},
			setup: func(m *mock) {
				m.core.AuthorizeMock.Expect(ctx, "alice", "secret").Return(nil, errExp)
				m.observer.LoginMock.Expect(metrics.ResultFailure).Return()
			},
			class: apperr.ClassUnauthorized,
			code:  usecase.CodeInvalidCredentials,
		},
		{
			name:        "rate limited",
			cmd:         usecase.LoginCmd{Username: "alice", Password: []byte("secret"), IP: ip},
			withLimiter: true,
			setup: func(m *mock) {
				m.limiter.AllowMock.Expect(ctx, ip, "alice").Return(false, nil)
				m.observer.LoginMock.Expect(metrics.ResultRejected).Return()
			},
			class: apperr.ClassTooManyRequests,
			code:  apperr.CodeTooManyRequests,
		},
		{
			name:        "limiter error fails open",
			cmd:         usecase.LoginCmd{Username: "alice", Password: []byte("secret"), IP: ip},
			withLimiter: true,
			setup: func(m *mock) {
				m.limiter.AllowMock.Expect(ctx, ip, "alice").Return(false, errors.New("redis down"))
				m.core.AuthorizeMock.Expect(ctx, "alice", "secret").Return(signedIn, nil)
				m.limiter.ResetMock.Expect(ctx, ip, "alice").Return(nil)
				m.observer.LoginMock.Expect(metrics.ResultSuccess).Return()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := newMock(t)
			tt.setup(m)
			var limiter usecase.Limiter
			if tt.withLimiter {
				limiter = m.limiter
			}
			svc := usecase.NewService(m.core, limiter, m.observer)

			password := tt.cmd.Password
			got, err := svc.Login(ctx, tt.cmd)
			for _, b := range password {
				require.Zero(t, b)
			}

			if tt.class != 0 {
				require.Error(t, err)
				require.Nil(t, got)
				require.Equal(t, tt.class, apperr.ClassOf(err))
				require.Equal(t, tt.code, apperr.CodeOf(err))
				return
			}
			require.NoError(t, err)
			require.Same(t, signedIn, got)
		})
	}
}

func TestService_Resolve_RecordsRefreshes(t *testing.T) {
	t.Parallel()

	var (
		ctx       = t.Context()
		sess      = &auth.Session{User: auth.User{ID: "7"}, AccessToken: "old"}
		refreshed = &auth.Session{User: auth.User{ID: "7"}, AccessToken: "new"}
		failed    = &auth.Session{User: auth.User{ID: "7"}, Error: auth.ErrorRefreshAccessTokenError, RefreshAttempts: 1}
	)

	tests := []struct {
		name       string
		setup      func(m *mock)
		want       *auth.Session
		transition auth.Transition
	}{
		{
			name: "valid",
			setup: func(m *mock) {
				m.core.ResolveMock.Expect(ctx, sess, nil).Return(sess, auth.TransitionNone)
			},
			want:       sess,
			transition: auth.TransitionNone,
		},
		{
			name: "refreshed",
			setup: func(m *mock) {
				m.core.ResolveMock.Expect(ctx, sess, nil).Return(refreshed, auth.TransitionRefreshed)
				m.observer.RefreshMock.Expect(metrics.ResultSuccess).Return()
			},
			want:       refreshed,
			transition: auth.TransitionRefreshed,
		},
		{
			name: "refresh failed",
			setup: func(m *mock) {
				m.core.ResolveMock.Expect(ctx, sess, nil).Return(failed, auth.TransitionRefreshFailed)
				m.observer.RefreshMock.Expect(metrics.ResultFailure).Return()
			},
			want:       failed,
			transition: auth.TransitionRefreshFailed,
		},
		{
			name: "signed out",
			setup: func(m *mock) {
				m.core.ResolveMock.Expect(ctx, sess, nil).Return(nil, auth.TransitionSignedOut)
				m.observer.RefreshMock.Expect(metrics.ResultSignedOut).Return()
			},
			transition: auth.TransitionSignedOut,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := newMock(t)
			tt.setup(m)
			svc := usecase.NewService(m.core, nil, m.observer)

			got, transition := svc.Resolve(ctx, sess)
			require.Equal(t, tt.transition, transition)
			if tt.want == nil {
				require.Nil(t, got)
				return
			}
			require.Same(t, tt.want, got)
		})
	}
}

func TestService_UpdateSession(t *testing.T) {
	t.Parallel()

	var (
		ctx     = t.Context()
		id      = func(v int64) *int64 { return &v }
		sess    = &auth.Session{User: auth.User{ID: "7"}, AccessToken: "a"}
		updated = &auth.Session{
			User:        auth.User{ID: "7", CompanyID: id(3), Company: &auth.Company{ID: 3, Name: "Cinema City"}},
			AccessToken: "a",
		}
	)

	tests := []struct {
		name       string
		session    *auth.Session
		update     auth.Update
		setup      func(m *mock)
		want       *auth.Session
		transition auth.Transition
		class      apperr.Class
	}{
		{
			name:    "ok",
			session: sess,
			update:  auth.Update{CompanyID: id(3), Company: &auth.Company{ID: 3, Name: "Cinema City"}},
			setup: func(m *mock) {
				m.core.ResolveMock.
					Expect(ctx, sess, &auth.Update{CompanyID: id(3), Company: &auth.Company{ID: 3, Name: "Cinema City"}}).
					Return(updated, auth.TransitionUpdated)
			},
			want:       updated,
			transition: auth.TransitionUpdated,
		},
		{
			name:    "empty update is not a change",
			session: sess,
			setup: func(m *mock) {
				m.core.ResolveMock.Expect(ctx, sess, &auth.Update{}).Return(sess, auth.TransitionNone)
			},
			want:       sess,
			transition: auth.TransitionNone,
		},
		{
			name:    "clear company",
			session: updated,
			update:  auth.Update{ClearCompany: true},
			setup: func(m *mock) {
				m.core.ResolveMock.Expect(ctx, updated, &auth.Update{ClearCompany: true}).Return(sess, auth.TransitionUpdated)
			},
			want:       sess,
			transition: auth.TransitionUpdated,
		},
		{
			name:    "zero company id",
			session: sess,
			update:  auth.Update{CompanyID: id(0)},
			class:   apperr.ClassBadRequest,
		},
		{
			name:    "negative company id",
			session: sess,
			update:  auth.Update{CompanyID: id(-1)},
			class:   apperr.ClassBadRequest,
		},
		{
			name:    "company without id",
			session: sess,
			update:  auth.Update{Company: &auth.Company{ID: 3}},
			class:   apperr.ClassBadRequest,
		},
		{
			name:    "company id mismatch",
			session: sess,
			update:  auth.Update{CompanyID: id(4), Company: &auth.Company{ID: 3}},
			class:   apperr.ClassBadRequest,
		},
		{
			name:    "clear combined with a company",
			session: sess,
			update:  auth.Update{CompanyID: id(4), ClearCompany: true},
			class:   apperr.ClassBadRequest,
		},
		{
			name:   "no session",
			update: auth.Update{CompanyID: id(4)},
			class:  apperr.ClassUnauthorized,
		},
		{
			name:    "signed out during refresh",
			session: sess,
			update:  auth.Update{CompanyID: id(1)},
			setup: func(m *mock) {
				m.core.ResolveMock.Expect(ctx, sess, &auth.Update{CompanyID: id(1)}).Return(nil, auth.TransitionSignedOut)
				m.observer.RefreshMock.Expect(metrics.ResultSignedOut).Return()
			},
			transition: auth.TransitionSignedOut,
			class:      apperr.ClassUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := newMock(t)
			if tt.setup != nil {
				tt.setup(m)
			}
			svc := usecase.NewService(m.core, nil, m.observer)

			got, transition, err := svc.UpdateSession(ctx, tt.session, tt.update)
			require.Equal(t, tt.transition, transition)
			if tt.class != 0 {
				require.Error(t, err)
				require.Nil(t, got)
				require.Equal(t, tt.class, apperr.ClassOf(err))
				return
			}
			require.NoError(t, err)
			require.Same(t, tt.want, got)
		})
	}
}
