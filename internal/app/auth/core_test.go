package auth_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/66gu1/filmoradmin/internal/app/auth"
	"github.com/66gu1/filmoradmin/internal/app/auth/mocks"
	"github.com/66gu1/filmoradmin/internal/app/backend"
	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/require"
)

//go:generate minimock -o ./mocks -s _mock.go

type mock struct {
	backend *mocks.BackendMock
	timeGen *mocks.TimeGeneratorMock
}

func setupMocks(t *testing.T) mock {
	return mock{
		backend: mocks.NewBackendMock(t),
		timeGen: mocks.NewTimeGeneratorMock(t),
	}
}

func cfg() auth.Config {
	return auth.Config{
		MaxRefreshAttempts: auth.DefaultMaxRefreshAttempts,
		StrictExpiry:       true,
	}
}

func TestNewCore(t *testing.T) {
	t.Parallel()

	m := setupMocks(t)
	require.Panics(t, func() { auth.NewCore(nil, m.timeGen, cfg()) })
	require.Panics(t, func() { auth.NewCore(m.backend, nil, cfg()) })
	require.Panics(t, func() { auth.NewCore(m.backend, m.timeGen, auth.Config{}) })
	require.NotPanics(t, func() { auth.NewCore(m.backend, m.timeGen, cfg()) })
}

func TestCore_Authorize(t *testing.T) {
	t.Parallel()

	var (
		ctx       = context.Background()
		now       = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		expiresAt = now.Add(30 * time.Minute)
		access    = tokenExpiringAt(expiresAt)
		pair      = backend.TokenPair{AccessToken: access, RefreshToken: "refresh-1"}
		companyID = int64(3)
		company   = backend.Company{ID: companyID, Name: "Kino"}
		errExp    = errors.New("expected")
		rejected  = &backend.Error{Operation: "login", Status: http.StatusUnauthorized}
		employee  = backend.Employee{
			ID:          42,
			Username:    "alice",
			FirstName:   "Alice",
			LastName:    "Smith",
			Role:        "manager",
			CompanyID:   &companyID,
			Permissions: []string{"view_dashboard", "create_branch"},
		}
		noCompany = backend.Employee{
			ID:          42,
			Username:    "alice",
			FirstName:   "Alice",
			LastName:    "Smith",
			Role:        "manager",
			Permissions: []string{"view_dashboard", "create_branch"},
		}
		catalog = []backend.Permission{
			{ID: 1, Name: "create_branch"},
			{ID: 2, Name: "update_branch"},
			{ID: 3, Name: "delete_branch"},
		}
		assigned = []backend.AssignedPermission{
			{ID: 100, PermissionID: 1},
			{ID: 101, PermissionID: 2},
			{ID: 102, PermissionID: 99},
		}
	)

	// every fetch of the fan-out starts, whichever one fails
	fanOut := func(m mock, employeeErr, catalogErr, assignedErr error) {
		m.backend.LoginMock.Expect(ctx, "alice", "secret").Return(pair, nil)
		m.backend.EmployeeInfoMock.Expect(minimock.AnyContext, access).Return(employee, employeeErr)
		m.backend.PermissionCatalogMock.Expect(minimock.AnyContext, access).Return(catalog, catalogErr)
		m.backend.AssignedPermissionsMock.Expect(minimock.AnyContext, access).Return(assigned, assignedErr)
	}

	tests := []struct {
		name    string
		setup   func(m mock)
		want    *auth.Session
		wantErr bool
	}{
		{
			name: "ok",
			setup: func(m mock) {
				fanOut(m, nil, nil, nil)
				m.backend.CompanyMock.Expect(minimock.AnyContext, access, companyID).Return(company, nil)
				m.timeGen.NowMock.Return(now)
			},
			want: &auth.Session{
				User: auth.User{
					ID:          "42",
					Username:    "alice",
					FirstName:   "Alice",
					LastName:    "Smith",
					Role:        "manager",
					CompanyID:   &companyID,
					Company:     &auth.Company{ID: companyID, Name: "Kino"},
					Permissions: []string{"view_dashboard", "create_branch", "update_branch"},
				},
				AccessToken:  access,
				RefreshToken: "refresh-1",
				ExpiresAt:    expiresAt,
			},
		},
		{
			name: "ok - no company",
			setup: func(m mock) {
				m.backend.LoginMock.Expect(ctx, "alice", "secret").Return(pair, nil)
				m.backend.EmployeeInfoMock.Expect(minimock.AnyContext, access).Return(noCompany, nil)
				m.backend.PermissionCatalogMock.Expect(minimock.AnyContext, access).Return(catalog, nil)
				m.backend.AssignedPermissionsMock.Expect(minimock.AnyContext, access).Return(assigned, nil)
				m.timeGen.NowMock.Return(now)
			},
			want: &auth.Session{
				User: auth.User{
					ID:          "42",
					Username:    "alice",
					FirstName:   "Alice",
					LastName:    "Smith",
					Role:        "manager",
					Permissions: []string{"view_dashboard", "create_branch", "update_branch"},
				},
				AccessToken:  access,
				RefreshToken: "refresh-1",
				ExpiresAt:    expiresAt,
			},
		},
		{
			name: "invalid credentials",
			setup: func(m mock) {
				m.backend.LoginMock.Expect(ctx, "alice", "secret").Return(backend.TokenPair{}, rejected)
			},
		},
		{
			name: "missing access token",
			setup: func(m mock) {
				m.backend.LoginMock.Expect(ctx, "alice", "secret").Return(backend.TokenPair{RefreshToken: "refresh-1"}, nil)
			},
		},
		{
			name: "error - login unreachable",
			setup: func(m mock) {
				m.backend.LoginMock.Expect(ctx, "alice", "secret").Return(backend.TokenPair{}, errExp)
			},
			wantErr: true,
		},
		{
			name: "error - profile",
			setup: func(m mock) {
				fanOut(m, errExp, nil, nil)
			},
			wantErr: true,
		},
		{
			name: "error - catalog",
			setup: func(m mock) {
				fanOut(m, nil, errExp, nil)
				m.backend.CompanyMock.Expect(minimock.AnyContext, access, companyID).Return(company, nil)
			},
			wantErr: true,
		},
		{
			name: "error - assigned permissions",
			setup: func(m mock) {
				fanOut(m, nil, nil, errExp)
				m.backend.CompanyMock.Expect(minimock.AnyContext, access, companyID).Return(company, nil)
			},
			wantErr: true,
		},
		{
			name: "error - company",
			setup: func(m mock) {
				fanOut(m, nil, nil, nil)
				m.backend.CompanyMock.Expect(minimock.AnyContext, access, companyID).Return(backend.Company{}, errExp)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := setupMocks(t)
			tt.setup(m)
			c := auth.NewCore(m.backend, m.timeGen, cfg())

			got, err := c.Authorize(ctx, "alice", "secret")
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			if tt.want == nil {
				require.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			require.True(t, tt.want.ExpiresAt.Equal(got.ExpiresAt))
			got.ExpiresAt = tt.want.ExpiresAt
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCore_Authorize_OpaqueAccessToken(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	m := setupMocks(t)
	m.backend.LoginMock.Expect(ctx, "bob", "secret").Return(backend.TokenPair{AccessToken: "opaque", RefreshToken: "r"}, nil)
	m.backend.EmployeeInfoMock.Expect(minimock.AnyContext, "opaque").Return(backend.Employee{ID: 5}, nil)
	m.backend.PermissionCatalogMock.Expect(minimock.AnyContext, "opaque").Return(nil, nil)
	m.backend.AssignedPermissionsMock.Expect(minimock.AnyContext, "opaque").Return(nil, nil)
	m.timeGen.NowMock.Return(now)
	c := auth.NewCore(m.backend, m.timeGen, cfg())

	got, err := c.Authorize(ctx, "bob", "secret")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got.User.Permissions)
	require.Equal(t, now.Add(auth.FallbackTTL), got.ExpiresAt)
}

func TestCore_Resolve(t *testing.T) {
	t.Parallel()

	var (
		ctx        = context.Background()
		now        = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		newExpiry  = now.Add(time.Hour)
		newAccess  = tokenExpiringAt(newExpiry)
		companyID  = int64(9)
		otherID    = int64(11)
		rejected   = &backend.Error{Operation: "refresh_token", Status: http.StatusUnauthorized}
		baseUser   = auth.User{ID: "42", Role: "admin", Permissions: []string{"create_branch"}}
		validSess  = auth.Session{User: baseUser, AccessToken: "a", RefreshToken: "r", ExpiresAt: now.Add(time.Minute)}
		expiredSes = auth.Session{User: baseUser, AccessToken: "a", RefreshToken: "r", ExpiresAt: now.Add(-time.Second)}
		withComp   = auth.Session{
			User: auth.User{
				ID: "42", Role: "admin", Permissions: []string{"create_branch"},
				CompanyID: &companyID, Company: &auth.Company{ID: companyID, Name: "Kino"},
			},
			AccessToken: "a", RefreshToken: "r", ExpiresAt: now.Add(time.Minute),
		}
	)

	tests := []struct {
		name           string
		session        *auth.Session
		update         *auth.Update
		setup          func(m mock)
		want           *auth.Session
		wantTransition auth.Transition
	}{
		{
			name:           "nil session",
			wantTransition: auth.TransitionNone,
		},
		{
			name:           "valid session is unchanged",
			session:        &validSess,
			want:           &validSess,
			wantTransition: auth.TransitionNone,
		},
		{
			name: "valid session keeps its error tag",
			session: &auth.Session{
				User: baseUser, AccessToken: "a", RefreshToken: "r",
				ExpiresAt: now.Add(time.Minute), Error: auth.ErrorRefreshAccessTokenError, RefreshAttempts: 1,
			},
			want: &auth.Session{
				User: baseUser, AccessToken: "a", RefreshToken: "r",
				ExpiresAt: now.Add(time.Minute), Error: auth.ErrorRefreshAccessTokenError, RefreshAttempts: 1,
			},
			wantTransition: auth.TransitionNone,
		},
		{
			name:           "valid session with update",
			session:        &validSess,
			update:         &auth.Update{CompanyID: &companyID, Company: &auth.Company{ID: companyID, Name: "Kino"}},
			want:           &withComp,
			wantTransition: auth.TransitionUpdated,
		},
		{
			name:           "empty update keeps the company",
			session:        &withComp,
			update:         &auth.Update{},
			want:           &withComp,
			wantTransition: auth.TransitionNone,
		},
		{
			name:           "same company is not a change",
			session:        &withComp,
			update:         &auth.Update{CompanyID: &companyID},
			want:           &withComp,
			wantTransition: auth.TransitionNone,
		},
		{
			name:    "company id alone drops a stale company record",
			session: &withComp,
			update:  &auth.Update{CompanyID: &otherID},
			want: &auth.Session{
				User: auth.User{
					ID: "42", Role: "admin", Permissions: []string{"create_branch"},
					CompanyID: &otherID,
				},
				AccessToken: "a", RefreshToken: "r", ExpiresAt: now.Add(time.Minute),
			},
			wantTransition: auth.TransitionUpdated,
		},
		{
			name:           "clear company",
			session:        &withComp,
			update:         &auth.Update{ClearCompany: true},
			want:           &validSess,
			wantTransition: auth.TransitionUpdated,
		},
		{
			name:    "expired session is refreshed",
			session: &expiredSes,
			setup: func(m mock) {
				m.backend.RefreshTokenMock.Times(1).Expect(ctx, "r").Return(backend.TokenPair{AccessToken: newAccess, RefreshToken: "r2"}, nil)
			},
			want: &auth.Session{
				User: baseUser, AccessToken: newAccess, RefreshToken: "r2", ExpiresAt: newExpiry,
			},
			wantTransition: auth.TransitionRefreshed,
		},
		{
			name: "errored session recovers and keeps refresh token",
			session: &auth.Session{
				User: baseUser, AccessToken: "a", RefreshToken: "r",
				ExpiresAt: now.Add(-time.Minute), Error: auth.ErrorRefreshAccessTokenError, RefreshAttempts: 2,
			},
			setup: func(m mock) {
				m.backend.RefreshTokenMock.Times(1).Expect(ctx, "r").Return(backend.TokenPair{AccessToken: newAccess}, nil)
			},
			want: &auth.Session{
				User: baseUser, AccessToken: newAccess, RefreshToken: "r", ExpiresAt: newExpiry,
			},
			wantTransition: auth.TransitionRefreshed,
		},
		{
			name:    "refresh failure is recorded",
			session: &expiredSes,
			setup: func(m mock) {
				m.backend.RefreshTokenMock.Times(1).Expect(ctx, "r").Return(backend.TokenPair{}, rejected)
			},
			want: &auth.Session{
				User: baseUser, AccessToken: "a", RefreshToken: "r", ExpiresAt: now.Add(-time.Second),
				Error: auth.ErrorRefreshAccessTokenError, RefreshAttempts: 1,
			},
			wantTransition: auth.TransitionRefreshFailed,
		},
		{
			name: "last allowed failure signs out",
			session: &auth.Session{
				User: baseUser, AccessToken: "a", RefreshToken: "r",
				ExpiresAt: now.Add(-time.Second), Error: auth.ErrorRefreshAccessTokenError, RefreshAttempts: 3,
			},
			setup: func(m mock) {
				m.backend.RefreshTokenMock.Times(1).Expect(ctx, "r").Return(backend.TokenPair{}, errors.New("unreachable"))
			},
			wantTransition: auth.TransitionSignedOut,
		},
		{
			name: "exhausted attempts sign out without a request",
			session: &auth.Session{
				User: baseUser, AccessToken: "a", RefreshToken: "r",
				ExpiresAt: now.Add(-time.Second), Error: auth.ErrorRefreshAccessTokenError, RefreshAttempts: 4,
			},
			wantTransition: auth.TransitionSignedOut,
		},
		{
			name: "no refresh token signs out",
			session: &auth.Session{
				User: baseUser, AccessToken: "a", ExpiresAt: now.Add(-time.Second),
			},
			wantTransition: auth.TransitionSignedOut,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := setupMocks(t)
			if tt.session != nil {
				m.timeGen.NowMock.Return(now)
			}
			if tt.setup != nil {
				tt.setup(m)
			}
			c := auth.NewCore(m.backend, m.timeGen, cfg())

			got, transition := c.Resolve(ctx, tt.session, tt.update)
			require.Equal(t, tt.wantTransition, transition)
			if tt.want == nil {
				require.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			require.True(t, tt.want.ExpiresAt.Equal(got.ExpiresAt))
			got.ExpiresAt = tt.want.ExpiresAt
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCore_Resolve_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	companyID := int64(3)
	otherID := int64(4)
	m := setupMocks(t)
	m.timeGen.NowMock.Return(now)
	m.backend.RefreshTokenMock.Expect(ctx, "r").Return(backend.TokenPair{}, errors.New("down"))
	c := auth.NewCore(m.backend, m.timeGen, cfg())

	in := &auth.Session{
		User:        auth.User{CompanyID: &companyID, Company: &auth.Company{ID: companyID}},
		AccessToken: "a", RefreshToken: "r", ExpiresAt: now.Add(-time.Second),
	}
	out, _ := c.Resolve(ctx, in, &auth.Update{CompanyID: &otherID})

	require.NotNil(t, out)
	require.Zero(t, in.RefreshAttempts)
	require.Equal(t, auth.ErrorNone, in.Error)
	require.Equal(t, int64(3), *in.User.CompanyID)
	require.NotNil(t, in.User.Company)
	require.Equal(t, 1, out.RefreshAttempts)
	require.Equal(t, int64(4), *out.User.CompanyID)
}

func TestCore_Resolve_RepeatedFailureSignsOut(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	m := setupMocks(t)
	m.timeGen.NowMock.Return(now)
	m.backend.RefreshTokenMock.Times(uint64(auth.DefaultMaxRefreshAttempts+1)).
		Expect(ctx, "r").Return(backend.TokenPair{}, errors.New("down"))
	c := auth.NewCore(m.backend, m.timeGen, cfg())

	session := &auth.Session{User: auth.User{ID: "1"}, AccessToken: "a", RefreshToken: "r", ExpiresAt: now.Add(-time.Second)}
	prev := session.RefreshAttempts
	for read := 1; ; read++ {
		next, transition := c.Resolve(ctx, session, nil)
		require.Equal(t, uint64(read), m.backend.RefreshTokenAfterCounter(), "one refresh request per read")
		if next == nil {
			require.Equal(t, auth.TransitionSignedOut, transition)
			require.Equal(t, auth.DefaultMaxRefreshAttempts+1, read)
			break
		}
		require.Equal(t, auth.TransitionRefreshFailed, transition)
		require.Greater(t, next.RefreshAttempts, prev)
		require.Equal(t, auth.StateErrored, next.State(now))
		prev = next.RefreshAttempts
		session = next
	}
}

func TestUpdate_IsEmpty(t *testing.T) {
	t.Parallel()

	id := int64(1)
	require.True(t, (*auth.Update)(nil).IsEmpty())
	require.True(t, (&auth.Update{}).IsEmpty())
	require.False(t, (&auth.Update{CompanyID: &id}).IsEmpty())
	require.False(t, (&auth.Update{Company: &auth.Company{ID: id}}).IsEmpty())
	require.False(t, (&auth.Update{ClearCompany: true}).IsEmpty())
}

func TestSession_State(t *testing.T) {
	t.Parallel()

	now := time.Now()
	require.Equal(t, auth.StateValid, (&auth.Session{ExpiresAt: now.Add(time.Second)}).State(now))
	require.Equal(t, auth.StateValid, (&auth.Session{ExpiresAt: now.Add(time.Second), Error: auth.ErrorRefreshTokenError}).State(now))
	require.Equal(t, auth.StateExpired, (&auth.Session{ExpiresAt: now}).State(now))
	require.Equal(t, auth.StateErrored, (&auth.Session{ExpiresAt: now, Error: auth.ErrorRefreshAccessTokenError}).State(now))
}

func TestContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, ok := auth.FromContext(ctx)
	require.False(t, ok)
	require.Equal(t, ctx, auth.WithSession(ctx, nil))

	s := &auth.Session{ID: "sid", User: auth.User{ID: "42"}}
	got, ok := auth.FromContext(auth.WithSession(ctx, s))
	require.True(t, ok)
	require.Same(t, s, got)
}
