package resource

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/66gu1/filmoradmin/internal/app/auth"
	"github.com/66gu1/filmoradmin/internal/app/backend"
	"github.com/66gu1/filmoradmin/internal/app/resource/mocks"
	"github.com/66gu1/filmoradmin/internal/infrastructure/apperr"
	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/require"
)

//go:generate minimock -o ./mocks -s _mock.go

type mock struct {
	backend *mocks.BackendMock
	cache   *mocks.CacheMock
}

func newMock(t *testing.T) *mock {
	t.Helper()
	return &mock{
		backend: mocks.NewBackendMock(t),
		cache:   mocks.NewCacheMock(t),
	}
}

func newTestService(b Backend, cache Cache) *Service {
	reg := DefaultRegistry()
	return NewService(b, reg.Policy(), cache, reg)
}

func branchManager() *auth.Session {
	return &auth.Session{
		AccessToken: "access",
		User: auth.User{
			Role:        "manager",
			Permissions: []string{"view_branch", "create_branch", "update_branch"},
		},
	}
}

func TestNewService_Panics(t *testing.T) {
	t.Parallel()

	m := newMock(t)
	reg := DefaultRegistry()
	require.Panics(t, func() { NewService(nil, reg.Policy(), nil, reg) })
	require.Panics(t, func() { NewService(m.backend, nil, nil, reg) })
	require.Panics(t, func() { NewService(m.backend, reg.Policy(), nil, nil) })
	require.NotPanics(t, func() { NewService(m.backend, reg.Policy(), nil, reg) })
}

func TestService_Forward_Denied(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		session *auth.Session
		call    Call
		class   apperr.Class
	}{
		{
			name:  "no session",
			call:  Call{Resource: "branches", Method: http.MethodGet},
			class: apperr.ClassUnauthorized,
		},
		{
			name:    "unknown resource",
			session: branchManager(),
			call:    Call{Resource: "spaceships", Method: http.MethodGet},
			class:   apperr.ClassNotFound,
		},
		{
			name:    "unsupported method",
			session: branchManager(),
			call:    Call{Resource: "branches", Method: http.MethodOptions},
			class:   apperr.ClassNotFound,
		},
		{
			name:    "missing flat permission",
			session: branchManager(),
			call:    Call{Resource: "branches", ID: "1", Method: http.MethodDelete},
			class:   apperr.ClassNotFound,
		},
		{
			name:    "role matrix denies",
			session: branchManager(),
			call:    Call{Resource: "movies", Method: http.MethodPost},
			class:   apperr.ClassNotFound,
		},
		{
			name:    "read-only resource",
			session: &auth.Session{AccessToken: "a", User: auth.User{Role: "superadmin"}},
			call:    Call{Resource: "reports", Method: http.MethodPost},
			class:   apperr.ClassNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// no expectations: any backend or cache call fails the test
			m := newMock(t)
			_, err := newTestService(m.backend, m.cache).Forward(t.Context(), tt.session, tt.call)
			require.Error(t, err)
			require.Equal(t, tt.class, apperr.ClassOf(err))
		})
	}
}

func TestService_Forward_BuildsRequest(t *testing.T) {
	t.Parallel()

	m := newMock(t)
	query := url.Values{"search": {"main"}}
	m.backend.DoMock.
		Expect(minimock.AnyContext, "access", backend.Request{
			Method: http.MethodGet,
			Path:   "/branches/7%2F..%2Fx",
			Query:  query,
		}).
		Return(backend.Response{Status: http.StatusOK, Body: []byte(`{"id":7}`)}, nil)

	resp, err := newTestService(m.backend, nil).Forward(t.Context(), branchManager(), Call{
		Resource: "branches",
		ID:       "7/../x",
		Method:   http.MethodGet,
		Query:    query,
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.Status)
	require.JSONEq(t, `{"id":7}`, string(resp.Body))
}

func TestService_Forward_Cache(t *testing.T) {
	t.Parallel()

	var (
		list     = backend.Request{Method: http.MethodGet, Path: "/branches"}
		key      = cacheKey("access", list)
		ok       = backend.Response{Status: http.StatusOK, Body: []byte(`[]`)}
		errCache = errors.New("redis down")
	)

	tests := []struct {
		name    string
		call    Call
		setup   func(m *mock)
		want    backend.Response
		wantErr error
	}{
		{
			name: "miss reads through and stores",
			call: Call{Resource: "branches", Method: http.MethodGet},
			setup: func(m *mock) {
				m.cache.GetMock.Expect(minimock.AnyContext, "branches", key).Return(nil, false, nil)
				m.backend.DoMock.Expect(minimock.AnyContext, "access", list).Return(ok, nil)
				m.cache.SetMock.Expect(minimock.AnyContext, "branches", key, []byte(`[]`)).Return(nil)
			},
			want: ok,
		},
		{
			name: "hit skips the backend",
			call: Call{Resource: "branches", Method: http.MethodGet},
			setup: func(m *mock) {
				m.cache.GetMock.Expect(minimock.AnyContext, "branches", key).Return([]byte(`[]`), true, nil)
			},
			want: ok,
		},
		{
			name: "cache failures fall through",
			call: Call{Resource: "branches", Method: http.MethodGet},
			setup: func(m *mock) {
				m.cache.GetMock.Return(nil, false, errCache)
				m.backend.DoMock.Expect(minimock.AnyContext, "access", list).Return(ok, nil)
				m.cache.SetMock.Return(errCache)
			},
			want: ok,
		},
		{
			name: "non-200 read is not stored",
			call: Call{Resource: "branches", Method: http.MethodGet},
			setup: func(m *mock) {
				m.cache.GetMock.Return(nil, false, nil)
				m.backend.DoMock.Return(backend.Response{Status: http.StatusAccepted, Body: []byte(`{}`)}, nil)
			},
			want: backend.Response{Status: http.StatusAccepted, Body: []byte(`{}`)},
		},
		{
			name: "oversized answer is an error and not stored",
			call: Call{Resource: "branches", Method: http.MethodGet},
			setup: func(m *mock) {
				m.cache.GetMock.Return(nil, false, nil)
				m.backend.DoMock.Return(backend.Response{}, fmt.Errorf("backend.Client.Do: %w", backend.ErrResponseTooLarge))
			},
			wantErr: backend.ErrResponseTooLarge,
		},
		{
			name: "write invalidates the tag",
			call: Call{Resource: "branches", Method: http.MethodPost, Body: []byte(`{}`)},
			setup: func(m *mock) {
				m.backend.DoMock.
					Expect(minimock.AnyContext, "access", backend.Request{Method: http.MethodPost, Path: "/branches", Body: []byte(`{}`)}).
					Return(backend.Response{Status: http.StatusCreated}, nil)
				m.cache.InvalidateMock.Expect(minimock.AnyContext, "branches").Return(nil)
			},
			want: backend.Response{Status: http.StatusCreated},
		},
		{
			name: "failed write keeps the cache",
			call: Call{Resource: "branches", ID: "1", Method: http.MethodPatch},
			setup: func(m *mock) {
				m.backend.DoMock.Return(backend.Response{}, &backend.Error{Operation: "proxy", Status: http.StatusBadRequest, Message: "bad"})
			},
			wantErr: &backend.Error{Operation: "proxy", Status: http.StatusBadRequest, Message: "bad"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := newMock(t)
			tt.setup(m)
			resp, err := newTestService(m.backend, m.cache).Forward(t.Context(), branchManager(), tt.call)
			if tt.wantErr != nil {
				require.Error(t, err)
				var be *backend.Error
				if errors.As(tt.wantErr, &be) {
					var got *backend.Error
					require.ErrorAs(t, err, &got)
					require.Equal(t, be, got)
					return
				}
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, resp)
		})
	}
}

func TestCacheKey_ScopedToToken(t *testing.T) {
	t.Parallel()

	req := backend.Request{Method: http.MethodGet, Path: "/branches", Query: url.Values{"page": {"2"}}}
	require.Equal(t, cacheKey("a", req), cacheKey("a", req))
	require.NotEqual(t, cacheKey("a", req), cacheKey("b", req))
	require.NotEqual(t, cacheKey("a", req), cacheKey("a", backend.Request{Method: http.MethodGet, Path: "/branches"}))
}

func TestService_Visible(t *testing.T) {
	t.Parallel()

	svc := newTestService(newMock(t).backend, nil)

	require.Empty(t, svc.Visible(nil))

	names := make([]string, 0)
	for _, res := range svc.Visible(&auth.Session{User: auth.User{Role: "cashier", Permissions: []string{"view_branch"}}}) {
		names = append(names, res.Name)
	}
	require.ElementsMatch(t, []string{"branches", "movies", "events", "transactions"}, names)
}
