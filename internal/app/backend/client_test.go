package backend_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/66gu1/filmoradmin/internal/app/backend"
	"github.com/66gu1/filmoradmin/internal/app/backend/mocks"
	"github.com/stretchr/testify/require"
)

//go:generate minimock -o ./mocks -s _mock.go

type observation struct {
	op     string
	status string
}

// newObserver records every backend call the client reports.
func newObserver(t *testing.T) (*mocks.ObserverMock, func() []observation) {
	t.Helper()
	var (
		mu   sync.Mutex
		seen []observation
	)
	obs := mocks.NewObserverMock(t)
	obs.BackendMock.Set(func(op, status string, seconds float64) {
		require.GreaterOrEqual(t, seconds, 0.0)
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, observation{op: op, status: status})
	})
	return obs, func() []observation {
		mu.Lock()
		defer mu.Unlock()
		return seen
	}
}

func newClient(t *testing.T, h http.Handler) (*backend.Client, func() []observation) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	obs, seen := newObserver(t)
	c, err := backend.NewClient(backend.Config{BaseURL: srv.URL + "/", TimeoutSeconds: 5}, obs)
	require.NoError(t, err)
	return c, seen
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	_, err := backend.NewClient(backend.Config{}, nil)
	require.Error(t, err)

	_, err = backend.NewClient(backend.Config{BaseURL: "not a url"}, nil)
	require.Error(t, err)

	c, err := backend.NewClient(backend.Config{BaseURL: "https://api.example.com"}, nil)
	require.NoError(t, err)
	require.NotNil(t, c)
}

func TestClient_Login(t *testing.T) {
	t.Parallel()

	c, seen := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/employee-login", r.URL.Path)
		require.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())

		if r.PostForm.Get("password") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"detail":"invalid credentials"}`)
			return
		}
		require.Equal(t, "alice", r.PostForm.Get("username"))
		_, _ = io.WriteString(w, `{"access_token":"a1","refresh_token":"r1"}`)
	}))

	pair, err := c.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	require.Equal(t, backend.TokenPair{AccessToken: "a1", RefreshToken: "r1"}, pair)

	_, err = c.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)
	require.True(t, backend.IsRejected(err))
	require.Equal(t, http.StatusUnauthorized, backend.StatusOf(err))

	var be *backend.Error
	require.ErrorAs(t, err, &be)
	require.Equal(t, "invalid credentials", be.Message)

	require.Equal(t, []observation{{"login", "200"}, {"login", "401"}}, seen())
}

func TestClient_RefreshToken(t *testing.T) {
	t.Parallel()

	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/employee-refresh-token", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "r1", body["refresh_token"])
		_, _ = io.WriteString(w, `{"access_token":"a2","refresh_token":"r2"}`)
	}))

	pair, err := c.RefreshToken(context.Background(), "r1")
	require.NoError(t, err)
	require.Equal(t, "a2", pair.AccessToken)
	require.Equal(t, "r2", pair.RefreshToken)
}

func TestClient_AuthenticatedReads(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/employeeinfo", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"id":7,"username":"alice","role":"admin","company_id":3,"permissions":["view_reports"]}`)
	})
	mux.HandleFunc("/permissions", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "1", r.URL.Query().Get("page"))
		require.Equal(t, "10000", r.URL.Query().Get("page_size"))
		_, _ = io.WriteString(w, `{"count":2,"results":[{"id":1,"name":"create_branch"},{"id":2,"name":"delete_branch"}]}`)
	})
	mux.HandleFunc("/employeeinfo/permissions", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[{"id":10,"permission_id":1}]`)
	})
	mux.HandleFunc("/companies/3", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"id":3,"name":"Kino"}`)
	})
	c, _ := newClient(t, mux)
	ctx := context.Background()

	employee, err := c.EmployeeInfo(ctx, "tok")
	require.NoError(t, err)
	require.Equal(t, int64(7), employee.ID)
	require.NotNil(t, employee.CompanyID)
	require.Equal(t, int64(3), *employee.CompanyID)
	require.Equal(t, []string{"view_reports"}, employee.Permissions)

	catalog, err := c.PermissionCatalog(ctx, "tok")
	require.NoError(t, err)
	require.Len(t, catalog, 2)
	require.Equal(t, "delete_branch", catalog[1].Name)

	assigned, err := c.AssignedPermissions(ctx, "tok")
	require.NoError(t, err)
	require.Equal(t, []backend.AssignedPermission{{ID: 10, PermissionID: 1}}, assigned)

	company, err := c.Company(ctx, "tok", 3)
	require.NoError(t, err)
	require.Equal(t, backend.Company{ID: 3, Name: "Kino"}, company)
}

func TestClient_Do(t *testing.T) {
	t.Parallel()

	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			require.Equal(t, "/branches", r.URL.Path)
			require.Equal(t, "2", r.URL.Query().Get("page"))
			_, _ = io.WriteString(w, `{"count":0,"results":[]}`)
		case http.MethodPatch:
			b, _ := io.ReadAll(r.Body)
			require.JSONEq(t, `{"name":""}`, string(b))
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"message":["name: required"]}`)
		}
	}))
	ctx := context.Background()

	resp, err := c.Do(ctx, "tok", backend.Request{
		Method: http.MethodGet,
		Path:   "/branches",
		Query:  map[string][]string{"page": {"2"}},
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.Status)
	require.JSONEq(t, `{"count":0,"results":[]}`, string(resp.Body))

	_, err = c.Do(ctx, "tok", backend.Request{
		Method: http.MethodPatch,
		Path:   "/branches/1",
		Body:   []byte(`{"name":""}`),
	})
	require.Error(t, err)

	var be *backend.Error
	require.ErrorAs(t, err, &be)
	require.Equal(t, http.StatusBadRequest, be.Status)
	require.Equal(t, "name: required", be.Message)
	require.JSONEq(t, `{"message":["name: required"]}`, string(be.Body))
}

func TestClient_TransportFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	obs, seen := newObserver(t)
	c, err := backend.NewClient(backend.Config{BaseURL: url}, obs)
	require.NoError(t, err)

	_, err = c.EmployeeInfo(context.Background(), "tok")
	require.Error(t, err)
	require.False(t, backend.IsRejected(err))
	require.Equal(t, 0, backend.StatusOf(err))
	require.Equal(t, []observation{{"employee_info", "error"}}, seen())
}

func TestClient_ResponseTooLarge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{name: "at the limit", size: backend.MaxResponseBytes},
		{name: "one byte over", size: backend.MaxResponseBytes + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// a JSON string literal padded to exactly tt.size bytes
			body := `"` + strings.Repeat("x", tt.size-2) + `"`
			c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, body)
			}))

			resp, err := c.Do(context.Background(), "tok", backend.Request{Method: http.MethodGet, Path: "/reports"})
			if tt.wantErr {
				require.ErrorIs(t, err, backend.ErrResponseTooLarge)
				require.False(t, backend.IsRejected(err))
				require.Equal(t, 0, backend.StatusOf(err))
				return
			}
			require.NoError(t, err)
			require.Len(t, resp.Body, tt.size)
		})
	}
}
