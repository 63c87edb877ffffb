package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/66gu1/filmoradmin/internal/app/auth"
	authhttp "github.com/66gu1/filmoradmin/internal/app/auth/transport/http"
	"github.com/66gu1/filmoradmin/internal/app/auth/transport/http/mocks"
	"github.com/66gu1/filmoradmin/internal/app/auth/usecase"
	"github.com/66gu1/filmoradmin/internal/infrastructure/apperr"
	"github.com/go-chi/chi/v5"
	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/require"
)

//go:generate minimock -o ./mocks -s _mock.go

type mock struct {
	svc   *mocks.AuthServiceMock
	store *mocks.SessionStoreMock
}

func newMock(t *testing.T) mock {
	t.Helper()
	return mock{
		svc:   mocks.NewAuthServiceMock(t),
		store: mocks.NewSessionStoreMock(t),
	}
}

// expectSave makes the store accept want and set a cookie, the way the session manager does.
func expectSave(t *testing.T, store *mocks.SessionStoreMock, want *auth.Session) {
	t.Helper()
	store.SaveMock.Set(func(_ context.Context, w http.ResponseWriter, s *auth.Session) error {
		require.Equal(t, want, s)
		http.SetCookie(w, &http.Cookie{Name: "filmoradmin_session", Value: "v"})
		return nil
	})
}

func signedIn() *auth.Session {
	companyID := int64(3)
	return &auth.Session{
		User: auth.User{
			ID: "7", Username: "alice", Permissions: []string{"view_hall"},
			CompanyID: &companyID, Company: &auth.Company{ID: companyID, Name: "Cinema City"},
		},
		AccessToken:  "access-secret",
		RefreshToken: "refresh-secret",
		ExpiresAt:    time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.RemoteAddr = "10.1.2.3:5555"
	return req
}

func postJSON(target, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "10.1.2.3:5555"
	return req
}

func TestNewHandler_Panics(t *testing.T) {
	t.Parallel()

	m := newMock(t)
	require.Panics(t, func() { authhttp.NewHandler(nil, m.store) })
	require.Panics(t, func() { authhttp.NewHandler(m.svc, nil) })
}

func TestHandler_LoginPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		target   string
		callback string
	}{
		{name: "default callback", target: "/login", callback: `value="/"`},
		{name: "local callback", target: "/login?callback_url=%2Fhalls%3Fpage%3D2", callback: `value="/halls?page=2"`},
		{name: "foreign callback", target: "/login?callback_url=https%3A%2F%2Fevil.example", callback: `value="/"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := newMock(t)
			rec := httptest.NewRecorder()
			authhttp.NewHandler(m.svc, m.store).LoginPage(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			require.Equal(t, http.StatusOK, rec.Code)
			require.Contains(t, rec.Header().Get("Content-Type"), "text/html")
			require.Contains(t, rec.Body.String(), `name="callback_url"`)
			require.Contains(t, rec.Body.String(), tt.callback)
		})
	}
}

func TestHandler_LoginForm(t *testing.T) {
	t.Parallel()

	loginCmd := func(password string) usecase.LoginCmd {
		return usecase.LoginCmd{Username: "alice", Password: []byte(password), IP: "10.1.2.3"}
	}

	tests := []struct {
		name         string
		form         url.Values
		setup        func(t *testing.T, m mock)
		wantStatus   int
		wantLocation string
		wantBody     string
	}{
		{
			name: "ok redirects to callback",
			form: url.Values{"username": {"alice"}, "password": {"pw"}, "callback_url": {"/movies"}},
			setup: func(t *testing.T, m mock) {
				m.svc.LoginMock.Expect(minimock.AnyContext, loginCmd("pw")).Return(signedIn(), nil)
				expectSave(t, m.store, signedIn())
			},
			wantStatus:   http.StatusFound,
			wantLocation: "/movies",
		},
		{
			name: "foreign callback falls back to home",
			form: url.Values{"username": {"alice"}, "password": {"pw"}, "callback_url": {"//evil.example/x"}},
			setup: func(t *testing.T, m mock) {
				m.svc.LoginMock.Expect(minimock.AnyContext, loginCmd("pw")).Return(signedIn(), nil)
				expectSave(t, m.store, signedIn())
			},
			wantStatus:   http.StatusFound,
			wantLocation: "/",
		},
		{
			name: "invalid credentials re-renders the form",
			form: url.Values{"username": {"alice"}, "password": {"bad"}},
			setup: func(t *testing.T, m mock) {
				m.svc.LoginMock.Expect(minimock.AnyContext, loginCmd("bad")).Return(nil, usecase.ErrInvalidCredentials())
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "invalid username or password",
		},
		{
			name: "rate limited",
			form: url.Values{"username": {"alice"}, "password": {"bad"}},
			setup: func(t *testing.T, m mock) {
				m.svc.LoginMock.Expect(minimock.AnyContext, loginCmd("bad")).Return(nil, usecase.ErrTooManyAttempts())
			},
			wantStatus: http.StatusTooManyRequests,
			wantBody:   "too many login attempts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := newMock(t)
			tt.setup(t, m)
			rec := httptest.NewRecorder()
			authhttp.NewHandler(m.svc, m.store).LoginForm(rec, postForm("/login", tt.form))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantLocation != "" {
				require.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			}
			if tt.wantBody != "" {
				require.Contains(t, rec.Body.String(), tt.wantBody)
				require.Contains(t, rec.Body.String(), `value="alice"`)
			}
		})
	}
}

func TestHandler_Login_JSON(t *testing.T) {
	t.Parallel()

	cmd := usecase.LoginCmd{Username: "alice", Password: []byte("pw"), IP: "10.1.2.3"}
	body := `{"username":"alice","password":"pw"}`

	tests := []struct {
		name       string
		body       string
		setup      func(t *testing.T, m mock)
		wantStatus int
		check      func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "ok hides tokens",
			body: body,
			setup: func(t *testing.T, m mock) {
				m.svc.LoginMock.Expect(minimock.AnyContext, cmd).Return(signedIn(), nil)
				expectSave(t, m.store, signedIn())
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.NotEmpty(t, rec.Result().Cookies())
				require.Contains(t, rec.Body.String(), `"username":"alice"`)
				require.NotContains(t, rec.Body.String(), "access-secret")
				require.NotContains(t, rec.Body.String(), "refresh-secret")
			},
		},
		{
			name: "service error",
			body: body,
			setup: func(t *testing.T, m mock) {
				m.svc.LoginMock.Expect(minimock.AnyContext, cmd).Return(nil, usecase.ErrInvalidCredentials())
			},
			wantStatus: http.StatusUnauthorized,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Contains(t, rec.Body.String(), string(usecase.CodeInvalidCredentials))
			},
		},
		{
			name:       "bad json -> 400 and service not called",
			body:       `{"user":"alice"}`,
			setup:      func(*testing.T, mock) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "store failure",
			body: body,
			setup: func(t *testing.T, m mock) {
				m.svc.LoginMock.Expect(minimock.AnyContext, cmd).Return(signedIn(), nil)
				m.store.SaveMock.Return(errors.New("redis down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := newMock(t)
			tt.setup(t, m)
			rec := httptest.NewRecorder()
			authhttp.NewHandler(m.svc, m.store).Login(rec, postJSON("/api/auth/login", tt.body))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.check != nil {
				tt.check(t, rec)
			}
		})
	}
}

func TestHandler_Logout(t *testing.T) {
	t.Parallel()

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		t.Run(method, func(t *testing.T) {
			t.Parallel()

			m := newMock(t)
			m.store.ClearMock.Times(1).Return(nil)
			r := chi.NewRouter()
			authhttp.NewHandler(m.svc, m.store).Routes(r)

			req := httptest.NewRequest(method, authhttp.LogoutPath, nil)
			req = req.WithContext(auth.WithSession(req.Context(), signedIn()))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			require.Equal(t, http.StatusFound, rec.Code)
			require.Equal(t, authhttp.LoginPath, rec.Header().Get("Location"))
		})
	}
}

func TestHandler_GetSession(t *testing.T) {
	t.Parallel()

	m := newMock(t)
	h := authhttp.NewHandler(m.svc, m.store)

	rec := httptest.NewRecorder()
	h.GetSession(rec, httptest.NewRequest(http.MethodGet, "/api/auth/session", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req = req.WithContext(auth.WithSession(req.Context(), signedIn()))
	rec = httptest.NewRecorder()
	h.GetSession(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"expires_at":"2030-01-01T00:00:00Z"`)
	require.NotContains(t, rec.Body.String(), "access-secret")
}

func TestHandler_UpdateSession(t *testing.T) {
	t.Parallel()

	companyID := int64(5)
	switched := signedIn()
	switched.User.CompanyID = &companyID
	switched.User.Company = &auth.Company{ID: companyID, Name: "Kino"}

	tests := []struct {
		name       string
		body       string
		setup      func(t *testing.T, m mock)
		wantStatus int
		wantBody   string
	}{
		{
			name: "ok",
			body: `{"company_id":5,"company":{"id":5,"name":"Kino"}}`,
			setup: func(t *testing.T, m mock) {
				m.svc.UpdateSessionMock.
					Expect(minimock.AnyContext, signedIn(), auth.Update{CompanyID: &companyID, Company: &auth.Company{ID: companyID, Name: "Kino"}}).
					Return(switched, auth.TransitionUpdated, nil)
				expectSave(t, m.store, switched)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"company_id":5`,
		},
		{
			name: "empty update keeps the session and skips the store",
			body: `{}`,
			setup: func(t *testing.T, m mock) {
				m.svc.UpdateSessionMock.Expect(minimock.AnyContext, signedIn(), auth.Update{}).
					Return(signedIn(), auth.TransitionNone, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"company_id":3`,
		},
		{
			name:       "unknown field",
			body:       `{"role":"superadmin"}`,
			setup:      func(*testing.T, mock) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "validation error",
			body: `{"company_id":0}`,
			setup: func(t *testing.T, m mock) {
				m.svc.UpdateSessionMock.Return(nil, auth.TransitionNone, apperr.ErrBadRequest())
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "signed out clears cookie",
			body: `{"company_id":5}`,
			setup: func(t *testing.T, m mock) {
				m.svc.UpdateSessionMock.Return(nil, auth.TransitionSignedOut, apperr.ErrUnauthorized())
				m.store.ClearMock.Times(1).Return(nil)
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := newMock(t)
			tt.setup(t, m)
			req := httptest.NewRequest(http.MethodPatch, "/api/auth/session", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req = req.WithContext(auth.WithSession(req.Context(), signedIn()))
			rec := httptest.NewRecorder()
			authhttp.NewHandler(m.svc, m.store).UpdateSession(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				require.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}
