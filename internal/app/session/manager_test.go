package session_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/66gu1/filmoradmin/internal/app/auth"
	"github.com/66gu1/filmoradmin/internal/app/resource"
	"github.com/66gu1/filmoradmin/internal/app/session"
	"github.com/66gu1/filmoradmin/internal/app/session/mocks"
	"github.com/66gu1/filmoradmin/internal/infrastructure/secure"
	"github.com/66gu1/filmoradmin/internal/infrastructure/system"
	"github.com/gojuno/minimock/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

//go:generate minimock -o ./mocks -s _mock.go

// browserCookieLimit is what browsers accept for one cookie, name and attributes included.
const browserCookieLimit = 4096

func cfg() session.Config {
	return session.Config{TTLMinutes: 60}
}

func newManager(t *testing.T, secret string, store session.Store) *session.Manager {
	t.Helper()

	signKey, sealKey := secure.DeriveKeys([]byte(secret))
	sealer, err := secure.NewSealer(sealKey)
	require.NoError(t, err)

	return session.NewManager(secure.NewTokenCodec(signKey), sealer, store,
		&system.RNDGenerator{}, &system.TimeGenerator{}, cfg())
}

func testSession() *auth.Session {
	companyID := int64(3)
	return &auth.Session{
		User: auth.User{
			ID:          "42",
			Username:    "alice",
			Role:        "admin",
			CompanyID:   &companyID,
			Company:     &auth.Company{ID: 3, Name: "Kino"},
			Permissions: []string{"create_branch", "update_branch"},
		},
		AccessToken:     "access",
		RefreshToken:    "refresh",
		ExpiresAt:       time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		Error:           auth.ErrorRefreshAccessTokenError,
		RefreshAttempts: 2,
	}
}

// roundTrip saves s and returns a request carrying the resulting cookies.
func roundTrip(t *testing.T, m *session.Manager, s *auth.Session) (*http.Request, *http.Cookie) {
	t.Helper()

	rec := httptest.NewRecorder()
	require.NoError(t, m.Save(context.Background(), rec, s))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	c := cookies[0]
	require.Equal(t, session.DefaultCookieName, c.Name)
	require.True(t, c.HttpOnly)
	require.Equal(t, http.SameSiteLaxMode, c.SameSite)
	require.Equal(t, "/", c.Path)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, sent := range cookies {
		if sent.MaxAge >= 0 && sent.Value != "" {
			req.AddCookie(&http.Cookie{Name: sent.Name, Value: sent.Value})
		}
	}
	return req, c
}

func TestNewManager(t *testing.T) {
	t.Parallel()

	signKey, sealKey := secure.DeriveKeys([]byte("secret"))
	sealer, err := secure.NewSealer(sealKey)
	require.NoError(t, err)
	codec := secure.NewTokenCodec(signKey)
	clock := &system.TimeGenerator{}

	require.Panics(t, func() {
		session.NewManager(codec, sealer, nil, &system.RNDGenerator{}, clock, session.Config{})
	})
	require.Panics(t, func() {
		session.NewManager(nil, sealer, nil, &system.RNDGenerator{}, clock, cfg())
	})
	require.Panics(t, func() {
		session.NewManager(codec, nil, nil, &system.RNDGenerator{}, clock, cfg())
	})

	m := session.NewManager(codec, sealer, nil, &system.RNDGenerator{}, clock, session.Config{TTLMinutes: 1, CookieName: "custom"})
	require.Equal(t, "custom", m.CookieName())
}

func TestManager_CookieBackend(t *testing.T) {
	t.Parallel()

	m := newManager(t, "secret", nil)
	want := testSession()

	rec := httptest.NewRecorder()
	require.NoError(t, m.Save(context.Background(), rec, want))
	require.Len(t, rec.Result().Cookies(), 1)

	req, c := roundTrip(t, m, want)
	require.NotContains(t, c.Value, "refresh", "session record is sealed")

	got, err := m.Load(req)
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.Empty(t, got.ID)

	rec = httptest.NewRecorder()
	require.NoError(t, m.Clear(context.Background(), rec, req))
	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	require.Empty(t, cleared[0].Value)
	require.Less(t, cleared[0].MaxAge, 0)
}

func TestManager_StoreBackend(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore(&system.TimeGenerator{})
	m := newManager(t, "secret", store)
	s := testSession()

	req, c := roundTrip(t, m, s)
	require.NotEmpty(t, s.ID, "save assigns an id")
	require.Equal(t, 1, store.Len())

	var claims struct {
		SID  string `json:"sid"`
		Data string `json:"data"`
		jwt.RegisteredClaims
	}
	_, _, err := jwt.NewParser().ParseUnverified(c.Value, &claims)
	require.NoError(t, err)
	require.Equal(t, s.ID, claims.SID)
	require.Empty(t, claims.Data)
	require.Equal(t, "42", claims.Subject)

	got, err := m.Load(req)
	require.NoError(t, err)
	require.Equal(t, s, got)

	// saving again keeps the id
	id := s.ID
	s.RefreshAttempts = 0
	roundTrip(t, m, s)
	require.Equal(t, id, s.ID)
	require.Equal(t, 1, store.Len())

	require.NoError(t, m.Clear(context.Background(), httptest.NewRecorder(), req))
	require.Zero(t, store.Len())

	got, err = m.Load(req)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestManager_Load_Invalid(t *testing.T) {
	t.Parallel()

	m := newManager(t, "secret", nil)
	other := newManager(t, "other-secret", nil)
	req, c := roundTrip(t, m, testSession())

	tests := []struct {
		name string
		req  func() *http.Request
	}{
		{
			name: "no cookie",
			req: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/", nil)
			},
		},
		{
			name: "tampered",
			req: func() *http.Request {
				r := httptest.NewRequest(http.MethodGet, "/", nil)
				parts := strings.Split(c.Value, ".")
				parts[1] += "x"
				r.AddCookie(&http.Cookie{Name: c.Name, Value: strings.Join(parts, ".")})
				return r
			},
		},
		{
			name: "garbage",
			req: func() *http.Request {
				r := httptest.NewRequest(http.MethodGet, "/", nil)
				r.AddCookie(&http.Cookie{Name: c.Name, Value: "a.b.c"})
				return r
			},
		},
		{
			name: "signed with another secret",
			req: func() *http.Request {
				r, _ := roundTrip(t, other, testSession())
				return r
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Load(tt.req())
			require.NoError(t, err)
			require.Nil(t, got)
		})
	}

	got, err := m.Load(req)
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestManager_Load_ExpiredCookie(t *testing.T) {
	t.Parallel()

	signKey, sealKey := secure.DeriveKeys([]byte("secret"))
	sealer, err := secure.NewSealer(sealKey)
	require.NoError(t, err)
	codec := secure.NewTokenCodec(signKey)
	clock := mocks.NewTimeGeneratorMock(t)
	clock.NowMock.Return(time.Now().Add(-2 * time.Hour))
	m := session.NewManager(codec, sealer, nil, &system.RNDGenerator{}, clock, cfg())

	req, _ := roundTrip(t, m, testSession())
	got, err := m.Load(req)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestManager_StoreErrors(t *testing.T) {
	t.Parallel()

	errExp := errors.New("store down")
	healthy := session.NewMemoryStore(&system.TimeGenerator{})
	m := newManager(t, "secret", healthy)
	req, _ := roundTrip(t, m, testSession())
	sid := testSessionID(t, req)

	tests := []struct {
		name  string
		setup func(store *mocks.StoreMock)
		run   func(m *session.Manager) error
	}{
		{
			name: "load",
			setup: func(store *mocks.StoreMock) {
				store.LoadMock.Expect(minimock.AnyContext, sid).Return(session.Record{}, errExp)
			},
			run: func(m *session.Manager) error {
				_, err := m.Load(req)
				return err
			},
		},
		{
			name: "save",
			setup: func(store *mocks.StoreMock) {
				store.SaveMock.Return(errExp)
			},
			run: func(m *session.Manager) error {
				return m.Save(context.Background(), httptest.NewRecorder(), testSession())
			},
		},
		{
			name: "clear",
			setup: func(store *mocks.StoreMock) {
				store.DeleteMock.Expect(minimock.AnyContext, sid).Return(errExp)
			},
			run: func(m *session.Manager) error {
				return m.Clear(context.Background(), httptest.NewRecorder(), req)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := mocks.NewStoreMock(t)
			tt.setup(store)
			require.ErrorIs(t, tt.run(newManager(t, "secret", store)), errExp)
		})
	}

	t.Run("missing record reads as no session", func(t *testing.T) {
		t.Parallel()

		store := mocks.NewStoreMock(t)
		store.LoadMock.Expect(minimock.AnyContext, sid).Return(session.Record{}, session.ErrNotFound)
		got, err := newManager(t, "secret", store).Load(req)
		require.NoError(t, err)
		require.Nil(t, got)
	})
}

func TestManager_Save_Nil(t *testing.T) {
	t.Parallel()

	m := newManager(t, "secret", nil)
	err := m.Save(context.Background(), httptest.NewRecorder(), nil)
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "nil session"))
}

// fullAccessSession holds every flat permission of the default registry and backend tokens
// of realistic length.
func fullAccessSession() *auth.Session {
	s := testSession()
	s.User.Permissions = nil
	for _, res := range resource.DefaultRegistry().All() {
		if res.Family != resource.FamilyFlatList {
			continue
		}
		for _, verb := range []string{"view", "create", "update", "delete"} {
			s.User.Permissions = append(s.User.Permissions, verb+"_"+res.Noun)
		}
	}
	s.AccessToken = strings.Repeat("a", 300)
	s.RefreshToken = strings.Repeat("r", 300)
	return s
}

func TestManager_CookieBackend_LargeSession(t *testing.T) {
	t.Parallel()

	m := newManager(t, "secret", nil)
	want := fullAccessSession()
	require.GreaterOrEqual(t, len(want.User.Permissions), 96)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Save(context.Background(), rec, want))

	var chunks int
	for _, c := range rec.Result().Cookies() {
		require.LessOrEqual(t, len(c.String()), browserCookieLimit, c.Name)
		if c.Value != "" {
			chunks++
			require.True(t, strings.HasPrefix(c.Name, session.DefaultCookieName+"."), c.Name)
		}
	}
	require.Greater(t, chunks, 1)

	req, _ := roundTrip(t, m, want)
	got, err := m.Load(req)
	require.NoError(t, err)
	require.Equal(t, want, got)

	t.Run("a later small session wins over stale chunks", func(t *testing.T) {
		t.Parallel()

		small := testSession()
		rec := httptest.NewRecorder()
		require.NoError(t, m.Save(context.Background(), rec, small))
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)

		next := req.Clone(context.Background())
		next.AddCookie(cookies[0])
		got, err := m.Load(next)
		require.NoError(t, err)
		require.Equal(t, small, got)
	})

	t.Run("clear expires every chunk", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		require.NoError(t, m.Clear(context.Background(), rec, req))
		cleared := rec.Result().Cookies()
		require.Len(t, cleared, chunks+1)
		for _, c := range cleared {
			require.Empty(t, c.Value)
			require.Less(t, c.MaxAge, 0)
		}
	})
}

func TestManager_CookieBackend_TooLarge(t *testing.T) {
	t.Parallel()

	m := newManager(t, "secret", nil)
	s := testSession()
	s.AccessToken = strings.Repeat("a", 40000)

	rec := httptest.NewRecorder()
	err := m.Save(context.Background(), rec, s)
	require.ErrorIs(t, err, session.ErrCookieTooLarge)
	require.Empty(t, rec.Result().Cookies())
}

func testSessionID(t *testing.T, req *http.Request) string {
	t.Helper()

	c, err := req.Cookie(session.DefaultCookieName)
	require.NoError(t, err)
	var claims struct {
		SID string `json:"sid"`
		jwt.RegisteredClaims
	}
	_, _, err = jwt.NewParser().ParseUnverified(c.Value, &claims)
	require.NoError(t, err)
	require.NotEmpty(t, claims.SID)
	return claims.SID
}
