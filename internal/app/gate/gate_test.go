package gate_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/66gu1/filmoradmin/internal/app/auth"
	"github.com/66gu1/filmoradmin/internal/app/gate"
	"github.com/66gu1/filmoradmin/internal/app/gate/mocks"
	"github.com/66gu1/filmoradmin/internal/app/menu"
	"github.com/stretchr/testify/require"
)

//go:generate minimock -o ./mocks -s _mock.go

var routes = menu.RouteMap{
	"/":         {},
	"/branches": {"view_branch"},
	"/reports":  {"view_report", "export_report"},
}

func session(perms ...string) *auth.Session {
	return &auth.Session{User: auth.User{ID: "1", Permissions: perms}}
}

func TestGate_Decide(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		enforce  bool
		session  *auth.Session
		path     string
		want     gate.Decision
		wantPath string
		known    bool
	}{
		{name: "static asset", path: "/static/app.css", want: gate.DecisionAllow},
		{name: "assets", path: "/assets/logo.svg", want: gate.DecisionAllow},
		{name: "favicon", path: "/favicon.ico", want: gate.DecisionAllow},
		{name: "robots", path: "/robots.txt", want: gate.DecisionAllow},
		{name: "auth api", path: "/api/auth/session", want: gate.DecisionAllow},
		{name: "metrics", path: "/metrics", want: gate.DecisionAllow},
		{name: "healthz", path: "/healthz", want: gate.DecisionAllow},
		{name: "swagger", path: "/swagger/index.html", want: gate.DecisionAllow},
		{name: "login without session", path: "/login", want: gate.DecisionAllow},
		{name: "logout without session", path: "/logout", want: gate.DecisionAllow},
		{name: "anonymous page", path: "/branches", want: gate.DecisionLogin},
		{name: "anonymous root", path: "/", want: gate.DecisionLogin},
		{name: "anonymous register", path: "/register", want: gate.DecisionLogin},
		{name: "anonymous api", path: "/api/resources/branches", want: gate.DecisionLogin},
		{name: "signed in login", session: session(), path: "/login", want: gate.DecisionHome},
		{name: "signed in register", session: session(), path: "/register", want: gate.DecisionHome},
		{name: "signed in logout", session: session(), path: "/logout", want: gate.DecisionAllow},
		{
			name: "page level by default", session: session(), path: "/branches",
			want: gate.DecisionAllow, wantPath: "/branches", known: true,
		},
		{
			name: "nested route", session: session(), path: "/branches/12/edit",
			want: gate.DecisionAllow, wantPath: "/branches/12/edit", known: true,
		},
		{
			name: "unknown route", session: session(), path: "/nowhere",
			want: gate.DecisionAllow, wantPath: "/nowhere",
		},
		{
			name: "enforced and missing", enforce: true, session: session("view_report"), path: "/reports",
			want: gate.DecisionNotPermitted, wantPath: "/reports", known: true,
		},
		{
			name: "enforced and granted", enforce: true, session: session("view_report", "export_report"), path: "/reports/2024",
			want: gate.DecisionAllow, wantPath: "/reports/2024", known: true,
		},
		{
			name: "enforced with empty requirement", enforce: true, session: session(), path: "/",
			want: gate.DecisionAllow, wantPath: "/", known: true,
		},
		{
			name: "enforced unknown route", enforce: true, session: session(), path: "/nowhere",
			want: gate.DecisionAllow, wantPath: "/nowhere",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := gate.New(routes, gate.Config{EnforceRoutePermissions: tt.enforce})
			got, route := g.Decide(tt.session, tt.path)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantPath, route.Path)
			require.Equal(t, tt.known, route.Known)
		})
	}
}

func TestGate_Middleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		enforce      bool
		session      *auth.Session
		target       string
		wantDecision gate.Decision
		wantStatus   int
		wantLocation string
		wantNext     bool
		wantRoute    []string
	}{
		{
			name:         "redirect to login keeps callback",
			target:       "/branches?page=2",
			wantDecision: gate.DecisionLogin,
			wantStatus:   http.StatusFound,
			wantLocation: "/login?callback_url=%2Fbranches%3Fpage%3D2",
		},
		{
			name:         "signed in visitor leaves login",
			session:      session(),
			target:       "/login",
			wantDecision: gate.DecisionHome,
			wantStatus:   http.StatusFound,
			wantLocation: "/",
		},
		{
			name:         "allowed page carries route",
			session:      session(),
			target:       "/branches/3",
			wantDecision: gate.DecisionAllow,
			wantStatus:   http.StatusOK,
			wantNext:     true,
			wantRoute:    []string{"view_branch"},
		},
		{
			name:         "enforced denial is not found",
			enforce:      true,
			session:      session(),
			target:       "/branches",
			wantDecision: gate.DecisionNotPermitted,
			wantStatus:   http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var (
				called bool
				route  gate.Route
				found  bool
			)
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				route, found = gate.RouteFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			obs := mocks.NewObserverMock(t)
			obs.GateMock.Times(1).Expect(tt.wantDecision.String()).Return()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.session != nil {
				req = req.WithContext(auth.WithSession(req.Context(), tt.session))
			}
			rec := httptest.NewRecorder()
			gate.New(routes, gate.Config{EnforceRoutePermissions: tt.enforce}).Middleware(obs)(next).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			require.Equal(t, tt.wantNext, called)
			if tt.wantLocation != "" {
				require.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			}
			if tt.wantRoute != nil {
				require.True(t, found)
				require.True(t, route.Known)
				require.Equal(t, tt.wantRoute, route.Permissions)
			}
		})
	}
}

func TestGate_Decide_LooksUpOnlyPages(t *testing.T) {
	t.Parallel()

	routeMap := mocks.NewRouteMapMock(t)
	routeMap.LookupMock.Times(1).Expect("/halls").Return([]string{"view_hall"}, true)
	g := gate.New(routeMap, gate.Config{EnforceRoutePermissions: true})

	decision, _ := g.Decide(nil, "/halls")
	require.Equal(t, gate.DecisionLogin, decision)
	decision, _ = g.Decide(session(), "/static/app.css")
	require.Equal(t, gate.DecisionAllow, decision)

	decision, route := g.Decide(session("view_hall"), "/halls")
	require.Equal(t, gate.DecisionAllow, decision)
	require.Equal(t, gate.Route{Path: "/halls", Permissions: []string{"view_hall"}, Known: true}, route)
}

func TestGate_Panics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { gate.New(nil, gate.Config{}) })
	require.Panics(t, func() { gate.New(routes, gate.Config{}).Middleware(nil) })
}

func TestGate_DefaultMenuRoutes(t *testing.T) {
	t.Parallel()

	m, err := menu.Default()
	require.NoError(t, err)
	g := gate.New(m.Routes(), gate.Config{})

	for _, p := range m.Routes().Paths() {
		decision, route := g.Decide(session(), p)
		require.Equal(t, gate.DecisionAllow, decision, p)
		require.True(t, route.Known, p)
	}
}
