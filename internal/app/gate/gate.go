// Package gate decides, per navigable request, whether the visitor goes on, is sent to the
// login page, or is sent home.
package gate

import (
	"context"
	"slices"
	"strings"

	"github.com/66gu1/filmoradmin/internal/app/auth"
	"github.com/66gu1/filmoradmin/internal/app/permission"
	"github.com/66gu1/filmoradmin/internal/infrastructure/contextx"
	"github.com/66gu1/filmoradmin/internal/infrastructure/metrics"
)

type Decision string

const (
	DecisionAllow        Decision = metrics.DecisionAllow
	DecisionLogin        Decision = metrics.DecisionLogin
	DecisionHome         Decision = metrics.DecisionHome
	DecisionNotPermitted Decision = metrics.DecisionNotPermitted
)

func (d Decision) String() string {
	return string(d)
}

const (
	LoginPath    = "/login"
	LogoutPath   = "/logout"
	RegisterPath = "/register"
	HomePath     = "/"
)

var (
	// bypassPrefixes are served to anyone: assets, the auth API and operational endpoints.
	bypassPrefixes = []string{"/static/", "/assets/", "/api/auth/", "/swagger/"}
	bypassExact    = []string{"/favicon.ico", "/robots.txt", "/metrics", "/healthz"}

	publicRoutes = []string{LoginPath, LogoutPath}
	authRoutes   = []string{LoginPath, RegisterPath}
)

type Config struct {
	// EnforceRoutePermissions turns a missing menu permission into a not-found answer. Without
	// it pages check permissions themselves.
	EnforceRoutePermissions bool `mapstructure:"enforce_route_permissions" json:"enforce_route_permissions"`
}

type RouteMap interface {
	Lookup(p string) ([]string, bool)
}

// Route is the menu entry a request resolved to.
type Route struct {
	Path        string
	Permissions []string
	Known       bool
}

type Gate struct {
	routes RouteMap
	cfg    Config
}

func New(routes RouteMap, cfg Config) *Gate {
	if routes == nil {
		panic("gate.New: nil route map")
	}
	return &Gate{routes: routes, cfg: cfg}
}

// Decide maps a session and a request path to a decision. The route is filled in only for
// requests that reach a page.
func (g *Gate) Decide(s *auth.Session, p string) (Decision, Route) {
	if bypassed(p) {
		return DecisionAllow, Route{}
	}
	if s != nil && slices.Contains(authRoutes, p) {
		return DecisionHome, Route{}
	}
	if slices.Contains(publicRoutes, p) {
		return DecisionAllow, Route{}
	}
	if s == nil {
		return DecisionLogin, Route{}
	}

	perms, known := g.routes.Lookup(p)
	route := Route{Path: p, Permissions: perms, Known: known}
	if g.cfg.EnforceRoutePermissions && known && !permission.CheckPermission(s, perms) {
		return DecisionNotPermitted, route
	}

	return DecisionAllow, route
}

func bypassed(p string) bool {
	if slices.Contains(bypassExact, p) {
		return true
	}
	for _, prefix := range bypassPrefixes {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

func WithRoute(ctx context.Context, r Route) context.Context {
	return contextx.SetToContext(ctx, contextx.ContextKeyRoute, r)
}

// RouteFromContext returns the menu route the gate resolved for the current request.
func RouteFromContext(ctx context.Context) (Route, bool) {
	r, err := contextx.Get[Route](ctx, contextx.ContextKeyRoute)
	if err != nil {
		return Route{}, false
	}
	return r, true
}
