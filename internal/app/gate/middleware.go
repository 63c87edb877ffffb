package gate

import (
	"net/http"

	"github.com/66gu1/filmoradmin/internal/app/auth"
	"github.com/66gu1/filmoradmin/internal/infrastructure/apperr"
	"github.com/66gu1/filmoradmin/internal/infrastructure/httpx"
	"github.com/66gu1/filmoradmin/internal/infrastructure/logger"
)

type Observer interface {
	Gate(decision string)
}

// Middleware applies Decide to every request. It must run after the session middleware.
func (g *Gate) Middleware(obs Observer) func(http.Handler) http.Handler {
	if obs == nil {
		panic("gate.Middleware: nil observer")
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			session, _ := auth.FromContext(ctx)

			decision, route := g.Decide(session, r.URL.Path)
			obs.Gate(decision.String())

			switch decision {
			case DecisionLogin:
				httpx.RedirectToLogin(w, r, LoginPath)
			case DecisionHome:
				http.Redirect(w, r, HomePath, http.StatusFound)
			case DecisionNotPermitted:
				err := apperr.ErrNotFound().WithDetail("route permission missing")
				logger.Warn(ctx, err).
					Str("path", route.Path).
					Strs("required", route.Permissions).
					Msg("gate.Middleware")
				httpx.ReturnError(ctx, w, err)
			case DecisionAllow:
				if route.Path != "" {
					ctx = WithRoute(ctx, route)
				}
				next.ServeHTTP(w, r.WithContext(ctx))
			}
		})
	}
}
