package http

import (
	"net/http"

	"github.com/66gu1/filmoradmin/internal/app/auth"
	"github.com/66gu1/filmoradmin/internal/infrastructure/logger"
)

// SessionMiddleware reads the session cookie, runs the refresh state machine and puts the
// result into the request context. It never rejects a request: deciding what an anonymous
// visitor may see is the gate's job.
func SessionMiddleware(svc AuthService, store SessionStore) func(http.Handler) http.Handler {
	if svc == nil || store == nil {
		panic("nil AuthService or SessionStore")
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			stored, err := store.Load(r)
			if err != nil {
				logger.Error(ctx, err).Msg("auth.SessionMiddleware.store.Load")
				next.ServeHTTP(w, r)
				return
			}
			if stored == nil {
				next.ServeHTTP(w, r)
				return
			}

			session, transition := svc.Resolve(ctx, stored)
			switch {
			case session == nil:
				if err = store.Clear(ctx, w, r); err != nil {
					logger.Error(ctx, err).
						Str(auth.FieldUserID.String(), stored.User.ID).
						Msg("auth.SessionMiddleware.store.Clear")
				}
				next.ServeHTTP(w, r)
				return
			case transition.Changed():
				if err = store.Save(ctx, w, session); err != nil {
					logger.Error(ctx, err).
						Str(auth.FieldUserID.String(), session.User.ID).
						Str(auth.FieldTransition.String(), transition.String()).
						Msg("auth.SessionMiddleware.store.Save")
				}
			}

			next.ServeHTTP(w, r.WithContext(auth.WithSession(ctx, session)))
		})
	}
}
