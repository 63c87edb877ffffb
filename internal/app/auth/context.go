package auth

import (
	"context"

	"github.com/66gu1/filmoradmin/internal/infrastructure/contextx"
)

// WithSession stores the resolved session and exposes the user and session ids to the logger.
func WithSession(ctx context.Context, s *Session) context.Context {
	if s == nil {
		return ctx
	}
	ctx = contextx.SetToContext(ctx, contextx.ContextKeySession, s)
	ctx = contextx.SetUserID(ctx, s.User.ID)
	if s.ID != "" {
		ctx = contextx.SetSessionID(ctx, s.ID)
	}
	return ctx
}

func FromContext(ctx context.Context) (*Session, bool) {
	s, err := contextx.Get[*Session](ctx, contextx.ContextKeySession)
	if err != nil || s == nil {
		return nil, false
	}
	return s, true
}
