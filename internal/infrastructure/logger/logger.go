package logger

import (
	"context"
	"errors"

	"github.com/66gu1/filmoradmin/internal/infrastructure/apperr"
	"github.com/66gu1/filmoradmin/internal/infrastructure/contextx"
	"github.com/rs/zerolog"
)

func Error(ctx context.Context, loggingErr error) *zerolog.Event {
	return logEvent(ctx, apperr.LogLevelOf(loggingErr), loggingErr)
}

func Warn(ctx context.Context, loggingErr error) *zerolog.Event {
	return logEvent(ctx, apperr.LogLevelWarn, loggingErr)
}

// Info is for lifecycle events without an error, e.g. a completed token refresh.
func Info(ctx context.Context) *zerolog.Event {
	return withSessionFields(ctx, zerolog.Ctx(ctx).Info())
}

func logEvent(ctx context.Context, level apperr.LogLevel, loggingErr error) *zerolog.Event {
	ctx = context.WithoutCancel(ctx)
	event := withSessionFields(ctx, zerolog.Ctx(ctx).WithLevel(toZerologLevel(level)))

	if loggingErr != nil {
		event = event.Err(loggingErr)
	}

	return event
}

func withSessionFields(ctx context.Context, event *zerolog.Event) *zerolog.Event {
	currentUser, err := contextx.GetUserID(ctx)
	if err != nil {
		if !errors.Is(err, contextx.ErrNotFound) && apperr.ClassOf(err) != apperr.ClassUnauthorized {
			zerolog.Ctx(ctx).Error().Err(err).Msg("logger.logEvent: GetUserID")
		}
	} else {
		event = event.Str("current_user_id", currentUser)
	}

	sessionID, err := contextx.GetSessionID(ctx)
	if err != nil {
		if !errors.Is(err, contextx.ErrNotFound) {
			zerolog.Ctx(ctx).Error().Err(err).Msg("logger.logEvent: GetSessionID")
		}
	} else if sessionID != "" {
		event = event.Str("session_id", sessionID)
	}

	return event
}

func toZerologLevel(level apperr.LogLevel) zerolog.Level {
	switch level {
	case apperr.LogLevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
