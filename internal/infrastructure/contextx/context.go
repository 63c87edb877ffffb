package contextx

import (
	"context"
	"errors"
	"fmt"

	"github.com/66gu1/filmoradmin/internal/infrastructure/apperr"
)

var ErrNotFound = fmt.Errorf("not found in context")

type contextKey string

func (key contextKey) String() string {
	return string(key)
}

const (
	ContextKeyUserID    = contextKey("user_id")
	ContextKeySessionID = contextKey("session_id")
	ContextKeySession   = contextKey("session")
	ContextKeyRoute     = contextKey("route")
)

func getValue[T any](ctx context.Context, key contextKey) (T, error) {
	var zero T

	value := ctx.Value(key)
	if value == nil {
		return zero, fmt.Errorf("key %v: %w", key, ErrNotFound)
	}

	v, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("key %v: wrong format in context, got %T, want %T", key, value, zero)
	}

	return v, nil
}

// GetUserID returns the backend employee id of the signed-in user.
func GetUserID(ctx context.Context) (string, error) {
	userID, err := getValue[string](ctx, ContextKeyUserID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			err = apperr.ErrUnauthorized().WithDetail("current user ID not found in context")
		}
		return "", fmt.Errorf("contextx.GetUserID: %w", err)
	}
	if userID == "" {
		return "", fmt.Errorf("contextx.GetUserID: user ID is empty")
	}

	return userID, nil
}

func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ContextKeyUserID, userID)
}

func GetSessionID(ctx context.Context) (string, error) {
	sessionID, err := getValue[string](ctx, ContextKeySessionID)
	if err != nil {
		return "", fmt.Errorf("contextx.GetSessionID: %w", err)
	}

	return sessionID, nil
}

func SetSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, ContextKeySessionID, sessionID)
}

// Get reads a typed value stored under key.
func Get[T any](ctx context.Context, key contextKey) (T, error) {
	v, err := getValue[T](ctx, key)
	if err != nil {
		return v, fmt.Errorf("contextx.Get: %w", err)
	}
	return v, nil
}

func SetToContext[T any](ctx context.Context, key contextKey, value T) context.Context {
	return context.WithValue(ctx, key, value)
}
