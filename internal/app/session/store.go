package session

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("session: not found")

// Record is a sealed session as kept by a server-side store.
type Record struct {
	ID        string
	UserID    string
	Data      []byte
	ExpiresAt time.Time
}

// Store keeps sealed session records server side. Load returns ErrNotFound for missing and
// expired records; Delete of a missing record is not an error.
type Store interface {
	Save(ctx context.Context, rec Record) error
	Load(ctx context.Context, id string) (Record, error)
	Delete(ctx context.Context, id string) error
}
