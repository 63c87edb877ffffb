package session

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type TimeGenerator interface {
	Now() time.Time
}

// MemoryStore is a process-local Store. Sessions do not survive a restart.
type MemoryStore struct {
	mu            sync.RWMutex
	records       map[string]Record
	timeGenerator TimeGenerator
}

func NewMemoryStore(timeGenerator TimeGenerator) *MemoryStore {
	if timeGenerator == nil {
		panic("session.NewMemoryStore: nil time generator")
	}
	return &MemoryStore{
		records:       make(map[string]Record),
		timeGenerator: timeGenerator,
	}
}

func (s *MemoryStore) Save(_ context.Context, rec Record) error {
	if rec.ID == "" {
		return fmt.Errorf("session.MemoryStore.Save: empty id")
	}

	now := s.timeGenerator.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, r := range s.records {
		if !r.ExpiresAt.After(now) {
			delete(s.records, id)
		}
	}
	if !rec.ExpiresAt.After(now) {
		delete(s.records, rec.ID)
		return nil
	}

	rec.Data = append([]byte(nil), rec.Data...)
	s.records[rec.ID] = rec

	return nil
}

func (s *MemoryStore) Load(_ context.Context, id string) (Record, error) {
	s.mu.RLock()
	rec, ok := s.records[id]
	s.mu.RUnlock()

	if !ok || !rec.ExpiresAt.After(s.timeGenerator.Now()) {
		return Record{}, fmt.Errorf("session.MemoryStore.Load: %w", ErrNotFound)
	}
	rec.Data = append([]byte(nil), rec.Data...)

	return rec, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
	return nil
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
