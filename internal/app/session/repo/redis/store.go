package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/66gu1/filmoradmin/internal/app/session"
	goredis "github.com/redis/go-redis/v9"
)

const defaultPrefix = "filmoradmin:session:"

type TimeGenerator interface {
	Now() time.Time
}

type redisStore struct {
	client        goredis.Cmdable
	prefix        string
	timeGenerator TimeGenerator
}

func NewStore(client goredis.Cmdable, timeGenerator TimeGenerator) *redisStore {
	if client == nil || timeGenerator == nil {
		panic("redis.NewStore: nil dependency")
	}
	return &redisStore{client: client, prefix: defaultPrefix, timeGenerator: timeGenerator}
}

func (s *redisStore) key(id string) string {
	return s.prefix + id
}

// Save stores the sealed data with a TTL matching rec.ExpiresAt. The user id is not needed to
// read a session back and is not stored.
func (s *redisStore) Save(ctx context.Context, rec session.Record) error {
	if rec.ID == "" {
		return fmt.Errorf("redisStore.Save: empty id")
	}

	ttl := rec.ExpiresAt.Sub(s.timeGenerator.Now())
	if ttl <= 0 {
		if err := s.client.Del(ctx, s.key(rec.ID)).Err(); err != nil {
			return fmt.Errorf("redisStore.Save: %w", err)
		}
		return nil
	}

	if err := s.client.Set(ctx, s.key(rec.ID), rec.Data, ttl).Err(); err != nil {
		return fmt.Errorf("redisStore.Save: %w", err)
	}

	return nil
}

func (s *redisStore) Load(ctx context.Context, id string) (session.Record, error) {
	key := s.key(id)

	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			err = session.ErrNotFound
		}
		return session.Record{}, fmt.Errorf("redisStore.Load: %w", err)
	}

	rec := session.Record{ID: id, Data: data}
	ttl, err := s.client.PTTL(ctx, key).Result()
	if err == nil && ttl > 0 {
		rec.ExpiresAt = s.timeGenerator.Now().Add(ttl)
	}

	return rec, nil
}

func (s *redisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("redisStore.Delete: %w", err)
	}
	return nil
}
