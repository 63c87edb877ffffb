package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const defaultPrefix = "filmoradmin:cache:"

type tagCache struct {
	client goredis.Cmdable
	prefix string
	ttl    time.Duration
}

// NewCache stores entries under prefix:tag:key and remembers the keys of each tag in a set.
func NewCache(client goredis.Cmdable, ttl time.Duration) *tagCache {
	if client == nil {
		panic("redis.NewCache: nil client")
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &tagCache{client: client, prefix: defaultPrefix, ttl: ttl}
}

func (c *tagCache) entryKey(tag, key string) string {
	return c.prefix + tag + ":" + key
}

func (c *tagCache) tagKey(tag string) string {
	return c.prefix + "tag:" + tag
}

func (c *tagCache) Get(ctx context.Context, tag, key string) ([]byte, bool, error) {
	body, err := c.client.Get(ctx, c.entryKey(tag, key)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("tagCache.Get: %w", err)
	}
	return body, true, nil
}

func (c *tagCache) Set(ctx context.Context, tag, key string, body []byte) error {
	entry := c.entryKey(tag, key)
	tagKey := c.tagKey(tag)

	_, err := c.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Set(ctx, entry, body, c.ttl)
		pipe.SAdd(ctx, tagKey, entry)
		pipe.Expire(ctx, tagKey, c.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("tagCache.Set: %w", err)
	}
	return nil
}

// Invalidate drops every entry recorded under tag.
func (c *tagCache) Invalidate(ctx context.Context, tag string) error {
	tagKey := c.tagKey(tag)

	entries, err := c.client.SMembers(ctx, tagKey).Result()
	if err != nil {
		return fmt.Errorf("tagCache.Invalidate: %w", err)
	}
	if err = c.client.Del(ctx, append(entries, tagKey)...).Err(); err != nil {
		return fmt.Errorf("tagCache.Invalidate: %w", err)
	}
	return nil
}
