package news

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// PageCache wraps Redis based caching of upstream feed pages. A nil cache or
// a cache without a client degrades to calling the loader directly, so the
// service works identically with caching disabled.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPageCache instantiates the cache helper.
func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	return &PageCache{client: client, ttl: ttl}
}

// Fetch loads a cached value or populates it using the loader. Only
// successful loads are written back.
func (c *PageCache) Fetch(ctx context.Context, key string, dest any, loader func(context.Context) (any, error)) error {
	if loader == nil {
		return errors.New("cache: loader required")
	}
	if c == nil || c.client == nil {
		value, err := loader(ctx)
		if err != nil {
			return err
		}
		raw, err := json.Marshal(value)
		if err != nil {
			return err
		}
		return json.Unmarshal(raw, dest)
	}

	// Cache trouble is never allowed to fail a fetch: any Get error counts
	// as a miss and Set errors are dropped.
	payload, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		return json.Unmarshal(payload, dest)
	}

	value, err := loader(ctx)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	_ = c.client.Set(ctx, key, raw, c.ttl).Err()
	return json.Unmarshal(raw, dest)
}

func pageKey(category, region string) string {
	if category == "" {
		category = DefaultCategory
	}
	return strings.Join([]string{"news", "page", category, region}, ":")
}
