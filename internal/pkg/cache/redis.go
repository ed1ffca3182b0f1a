package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a short-TTL read cache over redis. It is purely additive:
// every accessor degrades to a miss when redis is unavailable, and it
// is never consulted for writes.
type Cache struct {
	client *redis.Client
}

func New(addr, password string, db int) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return &Cache{client: nil}
	}
	return &Cache{client: client}
}

// NewUnavailable returns a cache that always misses. Used when redis
// is not configured.
func NewUnavailable() *Cache {
	return &Cache{client: nil}
}

func (c *Cache) Available() bool {
	return c.client != nil
}

// ListKey builds a cache key from an endpoint name and its query
// parameters, canonicalized so equivalent queries share an entry.
func ListKey(endpoint string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == "" {
			continue
		}
		keys = append(keys, k+"="+v)
	}
	sort.Strings(keys)
	return fmt.Sprintf("list:%s:%s", endpoint, strings.Join(keys, "&"))
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c.client == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

func (c *Cache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if c.client == nil {
		return
	}
	c.client.Set(ctx, key, data, ttl)
}

// GetJSON reads a cached value into out. A decode failure is a miss.
func (c *Cache) GetJSON(ctx context.Context, key string, out any) bool {
	data, ok := c.Get(ctx, key)
	if !ok {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

// SetJSON marshals v and stores it under key.
func (c *Cache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	c.Set(ctx, key, data, ttl)
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c.client == nil || len(keys) == 0 {
		return
	}
	c.client.Del(ctx, keys...)
}

// InvalidatePattern removes all keys matching a glob pattern. Called
// after writes so list caches never outlive a mutation by more than
// one round trip.
func (c *Cache) InvalidatePattern(ctx context.Context, pattern string) {
	if c.client == nil {
		return
	}
	keys, err := c.client.Keys(ctx, pattern).Result()
	if err == nil && len(keys) > 0 {
		c.client.Del(ctx, keys...)
	}
}

// SetNX stores a value only when the key is absent. Used by the QR
// token store.
func (c *Cache) SetNX(ctx context.Context, key string, data []byte, ttl time.Duration) (bool, error) {
	if c.client == nil {
		return false, redis.ErrClosed
	}
	return c.client.SetNX(ctx, key, data, ttl).Result()
}

// GetDel atomically reads and removes a key, so a QR token can be
// consumed exactly once.
func (c *Cache) GetDel(ctx context.Context, key string) ([]byte, error) {
	if c.client == nil {
		return nil, redis.ErrClosed
	}
	return c.client.GetDel(ctx, key).Bytes()
}

func (c *Cache) IsMiss(err error) bool {
	return err == redis.Nil
}
