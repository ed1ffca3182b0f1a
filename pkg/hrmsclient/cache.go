package hrmsclient

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// ListCache is an in-process TTL cache for list responses. It is purely
// additive: a miss or expiry just means a network fetch, and writes
// never consult it.
type ListCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]listEntry
	now     func() time.Time
}

type listEntry struct {
	value     any
	expiresAt time.Time
}

func NewListCache(ttl time.Duration) *ListCache {
	return &ListCache{
		ttl:     ttl,
		entries: make(map[string]listEntry),
		now:     time.Now,
	}
}

// CacheKey canonicalizes an endpoint and its query parameters so
// equivalent filter states share one entry regardless of map order.
func CacheKey(endpoint string, params map[string]string) string {
	parts := make([]string, 0, len(params))
	for k, v := range params {
		if v == "" {
			continue
		}
		parts = append(parts, k+"="+v)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s?%s", endpoint, strings.Join(parts, "&"))
}

func (c *ListCache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.value, true
}

func (c *ListCache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = listEntry{value: value, expiresAt: c.now().Add(c.ttl)}
}

// Invalidate drops every entry for an endpoint. Called after any write
// that could change the endpoint's list results.
func (c *ListCache) Invalidate(endpoint string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	prefix := endpoint + "?"
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}
