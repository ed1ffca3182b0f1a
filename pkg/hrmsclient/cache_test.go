package hrmsclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheKeyCanonicalizesParamOrder(t *testing.T) {
	a := CacheKey("/api/v1/employees", map[string]string{"search": "rao", "page": "2"})
	b := CacheKey("/api/v1/employees", map[string]string{"page": "2", "search": "rao"})
	assert.Equal(t, a, b)
}

func TestCacheKeySkipsEmptyParams(t *testing.T) {
	a := CacheKey("/api/v1/employees", map[string]string{"search": "", "page": "1"})
	b := CacheKey("/api/v1/employees", map[string]string{"page": "1"})
	assert.Equal(t, a, b)
}

func TestListCacheExpiry(t *testing.T) {
	cache := NewListCache(30 * time.Second)
	now := time.Now()
	cache.now = func() time.Time { return now }

	cache.Set("k", "v")

	got, ok := cache.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", got)

	now = now.Add(31 * time.Second)
	_, ok = cache.Get("k")
	assert.False(t, ok)
}

func TestListCacheInvalidateByEndpoint(t *testing.T) {
	cache := NewListCache(time.Minute)
	cache.Set(CacheKey("/api/v1/employees", map[string]string{"page": "1"}), "emp")
	cache.Set(CacheKey("/api/v1/leave", map[string]string{"page": "1"}), "leave")

	cache.Invalidate("/api/v1/employees")

	_, ok := cache.Get(CacheKey("/api/v1/employees", map[string]string{"page": "1"}))
	assert.False(t, ok)
	_, ok = cache.Get(CacheKey("/api/v1/leave", map[string]string{"page": "1"}))
	assert.True(t, ok)
}

func TestListGuardDiscardsSupersededState(t *testing.T) {
	guard := newListGuard()

	guard.begin("/e", "search=old")
	guard.begin("/e", "search=new")

	assert.False(t, guard.stillCurrent("/e", "search=old"))
	assert.True(t, guard.stillCurrent("/e", "search=new"))
}
