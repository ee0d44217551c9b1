// Package cache is a small injected TTL cache for hot read endpoints.
// Keys are (endpoint, params) pairs; entries expire after the configured
// TTL and writers invalidate by endpoint prefix. It deliberately has no
// package-level singleton; callers hold the instance they were given.
package cache

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type ResponseCache struct {
	lru *expirable.LRU[string, any]
}

// New builds a cache holding up to size entries, each living for ttl.
func New(size int, ttl time.Duration) *ResponseCache {
	return &ResponseCache{
		lru: expirable.NewLRU[string, any](size, nil, ttl),
	}
}

func key(endpoint, params string) string {
	return endpoint + "?" + params
}

func (c *ResponseCache) Get(endpoint, params string) (any, bool) {
	return c.lru.Get(key(endpoint, params))
}

func (c *ResponseCache) Set(endpoint, params string, payload any) {
	c.lru.Add(key(endpoint, params), payload)
}

// InvalidatePrefix drops every entry whose endpoint starts with prefix.
func (c *ResponseCache) InvalidatePrefix(prefix string) {
	for _, k := range c.lru.Keys() {
		if strings.HasPrefix(k, prefix) {
			c.lru.Remove(k)
		}
	}
}

func (c *ResponseCache) Clear() {
	c.lru.Purge()
}
