// Package cache provides a small in-memory LRU for computed digests, so
// callers hashing the same content identifier repeatedly (the checksum CLI
// given the same path twice, a verifier re-walking a tree) skip the
// recompute.
package cache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DigestCacheSize is the default maximum number of cached digests.
var DigestCacheSize = 1024

// DigestCache is an LRU of raw digests keyed by an opaque string (for
// files typically path plus size plus mtime, so stale entries age out
// naturally when content changes).
type DigestCache struct {
	data *lru.Cache[string, []byte]
}

// NewDigestCache creates a digest cache holding at most size entries.
// Pass a value less than 1 to use [DigestCacheSize].
func NewDigestCache(size int) (*DigestCache, error) {
	if size <= 0 {
		size = DigestCacheSize
	}
	cache, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, fmt.Errorf("creating digest LRU: %w", err)
	}
	return &DigestCache{data: cache}, nil
}

// Get returns the cached digest for key, if any.
func (c *DigestCache) Get(key string) ([]byte, bool) {
	return c.data.Get(key)
}

// Put records the digest for key, evicting the least recently used entry
// when full.
func (c *DigestCache) Put(key string, digest []byte) {
	c.data.Add(key, digest)
}

// Len reports the number of cached digests.
func (c *DigestCache) Len() int {
	return c.data.Len()
}
