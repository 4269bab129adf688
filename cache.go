package automata

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the default number of compiled matchers to keep.
const DefaultCacheSize = 256

// MatcherCache is an LRU cache of compiled matchers keyed by a
// caller-chosen pattern key. Compiling the same pattern for every query is
// the redundant work this removes; a Matcher is immutable, so cache hits can
// be shared across goroutines without copying.
type MatcherCache struct {
	cache *lru.Cache[string, *Matcher]
}

// NewMatcherCache creates a cache holding up to size matchers. A size <= 0
// means DefaultCacheSize.
func NewMatcherCache(size int) *MatcherCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, _ := lru.New[string, *Matcher](size)
	return &MatcherCache{cache: cache}
}

// Get returns the cached matcher for key, if present.
func (c *MatcherCache) Get(key string) (*Matcher, bool) {
	return c.cache.Get(key)
}

// GetOrCompile returns the cached matcher for key, invoking compile and
// caching its result on a miss. Compile errors are returned uncached, so a
// later retry (e.g. with a higher work limit under a different key) is not
// poisoned.
func (c *MatcherCache) GetOrCompile(key string, compile func() (*Matcher, error)) (*Matcher, error) {
	if m, ok := c.cache.Get(key); ok {
		return m, nil
	}
	m, err := compile()
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, m)
	return m, nil
}

// Len returns the number of cached matchers.
func (c *MatcherCache) Len() int {
	return c.cache.Len()
}

// Purge drops all cached matchers.
func (c *MatcherCache) Purge() {
	c.cache.Purge()
}
