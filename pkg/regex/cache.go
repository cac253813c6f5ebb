package regex

import (
	"container/list"
	"sync"
	"time"

	"github.com/dlclark/regexp2"
)

type cacheKey struct {
	pattern string
	flags   regexp2.RegexOptions
	timeout time.Duration
}

type cacheEntry struct {
	key cacheKey
	re  *regexp2.Regexp
}

// compileCache is a thread-safe LRU of compiled expressions.
type compileCache struct {
	capacity int
	items    map[cacheKey]*list.Element
	eviction *list.List
	mu       sync.Mutex
}

func newCompileCache(capacity int) *compileCache {
	if capacity <= 0 {
		panic("regex: cache capacity must be positive")
	}
	return &compileCache{
		capacity: capacity,
		items:    make(map[cacheKey]*list.Element),
		eviction: list.New(),
	}
}

func (c *compileCache) get(key cacheKey) (*regexp2.Regexp, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		return elem.Value.(*cacheEntry).re, true
	}
	return nil, false
}

func (c *compileCache) put(key cacheKey, re *regexp2.Regexp) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		elem.Value.(*cacheEntry).re = re
		return
	}

	c.items[key] = c.eviction.PushFront(&cacheEntry{key: key, re: re})

	if c.eviction.Len() > c.capacity {
		oldest := c.eviction.Back()
		c.eviction.Remove(oldest)
		delete(c.items, oldest.Value.(*cacheEntry).key)
	}
}

func (c *compileCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}
