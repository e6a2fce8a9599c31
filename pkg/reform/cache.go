package reform

import (
	"container/list"
	"sync"
	"time"
)

// CacheConfig contains configuration options for the compiled-pattern cache
type CacheConfig struct {
	// MaxSize is the maximum number of compiled objects to cache. 0 disables caching.
	MaxSize int
	// TTL is the time-to-live for cached objects. 0 means no expiration.
	TTL time.Duration
}

// patternCache is an LRU cache for compiled Formatters and Parsers keyed
// by template string. Compiling a template once and reusing the compiled
// object is the intended usage pattern; the cache makes that automatic
// for callers that go through the Engine.
type patternCache struct {
	mu     sync.RWMutex
	cache  map[string]*cacheEntry
	lru    *list.List
	config CacheConfig
}

type cacheEntry struct {
	key      string
	compiled interface{}
	expiry   time.Time
	element  *list.Element
}

// newPatternCache creates a new cache with the given configuration
func newPatternCache(config CacheConfig) *patternCache {
	return &patternCache{
		cache:  make(map[string]*cacheEntry),
		lru:    list.New(),
		config: config,
	}
}

// get retrieves a compiled object from the cache
func (pc *patternCache) get(key string) (interface{}, bool) {
	pc.mu.RLock()
	entry, exists := pc.cache[key]
	pc.mu.RUnlock()

	if !exists {
		return nil, false
	}

	// Check expiry
	if pc.config.TTL > 0 && time.Now().After(entry.expiry) {
		pc.remove(key)
		return nil, false
	}

	pc.mu.Lock()
	pc.lru.MoveToFront(entry.element)
	pc.mu.Unlock()

	return entry.compiled, true
}

// set adds a compiled object to the cache
func (pc *patternCache) set(key string, compiled interface{}) {
	if pc.config.MaxSize == 0 {
		return
	}

	pc.mu.Lock()
	defer pc.mu.Unlock()

	if existing, exists := pc.cache[key]; exists {
		existing.compiled = compiled
		if pc.config.TTL > 0 {
			existing.expiry = time.Now().Add(pc.config.TTL)
		}
		pc.lru.MoveToFront(existing.element)
		return
	}

	// Evict the least recently used entry when full
	if pc.lru.Len() >= pc.config.MaxSize {
		oldest := pc.lru.Back()
		if oldest != nil {
			oldEntry := oldest.Value.(*cacheEntry)
			delete(pc.cache, oldEntry.key)
			pc.lru.Remove(oldest)
		}
	}

	entry := &cacheEntry{
		key:      key,
		compiled: compiled,
	}
	if pc.config.TTL > 0 {
		entry.expiry = time.Now().Add(pc.config.TTL)
	}

	entry.element = pc.lru.PushFront(entry)
	pc.cache[key] = entry
}

// remove removes a compiled object from the cache
func (pc *patternCache) remove(key string) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	entry, exists := pc.cache[key]
	if !exists {
		return
	}

	delete(pc.cache, key)
	pc.lru.Remove(entry.element)
}

// clear removes all entries from the cache
func (pc *patternCache) clear() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	pc.cache = make(map[string]*cacheEntry)
	pc.lru = list.New()
}

// size returns the current number of cached objects
func (pc *patternCache) size() int {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return len(pc.cache)
}
