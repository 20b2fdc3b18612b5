package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// EvictReason tells an eviction callback why an entry left the cache.
type EvictReason int

const (
	EvictedCapacity EvictReason = iota + 1
	EvictedExpired
	EvictedRemoved
)

func (r EvictReason) String() string {
	switch r {
	case EvictedCapacity:
		return "capacity"
	case EvictedExpired:
		return "expired"
	case EvictedRemoved:
		return "removed"
	}
	return "unknown"
}

type lruEntry[K comparable, V any] struct {
	key      K
	value    V
	lastUsed time.Time
}

// LRUCache is a thread-safe LRU cache.
type LRUCache[K comparable, V any] struct {
	capacity int
	ttl      time.Duration
	now      func() time.Time
	onEvict  func(key K, value V, reason EvictReason)

	mu       sync.Mutex
	items    map[K]*list.Element
	eviction *list.List // front is most recently used
}

type Option[K comparable, V any] func(*LRUCache[K, V])

// WithIdleTTL expires entries idle for longer than ttl. Zero disables expiry.
func WithIdleTTL[K comparable, V any](ttl time.Duration) Option[K, V] {
	return func(c *LRUCache[K, V]) { c.ttl = ttl }
}

func WithClock[K comparable, V any](now func() time.Time) Option[K, V] {
	return func(c *LRUCache[K, V]) {
		if now != nil {
			c.now = now
		}
	}
}

// WithEvictCallback is called, with the cache lock held, for every entry
// leaving the cache except through Clear. It must not call back into the cache.
func WithEvictCallback[K comparable, V any](fn func(key K, value V, reason EvictReason)) Option[K, V] {
	return func(c *LRUCache[K, V]) { c.onEvict = fn }
}

// NewLRUCache panics if capacity is not positive.
func NewLRUCache[K comparable, V any](capacity int, opts ...Option[K, V]) *LRUCache[K, V] {
	if capacity <= 0 {
		panic("cache: capacity must be positive")
	}
	c := &LRUCache[K, V]{
		capacity: capacity,
		now:      time.Now,
		items:    make(map[K]*list.Element),
		eviction: list.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the value for key and marks it as used.
func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	elem, ok := c.items[key]
	if !ok {
		return zero, false
	}
	entry := elem.Value.(*lruEntry[K, V])
	now := c.now()
	if c.expired(entry, now) {
		c.removeElement(elem, EvictedExpired)
		return zero, false
	}
	entry.lastUsed = now
	c.eviction.MoveToFront(elem)
	return entry.value, true
}

// Put adds or replaces key. It returns the previous live value, if any.
func (c *LRUCache[K, V]) Put(key K, value V) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	var zero V
	if elem, ok := c.items[key]; ok {
		entry := elem.Value.(*lruEntry[K, V])
		old, live := entry.value, !c.expired(entry, now)
		entry.value = value
		entry.lastUsed = now
		c.eviction.MoveToFront(elem)
		if !live {
			return zero, false
		}
		return old, true
	}

	c.items[key] = c.eviction.PushFront(&lruEntry[K, V]{key: key, value: value, lastUsed: now})
	c.purge(now)
	for c.eviction.Len() > c.capacity {
		c.removeElement(c.eviction.Back(), EvictedCapacity)
	}
	return zero, false
}

// Remove deletes key and returns its value.
func (c *LRUCache[K, V]) Remove(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		entry := elem.Value.(*lruEntry[K, V])
		c.removeElement(elem, EvictedRemoved)
		return entry.value, true
	}
	var zero V
	return zero, false
}

// Len counts entries, including expired ones not yet purged.
func (c *LRUCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}

// Purge drops expired entries and returns how many were dropped.
func (c *LRUCache[K, V]) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.purge(c.now())
}

// Clear drops everything without calling the eviction callback.
func (c *LRUCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[K]*list.Element)
	c.eviction.Init()
}

// RunJanitor calls Purge every interval until ctx is done.
func (c *LRUCache[K, V]) RunJanitor(ctx context.Context, interval time.Duration) {
	if c.ttl <= 0 || interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			c.Purge()
		}
	}
}

func (c *LRUCache[K, V]) expired(e *lruEntry[K, V], now time.Time) bool {
	return c.ttl > 0 && now.Sub(e.lastUsed) > c.ttl
}

// Must be called with lock held.
func (c *LRUCache[K, V]) purge(now time.Time) int {
	if c.ttl <= 0 {
		return 0
	}
	n := 0
	for elem := c.eviction.Back(); elem != nil; elem = c.eviction.Back() {
		if !c.expired(elem.Value.(*lruEntry[K, V]), now) {
			break
		}
		c.removeElement(elem, EvictedExpired)
		n++
	}
	return n
}

// Must be called with lock held.
func (c *LRUCache[K, V]) removeElement(elem *list.Element, reason EvictReason) {
	c.eviction.Remove(elem)
	entry := elem.Value.(*lruEntry[K, V])
	delete(c.items, entry.key)
	if c.onEvict != nil {
		c.onEvict(entry.key, entry.value, reason)
	}
}
