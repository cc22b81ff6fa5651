package cache

import "sync"

// LRU is a thread-safe least recently used cache with frame epochs.
//
// A capacity of 0 or less means unbounded; entries then leave the cache only
// through Sweep, Delete or Clear.
type LRU[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*node[K, V]
	order    list[K, V]
	capacity int
	epoch    uint64

	hits      uint64
	misses    uint64
	evictions uint64
}

// NewLRU creates an empty cache holding at most capacity entries.
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	return &LRU[K, V]{
		entries:  make(map[K]*node[K, V]),
		capacity: capacity,
	}
}

// Get returns the cached value for key and marks it used in the current
// epoch.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	n.epoch = c.epoch
	c.order.moveToFront(n)
	return n.value, true
}

// Peek returns the cached value for key without touching its recency or the
// statistics.
func (c *LRU[K, V]) Peek(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.entries[key]; ok {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Set stores value under key, evicting the least recently used entries when
// the cache is full.
func (c *LRU[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.entries[key]; ok {
		n.value = value
		n.epoch = c.epoch
		c.order.moveToFront(n)
		return
	}
	for c.capacity > 0 && c.order.len >= c.capacity {
		c.evict(c.order.back())
	}
	n := &node[K, V]{key: key, value: value, epoch: c.epoch}
	c.order.pushFront(n)
	c.entries[key] = n
}

// Delete removes key and reports whether it was present.
func (c *LRU[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.entries[key]
	if !ok {
		return false
	}
	c.order.remove(n)
	delete(c.entries, key)
	return true
}

// Sweep evicts every entry not used since the previous Sweep, starts a new
// epoch and returns the number of evicted entries.
func (c *LRU[K, V]) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	// The list is ordered by last use, so stale entries sit at the tail.
	evicted := 0
	for n := c.order.back(); n != nil && n.epoch < c.epoch; n = c.order.back() {
		c.evict(n)
		evicted++
	}
	c.epoch++
	return evicted
}

// evict removes n. Caller must hold c.mu.
func (c *LRU[K, V]) evict(n *node[K, V]) {
	c.order.remove(n)
	delete(c.entries, n.key)
	c.evictions++
}

// Clear removes all entries. Statistics are kept.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*node[K, V])
	c.order.clear()
}

// Len returns the number of entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Capacity returns the maximum number of entries, 0 or less if unbounded.
func (c *LRU[K, V]) Capacity() int {
	return c.capacity
}

// Stats returns a snapshot of the cache statistics.
func (c *LRU[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{
		Len:       len(c.entries),
		Capacity:  c.capacity,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
	s.setHitRate()
	return s
}

// ResetStats zeroes the hit, miss and eviction counters.
func (c *LRU[K, V]) ResetStats() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hits, c.misses, c.evictions = 0, 0, 0
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the maximum number of entries (0 if unbounded).
	Capacity int
	// Hits is the number of lookups that found an entry.
	Hits uint64
	// Misses is the number of lookups that found nothing.
	Misses uint64
	// HitRate is Hits / (Hits + Misses), or 0 before any lookup.
	HitRate float64
	// Evictions counts entries dropped by capacity or Sweep.
	Evictions uint64
}

func (s *Stats) setHitRate() {
	if total := s.Hits + s.Misses; total > 0 {
		s.HitRate = float64(s.Hits) / float64(total)
	}
}
