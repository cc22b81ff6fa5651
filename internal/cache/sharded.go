package cache

import (
	"fmt"

	"golang.org/x/sync/singleflight"
)

// ShardCount is the number of shards in a Sharded cache. It is a power of
// two so that shard selection is a mask.
const ShardCount = 16

const shardMask = ShardCount - 1

// DefaultCapacity is a reasonable total capacity for a Sharded cache.
const DefaultCapacity = 64

// Hasher computes the hash used to select a shard.
type Hasher[K any] func(K) uint64

// Uint64Hasher uses the key itself as its hash. Suitable for keys that are
// already well-mixed hashes.
func Uint64Hasher(u uint64) uint64 {
	return u
}

// Sharded is an LRU cache split into ShardCount independently locked
// shards, with at-most-once loading per key.
type Sharded[K comparable, V any] struct {
	shards [ShardCount]*LRU[K, V]
	hasher Hasher[K]
	loads  singleflight.Group
}

// NewSharded creates a cache holding about capacity entries in total,
// spread over ShardCount shards. If capacity <= 0, the shards are
// unbounded.
func NewSharded[K comparable, V any](capacity int, hasher Hasher[K]) *Sharded[K, V] {
	perShard := 0
	if capacity > 0 {
		perShard = (capacity + ShardCount - 1) / ShardCount
	}

	c := &Sharded[K, V]{hasher: hasher}
	for i := range c.shards {
		c.shards[i] = NewLRU[K, V](perShard)
	}
	return c
}

func (c *Sharded[K, V]) shard(key K) *LRU[K, V] {
	return c.shards[c.hasher(key)&shardMask]
}

// Get returns the cached value for key.
func (c *Sharded[K, V]) Get(key K) (V, bool) {
	return c.shard(key).Get(key)
}

// Set stores value under key.
func (c *Sharded[K, V]) Set(key K, value V) {
	c.shard(key).Set(key, value)
}

// Delete removes key and reports whether it was present.
func (c *Sharded[K, V]) Delete(key K) bool {
	return c.shard(key).Delete(key)
}

// GetOrLoad returns the cached value for key, calling load on a miss.
// Concurrent callers missing on the same key share a single load call.
// A load error is returned to every waiting caller and nothing is cached.
func (c *Sharded[K, V]) GetOrLoad(key K, load func() (V, error)) (V, error) {
	shard := c.shard(key)
	if v, ok := shard.Get(key); ok {
		return v, nil
	}

	v, err, _ := c.loads.Do(fmt.Sprint(key), func() (any, error) {
		// Another caller may have finished loading between our miss and
		// entering Do.
		if v, ok := shard.Peek(key); ok {
			return v, nil
		}
		v, err := load()
		if err != nil {
			return nil, err
		}
		shard.Set(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// Clear removes all entries from every shard.
func (c *Sharded[K, V]) Clear() {
	for _, s := range c.shards {
		s.Clear()
	}
}

// Len returns the total number of entries.
func (c *Sharded[K, V]) Len() int {
	total := 0
	for _, s := range c.shards {
		total += s.Len()
	}
	return total
}

// ShardLen returns the number of entries in each shard.
func (c *Sharded[K, V]) ShardLen() [ShardCount]int {
	var lens [ShardCount]int
	for i, s := range c.shards {
		lens[i] = s.Len()
	}
	return lens
}

// Stats returns the statistics summed over all shards.
func (c *Sharded[K, V]) Stats() Stats {
	var total Stats
	for _, s := range c.shards {
		st := s.Stats()
		total.Len += st.Len
		total.Capacity += st.Capacity
		total.Hits += st.Hits
		total.Misses += st.Misses
		total.Evictions += st.Evictions
	}
	total.setHitRate()
	return total
}

// ResetStats zeroes the statistics of every shard.
func (c *Sharded[K, V]) ResetStats() {
	for _, s := range c.shards {
		s.ResetStats()
	}
}
