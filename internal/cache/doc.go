// Package cache provides the generic caches behind the icon and mesh caches.
//
// # LRU
//
// A mutex-guarded LRU with a fixed capacity and frame epochs. Every Get or
// Set stamps the entry with the current epoch; Sweep drops the entries not
// stamped since the previous Sweep and starts a new epoch.
//
//	c := cache.NewLRU[uint64, *Mesh](256)
//	c.Set(key, mesh)
//	mesh, ok := c.Get(key)
//	c.Sweep() // once per frame
//
// # Sharded
//
// Sixteen LRU shards selected by key hash, for keys shared between goroutines.
// GetOrLoad runs the loader at most once per key under concurrent first
// access and caches only successful results.
//
//	c := cache.NewSharded[uint64, *Icon](64, cache.Uint64Hasher)
//	icon, err := c.GetOrLoad(key, func() (*Icon, error) { return parse(data) })
//
// Both types are safe for concurrent use and must not be copied after
// creation.
package cache
