package svgmesh

import "github.com/gogpu/svgmesh/internal/cache"

// CacheStats reports the state of an IconCache or MeshCache.
type CacheStats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	HitRate   float64
	Evictions uint64
}

func cacheStatsOf(s cache.Stats) CacheStats {
	return CacheStats(s)
}

// IconCache shares parsed icons between callers. Each source is parsed at
// most once while it stays cached, even when many goroutines ask for it at
// the same time. Failed parses are not cached.
//
// IconCache is safe for concurrent use.
type IconCache struct {
	icons *cache.Sharded[iconKey, *Icon]
}

// NewIconCache returns an empty cache.
func NewIconCache(opts ...IconCacheOption) *IconCache {
	o := defaultIconCacheOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &IconCache{
		icons: cache.NewSharded[iconKey, *Icon](o.capacity, iconKey.sum),
	}
}

// Load returns the icon for data, keyed by content. Equal bytes at
// different addresses share one icon.
func (c *IconCache) Load(data []byte) (*Icon, error) {
	k := contentIconKey(data)
	return c.icons.GetOrLoad(k, func() (*Icon, error) {
		return loadIcon(data, k.hash)
	})
}

// LoadStatic returns the icon for data, keyed by the address and length of
// its backing array without reading the bytes. data must never be modified,
// as with embedded files or string constants.
func (c *IconCache) LoadStatic(data []byte) (*Icon, error) {
	k := staticIconKey(data)
	return c.icons.GetOrLoad(k, func() (*Icon, error) {
		return loadIcon(data, k.sum())
	})
}

// Clear drops every cached icon. Icons already handed out stay valid.
func (c *IconCache) Clear() {
	c.icons.Clear()
}

// Len returns the number of cached icons.
func (c *IconCache) Len() int {
	return c.icons.Len()
}

// Stats returns lookup statistics.
func (c *IconCache) Stats() CacheStats {
	return cacheStatsOf(c.icons.Stats())
}
