package svgmesh

import (
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/gogpu/svgmesh/internal/cache"
)

// MeshCache keeps tessellated meshes between frames, keyed by icon,
// tolerance, fit mode and display size. Meshes are stored at the origin
// and translated to the widget's position on every use.
//
// Call BeginFrame once per UI frame: it drops the meshes that were not
// used since the previous call.
//
// MeshCache is safe for concurrent use.
type MeshCache struct {
	meshes *cache.LRU[meshKey, *Mesh]
	builds singleflight.Group
}

// NewMeshCache returns an empty cache.
func NewMeshCache(opts ...MeshCacheOption) *MeshCache {
	o := defaultMeshCacheOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &MeshCache{meshes: cache.NewLRU[meshKey, *Mesh](o.capacity)}
}

// BeginFrame evicts the meshes unused during the previous frame and
// returns how many were dropped.
func (c *MeshCache) BeginFrame() int {
	n := c.meshes.Sweep()
	if n > 0 {
		Logger().Debug("svgmesh: mesh cache sweep", "evicted", n, "kept", c.meshes.Len())
	}
	return n
}

// mesh returns a copy of the cached mesh for key translated to offset,
// building and storing it with build on a miss. Concurrent misses on the
// same key share one build. build must produce the mesh at the origin.
func (c *MeshCache) mesh(key meshKey, offset Vec2, build func() *Mesh) *Mesh {
	m, ok := c.meshes.Get(key)
	if !ok {
		v, _, _ := c.builds.Do(fmt.Sprint(key), func() (any, error) {
			// A build may have finished between our miss and entering Do.
			if m, ok := c.meshes.Peek(key); ok {
				return m, nil
			}
			m := build()
			c.meshes.Set(key, m)
			return m, nil
		})
		m = v.(*Mesh)
	}
	out := m.Clone()
	out.Translate(offset)
	return out
}

// Clear drops every cached mesh.
func (c *MeshCache) Clear() {
	c.meshes.Clear()
}

// Len returns the number of cached meshes.
func (c *MeshCache) Len() int {
	return c.meshes.Len()
}

// Stats returns lookup statistics.
func (c *MeshCache) Stats() CacheStats {
	return cacheStatsOf(c.meshes.Stats())
}
