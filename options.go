package svgmesh

import "github.com/gogpu/svgmesh/internal/cache"

// Default cache capacities.
const (
	DefaultIconCapacity = cache.DefaultCapacity
	DefaultMeshCapacity = 256
)

// IconCacheOption configures an IconCache during creation.
//
// Example:
//
//	icons := svgmesh.NewIconCache(svgmesh.WithIconCapacity(512))
type IconCacheOption func(*iconCacheOptions)

type iconCacheOptions struct {
	capacity int
}

func defaultIconCacheOptions() iconCacheOptions {
	return iconCacheOptions{capacity: DefaultIconCapacity}
}

// WithIconCapacity sets the maximum number of icons kept. Zero or a
// negative value keeps every icon until Clear.
func WithIconCapacity(n int) IconCacheOption {
	return func(o *iconCacheOptions) {
		o.capacity = n
	}
}

// MeshCacheOption configures a MeshCache during creation.
type MeshCacheOption func(*meshCacheOptions)

type meshCacheOptions struct {
	capacity int
}

func defaultMeshCacheOptions() meshCacheOptions {
	return meshCacheOptions{capacity: DefaultMeshCapacity}
}

// WithMeshCapacity sets the maximum number of meshes kept. Zero or a
// negative value bounds the cache by frame eviction only.
func WithMeshCapacity(n int) MeshCacheOption {
	return func(o *meshCacheOptions) {
		o.capacity = n
	}
}
