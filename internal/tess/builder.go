package tess

import "math"

// GeometryBuilder receives the output of a tessellator.
//
// AddVertex returns the index of the new (or reused) vertex. Triangles
// reference indices previously returned by AddVertex.
type GeometryBuilder interface {
	AddVertex(p Point) (uint32, error)
	AddTriangle(a, b, c uint32)
}

// VertexBuffers holds a generic vertex list with 32-bit triangle indices.
type VertexBuffers[V any] struct {
	Vertices []V
	Indices  []uint32
}

// Truncate rolls the buffers back to the given lengths.
func (b *VertexBuffers[V]) Truncate(vertices, indices int) {
	b.Vertices = b.Vertices[:vertices]
	b.Indices = b.Indices[:indices]
}

// BuffersBuilder appends tessellator output to VertexBuffers, building each
// vertex with a constructor function.
type BuffersBuilder[V any] struct {
	buf  *VertexBuffers[V]
	ctor func(Point) V
}

// NewBuffersBuilder returns a builder writing into buf.
func NewBuffersBuilder[V any](buf *VertexBuffers[V], ctor func(Point) V) *BuffersBuilder[V] {
	return &BuffersBuilder[V]{buf: buf, ctor: ctor}
}

// AddVertex implements GeometryBuilder.
func (b *BuffersBuilder[V]) AddVertex(p Point) (uint32, error) {
	n := len(b.buf.Vertices)
	if n >= math.MaxUint32 {
		return 0, ErrTooManyVertices
	}
	b.buf.Vertices = append(b.buf.Vertices, b.ctor(p))
	return uint32(n), nil
}

// AddTriangle implements GeometryBuilder.
func (b *BuffersBuilder[V]) AddTriangle(i0, i1, i2 uint32) {
	b.buf.Indices = append(b.buf.Indices, i0, i1, i2)
}
