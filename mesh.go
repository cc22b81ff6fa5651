package svgmesh

import (
	"encoding/binary"
	"math"

	"github.com/chewxy/math32"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// Vertex is one mesh vertex in display space.
type Vertex struct {
	Pos   Pos2
	UV    Pos2
	Color Color32
}

// VertexStride is the size in bytes of one vertex written by
// AppendVertexData: position and UV as float32x2, color as float32x4.
const VertexStride = 32

// Mesh is a triangle list: every three indices reference one triangle.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	// Texture is sampled with the vertex UVs when set by a texture override.
	Texture gpucontext.Texture
}

// IsEmpty reports whether the mesh has no triangles.
func (m *Mesh) IsEmpty() bool {
	return len(m.Indices) == 0
}

// Clone returns a deep copy of the vertex and index buffers. The texture
// handle is shared.
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		Vertices: append([]Vertex(nil), m.Vertices...),
		Indices:  append([]uint32(nil), m.Indices...),
		Texture:  m.Texture,
	}
}

// Translate moves every vertex by d.
func (m *Mesh) Translate(d Vec2) {
	for i := range m.Vertices {
		m.Vertices[i].Pos = m.Vertices[i].Pos.Add(d)
	}
}

// Append adds the triangles of o to m.
func (m *Mesh) Append(o *Mesh) {
	base := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, o.Vertices...)
	for _, i := range o.Indices {
		m.Indices = append(m.Indices, base+i)
	}
}

// Bounds returns the bounding rectangle of all vertices, or the zero Rect
// for a mesh without vertices.
func (m *Mesh) Bounds() Rect {
	if len(m.Vertices) == 0 {
		return Rect{}
	}
	b := Rect{
		Min: Pos2{X: math32.Inf(1), Y: math32.Inf(1)},
		Max: Pos2{X: math32.Inf(-1), Y: math32.Inf(-1)},
	}
	for _, v := range m.Vertices {
		b.Min.X = math32.Min(b.Min.X, v.Pos.X)
		b.Min.Y = math32.Min(b.Min.Y, v.Pos.Y)
		b.Max.X = math32.Max(b.Max.X, v.Pos.X)
		b.Max.Y = math32.Max(b.Max.Y, v.Pos.Y)
	}
	return b
}

// VertexBufferLayout describes the buffer written by AppendVertexData:
// position at location 0, UV at location 1, color at location 2.
func (m *Mesh) VertexBufferLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: VertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},  // position
			{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},  // uv
			{Format: gputypes.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 2}, // color
		},
	}
}

// PrimitiveState returns the primitive state for drawing the mesh. Winding
// is not consistent between fills and strokes, so nothing is culled.
func (m *Mesh) PrimitiveState() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology: gputypes.PrimitiveTopologyTriangleList,
		CullMode: gputypes.CullModeNone,
	}
}

// IndexFormat returns the format of the data written by AppendIndexData.
func (m *Mesh) IndexFormat() gputypes.IndexFormat {
	return gputypes.IndexFormatUint32
}

// AppendVertexData appends the vertices to dst in the little-endian layout
// described by VertexBufferLayout.
func (m *Mesh) AppendVertexData(dst []byte) []byte {
	put := func(f float32) {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
	}
	for _, v := range m.Vertices {
		put(v.Pos.X)
		put(v.Pos.Y)
		put(v.UV.X)
		put(v.UV.Y)
		for _, c := range v.Color.Float32x4() {
			put(c)
		}
	}
	return dst
}

// AppendIndexData appends the indices to dst as little-endian uint32.
func (m *Mesh) AppendIndexData(dst []byte) []byte {
	for _, i := range m.Indices {
		dst = binary.LittleEndian.AppendUint32(dst, i)
	}
	return dst
}
