package svgmesh

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"unsafe"
)

// contentKey hashes SVG source with FNV-1a.
func contentKey(data []byte) uint64 {
	h := fnv.New64a()
	h.Write(data)
	return h.Sum64()
}

// iconKey identifies an IconCache entry. Content keys carry the hash of the
// bytes; static keys carry the address and length of the backing array.
type iconKey struct {
	static bool
	hash   uint64
	ptr    uintptr
	n      int
}

func contentIconKey(data []byte) iconKey {
	return iconKey{hash: contentKey(data), n: len(data)}
}

func staticIconKey(data []byte) iconKey {
	return iconKey{static: true, ptr: uintptr(unsafe.Pointer(unsafe.SliceData(data))), n: len(data)}
}

// sum returns the hash used for shard selection. Static keys hash the
// address and length: raw addresses are aligned and would all select the
// same shard. The high half is folded in because FNV-1a's low bits only
// depend on the low bits of each input byte.
func (k iconKey) sum() uint64 {
	h := k.hash
	if k.static {
		var buf [16]byte
		binary.LittleEndian.PutUint64(buf[:8], uint64(k.ptr))
		binary.LittleEndian.PutUint64(buf[8:], uint64(k.n))
		f := fnv.New64a()
		_, _ = f.Write(buf[:]) // fnv.Write never returns an error
		h = f.Sum64()
	}
	return h ^ h>>32
}

// meshKey identifies a tessellation. Float fields are compared by their
// IEEE-754 bits, so NaN payloads are distinct keys and 0 differs from -0.
type meshKey struct {
	icon      uint64
	tolerance uint32
	scaleTol  bool
	fit       fitKind
	fitA      uint32
	fitB      uint32
	fitC      uint32
	fitD      uint32
	width     uint32
	height    uint32
}

func newMeshKey(icon *Icon, tolerance float32, scaleTol bool, fit FitMode, size Vec2) meshKey {
	k := meshKey{
		icon:      icon.key,
		tolerance: math.Float32bits(tolerance),
		scaleTol:  scaleTol,
		fit:       fit.kind,
		width:     math.Float32bits(size.X),
		height:    math.Float32bits(size.Y),
	}
	switch fit.kind {
	case fitSize:
		k.fitA, k.fitB = math.Float32bits(fit.size.X), math.Float32bits(fit.size.Y)
	case fitFactor:
		k.fitA = math.Float32bits(fit.factor)
	case fitContain:
		m := fit.margin
		k.fitA, k.fitB = math.Float32bits(m.Left), math.Float32bits(m.Right)
		k.fitC, k.fitD = math.Float32bits(m.Top), math.Float32bits(m.Bottom)
	}
	return k
}
