package svgmesh

import (
	"fmt"

	"github.com/gogpu/svgmesh/internal/svg"
)

// Icon is a parsed SVG document. It never changes after loading and is safe
// for concurrent use.
type Icon struct {
	key     uint64
	tree    *svg.Tree
	viewBox Rect
}

// LoadIcon parses SVG source. The returned error wraps ErrInvalidSVG.
func LoadIcon(data []byte) (*Icon, error) {
	return loadIcon(data, contentKey(data))
}

func loadIcon(data []byte, key uint64) (*Icon, error) {
	tree, err := svg.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSVG, err)
	}
	vb := tree.ViewBox
	icon := &Icon{
		key:  key,
		tree: tree,
		viewBox: Rect{
			Min: Pos2{X: float32(vb.X), Y: float32(vb.Y)},
			Max: Pos2{X: float32(vb.X + vb.Width), Y: float32(vb.Y + vb.Height)},
		},
	}
	Logger().Debug("svgmesh: icon loaded",
		"key", key, "width", vb.Width, "height", vb.Height, "nodes", len(tree.Root.Children))
	return icon, nil
}

// ViewBox returns the document's view box in its own user units.
func (i *Icon) ViewBox() Rect {
	return i.viewBox
}

// Size returns the view box size.
func (i *Icon) Size() Vec2 {
	return i.viewBox.Size()
}

// Key returns the identity key of the icon. Icons loaded from equal bytes
// through LoadIcon or IconCache.Load share a key.
func (i *Icon) Key() uint64 {
	return i.key
}
