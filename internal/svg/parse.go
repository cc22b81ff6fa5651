package svg

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	maxDepth    = 256
	maxUseDepth = 16
)

type attr struct {
	name, value string
}

// element is a raw XML element.
type element struct {
	name     string
	attrs    []attr
	children []*element
	text     strings.Builder
}

func (e *element) attr(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.name == name {
			return a.value, true
		}
	}
	return "", false
}

// Parse parses an SVG document.
func Parse(data []byte) (*Tree, error) {
	root, err := decode(data)
	if err != nil {
		return nil, err
	}
	if root.name != "svg" {
		return nil, errors.Wrapf(ErrInvalidDocument, "root element is <%s>, want <svg>", root.name)
	}

	b := &builder{ids: make(map[string]*element)}
	b.index(root)
	return b.build(root)
}

// decode reads the document into an element tree. Byte order marks select
// the encoding; otherwise the XML declaration does.
func decode(data []byte) (*element, error) {
	hasBOM := bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) ||
		bytes.HasPrefix(data, []byte{0xFE, 0xFF}) ||
		bytes.HasPrefix(data, []byte{0xFF, 0xFE})

	r := transform.NewReader(bytes.NewReader(data), unicode.BOMOverride(transform.Nop))
	dec := xml.NewDecoder(r)
	dec.Entity = xml.HTMLEntity
	dec.CharsetReader = func(label string, input io.Reader) (io.Reader, error) {
		if hasBOM {
			return input, nil
		}
		return charset.NewReaderLabel(label, input)
	}

	var (
		root  *element
		stack []*element
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(ErrInvalidDocument, err.Error())
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if len(stack) >= maxDepth {
				return nil, errors.WithStack(ErrNestingTooDeep)
			}
			el := &element{name: t.Name.Local}
			for _, a := range t.Attr {
				el.attrs = append(el.attrs, attr{name: a.Name.Local, value: a.Value})
			}
			if n := len(stack); n > 0 {
				stack[n-1].children = append(stack[n-1].children, el)
			} else if root == nil {
				root = el
			}
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if n := len(stack); n > 0 {
				stack[n-1].text.Write(t)
			}
		}
	}
	if root == nil {
		return nil, errors.Wrap(ErrInvalidDocument, "no root element")
	}
	return root, nil
}

// builder converts an element tree into a Tree.
type builder struct {
	ids      map[string]*element
	viewport Rect
	// using holds the elements currently being instantiated by use.
	using []*element
}

func (b *builder) index(el *element) {
	if id, ok := el.attr("id"); ok && id != "" {
		if _, dup := b.ids[id]; !dup {
			b.ids[id] = el
		}
	}
	for _, c := range el.children {
		b.index(c)
	}
}

func (b *builder) build(root *element) (*Tree, error) {
	width, hasW := b.rootLength(root, "width")
	height, hasH := b.rootLength(root, "height")

	var vb Rect
	if v, ok := root.attr("viewBox"); ok {
		nums, err := parseNumberList(v)
		if err != nil || len(nums) != 4 {
			return nil, errors.Wrapf(ErrInvalidSize, "viewBox %q", v)
		}
		vb = Rect{X: nums[0], Y: nums[1], Width: nums[2], Height: nums[3]}
		if vb.Empty() {
			return nil, errors.Wrapf(ErrInvalidSize, "viewBox %q", v)
		}
		if !hasW {
			width = vb.Width
		}
		if !hasH {
			height = vb.Height
		}
	} else {
		if !hasW || !hasH {
			return nil, errors.Wrap(ErrInvalidSize, "missing viewBox and width/height")
		}
		vb = Rect{Width: width, Height: height}
	}
	if !(width > 0) || !(height > 0) || vb.Empty() {
		return nil, errors.Wrapf(ErrInvalidSize, "%gx%g", width, height)
	}

	b.viewport = vb
	st := defaultStyle()
	st.apply(root)
	g := &Group{Transform: Identity()}
	g.ID, _ = root.attr("id")
	b.children(g, root, scaleOpacity(st))
	return &Tree{ViewBox: vb, Width: width, Height: height, Root: g}, nil
}

// rootLength parses a width or height on the root element. Percentages
// and invalid values count as missing.
func (b *builder) rootLength(el *element, name string) (float64, bool) {
	v, ok := el.attr(name)
	if !ok || strings.HasSuffix(strings.TrimSpace(v), "%") {
		return 0, false
	}
	f, err := parseLength(v, Rect{}, axisX)
	if err != nil || !(f > 0) {
		return 0, false
	}
	return f, true
}

func (b *builder) children(g *Group, el *element, st style) {
	for _, c := range el.children {
		if n := b.node(c, st.inherit()); n != nil {
			g.Children = append(g.Children, n)
		}
	}
}

// node converts one element, or returns nil when it renders nothing.
func (b *builder) node(el *element, st style) Node {
	st.apply(el)
	if !st.display {
		return nil
	}
	tf := Identity()
	if v, ok := el.attr("transform"); ok {
		t, err := parseTransform(v)
		if err != nil {
			return nil
		}
		tf = t
	}
	id, _ := el.attr("id")

	switch el.name {
	case "g", "a", "switch":
		g := &Group{ID: id, Transform: tf}
		b.children(g, el, scaleOpacity(st))
		return nonEmpty(g)
	case "svg":
		return b.nestedSVG(el, id, tf, st)
	case "use":
		return b.use(el, id, tf, st)
	case "path", "rect", "circle", "ellipse", "line", "polyline", "polygon":
		if st.hidden {
			return nil
		}
		segs := b.shape(el)
		if len(segs) < 2 {
			return nil
		}
		p := &Path{ID: id, Transform: tf, Segments: segs}
		p.Fill = b.fill(st, segs)
		p.Stroke = b.stroke(st, segs)
		if p.Fill == nil && p.Stroke == nil {
			return nil
		}
		return p
	case "image":
		if st.hidden {
			return nil
		}
		href, _ := el.attr("href")
		return &Image{ID: id, Transform: tf, Href: href, Bounds: Rect{
			X:      b.length(el, "x", axisX, 0),
			Y:      b.length(el, "y", axisY, 0),
			Width:  b.length(el, "width", axisX, 0),
			Height: b.length(el, "height", axisY, 0),
		}}
	case "text":
		if st.hidden {
			return nil
		}
		return &Text{ID: id, Transform: tf, Content: strings.TrimSpace(textContent(el))}
	}
	// defs, gradients, clipPath, mask, symbol, style, title, metadata and
	// unknown elements render nothing directly.
	return nil
}

// scaleOpacity folds the opacity of a group into the opacity inherited by
// its children.
func scaleOpacity(st style) style {
	st.groupOpacity *= st.opacity
	st.opacity = 1
	return st
}

func nonEmpty(g *Group) Node {
	if len(g.Children) == 0 {
		return nil
	}
	return g
}

func textContent(el *element) string {
	var sb strings.Builder
	sb.WriteString(el.text.String())
	for _, c := range el.children {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}

func (b *builder) nestedSVG(el *element, id string, tf Transform, st style) Node {
	x := b.length(el, "x", axisX, 0)
	y := b.length(el, "y", axisY, 0)
	tf = tf.Multiply(Translate(x, y))
	if v, ok := el.attr("viewBox"); ok {
		nums, err := parseNumberList(v)
		if err == nil && len(nums) == 4 && nums[2] > 0 && nums[3] > 0 {
			w := b.length(el, "width", axisX, b.viewport.Width)
			h := b.length(el, "height", axisY, b.viewport.Height)
			s := min(w/nums[2], h/nums[3])
			dx := (w - nums[2]*s) / 2
			dy := (h - nums[3]*s) / 2
			tf = tf.Multiply(Translate(dx, dy)).Multiply(Scale(s, s)).Multiply(Translate(-nums[0], -nums[1]))
		}
	}
	g := &Group{ID: id, Transform: tf}
	b.children(g, el, scaleOpacity(st))
	return nonEmpty(g)
}

func (b *builder) use(el *element, id string, tf Transform, st style) Node {
	href, _ := el.attr("href")
	ref, ok := b.ids[strings.TrimPrefix(strings.TrimSpace(href), "#")]
	if !ok || len(b.using) >= maxUseDepth {
		return nil
	}
	for _, u := range b.using {
		if u == ref {
			return nil
		}
	}
	b.using = append(b.using, ref)
	defer func() { b.using = b.using[:len(b.using)-1] }()

	x := b.length(el, "x", axisX, 0)
	y := b.length(el, "y", axisY, 0)
	g := &Group{ID: id, Transform: tf.Multiply(Translate(x, y))}
	child := scaleOpacity(st).inherit()
	if ref.name == "symbol" {
		b.children(g, ref, child)
	} else if n := b.node(ref, child); n != nil {
		g.Children = append(g.Children, n)
	}
	return nonEmpty(g)
}

// length returns a length attribute, or def when missing or invalid.
func (b *builder) length(el *element, name string, ax axis, def float64) float64 {
	v, ok := el.attr(name)
	if !ok {
		return def
	}
	f, err := parseLength(v, b.viewport, ax)
	if err != nil {
		return def
	}
	return f
}

// shape returns the segments of a basic shape or path element.
func (b *builder) shape(el *element) []Segment {
	switch el.name {
	case "path":
		d, _ := el.attr("d")
		// Per SVG error handling, render the path up to the first error.
		segs, _ := parsePathData(d)
		return segs
	case "rect":
		w := b.length(el, "width", axisX, 0)
		h := b.length(el, "height", axisY, 0)
		if !(w > 0) || !(h > 0) {
			return nil
		}
		rx := b.length(el, "rx", axisX, -1)
		ry := b.length(el, "ry", axisY, -1)
		switch {
		case rx < 0 && ry < 0:
			rx, ry = 0, 0
		case rx < 0:
			rx = ry
		case ry < 0:
			ry = rx
		}
		return rectSegments(b.length(el, "x", axisX, 0), b.length(el, "y", axisY, 0), w, h, rx, ry)
	case "circle":
		r := b.length(el, "r", axisDiag, 0)
		if !(r > 0) {
			return nil
		}
		return ellipseSegments(b.length(el, "cx", axisX, 0), b.length(el, "cy", axisY, 0), r, r)
	case "ellipse":
		rx := b.length(el, "rx", axisX, 0)
		ry := b.length(el, "ry", axisY, 0)
		if !(rx > 0) || !(ry > 0) {
			return nil
		}
		return ellipseSegments(b.length(el, "cx", axisX, 0), b.length(el, "cy", axisY, 0), rx, ry)
	case "line":
		return []Segment{
			{Kind: MoveTo, P: Point{b.length(el, "x1", axisX, 0), b.length(el, "y1", axisY, 0)}},
			{Kind: LineTo, P: Point{b.length(el, "x2", axisX, 0), b.length(el, "y2", axisY, 0)}},
		}
	case "polyline", "polygon":
		v, _ := el.attr("points")
		// An odd trailing coordinate or a parse error truncates the list.
		pts, _ := parsePoints(v)
		return polySegments(pts, el.name == "polygon")
	}
	return nil
}

// parsePoints parses a points attribute up to the first error.
func parsePoints(s string) ([]float64, error) {
	bs := skipSeparators([]byte(s))
	var out []float64
	for len(bs) > 0 {
		f, rest, err := parseNumber(bs)
		if err != nil {
			return out[:len(out)&^1], err
		}
		out = append(out, f)
		bs = skipSeparators(rest)
	}
	return out[:len(out)&^1], nil
}

func (b *builder) fill(st style, segs []Segment) *Fill {
	paint, alpha, ok := b.paint(st.fill, st, segs)
	if !ok {
		return nil
	}
	return &Fill{Paint: paint, Opacity: st.fillOpacity * st.groupOpacity * st.opacity * alpha, Rule: st.fillRule}
}

func (b *builder) stroke(st style, segs []Segment) *Stroke {
	width, err := parseLength(st.strokeWidth, b.viewport, axisDiag)
	if err != nil || !(width > 0) {
		return nil
	}
	paint, alpha, ok := b.paint(st.stroke, st, segs)
	if !ok {
		return nil
	}
	return &Stroke{
		Paint:      paint,
		Opacity:    st.strokeOpacity * st.groupOpacity * st.opacity * alpha,
		Width:      width,
		Cap:        st.lineCap,
		Join:       st.lineJoin,
		MiterLimit: st.miterLimit,
	}
}

// paint resolves a paint value. The alpha result carries the
// color alpha of rgba() and currentColor values.
func (b *builder) paint(spec paintSpec, st style, segs []Segment) (Paint, float64, bool) {
	switch {
	case spec.none:
		return nil, 0, false
	case spec.currentColor:
		return st.color, st.colorAlpha, true
	case spec.ref != "":
		if el, ok := b.ids[spec.ref]; ok {
			if p, alpha, ok := b.gradient(el, segs); ok {
				return p, alpha, p != nil
			}
		}
		if spec.fallback != nil {
			return b.paint(*spec.fallback, st, segs)
		}
		return nil, 0, false
	}
	return spec.color, spec.alpha, true
}
