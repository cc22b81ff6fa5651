package svg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, doc string) *Tree {
	t.Helper()
	tree, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.NotNil(t, tree)
	return tree
}

func firstPath(t *testing.T, g *Group) *Path {
	t.Helper()
	for _, n := range g.Children {
		switch n := n.(type) {
		case *Path:
			return n
		case *Group:
			if p := firstPath(t, n); p != nil {
				return p
			}
		}
	}
	return nil
}

func TestParse_ViewBoxAndSize(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		vb     Rect
		width  float64
		height float64
	}{
		{
			name:  "viewBox only",
			doc:   `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 32 32"/>`,
			vb:    Rect{0, 0, 32, 32},
			width: 32, height: 32,
		},
		{
			name:  "viewBox with size",
			doc:   `<svg viewBox="-4 -4 24 24" width="48" height="48px"/>`,
			vb:    Rect{-4, -4, 24, 24},
			width: 48, height: 48,
		},
		{
			name:  "size only",
			doc:   `<svg width="1in" height="72pt"/>`,
			vb:    Rect{0, 0, 96, 96},
			width: 96, height: 96,
		},
		{
			name:  "percent size falls back to viewBox",
			doc:   `<svg width="100%" height="100%" viewBox="0,0,10,20"/>`,
			vb:    Rect{0, 0, 10, 20},
			width: 10, height: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := mustParse(t, tt.doc)
			assert.Equal(t, tt.vb, tree.ViewBox)
			assert.InDelta(t, tt.width, tree.Width, 1e-9)
			assert.InDelta(t, tt.height, tree.Height, 1e-9)
			assert.Empty(t, tree.Root.Children)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", ``, ErrInvalidDocument},
		{"not xml", `this is not svg`, ErrInvalidDocument},
		{"unclosed", `<svg viewBox="0 0 1 1"><g>`, ErrInvalidDocument},
		{"wrong root", `<html viewBox="0 0 1 1"/>`, ErrInvalidDocument},
		{"no size", `<svg/>`, ErrInvalidSize},
		{"zero viewBox", `<svg viewBox="0 0 0 10"/>`, ErrInvalidSize},
		{"short viewBox", `<svg viewBox="0 0 10"/>`, ErrInvalidSize},
		{"negative width", `<svg width="-5" height="5"/>`, ErrInvalidSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := Parse([]byte(tt.doc))
			assert.Nil(t, tree)
			assert.True(t, errors.Is(err, tt.want), "error = %v, want %v", err, tt.want)
		})
	}
}

func TestParse_Shapes(t *testing.T) {
	doc := `<svg viewBox="0 0 100 100">
		<rect x="1" y="2" width="10" height="20"/>
		<rect width="10" height="10" rx="2"/>
		<circle cx="50" cy="50" r="10"/>
		<ellipse cx="50" cy="50" rx="10" ry="5"/>
		<line x1="0" y1="0" x2="10" y2="10" stroke="black"/>
		<polyline points="0,0 10,0 10,10 5" fill="none" stroke="red"/>
		<polygon points="0 0 10 0 10 10"/>
		<path d="M0 0 L10 0 L10 10 Z"/>
		<rect width="0" height="10"/>
		<circle r="0"/>
		<path d=""/>
	</svg>`
	tree := mustParse(t, doc)
	require.Len(t, tree.Root.Children, 8)

	kinds := func(p *Path) []SegmentKind {
		out := make([]SegmentKind, len(p.Segments))
		for i, s := range p.Segments {
			out[i] = s.Kind
		}
		return out
	}

	rect := tree.Root.Children[0].(*Path)
	assert.Equal(t, []SegmentKind{MoveTo, LineTo, LineTo, LineTo, Close}, kinds(rect))
	assert.Equal(t, Point{11, 22}, rect.Segments[2].P)

	rounded := tree.Root.Children[1].(*Path)
	assert.Len(t, rounded.Segments, 10)
	assert.Equal(t, Point{2, 0}, rounded.Segments[0].P)

	circle := tree.Root.Children[2].(*Path)
	assert.Equal(t, []SegmentKind{MoveTo, CubicTo, CubicTo, CubicTo, CubicTo, Close}, kinds(circle))
	bounds := segmentsBounds(circle.Segments)
	assert.InDelta(t, 40, bounds.X, 1e-9)
	assert.InDelta(t, 40, bounds.Y, 1e-9)
	assert.InDelta(t, 20, bounds.Width, 1e-9)
	assert.InDelta(t, 20, bounds.Height, 1e-9)

	line := tree.Root.Children[4].(*Path)
	assert.Equal(t, []SegmentKind{MoveTo, LineTo}, kinds(line))
	require.NotNil(t, line.Stroke)

	poly := tree.Root.Children[5].(*Path)
	assert.Equal(t, []SegmentKind{MoveTo, LineTo, LineTo}, kinds(poly), "odd coordinate dropped")
	assert.Nil(t, poly.Fill)

	polygon := tree.Root.Children[6].(*Path)
	assert.Equal(t, []SegmentKind{MoveTo, LineTo, LineTo, Close}, kinds(polygon))
}

func TestParse_DefaultPaint(t *testing.T) {
	tree := mustParse(t, `<svg viewBox="0 0 10 10"><path d="M0 0H10V10Z"/></svg>`)
	p := firstPath(t, tree.Root)
	require.NotNil(t, p)
	require.NotNil(t, p.Fill)
	assert.Equal(t, Color{0, 0, 0}, p.Fill.Paint)
	assert.Equal(t, 1.0, p.Fill.Opacity)
	assert.Equal(t, NonZero, p.Fill.Rule)
	assert.Nil(t, p.Stroke)
}

func TestParse_StyleInheritance(t *testing.T) {
	doc := `<svg viewBox="0 0 10 10">
		<g fill="red" stroke="#00f" stroke-width="2" opacity="0.5" style="stroke-linecap:round; fill-rule: evenodd">
			<g color="lime">
				<path d="M0 0H10V10Z" fill-opacity="0.5" stroke="currentColor" style="stroke-linejoin:bevel"/>
			</g>
		</g>
	</svg>`
	tree := mustParse(t, doc)
	p := firstPath(t, tree.Root)
	require.NotNil(t, p)

	require.NotNil(t, p.Fill)
	assert.Equal(t, Color{255, 0, 0}, p.Fill.Paint)
	assert.InDelta(t, 0.25, p.Fill.Opacity, 1e-9)
	assert.Equal(t, EvenOdd, p.Fill.Rule)

	require.NotNil(t, p.Stroke)
	assert.Equal(t, Color{0, 255, 0}, p.Stroke.Paint)
	assert.InDelta(t, 0.5, p.Stroke.Opacity, 1e-9)
	assert.Equal(t, 2.0, p.Stroke.Width)
	assert.Equal(t, CapRound, p.Stroke.Cap)
	assert.Equal(t, JoinBevel, p.Stroke.Join)
	assert.Equal(t, 4.0, p.Stroke.MiterLimit)
}

func TestParse_StyleAttributeWins(t *testing.T) {
	tree := mustParse(t, `<svg viewBox="0 0 10 10"><path d="M0 0H10V10Z" fill="red" style="fill: blue"/></svg>`)
	p := firstPath(t, tree.Root)
	require.NotNil(t, p)
	assert.Equal(t, Color{0, 0, 255}, p.Fill.Paint)
}

func TestParse_Hidden(t *testing.T) {
	doc := `<svg viewBox="0 0 10 10">
		<path d="M0 0H10V10Z" display="none"/>
		<g style="display:none"><path d="M0 0H10V10Z"/></g>
		<path d="M0 0H10V10Z" visibility="hidden"/>
		<path d="M0 0H10V10Z" fill="none"/>
		<defs><path id="p" d="M0 0H10V10Z"/></defs>
	</svg>`
	tree := mustParse(t, doc)
	assert.Empty(t, tree.Root.Children)
}

func TestParse_Transforms(t *testing.T) {
	doc := `<svg viewBox="0 0 10 10">
		<g transform="translate(5, 6)">
			<path transform="scale(2)" d="M0 0H1V1Z"/>
		</g>
	</svg>`
	tree := mustParse(t, doc)
	g := tree.Root.Children[0].(*Group)
	assert.Equal(t, Translate(5, 6), g.Transform)
	p := g.Children[0].(*Path)
	assert.Equal(t, Scale(2, 2), p.Transform)
}

func TestParse_Use(t *testing.T) {
	doc := `<svg viewBox="0 0 10 10" xmlns:xlink="http://www.w3.org/1999/xlink">
		<defs>
			<path id="box" d="M0 0H1V1Z"/>
			<symbol id="sym"><path d="M0 0H2V2Z"/></symbol>
		</defs>
		<use xlink:href="#box" x="3" y="4" fill="green"/>
		<use href="#sym"/>
		<use href="#missing"/>
		<g id="loop"><use href="#loop"/></g>
	</svg>`
	tree := mustParse(t, doc)
	require.Len(t, tree.Root.Children, 2)

	u := tree.Root.Children[0].(*Group)
	assert.Equal(t, Translate(3, 4), u.Transform)
	p := u.Children[0].(*Path)
	assert.Equal(t, Color{0, 128, 0}, p.Fill.Paint)

	sym := tree.Root.Children[1].(*Group)
	require.Len(t, sym.Children, 1)
}

func TestParse_LinearGradient(t *testing.T) {
	doc := `<svg viewBox="0 0 32 32">
		<linearGradient id="base" x2="1">
			<stop offset="0" stop-color="black"/>
			<stop offset="50%" style="stop-color:#fff; stop-opacity:0.5"/>
			<stop offset="0.25" stop-color="red"/>
		</linearGradient>
		<linearGradient id="user" href="#base" gradientUnits="userSpaceOnUse" x1="0" y1="0" x2="32" y2="0" spreadMethod="reflect"/>
		<rect x="8" y="8" width="16" height="8" fill="url(#base)"/>
		<rect width="32" height="32" fill="url(#user)"/>
	</svg>`
	tree := mustParse(t, doc)
	require.Len(t, tree.Root.Children, 2)

	obb, ok := tree.Root.Children[0].(*Path).Fill.Paint.(*LinearGradient)
	require.True(t, ok)
	assert.Equal(t, Translate(8, 8).Multiply(Scale(16, 8)), obb.Transform)
	assert.Equal(t, 0.0, obb.X1)
	assert.Equal(t, 1.0, obb.X2)
	require.Len(t, obb.Stops, 3)
	assert.Equal(t, Color{255, 255, 255}, obb.Stops[1].Color)
	assert.Equal(t, 0.5, obb.Stops[1].Opacity)
	assert.Equal(t, 0.5, obb.Stops[2].Offset, "offsets never decrease")

	user, ok := tree.Root.Children[1].(*Path).Fill.Paint.(*LinearGradient)
	require.True(t, ok)
	assert.True(t, user.Transform.IsIdentity())
	assert.Equal(t, 32.0, user.X2)
	assert.Equal(t, SpreadReflect, user.Spread)
	assert.Len(t, user.Stops, 3, "stops inherited through href")
}

func TestParse_GradientFallbacks(t *testing.T) {
	doc := `<svg viewBox="0 0 10 10">
		<linearGradient id="empty"/>
		<linearGradient id="single"><stop offset="0" stop-color="blue" stop-opacity="0.5"/></linearGradient>
		<radialGradient id="radial"><stop offset="0"/><stop offset="1" stop-color="white"/></radialGradient>
		<path d="M0 0H10V10Z" fill="url(#empty)"/>
		<path d="M0 0H10V10Z" fill="url(#single)"/>
		<path d="M0 0H10V10Z" fill="url(#radial)"/>
		<path d="M0 0H10V10Z" fill="url(#nope) red"/>
		<path d="M0 0H10V10Z" fill="url(#nope)"/>
	</svg>`
	tree := mustParse(t, doc)
	require.Len(t, tree.Root.Children, 3)

	single := tree.Root.Children[0].(*Path).Fill
	assert.Equal(t, Color{0, 0, 255}, single.Paint)
	assert.Equal(t, 0.5, single.Opacity)

	_, ok := tree.Root.Children[1].(*Path).Fill.Paint.(*RadialGradient)
	assert.True(t, ok)

	assert.Equal(t, Color{255, 0, 0}, tree.Root.Children[2].(*Path).Fill.Paint)
}

func TestParse_ImageAndText(t *testing.T) {
	doc := `<svg viewBox="0 0 10 10">
		<image href="data:image/png;base64,AAAA" x="1" y="2" width="3" height="4"/>
		<text x="0" y="5">Hello <tspan>world</tspan></text>
	</svg>`
	tree := mustParse(t, doc)
	require.Len(t, tree.Root.Children, 2)

	img := tree.Root.Children[0].(*Image)
	assert.Equal(t, Rect{1, 2, 3, 4}, img.Bounds)

	txt := tree.Root.Children[1].(*Text)
	assert.Equal(t, "Hello world", txt.Content)
}

func TestParse_Encodings(t *testing.T) {
	t.Run("latin1 declaration", func(t *testing.T) {
		doc := []byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><svg viewBox=\"0 0 1 1\"><text>caf\xe9</text></svg>")
		tree, err := Parse(doc)
		require.NoError(t, err)
		assert.Equal(t, "café", tree.Root.Children[0].(*Text).Content)
	})

	t.Run("utf-8 bom", func(t *testing.T) {
		doc := append([]byte{0xEF, 0xBB, 0xBF}, `<svg viewBox="0 0 1 1"/>`...)
		_, err := Parse(doc)
		require.NoError(t, err)
	})

	t.Run("utf-16le bom", func(t *testing.T) {
		src := `<svg viewBox="0 0 4 4"/>`
		doc := []byte{0xFF, 0xFE}
		for _, r := range src {
			doc = append(doc, byte(r), 0)
		}
		tree, err := Parse(doc)
		require.NoError(t, err)
		assert.Equal(t, Rect{0, 0, 4, 4}, tree.ViewBox)
	})
}
