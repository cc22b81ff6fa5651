package svg

import "strings"

// style holds the inherited presentation properties of an element.
type style struct {
	fill          paintSpec
	fillOpacity   float64
	fillRule      FillRule
	stroke        paintSpec
	strokeOpacity float64
	strokeWidth   string
	lineCap       LineCap
	lineJoin      LineJoin
	miterLimit    float64
	color         Color
	colorAlpha    float64
	hidden        bool
	// groupOpacity is the product of the opacities of enclosing groups.
	groupOpacity float64

	// Not inherited: reset for every element by inherit.
	opacity float64
	display bool
}

func defaultStyle() style {
	return style{
		fill:          paintSpec{alpha: 1},
		fillOpacity:   1,
		stroke:        paintSpec{none: true},
		strokeOpacity: 1,
		strokeWidth:   "1",
		miterLimit:    4,
		colorAlpha:    1,
		groupOpacity:  1,
		opacity:       1,
		display:       true,
	}
}

// inherit returns the style of a child element before its own attributes
// are applied.
func (s style) inherit() style {
	s.opacity = 1
	s.display = true
	return s
}

// apply resolves the presentation attributes and then the style attribute
// of el onto s. Invalid values are ignored, as if not specified.
func (s *style) apply(el *element) {
	for _, a := range el.attrs {
		s.set(a.name, a.value)
	}
	if decl, ok := el.attr("style"); ok {
		for _, d := range strings.Split(decl, ";") {
			name, value, ok := strings.Cut(d, ":")
			if !ok {
				continue
			}
			value = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), "!important"))
			s.set(strings.TrimSpace(name), value)
		}
	}
}

func (s *style) set(name, value string) {
	value = strings.TrimSpace(value)
	if value == "inherit" {
		return
	}
	switch name {
	case "fill":
		if p, err := parsePaint(value); err == nil {
			s.fill = p
		}
	case "fill-opacity":
		if f, err := parseFraction(value); err == nil {
			s.fillOpacity = f
		}
	case "fill-rule":
		switch value {
		case "nonzero":
			s.fillRule = NonZero
		case "evenodd":
			s.fillRule = EvenOdd
		}
	case "stroke":
		if p, err := parsePaint(value); err == nil {
			s.stroke = p
		}
	case "stroke-opacity":
		if f, err := parseFraction(value); err == nil {
			s.strokeOpacity = f
		}
	case "stroke-width":
		s.strokeWidth = value
	case "stroke-linecap":
		switch value {
		case "butt":
			s.lineCap = CapButt
		case "round":
			s.lineCap = CapRound
		case "square":
			s.lineCap = CapSquare
		}
	case "stroke-linejoin":
		switch value {
		case "miter":
			s.lineJoin = JoinMiter
		case "miter-clip":
			s.lineJoin = JoinMiterClip
		case "round":
			s.lineJoin = JoinRound
		case "bevel", "arcs":
			s.lineJoin = JoinBevel
		}
	case "stroke-miterlimit":
		if f, _, err := parseNumber([]byte(value)); err == nil && f >= 1 {
			s.miterLimit = f
		}
	case "color":
		if c, a, err := parseColor(value); err == nil {
			s.color, s.colorAlpha = c, a
		}
	case "opacity":
		if f, err := parseFraction(value); err == nil {
			s.opacity = f
		}
	case "display":
		s.display = value != "none"
	case "visibility":
		s.hidden = value == "hidden" || value == "collapse"
	}
}
