package svg

import "strings"

// gradientAttrs are the attributes a gradient may inherit through href.
var gradientAttrs = []string{
	"x1", "y1", "x2", "y2", "cx", "cy", "r", "fx", "fy",
	"gradientUnits", "gradientTransform", "spreadMethod",
}

// gradientChain follows href links from el and returns the merged
// attributes (nearest wins) and the first stop list found.
func (b *builder) gradientChain(el *element) (map[string]string, []*element) {
	merged := make(map[string]string)
	var stops []*element
	seen := map[*element]bool{}
	for cur := el; cur != nil && !seen[cur]; {
		seen[cur] = true
		for _, name := range gradientAttrs {
			if _, ok := merged[name]; ok {
				continue
			}
			if v, ok := cur.attr(name); ok {
				merged[name] = v
			}
		}
		if stops == nil {
			for _, c := range cur.children {
				if c.name == "stop" {
					stops = append(stops, c)
				}
			}
		}
		href, ok := cur.attr("href")
		if !ok {
			break
		}
		next, ok := b.ids[strings.TrimPrefix(strings.TrimSpace(href), "#")]
		if !ok || (next.name != "linearGradient" && next.name != "radialGradient") {
			break
		}
		cur = next
	}
	return merged, stops
}

func parseStops(els []*element) []Stop {
	stops := make([]Stop, 0, len(els))
	prev := 0.0
	for _, el := range els {
		stop := Stop{Opacity: 1}
		if v, ok := el.attr("offset"); ok {
			if f, err := parseFraction(v); err == nil {
				stop.Offset = f
			}
		}
		// Offsets never decrease.
		stop.Offset = max(stop.Offset, prev)
		prev = stop.Offset

		props := map[string]string{}
		for _, a := range el.attrs {
			props[a.name] = a.value
		}
		if decl, ok := el.attr("style"); ok {
			for _, d := range strings.Split(decl, ";") {
				if name, value, ok := strings.Cut(d, ":"); ok {
					props[strings.TrimSpace(name)] = strings.TrimSpace(value)
				}
			}
		}
		alpha := 1.0
		if v, ok := props["stop-color"]; ok {
			if c, a, err := parseColor(v); err == nil {
				stop.Color, alpha = c, a
			}
		}
		if v, ok := props["stop-opacity"]; ok {
			if f, err := parseFraction(v); err == nil {
				stop.Opacity = f
			}
		}
		stop.Opacity *= alpha
		stops = append(stops, stop)
	}
	return stops
}

// gradient resolves a paint server reference. ok is false when el is not a
// gradient. A nil Paint with ok set means the paint renders as none.
func (b *builder) gradient(el *element, segs []Segment) (Paint, float64, bool) {
	if el.name != "linearGradient" && el.name != "radialGradient" {
		return nil, 0, false
	}
	attrs, stopEls := b.gradientChain(el)
	stops := parseStops(stopEls)
	switch len(stops) {
	case 0:
		return nil, 0, true
	case 1:
		return stops[0].Color, stops[0].Opacity, true
	}

	objectBox := attrs["gradientUnits"] != "userSpaceOnUse"
	tf := Identity()
	if v, ok := attrs["gradientTransform"]; ok {
		if t, err := parseTransform(v); err == nil {
			tf = t
		}
	}
	if objectBox {
		bbox := segmentsBounds(segs)
		if bbox.Empty() {
			return nil, 0, true
		}
		tf = Translate(bbox.X, bbox.Y).Multiply(Scale(bbox.Width, bbox.Height)).Multiply(tf)
	}

	coord := func(name string, ax axis, def string) float64 {
		v, ok := attrs[name]
		if !ok {
			v = def
		}
		if objectBox {
			f, rest, err := parseNumber([]byte(strings.TrimSpace(v)))
			if err != nil {
				return 0
			}
			if strings.TrimSpace(string(rest)) == "%" {
				f /= 100
			}
			return f
		}
		f, err := parseLength(v, b.viewport, ax)
		if err != nil {
			return 0
		}
		return f
	}

	spread := SpreadPad
	switch attrs["spreadMethod"] {
	case "reflect":
		spread = SpreadReflect
	case "repeat":
		spread = SpreadRepeat
	}
	id, _ := el.attr("id")

	if el.name == "linearGradient" {
		return &LinearGradient{
			ID:        id,
			X1:        coord("x1", axisX, "0%"),
			Y1:        coord("y1", axisY, "0%"),
			X2:        coord("x2", axisX, "100%"),
			Y2:        coord("y2", axisY, "0%"),
			Transform: tf,
			Spread:    spread,
			Stops:     stops,
		}, 1, true
	}

	cx := coord("cx", axisX, "50%")
	cy := coord("cy", axisY, "50%")
	fx, fy := cx, cy
	if _, ok := attrs["fx"]; ok {
		fx = coord("fx", axisX, "50%")
	}
	if _, ok := attrs["fy"]; ok {
		fy = coord("fy", axisY, "50%")
	}
	return &RadialGradient{
		ID:        id,
		CX:        cx,
		CY:        cy,
		R:         coord("r", axisDiag, "50%"),
		FX:        fx,
		FY:        fy,
		Transform: tf,
		Spread:    spread,
		Stops:     stops,
	}, 1, true
}
