package svg

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

// paintSpec is an unresolved paint value.
type paintSpec struct {
	none         bool
	currentColor bool
	color        Color
	// alpha carried by rgba() or the transparent keyword.
	alpha float64
	// ref is the element id of a url(#id) reference.
	ref string
	// fallback is used when ref cannot be resolved.
	fallback *paintSpec
}

// parsePaint parses a fill or stroke value.
func parsePaint(s string) (paintSpec, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "none":
		return paintSpec{none: true}, nil
	case "currentColor":
		return paintSpec{currentColor: true, alpha: 1}, nil
	}
	if rest, ok := strings.CutPrefix(s, "url("); ok {
		ref, tail, ok := strings.Cut(rest, ")")
		if !ok {
			return paintSpec{}, errors.Wrapf(ErrInvalidColor, "%q", s)
		}
		ref = strings.Trim(strings.TrimSpace(ref), `'"`)
		p := paintSpec{ref: strings.TrimPrefix(ref, "#"), alpha: 1}
		if tail = strings.TrimSpace(tail); tail != "" {
			fb, err := parsePaint(tail)
			if err != nil {
				return paintSpec{}, err
			}
			p.fallback = &fb
		}
		return p, nil
	}
	c, a, err := parseColor(s)
	if err != nil {
		return paintSpec{}, err
	}
	return paintSpec{color: c, alpha: a}, nil
}

// parseColor parses a CSS color: #rgb, #rrggbb, #rgba, #rrggbbaa, rgb(),
// rgba(), a color keyword or transparent. The second result is the alpha.
func parseColor(s string) (Color, float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, 0, errors.Wrap(ErrInvalidColor, "empty color")
	}
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		return parseHexColor(hex)
	}
	lower := strings.ToLower(s)
	if args, ok := strings.CutPrefix(lower, "rgba("); ok {
		return parseRGBFunc(args, s)
	}
	if args, ok := strings.CutPrefix(lower, "rgb("); ok {
		return parseRGBFunc(args, s)
	}
	if lower == "transparent" {
		return Color{}, 0, nil
	}
	if c, ok := colornames.Map[lower]; ok {
		return Color{R: c.R, G: c.G, B: c.B}, 1, nil
	}
	return Color{}, 0, errors.Wrapf(ErrInvalidColor, "%q", s)
}

func parseHexColor(hex string) (Color, float64, error) {
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, 0, errors.Wrapf(ErrInvalidColor, "#%s", hex)
	}
	expand := func(n uint64) uint8 { return uint8(n<<4 | n) }
	switch len(hex) {
	case 3:
		return Color{R: expand(v >> 8 & 0xf), G: expand(v >> 4 & 0xf), B: expand(v & 0xf)}, 1, nil
	case 4:
		return Color{R: expand(v >> 12 & 0xf), G: expand(v >> 8 & 0xf), B: expand(v >> 4 & 0xf)},
			float64(expand(v&0xf)) / 255, nil
	case 6:
		return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, 1, nil
	case 8:
		return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8)}, float64(uint8(v)) / 255, nil
	}
	return Color{}, 0, errors.Wrapf(ErrInvalidColor, "#%s", hex)
}

func parseRGBFunc(args, orig string) (Color, float64, error) {
	body, _, ok := strings.Cut(args, ")")
	if !ok {
		return Color{}, 0, errors.Wrapf(ErrInvalidColor, "%q", orig)
	}
	body = strings.ReplaceAll(body, "/", " ")
	fields := strings.FieldsFunc(body, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	if len(fields) != 3 && len(fields) != 4 {
		return Color{}, 0, errors.Wrapf(ErrInvalidColor, "%q", orig)
	}
	var ch [3]uint8
	for i := range 3 {
		f := strings.TrimSpace(fields[i])
		pct := strings.HasSuffix(f, "%")
		v, err := strconv.ParseFloat(strings.TrimSuffix(f, "%"), 64)
		if err != nil {
			return Color{}, 0, errors.Wrapf(ErrInvalidColor, "%q", orig)
		}
		if pct {
			v = v * 255 / 100
		}
		ch[i] = uint8(min(max(v, 0), 255) + 0.5)
	}
	alpha := 1.0
	if len(fields) == 4 {
		a, err := parseFraction(fields[3])
		if err != nil {
			return Color{}, 0, errors.Wrapf(ErrInvalidColor, "%q", orig)
		}
		alpha = a
	}
	return Color{R: ch[0], G: ch[1], B: ch[2]}, alpha, nil
}
