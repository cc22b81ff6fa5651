package svg

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/tdewolff/parse/v2/strconv"
)

// CSS pixels per unit.
const (
	pxPerIn = 96.0
	pxPerCm = pxPerIn / 2.54
	pxPerMm = pxPerCm / 10
	pxPerPt = pxPerIn / 72
	pxPerPc = pxPerIn / 6

	defaultFontSize = 16.0
)

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// skipSeparators skips white space and at most one comma.
func skipSeparators(b []byte) []byte {
	for len(b) > 0 && isSpace(b[0]) {
		b = b[1:]
	}
	if len(b) > 0 && b[0] == ',' {
		b = b[1:]
		for len(b) > 0 && isSpace(b[0]) {
			b = b[1:]
		}
	}
	return b
}

// parseNumber reads one number from the start of b and returns the rest.
func parseNumber(b []byte) (float64, []byte, error) {
	f, n := strconv.ParseFloat(b)
	if n == 0 {
		return 0, b, errors.Wrapf(ErrInvalidNumber, "at %q", truncate(b))
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, b, errors.Wrapf(ErrInvalidNumber, "non-finite %q", b[:n])
	}
	return f, b[n:], nil
}

// parseNumberList parses a white space and/or comma separated number list.
func parseNumberList(s string) ([]float64, error) {
	b := skipSeparators([]byte(s))
	var out []float64
	for len(b) > 0 {
		f, rest, err := parseNumber(b)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
		b = skipSeparators(rest)
	}
	return out, nil
}

// axis selects the reference length for percentages.
type axis uint8

const (
	axisX axis = iota
	axisY
	axisDiag
)

// parseLength parses a length with an optional unit. Percentages resolve
// against ref for the given axis.
func parseLength(s string, ref Rect, ax axis) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.Wrap(ErrInvalidNumber, "empty length")
	}
	f, rest, err := parseNumber([]byte(s))
	if err != nil {
		return 0, err
	}
	switch unit := strings.TrimSpace(string(rest)); unit {
	case "", "px":
		return f, nil
	case "in":
		return f * pxPerIn, nil
	case "cm":
		return f * pxPerCm, nil
	case "mm":
		return f * pxPerMm, nil
	case "pt":
		return f * pxPerPt, nil
	case "pc":
		return f * pxPerPc, nil
	case "em":
		return f * defaultFontSize, nil
	case "ex":
		return f * defaultFontSize / 2, nil
	case "%":
		switch ax {
		case axisX:
			return f / 100 * ref.Width, nil
		case axisY:
			return f / 100 * ref.Height, nil
		default:
			return f / 100 * math.Hypot(ref.Width, ref.Height) / math.Sqrt2, nil
		}
	default:
		return 0, errors.Wrapf(ErrInvalidNumber, "unknown unit %q", unit)
	}
}

// parseFraction parses a number or percentage into a fraction, as used by
// gradient offsets and opacities. The result is clamped to [0, 1].
func parseFraction(s string) (float64, error) {
	s = strings.TrimSpace(s)
	f, rest, err := parseNumber([]byte(s))
	if err != nil {
		return 0, err
	}
	switch strings.TrimSpace(string(rest)) {
	case "":
	case "%":
		f /= 100
	default:
		return 0, errors.Wrapf(ErrInvalidNumber, "fraction %q", s)
	}
	return min(max(f, 0), 1), nil
}

func truncate(b []byte) string {
	const n = 16
	if len(b) > n {
		return string(b[:n]) + "..."
	}
	return string(b)
}
