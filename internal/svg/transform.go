package svg

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Transform is a 2D affine transformation in row-major order:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// The SVG matrix(a b c d e f) corresponds to A=a, B=c, C=e, D=b, E=d, F=f.
type Transform struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{A: 1, E: 1}
}

// Translate returns a translation.
func Translate(x, y float64) Transform {
	return Transform{A: 1, C: x, E: 1, F: y}
}

// Scale returns a scaling transform.
func Scale(x, y float64) Transform {
	return Transform{A: x, E: y}
}

// Rotate returns a rotation by angle radians.
func Rotate(angle float64) Transform {
	sin, cos := math.Sincos(angle)
	return Transform{A: cos, B: -sin, D: sin, E: cos}
}

// Multiply returns t * other: other is applied first.
func (t Transform) Multiply(other Transform) Transform {
	return Transform{
		A: t.A*other.A + t.B*other.D,
		B: t.A*other.B + t.B*other.E,
		C: t.A*other.C + t.B*other.F + t.C,
		D: t.D*other.A + t.E*other.D,
		E: t.D*other.B + t.E*other.E,
		F: t.D*other.C + t.E*other.F + t.F,
	}
}

// Apply transforms a point.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: t.A*p.X + t.B*p.Y + t.C,
		Y: t.D*p.X + t.E*p.Y + t.F,
	}
}

// IsIdentity reports whether t is the identity.
func (t Transform) IsIdentity() bool {
	return t == Identity()
}

// parseTransform parses a transform list such as
// "translate(10 20) rotate(45, 5, 5) scale(2)".
func parseTransform(s string) (Transform, error) {
	t := Identity()
	for _, item := range strings.Split(s, ")") {
		item = strings.TrimSpace(strings.TrimLeft(item, " \t\r\n,"))
		if item == "" {
			continue
		}
		name, args, ok := strings.Cut(item, "(")
		if !ok {
			return Identity(), errors.Wrapf(ErrInvalidAttribute, "transform %q", s)
		}
		nums, err := parseNumberList(args)
		if err != nil {
			return Identity(), errors.Wrapf(err, "transform %q", s)
		}
		m, err := transformFunc(strings.TrimSpace(name), nums)
		if err != nil {
			return Identity(), errors.Wrapf(err, "transform %q", s)
		}
		t = t.Multiply(m)
	}
	return t, nil
}

func transformFunc(name string, n []float64) (Transform, error) {
	switch name {
	case "matrix":
		if len(n) == 6 {
			return Transform{A: n[0], B: n[2], C: n[4], D: n[1], E: n[3], F: n[5]}, nil
		}
	case "translate":
		switch len(n) {
		case 1:
			return Translate(n[0], 0), nil
		case 2:
			return Translate(n[0], n[1]), nil
		}
	case "scale":
		switch len(n) {
		case 1:
			return Scale(n[0], n[0]), nil
		case 2:
			return Scale(n[0], n[1]), nil
		}
	case "rotate":
		switch len(n) {
		case 1:
			return Rotate(n[0] * math.Pi / 180), nil
		case 3:
			return Translate(n[1], n[2]).
				Multiply(Rotate(n[0] * math.Pi / 180)).
				Multiply(Translate(-n[1], -n[2])), nil
		}
	case "skewX":
		if len(n) == 1 {
			return Transform{A: 1, B: math.Tan(n[0] * math.Pi / 180), E: 1}, nil
		}
	case "skewY":
		if len(n) == 1 {
			return Transform{A: 1, D: math.Tan(n[0] * math.Pi / 180), E: 1}, nil
		}
	default:
		return Identity(), errors.Wrapf(ErrInvalidAttribute, "unknown transform function %q", name)
	}
	return Identity(), errors.Wrapf(ErrInvalidAttribute, "%s: wrong argument count %d", name, len(n))
}
