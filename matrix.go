package svgmesh

import (
	"math"

	"github.com/gogpu/svgmesh/internal/svg"
)

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
//
// Matrix shares its layout and composition with the transforms of parsed
// documents.
type Matrix svg.Transform

// Identity returns the identity transformation matrix.
func Identity() Matrix { return Matrix(svg.Identity()) }

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix { return Matrix(svg.Translate(x, y)) }

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix { return Matrix(svg.Scale(x, y)) }

// Multiply returns m * other. The result applies other first, so a child
// transform composes as parent.Multiply(local).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix(svg.Transform(m).Multiply(svg.Transform(other)))
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point(svg.Transform(m).Apply(svg.Point(p)))
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix) Invert() Matrix {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-10 {
		return Identity()
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}
}
