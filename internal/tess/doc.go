// Package tess converts vector path outlines into triangle lists.
//
// Input geometry arrives as a lazy stream of path events (Begin, Line,
// Cubic, End). Curves are flattened within a tolerance, and the resulting
// polygons are decomposed into trapezoids by a horizontal slab sweep:
//
//   - every vertex y and every edge crossing y becomes a slab boundary
//   - edges spanning a slab are ordered by their x at mid-slab
//   - the fill rule (non-zero or even-odd) selects the covered spans
//   - each covered span is emitted as up to two triangles
//
// Strokes are first expanded into closed outlines (forward offset, reversed
// backward offset, caps and joins) and then filled with the non-zero rule.
//
// All emitted triangles share one orientation and zero-area triangles are
// never produced.
package tess
