// Package svg parses the static subset of SVG 1.1 used by icons into a
// simplified scene tree.
//
// The tree contains groups, paths, images and text. Every drawable shape
// (rect, circle, ellipse, line, polyline, polygon, path) is converted into a
// Path whose segments are absolute MoveTo, LineTo, CubicTo and Close.
// Presentation attributes and the style attribute are resolved and
// inherited, use elements are instantiated, and gradient references are
// resolved into user space paints.
//
// Clipping, masking, filters, markers, patterns, animation and CSS style
// sheets are ignored.
package svg
