// Package svgmesh renders SVG icons into triangle meshes for immediate-mode
// user interfaces.
//
// # Overview
//
// An [Icon] is parsed once from SVG source and never changes afterwards. A
// [Widget] describes one render request against an icon: tessellation
// tolerance, how the icon fits its frame, color overrides and an optional
// background. The widget tessellates the icon into a [Mesh] of colored
// vertices and 32-bit triangle indices and hands it to the host UI's
// [Painter]. No GPU calls are made; [Mesh.VertexBufferLayout] describes the
// buffers for hosts that upload them.
//
// # Quick Start
//
//	icon, err := svgmesh.LoadIcon(data)
//	if err != nil {
//	    return err
//	}
//
//	// Inside the UI frame:
//	resp := svgmesh.NewWidget(icon).
//	    WithFitMode(svgmesh.FitContain(svgmesh.Margin{})).
//	    WithColor(svgmesh.RGB(0x33, 0x66, 0x99)).
//	    ShowSized(ui, svgmesh.Vec2{X: 24, Y: 24})
//
// # Caching
//
// [IconCache] shares parsed icons by content or by buffer identity and
// parses each source at most once, even under concurrent first access.
// [MeshCache] keeps tessellated meshes between frames; call
// [MeshCache.BeginFrame] once per frame to drop meshes that went unused.
//
// # Supported SVG
//
// Paths and basic shapes with solid or linear gradient fills and strokes,
// groups, nested svg elements, use, and presentation attributes including
// the style attribute. Radial gradients are drawn opaque black. Text and
// embedded images are skipped.
//
// # Logging
//
// The package is silent by default. See [SetLogger].
package svgmesh
