package svgmesh

// Widget is a request to draw an icon. It is a value: the With methods
// return modified copies and never change the receiver.
//
//	svgmesh.NewWidget(icon).
//	    WithFitMode(svgmesh.FitCover()).
//	    WithSense(svgmesh.SenseClick).
//	    ShowSized(ui, svgmesh.Vec2{X: 48, Y: 48})
type Widget struct {
	icon           *Icon
	tolerance      float32
	scaleTolerance bool
	fit            FitMode
	override       ColorOverride
	background     Background
	sense          Sense
	meshes         *MeshCache
	culling        bool
}

// NewWidget returns a request for icon with default settings: tolerance
// 1.0 scaled to the display size, FitContain without margin, source
// colors, no background, hover sensing.
func NewWidget(icon *Icon) Widget {
	return Widget{
		icon:           icon,
		tolerance:      1.0,
		scaleTolerance: true,
		fit:            FitContain(Margin{}),
		sense:          SenseHover,
	}
}

// WithTolerance sets the maximum distance between a curve and its
// flattened polygon.
func (w Widget) WithTolerance(tolerance float32) Widget {
	w.tolerance = tolerance
	return w
}

// WithScaleTolerance selects whether the tolerance is measured in display
// units (true) or in view box units (false).
func (w Widget) WithScaleTolerance(scale bool) Widget {
	w.scaleTolerance = scale
	return w
}

// WithFitMode sets how the icon is placed in its frame.
func (w Widget) WithFitMode(fit FitMode) Widget {
	w.fit = fit
	return w
}

// WithColorOverride sets the color override.
func (w Widget) WithColorOverride(o ColorOverride) Widget {
	w.override = o
	return w
}

// WithColor paints the whole icon with c.
func (w Widget) WithColor(c Color32) Widget {
	return w.WithColorOverride(OverrideSolid(c))
}

// WithColorFromStyle paints the whole icon with the host style's
// foreground color.
func (w Widget) WithColorFromStyle() Widget {
	return w.WithColorOverride(OverrideFromStyle())
}

// WithBackground sets the background drawn under the icon.
func (w Widget) WithBackground(b Background) Widget {
	w.background = b
	return w
}

// WithSense sets the interactions to sense.
func (w Widget) WithSense(s Sense) Widget {
	w.sense = s
	return w
}

// WithMeshCache reuses tessellations across frames through c. Nil
// tessellates on every call.
func (w Widget) WithMeshCache(c *MeshCache) Widget {
	w.meshes = c
	return w
}

// WithCulling skips tessellation when the icon lies outside the UI's clip
// rectangle.
func (w Widget) WithCulling(cull bool) Widget {
	w.culling = cull
	return w
}

// Show draws the icon in a frame of its natural size for the fit mode.
func (w Widget) Show(ui UI) Response {
	return w.ShowSized(ui, w.fit.naturalSize(w.icon.viewBox))
}

// ShowJustified draws the icon in a frame as tall as the available height,
// keeping the view box aspect ratio.
func (w Widget) ShowJustified(ui UI) Response {
	h := ui.AvailableHeight()
	return w.ShowSized(ui, Vec2{X: h * w.icon.viewBox.AspectRatio(), Y: h})
}

// ShowSized draws the icon in a frame of the given size.
func (w Widget) ShowSized(ui UI, size Vec2) Response {
	id, frame := ui.AllocateSpace(size)
	resp := ui.Interact(frame, id, w.sense)
	display, rect := w.fit.Resolve(w.icon.viewBox, frame)

	visuals := ui.Visuals(resp)
	painter := ui.Painter()
	w.background.draw(painter, frame, visuals)

	if w.culling && !ui.ClipRect().Intersects(rect) {
		Logger().Debug("svgmesh: icon culled", "icon", w.icon.key)
		return resp
	}

	mesh := w.meshFor(display, rect)
	w.override.apply(mesh, w.mapper(rect), w.icon.viewBox, visuals)
	painter.AddMesh(frame, mesh)
	return resp
}

// Tessellate returns the icon's mesh for the given frame with the source
// colors, going through the mesh cache when one is set. Color overrides
// and the background are not applied.
func (w Widget) Tessellate(frame Rect) *Mesh {
	return w.meshFor(w.fit.Resolve(w.icon.viewBox, frame))
}

// meshFor builds the mesh for a resolved display size and content rect.
func (w Widget) meshFor(size Vec2, rect Rect) *Mesh {
	scale := size.Div(w.icon.viewBox.Size())

	if w.meshes == nil {
		mesh := tessellate(w.icon, rect, scale, w.tolerance, w.scaleTolerance)
		Logger().Debug("svgmesh: tessellated",
			"icon", w.icon.key, "vertices", len(mesh.Vertices), "indices", len(mesh.Indices))
		return mesh
	}

	key := newMeshKey(w.icon, w.tolerance, w.scaleTolerance, w.fit, size)
	return w.meshes.mesh(key, rect.Min.Vec2(), func() *Mesh {
		origin := Rect{Max: Pos2(size)}
		mesh := tessellate(w.icon, origin, scale, w.tolerance, w.scaleTolerance)
		Logger().Debug("svgmesh: tessellated",
			"icon", w.icon.key, "vertices", len(mesh.Vertices), "indices", len(mesh.Indices))
		return mesh
	})
}

func (w Widget) mapper(rect Rect) mapper {
	size := rect.Size()
	return newMapper(w.icon.viewBox, rect, size.Div(w.icon.viewBox.Size()))
}
