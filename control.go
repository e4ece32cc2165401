package uikit

// Control is the contract every widget implements. Geometry is stored
// in content-space; Draw adds the view offset supplied by the owning
// container (zero for top-level controls). Containers pre-translate
// mouse coordinates into the child's content-space before forwarding,
// and call SetWindow/SetViewOffset before focus-time operations so the
// child can reach the host.
type Control interface {
	// HandleEvent consumes one event. Returns true iff internal state
	// changed in a way that requires a redraw.
	HandleEvent(ev Event) bool

	// Draw renders the control at its content-space position shifted
	// by viewOffset.
	Draw(r Renderer, viewOffset PointF)

	// RecalculateLayout resolves the control's position and size
	// against the parent dimensions.
	RecalculateLayout(parentW, parentH float32)

	// Bounds returns the content-space rectangle of the control.
	Bounds() RectF

	// IsInside reports whether a content-space point hits the control.
	// Edges are half-open.
	IsInside(p PointF) bool

	// Focus gives the control keyboard focus. Text-bearing controls
	// additionally start the host's text-input session.
	Focus(win Window)

	// Unfocus removes keyboard focus.
	Unfocus(win Window)

	// Focused reports whether the control has keyboard focus.
	Focused() bool

	// SetWindow injects the host window before focus-time operations.
	SetWindow(win Window)

	// SetViewOffset records the container's current view offset so
	// screen-space rectangles (IME area) can be derived.
	SetViewOffset(offset PointF)

	// Update advances time-driven state (caret blink) by dt seconds.
	Update(dt float32)

	// IsAnimating reports whether the control needs Update ticks.
	IsAnimating() bool
}

// BaseControl carries the state common to all controls and supplies
// the default behavior. Embed it and override what differs.
type BaseControl struct {
	pos        PositionParams
	bounds     RectF
	focused    bool
	win        Window
	viewOffset PointF
}

// Position returns the control's position parameters.
func (b *BaseControl) Position() PositionParams { return b.pos }

// SetPosition replaces the position parameters. Call
// RecalculateLayout afterwards.
func (b *BaseControl) SetPosition(p PositionParams) { b.pos = p }

// Bounds returns the content-space rectangle of the control.
func (b *BaseControl) Bounds() RectF { return b.bounds }

// IsInside reports whether a content-space point hits the control.
func (b *BaseControl) IsInside(p PointF) bool { return b.bounds.Contains(p) }

// Focused reports whether the control has keyboard focus.
func (b *BaseControl) Focused() bool { return b.focused }

// Focus flips the focus flag. Controls running IME sessions override.
func (b *BaseControl) Focus(win Window) {
	if win != nil {
		b.win = win
	}
	b.focused = true
}

// Unfocus clears the focus flag.
func (b *BaseControl) Unfocus(win Window) {
	b.focused = false
}

// SetWindow caches the host window handle.
func (b *BaseControl) SetWindow(win Window) { b.win = win }

// Window returns the cached host window, or nil.
func (b *BaseControl) Window() Window { return b.win }

// SetViewOffset records the container's view offset.
func (b *BaseControl) SetViewOffset(offset PointF) { b.viewOffset = offset }

// ViewOffset returns the last-seen view offset.
func (b *BaseControl) ViewOffset() PointF { return b.viewOffset }

// HandleEvent ignores the event.
func (b *BaseControl) HandleEvent(ev Event) bool { return false }

// Update is a no-op for controls with no time-driven state.
func (b *BaseControl) Update(dt float32) {}

// IsAnimating reports false for static controls.
func (b *BaseControl) IsAnimating() bool { return false }

// resolveBounds computes the content-space bounds for an element of
// intrinsic size (contentW, contentH), honoring any explicit size in
// the position parameters.
func (b *BaseControl) resolveBounds(contentW, contentH, parentW, parentH float32) {
	w, h := contentW, contentH
	if b.pos.W > 0 {
		w = b.pos.W
	}
	if b.pos.H > 0 {
		h = b.pos.H
	}
	pt := ResolvePosition(b.pos, w, h, parentW, parentH)
	b.bounds = RectF{X: pt.X, Y: pt.Y, W: w, H: h}
}

// screenRect converts a content-space rectangle to screen-space using
// the last-seen view offset.
func (b *BaseControl) screenRect(r RectF) RectF {
	return r.Offset(b.viewOffset.X, b.viewOffset.Y)
}
