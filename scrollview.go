package uikit

import (
	"errors"
	"fmt"
)

// ErrSizeRequired is returned when a container is constructed without an
// explicit width and height.
var ErrSizeRequired = errors.New("explicit size required")

// ScrollView is a vertically scrolling container. Children are positioned
// in content space; the view clips them to its viewport and translates
// events across the scroll offset. At most one child holds focus.
type ScrollView struct {
	BaseControl

	style        Style
	children     []Control
	focusedChild Control

	contentHeight float32
	scrollY       float32

	draggingThumb bool
	grabOffsetY   float32
	thumbHovered  bool

	lastPointer    PointF
	havePointer    bool
	activeTouchID  int64
	touchActive    bool
	lastTouchY     float32
}

// NewScrollView creates a scroll view at the given position. The position
// must carry an explicit size via WithSize.
func NewScrollView(pos PositionParams, opts ...Option) (*ScrollView, error) {
	if pos.W <= 0 || pos.H <= 0 {
		return nil, fmt.Errorf("scrollview: %w", ErrSizeRequired)
	}
	o := applyOptions(opts)
	sv := &ScrollView{style: resolveStyle(o)}
	sv.pos = pos
	return sv, nil
}

// AddChild appends a child control. The child's position is interpreted
// in the view's content space.
func (sv *ScrollView) AddChild(c Control) {
	sv.children = append(sv.children, c)
	c.SetWindow(sv.win)
	c.SetViewOffset(sv.childViewOffset())
}

// RemoveChild removes a child, unfocusing it first if it holds focus.
func (sv *ScrollView) RemoveChild(c Control) {
	for i, child := range sv.children {
		if child == c {
			if sv.focusedChild == c {
				c.Unfocus(sv.win)
				sv.focusedChild = nil
			}
			sv.children = append(sv.children[:i], sv.children[i+1:]...)
			return
		}
	}
}

// Children returns the current child list.
func (sv *ScrollView) Children() []Control { return sv.children }

// ScrollY returns the current scroll offset in pixels.
func (sv *ScrollView) ScrollY() float32 { return sv.scrollY }

// ContentHeight returns the measured content extent.
func (sv *ScrollView) ContentHeight() float32 { return sv.contentHeight }

// FocusedChild returns the child currently holding focus, or nil.
func (sv *ScrollView) FocusedChild() Control { return sv.focusedChild }

func (sv *ScrollView) maxScroll() float32 {
	return maxf(0, sv.contentHeight-sv.bounds.H)
}

func (sv *ScrollView) setScrollY(y float32) {
	sv.scrollY = clampf(y, 0, sv.maxScroll())
	sv.pushViewOffsets()
}

// childOffset is the translation from content space to the view's own
// coordinate space.
func (sv *ScrollView) childOffset() PointF {
	return PointF{sv.bounds.X, sv.bounds.Y - sv.scrollY}
}

// childViewOffset is the translation from content space to screen space,
// used so children can report IME areas correctly.
func (sv *ScrollView) childViewOffset() PointF {
	off := sv.childOffset()
	return PointF{off.X + sv.viewOffset.X, off.Y + sv.viewOffset.Y}
}

func (sv *ScrollView) pushViewOffsets() {
	off := sv.childViewOffset()
	for _, c := range sv.children {
		c.SetViewOffset(off)
	}
}

func (sv *ScrollView) SetWindow(win Window) {
	sv.BaseControl.SetWindow(win)
	for _, c := range sv.children {
		c.SetWindow(win)
	}
}

func (sv *ScrollView) SetViewOffset(offset PointF) {
	sv.BaseControl.SetViewOffset(offset)
	sv.pushViewOffsets()
}

// RecalculateLayout lays children out twice: first against the viewport
// to measure the content extent, then against the measured extent so
// bottom-anchored children land at the content edge. When the content
// needs a scrollbar the second pass narrows the parent width by the
// scrollbar strip so right-anchored children stay clear of it.
func (sv *ScrollView) RecalculateLayout(parentW, parentH float32) {
	sv.resolveBounds(sv.pos.W, sv.pos.H, parentW, parentH)

	for _, c := range sv.children {
		c.RecalculateLayout(sv.bounds.W, sv.bounds.H)
	}
	extent := float32(0)
	for _, c := range sv.children {
		if b := c.Bounds(); b.Y+b.H > extent {
			extent = b.Y + b.H
		}
	}
	sv.contentHeight = maxf(extent, sv.bounds.H)

	if sv.contentHeight > sv.bounds.H {
		inner := sv.viewRect()
		for _, c := range sv.children {
			c.RecalculateLayout(inner.W, sv.contentHeight)
		}
	}
	sv.setScrollY(sv.scrollY)
}

func (sv *ScrollView) scrollbarVisible() bool {
	return sv.contentHeight > sv.bounds.H
}

// viewRect is the content viewport: the bounds minus the scrollbar
// strip when one is shown.
func (sv *ScrollView) viewRect() RectF {
	r := sv.bounds
	if sv.scrollbarVisible() {
		r.W -= sv.style.ScrollbarWidth
	}
	return r
}

func (sv *ScrollView) scrollbarRect() RectF {
	w := sv.style.ScrollbarWidth
	return RectF{sv.bounds.X + sv.bounds.W - w, sv.bounds.Y, w, sv.bounds.H}
}

func (sv *ScrollView) thumbRect() RectF {
	track := sv.scrollbarRect()
	ratio := sv.bounds.H / sv.contentHeight
	thumbH := maxf(sv.style.MinThumbHeight, sv.bounds.H*ratio)
	travel := sv.bounds.H - thumbH
	thumbY := track.Y
	if ms := sv.maxScroll(); ms > 0 {
		thumbY += (sv.scrollY / ms) * travel
	}
	return RectF{track.X, thumbY, track.W, thumbH}
}

// pointerInView reports whether the pointer is over the viewport, using
// the live window position when available and the last seen motion
// coordinates otherwise.
func (sv *ScrollView) pointerInView() bool {
	if sv.win != nil {
		if p, ok := sv.win.PointerPosition(); ok {
			return sv.bounds.Contains(PointF{p.X - sv.viewOffset.X, p.Y - sv.viewOffset.Y})
		}
	}
	return sv.havePointer && sv.bounds.Contains(sv.lastPointer)
}

func (sv *ScrollView) touchPoint(ev Event) PointF {
	if sv.win != nil {
		return sv.win.TouchToLogical(ev.TouchX, ev.TouchY)
	}
	w, h := DisplaySize()
	return PointF{ev.TouchX * w, ev.TouchY * h}
}

// translate rewrites a pointer event into content space.
func (sv *ScrollView) translate(ev Event) Event {
	off := sv.childOffset()
	return ev.translated(-off.X, -off.Y)
}

// forwardToAll sends a translated event to every child, back to front.
func (sv *ScrollView) forwardToAll(ev Event) bool {
	tev := sv.translate(ev)
	handled := false
	for i := len(sv.children) - 1; i >= 0; i-- {
		if sv.children[i].HandleEvent(tev) {
			handled = true
		}
	}
	return handled
}

func (sv *ScrollView) HandleEvent(ev Event) bool {
	switch ev.Kind {
	case EventMouseMotion:
		p := PointF{ev.X, ev.Y}
		sv.lastPointer = p
		sv.havePointer = true
		if sv.draggingThumb {
			sv.dragThumbTo(p.Y)
			return true
		}
		sv.thumbHovered = sv.scrollbarVisible() && sv.thumbRect().Contains(p)
		return sv.forwardToAll(ev)

	case EventMouseButtonDown:
		if ev.Button != MouseButtonLeft {
			return false
		}
		p := PointF{ev.X, ev.Y}
		if !sv.bounds.Contains(p) {
			if sv.focusedChild != nil {
				sv.focusedChild.Unfocus(sv.win)
				sv.focusedChild = nil
			}
			return false
		}
		if sv.scrollbarVisible() && sv.scrollbarRect().Contains(p) {
			thumb := sv.thumbRect()
			if thumb.Contains(p) {
				sv.draggingThumb = true
				sv.grabOffsetY = p.Y - thumb.Y
			} else if p.Y < thumb.Y {
				sv.setScrollY(sv.scrollY - sv.bounds.H)
			} else {
				sv.setScrollY(sv.scrollY + sv.bounds.H)
			}
			return true
		}
		return sv.dispatchPress(ev, p)

	case EventMouseButtonUp:
		if sv.draggingThumb && ev.Button == MouseButtonLeft {
			sv.draggingThumb = false
			return true
		}
		return sv.forwardToAll(ev)

	case EventMouseWheel:
		if !sv.pointerInView() {
			return false
		}
		sv.setScrollY(sv.scrollY - ev.WheelY*sv.style.ScrollSpeed)
		return true

	case EventFingerDown:
		p := sv.touchPoint(ev)
		if !sv.bounds.Contains(PointF{p.X - sv.viewOffset.X, p.Y - sv.viewOffset.Y}) {
			return false
		}
		sv.touchActive = true
		sv.activeTouchID = ev.TouchID
		sv.lastTouchY = p.Y
		return true

	case EventFingerMotion:
		if !sv.touchActive || ev.TouchID != sv.activeTouchID {
			return false
		}
		p := sv.touchPoint(ev)
		sv.setScrollY(sv.scrollY + (sv.lastTouchY - p.Y))
		sv.lastTouchY = p.Y
		return true

	case EventFingerUp:
		if sv.touchActive && ev.TouchID == sv.activeTouchID {
			sv.touchActive = false
			return true
		}
		return false

	case EventKeyDown, EventTextInput, EventTextEditing:
		if sv.focusedChild != nil {
			return sv.focusedChild.HandleEvent(ev)
		}
		return false
	}
	return false
}

// dispatchPress routes a press inside the viewport to the topmost child
// under the pointer, transferring focus before delivering the event.
func (sv *ScrollView) dispatchPress(ev Event, p PointF) bool {
	tev := sv.translate(ev)
	local := PointF{tev.X, tev.Y}

	var target Control
	for i := len(sv.children) - 1; i >= 0; i-- {
		if sv.children[i].IsInside(local) {
			target = sv.children[i]
			break
		}
	}

	if target == nil {
		if sv.focusedChild != nil {
			sv.focusedChild.Unfocus(sv.win)
			sv.focusedChild = nil
		}
		return false
	}

	if target != sv.focusedChild {
		if sv.focusedChild != nil {
			sv.focusedChild.Unfocus(sv.win)
		}
		sv.focusedChild = target
		target.SetWindow(sv.win)
		target.SetViewOffset(sv.childViewOffset())
		target.Focus(sv.win)
	}
	target.HandleEvent(tev)
	return true
}

func (sv *ScrollView) dragThumbTo(pointerY float32) {
	thumb := sv.thumbRect()
	travel := sv.bounds.H - thumb.H
	if travel <= 0 {
		return
	}
	frac := (pointerY - sv.grabOffsetY - sv.bounds.Y) / travel
	sv.setScrollY(clampf(frac, 0, 1) * sv.maxScroll())
}

func (sv *ScrollView) Update(dt float32) {
	for _, c := range sv.children {
		c.Update(dt)
	}
}

func (sv *ScrollView) IsAnimating() bool {
	for _, c := range sv.children {
		if c.IsAnimating() {
			return true
		}
	}
	return false
}

func (sv *ScrollView) Unfocus(win Window) {
	sv.BaseControl.Unfocus(win)
	if sv.focusedChild != nil {
		sv.focusedChild.Unfocus(win)
		sv.focusedChild = nil
	}
}

func (sv *ScrollView) Draw(r Renderer, offset PointF) {
	rect := sv.bounds.Offset(offset.X, offset.Y)
	r.FillRect(rect, sv.style.ScrollViewBgColor)

	prevClip, hadClip := r.ClipRect()
	clip := sv.viewRect().Offset(offset.X, offset.Y)
	if hadClip {
		clip = clip.Intersect(prevClip)
	}
	if !clip.Empty() {
		r.SetClipRect(clip)
		childOff := PointF{rect.X, rect.Y - sv.scrollY}
		for _, c := range sv.children {
			c.Draw(r, childOff)
		}
		if hadClip {
			r.SetClipRect(prevClip)
		} else {
			r.ClearClipRect()
		}
	}

	r.OutlineRect(rect, sv.style.ScrollViewBorderColor)

	if sv.scrollbarVisible() {
		track := sv.scrollbarRect().Offset(offset.X, offset.Y)
		thumb := sv.thumbRect().Offset(offset.X, offset.Y)
		r.FillRect(track, sv.style.ScrollbarTrackColor)
		thumbColor := sv.style.ScrollbarThumbColor
		if sv.draggingThumb || sv.thumbHovered {
			thumbColor = sv.style.ScrollbarThumbHovered
		}
		r.FillRect(thumb, thumbColor)
	}
}
