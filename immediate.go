package uikit

import "slices"

// Immediate-mode mirror of the retained controls. Each function is
// called once per event per frame with a stable id; widget state is
// kept per id for the process lifetime, so layout and interaction are
// identical to the retained versions. All functions return true when a
// user-visible change happened on this call.

func outputSize(r Renderer) (float32, float32) {
	if r == nil {
		return DisplaySize()
	}
	w, h := r.OutputSize()
	return float32(w), float32(h)
}

// offsetPosition shifts a position vertically, in whichever mode it is
// expressed in.
func offsetPosition(pos PositionParams, dy float32) PositionParams {
	if pos.Anchored {
		pos.OffsetY += dy
	} else {
		pos.Y += dy
	}
	return pos
}

type imButtonState struct {
	ctl     *Button
	clicked bool
}

var imButtons = newStateStore[imButtonState]()

// ImButton draws a button and returns true when it was clicked.
func ImButton(id string, r Renderer, ev Event, pos PositionParams, text string, opts ...Option) bool {
	st := imButtons.get(id)
	if st.ctl == nil {
		st.ctl = NewButton(pos, text, nil, opts...)
		st.ctl.onClick = func() { st.clicked = true }
	}
	st.ctl.pos = pos
	st.ctl.SetText(text)
	pw, ph := outputSize(r)
	st.ctl.RecalculateLayout(pw, ph)
	st.clicked = false
	st.ctl.HandleEvent(ev)
	if r != nil {
		st.ctl.Draw(r, PointF{})
	}
	return st.clicked
}

type imCheckboxState struct {
	ctl *Checkbox
}

var imCheckboxes = newStateStore[imCheckboxState]()

// ImCheckbox draws a checkbox bound to value and returns true when the
// value was toggled.
func ImCheckbox(id string, r Renderer, ev Event, pos PositionParams, label string, value *bool, opts ...Option) bool {
	st := imCheckboxes.get(id)
	if st.ctl == nil {
		st.ctl = NewCheckbox(pos, label, *value, nil, opts...)
	}
	st.ctl.pos = pos
	st.ctl.label = label
	st.ctl.value = *value
	pw, ph := outputSize(r)
	st.ctl.RecalculateLayout(pw, ph)
	st.ctl.HandleEvent(ev)
	changed := st.ctl.value != *value
	*value = st.ctl.value
	if r != nil {
		st.ctl.Draw(r, PointF{})
	}
	return changed
}

type imSwitchState struct {
	ctl *Switch
}

var imSwitches = newStateStore[imSwitchState]()

// ImSwitch draws a toggle switch bound to value and returns true when
// the value was toggled.
func ImSwitch(id string, r Renderer, ev Event, pos PositionParams, value *bool, opts ...Option) bool {
	st := imSwitches.get(id)
	if st.ctl == nil {
		st.ctl = NewSwitch(pos, *value, nil, opts...)
	}
	st.ctl.pos = pos
	st.ctl.value = *value
	pw, ph := outputSize(r)
	st.ctl.RecalculateLayout(pw, ph)
	st.ctl.HandleEvent(ev)
	changed := st.ctl.value != *value
	*value = st.ctl.value
	if r != nil {
		st.ctl.Draw(r, PointF{})
	}
	return changed
}

type imSliderState struct {
	ctl *Slider
}

var imSliders = newStateStore[imSliderState]()

// ImSlider draws a slider bound to value and returns true when the
// value changed.
func ImSlider(id string, r Renderer, ev Event, pos PositionParams, minVal, maxVal float32, value *float32, opts ...Option) bool {
	st := imSliders.get(id)
	if st.ctl == nil {
		st.ctl = NewSlider(pos, minVal, maxVal, *value, nil, opts...)
	}
	st.ctl.pos = pos
	st.ctl.min = minVal
	st.ctl.max = maxVal
	st.ctl.value = clampf(*value, minVal, maxVal)
	before := st.ctl.value
	pw, ph := outputSize(r)
	st.ctl.RecalculateLayout(pw, ph)
	st.ctl.HandleEvent(ev)
	changed := st.ctl.value != before
	*value = st.ctl.value
	if r != nil {
		st.ctl.Draw(r, PointF{})
	}
	return changed
}

type imDropdownState struct {
	ctl *Dropdown
}

var imDropdowns = newStateStore[imDropdownState]()

// ImDropdown draws a dropdown bound to selected and returns true when
// the selection changed.
func ImDropdown(id string, r Renderer, ev Event, pos PositionParams, options []string, selected *int, opts ...Option) bool {
	st := imDropdowns.get(id)
	if st.ctl == nil {
		st.ctl = NewDropdown(pos, options, *selected, nil, opts...)
	}
	st.ctl.pos = pos
	if !slices.Equal(st.ctl.options, options) {
		st.ctl.options = slices.Clone(options)
	}
	st.ctl.selected = *selected
	before := st.ctl.selected
	pw, ph := outputSize(r)
	st.ctl.RecalculateLayout(pw, ph)
	st.ctl.HandleEvent(ev)
	changed := st.ctl.selected != before
	*selected = st.ctl.selected
	if r != nil {
		st.ctl.Draw(r, PointF{})
	}
	return changed
}

type imRadioGroupState struct {
	group    *RadioButtonGroup
	labels   []string
	pos      PositionParams
	internal int
}

var imRadioGroups = newStateStore[imRadioGroupState]()

// ImRadioGroup draws a vertical radio group bound to selected, one
// option per label with values 0..len(labels)-1, and returns true when
// the selection changed.
func ImRadioGroup(id string, r Renderer, ev Event, pos PositionParams, labels []string, selected *int, opts ...Option) bool {
	st := imRadioGroups.get(id)
	if st.group == nil || st.pos != pos || !slices.Equal(st.labels, labels) {
		st.group = NewRadioButtonGroup(&st.internal, nil)
		st.labels = slices.Clone(labels)
		st.pos = pos
		rowH := textLineHeight(GetDefaultStyle().FontSize) + 2*GetDefaultStyle().PaddingY
		for i, label := range labels {
			st.group.AddOption(offsetPosition(pos, float32(i)*rowH), label, i, opts...)
		}
	}
	st.internal = *selected
	pw, ph := outputSize(r)
	st.group.RecalculateLayout(pw, ph)
	st.group.HandleEvent(ev)
	changed := st.internal != *selected
	*selected = st.internal
	if r != nil {
		st.group.Draw(r, PointF{})
	}
	return changed
}

type imScrollState struct {
	scrollY     float32
	dragging    bool
	grabOffsetY float32
	thumbHover  bool
	lastPointer PointF
	havePointer bool
	touchActive bool
	touchID     int64
	lastTouchY  float32
}

type imClipFrame struct {
	st       *imScrollState
	viewRect RectF
	contentH float32
	style    Style
	prevClip RectF
	hadPrev  bool
}

var (
	imScrolls   = newStateStore[imScrollState]()
	imClipStack []imClipFrame
)

func imThumbRect(viewRect RectF, st *imScrollState, contentH float32, style Style) RectF {
	thumbH := maxf(style.MinThumbHeight, viewRect.H*(viewRect.H/contentH))
	travel := viewRect.H - thumbH
	y := viewRect.Y
	if ms := contentH - viewRect.H; ms > 0 {
		y += (st.scrollY / ms) * travel
	}
	return RectF{viewRect.X + viewRect.W - style.ScrollbarWidth, y, style.ScrollbarWidth, thumbH}
}

// BeginScrollView handles scroll input for a viewport, fills its
// background, pushes a clip rect, and returns the offset to add to
// child positions drawn before the matching EndScrollView.
func BeginScrollView(id string, r Renderer, ev Event, viewRect RectF, contentHeight float32, opts ...Option) PointF {
	o := applyOptions(opts)
	style := resolveStyle(o)
	st := imScrolls.get(id)

	contentHeight = maxf(contentHeight, viewRect.H)
	maxScroll := maxf(0, contentHeight-viewRect.H)
	barVisible := contentHeight > viewRect.H

	switch ev.Kind {
	case EventMouseMotion:
		p := PointF{ev.X, ev.Y}
		st.lastPointer = p
		st.havePointer = true
		if st.dragging {
			thumb := imThumbRect(viewRect, st, contentHeight, style)
			if travel := viewRect.H - thumb.H; travel > 0 {
				frac := clampf((p.Y-st.grabOffsetY-viewRect.Y)/travel, 0, 1)
				st.scrollY = frac * maxScroll
			}
		} else {
			st.thumbHover = barVisible && imThumbRect(viewRect, st, contentHeight, style).Contains(p)
		}

	case EventMouseButtonDown:
		if ev.Button == MouseButtonLeft && barVisible {
			p := PointF{ev.X, ev.Y}
			track := RectF{viewRect.X + viewRect.W - style.ScrollbarWidth, viewRect.Y, style.ScrollbarWidth, viewRect.H}
			if track.Contains(p) {
				thumb := imThumbRect(viewRect, st, contentHeight, style)
				if thumb.Contains(p) {
					st.dragging = true
					st.grabOffsetY = p.Y - thumb.Y
				} else if p.Y < thumb.Y {
					st.scrollY -= viewRect.H
				} else {
					st.scrollY += viewRect.H
				}
			}
		}

	case EventMouseButtonUp:
		if ev.Button == MouseButtonLeft {
			st.dragging = false
		}

	case EventMouseWheel:
		if st.havePointer && viewRect.Contains(st.lastPointer) {
			st.scrollY -= ev.WheelY * style.ScrollSpeed
		}

	case EventFingerDown:
		w, h := outputSize(r)
		p := PointF{ev.TouchX * w, ev.TouchY * h}
		if viewRect.Contains(p) {
			st.touchActive = true
			st.touchID = ev.TouchID
			st.lastTouchY = p.Y
		}

	case EventFingerMotion:
		if st.touchActive && ev.TouchID == st.touchID {
			_, h := outputSize(r)
			y := ev.TouchY * h
			st.scrollY += st.lastTouchY - y
			st.lastTouchY = y
		}

	case EventFingerUp:
		if st.touchActive && ev.TouchID == st.touchID {
			st.touchActive = false
		}
	}

	st.scrollY = clampf(st.scrollY, 0, maxScroll)

	var prevClip RectF
	hadPrev := false
	if r != nil {
		r.FillRect(viewRect, style.ScrollViewBgColor)
		prevClip, hadPrev = r.ClipRect()
		clip := viewRect
		if hadPrev {
			clip = clip.Intersect(prevClip)
		}
		r.SetClipRect(clip)
	}
	imClipStack = append(imClipStack, imClipFrame{
		st:       st,
		viewRect: viewRect,
		contentH: contentHeight,
		style:    style,
		prevClip: prevClip,
		hadPrev:  hadPrev,
	})

	return PointF{viewRect.X, viewRect.Y - st.scrollY}
}

// BeginScrollViewAt is BeginScrollView with the viewport given as
// anchored position parameters carrying an explicit size.
func BeginScrollViewAt(id string, r Renderer, ev Event, pos PositionParams, opts ...Option) (PointF, error) {
	if pos.W <= 0 || pos.H <= 0 {
		return PointF{}, ErrSizeRequired
	}
	pw, ph := outputSize(r)
	p := ResolvePosition(pos, pos.W, pos.H, pw, ph)
	return BeginScrollView(id, r, ev, RectF{p.X, p.Y, pos.W, pos.H}, GetOpt(applyOptions(opts), OptContentHeight), opts...), nil
}

// EndScrollView pops the clip pushed by the matching BeginScrollView
// and draws the viewport border and scrollbar on top of the children.
func EndScrollView(r Renderer) {
	if len(imClipStack) == 0 {
		uiLogger.Warn("EndScrollView without matching BeginScrollView")
		return
	}
	f := imClipStack[len(imClipStack)-1]
	imClipStack = imClipStack[:len(imClipStack)-1]
	if r == nil {
		return
	}

	if f.hadPrev {
		r.SetClipRect(f.prevClip)
	} else {
		r.ClearClipRect()
	}

	r.OutlineRect(f.viewRect, f.style.ScrollViewBorderColor)
	if f.contentH > f.viewRect.H {
		track := RectF{f.viewRect.X + f.viewRect.W - f.style.ScrollbarWidth, f.viewRect.Y, f.style.ScrollbarWidth, f.viewRect.H}
		r.FillRect(track, f.style.ScrollbarTrackColor)
		thumbColor := f.style.ScrollbarThumbColor
		if f.st.dragging || f.st.thumbHover {
			thumbColor = f.style.ScrollbarThumbHovered
		}
		r.FillRect(imThumbRect(f.viewRect, f.st, f.contentH, f.style), thumbColor)
	}
}
