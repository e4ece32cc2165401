package uikit

// RadioButton is one option in a RadioButtonGroup. It never stands
// alone; construct it through the group's AddOption.
type RadioButton struct {
	BaseControl
	label   string
	value   int
	style   Style
	group   *RadioButtonGroup
	hovered bool
}

// Value returns the value this option writes into the group selection.
func (rb *RadioButton) Value() int { return rb.value }

// circleSize derives the radio circle diameter from the font metrics.
func (rb *RadioButton) circleSize() float32 {
	a, d := textAscentDescent(rb.style.FontSize)
	return float32(a + d)
}

// RecalculateLayout sizes the option: circle + gap + label.
func (rb *RadioButton) RecalculateLayout(parentW, parentH float32) {
	circle := rb.circleSize()
	tw, th := measureText(rb.label, rb.style.FontSize)
	w := circle + rb.style.PaddingX + float32(tw)
	h := maxf(circle, float32(th)) + 2*rb.style.PaddingY
	rb.resolveBounds(w, h, parentW, parentH)
}

// HandleEvent notifies the group on a left-down inside.
func (rb *RadioButton) HandleEvent(ev Event) bool {
	switch ev.Kind {
	case EventMouseMotion:
		inside := rb.IsInside(PointF{X: ev.X, Y: ev.Y})
		if inside != rb.hovered {
			rb.hovered = inside
			return true
		}

	case EventMouseButtonDown:
		if ev.Button != MouseButtonLeft {
			return false
		}
		if rb.IsInside(PointF{X: ev.X, Y: ev.Y}) {
			rb.group.notifySelection(rb.value)
			return true
		}
	}
	return false
}

// Draw renders the circle with an inner dot when selected.
func (rb *RadioButton) Draw(r Renderer, viewOffset PointF) {
	dst := rb.bounds.Offset(viewOffset.X, viewOffset.Y)
	circle := rb.circleSize()
	radius := circle / 2
	cx := dst.X + radius
	cy := dst.Y + dst.H/2

	if rb.hovered {
		fillCircle(r, cx, cy, radius, rb.style.RadioHoverColor)
	} else {
		fillCircle(r, cx, cy, radius, rb.style.BoxColor)
	}
	outlineCircle(r, cx, cy, radius, rb.style.BoxBorderColor)

	if rb.group.Selected() == rb.value {
		fillCircle(r, cx, cy, radius*0.5, rb.style.RadioFillColor)
	}

	ascent, _ := textAscentDescent(rb.style.FontSize)
	ty := cy + circle*0.3 - float32(ascent)
	drawText(rb.label, dst.X+circle+rb.style.PaddingX, ty, rb.style.TextColor, rb.style.FontSize)
}

// RadioButtonGroup owns an ordered list of radio buttons that share a
// single selection. The selection lives in an external int the caller
// owns and must keep alive; pass nil to let the group keep its own.
// The on-change callback fires only when the selection actually
// changes.
type RadioButtonGroup struct {
	BaseControl
	buttons  []*RadioButton
	selected *int
	internal int
	onChange func(int)
}

// NewRadioButtonGroup creates a group bound to an external selection
// integer. selected may be nil.
func NewRadioButtonGroup(selected *int, onChange func(int)) *RadioButtonGroup {
	g := &RadioButtonGroup{
		selected: selected,
		internal: -1,
		onChange: onChange,
	}
	if g.selected == nil {
		g.selected = &g.internal
	}
	return g
}

// AddOption appends a radio button to the group and returns it.
func (g *RadioButtonGroup) AddOption(pos PositionParams, label string, value int, opts ...Option) *RadioButton {
	o := applyOptions(opts)
	rb := &RadioButton{
		label: label,
		value: value,
		style: resolveStyle(o),
		group: g,
	}
	rb.pos = pos
	rb.RecalculateLayout(0, 0)
	g.buttons = append(g.buttons, rb)
	g.bounds = g.unionBounds()
	return rb
}

// Selected returns the current selection value.
func (g *RadioButtonGroup) Selected() int { return *g.selected }

// notifySelection writes the new value if it differs and fires the
// callback once per actual change.
func (g *RadioButtonGroup) notifySelection(value int) {
	if *g.selected == value {
		return
	}
	*g.selected = value
	if g.onChange != nil {
		g.onChange(value)
	}
}

func (g *RadioButtonGroup) unionBounds() RectF {
	var u RectF
	for _, rb := range g.buttons {
		u = u.Union(rb.Bounds())
	}
	return u
}

// Bounds returns the tight union of the option bounds.
func (g *RadioButtonGroup) Bounds() RectF { return g.bounds }

// IsInside hits the union rectangle.
func (g *RadioButtonGroup) IsInside(p PointF) bool { return g.bounds.Contains(p) }

// RecalculateLayout forwards to every option and refreshes the union.
func (g *RadioButtonGroup) RecalculateLayout(parentW, parentH float32) {
	for _, rb := range g.buttons {
		rb.RecalculateLayout(parentW, parentH)
	}
	g.bounds = g.unionBounds()
}

// HandleEvent forwards to the options in order; the first one that
// consumes the event stops propagation.
func (g *RadioButtonGroup) HandleEvent(ev Event) bool {
	for _, rb := range g.buttons {
		if rb.HandleEvent(ev) {
			return true
		}
	}
	return false
}

// Draw renders every option.
func (g *RadioButtonGroup) Draw(r Renderer, viewOffset PointF) {
	for _, rb := range g.buttons {
		rb.Draw(r, viewOffset)
	}
}

// SetWindow forwards the window handle to every option.
func (g *RadioButtonGroup) SetWindow(win Window) {
	g.win = win
	for _, rb := range g.buttons {
		rb.SetWindow(win)
	}
}

// SetViewOffset forwards the offset to every option.
func (g *RadioButtonGroup) SetViewOffset(offset PointF) {
	g.viewOffset = offset
	for _, rb := range g.buttons {
		rb.SetViewOffset(offset)
	}
}
