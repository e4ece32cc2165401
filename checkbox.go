package uikit

// Checkbox is a toggle with a box and a trailing label. A successful
// click (press and release inside) flips the value and fires the
// optional onToggle callback.
type Checkbox struct {
	BaseControl
	label     string
	style     Style
	value     bool
	onToggle  func(bool)
	hovered   bool
	pressed   bool
	wasInside bool
}

// NewCheckbox creates a checkbox with an initial value.
func NewCheckbox(pos PositionParams, label string, value bool, onToggle func(bool), opts ...Option) *Checkbox {
	o := applyOptions(opts)
	c := &Checkbox{
		label:    label,
		style:    resolveStyle(o),
		value:    value,
		onToggle: onToggle,
	}
	c.pos = pos
	c.RecalculateLayout(0, 0)
	return c
}

// Value returns the current checked state.
func (c *Checkbox) Value() bool { return c.value }

// SetValue sets the checked state without firing the callback.
func (c *Checkbox) SetValue(v bool) { c.value = v }

// boxSize derives the check box side from the font metrics so the box
// matches the label's line height.
func (c *Checkbox) boxSize() float32 {
	a, d := textAscentDescent(c.style.FontSize)
	return float32(a + d)
}

// RecalculateLayout sizes the control: box + gap + label, padded.
func (c *Checkbox) RecalculateLayout(parentW, parentH float32) {
	box := c.boxSize()
	tw, th := measureText(c.label, c.style.FontSize)
	w := box + c.style.PaddingX + float32(tw)
	h := maxf(box, float32(th)) + 2*c.style.PaddingY
	c.resolveBounds(w, h, parentW, parentH)
}

// HandleEvent runs the press state machine; a completed click toggles.
func (c *Checkbox) HandleEvent(ev Event) bool {
	switch ev.Kind {
	case EventMouseMotion:
		inside := c.IsInside(PointF{X: ev.X, Y: ev.Y})
		if inside != c.hovered {
			c.hovered = inside
			return true
		}

	case EventMouseButtonDown:
		if ev.Button != MouseButtonLeft {
			return false
		}
		if c.IsInside(PointF{X: ev.X, Y: ev.Y}) {
			c.pressed = true
			c.wasInside = true
			return true
		}

	case EventMouseButtonUp:
		if ev.Button != MouseButtonLeft || !c.pressed {
			return false
		}
		c.pressed = false
		inside := c.IsInside(PointF{X: ev.X, Y: ev.Y})
		if inside && c.wasInside {
			c.value = !c.value
			if c.onToggle != nil {
				c.onToggle(c.value)
			}
		}
		c.wasInside = false
		return true
	}
	return false
}

// Draw renders the box, the checkmark when set, and the label aligned
// on the font baseline.
func (c *Checkbox) Draw(r Renderer, viewOffset PointF) {
	dst := c.bounds.Offset(viewOffset.X, viewOffset.Y)
	box := c.boxSize()
	boxRect := RectF{
		X: dst.X,
		Y: dst.Y + (dst.H-box)/2,
		W: box,
		H: box,
	}

	bg := c.style.BoxColor
	if c.hovered || c.pressed {
		bg = c.style.ButtonHoveredColor
	}
	r.FillRect(boxRect, bg)
	r.OutlineRect(boxRect, c.style.BoxBorderColor)

	if c.value {
		drawCheckmark(r, boxRect, c.style.CheckmarkColor, c.style.CheckThickness)
	}

	ascent, _ := textAscentDescent(c.style.FontSize)
	baseline := boxRect.Y + box*0.8
	ty := baseline - float32(ascent)
	drawText(c.label, boxRect.X+box+c.style.PaddingX, ty, c.style.TextColor, c.style.FontSize)
}

// drawCheckmark draws a three-point "V" polyline inside box, thickened
// by repeating parallel strokes.
func drawCheckmark(r Renderer, box RectF, c Color, thickness float32) {
	x0 := box.X + box.W*0.22
	y0 := box.Y + box.H*0.52
	x1 := box.X + box.W*0.42
	y1 := box.Y + box.H*0.72
	x2 := box.X + box.W*0.78
	y2 := box.Y + box.H*0.28

	n := int(thickness)
	if n < 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		dy := float32(i)
		r.DrawLine(x0, y0-dy, x1, y1-dy, c)
		r.DrawLine(x1, y1-dy, x2, y2-dy, c)
	}
}
