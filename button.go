package uikit

// Button is a clickable control with centered text.
//
// The press state machine is per left-mouse-button: idle, hovered
// while the pointer is inside, pressed while the button is down with
// the press having started inside (wasInside), and the click fires on
// release inside. TriggerOnPress makes it fire on press-down instead.
type Button struct {
	BaseControl
	text      string
	style     Style
	onClick   func()
	onPress   bool
	hovered   bool
	pressed   bool
	wasInside bool
}

// NewButton creates a button. Size is text extent plus padding unless
// the position parameters carry an explicit size.
func NewButton(pos PositionParams, text string, onClick func(), opts ...Option) *Button {
	o := applyOptions(opts)
	b := &Button{
		text:    text,
		style:   resolveStyle(o),
		onClick: onClick,
		onPress: GetOpt(o, OptTriggerOnPress),
	}
	b.pos = pos
	b.RecalculateLayout(0, 0)
	return b
}

// Text returns the button label.
func (b *Button) Text() string { return b.text }

// SetText replaces the label and re-resolves the layout.
func (b *Button) SetText(text string) {
	if text == b.text {
		return
	}
	b.text = text
	b.RecalculateLayout(0, 0)
}

// Pressed reports whether the button is currently held down.
func (b *Button) Pressed() bool { return b.pressed }

// RecalculateLayout sizes the button from its text plus padding.
func (b *Button) RecalculateLayout(parentW, parentH float32) {
	tw, th := measureText(b.text, b.style.FontSize)
	w := float32(tw) + 2*b.style.PaddingX
	h := float32(th) + 2*b.style.PaddingY
	b.resolveBounds(w, h, parentW, parentH)
}

// HandleEvent runs the press state machine on mouse events.
func (b *Button) HandleEvent(ev Event) bool {
	switch ev.Kind {
	case EventMouseMotion:
		inside := b.IsInside(PointF{X: ev.X, Y: ev.Y})
		if inside != b.hovered {
			b.hovered = inside
			return true
		}

	case EventMouseButtonDown:
		if ev.Button != MouseButtonLeft {
			return false
		}
		if b.IsInside(PointF{X: ev.X, Y: ev.Y}) {
			b.pressed = true
			b.wasInside = true
			if b.onPress && b.onClick != nil {
				b.onClick()
			}
			return true
		}

	case EventMouseButtonUp:
		if ev.Button != MouseButtonLeft || !b.pressed {
			return false
		}
		b.pressed = false
		inside := b.IsInside(PointF{X: ev.X, Y: ev.Y})
		if inside && b.wasInside && !b.onPress && b.onClick != nil {
			b.onClick()
		}
		b.wasInside = false
		return true
	}
	return false
}

// Draw fills the background (pressed > hovered > normal), the border,
// and the centered label.
func (b *Button) Draw(r Renderer, viewOffset PointF) {
	dst := b.bounds.Offset(viewOffset.X, viewOffset.Y)

	bg := b.style.ButtonColor
	if b.pressed {
		bg = b.style.ButtonPressedColor
	} else if b.hovered {
		bg = b.style.ButtonHoveredColor
	}
	r.FillRect(dst, bg)
	if b.style.BorderSize > 0 {
		r.OutlineRect(dst, b.style.ButtonBorderColor)
	}

	tw, th := measureText(b.text, b.style.FontSize)
	tx := dst.X + (dst.W-float32(tw))/2
	ty := dst.Y + (dst.H-float32(th))/2
	drawText(b.text, tx, ty, b.style.TextColor, b.style.FontSize)
}
