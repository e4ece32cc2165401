package uikit

// Switch is a sliding on/off toggle. It toggles on release by default;
// TriggerOnPress makes it toggle on press-down.
type Switch struct {
	BaseControl
	style     Style
	value     bool
	onToggle  func(bool)
	onPress   bool
	onLabel   string
	offLabel  string
	hovered   bool
	pressed   bool
	wasInside bool
}

// NewSwitch creates a switch with an initial value.
func NewSwitch(pos PositionParams, value bool, onToggle func(bool), opts ...Option) *Switch {
	o := applyOptions(opts)
	s := &Switch{
		style:    resolveStyle(o),
		value:    value,
		onToggle: onToggle,
		onPress:  GetOpt(o, OptTriggerOnPress),
		onLabel:  GetOpt(o, OptOnLabel),
		offLabel: GetOpt(o, OptOffLabel),
	}
	s.pos = pos
	s.RecalculateLayout(0, 0)
	return s
}

// Value returns the current state.
func (s *Switch) Value() bool { return s.value }

// SetValue sets the state without firing the callback.
func (s *Switch) SetValue(v bool) { s.value = v }

// RecalculateLayout sizes the switch to its track.
func (s *Switch) RecalculateLayout(parentW, parentH float32) {
	s.resolveBounds(s.style.SwitchTrackWidth, s.style.SwitchTrackHeight, parentW, parentH)
}

func (s *Switch) toggle() {
	s.value = !s.value
	if s.onToggle != nil {
		s.onToggle(s.value)
	}
}

// HandleEvent runs the press state machine.
func (s *Switch) HandleEvent(ev Event) bool {
	switch ev.Kind {
	case EventMouseMotion:
		inside := s.IsInside(PointF{X: ev.X, Y: ev.Y})
		if inside != s.hovered {
			s.hovered = inside
			return true
		}

	case EventMouseButtonDown:
		if ev.Button != MouseButtonLeft {
			return false
		}
		if s.IsInside(PointF{X: ev.X, Y: ev.Y}) {
			s.pressed = true
			s.wasInside = true
			if s.onPress {
				s.toggle()
			}
			return true
		}

	case EventMouseButtonUp:
		if ev.Button != MouseButtonLeft || !s.pressed {
			return false
		}
		s.pressed = false
		inside := s.IsInside(PointF{X: ev.X, Y: ev.Y})
		if inside && s.wasInside && !s.onPress {
			s.toggle()
		}
		s.wasInside = false
		return true
	}
	return false
}

// Draw renders the track and the thumb at its on/off position, with
// the optional state label centered on the thumb.
func (s *Switch) Draw(r Renderer, viewOffset PointF) {
	dst := s.bounds.Offset(viewOffset.X, viewOffset.Y)

	track := s.style.SwitchTrackOffColor
	if s.value {
		track = s.style.SwitchTrackOnColor
	}
	r.FillRect(dst, track)
	r.OutlineRect(dst, s.style.BoxBorderColor)

	pad := s.style.SwitchThumbPad
	side := dst.H - 2*pad
	radius := side / 2
	var cx float32
	if s.value {
		cx = dst.X + dst.W - pad - radius
	} else {
		cx = dst.X + pad + radius
	}
	thumb := RectF{X: cx - radius, Y: dst.Y + pad, W: side, H: side}
	r.FillRect(thumb, s.style.SwitchThumbColor)

	label := s.offLabel
	if s.value {
		label = s.onLabel
	}
	if label != "" {
		tw, th := measureText(label, s.style.FontSize)
		drawText(label, cx-float32(tw)/2, thumb.Y+(side-float32(th))/2, s.style.TextColor, s.style.FontSize)
	}
}
