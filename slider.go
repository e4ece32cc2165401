package uikit

import (
	"fmt"
	"strings"
)

// Slider is a draggable value control, horizontal by default.
// Invariant: min <= value <= max.
type Slider struct {
	BaseControl
	style     Style
	min, max  float32
	value     float32
	vertical  bool
	onChange  func(float32)
	showValue bool
	format    string
	hovered   bool
	grabbed   bool
}

// NewSlider creates a slider over [minVal, maxVal] with an initial
// value, clamped into range.
func NewSlider(pos PositionParams, minVal, maxVal, value float32, onChange func(float32), opts ...Option) *Slider {
	o := applyOptions(opts)
	s := &Slider{
		style:     resolveStyle(o),
		min:       minVal,
		max:       maxVal,
		value:     clampf(value, minVal, maxVal),
		vertical:  GetOpt(o, OptVertical),
		onChange:  onChange,
		showValue: GetOpt(o, OptShowValue),
		format:    GetOpt(o, OptFormat),
	}
	if s.format == "" {
		s.format = "%.2f"
	}
	s.pos = pos
	s.RecalculateLayout(0, 0)
	return s
}

// Value returns the current value.
func (s *Slider) Value() float32 { return s.value }

// SetValue clamps and stores a new value without firing the callback.
func (s *Slider) SetValue(v float32) {
	s.value = clampf(v, s.min, s.max)
}

// Grabbed reports whether the thumb is being dragged.
func (s *Slider) Grabbed() bool { return s.grabbed }

// RecalculateLayout sizes the slider. Defaults: 150 along the axis,
// thumb size across it; explicit sizes in the position override.
func (s *Slider) RecalculateLayout(parentW, parentH float32) {
	w, h := float32(150), s.style.SliderThumbSize
	if s.vertical {
		w, h = h, w
	}
	s.resolveBounds(w, h, parentW, parentH)
}

// ratio maps the value into [0, 1].
func (s *Slider) ratio() float32 {
	if s.max <= s.min {
		return 0
	}
	return (s.value - s.min) / (s.max - s.min)
}

// thumbRect returns the thumb square in content-space.
func (s *Slider) thumbRect() RectF {
	size := s.style.SliderThumbSize
	if s.vertical {
		travel := s.bounds.H - size
		return RectF{
			X: s.bounds.X + (s.bounds.W-size)/2,
			Y: s.bounds.Y + s.ratio()*travel,
			W: size, H: size,
		}
	}
	travel := s.bounds.W - size
	return RectF{
		X: s.bounds.X + s.ratio()*travel,
		Y: s.bounds.Y + (s.bounds.H-size)/2,
		W: size, H: size,
	}
}

// valueAt maps a content-space pointer position along the axis to a
// clamped value, with the thumb centered on the pointer.
func (s *Slider) valueAt(p PointF) float32 {
	size := s.style.SliderThumbSize
	var ratio float32
	if s.vertical {
		travel := s.bounds.H - size
		if travel > 0 {
			ratio = clampf((p.Y-s.bounds.Y-size/2)/travel, 0, 1)
		}
	} else {
		travel := s.bounds.W - size
		if travel > 0 {
			ratio = clampf((p.X-s.bounds.X-size/2)/travel, 0, 1)
		}
	}
	return s.min + ratio*(s.max-s.min)
}

func (s *Slider) setAndNotify(v float32) bool {
	v = clampf(v, s.min, s.max)
	if v == s.value {
		return false
	}
	s.value = v
	if s.onChange != nil {
		s.onChange(v)
	}
	return true
}

// HandleEvent grabs on thumb press, drags while grabbed, and jumps on
// track clicks.
func (s *Slider) HandleEvent(ev Event) bool {
	p := PointF{X: ev.X, Y: ev.Y}
	switch ev.Kind {
	case EventMouseMotion:
		if s.grabbed {
			s.setAndNotify(s.valueAt(p))
			return true
		}
		inside := s.IsInside(p)
		if inside != s.hovered {
			s.hovered = inside
			return true
		}

	case EventMouseButtonDown:
		if ev.Button != MouseButtonLeft {
			return false
		}
		if s.thumbRect().Contains(p) {
			s.grabbed = true
			return true
		}
		if s.IsInside(p) {
			// Track click: jump the thumb to the pointer.
			s.setAndNotify(s.valueAt(p))
			return true
		}

	case EventMouseButtonUp:
		if ev.Button != MouseButtonLeft || !s.grabbed {
			return false
		}
		s.grabbed = false
		return true
	}
	return false
}

// Draw renders the track, the filled portion, the thumb, and the
// optional value text.
func (s *Slider) Draw(r Renderer, viewOffset PointF) {
	dst := s.bounds.Offset(viewOffset.X, viewOffset.Y)
	thickness := s.style.SliderTrackThickness

	var track, fill RectF
	if s.vertical {
		track = RectF{X: dst.X + (dst.W-thickness)/2, Y: dst.Y, W: thickness, H: dst.H}
		fill = RectF{X: track.X, Y: track.Y, W: thickness, H: s.ratio() * dst.H}
	} else {
		track = RectF{X: dst.X, Y: dst.Y + (dst.H-thickness)/2, W: dst.W, H: thickness}
		fill = RectF{X: track.X, Y: track.Y, W: s.ratio() * dst.W, H: thickness}
	}
	r.FillRect(track, s.style.SliderTrackColor)
	if !fill.Empty() {
		r.FillRect(fill, s.style.SliderFillColor)
	}

	thumb := s.thumbRect().Offset(viewOffset.X, viewOffset.Y)
	grab := s.style.SliderGrabColor
	if s.grabbed {
		grab = s.style.SliderFillColor
	} else if s.hovered {
		grab = s.style.ButtonHoveredColor
	}
	r.FillRect(thumb, grab)
	r.OutlineRect(thumb, s.style.BoxBorderColor)

	if s.showValue {
		text := s.formatValue()
		_, th := measureText(text, s.style.FontSize)
		if s.vertical {
			drawText(text, dst.X+dst.W+s.style.PaddingX, thumb.Y+(thumb.H-float32(th))/2,
				s.style.TextColor, s.style.FontSize)
		} else {
			drawText(text, dst.X+dst.W+s.style.PaddingX, dst.Y+(dst.H-float32(th))/2,
				s.style.TextColor, s.style.FontSize)
		}
	}
}

func (s *Slider) formatValue() string {
	if strings.Contains(s.format, "%d") {
		return fmt.Sprintf(s.format, int(s.value))
	}
	return fmt.Sprintf(s.format, s.value)
}
