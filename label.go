package uikit

// Label is a non-interactive single-line text control.
type Label struct {
	BaseControl
	text     string
	fontSize int
	color    Color
}

// NewLabel creates a label. The label sizes itself from the text
// unless the position parameters carry an explicit size.
func NewLabel(pos PositionParams, text string, opts ...Option) *Label {
	o := applyOptions(opts)
	style := resolveStyle(o)
	l := &Label{
		text:     text,
		fontSize: style.FontSize,
		color:    style.TextColor,
	}
	l.pos = pos
	l.RecalculateLayout(0, 0)
	return l
}

// Text returns the label text.
func (l *Label) Text() string { return l.text }

// SetText replaces the label text and re-resolves the layout, since
// the intrinsic size changed.
func (l *Label) SetText(text string) {
	if text == l.text {
		return
	}
	l.text = text
	l.RecalculateLayout(0, 0)
}

// SetColor changes the text color.
func (l *Label) SetColor(c Color) { l.color = c }

// RecalculateLayout measures the text and anchor-resolves the bounds.
func (l *Label) RecalculateLayout(parentW, parentH float32) {
	w, h := measureText(l.text, l.fontSize)
	l.resolveBounds(float32(w), float32(h), parentW, parentH)
}

// Draw blits the cached text texture.
func (l *Label) Draw(r Renderer, viewOffset PointF) {
	drawText(l.text, l.bounds.X+viewOffset.X, l.bounds.Y+viewOffset.Y, l.color, l.fontSize)
}
