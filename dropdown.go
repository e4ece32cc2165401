package uikit

// Dropdown is a closed/open option picker. Closed, the main button
// shows the current selection; open, the option list is laid out
// directly below it. While open, Bounds includes the list area so a
// parent ScrollView treats the whole region as content.
type Dropdown struct {
	BaseControl
	style       Style
	options     []string
	selected    int
	isOpen      bool
	hoveredItem int
	hovered     bool
	onSelect    func(int)

	mainButtonHeight float32
	listItemHeight   float32
}

// NewDropdown creates a dropdown. selected may be -1 for "nothing
// selected"; out-of-range values are clamped and logged.
func NewDropdown(pos PositionParams, items []string, selected int, onSelect func(int), opts ...Option) *Dropdown {
	o := applyOptions(opts)
	d := &Dropdown{
		style:       resolveStyle(o),
		options:     items,
		hoveredItem: -1,
		onSelect:    onSelect,
	}
	d.selected = d.clampIndex(selected)
	d.pos = pos
	d.RecalculateLayout(0, 0)
	return d
}

// SelectedIndex returns the current selection (-1 = none).
func (d *Dropdown) SelectedIndex() int { return d.selected }

// SetSelectedIndex sets the selection without firing the callback.
// Out-of-range values are clamped and logged.
func (d *Dropdown) SetSelectedIndex(i int) {
	d.selected = d.clampIndex(i)
}

// IsOpen reports whether the option list is showing.
func (d *Dropdown) IsOpen() bool { return d.isOpen }

// Options returns the option labels.
func (d *Dropdown) Options() []string { return d.options }

func (d *Dropdown) clampIndex(i int) int {
	if i < -1 {
		uiLogger.Warn("dropdown: selection out of range, clamping", "index", i)
		return -1
	}
	if i >= len(d.options) {
		uiLogger.Warn("dropdown: selection out of range, clamping", "index", i, "options", len(d.options))
		return len(d.options) - 1
	}
	return i
}

// RecalculateLayout sizes the main button from the widest option plus
// padding and arrow space; item height comes from the font metrics.
func (d *Dropdown) RecalculateLayout(parentW, parentH float32) {
	a, desc := textAscentDescent(d.style.FontSize)
	lineH := float32(a + desc)
	d.mainButtonHeight = lineH + 2*d.style.PaddingY
	d.listItemHeight = lineH + 2*d.style.PaddingY

	var widest float32
	for _, opt := range d.options {
		w, _ := measureText(opt, d.style.FontSize)
		widest = maxf(widest, float32(w))
	}
	arrowSpace := lineH + d.style.PaddingX
	w := widest + 2*d.style.PaddingX + arrowSpace

	d.resolveBounds(w, d.mainButtonHeight, parentW, parentH)
	if d.isOpen {
		d.bounds.H = d.mainButtonHeight + float32(len(d.options))*d.listItemHeight
	}
}

// buttonRect is the main button area in content-space.
func (d *Dropdown) buttonRect() RectF {
	return RectF{X: d.bounds.X, Y: d.bounds.Y, W: d.bounds.W, H: d.mainButtonHeight}
}

// itemRect is the content-space band of option i while open.
func (d *Dropdown) itemRect(i int) RectF {
	return RectF{
		X: d.bounds.X,
		Y: d.bounds.Y + d.mainButtonHeight + float32(i)*d.listItemHeight,
		W: d.bounds.W,
		H: d.listItemHeight,
	}
}

// itemAt returns the option index under a content-space point, or -1.
func (d *Dropdown) itemAt(p PointF) int {
	if !d.isOpen {
		return -1
	}
	for i := range d.options {
		if d.itemRect(i).Contains(p) {
			return i
		}
	}
	return -1
}

func (d *Dropdown) open() {
	d.isOpen = true
	d.hoveredItem = -1
	d.bounds.H = d.mainButtonHeight + float32(len(d.options))*d.listItemHeight
}

func (d *Dropdown) close() {
	d.isOpen = false
	d.hoveredItem = -1
	d.bounds.H = d.mainButtonHeight
}

// HandleEvent: closed, a left-down on the button opens the list;
// open, a left-down on an item selects and closes, a left-down
// anywhere else closes, Escape closes.
func (d *Dropdown) HandleEvent(ev Event) bool {
	p := PointF{X: ev.X, Y: ev.Y}
	switch ev.Kind {
	case EventMouseMotion:
		changed := false
		inside := d.buttonRect().Contains(p)
		if inside != d.hovered {
			d.hovered = inside
			changed = true
		}
		if d.isOpen {
			item := d.itemAt(p)
			if item != d.hoveredItem {
				d.hoveredItem = item
				changed = true
			}
		}
		return changed

	case EventMouseButtonDown:
		if ev.Button != MouseButtonLeft {
			return false
		}
		if !d.isOpen {
			if d.buttonRect().Contains(p) {
				d.open()
				return true
			}
			return false
		}
		if item := d.itemAt(p); item >= 0 {
			d.selected = item
			d.close()
			if d.onSelect != nil {
				d.onSelect(item)
			}
			return true
		}
		// Outside both the button and the list.
		if !d.buttonRect().Contains(p) {
			d.close()
			return true
		}
		// On the main button while open: toggle shut.
		d.close()
		return true

	case EventKeyDown:
		if d.isOpen && ev.Key == KeyEscape {
			d.close()
			return true
		}
	}
	return false
}

// Draw renders the main button, arrow, and the open list.
func (d *Dropdown) Draw(r Renderer, viewOffset PointF) {
	btn := d.buttonRect().Offset(viewOffset.X, viewOffset.Y)

	bg := d.style.ButtonColor
	if d.hovered || d.isOpen {
		bg = d.style.ButtonHoveredColor
	}
	r.FillRect(btn, bg)
	r.OutlineRect(btn, d.style.ButtonBorderColor)

	label := ""
	if d.selected >= 0 && d.selected < len(d.options) {
		label = d.options[d.selected]
	}
	_, th := measureText(label, d.style.FontSize)
	drawText(label, btn.X+d.style.PaddingX, btn.Y+(btn.H-float32(th))/2, d.style.TextColor, d.style.FontSize)

	d.drawArrow(r, btn)

	if !d.isOpen {
		return
	}
	for i, opt := range d.options {
		item := d.itemRect(i).Offset(viewOffset.X, viewOffset.Y)
		itemBg := d.style.DropdownBgColor
		if i == d.hoveredItem {
			itemBg = d.style.DropdownHoverColor
		}
		r.FillRect(item, itemBg)
		_, ih := measureText(opt, d.style.FontSize)
		drawText(opt, item.X+d.style.PaddingX, item.Y+(item.H-float32(ih))/2, d.style.TextColor, d.style.FontSize)
	}
	list := RectF{
		X: btn.X, Y: btn.Y + btn.H,
		W: btn.W, H: float32(len(d.options)) * d.listItemHeight,
	}
	r.OutlineRect(list, d.style.ButtonBorderColor)
}

// drawArrow renders the open/closed indicator as stacked shrinking
// lines forming a triangle.
func (d *Dropdown) drawArrow(r Renderer, btn RectF) {
	size := btn.H * 0.3
	cx := btn.X + btn.W - d.style.PaddingX - size/2
	cy := btn.Y + btn.H/2
	rows := int(size / 2)
	if rows < 2 {
		rows = 2
	}
	for i := 0; i < rows; i++ {
		half := size/2 - float32(i)*size/(2*float32(rows))
		y := cy - size/4 + float32(i)
		if d.isOpen {
			// Pointing up.
			y = cy + size/4 - float32(i)
		}
		r.DrawLine(cx-half, y, cx+half, y, d.style.DropdownArrowColor)
	}
}
