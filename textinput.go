package uikit

import (
	"strings"
)

const cursorBlinkInterval = 0.53

// TextInput is a single-line editable text field with cursor, selection,
// clipboard support and horizontal scrolling for overflowing content.
type TextInput struct {
	BaseControl

	style    Style
	fontSize int

	text      []rune
	maxLength int
	password  bool
	maskChar  rune

	cursorPos      int // rune index in [0, len(text)]
	selectionStart int // rune index, -1 when no selection
	scrollX        float32

	dragging      bool
	cursorVisible bool
	blinkTimer    float32

	onTextChanged  func(string)
	onEnterPressed func(string)
}

// NewTextInput creates an empty text input at the given position. Width
// defaults to 200 unless the position carries an explicit size.
func NewTextInput(pos PositionParams, opts ...Option) *TextInput {
	o := applyOptions(opts)
	st := resolveStyle(o)
	t := &TextInput{
		style:          st,
		fontSize:       st.FontSize,
		maxLength:      GetOpt(o, OptMaxLength),
		password:       GetOpt(o, OptPassword),
		maskChar:       GetOpt(o, OptMaskChar),
		selectionStart: -1,
		cursorVisible:  true,
	}
	t.pos = pos
	t.RecalculateLayout(0, 0)
	return t
}

// OnTextChanged registers a callback fired after every text mutation.
func (t *TextInput) OnTextChanged(fn func(string)) { t.onTextChanged = fn }

// OnEnterPressed registers a callback fired when Return is pressed while
// the input is focused.
func (t *TextInput) OnEnterPressed(fn func(string)) { t.onEnterPressed = fn }

// Text returns the current content.
func (t *TextInput) Text() string { return string(t.text) }

// SetText replaces the content, truncating to the maximum length, and
// moves the cursor to the end.
func (t *TextInput) SetText(s string) {
	rs := []rune(s)
	if t.maxLength > 0 && len(rs) > t.maxLength {
		rs = rs[:t.maxLength]
	}
	t.text = rs
	t.cursorPos = len(rs)
	t.selectionStart = -1
	t.clampCursorAndScroll()
	t.publishIMEArea()
	if t.onTextChanged != nil {
		t.onTextChanged(string(t.text))
	}
}

// CursorPos returns the cursor position as a rune index.
func (t *TextInput) CursorPos() int { return t.cursorPos }

// SelectionStart returns the selection anchor, or -1 when nothing is
// selected.
func (t *TextInput) SelectionStart() int { return t.selectionStart }

// displayText is what gets measured and drawn; password inputs show the
// mask character instead of the content.
func (t *TextInput) displayText() string {
	if t.password {
		return strings.Repeat(string(t.maskChar), len(t.text))
	}
	return string(t.text)
}

func (t *TextInput) hasSelection() bool {
	return t.selectionStart >= 0 && t.selectionStart != t.cursorPos
}

func (t *TextInput) selectedRange() (int, int) {
	a, b := t.selectionStart, t.cursorPos
	if a > b {
		a, b = b, a
	}
	return a, b
}

func (t *TextInput) RecalculateLayout(parentW, parentH float32) {
	_, textH := measureText("Ay", t.fontSize)
	w := float32(200)
	h := float32(textH) + 2*t.style.PaddingY
	t.resolveBounds(w, h, parentW, parentH)
	t.clampCursorAndScroll()
}

// innerRect is the padded region text is laid out and clipped in.
func (t *TextInput) innerRect() RectF {
	px := t.style.PaddingX
	py := t.style.PaddingY
	return RectF{t.bounds.X + px, t.bounds.Y + py, t.bounds.W - 2*px, t.bounds.H - 2*py}
}

// textXPosition returns the x offset in pixels of the given rune index
// within the display string, before scroll is applied.
func (t *TextInput) textXPosition(index int) float32 {
	disp := []rune(t.displayText())
	if index > len(disp) {
		index = len(disp)
	}
	if index <= 0 {
		return 0
	}
	w, _ := measureText(string(disp[:index]), t.fontSize)
	return float32(w)
}

// indexFromX maps a local x offset (content space, scroll already added)
// to the nearest rune index.
func (t *TextInput) indexFromX(x float32) int {
	disp := []rune(t.displayText())
	prev := float32(0)
	for i := 1; i <= len(disp); i++ {
		w, _ := measureText(string(disp[:i]), t.fontSize)
		mid := (prev + float32(w)) / 2
		if x < mid {
			return i - 1
		}
		prev = float32(w)
	}
	return len(disp)
}

// clampCursorAndScroll keeps the cursor in range and scrolls the content
// so the caret stays within the visible region.
func (t *TextInput) clampCursorAndScroll() {
	if t.cursorPos < 0 {
		t.cursorPos = 0
	}
	if t.cursorPos > len(t.text) {
		t.cursorPos = len(t.text)
	}
	if t.selectionStart > len(t.text) {
		t.selectionStart = len(t.text)
	}

	visibleW := t.innerRect().W
	if visibleW <= 0 {
		t.scrollX = 0
		return
	}
	totalW := t.textXPosition(len(t.text))
	if totalW <= visibleW {
		t.scrollX = 0
	} else if t.scrollX > totalW-visibleW {
		t.scrollX = totalW - visibleW
	}
	if t.scrollX < 0 {
		t.scrollX = 0
	}

	caretX := t.textXPosition(t.cursorPos)
	if caretX < t.scrollX {
		t.scrollX = caretX
	} else if caretX > t.scrollX+visibleW {
		t.scrollX = caretX - visibleW
	}
}

func (t *TextInput) resetBlink() {
	t.cursorVisible = true
	t.blinkTimer = 0
}

func (t *TextInput) deleteSelection() bool {
	if !t.hasSelection() {
		return false
	}
	start, end := t.selectedRange()
	t.text = append(t.text[:start], t.text[end:]...)
	t.cursorPos = start
	t.selectionStart = -1
	return true
}

func (t *TextInput) insertText(s string) bool {
	deleted := t.deleteSelection()
	rs := []rune(s)
	if t.maxLength > 0 {
		room := t.maxLength - len(t.text)
		if room <= 0 {
			return deleted
		}
		if len(rs) > room {
			rs = rs[:room]
		}
	}
	if len(rs) == 0 {
		return deleted
	}
	t.text = append(t.text[:t.cursorPos], append(rs, t.text[t.cursorPos:]...)...)
	t.cursorPos += len(rs)
	return true
}

func (t *TextInput) notifyChanged() {
	t.clampCursorAndScroll()
	t.publishIMEArea()
	t.resetBlink()
	if t.onTextChanged != nil {
		t.onTextChanged(string(t.text))
	}
}

// moveCursor moves the cursor to pos, extending or clearing the
// selection depending on whether Shift is held.
func (t *TextInput) moveCursor(pos int, extend bool) {
	if extend {
		if t.selectionStart < 0 {
			t.selectionStart = t.cursorPos
		}
	} else {
		t.selectionStart = -1
	}
	t.cursorPos = pos
	if t.selectionStart == t.cursorPos {
		t.selectionStart = -1
	}
	t.clampCursorAndScroll()
	t.resetBlink()
}

func (t *TextInput) HandleEvent(ev Event) bool {
	switch ev.Kind {
	case EventMouseMotion:
		if t.dragging {
			local := ev.X - t.innerRect().X + t.scrollX
			t.cursorPos = t.indexFromX(local)
			if t.selectionStart == t.cursorPos {
				t.selectionStart = -1
			}
			t.clampCursorAndScroll()
			return true
		}
		return false

	case EventMouseButtonDown:
		if ev.Button != MouseButtonLeft {
			return false
		}
		p := PointF{ev.X, ev.Y}
		if !t.bounds.Contains(p) {
			if t.focused {
				t.Unfocus(t.win)
			}
			return false
		}
		local := p.X - t.innerRect().X + t.scrollX
		idx := t.indexFromX(local)
		t.cursorPos = idx
		t.selectionStart = idx
		t.dragging = true
		t.resetBlink()
		t.clampCursorAndScroll()
		return true

	case EventMouseButtonUp:
		if t.dragging {
			t.dragging = false
			if t.selectionStart == t.cursorPos {
				t.selectionStart = -1
			}
			return true
		}
		return false

	case EventTextInput:
		if !t.focused {
			return false
		}
		if !t.insertText(ev.Text) {
			return false
		}
		t.notifyChanged()
		return true

	case EventKeyDown:
		if !t.focused {
			return false
		}
		return t.handleKey(ev.Key, ev.Mods)
	}
	return false
}

func (t *TextInput) handleKey(key Key, mods Modifiers) bool {
	shift := mods.Shift()
	primary := mods.Primary()

	switch key {
	case KeyA:
		if primary {
			if len(t.text) > 0 {
				t.selectionStart = 0
				t.cursorPos = len(t.text)
				t.clampCursorAndScroll()
			}
			return true
		}

	case KeyC:
		if primary {
			if t.hasSelection() && !t.password {
				start, end := t.selectedRange()
				ClipboardSetText(string(t.text[start:end]))
			}
			return true
		}

	case KeyX:
		if primary {
			if t.hasSelection() && !t.password {
				start, end := t.selectedRange()
				ClipboardSetText(string(t.text[start:end]))
				t.deleteSelection()
				t.notifyChanged()
			}
			return true
		}

	case KeyV:
		if primary {
			if ClipboardHasText() {
				if t.insertText(ClipboardGetText()) {
					t.notifyChanged()
				}
			}
			return true
		}

	case KeyLeft:
		pos := t.cursorPos
		if pos > 0 {
			if primary {
				pos = findWordBoundaryLeft(t.text, pos)
			} else if t.hasSelection() && !shift {
				pos, _ = t.selectedRange()
			} else {
				pos--
			}
		}
		t.moveCursor(pos, shift)
		return true

	case KeyRight:
		pos := t.cursorPos
		if pos < len(t.text) {
			if primary {
				pos = findWordBoundaryRight(t.text, pos)
			} else if t.hasSelection() && !shift {
				_, pos = t.selectedRange()
			} else {
				pos++
			}
		}
		t.moveCursor(pos, shift)
		return true

	case KeyHome:
		t.moveCursor(0, shift)
		return true

	case KeyEnd:
		t.moveCursor(len(t.text), shift)
		return true

	case KeyBackspace:
		if t.deleteSelection() {
			t.notifyChanged()
		} else if t.cursorPos > 0 {
			t.text = append(t.text[:t.cursorPos-1], t.text[t.cursorPos:]...)
			t.cursorPos--
			t.notifyChanged()
		} else {
			t.resetBlink()
		}
		return true

	case KeyDelete:
		if t.deleteSelection() {
			t.notifyChanged()
		} else if t.cursorPos < len(t.text) {
			t.text = append(t.text[:t.cursorPos], t.text[t.cursorPos+1:]...)
			t.notifyChanged()
		} else {
			t.resetBlink()
		}
		return true

	case KeyReturn:
		if t.onEnterPressed != nil {
			t.onEnterPressed(string(t.text))
		}
		return true
	}
	return false
}

// findWordBoundaryLeft finds the start of the word to the left of pos.
func findWordBoundaryLeft(runes []rune, pos int) int {
	if pos <= 0 {
		return 0
	}
	pos--
	for pos > 0 && isWordSeparator(runes[pos]) {
		pos--
	}
	for pos > 0 && !isWordSeparator(runes[pos-1]) {
		pos--
	}
	return pos
}

// findWordBoundaryRight finds the end of the word to the right of pos.
func findWordBoundaryRight(runes []rune, pos int) int {
	n := len(runes)
	if pos >= n {
		return n
	}
	for pos < n && !isWordSeparator(runes[pos]) {
		pos++
	}
	for pos < n && isWordSeparator(runes[pos]) {
		pos++
	}
	return pos
}

func isWordSeparator(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func (t *TextInput) Focus(win Window) {
	t.BaseControl.Focus(win)
	t.resetBlink()
	if win != nil {
		win.StartTextInput()
	}
	t.publishIMEArea()
}

func (t *TextInput) Unfocus(win Window) {
	t.BaseControl.Unfocus(win)
	t.dragging = false
	if win != nil {
		win.StopTextInput()
	}
}

// publishIMEArea tells the windowing layer where composition UI should
// appear, in screen space.
func (t *TextInput) publishIMEArea() {
	if !t.focused || t.win == nil {
		return
	}
	sr := t.screenRect(t.bounds)
	caret := t.innerRect().X + t.viewOffset.X + t.textXPosition(t.cursorPos) - t.scrollX
	t.win.SetTextInputArea(Rect{int(sr.X), int(sr.Y), int(sr.W), int(sr.H)}, int(caret-sr.X))
}

func (t *TextInput) SetViewOffset(offset PointF) {
	t.BaseControl.SetViewOffset(offset)
	t.publishIMEArea()
}

func (t *TextInput) Update(dt float32) {
	if !t.focused {
		return
	}
	t.blinkTimer += dt
	for t.blinkTimer >= cursorBlinkInterval {
		t.blinkTimer -= cursorBlinkInterval
		t.cursorVisible = !t.cursorVisible
	}
}

func (t *TextInput) IsAnimating() bool { return t.focused }

func (t *TextInput) Draw(r Renderer, offset PointF) {
	rect := t.bounds.Offset(offset.X, offset.Y)
	r.FillRect(rect, t.style.InputBgColor)
	border := t.style.InputBorderColor
	if t.focused {
		border = t.style.InputFocusedBorderColor
	}
	r.OutlineRect(rect, border)

	inner := t.innerRect().Offset(offset.X, offset.Y)
	prevClip, hadClip := r.ClipRect()
	clip := inner
	if hadClip {
		clip = clip.Intersect(prevClip)
	}
	if clip.Empty() {
		return
	}
	r.SetClipRect(clip)

	disp := t.displayText()
	_, textH := measureText(disp, t.fontSize)
	textY := inner.Y + (inner.H-float32(textH))/2
	originX := inner.X - t.scrollX

	if t.hasSelection() {
		start, end := t.selectedRange()
		sx := originX + t.textXPosition(start)
		ex := originX + t.textXPosition(end)
		r.FillRect(RectF{sx, textY, ex - sx, float32(textH)}, t.style.SelectionColor)
	}

	if disp != "" {
		drawText(disp, originX, textY, t.style.TextColor, t.fontSize)
	}

	if t.focused && t.cursorVisible {
		cx := originX + t.textXPosition(t.cursorPos)
		r.FillRect(RectF{cx, textY, 1, float32(textH)}, t.style.CaretColor)
	}

	if hadClip {
		r.SetClipRect(prevClip)
	} else {
		r.ClearClipRect()
	}
}
