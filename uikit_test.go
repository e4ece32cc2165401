package uikit_test

import (
	"image"
	"runtime"
	"testing"
	"unicode/utf8"

	"github.com/uikit-gl/uikit"
)

// stubText is a fixed-metrics text renderer: every rune is 8px wide,
// ascent 12, descent 4. Deterministic layout without loading a font.
type stubText struct {
	draws []textDraw
}

type textDraw struct {
	text string
	x, y float32
}

func (s *stubText) Measure(text string, size int) (w, h int) {
	return 8 * utf8.RuneCountInString(text), 16
}

func (s *stubText) AscentDescent(size int) (ascent, descent int) { return 12, 4 }

func (s *stubText) RenderCached(text string, c uikit.Color, size int) (uikit.Texture, int, int) {
	w, h := s.Measure(text, size)
	return &fakeTexture{w: w, h: h}, w, h
}

func (s *stubText) RenderImmediate(text string, c uikit.Color, size int) (uikit.Texture, int, int) {
	return s.RenderCached(text, c, size)
}

func (s *stubText) Draw(text string, x, y float32, c uikit.Color, size int) {
	s.draws = append(s.draws, textDraw{text: text, x: x, y: y})
}

func (s *stubText) ClearCache() {}
func (s *stubText) Close()      {}

// setupText installs the stub text renderer for one test.
func setupText(t *testing.T) *stubText {
	t.Helper()
	stub := &stubText{}
	uikit.SetTextRenderer(stub)
	t.Cleanup(func() { uikit.SetTextRenderer(nil) })
	return stub
}

// fakeTexture satisfies uikit.Texture without a GPU.
type fakeTexture struct {
	w, h   int
	closed bool
}

func (f *fakeTexture) Size() (w, h int) { return f.w, f.h }
func (f *fakeTexture) Close()           { f.closed = true }

// recordRenderer records draw calls so tests can assert on what a
// control painted and with which clip active.
type recordRenderer struct {
	w, h    int
	fills   []fillOp
	lines   int
	clip    uikit.RectF
	hasClip bool
}

type fillOp struct {
	rect    uikit.RectF
	c       uikit.Color
	clip    uikit.RectF
	clipped bool
}

func newRecordRenderer(w, h int) *recordRenderer {
	return &recordRenderer{w: w, h: h}
}

func (r *recordRenderer) Clear(c uikit.Color) {}

func (r *recordRenderer) FillRect(rect uikit.RectF, c uikit.Color) {
	r.fills = append(r.fills, fillOp{rect: rect, c: c, clip: r.clip, clipped: r.hasClip})
}

func (r *recordRenderer) OutlineRect(rect uikit.RectF, c uikit.Color) {}

func (r *recordRenderer) DrawLine(x1, y1, x2, y2 float32, c uikit.Color) { r.lines++ }

func (r *recordRenderer) DrawPoints(pts []uikit.PointF, c uikit.Color) {}

func (r *recordRenderer) DrawTexture(t uikit.Texture, src *uikit.Rect, dst uikit.RectF, angle float64, center *uikit.PointF, flip uikit.FlipMode) {
}

func (r *recordRenderer) ClipRect() (uikit.RectF, bool) { return r.clip, r.hasClip }

func (r *recordRenderer) SetClipRect(rect uikit.RectF) {
	r.clip = rect
	r.hasClip = true
}

func (r *recordRenderer) ClearClipRect() {
	r.clip = uikit.RectF{}
	r.hasClip = false
}

func (r *recordRenderer) OutputSize() (w, h int) { return r.w, r.h }

func (r *recordRenderer) CreateTexture(img *image.RGBA) (uikit.Texture, error) {
	b := img.Bounds()
	return &fakeTexture{w: b.Dx(), h: b.Dy()}, nil
}

// fakeWindow satisfies uikit.Window and records IME session calls.
type fakeWindow struct {
	w, h       int
	pointer    uikit.PointF
	pointerOK  bool
	startCalls int
	stopCalls  int
	imeRect    uikit.Rect
	imeCursor  int
	imeCalls   int
}

func newFakeWindow(w, h int) *fakeWindow {
	return &fakeWindow{w: w, h: h}
}

func (f *fakeWindow) ID() uint32                 { return 1 }
func (f *fakeWindow) Size() (w, h int)           { return f.w, f.h }
func (f *fakeWindow) SizeInPixels() (w, h int)   { return f.w, f.h }
func (f *fakeWindow) Position() (x, y int)       { return 0, 0 }
func (f *fakeWindow) SetMinimumSize(w, h int)    {}
func (f *fakeWindow) SetFullscreen(_ bool) error { return nil }

func (f *fakeWindow) PointerPosition() (uikit.PointF, bool) { return f.pointer, f.pointerOK }

func (f *fakeWindow) Scale() float32 { return 1 }

func (f *fakeWindow) TouchToLogical(nx, ny float32) uikit.PointF {
	return uikit.PointF{X: nx * float32(f.w), Y: ny * float32(f.h)}
}

func (f *fakeWindow) StartTextInput() { f.startCalls++ }
func (f *fakeWindow) StopTextInput()  { f.stopCalls++ }

func (f *fakeWindow) SetTextInputArea(r uikit.Rect, cursor int) {
	f.imeRect = r
	f.imeCursor = cursor
	f.imeCalls++
}

// fakeClipboard is an in-memory clipboard provider.
type fakeClipboard struct {
	text string
}

func (f *fakeClipboard) HasText() bool       { return f.text != "" }
func (f *fakeClipboard) GetText() string     { return f.text }
func (f *fakeClipboard) SetText(text string) { f.text = text }

func setupClipboard(t *testing.T) *fakeClipboard {
	t.Helper()
	cb := &fakeClipboard{}
	uikit.SetClipboardProvider(cb)
	t.Cleanup(func() { uikit.SetClipboardProvider(nil) })
	return cb
}

// primaryMod returns the platform shortcut modifier, so clipboard
// shortcuts in tests hit Modifiers.Primary on every OS.
func primaryMod() uikit.Modifiers {
	if runtime.GOOS == "darwin" || runtime.GOOS == "ios" {
		return uikit.ModLSuper
	}
	return uikit.ModLCtrl
}

// Event constructors.

func motion(x, y float32) uikit.Event {
	return uikit.Event{Kind: uikit.EventMouseMotion, X: x, Y: y}
}

func leftDown(x, y float32) uikit.Event {
	return uikit.Event{Kind: uikit.EventMouseButtonDown, Button: uikit.MouseButtonLeft, X: x, Y: y}
}

func leftUp(x, y float32) uikit.Event {
	return uikit.Event{Kind: uikit.EventMouseButtonUp, Button: uikit.MouseButtonLeft, X: x, Y: y}
}

func click(c uikit.Control, x, y float32) {
	c.HandleEvent(leftDown(x, y))
	c.HandleEvent(leftUp(x, y))
}

func keyDown(key uikit.Key, mods uikit.Modifiers) uikit.Event {
	return uikit.Event{Kind: uikit.EventKeyDown, Key: key, Mods: mods}
}

func textInput(s string) uikit.Event {
	return uikit.Event{Kind: uikit.EventTextInput, Text: s}
}

func wheel(dy float32) uikit.Event {
	return uikit.Event{Kind: uikit.EventMouseWheel, WheelY: dy}
}

func approx(a, b float32) bool {
	d := a - b
	return d < 0.5 && d > -0.5
}
