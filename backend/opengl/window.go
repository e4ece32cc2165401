package opengl

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/uikit-gl/uikit"
)

var backendLogger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// Init initializes GLFW. Must be called from the main goroutine before
// any window is created.
func Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	return nil
}

// Terminate shuts GLFW down.
func Terminate() {
	glfw.Terminate()
}

var nextWindowID uint32

// Window wraps a GLFW window, translating its callbacks into uikit
// events and implementing uikit.Window and uikit.ClipboardProvider.
type Window struct {
	win *glfw.Window
	id  uint32

	events      []uikit.Event
	textInput   bool
	shouldClose bool
	lastCursorX float32
	lastCursorY float32
}

// NewWindow creates a visible window with a 4.1 core GL context and
// makes the context current.
func NewWindow(title string, width, height int) (*Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		win.Destroy()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	nextWindowID++
	w := &Window{win: win, id: nextWindowID}

	win.SetKeyCallback(w.keyCallback)
	win.SetCharCallback(w.charCallback)
	win.SetMouseButtonCallback(w.mouseButtonCallback)
	win.SetScrollCallback(w.scrollCallback)
	win.SetCursorPosCallback(w.cursorPosCallback)
	win.SetSizeCallback(w.sizeCallback)
	win.SetCloseCallback(w.closeCallback)

	return w, nil
}

// PollEvents pumps the GLFW event loop and returns the events queued
// since the last call.
func (w *Window) PollEvents() []uikit.Event {
	glfw.PollEvents()
	evs := w.events
	w.events = nil
	return evs
}

// ShouldClose reports whether the user requested the window to close.
func (w *Window) ShouldClose() bool {
	return w.shouldClose || w.win.ShouldClose()
}

// SwapBuffers presents the rendered frame.
func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

// Destroy closes the window.
func (w *Window) Destroy() {
	w.win.Destroy()
}

func (w *Window) push(ev uikit.Event) {
	ev.WindowID = w.id
	w.events = append(w.events, ev)
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}
	k := glfwKeyToKey(key)
	if k == uikit.KeyNone {
		return
	}
	w.push(uikit.Event{
		Kind: uikit.EventKeyDown,
		Key:  k,
		Mods: glfwModsToModifiers(mods),
	})
}

func (w *Window) charCallback(_ *glfw.Window, char rune) {
	if !w.textInput {
		return
	}
	w.push(uikit.Event{Kind: uikit.EventTextInput, Text: string(char)})
}

func (w *Window) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	b := glfwMouseButtonToButton(button)
	if b < 0 {
		return
	}
	kind := uikit.EventMouseButtonDown
	if action == glfw.Release {
		kind = uikit.EventMouseButtonUp
	} else if action != glfw.Press {
		return
	}
	w.push(uikit.Event{
		Kind:   kind,
		Button: b,
		X:      w.lastCursorX,
		Y:      w.lastCursorY,
	})
}

func (w *Window) scrollCallback(_ *glfw.Window, xoff, yoff float64) {
	w.push(uikit.Event{
		Kind:   uikit.EventMouseWheel,
		WheelX: float32(xoff),
		WheelY: float32(yoff),
	})
}

func (w *Window) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	w.lastCursorX = float32(xpos)
	w.lastCursorY = float32(ypos)
	w.push(uikit.Event{
		Kind: uikit.EventMouseMotion,
		X:    w.lastCursorX,
		Y:    w.lastCursorY,
	})
}

func (w *Window) sizeCallback(_ *glfw.Window, width, height int) {
	w.push(uikit.Event{
		Kind:   uikit.EventWindowResized,
		Width:  float32(width),
		Height: float32(height),
	})
}

func (w *Window) closeCallback(_ *glfw.Window) {
	w.shouldClose = true
	w.push(uikit.Event{Kind: uikit.EventQuit})
}

// uikit.Window implementation.

func (w *Window) ID() uint32 { return w.id }

func (w *Window) Size() (int, int) {
	return w.win.GetSize()
}

func (w *Window) SizeInPixels() (int, int) {
	return w.win.GetFramebufferSize()
}

func (w *Window) Position() (int, int) {
	return w.win.GetPos()
}

func (w *Window) SetMinimumSize(width, height int) {
	w.win.SetSizeLimits(width, height, glfw.DontCare, glfw.DontCare)
}

func (w *Window) SetFullscreen(fullscreen bool) error {
	if fullscreen {
		monitor := glfw.GetPrimaryMonitor()
		if monitor == nil {
			return fmt.Errorf("no primary monitor")
		}
		mode := monitor.GetVideoMode()
		w.win.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
		return nil
	}
	width, height := w.win.GetSize()
	w.win.SetMonitor(nil, 100, 100, width, height, glfw.DontCare)
	return nil
}

func (w *Window) PointerPosition() (uikit.PointF, bool) {
	x, y := w.win.GetCursorPos()
	return uikit.PointF{X: float32(x), Y: float32(y)}, true
}

func (w *Window) Scale() float32 {
	sx, _ := w.win.GetContentScale()
	return sx
}

func (w *Window) TouchToLogical(nx, ny float32) uikit.PointF {
	width, height := w.win.GetSize()
	return uikit.PointF{X: nx * float32(width), Y: ny * float32(height)}
}

func (w *Window) StartTextInput() {
	w.textInput = true
}

func (w *Window) StopTextInput() {
	w.textInput = false
}

// SetTextInputArea records the IME composition area. GLFW 3.3 has no
// IME placement API, so this only logs at debug level.
func (w *Window) SetTextInputArea(r uikit.Rect, cursor int) {
	backendLogger.Debug("text input area", "x", r.X, "y", r.Y, "w", r.W, "h", r.H, "cursor", cursor)
}

// uikit.ClipboardProvider implementation.

func (w *Window) HasText() bool {
	return w.win.GetClipboardString() != ""
}

func (w *Window) GetText() string {
	return w.win.GetClipboardString()
}

func (w *Window) SetText(text string) {
	w.win.SetClipboardString(text)
}

func glfwKeyToKey(key glfw.Key) uikit.Key {
	switch key {
	case glfw.KeyTab:
		return uikit.KeyTab
	case glfw.KeyLeft:
		return uikit.KeyLeft
	case glfw.KeyRight:
		return uikit.KeyRight
	case glfw.KeyUp:
		return uikit.KeyUp
	case glfw.KeyDown:
		return uikit.KeyDown
	case glfw.KeyPageUp:
		return uikit.KeyPageUp
	case glfw.KeyPageDown:
		return uikit.KeyPageDown
	case glfw.KeyHome:
		return uikit.KeyHome
	case glfw.KeyEnd:
		return uikit.KeyEnd
	case glfw.KeyInsert:
		return uikit.KeyInsert
	case glfw.KeyDelete:
		return uikit.KeyDelete
	case glfw.KeyBackspace:
		return uikit.KeyBackspace
	case glfw.KeySpace:
		return uikit.KeySpace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return uikit.KeyReturn
	case glfw.KeyEscape:
		return uikit.KeyEscape
	case glfw.KeyA:
		return uikit.KeyA
	case glfw.KeyC:
		return uikit.KeyC
	case glfw.KeyV:
		return uikit.KeyV
	case glfw.KeyX:
		return uikit.KeyX
	case glfw.KeyY:
		return uikit.KeyY
	case glfw.KeyZ:
		return uikit.KeyZ
	default:
		return uikit.KeyNone
	}
}

func glfwModsToModifiers(mods glfw.ModifierKey) uikit.Modifiers {
	var m uikit.Modifiers
	if mods&glfw.ModControl != 0 {
		m |= uikit.ModLCtrl
	}
	if mods&glfw.ModShift != 0 {
		m |= uikit.ModLShift
	}
	if mods&glfw.ModAlt != 0 {
		m |= uikit.ModLAlt
	}
	if mods&glfw.ModSuper != 0 {
		m |= uikit.ModLSuper
	}
	return m
}

func glfwMouseButtonToButton(button glfw.MouseButton) uikit.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return uikit.MouseButtonLeft
	case glfw.MouseButtonRight:
		return uikit.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return uikit.MouseButtonMiddle
	default:
		return -1
	}
}
