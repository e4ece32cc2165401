package uikit

import "runtime"

// Key identifies a non-character key delivered with key-down events.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyReturn
	KeyEscape
	KeyA
	KeyC
	KeyV
	KeyX
	KeyY
	KeyZ
)

// Modifiers is a bitmask of modifier keys held during a key event.
type Modifiers uint16

const (
	ModLCtrl Modifiers = 1 << iota
	ModRCtrl
	ModLShift
	ModRShift
	ModLAlt
	ModRAlt
	ModLSuper
	ModRSuper
)

// Ctrl reports whether either Ctrl key is held.
func (m Modifiers) Ctrl() bool { return m&(ModLCtrl|ModRCtrl) != 0 }

// Shift reports whether either Shift key is held.
func (m Modifiers) Shift() bool { return m&(ModLShift|ModRShift) != 0 }

// Alt reports whether either Alt key is held.
func (m Modifiers) Alt() bool { return m&(ModLAlt|ModRAlt) != 0 }

// Super reports whether either Super (Command/Windows) key is held.
func (m Modifiers) Super() bool { return m&(ModLSuper|ModRSuper) != 0 }

// Primary reports whether the platform's primary shortcut modifier is
// held: Command on Apple platforms, Ctrl elsewhere.
func (m Modifiers) Primary() bool {
	if runtime.GOOS == "darwin" || runtime.GOOS == "ios" {
		return m.Super()
	}
	return m.Ctrl()
}

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// EventKind discriminates Event payloads.
type EventKind int

const (
	EventNone EventKind = iota
	EventQuit
	EventKeyDown
	EventTextInput
	EventTextEditing
	EventMouseMotion
	EventMouseButtonDown
	EventMouseButtonUp
	EventMouseWheel
	EventFingerDown
	EventFingerMotion
	EventFingerUp
	EventWindowResized
)

// Event is a single host input event. Only the fields relevant to
// Kind are populated. Mouse coordinates are window-logical; finger
// coordinates are normalized to [0, 1] and must be converted through
// Window.TouchToLogical.
type Event struct {
	Kind     EventKind
	WindowID uint32

	// EventKeyDown.
	Key  Key
	Mods Modifiers

	// EventTextInput: composed UTF-8 text.
	// EventTextEditing: IME pre-edit text with EditStart/EditLength.
	Text       string
	EditStart  int
	EditLength int

	// EventMouseMotion, EventMouseButtonDown/Up.
	X, Y   float32
	Button MouseButton

	// EventMouseWheel.
	WheelX, WheelY float32

	// EventFingerDown/Motion/Up.
	TouchID        int64
	TouchX, TouchY float32

	// EventWindowResized.
	Width, Height float32
}

// pointerEvent reports whether the event carries a window-logical
// pointer position in X/Y.
func (ev Event) pointerEvent() bool {
	switch ev.Kind {
	case EventMouseMotion, EventMouseButtonDown, EventMouseButtonUp:
		return true
	}
	return false
}

// translated returns a copy of the event with its pointer position
// shifted by (dx, dy). Non-pointer events are returned unchanged.
func (ev Event) translated(dx, dy float32) Event {
	if ev.pointerEvent() {
		ev.X += dx
		ev.Y += dy
	}
	return ev
}
