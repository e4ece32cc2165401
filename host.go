package uikit

import "image"

// FlipMode selects mirroring for texture blits.
type FlipMode int

const (
	FlipNone FlipMode = iota
	FlipHorizontal
	FlipVertical
	FlipBoth
)

// Texture is a GPU texture owned by the creating renderer.
type Texture interface {
	// Size returns the texture dimensions in pixels.
	Size() (w, h int)

	// Close releases the texture. Using a closed texture is a no-op.
	Close()
}

// Renderer is the drawing surface the toolkit issues commands to.
// Implementations batch commands however they like; the toolkit only
// relies on the painter's-order semantics of these calls.
type Renderer interface {
	// Clear fills the whole output with a color.
	Clear(c Color)

	// FillRect fills a rectangle.
	FillRect(r RectF, c Color)

	// OutlineRect draws a one-pixel rectangle outline.
	OutlineRect(r RectF, c Color)

	// DrawLine draws a one-pixel line segment.
	DrawLine(x1, y1, x2, y2 float32, c Color)

	// DrawPoints draws a set of single points.
	DrawPoints(pts []PointF, c Color)

	// DrawTexture blits a texture. src selects a source sub-rectangle
	// (nil = whole texture). angle is in degrees, rotating around
	// center (nil = dst center). flip mirrors the source.
	DrawTexture(t Texture, src *Rect, dst RectF, angle float64, center *PointF, flip FlipMode)

	// ClipRect returns the active clip rectangle, if any.
	ClipRect() (RectF, bool)

	// SetClipRect restricts subsequent drawing to r.
	SetClipRect(r RectF)

	// ClearClipRect removes the clip restriction.
	ClearClipRect()

	// OutputSize returns the render output size in logical units.
	OutputSize() (w, h int)

	// CreateTexture uploads an RGBA image as a new texture.
	CreateTexture(img *image.RGBA) (Texture, error)
}

// Window is the host window a control tree lives in. Containers pass
// it to children so focus-time operations (IME sessions, pointer
// queries) can reach the host.
type Window interface {
	// ID returns the host window id carried by events.
	ID() uint32

	// Size returns the window size in logical units.
	Size() (w, h int)

	// SizeInPixels returns the framebuffer size.
	SizeInPixels() (w, h int)

	// Position returns the window position on the desktop.
	Position() (x, y int)

	// SetMinimumSize constrains the window's minimum size.
	SetMinimumSize(w, h int)

	// SetFullscreen toggles fullscreen mode.
	SetFullscreen(fullscreen bool) error

	// PointerPosition returns the pointer position in window-logical
	// coordinates, and whether it could be queried.
	PointerPosition() (PointF, bool)

	// Scale returns the logical-to-pixel scale factor.
	Scale() float32

	// TouchToLogical converts normalized touch coordinates to
	// window-logical coordinates.
	TouchToLogical(nx, ny float32) PointF

	// StartTextInput begins a text-input (IME) session.
	StartTextInput()

	// StopTextInput ends the text-input session.
	StopTextInput()

	// SetTextInputArea publishes the screen-space rectangle of the
	// active text field and the caret's pixel offset from its left
	// edge, so the host can place IME candidate windows.
	SetTextInputArea(r Rect, cursor int)
}
