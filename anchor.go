package uikit

// Anchor names a reference point within a parent rectangle.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorTopCenter
	AnchorTopRight
	AnchorCenterLeft
	AnchorCenter
	AnchorCenterRight
	AnchorBottomLeft
	AnchorBottomCenter
	AnchorBottomRight
)

// PositionParams describes where a control sits inside its parent:
// either at an absolute content-space point, or attached to one of the
// nine anchors with an offset. W and H, when positive, override the
// control's content-derived size; zero means "size from content".
type PositionParams struct {
	Anchored bool

	// Absolute mode.
	X, Y float32

	// Anchored mode.
	Anchor           Anchor
	OffsetX, OffsetY float32

	// Optional explicit size. Negative values are treated as zero.
	W, H float32
}

// Absolute places a control at a fixed content-space position.
func Absolute(x, y float32) PositionParams {
	return PositionParams{X: x, Y: y}
}

// Anchored attaches a control to a parent anchor with an offset.
func Anchored(anchor Anchor, offsetX, offsetY float32) PositionParams {
	return PositionParams{Anchored: true, Anchor: anchor, OffsetX: offsetX, OffsetY: offsetY}
}

// WithSize returns a copy with an explicit width and height.
func (p PositionParams) WithSize(w, h float32) PositionParams {
	p.W = w
	p.H = h
	return p
}

// displayW/displayH hold the live window size used as a fallback when
// a parent size is unknown. Backends update them on resize.
var (
	displayW float32 = 800
	displayH float32 = 600
)

// SetDisplaySize records the live window size. ResolvePosition falls
// back to it when called with non-positive parent dimensions, and the
// retained controls use it when laid out without an explicit parent.
func SetDisplaySize(w, h float32) {
	displayW, displayH = w, h
}

// DisplaySize returns the last recorded window size.
func DisplaySize() (w, h float32) {
	return displayW, displayH
}

// ResolvePosition computes the top-left content-space position of an
// element of size (eW, eH) inside a parent of size (pW, pH). Anchored
// positions align the element's matching corner or center with the
// anchor point, then add the offset. Non-positive parent dimensions
// fall back to the live window size; if that is also invalid they
// clamp to 1 and a diagnostic is logged.
func ResolvePosition(p PositionParams, eW, eH, pW, pH float32) PointF {
	if !p.Anchored {
		return PointF{X: p.X, Y: p.Y}
	}

	if pW <= 0 {
		pW = displayW
	}
	if pH <= 0 {
		pH = displayH
	}
	if pW <= 0 || pH <= 0 {
		uiLogger.Warn("ResolvePosition: invalid parent size, clamping to 1",
			"parentW", pW, "parentH", pH)
		pW = maxf(pW, 1)
		pH = maxf(pH, 1)
	}

	var x, y float32
	switch p.Anchor {
	case AnchorTopLeft, AnchorCenterLeft, AnchorBottomLeft:
		x = 0
	case AnchorTopCenter, AnchorCenter, AnchorBottomCenter:
		x = pW/2 - eW/2
	case AnchorTopRight, AnchorCenterRight, AnchorBottomRight:
		x = pW - eW
	}
	switch p.Anchor {
	case AnchorTopLeft, AnchorTopCenter, AnchorTopRight:
		y = 0
	case AnchorCenterLeft, AnchorCenter, AnchorCenterRight:
		y = pH/2 - eH/2
	case AnchorBottomLeft, AnchorBottomCenter, AnchorBottomRight:
		y = pH - eH
	}

	return PointF{X: x + p.OffsetX, Y: y + p.OffsetY}
}
