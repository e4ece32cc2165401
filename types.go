// Package uikit is a hybrid retained/immediate-mode widget toolkit
// drawn through a host-provided renderer. Retained controls are
// long-lived objects implementing the Control interface; the
// immediate-mode mirror (ImButton, ImSlider, ...) stores per-id state
// in process-wide maps so one call per frame handles layout, input
// and drawing.
package uikit

// Color is an 8-bit-per-channel RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Packed returns the color packed as 0xAABBGGRR, the layout the
// vertex pipeline expects.
func (c Color) Packed() uint32 {
	return uint32(c.A)<<24 | uint32(c.B)<<16 | uint32(c.G)<<8 | uint32(c.R)
}

// WithAlpha returns the color with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color with explicit alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// UnpackColor converts a packed 0xAABBGGRR value back to a Color.
func UnpackColor(v uint32) Color {
	return Color{R: uint8(v), G: uint8(v >> 8), B: uint8(v >> 16), A: uint8(v >> 24)}
}

// Common colors.
var (
	ColorWhite       = Color{255, 255, 255, 255}
	ColorBlack       = Color{0, 0, 0, 255}
	ColorRed         = Color{255, 0, 0, 255}
	ColorGreen       = Color{0, 255, 0, 255}
	ColorBlue        = Color{0, 0, 255, 255}
	ColorYellow      = Color{255, 255, 0, 255}
	ColorCyan        = Color{0, 255, 255, 255}
	ColorGray        = Color{128, 128, 128, 255}
	ColorTransparent = Color{0, 0, 0, 0}
)

// Point is an integer 2D point.
type Point struct {
	X, Y int
}

// PointF is a floating-point 2D point or offset.
type PointF struct {
	X, Y float32
}

// Add returns the sum of two points.
func (p PointF) Add(other PointF) PointF {
	return PointF{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference of two points.
func (p PointF) Sub(other PointF) PointF {
	return PointF{X: p.X - other.X, Y: p.Y - other.Y}
}

// Rect is an integer rectangle. W and H are non-negative.
type Rect struct {
	X, Y, W, H int
}

// RectF is a floating-point rectangle with half-open right and bottom
// edges for hit testing.
type RectF struct {
	X, Y, W, H float32
}

// Contains reports whether p lies inside the rectangle. The right and
// bottom edges are exclusive.
func (r RectF) Contains(p PointF) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects reports whether two rectangles overlap.
func (r RectF) Intersects(other RectF) bool {
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
}

// Intersect returns the overlap of two rectangles. A rectangle with
// zero or negative width/height means the rectangles do not overlap.
func (r RectF) Intersect(other RectF) RectF {
	x1 := maxf(r.X, other.X)
	y1 := maxf(r.Y, other.Y)
	x2 := minf(r.X+r.W, other.X+other.W)
	y2 := minf(r.Y+r.H, other.Y+other.H)
	return RectF{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Empty reports whether the rectangle has no area.
func (r RectF) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Union returns the smallest rectangle containing both rectangles.
func (r RectF) Union(other RectF) RectF {
	if r.Empty() {
		return other
	}
	if other.Empty() {
		return r
	}
	x1 := minf(r.X, other.X)
	y1 := minf(r.Y, other.Y)
	x2 := maxf(r.X+r.W, other.X+other.W)
	y2 := maxf(r.Y+r.H, other.Y+other.H)
	return RectF{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Offset returns the rectangle translated by (dx, dy).
func (r RectF) Offset(dx, dy float32) RectF {
	return RectF{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// maxf returns the maximum of two float32 values.
func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// minf returns the minimum of two float32 values.
func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
