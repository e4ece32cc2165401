package uikit

import "math"

// Rectangle is a non-interactive filled rectangle. Width or height of
// -1 stretches to the parent dimension at layout time.
type Rectangle struct {
	BaseControl
	w, h  float32
	color Color
}

// NewRectangle creates a rectangle of the given size. Pass -1 for
// either dimension to fill the parent.
func NewRectangle(pos PositionParams, w, h float32, c Color) *Rectangle {
	r := &Rectangle{w: w, h: h, color: c}
	r.pos = pos
	r.RecalculateLayout(0, 0)
	return r
}

// SetColor changes the fill color.
func (rc *Rectangle) SetColor(c Color) { rc.color = c }

// RecalculateLayout resolves dynamic dimensions against the parent.
func (rc *Rectangle) RecalculateLayout(parentW, parentH float32) {
	pw, ph := parentW, parentH
	if pw <= 0 || ph <= 0 {
		pw, ph = DisplaySize()
	}
	w, h := rc.w, rc.h
	if w < 0 {
		w = pw
	}
	if h < 0 {
		h = ph
	}
	rc.resolveBounds(w, h, parentW, parentH)
}

// Draw fills the rectangle.
func (rc *Rectangle) Draw(r Renderer, viewOffset PointF) {
	r.FillRect(rc.screenDst(viewOffset), rc.color)
}

func (rc *Rectangle) screenDst(viewOffset PointF) RectF {
	return rc.bounds.Offset(viewOffset.X, viewOffset.Y)
}

// Circle is a non-interactive filled circle.
type Circle struct {
	BaseControl
	radius float32
	color  Color
}

// NewCircle creates a circle. The position parameters locate its
// bounding square of side 2*radius.
func NewCircle(pos PositionParams, radius float32, c Color) *Circle {
	cc := &Circle{radius: radius, color: c}
	cc.pos = pos
	cc.RecalculateLayout(0, 0)
	return cc
}

// RecalculateLayout anchor-resolves the bounding square.
func (cc *Circle) RecalculateLayout(parentW, parentH float32) {
	cc.resolveBounds(cc.radius*2, cc.radius*2, parentW, parentH)
}

// Draw fills the circle with horizontal spans.
func (cc *Circle) Draw(r Renderer, viewOffset PointF) {
	cx := cc.bounds.X + viewOffset.X + cc.radius
	cy := cc.bounds.Y + viewOffset.Y + cc.radius
	fillCircle(r, cx, cy, cc.radius, cc.color)
}

// fillCircle draws a filled circle as horizontal spans. Also used by
// the radio button renderer.
func fillCircle(r Renderer, cx, cy, radius float32, c Color) {
	if radius <= 0 {
		return
	}
	ir := int(radius)
	for dy := -ir; dy <= ir; dy++ {
		fy := float32(dy)
		span := radius*radius - fy*fy
		if span < 0 {
			continue
		}
		half := sqrtf(span)
		r.DrawLine(cx-half, cy+fy, cx+half, cy+fy, c)
	}
}

// outlineCircle draws an unfilled circle as short segments between
// sampled points on the circumference.
func outlineCircle(r Renderer, cx, cy, radius float32, c Color) {
	if radius <= 0 {
		return
	}
	const segments = 24
	prev := PointF{X: cx + radius, Y: cy}
	for i := 1; i <= segments; i++ {
		angle := float32(i) / segments * 2 * math.Pi
		p := PointF{X: cx + radius*cosf(angle), Y: cy + radius*sinf(angle)}
		r.DrawLine(prev.X, prev.Y, p.X, p.Y, c)
		prev = p
	}
}

func sqrtf(x float32) float32 { return float32(math.Sqrt(float64(x))) }
func sinf(x float32) float32  { return float32(math.Sin(float64(x))) }
func cosf(x float32) float32  { return float32(math.Cos(float64(x))) }
