package uikit

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	_ "image/jpeg" // decoders registered for LoadImage
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Image wraps a GPU texture decoded from an image file. An Image owns
// its texture and must not be copied; Close releases it.
type Image struct {
	tex  Texture
	w, h int
}

// LoadImage decodes the file at path and uploads it as a texture.
func LoadImage(r Renderer, path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}

	// Re-pack to a tight RGBA so the upload stride is predictable.
	b := src.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)

	tex, err := r.CreateTexture(rgba)
	if err != nil {
		return nil, fmt.Errorf("upload image %s: %w", path, err)
	}
	return &Image{tex: tex, w: b.Dx(), h: b.Dy()}, nil
}

// Size returns the native pixel size.
func (img *Image) Size() (w, h int) {
	if img == nil {
		return 0, 0
	}
	return img.w, img.h
}

// Loaded reports whether the image holds a texture.
func (img *Image) Loaded() bool { return img != nil && img.tex != nil }

// Render blits the image at (x, y) scaled by (sx, sy), rotated by
// angle degrees around center (nil = destination center), optionally
// restricted to a source clip and mirrored by flip.
func (img *Image) Render(r Renderer, x, y, sx, sy float32, angle float64, clip *Rect, center *PointF, flip FlipMode) {
	if !img.Loaded() {
		return
	}
	srcW, srcH := img.w, img.h
	if clip != nil {
		srcW, srcH = clip.W, clip.H
	}
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	dst := RectF{X: x, Y: y, W: float32(srcW) * sx, H: float32(srcH) * sy}
	r.DrawTexture(img.tex, clip, dst, angle, center, flip)
}

// Close releases the texture. Subsequent renders are no-ops.
func (img *Image) Close() {
	if img != nil && img.tex != nil {
		img.tex.Close()
		img.tex = nil
	}
}

// ImageControl places an Image in a control tree with anchoring,
// scaling, rotation and flip.
type ImageControl struct {
	BaseControl
	img            *Image
	desiredW       float32
	desiredH       float32
	scaleX, scaleY float32
	angle          float64
	flip           FlipMode
	clip           *Rect
}

// NewImageControl wraps an image. Size resolution: both desired
// dimensions positive — use them independently; exactly one positive
// — derive a uniform scale from it; neither — use the explicit scale
// factors times the native size.
func NewImageControl(pos PositionParams, img *Image, desiredW, desiredH float32) *ImageControl {
	ic := &ImageControl{
		img:      img,
		desiredW: desiredW,
		desiredH: desiredH,
		scaleX:   1,
		scaleY:   1,
	}
	ic.pos = pos
	ic.RecalculateLayout(0, 0)
	return ic
}

// SetScale sets explicit scale factors, used when no desired size is
// given.
func (ic *ImageControl) SetScale(sx, sy float32) {
	ic.scaleX, ic.scaleY = sx, sy
	ic.RecalculateLayout(0, 0)
}

// SetRotation sets the rotation angle in degrees.
func (ic *ImageControl) SetRotation(angle float64) { ic.angle = angle }

// SetFlip sets the mirroring mode.
func (ic *ImageControl) SetFlip(flip FlipMode) { ic.flip = flip }

// SetClip restricts drawing to a source sub-rectangle (nil = whole).
func (ic *ImageControl) SetClip(clip *Rect) {
	ic.clip = clip
	ic.RecalculateLayout(0, 0)
}

// RecalculateLayout resolves the final size, then the position.
func (ic *ImageControl) RecalculateLayout(parentW, parentH float32) {
	srcW, srcH := ic.img.Size()
	if ic.clip != nil {
		srcW, srcH = ic.clip.W, ic.clip.H
	}
	fw, fh := float32(srcW), float32(srcH)

	var w, h float32
	switch {
	case ic.desiredW > 0 && ic.desiredH > 0:
		w, h = ic.desiredW, ic.desiredH
	case ic.desiredW > 0 && fw > 0:
		scale := ic.desiredW / fw
		w, h = ic.desiredW, fh*scale
	case ic.desiredH > 0 && fh > 0:
		scale := ic.desiredH / fh
		w, h = fw*scale, ic.desiredH
	default:
		w, h = fw*ic.scaleX, fh*ic.scaleY
	}

	ic.resolveBounds(w, h, parentW, parentH)
}

// Draw blits the image; not-loaded images refuse to draw.
func (ic *ImageControl) Draw(r Renderer, viewOffset PointF) {
	if !ic.img.Loaded() {
		return
	}
	dst := ic.bounds.Offset(viewOffset.X, viewOffset.Y)
	r.DrawTexture(ic.img.tex, ic.clip, dst, ic.angle, nil, ic.flip)
}
