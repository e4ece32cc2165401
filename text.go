package uikit

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// TextRenderer is the text capability controls draw through. The
// concrete implementation is TextService; tests substitute a
// fixed-advance double via SetTextRenderer.
type TextRenderer interface {
	// Measure returns the pixel extent of text at a point size.
	Measure(text string, size int) (w, h int)

	// AscentDescent returns the font's ascent and descent in pixels.
	AscentDescent(size int) (ascent, descent int)

	// RenderCached renders text into a texture owned by the cache.
	// Returns nil and zero dimensions on failure.
	RenderCached(text string, c Color, size int) (Texture, int, int)

	// RenderImmediate renders text into a texture owned by the caller.
	RenderImmediate(text string, c Color, size int) (Texture, int, int)

	// Draw renders (cached) and blits text at (x, y).
	Draw(text string, x, y float32, c Color, size int)

	// ClearCache destroys all cached textures and closes all faces.
	ClearCache()

	// Close releases the service.
	Close()
}

// textService is the process-wide text renderer. Controls degrade to
// zero measurements and skipped draws while it is nil.
var textService TextRenderer

// InitText locates a font and installs the default text service.
// Explicit paths are tried first, then fonts/, assets/fonts/, and
// platform system directories. An error is returned only when no font
// can be found at all; the host is expected to escalate it.
func InitText(r Renderer, paths ...string) error {
	svc, err := NewTextService(r, paths...)
	if err != nil {
		return err
	}
	textService = svc
	return nil
}

// SetTextRenderer replaces the process-wide text service.
func SetTextRenderer(t TextRenderer) {
	textService = t
}

// TextSystem returns the installed text service, or nil.
func TextSystem() TextRenderer {
	return textService
}

// Nil-safe package helpers used by controls.

func measureText(text string, size int) (w, h int) {
	if textService == nil {
		return 0, 0
	}
	return textService.Measure(text, size)
}

func textAscentDescent(size int) (ascent, descent int) {
	if textService == nil {
		return 0, 0
	}
	return textService.AscentDescent(size)
}

func textLineHeight(size int) float32 {
	a, d := textAscentDescent(size)
	return float32(a + d)
}

func drawText(text string, x, y float32, c Color, size int) {
	if textService == nil || text == "" {
		return
	}
	textService.Draw(text, x, y, c, size)
}

// cachedText is one entry in the text texture cache.
type cachedText struct {
	tex  Texture
	w, h int
}

// TextService renders TTF text through a host renderer. It owns one
// parsed font, one face per requested size, and a texture per
// (text, size, color) triple. Not safe for concurrent use; call it
// from the thread driving the renderer.
type TextService struct {
	renderer Renderer
	fontPath string
	font     *opentype.Font
	faces    map[int]font.Face
	cache    map[string]cachedText
}

// defaultFontSearch lists the locations probed when no explicit path
// is given.
func defaultFontSearch() []string {
	paths := []string{
		"fonts/DejaVuSans.ttf",
		"assets/fonts/DejaVuSans.ttf",
		"fonts/default.ttf",
		"assets/fonts/default.ttf",
	}
	switch runtime.GOOS {
	case "darwin":
		paths = append(paths,
			"/System/Library/Fonts/Supplemental/Arial.ttf",
			"/Library/Fonts/Arial.ttf")
	case "windows":
		paths = append(paths,
			`C:\Windows\Fonts\arial.ttf`,
			`C:\Windows\Fonts\segoeui.ttf`)
	default:
		paths = append(paths,
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/TTF/DejaVuSans.ttf",
			"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf")
	}
	return paths
}

// NewTextService parses the first usable font from paths (or the
// default search list) and returns a ready service.
func NewTextService(r Renderer, paths ...string) (*TextService, error) {
	candidates := paths
	if len(candidates) == 0 {
		candidates = defaultFontSearch()
	}

	var lastErr error
	for _, p := range candidates {
		data, err := os.ReadFile(filepath.Clean(p))
		if err != nil {
			lastErr = err
			continue
		}
		ft, err := opentype.Parse(data)
		if err != nil {
			lastErr = fmt.Errorf("parse font %s: %w", p, err)
			uiLogger.Warn("text: unparsable font, skipping", "path", p, "err", err)
			continue
		}
		return &TextService{
			renderer: r,
			fontPath: p,
			font:     ft,
			faces:    make(map[int]font.Face),
			cache:    make(map[string]cachedText),
		}, nil
	}
	if lastErr == nil {
		lastErr = os.ErrNotExist
	}
	return nil, fmt.Errorf("no usable font found: %w", lastErr)
}

// Face returns the cached face for a point size, opening it on first
// request. Returns nil on failure.
func (s *TextService) Face(size int) font.Face {
	if s == nil || s.font == nil {
		return nil
	}
	if size <= 0 {
		size = 16
	}
	if f, ok := s.faces[size]; ok {
		return f
	}
	face, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size: float64(size), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		uiLogger.Warn("text: face creation failed", "size", size, "err", err)
		return nil
	}
	s.faces[size] = face
	return face
}

// Measure returns the pixel extent of text at a point size. Width is
// the advance width; height is ascent plus descent.
func (s *TextService) Measure(text string, size int) (w, h int) {
	face := s.Face(size)
	if face == nil {
		return 0, 0
	}
	adv := font.MeasureString(face, text)
	m := face.Metrics()
	return adv.Ceil(), (m.Ascent + m.Descent).Ceil()
}

// AscentDescent returns the face metrics in pixels.
func (s *TextService) AscentDescent(size int) (ascent, descent int) {
	face := s.Face(size)
	if face == nil {
		return 0, 0
	}
	m := face.Metrics()
	return m.Ascent.Ceil(), m.Descent.Ceil()
}

// cacheKey builds the lookup key. Color is part of the key so the same
// string drawn in two colors does not thrash the cache.
func cacheKey(text string, size int, c Color) string {
	return text + "|" + strconv.Itoa(size) + "|" + strconv.FormatUint(uint64(c.Packed()), 16)
}

// RenderCached returns a cached texture for the string, rendering it
// on a miss. The texture stays owned by the cache.
func (s *TextService) RenderCached(text string, c Color, size int) (Texture, int, int) {
	if s == nil {
		return nil, 0, 0
	}
	key := cacheKey(text, size, c)
	if e, ok := s.cache[key]; ok {
		return e.tex, e.w, e.h
	}
	tex, w, h := s.RenderImmediate(text, c, size)
	if tex == nil {
		return nil, 0, 0
	}
	s.cache[key] = cachedText{tex: tex, w: w, h: h}
	return tex, w, h
}

// RenderImmediate renders the string into a fresh texture the caller
// owns and must Close.
func (s *TextService) RenderImmediate(text string, c Color, size int) (Texture, int, int) {
	if s == nil || s.renderer == nil || text == "" {
		return nil, 0, 0
	}
	face := s.Face(size)
	if face == nil {
		return nil, 0, 0
	}

	w, h := s.Measure(text, size)
	if w <= 0 || h <= 0 {
		return nil, 0, 0
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	m := face.Metrics()
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}),
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: m.Ascent},
	}
	d.DrawString(text)

	tex, err := s.renderer.CreateTexture(img)
	if err != nil {
		uiLogger.Warn("text: texture creation failed", "err", err)
		return nil, 0, 0
	}
	return tex, w, h
}

// Draw renders (through the cache) and blits text at (x, y).
func (s *TextService) Draw(text string, x, y float32, c Color, size int) {
	tex, w, h := s.RenderCached(text, c, size)
	if tex == nil {
		return
	}
	s.renderer.DrawTexture(tex, nil, RectF{X: x, Y: y, W: float32(w), H: float32(h)}, 0, nil, FlipNone)
}

// ClearCache destroys every cached texture and closes every face.
func (s *TextService) ClearCache() {
	if s == nil {
		return
	}
	for k, e := range s.cache {
		if e.tex != nil {
			e.tex.Close()
		}
		delete(s.cache, k)
	}
	for size, face := range s.faces {
		face.Close()
		delete(s.faces, size)
	}
}

// Close releases the service's resources.
func (s *TextService) Close() {
	s.ClearCache()
}
