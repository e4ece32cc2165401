package opengl

import (
	"fmt"
	"image"
	"math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/uikit-gl/uikit"
)

// Renderer implements uikit.Renderer on OpenGL 4.1. Draw calls are
// batched into a draw list and executed on Flush.
type Renderer struct {
	shader    uint32
	vao, vbo  uint32
	ebo       uint32
	projLoc   int32
	texLoc    int32
	useTexLoc int32
	width     int
	height    int

	dl      *drawList
	clip    uikit.RectF
	hasClip bool
}

const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

out vec2 TexCoord;
out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
    Color = aColor;
}
` + "\x00"

const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
in vec4 Color;

out vec4 FragColor;

uniform sampler2D tex;
uniform bool useTexture;

void main() {
    if (useTexture) {
        FragColor = texture(tex, TexCoord) * Color;
    } else {
        FragColor = Color;
    }
}
` + "\x00"

// NewRenderer creates a renderer for a context-current GL window with
// the given logical output size.
func NewRenderer(width, height int) (*Renderer, error) {
	r := &Renderer{
		width:  width,
		height: height,
		dl:     acquireDrawList(),
	}

	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("tex\x00"))
	r.useTexLoc = gl.GetUniformLocation(r.shader, gl.Str("useTexture\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	stride := int32(unsafe.Sizeof(Vertex{}))

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)

	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(Vertex{}.Color))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	return r, nil
}

// Resize updates the logical output size.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

func (r *Renderer) OutputSize() (int, int) { return r.width, r.height }

func (r *Renderer) Clear(c uikit.Color) {
	gl.ClearColor(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (r *Renderer) FillRect(rect uikit.RectF, c uikit.Color) {
	r.dl.setTexture(0)
	r.dl.addRect(rect.X, rect.Y, rect.W, rect.H, c.Packed())
}

func (r *Renderer) OutlineRect(rect uikit.RectF, c uikit.Color) {
	r.dl.setTexture(0)
	r.dl.addRectOutline(rect.X, rect.Y, rect.W, rect.H, c.Packed(), 1)
}

func (r *Renderer) DrawLine(x1, y1, x2, y2 float32, c uikit.Color) {
	r.dl.setTexture(0)
	r.dl.addLine(x1, y1, x2, y2, c.Packed(), 1)
}

func (r *Renderer) DrawPoints(pts []uikit.PointF, c uikit.Color) {
	r.dl.setTexture(0)
	packed := c.Packed()
	for _, p := range pts {
		r.dl.addRect(p.X, p.Y, 1, 1, packed)
	}
}

func (r *Renderer) DrawTexture(t uikit.Texture, src *uikit.Rect, dst uikit.RectF, angle float64, center *uikit.PointF, flip uikit.FlipMode) {
	tex, ok := t.(*glTexture)
	if !ok || tex.id == 0 {
		return
	}

	tw, th := float32(tex.w), float32(tex.h)
	u0, v0, u1, v1 := float32(0), float32(0), float32(1), float32(1)
	if src != nil {
		u0 = float32(src.X) / tw
		v0 = float32(src.Y) / th
		u1 = float32(src.X+src.W) / tw
		v1 = float32(src.Y+src.H) / th
	}
	if flip == uikit.FlipHorizontal || flip == uikit.FlipBoth {
		u0, u1 = u1, u0
	}
	if flip == uikit.FlipVertical || flip == uikit.FlipBoth {
		v0, v1 = v1, v0
	}

	corners := [4][2]float32{
		{dst.X, dst.Y},
		{dst.X + dst.W, dst.Y},
		{dst.X + dst.W, dst.Y + dst.H},
		{dst.X, dst.Y + dst.H},
	}
	if angle != 0 {
		cx := dst.X + dst.W/2
		cy := dst.Y + dst.H/2
		if center != nil {
			cx = dst.X + center.X
			cy = dst.Y + center.Y
		}
		rad := angle * math.Pi / 180
		sin := float32(math.Sin(rad))
		cos := float32(math.Cos(rad))
		for i := range corners {
			dx := corners[i][0] - cx
			dy := corners[i][1] - cy
			corners[i][0] = cx + dx*cos - dy*sin
			corners[i][1] = cy + dx*sin + dy*cos
		}
	}

	r.dl.setTexture(tex.id)
	r.dl.addQuadUV(corners, [4][2]float32{{u0, v0}, {u1, v0}, {u1, v1}, {u0, v1}}, uikit.ColorWhite.Packed())
}

func (r *Renderer) ClipRect() (uikit.RectF, bool) {
	return r.clip, r.hasClip
}

func (r *Renderer) SetClipRect(rect uikit.RectF) {
	r.clip = rect
	r.hasClip = true
	r.dl.setClip(rect.X, rect.Y, rect.X+rect.W, rect.Y+rect.H)
}

func (r *Renderer) ClearClipRect() {
	r.hasClip = false
	r.dl.clearClip()
}

// CreateTexture uploads an RGBA image. The image must be tightly
// packed (stride == 4*width).
func (r *Renderer) CreateTexture(img *image.RGBA) (uikit.Texture, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("texture size %dx%d invalid", w, h)
	}
	if img.Stride != 4*w {
		return nil, fmt.Errorf("texture stride %d not tightly packed for width %d", img.Stride, w)
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &glTexture{id: tex, w: w, h: h}, nil
}

// glTexture is a GPU texture handle.
type glTexture struct {
	id   uint32
	w, h int
}

func (t *glTexture) Size() (int, int) { return t.w, t.h }

func (t *glTexture) Close() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}

// Flush executes the batched draw list and resets it for the next
// frame. GL state touched here is saved and restored so the toolkit
// can share a context with other rendering.
func (r *Renderer) Flush() {
	dl := r.dl
	dl.finalize()
	if len(dl.VtxBuffer) == 0 {
		dl.clear()
		return
	}

	var lastProgram int32
	var lastBlendSrc, lastBlendDst int32
	var lastScissorBox [4]int32
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &lastProgram)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &lastBlendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &lastBlendDst)
	gl.GetIntegerv(gl.SCISSOR_BOX, &lastScissorBox[0])
	blendEnabled := gl.IsEnabled(gl.BLEND)
	depthEnabled := gl.IsEnabled(gl.DEPTH_TEST)
	cullEnabled := gl.IsEnabled(gl.CULL_FACE)
	scissorEnabled := gl.IsEnabled(gl.SCISSOR_TEST)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.UseProgram(r.shader)

	proj := orthoMatrix(0, float32(r.width), float32(r.height), 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.texLoc, 0)

	gl.BindVertexArray(r.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*int(unsafe.Sizeof(Vertex{})),
		gl.Ptr(dl.VtxBuffer), gl.STREAM_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*2,
		gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)

	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount == 0 {
			continue
		}

		// Scissor is in GL coordinates, Y flipped.
		clipX := int32(cmd.ClipRect[0])
		clipY := int32(float32(r.height) - cmd.ClipRect[3])
		clipW := int32(cmd.ClipRect[2] - cmd.ClipRect[0])
		clipH := int32(cmd.ClipRect[3] - cmd.ClipRect[1])
		if clipX < 0 {
			clipW += clipX
			clipX = 0
		}
		if clipY < 0 {
			clipH += clipY
			clipY = 0
		}
		if clipW > int32(r.width) {
			clipW = int32(r.width)
		}
		if clipH > int32(r.height) {
			clipH = int32(r.height)
		}
		if clipW <= 0 || clipH <= 0 {
			continue
		}
		gl.Scissor(clipX, clipY, clipW, clipH)

		if cmd.TextureID != 0 {
			gl.BindTexture(gl.TEXTURE_2D, cmd.TextureID)
			gl.Uniform1i(r.useTexLoc, 1)
		} else {
			gl.Uniform1i(r.useTexLoc, 0)
		}

		gl.DrawElementsBaseVertexWithOffset(
			gl.TRIANGLES,
			int32(cmd.ElemCount),
			gl.UNSIGNED_SHORT,
			uintptr(cmd.IndexOffset)*2,
			int32(cmd.VertexOffset),
		)
	}

	gl.UseProgram(uint32(lastProgram))
	gl.BlendFunc(uint32(lastBlendSrc), uint32(lastBlendDst))
	restoreCap(gl.BLEND, blendEnabled)
	restoreCap(gl.DEPTH_TEST, depthEnabled)
	restoreCap(gl.CULL_FACE, cullEnabled)
	restoreCap(gl.SCISSOR_TEST, scissorEnabled)
	gl.Scissor(lastScissorBox[0], lastScissorBox[1], lastScissorBox[2], lastScissorBox[3])

	gl.BindVertexArray(0)

	dl.clear()
	// Re-apply the active clip so drawing can continue mid-frame.
	if r.hasClip {
		r.dl.setClip(r.clip.X, r.clip.Y, r.clip.X+r.clip.W, r.clip.Y+r.clip.H)
	}
}

func restoreCap(feature uint32, enabled bool) {
	if enabled {
		gl.Enable(feature)
	} else {
		gl.Disable(feature)
	}
}

// Delete releases GL resources.
func (r *Renderer) Delete() {
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
	releaseDrawList(r.dl)
	r.dl = nil
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader := gl.CreateShader(gl.VERTEX_SHADER)
	csource, free := gl.Strs(vertexSource)
	gl.ShaderSource(vertexShader, 1, csource, nil)
	free()
	gl.CompileShader(vertexShader)

	var status int32
	gl.GetShaderiv(vertexShader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		return 0, fmt.Errorf("vertex shader compilation failed: %s", shaderLog(vertexShader))
	}

	fragmentShader := gl.CreateShader(gl.FRAGMENT_SHADER)
	csource, free = gl.Strs(fragmentSource)
	gl.ShaderSource(fragmentShader, 1, csource, nil)
	free()
	gl.CompileShader(fragmentShader)

	gl.GetShaderiv(fragmentShader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		return 0, fmt.Errorf("fragment shader compilation failed: %s", shaderLog(fragmentShader))
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

func shaderLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	log := make([]byte, logLength+1)
	gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
	return string(log)
}

// orthoMatrix creates an orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
