// Package opengl provides an OpenGL 4.1 + GLFW backend for the uikit
// Renderer and Window interfaces.
package opengl

import (
	"math"
	"sync"
)

// Vertex is the GPU vertex layout: position, texture coordinate, and a
// packed 0xAABBGGRR color.
type Vertex struct {
	Pos      [2]float32
	TexCoord [2]float32
	Color    uint32
}

// DrawCmd is a run of triangles sharing one texture and clip rect.
type DrawCmd struct {
	ElemCount    uint32
	ClipRect     [4]float32
	TextureID    uint32
	VertexOffset uint32
	IndexOffset  uint32
}

// noClip is the sentinel clip covering everything.
var noClip = [4]float32{-1e9, -1e9, 1e9, 1e9}

// drawListPool reuses draw list buffers across frames; the whole list
// is rebuilt every frame, so allocations here would dominate.
var drawListPool = sync.Pool{
	New: func() any {
		return &drawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
		}
	},
}

func acquireDrawList() *drawList {
	dl := drawListPool.Get().(*drawList)
	dl.clear()
	return dl
}

func releaseDrawList(dl *drawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// drawList accumulates triangles for one frame, batched by texture and
// clip rect to minimize GPU state changes.
type drawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	currentClip  [4]float32
	textureID    uint32
	cmdOffset    uint32
	idxCmdOffset uint32
}

func (dl *drawList) clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.currentClip = noClip
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// setClip replaces the active clip rect. Subsequent primitives go into
// a fresh command carrying the new clip.
func (dl *drawList) setClip(x1, y1, x2, y2 float32) {
	clip := [4]float32{x1, y1, x2, y2}
	if clip == dl.currentClip {
		return
	}
	dl.currentClip = clip
	dl.splitDraw()
}

func (dl *drawList) clearClip() {
	if dl.currentClip == noClip {
		return
	}
	dl.currentClip = noClip
	dl.splitDraw()
}

// setTexture switches the active texture, closing out the current
// command when it changes.
func (dl *drawList) setTexture(textureID uint32) {
	if dl.textureID == textureID {
		return
	}
	dl.textureID = textureID
	dl.splitDraw()
}

// splitDraw finalizes the current command and starts a new one.
func (dl *drawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

func (dl *drawList) ensureCommand() {
	if len(dl.CmdBuffer) == 0 {
		dl.splitDraw()
	}
}

// addVertices appends vertices and returns their index relative to the
// current command's vertex offset.
func (dl *drawList) addVertices(verts ...Vertex) uint16 {
	dl.ensureCommand()
	startIdx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, verts...)
	return startIdx
}

func (dl *drawList) addIndices(indices ...uint16) {
	dl.IdxBuffer = append(dl.IdxBuffer, indices...)
}

func (dl *drawList) addRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, Color: color},
	)
	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

func (dl *drawList) addRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.addRect(x, y, w, thickness, color)
	dl.addRect(x, y+h-thickness, w, thickness, color)
	dl.addRect(x, y+thickness, thickness, h-2*thickness, color)
	dl.addRect(x+w-thickness, y+thickness, thickness, h-2*thickness, color)
}

// addLine draws a line as a quad with the given thickness.
func (dl *drawList) addLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	invLen := float32(1.0)
	if dx != 0 || dy != 0 {
		invLen = 1.0 / float32(math.Sqrt(float64(dx*dx+dy*dy)))
	}
	nx := -dy * invLen * thickness * 0.5
	ny := dx * invLen * thickness * 0.5

	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x1 + nx, y1 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 + nx, y2 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 - nx, y2 - ny}, Color: color},
		Vertex{Pos: [2]float32{x1 - nx, y1 - ny}, Color: color},
	)
	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// addQuadUV draws an arbitrary textured quad. Corners are given in
// top-left, top-right, bottom-right, bottom-left order.
func (dl *drawList) addQuadUV(corners [4][2]float32, uv [4][2]float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	idx := dl.addVertices(
		Vertex{Pos: corners[0], TexCoord: uv[0], Color: color},
		Vertex{Pos: corners[1], TexCoord: uv[1], Color: color},
		Vertex{Pos: corners[2], TexCoord: uv[2], Color: color},
		Vertex{Pos: corners[3], TexCoord: uv[3], Color: color},
	)
	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// finalize closes out the last command and drops empty ones. Must be
// called before uploading the buffers.
func (dl *drawList) finalize() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
