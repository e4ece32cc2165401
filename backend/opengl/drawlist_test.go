package opengl

import "testing"

const opaqueWhite = 0xFFFFFFFF

func TestDrawListRect(t *testing.T) {
	dl := acquireDrawList()
	defer releaseDrawList(dl)

	dl.addRect(10, 20, 30, 40, opaqueWhite)
	dl.finalize()

	if len(dl.VtxBuffer) != 4 {
		t.Fatalf("vertices = %d, want 4", len(dl.VtxBuffer))
	}
	if len(dl.IdxBuffer) != 6 {
		t.Fatalf("indices = %d, want 6", len(dl.IdxBuffer))
	}
	if len(dl.CmdBuffer) != 1 {
		t.Fatalf("commands = %d, want 1", len(dl.CmdBuffer))
	}
	if dl.CmdBuffer[0].ElemCount != 6 {
		t.Errorf("ElemCount = %d, want 6", dl.CmdBuffer[0].ElemCount)
	}
	got := dl.VtxBuffer[2].Pos
	if got != [2]float32{40, 60} {
		t.Errorf("bottom-right corner = %v, want (40, 60)", got)
	}
}

func TestDrawListSkipsTransparent(t *testing.T) {
	dl := acquireDrawList()
	defer releaseDrawList(dl)

	dl.addRect(0, 0, 10, 10, 0x00FF00FF)
	dl.finalize()
	if len(dl.VtxBuffer) != 0 || len(dl.CmdBuffer) != 0 {
		t.Errorf("transparent rect emitted %d vertices, %d commands",
			len(dl.VtxBuffer), len(dl.CmdBuffer))
	}
}

func TestDrawListSplitsOnTextureChange(t *testing.T) {
	dl := acquireDrawList()
	defer releaseDrawList(dl)

	dl.addRect(0, 0, 10, 10, opaqueWhite)
	dl.setTexture(3)
	dl.addRect(10, 0, 10, 10, opaqueWhite)
	dl.finalize()

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("commands = %d, want 2", len(dl.CmdBuffer))
	}
	if dl.CmdBuffer[0].TextureID != 0 || dl.CmdBuffer[1].TextureID != 3 {
		t.Errorf("texture ids = %d, %d, want 0, 3",
			dl.CmdBuffer[0].TextureID, dl.CmdBuffer[1].TextureID)
	}
	if dl.CmdBuffer[0].ElemCount != 6 || dl.CmdBuffer[1].ElemCount != 6 {
		t.Errorf("elem counts = %d, %d, want 6, 6",
			dl.CmdBuffer[0].ElemCount, dl.CmdBuffer[1].ElemCount)
	}
}

func TestDrawListSplitsOnClipChange(t *testing.T) {
	dl := acquireDrawList()
	defer releaseDrawList(dl)

	dl.addRect(0, 0, 10, 10, opaqueWhite)
	dl.setClip(5, 5, 50, 50)
	dl.addRect(10, 0, 10, 10, opaqueWhite)
	dl.setClip(5, 5, 50, 50) // same clip: no split
	dl.addRect(20, 0, 10, 10, opaqueWhite)
	dl.finalize()

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("commands = %d, want 2", len(dl.CmdBuffer))
	}
	if dl.CmdBuffer[1].ClipRect != [4]float32{5, 5, 50, 50} {
		t.Errorf("clip = %v, want (5, 5, 50, 50)", dl.CmdBuffer[1].ClipRect)
	}
	if dl.CmdBuffer[1].ElemCount != 12 {
		t.Errorf("clipped command ElemCount = %d, want 12", dl.CmdBuffer[1].ElemCount)
	}
}

func TestDrawListFinalizeDropsEmptyCommands(t *testing.T) {
	dl := acquireDrawList()
	defer releaseDrawList(dl)

	dl.setClip(0, 0, 10, 10)
	dl.setTexture(1)
	dl.setTexture(2)
	dl.addRect(0, 0, 5, 5, opaqueWhite)
	dl.finalize()

	if len(dl.CmdBuffer) != 1 {
		t.Fatalf("commands = %d, want 1 after dropping empties", len(dl.CmdBuffer))
	}
	if dl.CmdBuffer[0].TextureID != 2 {
		t.Errorf("texture id = %d, want 2", dl.CmdBuffer[0].TextureID)
	}
}

func TestDrawListIndicesRelativeToCommand(t *testing.T) {
	dl := acquireDrawList()
	defer releaseDrawList(dl)

	dl.addRect(0, 0, 10, 10, opaqueWhite)
	dl.setTexture(1)
	dl.addRect(10, 0, 10, 10, opaqueWhite)
	dl.finalize()

	// The second command draws with a base vertex offset, so its
	// indices restart at zero.
	second := dl.IdxBuffer[6:]
	if second[0] != 0 {
		t.Errorf("first index of second command = %d, want 0", second[0])
	}
	if dl.CmdBuffer[1].VertexOffset != 4 {
		t.Errorf("VertexOffset = %d, want 4", dl.CmdBuffer[1].VertexOffset)
	}
	if dl.CmdBuffer[1].IndexOffset != 6 {
		t.Errorf("IndexOffset = %d, want 6", dl.CmdBuffer[1].IndexOffset)
	}
}

func TestDrawListOutline(t *testing.T) {
	dl := acquireDrawList()
	defer releaseDrawList(dl)

	dl.addRectOutline(0, 0, 100, 50, opaqueWhite, 1)
	dl.finalize()
	if len(dl.VtxBuffer) != 16 {
		t.Errorf("vertices = %d, want 16 (four edge rects)", len(dl.VtxBuffer))
	}
}

func TestDrawListClearResets(t *testing.T) {
	dl := acquireDrawList()
	defer releaseDrawList(dl)

	dl.setClip(0, 0, 10, 10)
	dl.setTexture(5)
	dl.addRect(0, 0, 5, 5, opaqueWhite)
	dl.clear()

	if len(dl.VtxBuffer) != 0 || len(dl.IdxBuffer) != 0 || len(dl.CmdBuffer) != 0 {
		t.Fatal("clear left buffered data")
	}
	dl.addRect(0, 0, 5, 5, opaqueWhite)
	dl.finalize()
	if dl.CmdBuffer[0].TextureID != 0 || dl.CmdBuffer[0].ClipRect != noClip {
		t.Errorf("state carried across clear: %+v", dl.CmdBuffer[0])
	}
}
