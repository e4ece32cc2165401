package uikit_test

import (
	"testing"

	"github.com/uikit-gl/uikit"
)

func TestButtonSizesFromText(t *testing.T) {
	setupText(t)

	// "OK" is 2 runes at 8px = 16, plus 2*8 padding; height 16 + 2*4.
	b := uikit.NewButton(uikit.Absolute(50, 50), "OK", nil)
	got := b.Bounds()
	want := uikit.RectF{X: 50, Y: 50, W: 32, H: 24}
	if got != want {
		t.Errorf("bounds = %+v, want %+v", got, want)
	}
}

func TestButtonClickFiresOnReleaseInside(t *testing.T) {
	setupText(t)

	clicks := 0
	b := uikit.NewButton(uikit.Absolute(50, 50), "OK", func() { clicks++ })

	b.HandleEvent(leftDown(60, 60))
	if clicks != 0 {
		t.Fatalf("clicked on press, want click on release")
	}
	if !b.Pressed() {
		t.Fatal("button not pressed after left-down inside")
	}
	b.HandleEvent(leftUp(60, 60))
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
	if b.Pressed() {
		t.Error("button still pressed after release")
	}
}

func TestButtonReleaseOutsideDoesNotFire(t *testing.T) {
	setupText(t)

	clicks := 0
	b := uikit.NewButton(uikit.Absolute(50, 50), "OK", func() { clicks++ })

	b.HandleEvent(leftDown(60, 60))
	b.HandleEvent(leftUp(300, 300))
	if clicks != 0 {
		t.Errorf("clicks = %d, want 0 when released outside", clicks)
	}
}

func TestButtonPressOutsideIgnored(t *testing.T) {
	setupText(t)

	clicks := 0
	b := uikit.NewButton(uikit.Absolute(50, 50), "OK", func() { clicks++ })

	click(b, 300, 300)
	if clicks != 0 || b.Pressed() {
		t.Errorf("press outside changed state: clicks=%d pressed=%v", clicks, b.Pressed())
	}
}

func TestButtonTriggerOnPress(t *testing.T) {
	setupText(t)

	clicks := 0
	b := uikit.NewButton(uikit.Absolute(0, 0), "Go", func() { clicks++ }, uikit.TriggerOnPress())

	b.HandleEvent(leftDown(5, 5))
	if clicks != 1 {
		t.Fatalf("clicks = %d after press, want 1", clicks)
	}
	b.HandleEvent(leftUp(5, 5))
	if clicks != 1 {
		t.Errorf("clicks = %d after release, want 1 (no double fire)", clicks)
	}
}

func TestButtonExplicitSizeOverridesContent(t *testing.T) {
	setupText(t)

	b := uikit.NewButton(uikit.Absolute(0, 0).WithSize(200, 60), "OK", nil)
	got := b.Bounds()
	if got.W != 200 || got.H != 60 {
		t.Errorf("bounds = %+v, want explicit 200x60", got)
	}
}

func TestButtonSetTextRelayouts(t *testing.T) {
	setupText(t)

	b := uikit.NewButton(uikit.Absolute(0, 0), "A", nil)
	w1 := b.Bounds().W
	b.SetText("ABCD")
	if b.Bounds().W != w1+24 {
		t.Errorf("width after SetText = %v, want %v", b.Bounds().W, w1+24)
	}
}

func TestButtonRightClickIgnored(t *testing.T) {
	setupText(t)

	clicks := 0
	b := uikit.NewButton(uikit.Absolute(0, 0), "OK", func() { clicks++ })
	ev := uikit.Event{Kind: uikit.EventMouseButtonDown, Button: uikit.MouseButtonRight, X: 5, Y: 5}
	if b.HandleEvent(ev) {
		t.Error("right-click consumed")
	}
	if clicks != 0 {
		t.Errorf("clicks = %d, want 0", clicks)
	}
}
