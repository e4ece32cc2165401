package uikit_test

import (
	"testing"

	"github.com/uikit-gl/uikit"
)

func TestNewTextServiceNoUsableFont(t *testing.T) {
	r := newRecordRenderer(800, 600)
	_, err := uikit.NewTextService(r, "testdata/does-not-exist.ttf")
	if err == nil {
		t.Fatal("expected an error when no font path is usable")
	}
}

// Without a text service controls degrade to zero text metrics instead
// of panicking.
func TestControlsDegradeWithoutTextService(t *testing.T) {
	uikit.SetTextRenderer(nil)

	b := uikit.NewButton(uikit.Absolute(0, 0), "OK", nil)
	got := b.Bounds()
	if got.W != 16 || got.H != 8 { // padding only
		t.Errorf("bounds = %+v, want padding-only 16x8", got)
	}

	r := newRecordRenderer(800, 600)
	b.Draw(r, uikit.PointF{}) // must not panic
	if len(r.fills) == 0 {
		t.Error("button drew nothing without a text service")
	}
}

func TestTextSystemInstall(t *testing.T) {
	stub := setupText(t)
	if uikit.TextSystem() != uikit.TextRenderer(stub) {
		t.Error("TextSystem did not return the installed renderer")
	}
}
