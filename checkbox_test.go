package uikit_test

import (
	"testing"

	"github.com/uikit-gl/uikit"
)

func TestCheckboxToggleOnClick(t *testing.T) {
	setupText(t)

	var got []bool
	c := uikit.NewCheckbox(uikit.Absolute(0, 0), "Mute", false, func(v bool) { got = append(got, v) })

	click(c, 5, 10)
	if !c.Value() || len(got) != 1 || !got[0] {
		t.Fatalf("after first click: value=%v callbacks=%v", c.Value(), got)
	}
	click(c, 5, 10)
	if c.Value() || len(got) != 2 || got[1] {
		t.Errorf("after second click: value=%v callbacks=%v", c.Value(), got)
	}
}

func TestCheckboxReleaseOutsideKeepsValue(t *testing.T) {
	setupText(t)

	c := uikit.NewCheckbox(uikit.Absolute(0, 0), "Mute", false, nil)
	c.HandleEvent(leftDown(5, 10))
	c.HandleEvent(leftUp(400, 400))
	if c.Value() {
		t.Error("release outside toggled the value")
	}
}

func TestCheckboxSetValueSilent(t *testing.T) {
	setupText(t)

	fired := false
	c := uikit.NewCheckbox(uikit.Absolute(0, 0), "Mute", false, func(bool) { fired = true })
	c.SetValue(true)
	if !c.Value() || fired {
		t.Errorf("SetValue: value=%v fired=%v", c.Value(), fired)
	}
}

func TestCheckboxLayout(t *testing.T) {
	setupText(t)

	// Box side = line height 16; label "AB" = 16px; gap = PaddingX 8.
	c := uikit.NewCheckbox(uikit.Absolute(10, 20), "AB", false, nil)
	got := c.Bounds()
	want := uikit.RectF{X: 10, Y: 20, W: 16 + 8 + 16, H: 16 + 8}
	if got != want {
		t.Errorf("bounds = %+v, want %+v", got, want)
	}
}
