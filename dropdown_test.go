package uikit_test

import (
	"testing"

	"github.com/uikit-gl/uikit"
)

// newThemeDropdown builds a dropdown at (10, 10). With the stub metrics
// the main button is 88x24 and each list item is 24px tall.
func newThemeDropdown(onSelect func(int)) *uikit.Dropdown {
	return uikit.NewDropdown(uikit.Absolute(10, 10),
		[]string{"Dark", "Light", "System"}, 0, onSelect)
}

func TestDropdownOpenSelectClose(t *testing.T) {
	setupText(t)

	var calls []int
	d := newThemeDropdown(func(i int) { calls = append(calls, i) })

	if d.IsOpen() {
		t.Fatal("dropdown open before any click")
	}
	d.HandleEvent(leftDown(20, 20))
	if !d.IsOpen() {
		t.Fatal("click on the button did not open the list")
	}
	if d.Bounds().H != 24+3*24 {
		t.Fatalf("open bounds height = %v, want %v", d.Bounds().H, float32(24+3*24))
	}

	// Third item band: y in [34+2*24, 34+3*24).
	d.HandleEvent(leftDown(20, 90))
	if d.IsOpen() {
		t.Error("selection left the list open")
	}
	if d.SelectedIndex() != 2 {
		t.Errorf("selected = %d, want 2", d.SelectedIndex())
	}
	if len(calls) != 1 || calls[0] != 2 {
		t.Errorf("callbacks = %v, want [2]", calls)
	}
	if d.Bounds().H != 24 {
		t.Errorf("closed bounds height = %v, want 24", d.Bounds().H)
	}
}

func TestDropdownClickOutsideCloses(t *testing.T) {
	setupText(t)

	fired := false
	d := newThemeDropdown(func(int) { fired = true })
	d.HandleEvent(leftDown(20, 20))
	d.HandleEvent(leftDown(500, 500))
	if d.IsOpen() {
		t.Error("outside click left the list open")
	}
	if fired || d.SelectedIndex() != 0 {
		t.Errorf("outside click changed selection: fired=%v selected=%d", fired, d.SelectedIndex())
	}
}

func TestDropdownEscapeCloses(t *testing.T) {
	setupText(t)

	d := newThemeDropdown(nil)
	d.HandleEvent(leftDown(20, 20))
	d.HandleEvent(keyDown(uikit.KeyEscape, 0))
	if d.IsOpen() {
		t.Error("Escape left the list open")
	}
}

func TestDropdownButtonTogglesShut(t *testing.T) {
	setupText(t)

	d := newThemeDropdown(nil)
	d.HandleEvent(leftDown(20, 20))
	d.HandleEvent(leftDown(20, 20))
	if d.IsOpen() {
		t.Error("second button click did not close the list")
	}
}

func TestDropdownSelectionClamped(t *testing.T) {
	setupText(t)

	d := uikit.NewDropdown(uikit.Absolute(0, 0), []string{"A", "B"}, 9, nil)
	if d.SelectedIndex() != 1 {
		t.Errorf("selected = %d, want clamp to 1", d.SelectedIndex())
	}
	d.SetSelectedIndex(-5)
	if d.SelectedIndex() != -1 {
		t.Errorf("selected = %d, want clamp to -1", d.SelectedIndex())
	}
}

func TestDropdownWidthFromWidestOption(t *testing.T) {
	setupText(t)

	d := newThemeDropdown(nil)
	// "System" is 48px; plus 2*8 padding plus 16+8 arrow space.
	if d.Bounds().W != 88 {
		t.Errorf("width = %v, want 88", d.Bounds().W)
	}
}
