package uikit_test

import (
	"testing"

	"github.com/uikit-gl/uikit"
)

// newSizeGroup builds a three-option group bound to sel with rows 30px
// apart. Each row is 16px of circle plus text, 24px tall.
func newSizeGroup(sel *int, onChange func(int)) *uikit.RadioButtonGroup {
	g := uikit.NewRadioButtonGroup(sel, onChange)
	labels := []string{"Small", "Medium", "Large"}
	for i, l := range labels {
		g.AddOption(uikit.Absolute(0, float32(30*i)), l, i)
	}
	return g
}

func TestRadioGroupSelection(t *testing.T) {
	setupText(t)

	sel := -1
	var calls []int
	g := newSizeGroup(&sel, func(v int) { calls = append(calls, v) })

	g.HandleEvent(leftDown(5, 35)) // second option
	if sel != 1 {
		t.Fatalf("selection = %d, want 1", sel)
	}
	if len(calls) != 1 || calls[0] != 1 {
		t.Fatalf("callbacks = %v, want [1]", calls)
	}

	// Clicking the already-selected option must not re-fire.
	g.HandleEvent(leftDown(5, 35))
	if len(calls) != 1 {
		t.Errorf("callbacks = %v, want exactly one", calls)
	}

	g.HandleEvent(leftDown(5, 65))
	if sel != 2 || len(calls) != 2 || calls[1] != 2 {
		t.Errorf("selection = %d, callbacks = %v", sel, calls)
	}
}

func TestRadioGroupExternalBinding(t *testing.T) {
	setupText(t)

	sel := 2
	g := newSizeGroup(&sel, nil)
	if g.Selected() != 2 {
		t.Fatalf("Selected() = %d, want the bound value 2", g.Selected())
	}

	// Writes through the external int are seen immediately.
	sel = 0
	if g.Selected() != 0 {
		t.Errorf("Selected() = %d after external write, want 0", g.Selected())
	}
}

func TestRadioGroupNilBindingUsesInternal(t *testing.T) {
	setupText(t)

	g := uikit.NewRadioButtonGroup(nil, nil)
	g.AddOption(uikit.Absolute(0, 0), "Only", 7)
	if g.Selected() != -1 {
		t.Fatalf("initial selection = %d, want -1", g.Selected())
	}
	g.HandleEvent(leftDown(5, 5))
	if g.Selected() != 7 {
		t.Errorf("selection = %d, want 7", g.Selected())
	}
}

func TestRadioGroupBoundsUnion(t *testing.T) {
	setupText(t)

	sel := -1
	g := newSizeGroup(&sel, nil)
	b := g.Bounds()
	// Tallest extent: third row at y=60, 24px tall. Widest label is
	// "Medium": circle 16 + gap 8 + 48.
	if b.X != 0 || b.Y != 0 || b.W != 72 || b.H != 84 {
		t.Errorf("union bounds = %+v", b)
	}
}
