package uikit_test

import (
	"testing"

	"github.com/uikit-gl/uikit"
)

// Default slider geometry: 150x14 bounds, 14px thumb, 136px of travel.

func TestSliderThumbDrag(t *testing.T) {
	setupText(t)

	var got []float32
	s := uikit.NewSlider(uikit.Absolute(0, 0), 0, 100, 50, func(v float32) { got = append(got, v) })

	// Thumb center at 50%: x = 68..82.
	s.HandleEvent(leftDown(75, 7))
	if !s.Grabbed() {
		t.Fatal("thumb press did not grab")
	}
	s.HandleEvent(motion(143, 7)) // 7 + full travel
	if s.Value() != 100 {
		t.Errorf("value = %v, want 100", s.Value())
	}
	s.HandleEvent(leftUp(143, 7))
	if s.Grabbed() {
		t.Error("still grabbed after release")
	}
	if len(got) == 0 || got[len(got)-1] != 100 {
		t.Errorf("callbacks = %v, want last 100", got)
	}

	// Released: motion no longer drags.
	s.HandleEvent(motion(7, 7))
	if s.Value() != 100 {
		t.Errorf("value changed after release: %v", s.Value())
	}
}

func TestSliderTrackClickJumps(t *testing.T) {
	setupText(t)

	s := uikit.NewSlider(uikit.Absolute(0, 0), 0, 100, 50, nil)
	s.HandleEvent(leftDown(7, 7)) // left end of the travel
	if s.Value() != 0 {
		t.Errorf("value = %v, want 0", s.Value())
	}
}

func TestSliderDragClampsToRange(t *testing.T) {
	setupText(t)

	s := uikit.NewSlider(uikit.Absolute(0, 0), 0, 100, 50, nil)
	s.HandleEvent(leftDown(75, 7))
	s.HandleEvent(motion(-500, 7))
	if s.Value() != 0 {
		t.Errorf("value = %v, want clamp to 0", s.Value())
	}
	s.HandleEvent(motion(500, 7))
	if s.Value() != 100 {
		t.Errorf("value = %v, want clamp to 100", s.Value())
	}
}

func TestSliderCallbackOnlyOnChange(t *testing.T) {
	setupText(t)

	calls := 0
	s := uikit.NewSlider(uikit.Absolute(0, 0), 0, 100, 0, func(float32) { calls++ })
	s.HandleEvent(leftDown(7, 7)) // grab the thumb
	s.HandleEvent(motion(7, 7))   // drag without moving
	if calls != 0 {
		t.Errorf("callback fired %d times for an unchanged value", calls)
	}
	s.HandleEvent(motion(75, 7))
	if calls != 1 {
		t.Errorf("callback fired %d times after one change", calls)
	}
}

func TestSliderInitialValueClamped(t *testing.T) {
	setupText(t)

	s := uikit.NewSlider(uikit.Absolute(0, 0), 10, 20, 99, nil)
	if s.Value() != 20 {
		t.Errorf("value = %v, want 20", s.Value())
	}
	s.SetValue(-3)
	if s.Value() != 10 {
		t.Errorf("value = %v, want 10", s.Value())
	}
}

func TestSliderVertical(t *testing.T) {
	setupText(t)

	s := uikit.NewSlider(uikit.Absolute(0, 0), 0, 1, 0, nil, uikit.Vertical())
	b := s.Bounds()
	if b.W != 14 || b.H != 150 {
		t.Fatalf("vertical bounds = %+v, want 14x150", b)
	}
	s.HandleEvent(leftDown(7, 7)) // grab the thumb at the top
	s.HandleEvent(motion(7, 143))
	if s.Value() != 1 {
		t.Errorf("value = %v, want 1", s.Value())
	}
}
