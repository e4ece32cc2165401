package uikit_test

import (
	"testing"

	"github.com/uikit-gl/uikit"
)

func TestSwitchToggleOnRelease(t *testing.T) {
	setupText(t)

	var got []bool
	s := uikit.NewSwitch(uikit.Absolute(0, 0), false, func(v bool) { got = append(got, v) })

	b := s.Bounds()
	if b.W != 44 || b.H != 22 {
		t.Fatalf("bounds = %+v, want track 44x22", b)
	}

	s.HandleEvent(leftDown(10, 10))
	if s.Value() {
		t.Fatal("toggled on press, want toggle on release")
	}
	s.HandleEvent(leftUp(10, 10))
	if !s.Value() || len(got) != 1 || !got[0] {
		t.Errorf("after click: value=%v callbacks=%v", s.Value(), got)
	}
}

func TestSwitchTriggerOnPress(t *testing.T) {
	setupText(t)

	s := uikit.NewSwitch(uikit.Absolute(0, 0), false, nil, uikit.TriggerOnPress())
	s.HandleEvent(leftDown(10, 10))
	if !s.Value() {
		t.Fatal("TriggerOnPress did not toggle on press")
	}
	s.HandleEvent(leftUp(10, 10))
	if !s.Value() {
		t.Error("release toggled back")
	}
}

func TestSwitchReleaseOutsideKeepsValue(t *testing.T) {
	setupText(t)

	s := uikit.NewSwitch(uikit.Absolute(0, 0), true, nil)
	s.HandleEvent(leftDown(10, 10))
	s.HandleEvent(leftUp(200, 200))
	if !s.Value() {
		t.Error("release outside toggled the value")
	}
}
