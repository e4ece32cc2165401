package uikit_test

import (
	"testing"

	"github.com/uikit-gl/uikit"
)

func resetIm(t *testing.T) {
	t.Helper()
	uikit.ResetImmediateState()
	t.Cleanup(uikit.ResetImmediateState)
}

func TestImButtonClickIsEdgeTriggered(t *testing.T) {
	setupText(t)
	resetIm(t)

	pos := uikit.Absolute(0, 0)
	if uikit.ImButton("ok", nil, leftDown(5, 5), pos, "Go") {
		t.Fatal("ImButton reported a click on press")
	}
	if !uikit.ImButton("ok", nil, leftUp(5, 5), pos, "Go") {
		t.Fatal("ImButton missed the click on release")
	}
	if uikit.ImButton("ok", nil, uikit.Event{}, pos, "Go") {
		t.Error("ImButton reported a click on an idle frame")
	}
}

func TestImButtonPressSurvivesFrames(t *testing.T) {
	setupText(t)
	resetIm(t)

	pos := uikit.Absolute(0, 0)
	uikit.ImButton("ok", nil, leftDown(5, 5), pos, "Go")
	uikit.ImButton("ok", nil, uikit.Event{}, pos, "Go")
	// Release outside several frames later: no click.
	if uikit.ImButton("ok", nil, leftUp(300, 300), pos, "Go") {
		t.Error("release outside reported a click")
	}
}

func TestImButtonPerIDState(t *testing.T) {
	setupText(t)
	resetIm(t)

	a := uikit.Absolute(0, 0)
	b := uikit.Absolute(0, 100)
	uikit.ImButton("a", nil, leftDown(5, 5), a, "A")
	// The press on "a" must not leak into "b".
	if uikit.ImButton("b", nil, leftUp(5, 105), b, "B") {
		t.Error("button b clicked from button a's press")
	}
	if !uikit.ImButton("a", nil, leftUp(5, 5), a, "A") {
		t.Error("button a lost its press across the interleaved call")
	}
}

func TestImCheckboxBindsValue(t *testing.T) {
	setupText(t)
	resetIm(t)

	pos := uikit.Absolute(0, 0)
	value := false
	uikit.ImCheckbox("mute", nil, leftDown(5, 10), pos, "Mute", &value)
	if value {
		t.Fatal("toggled on press")
	}
	if !uikit.ImCheckbox("mute", nil, leftUp(5, 10), pos, "Mute", &value) {
		t.Fatal("toggle not reported")
	}
	if !value {
		t.Error("bound value not updated")
	}
}

func TestImSwitchBindsValue(t *testing.T) {
	setupText(t)
	resetIm(t)

	pos := uikit.Absolute(0, 0)
	value := true
	uikit.ImSwitch("power", nil, leftDown(10, 10), pos, &value)
	changed := uikit.ImSwitch("power", nil, leftUp(10, 10), pos, &value)
	if !changed || value {
		t.Errorf("changed=%v value=%v, want toggle to false", changed, value)
	}
}

func TestImSliderDrag(t *testing.T) {
	setupText(t)
	resetIm(t)

	pos := uikit.Absolute(0, 0)
	value := float32(50)
	uikit.ImSlider("vol", nil, leftDown(75, 7), pos, 0, 100, &value)
	if !uikit.ImSlider("vol", nil, motion(143, 7), pos, 0, 100, &value) {
		t.Fatal("drag change not reported")
	}
	if value != 100 {
		t.Errorf("value = %v, want 100", value)
	}
	uikit.ImSlider("vol", nil, leftUp(143, 7), pos, 0, 100, &value)

	// External writes win on the next call.
	value = 10
	uikit.ImSlider("vol", nil, uikit.Event{}, pos, 0, 100, &value)
	if value != 10 {
		t.Errorf("value = %v, external write lost", value)
	}
}

func TestImDropdownSelect(t *testing.T) {
	setupText(t)
	resetIm(t)

	pos := uikit.Absolute(10, 10)
	opts := []string{"Dark", "Light", "System"}
	selected := 0
	if uikit.ImDropdown("theme", nil, leftDown(20, 20), pos, opts, &selected) {
		t.Fatal("opening reported a selection change")
	}
	if !uikit.ImDropdown("theme", nil, leftDown(20, 90), pos, opts, &selected) {
		t.Fatal("item click not reported")
	}
	if selected != 2 {
		t.Errorf("selected = %d, want 2", selected)
	}
}

func TestImRadioGroup(t *testing.T) {
	setupText(t)
	resetIm(t)

	pos := uikit.Absolute(0, 0)
	labels := []string{"Small", "Medium", "Large"}
	sel := -1
	// Rows are 24px tall; the second row starts at y=24.
	if !uikit.ImRadioGroup("size", nil, leftDown(5, 29), pos, labels, &sel) {
		t.Fatal("selection change not reported")
	}
	if sel != 1 {
		t.Errorf("selection = %d, want 1", sel)
	}
	if uikit.ImRadioGroup("size", nil, leftDown(5, 29), pos, labels, &sel) {
		t.Error("re-click of the selected option reported a change")
	}
}

func TestBeginScrollViewWheel(t *testing.T) {
	setupText(t)
	resetIm(t)

	view := uikit.RectF{X: 0, Y: 0, W: 300, H: 400}

	off := uikit.BeginScrollView("list", nil, motion(150, 200), view, 1010)
	uikit.EndScrollView(nil)
	if off != (uikit.PointF{X: 0, Y: 0}) {
		t.Fatalf("offset = %+v, want origin", off)
	}

	off = uikit.BeginScrollView("list", nil, wheel(-1), view, 1010)
	uikit.EndScrollView(nil)
	if off != (uikit.PointF{X: 0, Y: -25}) {
		t.Errorf("offset after wheel = %+v, want (0, -25)", off)
	}
}

func TestBeginScrollViewThumbDrag(t *testing.T) {
	setupText(t)
	resetIm(t)

	view := uikit.RectF{X: 0, Y: 0, W: 300, H: 400}
	thumbH := 400 * (float32(400) / 1010)
	travel := 400 - thumbH

	uikit.BeginScrollView("list", nil, leftDown(290, 5), view, 1010)
	uikit.EndScrollView(nil)
	off := uikit.BeginScrollView("list", nil, motion(290, 5+travel/2), view, 1010)
	uikit.EndScrollView(nil)
	if !approx(off.Y, -305) {
		t.Errorf("offset = %v, want -305", off.Y)
	}
}

func TestBeginScrollViewWheelOutsideIgnored(t *testing.T) {
	setupText(t)
	resetIm(t)

	view := uikit.RectF{X: 0, Y: 0, W: 300, H: 400}
	uikit.BeginScrollView("list", nil, motion(400, 500), view, 1010)
	uikit.EndScrollView(nil)
	off := uikit.BeginScrollView("list", nil, wheel(-1), view, 1010)
	uikit.EndScrollView(nil)
	if off.Y != 0 {
		t.Errorf("offset = %v, want 0 for a wheel outside the viewport", off.Y)
	}
}

func TestBeginScrollViewAtRequiresSize(t *testing.T) {
	setupText(t)
	resetIm(t)

	_, err := uikit.BeginScrollViewAt("list", nil, uikit.Event{}, uikit.Absolute(0, 0))
	if err == nil {
		t.Fatal("expected an error for a sizeless position")
	}

	pos := uikit.Absolute(0, 0).WithSize(300, 400)
	off, err := uikit.BeginScrollViewAt("list", nil, uikit.Event{}, pos, uikit.WithContentHeight(1010))
	if err != nil {
		t.Fatalf("BeginScrollViewAt: %v", err)
	}
	uikit.EndScrollView(nil)
	if off != (uikit.PointF{X: 0, Y: 0}) {
		t.Errorf("offset = %+v, want origin", off)
	}
}

func TestBeginScrollViewClipLifecycle(t *testing.T) {
	setupText(t)
	resetIm(t)

	r := newRecordRenderer(800, 600)
	view := uikit.RectF{X: 10, Y: 10, W: 300, H: 400}

	uikit.BeginScrollView("list", r, uikit.Event{}, view, 1010)
	if clip, ok := r.ClipRect(); !ok || clip != view {
		t.Fatalf("clip during scroll view = %+v (%v), want %+v", clip, ok, view)
	}
	uikit.EndScrollView(r)
	if _, ok := r.ClipRect(); ok {
		t.Error("clip still set after EndScrollView")
	}
}

func TestResetImmediateState(t *testing.T) {
	setupText(t)
	resetIm(t)

	view := uikit.RectF{X: 0, Y: 0, W: 300, H: 400}
	uikit.BeginScrollView("list", nil, motion(150, 200), view, 1010)
	uikit.EndScrollView(nil)
	uikit.BeginScrollView("list", nil, wheel(-1), view, 1010)
	uikit.EndScrollView(nil)

	uikit.ResetImmediateState()
	off := uikit.BeginScrollView("list", nil, uikit.Event{}, view, 1010)
	uikit.EndScrollView(nil)
	if off.Y != 0 {
		t.Errorf("offset = %v after reset, want 0", off.Y)
	}
}
