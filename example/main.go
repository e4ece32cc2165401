// Example demonstrates a window with a scrollable list of retained
// controls next to an immediate-mode sidebar.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/uikit-gl/uikit"
	"github.com/uikit-gl/uikit/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "uikit example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := opengl.Init(); err != nil {
		return err
	}
	defer opengl.Terminate()

	window, err := opengl.NewWindow(windowTitle, windowWidth, windowHeight)
	if err != nil {
		return err
	}
	defer window.Destroy()

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	uikit.SetClipboardProvider(window)
	uikit.SetDisplaySize(windowWidth, windowHeight)

	if err := uikit.InitText(renderer); err != nil {
		return fmt.Errorf("text: %w", err)
	}
	defer uikit.TextSystem().Close()

	view, err := buildScrollView(window)
	if err != nil {
		return err
	}

	// Immediate-mode sidebar state.
	var (
		volume   = float32(0.5)
		muted    = false
		theme    = 0
		themes   = []string{"Dark", "Light", "System"}
		clicks   = 0
		lastTime = time.Now()
	)

	for !window.ShouldClose() {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		events := window.PollEvents()
		for _, ev := range events {
			if ev.Kind == uikit.EventWindowResized {
				renderer.Resize(int(ev.Width), int(ev.Height))
				uikit.SetDisplaySize(ev.Width, ev.Height)
				w, _ := window.Size()
				view.RecalculateLayout(float32(w), float32(ev.Height))
			}
			view.HandleEvent(ev)
		}
		view.Update(dt)

		fbW, fbH := window.SizeInPixels()
		gl.Viewport(0, 0, int32(fbW), int32(fbH))
		renderer.Clear(uikit.RGB(28, 28, 32))

		view.Draw(renderer, uikit.PointF{})

		// Immediate sidebar on the right; widgets re-run every frame
		// for every event (or once with a zero event on idle frames).
		frameEvents := events
		if len(frameEvents) == 0 {
			frameEvents = []uikit.Event{{}}
		}
		for _, ev := range frameEvents {
			sidebar := uikit.Anchored(uikit.AnchorTopRight, -20, 40)
			if uikit.ImButton("clicks", renderer, ev, sidebar, fmt.Sprintf("Clicked %d times", clicks)) {
				clicks++
			}
			uikit.ImSlider("volume", renderer, ev, uikit.Anchored(uikit.AnchorTopRight, -20, 90), 0, 1, &volume, uikit.ShowValue("%.2f"))
			uikit.ImCheckbox("muted", renderer, ev, uikit.Anchored(uikit.AnchorTopRight, -20, 130), "Mute", &muted)
			uikit.ImDropdown("theme", renderer, ev, uikit.Anchored(uikit.AnchorTopRight, -20, 170), themes, &theme)
		}

		renderer.Flush()
		window.SwapBuffers()
	}

	return nil
}

func buildScrollView(window *opengl.Window) (*uikit.ScrollView, error) {
	view, err := uikit.NewScrollView(uikit.Absolute(20, 20).WithSize(360, 560))
	if err != nil {
		return nil, err
	}
	view.SetWindow(window)

	view.AddChild(uikit.NewLabel(uikit.Absolute(10, 10), "Retained controls"))

	input := uikit.NewTextInput(uikit.Absolute(10, 40).WithSize(320, 0))
	input.SetText("edit me")
	view.AddChild(input)

	secret := uikit.NewTextInput(uikit.Absolute(10, 80).WithSize(320, 0), uikit.Password('*'))
	view.AddChild(secret)

	for i := 0; i < 12; i++ {
		label := fmt.Sprintf("Button %d", i+1)
		view.AddChild(uikit.NewButton(uikit.Absolute(10, float32(120+i*40)), label, func() {
			fmt.Println("clicked", label)
		}))
	}

	sel := -1
	group := uikit.NewRadioButtonGroup(&sel, func(v int) {
		fmt.Println("selected", v)
	})
	for i, label := range []string{"Small", "Medium", "Large"} {
		group.AddOption(uikit.Absolute(10, float32(610+i*30)), label, i)
	}
	view.AddChild(group)

	view.AddChild(uikit.NewSwitch(uikit.Absolute(10, 710), false, func(on bool) {
		fmt.Println("switch", on)
	}))

	w, h := window.Size()
	view.RecalculateLayout(float32(w), float32(h))
	return view, nil
}
