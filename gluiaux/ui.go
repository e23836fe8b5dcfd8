//go:build !tinygo && cgo

package gluiaux

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/soypat/glui"
	"github.com/soypat/glui/gldraw"
)

func run(ui *glui.Context, cfg UIConfig) error {
	window, term, err := startGLFW(cfg.Width, cfg.Height, cfg.Title)
	if err != nil {
		return err
	}
	defer term()
	cfg.logf("gluiaux: OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	fbW, fbH := window.GetFramebufferSize()
	vp := glui.Viewport{Width: fbW, Height: fbH, FlipY: true}
	ui.SetViewport(vp)
	g, err := gldraw.NewGL(vp, nil)
	if err != nil {
		return err
	}
	defer g.Delete()

	var pressed bool
	pixel := func(w *glfw.Window, xpos, ypos float64) (x, y float32) {
		winW, winH := w.GetSize()
		fbW, fbH := w.GetFramebufferSize()
		sx, sy := cursorScale(winW, winH, fbW, fbH)
		return float32(xpos) * sx, float32(ypos) * sy
	}
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		vp := glui.Viewport{Width: width, Height: height, FlipY: true}
		ui.SetViewport(vp)
		g.SetViewport(vp)
	})
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		x, y := pixel(w, xpos, ypos)
		if pressed {
			ui.MouseDrag(x, y)
		} else {
			ui.Hover(x, y)
		}
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		xpos, ypos := w.GetCursorPos()
		x, y := pixel(w, xpos, ypos)
		switch action {
		case glfw.Press:
			pressed = true
			ui.MouseDown(x, y)
		case glfw.Release:
			pressed = false
			ui.MouseUp(x, y)
		}
	})
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		ui.Wheel(wheelDir(yoff))
	})
	window.SetCharCallback(func(w *glfw.Window, char rune) {
		ui.KeyChar(char)
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Release {
			return
		}
		switch key {
		case glfw.KeyBackspace:
			ui.KeyChar('\b')
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		}
	})

	ctx := cfg.Context
	bg := cfg.Background
	frames := 0
	start := time.Now()
	ui.Dirty = true
	for !window.ShouldClose() {
		if ctx != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}
		rgb, a := glui.ColorVec(bg)
		gl.ClearColor(rgb.X, rgb.Y, rgb.Z, a)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		v := ui.View
		if cfg.Scene != nil {
			g.Begin(true)
			g.SetTransform(v.Full())
			cfg.Scene(g, v)
			if err := g.End(); err != nil {
				cfg.logf("gluiaux: drawing scene: %v", err)
			}
		}
		g.Begin(false)
		ui.Draw(g)
		if cfg.Overlay != nil {
			g.SetTransform(v.ScreenMode())
			cfg.Overlay(g, v)
		}
		if err := g.End(); err != nil {
			cfg.logf("gluiaux: drawing widgets: %v", err)
		}
		ui.Dirty = false
		frames++
		window.SwapBuffers()

		// Sleep until an event changes something worth drawing.
		for {
			time.Sleep(time.Second / 60)
			glfw.PollEvents()
			if ui.Dirty || window.ShouldClose() {
				break
			}
			if ctx != nil && ctx.Err() != nil {
				break
			}
		}
	}
	cfg.logf("gluiaux: drew %d frames in %s", frames, time.Since(start).Round(time.Millisecond))
	return nil
}

func startGLFW(width, height int, title string) (window *glfw.Window, term func(), err error) {
	if err := glfw.Init(); err != nil {
		return nil, nil, fmt.Errorf("initializing GLFW: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err = glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, nil, fmt.Errorf("creating GLFW window: %w", err)
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, nil, fmt.Errorf("initializing OpenGL: %w", err)
	}
	return window, glfw.Terminate, nil
}
