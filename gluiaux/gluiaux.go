// Package gluiaux runs [glui] widgets in a GLFW window and loads widget layouts from YAML.
package gluiaux

import (
	"context"
	"errors"
	"image/color"
	"log"

	"github.com/soypat/geometry/ms3"
	"github.com/soypat/glui"
	"github.com/soypat/glui/gldraw"
)

// UIConfig configures [Run].
type UIConfig struct {
	Width, Height int
	Title         string
	// Context cancels the window loop when done. May be nil.
	Context context.Context
	// Silent suppresses informational logging.
	Silent bool
	// Logger receives log messages. Defaults to [log.Default].
	Logger *log.Logger
	// Background is the clear color. Defaults to [glui.DkGray].
	Background color.Color
	// Scene draws application content before the widgets with depth testing
	// enabled. The active transform is the view's full transform. May be nil.
	Scene func(g *gldraw.GL, v glui.View)
	// Overlay is called after widgets are drawn, in screen mode. May be nil.
	Overlay func(g *gldraw.GL, v glui.View)
}

func (cfg *UIConfig) setDefaults() error {
	if cfg.Width < 0 || cfg.Height < 0 {
		return errors.New("negative window size")
	}
	if cfg.Width == 0 {
		cfg.Width = 800
	}
	if cfg.Height == 0 {
		cfg.Height = 600
	}
	if cfg.Title == "" {
		cfg.Title = "glui"
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Background == nil {
		cfg.Background = glui.DkGray
	}
	return nil
}

func (cfg *UIConfig) logf(format string, args ...any) {
	if !cfg.Silent {
		cfg.Logger.Printf(format, args...)
	}
}

// Run opens a window and routes its input to ui until the window closes or
// cfg.Context is cancelled. It must be called from the main OS thread.
func Run(ui *glui.Context, cfg UIConfig) error {
	if ui == nil {
		return errors.New("nil glui.Context")
	}
	if err := cfg.setDefaults(); err != nil {
		return err
	}
	return run(ui, cfg)
}

// wheelDir returns the sign of a scroll offset.
func wheelDir(yoff float64) int {
	switch {
	case yoff > 0:
		return 1
	case yoff < 0:
		return -1
	}
	return 0
}

// cursorScale converts window coordinates to framebuffer pixels, which differ
// on high density displays.
func cursorScale(winW, winH, fbW, fbH int) (sx, sy float32) {
	sx, sy = 1, 1
	if winW > 0 && fbW > 0 {
		sx = float32(fbW) / float32(winW)
	}
	if winH > 0 && fbH > 0 {
		sy = float32(fbH) / float32(winH)
	}
	return sx, sy
}

// Lambert returns base shaded by a point light at light for a surface at p
// with normal n. ambient is the minimum brightness in [0,1].
func Lambert(base color.Color, p, n, light ms3.Vec, ambient float32) color.NRGBA {
	rgb, a := glui.ColorVec(base)
	l := ms3.Sub(light, p)
	var diffuse float32
	if ms3.Norm(l) > 0 && ms3.Norm(n) > 0 {
		diffuse = max(0, ms3.Dot(ms3.Unit(l), ms3.Unit(n)))
	}
	k := ambient + (1-ambient)*diffuse
	return color.NRGBA{
		R: uint8(min(255, rgb.X*k*255+0.5)),
		G: uint8(min(255, rgb.Y*k*255+0.5)),
		B: uint8(min(255, rgb.Z*k*255+0.5)),
		A: uint8(a*255 + 0.5),
	}
}
