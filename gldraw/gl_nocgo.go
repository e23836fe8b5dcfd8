//go:build tinygo || !cgo

package gldraw

import (
	"image/color"

	"github.com/soypat/geometry/ms2"
	"github.com/soypat/geometry/ms3"
	"github.com/soypat/glui"
)

// GL is unavailable without CGo. Its methods do nothing.
type GL struct{}

// NewGL returns an error when built without CGo.
func NewGL(vp glui.Viewport, tf *Typeface) (*GL, error) {
	return nil, errNoCGO
}

func (g *GL) SetViewport(vp glui.Viewport) {}
func (g *GL) Begin(depthTest bool) {}
func (g *GL) End() error { return errNoCGO }
func (g *GL) SetTransform(m ms3.Mat4) {}
func (g *GL) Line(p1, p2 ms3.Vec, c color.Color, width float32) {}
func (g *GL) Disk(p ms3.Vec, diameter float32, c color.Color) {}
func (g *GL) Quad(p1, p2, p3, p4 ms3.Vec, c color.Color) {}
func (g *GL) Triangle(p1, p2, p3 ms3.Vec, c color.Color) {}
func (g *GL) Text(pix ms2.Vec, s string, c color.Color) {}
func (g *GL) IsVisible(v glui.View, p ms3.Vec) bool { return false }
func (g *GL) Delete() error { return errNoCGO }
