package glui_test

import (
	"testing"

	"github.com/soypat/geometry/ms2"
	"github.com/soypat/geometry/ms3"
	"github.com/soypat/glui"
)

func TestOrbitCameraDrag(t *testing.T) {
	c := glui.NewOrbitCamera(-5)
	c.Down(ms2.Vec{X: 100, Y: 100})
	c.Drag(ms2.Vec{X: 200, Y: 150})
	rot := c.Rotation()
	if !equalWithin(rot.X, 30, 1e-4) || !equalWithin(rot.Y, 15, 1e-4) {
		t.Errorf("got rotation %v", rot)
	}
	c.Up()
	// Second drag accumulates on the first.
	c.Down(ms2.Vec{X: 0, Y: 0})
	c.Drag(ms2.Vec{X: -100, Y: 0})
	rot = c.Rotation()
	if !equalWithin(rot.X, 0, 1e-4) || !equalWithin(rot.Y, 15, 1e-4) {
		t.Errorf("got accumulated rotation %v", rot)
	}
	c.Up()
	if c.Drag(ms2.Vec{X: 500, Y: 500}) {
		t.Error("drag after up should be ignored")
	}
}

func TestOrbitCameraModelView(t *testing.T) {
	c := glui.NewOrbitCamera(-5)
	got := glui.TransformPoint(c.ModelView(), ms3.Vec{X: 1})
	if !vecEqualWithin(got, ms3.Vec{X: 1, Z: -5}, 1e-6) {
		t.Errorf("unrotated camera maps X to %v", got)
	}
	c.Wheel(1)
	c.Wheel(1)
	c.Wheel(-1)
	c.Wheel(0)
	if !equalWithin(c.Dolly, -5.1, 1e-5) {
		t.Errorf("got dolly %f", c.Dolly)
	}
	c.SetRotation(ms2.Vec{X: 90})
	got = glui.TransformPoint(c.ModelView(), ms3.Vec{X: 1})
	// A quarter turn about Y takes X onto the Z axis.
	if !equalWithin(got.X, 0, 1e-5) || !equalWithin(ms3.Norm(ms3.Sub(got, ms3.Vec{Z: c.Dolly})), 1, 1e-5) {
		t.Errorf("rotated camera maps X to %v", got)
	}
}
