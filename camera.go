package glui

import (
	"github.com/soypat/geometry/ms2"
	"github.com/soypat/geometry/ms3"
)

// OrbitCamera turns mouse drags into a rotation of the scene about its origin
// and the scroll wheel into a dolly along the view axis.
type OrbitCamera struct {
	// FOV is the vertical field of view in degrees.
	FOV       float32
	Near, Far float32
	// Dolly is the translation along Z applied after rotation. Negative values
	// move the scene away from the viewer.
	Dolly float32
	// Sensitivity is the rotation in degrees per pixel of drag.
	Sensitivity float32
	// DollyStep is the dolly change per wheel notch.
	DollyStep float32

	rotOld, rotNew ms2.Vec
	down           ms2.Vec
	dragging       bool
}

// NewOrbitCamera returns a camera placed dolly units along Z.
func NewOrbitCamera(dolly float32) *OrbitCamera {
	return &OrbitCamera{
		FOV:         30,
		Near:        0.001,
		Far:         500,
		Dolly:       dolly,
		Sensitivity: 0.3,
		DollyStep:   0.1,
	}
}

// Down starts a rotation drag at pix.
func (c *OrbitCamera) Down(pix ms2.Vec) {
	c.down = pix
	c.rotNew = c.rotOld
	c.dragging = true
}

// Drag rotates by the mouse travel since Down: horizontal travel turns about
// the Y axis, vertical travel about the X axis.
func (c *OrbitCamera) Drag(pix ms2.Vec) bool {
	if !c.dragging {
		return false
	}
	c.rotNew = ms2.Add(c.rotOld, ms2.Scale(c.Sensitivity, ms2.Sub(pix, c.down)))
	return true
}

// Up commits the rotation of the current drag.
func (c *OrbitCamera) Up() {
	if c.dragging {
		c.rotOld = c.rotNew
	}
	c.dragging = false
}

// Wheel dollies towards the scene for positive dir and away for negative dir.
func (c *OrbitCamera) Wheel(dir int) {
	switch {
	case dir > 0:
		c.Dolly -= c.DollyStep
	case dir < 0:
		c.Dolly += c.DollyStep
	}
}

// Rotation returns the current rotation in degrees: X about the Y axis, Y about the X axis.
func (c *OrbitCamera) Rotation() ms2.Vec { return c.rotNew }

// SetRotation sets the rotation in degrees and ends any drag.
func (c *OrbitCamera) SetRotation(rot ms2.Vec) {
	c.rotOld, c.rotNew = rot, rot
	c.dragging = false
}

// ModelView returns Translate(0,0,Dolly)*RotY(rot.X)*RotX(rot.Y).
func (c *OrbitCamera) ModelView() ms3.Mat4 {
	rot := MulMat4(RotationY(c.rotNew.X), RotationX(c.rotNew.Y))
	return MulMat4(Translation(ms3.Vec{Z: c.Dolly}), rot)
}

// Persp returns the perspective projection for the given aspect ratio.
func (c *OrbitCamera) Persp(aspect float32) ms3.Mat4 {
	return Perspective(c.FOV, aspect, c.Near, c.Far)
}
