package glui

import (
	"image/color"

	"github.com/soypat/geometry/ms2"
	"github.com/soypat/geometry/ms3"
)

// Mover drags a 3D point owned by the application across the plane that faces
// the viewer through the point at drag start. The point moves freely in the image
// plane as seen when the drag began and keeps its depth along the pick ray.
//
// Mover never copies or frees the point; it writes through the pointer on Drag.
type Mover struct {
	Point    *ms3.Vec
	plane    Plane
	dragging bool
}

// NewMover returns a Mover bound to p.
func NewMover(p *ms3.Vec) *Mover {
	return &Mover{Point: p}
}

// Set binds the mover to a new point and ends any drag in progress.
func (m *Mover) Set(p *ms3.Vec) {
	m.Point = p
	m.dragging = false
}

// Hit reports whether pix is within picking distance of the point.
func (m *Mover) Hit(pix ms2.Vec, v View) bool {
	return m.Point != nil && v.Hit(pix, *m.Point)
}

// Down starts a drag at pix. The reference plane is set through the point with
// its normal along the pixel ray. Down is a no-op if the view is singular.
func (m *Mover) Down(pix ms2.Vec, v View) {
	if m.Point == nil {
		return
	}
	ray, ok := v.UnprojectRay(pix)
	if !ok {
		return
	}
	m.plane = PlaneThrough(*m.Point, ray.Dir())
	m.dragging = true
}

// Drag moves the point to where the ray through pix meets the reference plane.
// It reports whether the point was updated. The point is left unchanged if
// no drag is in progress or the ray is parallel to the plane.
func (m *Mover) Drag(pix ms2.Vec, v View) bool {
	if !m.dragging || m.Point == nil {
		return false
	}
	ray, ok := v.UnprojectRay(pix)
	if !ok {
		return false
	}
	p, ok := m.plane.Intersect(ray)
	if !ok {
		return false
	}
	*m.Point = p
	return true
}

// Up ends the drag.
func (m *Mover) Up() { m.dragging = false }

// Dragging reports whether a drag is in progress.
func (m *Mover) Dragging() bool { return m.dragging }

// Plane returns the reference plane of the current or last drag.
func (m *Mover) Plane() Plane { return m.plane }

// Draw marks the point with a disk, or a sun while hovered or dragged.
func (m *Mover) Draw(r Renderer, v View, c color.Color, hovered bool) {
	if m.Point == nil {
		return
	}
	if hovered || m.dragging {
		r.SetTransform(v.ScreenMode())
		Sun(r, v.Project(*m.Point), c)
		r.SetTransform(v.Full())
		return
	}
	r.SetTransform(v.Full())
	r.Disk(*m.Point, 9, c)
}
