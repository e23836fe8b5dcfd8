package glui

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms2"
	"github.com/soypat/geometry/ms3"
)

// AimMode is the part of an [Aimer] being edited.
type AimMode uint8

const (
	AimNone AimMode = iota
	AimBase
	AimTip
)

func (m AimMode) String() string {
	switch m {
	case AimNone:
		return "none"
	case AimBase:
		return "base"
	case AimTip:
		return "tip"
	}
	return "AimMode(?)"
}

// Aimer edits a ray of fixed length: a base point and a unit direction.
// Dragging the base translates the whole ray over a viewer facing plane.
// Dragging the tip swings the direction over the sphere of radius Length
// around the base.
//
// The 2D mouse under-constrains the tip: the pick ray generally crosses the
// sphere twice. The solution kept is the one whose facing (towards or away
// from the viewer) matches the facing when the drag began, so the tip never
// flips through the base mid-drag.
type Aimer struct {
	base, dir, tip ms3.Vec
	length         float32
	plane          Plane
	view           View
	fwdFace        bool
	mode           AimMode
}

// NewAimer returns an aimer at base pointing along dir with the given length.
func NewAimer(base, dir ms3.Vec, length float32, v View) *Aimer {
	a := &Aimer{view: v}
	a.Set(base, dir, length)
	return a
}

// Set resets the aimer geometry and ends any edit. dir is normalized; a zero
// dir defaults to +Z. Non-positive lengths default to 1.
func (a *Aimer) Set(base, dir ms3.Vec, length float32) {
	if length <= 0 {
		length = 1
	}
	if ms3.Norm(dir) < epstol {
		dir = ms3.Vec{Z: 1}
	}
	a.base = base
	a.dir = ms3.Unit(dir)
	a.length = length
	a.tip = ms3.Add(base, ms3.Scale(length, a.dir))
	a.mode = AimNone
}

// SetView updates the camera used for picking. Called once per frame.
func (a *Aimer) SetView(v View) { a.view = v }

func (a *Aimer) Base() ms3.Vec { return a.base }
func (a *Aimer) Dir() ms3.Vec { return a.dir }
func (a *Aimer) Tip() ms3.Vec { return a.tip }
func (a *Aimer) Length() float32 { return a.length }
func (a *Aimer) Mode() AimMode { return a.mode }
func (a *Aimer) FrontFacing() bool { return a.view.FrontFacing(a.base, a.dir) }

// Hit reports whether pix is near the base or the tip.
func (a *Aimer) Hit(pix ms2.Vec) bool {
	return a.view.Hit(pix, a.base) || a.view.Hit(pix, a.tip)
}

// Down starts an edit. The base takes priority over the tip when both are in reach.
// The current facing of the ray is frozen for the duration of the drag.
func (a *Aimer) Down(pix ms2.Vec) AimMode {
	a.fwdFace = a.FrontFacing()
	switch {
	case a.view.Hit(pix, a.base):
		a.mode = AimBase
	case a.view.Hit(pix, a.tip):
		a.mode = AimTip
	default:
		a.mode = AimNone
	}
	if a.mode == AimBase {
		ray, ok := a.view.UnprojectRay(pix)
		if !ok {
			a.mode = AimNone
			return a.mode
		}
		a.plane = PlaneThrough(a.base, ray.Dir())
	}
	return a.mode
}

// Drag moves the base or the tip, depending on the mode set by Down.
// It reports whether the aimer changed.
func (a *Aimer) Drag(pix ms2.Vec) bool {
	if a.mode == AimNone {
		return false
	}
	ray, ok := a.view.UnprojectRay(pix)
	if !ok {
		return false
	}
	switch a.mode {
	case AimBase:
		p, ok := a.plane.Intersect(ray)
		if !ok {
			return false
		}
		a.base = p
	case AimTip:
		a.dir = a.aimTip(ray)
	}
	a.tip = ms3.Add(a.base, ms3.Scale(a.length, a.dir))
	return true
}

// aimTip returns the new direction for a tip drag along ray.
func (a *Aimer) aimTip(ray Ray) ms3.Vec {
	n := ProjectToLine(a.base, ray.P1, ray.P2)
	axis := ms3.Unit(ray.Dir())
	dif := ms3.Sub(n, a.base)
	d := ms3.Norm(dif)
	var tip ms3.Vec
	if d < a.length {
		// Ray crosses the sphere: n is the chord midpoint.
		delta := math32.Sqrt(a.length*a.length - d*d)
		tip = ms3.Sub(n, ms3.Scale(delta, axis))
		if a.view.FrontFacing(a.base, ms3.Sub(tip, a.base)) != a.fwdFace {
			tip = ms3.Add(n, ms3.Scale(delta, axis))
		}
	} else {
		// Ray misses the sphere: aim at the closest point.
		tip = ms3.Add(a.base, ms3.Scale(a.length/d, dif))
	}
	v := ms3.Sub(tip, a.base)
	if ms3.Norm(v) < epstol {
		return a.dir
	}
	return ms3.Unit(v)
}

// Up ends the edit.
func (a *Aimer) Up() { a.mode = AimNone }

// Draw draws the ray as an arrow, dashed when it points away from the viewer,
// with disks on base and tip. If quadScale is positive a square of that half
// size is drawn around the base, perpendicular to the ray.
func (a *Aimer) Draw(r Renderer, c color.Color, quadScale float32) {
	v := a.view
	r.SetTransform(v.Full())
	vec := ms3.Scale(a.length, a.dir)
	if a.FrontFacing() {
		ArrowV(r, v, a.base, vec, c, 10)
	} else {
		DashedLine(r, v, a.base, a.tip, c, 1)
	}
	if quadScale > epstol {
		n := ms3.Scale(quadScale, Ortho(a.dir))
		b := ms3.Scale(quadScale, ms3.Cross(a.dir, Ortho(a.dir)))
		p := [4]ms3.Vec{
			ms3.Sub(ms3.Sub(a.base, n), b),
			ms3.Add(ms3.Sub(a.base, n), b),
			ms3.Add(ms3.Add(a.base, n), b),
			ms3.Sub(ms3.Add(a.base, n), b),
		}
		for i := range p {
			r.Line(p[i], p[(i+1)%4], c, 2)
		}
	}
	r.Disk(a.base, 7, Red)
	r.Disk(a.tip, 7, Red)
}
