package glui

import (
	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms2"
	"github.com/soypat/geometry/ms3"
)

// PickThresholdSq is the squared pixel distance under which a projected point
// is considered hit by the mouse, a 10 pixel radius.
const PickThresholdSq = 100

// Window depths at which pixel rays are unprojected. Same as the classic
// gluUnProject based picking these widgets derive from.
const (
	rayDepthNear = 0.25
	rayDepthFar  = 0.5
)

// Viewport is the pixel rectangle the view projects onto.
// All widget pixel coordinates have their origin at the lower left corner
// with Y increasing upwards.
type Viewport struct {
	X, Y          int
	Width, Height int
	// FlipY is set when input events arrive with the origin at the top left
	// corner of the window, as is the case with GLFW and most window systems.
	// [Viewport.Pixel] is the only place the flip is applied.
	FlipY bool
}

// Pixel converts window event coordinates to y-up viewport pixel coordinates.
func (vp Viewport) Pixel(x, y float32) ms2.Vec {
	if vp.FlipY {
		y = float32(vp.Height) - y
	}
	return ms2.Vec{X: x, Y: y}
}

// Aspect returns the width/height ratio of the viewport. Returns 1 for empty viewports.
func (vp Viewport) Aspect() float32 {
	if vp.Height <= 0 || vp.Width <= 0 {
		return 1
	}
	return float32(vp.Width) / float32(vp.Height)
}

// Contains reports whether the pixel lies within the viewport rectangle.
func (vp Viewport) Contains(pix ms2.Vec) bool {
	x0, y0 := float32(vp.X), float32(vp.Y)
	return pix.X >= x0 && pix.X <= x0+float32(vp.Width) && pix.Y >= y0 && pix.Y <= y0+float32(vp.Height)
}

func (vp Viewport) ndcToPixel(x, y float32) ms2.Vec {
	return ms2.Vec{
		X: float32(vp.X) + (x+1)*0.5*float32(vp.Width),
		Y: float32(vp.Y) + (y+1)*0.5*float32(vp.Height),
	}
}

func (vp Viewport) pixelToNDC(pix ms2.Vec) (x, y float32) {
	x = 2*(pix.X-float32(vp.X))/float32(vp.Width) - 1
	y = 2*(pix.Y-float32(vp.Y))/float32(vp.Height) - 1
	return x, y
}

// View is the camera state widgets read to convert between pixels and world space.
// It is owned by the application and refreshed once per frame.
type View struct {
	Viewport
	ModelView ms3.Mat4
	Persp     ms3.Mat4
}

// NewView returns a View over vp. Pass [Identity] for an unused matrix, the zero
// matrix is singular and makes every unprojection fail.
func NewView(vp Viewport, modelview, persp ms3.Mat4) View {
	return View{Viewport: vp, ModelView: modelview, Persp: persp}
}

// Full returns the composite transform Persp*ModelView.
func (v View) Full() ms3.Mat4 {
	return MulMat4(v.Persp, v.ModelView)
}

// ProjectToScreen returns the pixel location of world point p and its normalized
// device depth in [-1, 1] for points inside the view volume.
// p must not lie on the camera plane where the homogeneous w coordinate vanishes.
func (v View) ProjectToScreen(p ms3.Vec) (pix ms2.Vec, depth float32) {
	x, y, z, w := mulHomogeneous(v.Full(), p, 1)
	return v.ndcToPixel(x/w, y/w), z / w
}

// Project returns the pixel location of world point p. See [View.ProjectToScreen].
func (v View) Project(p ms3.Vec) ms2.Vec {
	pix, _ := v.ProjectToScreen(p)
	return pix
}

// ScreenDistSq returns the squared pixel distance between pix and the projection of p.
func (v View) ScreenDistSq(pix ms2.Vec, p ms3.Vec) float32 {
	return ms2.Norm2(ms2.Sub(pix, v.Project(p)))
}

// Hit reports whether p projects within [PickThresholdSq] of pix.
func (v View) Hit(pix ms2.Vec, p ms3.Vec) bool {
	return v.ScreenDistSq(pix, p) < PickThresholdSq
}

// clipZ returns the clip space depth of p before perspective division.
func (v View) clipZ(p ms3.Vec) float32 {
	_, _, z, _ := mulHomogeneous(v.Full(), p, 1)
	return z
}

// FrontFacing reports whether vec, anchored at base, points towards the viewer.
func (v View) FrontFacing(base, vec ms3.Vec) bool {
	return v.clipZ(base) >= v.clipZ(ms3.Add(base, vec))
}

// UnprojectRay returns the world space line that projects onto pixel pix.
// It returns false if the view transform is singular or the viewport is empty.
func (v View) UnprojectRay(pix ms2.Vec) (Ray, bool) {
	if v.Width <= 0 || v.Height <= 0 {
		return Ray{}, false
	}
	full := v.Full()
	// The determinant scales with the cube of the view volume, so only an exact
	// zero is rejected here. Ill conditioned inverses are caught by finiteness.
	if full.Determinant() == 0 {
		return Ray{}, false
	}
	inv := full.Inverse()
	for _, f := range inv.Array() {
		if !finite(f) {
			return Ray{}, false
		}
	}
	nx, ny := v.pixelToNDC(pix)
	p1, ok1 := unprojectNDC(inv, nx, ny, 2*rayDepthNear-1)
	p2, ok2 := unprojectNDC(inv, nx, ny, 2*rayDepthFar-1)
	if !ok1 || !ok2 || p1 == p2 {
		return Ray{}, false
	}
	return Ray{P1: p1, P2: p2}, true
}

func unprojectNDC(inv ms3.Mat4, x, y, z float32) (ms3.Vec, bool) {
	px, py, pz, w := mulHomogeneous(inv, ms3.Vec{X: x, Y: y, Z: z}, 1)
	if math32.Abs(w) < epstol {
		return ms3.Vec{}, false
	}
	p := ms3.Vec{X: px / w, Y: py / w, Z: pz / w}
	return p, finiteVec(p)
}

func finite(f float32) bool { return !math32.IsNaN(f) && !math32.IsInf(f, 0) }

func finiteVec(v ms3.Vec) bool { return finite(v.X) && finite(v.Y) && finite(v.Z) }

// ScreenVec returns the unit direction of the world space ray through pix,
// pointing away from the viewer. Returns the zero vector for singular views.
func (v View) ScreenVec(pix ms2.Vec) ms3.Vec {
	ray, ok := v.UnprojectRay(pix)
	if !ok {
		return ms3.Vec{}
	}
	return ms3.Unit(ray.Dir())
}

// ScreenMode returns the matrix that maps viewport pixel coordinates to clip space.
// Widgets set it as the active transform to draw in pixels.
func (vp Viewport) ScreenMode() ms3.Mat4 {
	sx := 2 / float32(vp.Width)
	sy := 2 / float32(vp.Height)
	return ms3.NewMat4([]float32{
		sx, 0, 0, -1 - sx*float32(vp.X),
		0, sy, 0, -1 - sy*float32(vp.Y),
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

// Ray is the infinite line through two distinct world space points.
// P1 is closer to the viewer than P2 for rays built by [View.UnprojectRay].
type Ray struct {
	P1, P2 ms3.Vec
}

// Dir returns the non-normalized direction P2-P1.
func (r Ray) Dir() ms3.Vec { return ms3.Sub(r.P2, r.P1) }

// At returns P1 + t*(P2-P1).
func (r Ray) At(t float32) ms3.Vec { return ms3.Add(r.P1, ms3.Scale(t, r.Dir())) }

// Plane is the set of points p such that dot(Normal, p) + D = 0.
// Normal need not be unit length.
type Plane struct {
	Normal ms3.Vec
	D      float32
}

// PlaneThrough returns the plane with the given normal containing p.
func PlaneThrough(p, normal ms3.Vec) Plane {
	return Plane{Normal: normal, D: -ms3.Dot(normal, p)}
}

// Eval returns dot(Normal, p) + D, zero for points on the plane.
func (pl Plane) Eval(p ms3.Vec) float32 {
	return ms3.Dot(pl.Normal, p) + pl.D
}

// Intersect returns the point where ray r crosses the plane. It returns false
// when the ray is parallel to the plane, the plane is degenerate or the
// result is not finite.
func (pl Plane) Intersect(r Ray) (ms3.Vec, bool) {
	dir := r.Dir()
	denom := ms3.Dot(dir, pl.Normal)
	scale := ms3.Norm(dir) * ms3.Norm(pl.Normal)
	if !(scale >= epstol) || !(math32.Abs(denom) > epstol*scale) {
		return ms3.Vec{}, false
	}
	t := (-pl.D - ms3.Dot(r.P1, pl.Normal)) / denom
	p := r.At(t)
	return p, finiteVec(p)
}
