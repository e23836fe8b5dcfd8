package glui_test

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms2"
	"github.com/soypat/geometry/ms3"
	"github.com/soypat/glui"
)

// recorder is a glui.Renderer that keeps every call for inspection.
type recorder struct {
	transforms int
	lines      int
	disks      int
	quads      int
	texts      []string
	colors     []color.Color
}

var _ glui.Renderer = (*recorder)(nil)

func (r *recorder) SetTransform(m ms3.Mat4) { r.transforms++ }

func (r *recorder) Line(p1, p2 ms3.Vec, c color.Color, width float32) {
	r.lines++
	r.colors = append(r.colors, c)
}

func (r *recorder) Disk(p ms3.Vec, diameter float32, c color.Color) {
	r.disks++
	r.colors = append(r.colors, c)
}

func (r *recorder) Quad(p1, p2, p3, p4 ms3.Vec, c color.Color) {
	r.quads++
	r.colors = append(r.colors, c)
}

func (r *recorder) Text(pix ms2.Vec, s string, c color.Color) {
	r.texts = append(r.texts, s)
}

func (r *recorder) hasText(s string) bool {
	for _, t := range r.texts {
		if t == s {
			return true
		}
	}
	return false
}

func (r *recorder) hasColor(c color.Color) bool {
	for _, got := range r.colors {
		if got == c {
			return true
		}
	}
	return false
}

// Standard test viewport: 800x600 pixels.
var testViewport = glui.Viewport{Width: 800, Height: 600}

// identityView has identity modelview and projection, world X and Y in
// [-1,1] map onto the full viewport.
func identityView() glui.View {
	return glui.NewView(testViewport, glui.Identity(), glui.Identity())
}

// perspView looks at the origin from 5 units away along +Z.
func perspView() glui.View {
	mv := glui.MulMat4(glui.Translation(ms3.Vec{Z: -5}), glui.MulMat4(glui.RotationY(20), glui.RotationX(10)))
	return glui.NewView(testViewport, mv, glui.Perspective(30, testViewport.Aspect(), 0.1, 100))
}

func distLinePoint(ray glui.Ray, p ms3.Vec) float32 {
	return ms3.Norm(ms3.Sub(p, glui.ProjectToLine(p, ray.P1, ray.P2)))
}

func equalWithin(a, b, tol float32) bool {
	return math32.Abs(a-b) <= tol
}

func vecEqualWithin(a, b ms3.Vec, tol float32) bool {
	return ms3.Norm(ms3.Sub(a, b)) <= tol
}
