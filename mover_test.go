package glui_test

import (
	"math/rand"
	"testing"

	"github.com/soypat/geometry/ms2"
	"github.com/soypat/geometry/ms3"
	"github.com/soypat/glui"
)

func TestMoverPlaneContainment(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	v := perspView()
	for i := 0; i < 100; i++ {
		p := randVec(rng, 1)
		m := glui.NewMover(&p)
		pix := ms2.Add(v.Project(p), ms2.Vec{X: 8 * (2*rng.Float32() - 1), Y: 8 * (2*rng.Float32() - 1)})
		m.Down(pix, v)
		if !m.Dragging() {
			t.Fatal("expected drag to start")
		}
		pl := m.Plane()
		if d := pl.Eval(p) / ms3.Norm(pl.Normal); !equalWithin(d, 0, 1e-4) {
			t.Errorf("point %v off drag plane by %f", p, d)
		}
		// Dragging keeps the point on the plane.
		pix = ms2.Add(pix, ms2.Vec{X: 100 * (2*rng.Float32() - 1), Y: 100 * (2*rng.Float32() - 1)})
		if !m.Drag(pix, v) {
			t.Fatal("expected drag to move point")
		}
		if d := pl.Eval(p) / ms3.Norm(pl.Normal); !equalWithin(d, 0, 1e-3) {
			t.Errorf("dragged point %v off drag plane by %f", p, d)
		}
		if got := v.Project(p); ms2.Norm(ms2.Sub(got, pix)) > 0.5 {
			t.Errorf("dragged point projects to %v, want %v", got, pix)
		}
		m.Up()
		if m.Drag(pix, v) {
			t.Error("drag after up should not move point")
		}
	}
}

func TestMoverScreenAxisDrag(t *testing.T) {
	views := []struct {
		name string
		v    glui.View
		want ms3.Vec
	}{
		// 50 pixels of 800 over a 2 unit wide view.
		{name: "identity", v: identityView(), want: ms3.Vec{X: 0.125}},
		// 50 pixels of 800 over an 8 unit wide view.
		{name: "ortho", v: glui.NewView(testViewport, glui.Identity(), glui.Orthographic(-4, 4, -3, 3, 0.1, 10)), want: ms3.Vec{X: 0.5}},
	}
	for _, test := range views {
		var p ms3.Vec
		m := glui.NewMover(&p)
		m.Down(ms2.Vec{X: 400, Y: 300}, test.v)
		if !m.Drag(ms2.Vec{X: 450, Y: 300}, test.v) {
			t.Fatalf("%s: drag did not move point", test.name)
		}
		if !vecEqualWithin(p, test.want, 1e-5) {
			t.Errorf("%s: got point %v, want %v", test.name, p, test.want)
		}
	}
}

func TestMoverEmptyViewportFreezes(t *testing.T) {
	v := identityView()
	p := ms3.Vec{X: 0.25}
	m := glui.NewMover(&p)
	m.Down(v.Project(p), v)
	if !m.Dragging() {
		t.Fatal("expected drag to start")
	}
	// Minimized windows report an empty framebuffer mid drag.
	empty := v
	empty.Width, empty.Height = 0, 0
	if m.Drag(ms2.Vec{X: 10, Y: 10}, empty) {
		t.Error("drag over empty viewport should not move point")
	}
	if p != (ms3.Vec{X: 0.25}) {
		t.Errorf("point changed to %v", p)
	}
}

func TestMoverNilPoint(t *testing.T) {
	m := glui.NewMover(nil)
	v := identityView()
	if m.Hit(ms2.Vec{X: 400, Y: 300}, v) {
		t.Error("nil point should not be hit")
	}
	m.Down(ms2.Vec{X: 400, Y: 300}, v)
	if m.Dragging() || m.Drag(ms2.Vec{X: 410, Y: 300}, v) {
		t.Error("nil point should not drag")
	}
	var rec recorder
	m.Draw(&rec, v, glui.Yellow, true)
	if rec.disks+rec.lines != 0 {
		t.Error("nil point should not draw")
	}
}

func TestMoverDraw(t *testing.T) {
	var p ms3.Vec
	m := glui.NewMover(&p)
	v := identityView()
	var plain, hovered recorder
	m.Draw(&plain, v, glui.Yellow, false)
	m.Draw(&hovered, v, glui.Red, true)
	if plain.disks != 1 || plain.lines != 0 {
		t.Errorf("plain mover draws a single disk, got %d disks %d lines", plain.disks, plain.lines)
	}
	if hovered.lines == 0 || !hovered.hasColor(glui.Red) {
		t.Error("hovered mover should draw a sun with rays")
	}
}
