package gluiaux

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soypat/geometry/ms2"
	"github.com/soypat/geometry/ms3"
	"github.com/soypat/glui"
)

const testLayout = `
camera:
  dolly: -4
  rot_y: 10
movers:
  - name: light
    point: {x: 0.1, y: 0.2, z: 0.3}
aimers:
  - name: spot
    base: {x: 0, y: 0, z: 0}
    dir: {x: 0, y: 0, z: 2}
    length: 0.5
sliders:
  - name: fov
    x: 30
    y: 20
    size: 70
    min: 5
    max: 45
    init: 15
    vertical: true
buttons:
  - name: shadows
    kind: checkbox
    x: 80
    y: 20
    w: 15
    checked: true
  - name: reset
    kind: push
    x: 80
    y: 60
    w: 60
    h: 20
textfields:
  - name: file
    x: 200
    y: 20
    w: 200
    h: 20
    text: mesh.obj
headers:
  - title: Render
    x1: 10
    y1: 5
    x2: 180
    y2: 120
`

func TestParseLayoutBuild(t *testing.T) {
	l, err := ParseLayout([]byte(testLayout))
	if err != nil {
		t.Fatal(err)
	}
	sc, err := l.Build(glui.Viewport{Width: 800, Height: 600})
	if err != nil {
		t.Fatal(err)
	}
	light, err := sc.Point("light")
	if err != nil {
		t.Fatal(err)
	}
	if *light != (ms3.Vec{X: 0.1, Y: 0.2, Z: 0.3}) {
		t.Errorf("got light %v", *light)
	}
	fov, err := sc.Slider("fov")
	if err != nil {
		t.Fatal(err)
	}
	if fov.Value() < 14 || fov.Value() > 16 || !fov.Vertical {
		t.Errorf("got fov slider %+v value %f", fov, fov.Value())
	}
	if !*sc.Checks["shadows"] {
		t.Error("shadows checkbox should start checked")
	}
	tf, err := sc.TextField("file")
	if err != nil || tf.Text() != "mesh.obj" {
		t.Errorf("got text field %v %v", tf, err)
	}
	spot, err := sc.Aimer("spot")
	if err != nil {
		t.Fatal(err)
	}
	if spot.Dir() != (ms3.Vec{Z: 1}) || spot.Length() != 0.5 {
		t.Errorf("got aimer dir %v length %f", spot.Dir(), spot.Length())
	}
	if sc.Context.Camera == nil || sc.Context.Camera.Dolly != -4 || sc.Context.Camera.Rotation() != (ms2.Vec{X: 10}) {
		t.Error("camera not configured from layout")
	}
	if _, err := sc.Slider("light"); err == nil {
		t.Error("expected kind mismatch error")
	}
	if _, err := sc.Button("nope"); err == nil {
		t.Error("expected missing widget error")
	}
	p, ok := sc.Pick("reset")
	if !ok || sc.Name(p) != "reset" {
		t.Errorf("pick round trip failed: %v %q", p, sc.Name(p))
	}
}

func TestSceneMoverEditsPoint(t *testing.T) {
	l := &Layout{Movers: []MoverLayout{{Name: "a"}, {Name: "b", Point: Vec3{X: 0.5}}}}
	sc, err := l.Build(glui.Viewport{Width: 800, Height: 600})
	if err != nil {
		t.Fatal(err)
	}
	// Identity view: mover a at the center, b at 3/4 width.
	ui := sc.Context
	if got := ui.MouseDown(600, 300); got != (glui.Pick{Kind: glui.PickMover, ID: 1}) {
		t.Fatalf("expected mover b, got %s", got)
	}
	ui.MouseDrag(600, 400)
	ui.MouseUp(600, 400)
	b, _ := sc.Point("b")
	if b.Y < 0.3 || b.X < 0.49 || b.X > 0.51 {
		t.Errorf("mover did not edit scene point, got %v", *b)
	}
	if sc.Points[0] != (ms3.Vec{}) {
		t.Errorf("mover a changed: %v", sc.Points[0])
	}
}

func TestLayoutValidate(t *testing.T) {
	l := &Layout{
		Camera: &CameraLayout{FOV: 200},
		Aimers: []AimerLayout{{Name: "a", Length: 0}},
		Sliders: []SliderLayout{
			{Name: "s", Size: 0},
			{Name: "s", Size: 10},
		},
		Buttons:    []ButtonLayout{{Name: "b", Kind: "radio", W: 1, H: 1}},
		TextFields: []TextFieldLayout{{Name: "t", W: 10, H: 10, Text: strings.Repeat("x", glui.MaxTextField)}},
		Headers:    []HeaderLayout{{Title: "flat", X1: 5, Y1: 5, X2: 50, Y2: 5}},
	}
	err := l.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	for _, want := range []string{"fov", "length must be positive", "zero direction", "size must be positive", "duplicate name", "unknown kind", "text exceeds", "empty frame"} {
		if !strings.Contains(msg, want) {
			t.Errorf("missing %q in error:\n%s", want, msg)
		}
	}
	if _, err := l.Build(glui.Viewport{Width: 10, Height: 10}); err == nil {
		t.Error("Build should validate")
	}
	if err := DefaultLayout().Validate(); err != nil {
		t.Errorf("default layout invalid: %v", err)
	}
}

func TestParseLayoutUnknownField(t *testing.T) {
	_, err := ParseLayout([]byte("sliders:\n  - name: a\n    size: 3\n    colour: red\n"))
	if err == nil {
		t.Error("expected unknown field error")
	}
}

func TestLayoutFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	want := DefaultLayout()
	if err := SaveLayout(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := LoadLayout(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Buttons) != len(want.Buttons) || got.Movers[0].Point != want.Movers[0].Point || *got.Camera != *want.Camera {
		t.Errorf("layout changed on round trip: %+v", got)
	}
	_, err = LoadLayout(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not exist error, got %v", err)
	}
}

func TestUIConfigDefaults(t *testing.T) {
	var cfg UIConfig
	if err := cfg.setDefaults(); err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 800 || cfg.Height != 600 || cfg.Logger == nil || cfg.Background == nil {
		t.Errorf("bad defaults %+v", cfg)
	}
	cfg = UIConfig{Width: -1}
	if cfg.setDefaults() == nil {
		t.Error("expected negative size error")
	}
	if err := Run(nil, UIConfig{}); err == nil {
		t.Error("expected nil context error")
	}
}

func TestInputHelpers(t *testing.T) {
	if wheelDir(2.5) != 1 || wheelDir(-0.1) != -1 || wheelDir(0) != 0 {
		t.Error("bad wheel direction")
	}
	sx, sy := cursorScale(800, 600, 1600, 1200)
	if sx != 2 || sy != 2 {
		t.Errorf("got scale %f %f", sx, sy)
	}
	sx, sy = cursorScale(0, 0, 0, 0)
	if sx != 1 || sy != 1 {
		t.Errorf("degenerate window should not scale, got %f %f", sx, sy)
	}
}

func TestLambert(t *testing.T) {
	n := ms3.Vec{Z: 1}
	lit := Lambert(glui.White, ms3.Vec{}, n, ms3.Vec{Z: 5}, 0.2)
	dark := Lambert(glui.White, ms3.Vec{}, n, ms3.Vec{Z: -5}, 0.2)
	if lit.R != 255 {
		t.Errorf("facing light should be full bright, got %v", lit)
	}
	if dark.R != 51 {
		t.Errorf("facing away should be ambient, got %v", dark)
	}
}
