package main

import (
	"fmt"
	"image/color"

	"github.com/soypat/geometry/ms2"
	"github.com/soypat/geometry/ms3"
	"github.com/soypat/glui"
	"github.com/soypat/glui/gldraw"
	"github.com/soypat/glui/gluiaux"
	"github.com/spf13/cobra"
)

var faceColors = []color.Color{
	glui.White,
	glui.Red,
	color.NRGBA{G: 200, A: 255},
	color.NRGBA{G: 80, B: 255, A: 255},
}

func drawAxes(g *gldraw.GL, v glui.View) {
	o := ms3.Vec{}
	g.Line(o, ms3.Vec{X: 1}, glui.Red, 2)
	g.Line(o, ms3.Vec{Y: 1}, color.NRGBA{G: 200, A: 255}, 2)
	g.Line(o, ms3.Vec{Z: 1}, color.NRGBA{G: 80, B: 255, A: 255}, 2)
}

func drawGrid(g *gldraw.GL, y float32) {
	const n, step = 8, 0.25
	const half = n * step / 2
	for i := 0; i <= n; i++ {
		d := float32(i)*step - half
		g.Line(ms3.Vec{X: d, Y: y, Z: -half}, ms3.Vec{X: d, Y: y, Z: half}, glui.MdGray, 1)
		g.Line(ms3.Vec{X: -half, Y: y, Z: d}, ms3.Vec{X: half, Y: y, Z: d}, glui.MdGray, 1)
	}
}

// meshScale maps the scale slider's [0,1] range onto the tetrahedron size.
func meshScale(s *glui.Slider) float32 { return 0.3 + 1.4*s.Value() }

func runLight(cmd *cobra.Command, args []string) error {
	l, err := loadLayout()
	if err != nil {
		return err
	}
	sc, err := l.Build(viewport())
	if err != nil {
		return err
	}
	light, err := sc.Point("light")
	if err != nil {
		return err
	}
	scl, err := sc.Slider("scl")
	if err != nil {
		return err
	}
	reset, err := sc.Button("reset")
	if err != nil {
		return err
	}
	edges := sc.Checks["edges"]
	if edges == nil {
		return fmt.Errorf("layout has no %q checkbox", "edges")
	}
	initLight := *light
	initRot := ms2.Vec{}
	if cam := sc.Context.Camera; cam != nil {
		initRot = cam.Rotation()
	}
	reset.Action = func() {
		*light = initLight
		if cam := sc.Context.Camera; cam != nil {
			cam.SetRotation(initRot)
			sc.Context.UseCamera(cam)
		}
		sc.Context.Dirty = true
	}

	tetra := gluiaux.Tetrahedron(0.8)
	cfg := uiConfig(cmd, "glui light")
	logChanges(sc, cfg.Logger)
	cfg.Scene = func(g *gldraw.GL, v glui.View) {
		tris := gluiaux.ScaleMesh(tetra, meshScale(scl))
		gluiaux.DrawShaded(g, tris, faceColors, *light)
		if *edges {
			gluiaux.DrawEdges(g, tris, glui.Black)
		}
	}
	cfg.Overlay = func(g *gldraw.GL, v glui.View) {
		if !g.IsVisible(v, *light) {
			// Light is behind the mesh: it still shades the far faces.
			glui.Crosshairs(g, v.Project(*light), 14, glui.MdGray)
		}
		g.Text(ms2.Vec{X: 10, Y: 10}, fmt.Sprintf("light %.2f %.2f %.2f", light.X, light.Y, light.Z), glui.White)
	}
	return gluiaux.Run(sc.Context, cfg)
}

func runAimer(cmd *cobra.Command, args []string) error {
	l := &gluiaux.Layout{
		Camera: &gluiaux.CameraLayout{Dolly: -5, RotY: 30, RotX: 20},
		Aimers: []gluiaux.AimerLayout{
			{Name: "spot", Base: gluiaux.Vec3{Y: 1.2}, Dir: gluiaux.Vec3{Y: -1, Z: 0.3}, Length: 0.8},
		},
		Sliders: []gluiaux.SliderLayout{
			{Name: "len", X: 30, Y: 20, Size: 100, Min: 0.2, Max: 2, Init: 0.8, Vertical: true},
		},
		TextFields: []gluiaux.TextFieldLayout{
			{Name: "label", X: 80, Y: 20, W: 160, H: 20, Text: "spot"},
		},
	}
	if layoutFile != "" {
		var err error
		if l, err = gluiaux.LoadLayout(layoutFile); err != nil {
			return err
		}
	}
	sc, err := l.Build(viewport())
	if err != nil {
		return err
	}
	spot, err := sc.Aimer("spot")
	if err != nil {
		return err
	}
	length, err := sc.Slider("len")
	if err != nil {
		return err
	}
	label, err := sc.TextField("label")
	if err != nil {
		return err
	}
	lenPick, _ := sc.Pick("len")

	cfg := uiConfig(cmd, "glui aimer")
	logChanges(sc, cfg.Logger)
	logPick := sc.Context.OnChange
	sc.Context.OnChange = func(p glui.Pick) {
		if p == lenPick {
			spot.Set(spot.Base(), spot.Dir(), length.Value())
		}
		logPick(p)
	}
	tetra := gluiaux.ScaleMesh(gluiaux.Tetrahedron(0.8), 0.6)
	cfg.Scene = func(g *gldraw.GL, v glui.View) {
		drawGrid(g, -0.6)
		gluiaux.DrawShaded(g, tetra, faceColors, spot.Tip())
	}
	cfg.Overlay = func(g *gldraw.GL, v glui.View) {
		d := spot.Dir()
		s := fmt.Sprintf("%s: dir %.2f %.2f %.2f", label.Text(), d.X, d.Y, d.Z)
		if m := spot.Mode(); m != glui.AimNone {
			s += " (" + m.String() + ")"
		}
		g.Text(ms2.Vec{X: 10, Y: float32(v.Viewport.Height - 20)}, s, glui.White)
	}
	return gluiaux.Run(sc.Context, cfg)
}
