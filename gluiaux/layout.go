package gluiaux

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms2"
	"github.com/soypat/geometry/ms3"
	"github.com/soypat/glui"
	"gopkg.in/yaml.v3"
)

// Button kinds accepted in layout files.
const (
	KindPush     = "push"
	KindCheckbox = "checkbox"
)

// Layout describes a widget set in YAML so that demos can be rearranged
// without recompiling. Build turns it into a [glui.Context].
type Layout struct {
	Camera     *CameraLayout     `yaml:"camera,omitempty"`
	Movers     []MoverLayout     `yaml:"movers,omitempty"`
	Aimers     []AimerLayout     `yaml:"aimers,omitempty"`
	Sliders    []SliderLayout    `yaml:"sliders,omitempty"`
	Buttons    []ButtonLayout    `yaml:"buttons,omitempty"`
	TextFields []TextFieldLayout `yaml:"textfields,omitempty"`
	Headers    []HeaderLayout    `yaml:"headers,omitempty"`
}

// Vec3 is a YAML friendly 3D vector.
type Vec3 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

func (v Vec3) vec() ms3.Vec { return ms3.Vec{X: v.X, Y: v.Y, Z: v.Z} }

type CameraLayout struct {
	Dolly float32 `yaml:"dolly"`
	// FOV in degrees. Zero selects the camera default.
	FOV float32 `yaml:"fov,omitempty"`
	// Initial rotation in degrees about the Y and X axes.
	RotY float32 `yaml:"rot_y,omitempty"`
	RotX float32 `yaml:"rot_x,omitempty"`
}

type MoverLayout struct {
	Name  string `yaml:"name"`
	Point Vec3   `yaml:"point"`
}

type AimerLayout struct {
	Name   string  `yaml:"name"`
	Base   Vec3    `yaml:"base"`
	Dir    Vec3    `yaml:"dir"`
	Length float32 `yaml:"length"`
}

type SliderLayout struct {
	Name     string  `yaml:"name"`
	X        int     `yaml:"x"`
	Y        int     `yaml:"y"`
	Size     int     `yaml:"size"`
	Min      float32 `yaml:"min"`
	Max      float32 `yaml:"max"`
	Init     float32 `yaml:"init"`
	Vertical bool    `yaml:"vertical,omitempty"`
}

type ButtonLayout struct {
	Name string `yaml:"name"`
	// Kind is "push" or "checkbox".
	Kind string `yaml:"kind"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	W    int    `yaml:"w"`
	// H is ignored for checkboxes, which are W sided squares.
	H       int  `yaml:"h,omitempty"`
	Checked bool `yaml:"checked,omitempty"`
}

type TextFieldLayout struct {
	Name string `yaml:"name"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	W    int    `yaml:"w"`
	H    int    `yaml:"h"`
	Text string `yaml:"text,omitempty"`
}

// HeaderLayout is a titled frame. Corners are inclusive pixel coordinates.
type HeaderLayout struct {
	Title string `yaml:"title,omitempty"`
	X1    int    `yaml:"x1"`
	Y1    int    `yaml:"y1"`
	X2    int    `yaml:"x2"`
	Y2    int    `yaml:"y2"`
}

// DefaultLayout returns the light-and-shading layout: a movable light, a
// vertical scale slider, an edge drawing checkbox and a reset button.
func DefaultLayout() *Layout {
	return &Layout{
		Camera: &CameraLayout{Dolly: -5},
		Movers: []MoverLayout{
			{Name: "light", Point: Vec3{X: -0.2, Y: 0.4, Z: 0.8}},
		},
		Sliders: []SliderLayout{
			{Name: "scl", X: 30, Y: 20, Size: 70, Min: 0, Max: 1, Init: 0.4, Vertical: true},
		},
		Buttons: []ButtonLayout{
			{Name: "edges", Kind: KindCheckbox, X: 80, Y: 20, W: 15},
			{Name: "reset", Kind: KindPush, X: 80, Y: 50, W: 60, H: 20},
		},
	}
}

// LoadLayout reads and validates a YAML layout file. Unknown fields are errors.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	l, err := ParseLayout(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// ParseLayout decodes and validates a YAML layout.
func ParseLayout(data []byte) (*Layout, error) {
	var l Layout
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil {
		return nil, fmt.Errorf("decoding layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// SaveLayout writes l to path as YAML.
func SaveLayout(path string, l *Layout) error {
	data, err := yaml.Marshal(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func finite(v ...float32) bool {
	for _, f := range v {
		if math32.IsNaN(f) || math32.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// Validate reports every invalid entry of the layout joined in a single error.
func (l *Layout) Validate() error {
	var errs []error
	names := make(map[string]bool)
	checkName := func(kind, name string) {
		if name == "" {
			errs = append(errs, fmt.Errorf("%s: empty name", kind))
			return
		}
		if names[name] {
			errs = append(errs, fmt.Errorf("%s %q: duplicate name", kind, name))
		}
		names[name] = true
	}
	if c := l.Camera; c != nil {
		if !finite(c.Dolly, c.FOV, c.RotX, c.RotY) {
			errs = append(errs, errors.New("camera: non-finite value"))
		}
		if c.FOV < 0 || c.FOV >= 180 {
			errs = append(errs, fmt.Errorf("camera: fov %g out of range (0,180)", c.FOV))
		}
	}
	for _, m := range l.Movers {
		checkName("mover", m.Name)
		if !finite(m.Point.X, m.Point.Y, m.Point.Z) {
			errs = append(errs, fmt.Errorf("mover %q: non-finite point", m.Name))
		}
	}
	for _, a := range l.Aimers {
		checkName("aimer", a.Name)
		if !finite(a.Base.X, a.Base.Y, a.Base.Z, a.Dir.X, a.Dir.Y, a.Dir.Z, a.Length) {
			errs = append(errs, fmt.Errorf("aimer %q: non-finite value", a.Name))
		}
		if a.Length <= 0 {
			errs = append(errs, fmt.Errorf("aimer %q: length must be positive", a.Name))
		}
		if a.Dir == (Vec3{}) {
			errs = append(errs, fmt.Errorf("aimer %q: zero direction", a.Name))
		}
	}
	for _, s := range l.Sliders {
		checkName("slider", s.Name)
		if s.Size <= 0 {
			errs = append(errs, fmt.Errorf("slider %q: size must be positive", s.Name))
		}
		if !finite(s.Min, s.Max, s.Init) {
			errs = append(errs, fmt.Errorf("slider %q: non-finite range", s.Name))
		}
	}
	for _, b := range l.Buttons {
		checkName("button", b.Name)
		switch b.Kind {
		case KindPush:
			if b.W <= 0 || b.H <= 0 {
				errs = append(errs, fmt.Errorf("button %q: size must be positive", b.Name))
			}
		case KindCheckbox:
			if b.W <= 0 {
				errs = append(errs, fmt.Errorf("button %q: size must be positive", b.Name))
			}
		default:
			errs = append(errs, fmt.Errorf("button %q: unknown kind %q", b.Name, b.Kind))
		}
	}
	for _, t := range l.TextFields {
		checkName("textfield", t.Name)
		if t.W <= 0 || t.H <= 0 {
			errs = append(errs, fmt.Errorf("textfield %q: size must be positive", t.Name))
		}
		if len(t.Text) >= glui.MaxTextField {
			errs = append(errs, fmt.Errorf("textfield %q: text exceeds %d bytes", t.Name, glui.MaxTextField-1))
		}
	}
	for i, h := range l.Headers {
		if h.X2 <= h.X1 || h.Y2 <= h.Y1 {
			errs = append(errs, fmt.Errorf("header %d %q: empty frame", i, h.Title))
		}
	}
	return errors.Join(errs...)
}

// Scene is a built layout: the interaction context and the application
// state its widgets edit, addressable by widget name.
type Scene struct {
	Context *glui.Context
	// Points are the mover targets, indexed by mover ID.
	Points []ms3.Vec
	// Checks are the checkbox values by name.
	Checks map[string]*bool
	picks  map[string]glui.Pick
}

// Build validates l and creates its widgets over viewport vp.
func (l *Layout) Build(vp glui.Viewport) (*Scene, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	ctx := glui.NewContext(vp)
	sc := &Scene{
		Context: ctx,
		// Allocated once so mover pointers stay valid.
		Points: make([]ms3.Vec, len(l.Movers)),
		Checks: make(map[string]*bool),
		picks:  make(map[string]glui.Pick),
	}
	if c := l.Camera; c != nil {
		cam := glui.NewOrbitCamera(c.Dolly)
		if c.FOV > 0 {
			cam.FOV = c.FOV
		}
		cam.SetRotation(ms2.Vec{X: c.RotY, Y: c.RotX})
		ctx.UseCamera(cam)
	}
	for _, h := range l.Headers {
		ctx.AddHeader(glui.NewHeader(h.X1, h.Y1, h.X2, h.Y2, h.Title))
	}
	for i, m := range l.Movers {
		sc.Points[i] = m.Point.vec()
		id := ctx.AddMover(glui.NewMover(&sc.Points[i]))
		sc.picks[m.Name] = glui.Pick{Kind: glui.PickMover, ID: id}
	}
	for _, a := range l.Aimers {
		id := ctx.AddAimer(glui.NewAimer(a.Base.vec(), a.Dir.vec(), a.Length, ctx.View))
		sc.picks[a.Name] = glui.Pick{Kind: glui.PickAimer, ID: id}
	}
	for _, s := range l.Sliders {
		id := ctx.AddSlider(glui.NewSlider(s.X, s.Y, s.Size, s.Min, s.Max, s.Init, s.Vertical, s.Name))
		sc.picks[s.Name] = glui.Pick{Kind: glui.PickSlider, ID: id}
	}
	for _, b := range l.Buttons {
		var btn *glui.Button
		if b.Kind == KindCheckbox {
			v := b.Checked
			sc.Checks[b.Name] = &v
			btn = glui.NewCheckbox(b.X, b.Y, b.W, b.Name, &v)
		} else {
			btn = glui.NewPushButton(b.X, b.Y, b.W, b.H, b.Name, nil)
		}
		id := ctx.AddButton(btn)
		sc.picks[b.Name] = glui.Pick{Kind: glui.PickButton, ID: id}
	}
	for _, t := range l.TextFields {
		id := ctx.AddTextField(glui.NewTextField(t.X, t.Y, t.W, t.H, t.Text))
		sc.picks[t.Name] = glui.Pick{Kind: glui.PickTextField, ID: id}
	}
	return sc, nil
}

// Pick returns the widget reference for name.
func (sc *Scene) Pick(name string) (glui.Pick, bool) {
	p, ok := sc.picks[name]
	return p, ok
}

// Name returns the layout name of the widget p refers to, or the empty string.
func (sc *Scene) Name(p glui.Pick) string {
	for name, q := range sc.picks {
		if q == p {
			return name
		}
	}
	return ""
}

func (sc *Scene) lookup(name string, kind glui.PickKind) (int, error) {
	p, ok := sc.picks[name]
	if !ok {
		return 0, fmt.Errorf("no widget named %q", name)
	} else if p.Kind != kind {
		return 0, fmt.Errorf("widget %q is a %s, not a %s", name, p.Kind, kind)
	}
	return p.ID, nil
}

// Slider returns the slider named name.
func (sc *Scene) Slider(name string) (*glui.Slider, error) {
	id, err := sc.lookup(name, glui.PickSlider)
	if err != nil {
		return nil, err
	}
	return sc.Context.Slider(id), nil
}

// Button returns the button or checkbox named name.
func (sc *Scene) Button(name string) (*glui.Button, error) {
	id, err := sc.lookup(name, glui.PickButton)
	if err != nil {
		return nil, err
	}
	return sc.Context.Button(id), nil
}

// Point returns the point edited by the mover named name.
func (sc *Scene) Point(name string) (*ms3.Vec, error) {
	id, err := sc.lookup(name, glui.PickMover)
	if err != nil {
		return nil, err
	}
	return &sc.Points[id], nil
}

// Aimer returns the aimer named name.
func (sc *Scene) Aimer(name string) (*glui.Aimer, error) {
	id, err := sc.lookup(name, glui.PickAimer)
	if err != nil {
		return nil, err
	}
	return sc.Context.Aimer(id), nil
}

// TextField returns the text field named name.
func (sc *Scene) TextField(name string) (*glui.TextField, error) {
	id, err := sc.lookup(name, glui.PickTextField)
	if err != nil {
		return nil, err
	}
	return sc.Context.TextField(id), nil
}
