package glui

import (
	"image/color"

	"github.com/soypat/geometry/ms2"
	"github.com/soypat/geometry/ms3"
)

// Context owns a set of widgets and routes mouse and keyboard events to them.
// A press captures at most one control, reported by [Context.Picked], until
// the matching release. Presses that hit no control drag the camera, if any.
//
// Hit priority on press is movers, aimers, sliders, buttons, text fields and
// lastly the camera. Within a kind the first added widget wins.
//
// Context is not safe for concurrent use; it is meant to be driven from the
// window system's event loop.
type Context struct {
	// View is the camera state shared by all widgets.
	View View
	// Camera, when not nil, receives drags that hit no control and wheel events.
	// Its matrices replace View's on every change.
	Camera *OrbitCamera
	// Dirty is set whenever an event changed a widget or the view.
	// The application clears it after redrawing.
	Dirty bool
	// OnChange is called after a control changes value as a result of an event.
	OnChange func(p Pick)

	// Colors used by Draw.
	MoverColor color.Color
	AimerColor color.Color

	headers []*Header
	movers  []*Mover
	aimers  []*Aimer
	sliders []*Slider
	buttons []*Button
	fields  []*TextField

	picked Pick
	hover  Pick
	focus  int // focused text field, -1 if none.
	mouse  ms2.Vec
	// overButton is whether the mouse is on the captured button.
	overButton bool
}

// NewContext returns an empty context with an identity view over vp.
func NewContext(vp Viewport) *Context {
	return &Context{
		View:       NewView(vp, Identity(), Identity()),
		MoverColor: Yellow,
		AimerColor: Black,
		focus:      -1,
	}
}

// SetView replaces the view matrices. Aimers see the new view immediately.
func (c *Context) SetView(modelview, persp ms3.Mat4) {
	c.View.ModelView = modelview
	c.View.Persp = persp
	c.syncView()
}

// SetViewport resizes the view. With a camera attached the projection is
// rebuilt for the new aspect ratio.
func (c *Context) SetViewport(vp Viewport) {
	c.View.Viewport = vp
	if c.Camera != nil {
		c.View.Persp = c.Camera.Persp(vp.Aspect())
	}
	c.syncView()
	c.Dirty = true
}

// UseCamera attaches cam and takes the view matrices from it. cam may be nil
// to detach the camera, leaving the view as is.
func (c *Context) UseCamera(cam *OrbitCamera) {
	c.Camera = cam
	c.cameraView()
}

func (c *Context) cameraView() {
	if c.Camera == nil {
		return
	}
	c.SetView(c.Camera.ModelView(), c.Camera.Persp(c.View.Aspect()))
}

func (c *Context) syncView() {
	for _, a := range c.aimers {
		a.SetView(c.View)
	}
}

// AddHeader adds a frame drawn behind the other widgets. Headers take no input.
func (c *Context) AddHeader(h *Header) int {
	c.headers = append(c.headers, h)
	return len(c.headers) - 1
}

// AddMover adds a mover and returns its ID.
func (c *Context) AddMover(m *Mover) int {
	c.movers = append(c.movers, m)
	return len(c.movers) - 1
}

// AddAimer adds an aimer and returns its ID. The aimer adopts the context view.
func (c *Context) AddAimer(a *Aimer) int {
	a.SetView(c.View)
	c.aimers = append(c.aimers, a)
	return len(c.aimers) - 1
}

// AddSlider adds a slider and returns its ID.
func (c *Context) AddSlider(s *Slider) int {
	c.sliders = append(c.sliders, s)
	return len(c.sliders) - 1
}

// AddButton adds a push button or checkbox and returns its ID.
func (c *Context) AddButton(b *Button) int {
	c.buttons = append(c.buttons, b)
	return len(c.buttons) - 1
}

// AddTextField adds a text field and returns its ID.
func (c *Context) AddTextField(t *TextField) int {
	c.fields = append(c.fields, t)
	return len(c.fields) - 1
}

func (c *Context) Mover(id int) *Mover         { return c.movers[id] }
func (c *Context) Aimer(id int) *Aimer         { return c.aimers[id] }
func (c *Context) Slider(id int) *Slider       { return c.sliders[id] }
func (c *Context) Button(id int) *Button       { return c.buttons[id] }
func (c *Context) TextField(id int) *TextField { return c.fields[id] }

// Picked returns the control captured by the current press.
func (c *Context) Picked() Pick { return c.picked }

// Hovered returns the mover, aimer or push button under the mouse as of the
// last Hover call.
func (c *Context) Hovered() Pick { return c.hover }

// Focused returns the ID of the text field receiving key input and true,
// or false when no text field is focused.
func (c *Context) Focused() (int, bool) { return c.focus, c.focus >= 0 }

// hitTest returns the control under pix by priority. A press that hits
// nothing yields PickCamera when a camera is attached.
func (c *Context) hitTest(pix ms2.Vec) Pick {
	v := c.View
	for i, m := range c.movers {
		if m.Hit(pix, v) {
			return Pick{Kind: PickMover, ID: i}
		}
	}
	for i, a := range c.aimers {
		if a.Hit(pix) {
			return Pick{Kind: PickAimer, ID: i}
		}
	}
	for i, s := range c.sliders {
		if s.Hit(pix) {
			return Pick{Kind: PickSlider, ID: i}
		}
	}
	for i, b := range c.buttons {
		if b.Hit(pix) {
			return Pick{Kind: PickButton, ID: i}
		}
	}
	for i, t := range c.fields {
		if t.Hit(pix) {
			return Pick{Kind: PickTextField, ID: i}
		}
	}
	if c.Camera != nil {
		return Pick{Kind: PickCamera}
	}
	return Pick{}
}

// MouseDown handles a button press at window coordinates (x,y) and returns
// the captured control. Focus moves to a hit text field, or is lost otherwise.
func (c *Context) MouseDown(x, y float32) Pick {
	pix := c.View.Pixel(x, y)
	c.mouse = pix
	p := c.hitTest(pix)
	c.picked = p
	if p.Kind != PickTextField && c.focus >= 0 {
		c.focus = -1
		c.Dirty = true
	}
	switch p.Kind {
	case PickMover:
		c.movers[p.ID].Down(pix, c.View)
	case PickAimer:
		if c.aimers[p.ID].Down(pix) == AimNone {
			c.picked = Pick{}
		}
	case PickSlider:
		if c.sliders[p.ID].Mouse(pix) {
			c.changed(p)
		}
	case PickButton:
		c.overButton = true
	case PickTextField:
		c.focus = p.ID
	case PickCamera:
		c.Camera.Down(pix)
	}
	if c.picked.IsControl() {
		c.Dirty = true
	}
	return c.picked
}

// MouseDrag handles mouse motion with a button held. It reports whether
// anything changed and needs redrawing.
func (c *Context) MouseDrag(x, y float32) bool {
	pix := c.View.Pixel(x, y)
	c.mouse = pix
	p := c.picked
	var moved bool
	switch p.Kind {
	case PickMover:
		moved = c.movers[p.ID].Drag(pix, c.View)
	case PickAimer:
		moved = c.aimers[p.ID].Drag(pix)
	case PickSlider:
		moved = c.sliders[p.ID].Mouse(pix)
	case PickButton:
		// Pressed look changes only when the mouse crosses the button edge.
		over := c.buttons[p.ID].Hit(pix)
		moved = over != c.overButton
		c.overButton = over
	case PickCamera:
		if c.Camera.Drag(pix) {
			c.cameraView()
			moved = true
		}
	}
	if moved {
		if p.IsControl() && p.Kind != PickButton {
			c.changed(p)
		}
		c.Dirty = true
	}
	return moved
}

// MouseUp handles a button release. A captured button fires only if the
// release lands on it. The capture is cleared and the released pick returned.
func (c *Context) MouseUp(x, y float32) Pick {
	pix := c.View.Pixel(x, y)
	c.mouse = pix
	p := c.picked
	switch p.Kind {
	case PickMover:
		c.movers[p.ID].Up()
	case PickAimer:
		c.aimers[p.ID].Up()
	case PickButton:
		if c.buttons[p.ID].UpHit(pix) {
			c.changed(p)
		}
	case PickCamera:
		c.Camera.Up()
	}
	if !p.IsNone() {
		c.Dirty = true
	}
	c.picked = Pick{}
	c.overButton = false
	return p
}

// Hover handles mouse motion with no button held. It tracks the mover, aimer
// or push button under the mouse and reports whether that changed.
func (c *Context) Hover(x, y float32) bool {
	pix := c.View.Pixel(x, y)
	c.mouse = pix
	h := Pick{}
	for i, m := range c.movers {
		if m.Hit(pix, c.View) {
			h = Pick{Kind: PickMover, ID: i}
			break
		}
	}
	if h.IsNone() {
		for i, a := range c.aimers {
			if a.Hit(pix) {
				h = Pick{Kind: PickAimer, ID: i}
				break
			}
		}
	}
	if h.IsNone() {
		for i, b := range c.buttons {
			if b.Kind == ButtonPush && b.Hit(pix) {
				h = Pick{Kind: PickButton, ID: i}
				break
			}
		}
	}
	if h == c.hover {
		return false
	}
	c.hover = h
	c.Dirty = true
	return true
}

// KeyChar sends a character to the focused text field. Backspace is '\b'.
// Runes outside the ASCII range are ignored. Reports whether the text changed.
func (c *Context) KeyChar(r rune) bool {
	if c.focus < 0 || r < 0 || r > 127 {
		return false
	}
	if !c.fields[c.focus].AddChar(byte(r)) {
		return false
	}
	c.changed(Pick{Kind: PickTextField, ID: c.focus})
	c.Dirty = true
	return true
}

// Wheel dollies the camera. dir is the sign of the scroll offset.
func (c *Context) Wheel(dir int) bool {
	if c.Camera == nil || dir == 0 {
		return false
	}
	c.Camera.Wheel(dir)
	c.cameraView()
	c.Dirty = true
	return true
}

func (c *Context) changed(p Pick) {
	if c.OnChange != nil {
		c.OnChange(p)
	}
}

// Draw draws every widget. Headers go first, then world space widgets so that
// the screen space controls overlay them.
func (c *Context) Draw(r Renderer) {
	v := c.View
	for _, h := range c.headers {
		h.Draw(r, v)
	}
	for i, m := range c.movers {
		m.Draw(r, v, c.MoverColor, c.hover == Pick{Kind: PickMover, ID: i})
	}
	for i, a := range c.aimers {
		col := c.AimerColor
		if c.hover == (Pick{Kind: PickAimer, ID: i}) || c.picked == (Pick{Kind: PickAimer, ID: i}) {
			col = Red
		}
		a.Draw(r, col, 0)
	}
	for _, s := range c.sliders {
		s.Draw(r, v)
	}
	for i, b := range c.buttons {
		pick := Pick{Kind: PickButton, ID: i}
		pressed := c.picked == pick && b.Hit(c.mouse)
		b.Draw(r, v, pressed)
		if !pressed && c.hover == pick {
			b.Highlight(r, v)
		}
	}
	for i, t := range c.fields {
		var bg color.Color = White
		if i == c.focus {
			bg = OffWhite
		}
		t.Draw(r, v, Black, bg)
	}
	r.SetTransform(v.Full())
}
