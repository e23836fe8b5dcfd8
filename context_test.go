package glui_test

import (
	"testing"

	"github.com/soypat/geometry/ms3"
	"github.com/soypat/glui"
)

func TestPickString(t *testing.T) {
	tests := []struct {
		p    glui.Pick
		want string
	}{
		{glui.Pick{}, "none"},
		{glui.Pick{Kind: glui.PickCamera, ID: 3}, "camera"},
		{glui.Pick{Kind: glui.PickSlider, ID: 2}, "slider[2]"},
		{glui.Pick{Kind: glui.PickKind(99)}, "PickKind(99)[0]"},
	}
	for _, test := range tests {
		if got := test.p.String(); got != test.want {
			t.Errorf("got %q, want %q", got, test.want)
		}
	}
}

func TestContextPriority(t *testing.T) {
	ctx := glui.NewContext(testViewport)
	var light ms3.Vec
	var checked bool
	// Checkbox spans [390,403]x[290,303], slider [300,500]x[300,320] and the
	// light projects to the center at (400,300).
	bid := ctx.AddButton(glui.NewCheckbox(395, 297, 13, "", &checked))
	sid := ctx.AddSlider(glui.NewSlider(300, 310, 200, 0, 1, 0, false, "s"))
	mid := ctx.AddMover(glui.NewMover(&light))
	if got := ctx.MouseDown(400, 300); got != (glui.Pick{Kind: glui.PickMover, ID: mid}) {
		t.Fatalf("expected mover pick, got %s", got)
	}
	ctx.MouseUp(400, 300)
	if ctx.Picked() != (glui.Pick{}) {
		t.Error("release should clear pick")
	}
	// Out of mover reach over both slider and checkbox.
	if got := ctx.MouseDown(390, 303); got != (glui.Pick{Kind: glui.PickSlider, ID: sid}) {
		t.Fatalf("expected slider pick, got %s", got)
	}
	ctx.MouseUp(390, 303)
	if checked {
		t.Error("checkbox toggled by slider press")
	}
	// Only the checkbox remains under the mouse.
	if got := ctx.MouseDown(402, 290); got != (glui.Pick{Kind: glui.PickButton, ID: bid}) {
		t.Fatalf("expected button pick, got %s", got)
	}
	ctx.MouseUp(402, 290)
	if !checked {
		t.Error("checkbox should toggle on release")
	}
	if got := ctx.MouseDown(10, 10); got != (glui.Pick{}) {
		t.Errorf("expected no pick without camera, got %s", got)
	}
}

func TestContextMoverDrag(t *testing.T) {
	vp := testViewport
	vp.FlipY = true
	ctx := glui.NewContext(vp)
	var light ms3.Vec
	var changes []glui.Pick
	ctx.OnChange = func(p glui.Pick) { changes = append(changes, p) }
	ctx.AddMover(glui.NewMover(&light))
	ctx.MouseDown(400, 300)
	ctx.Dirty = false
	// Window Y grows downwards: 150 above center.
	if !ctx.MouseDrag(400, 150) {
		t.Fatal("expected drag to move light")
	}
	if !vecEqualWithin(light, ms3.Vec{Y: 0.5}, 1e-5) {
		t.Errorf("got light %v", light)
	}
	if !ctx.Dirty || len(changes) != 1 || changes[0].Kind != glui.PickMover {
		t.Errorf("expected dirty context and one change, got %v", changes)
	}
	ctx.MouseUp(400, 150)
	if ctx.Mover(0).Dragging() {
		t.Error("mover still dragging after release")
	}
}

func TestContextButtonReleaseElsewhere(t *testing.T) {
	ctx := glui.NewContext(testViewport)
	var fired int
	ctx.AddButton(glui.NewPushButton(10, 10, 80, 25, "Go", func() { fired++ }))
	ctx.AddButton(glui.NewPushButton(200, 10, 80, 25, "Other", func() { fired += 10 }))
	ctx.MouseDown(20, 20)
	ctx.MouseDrag(220, 20)
	ctx.MouseUp(220, 20)
	if fired != 0 {
		t.Errorf("release over another button fired %d", fired)
	}
	ctx.MouseDown(20, 20)
	ctx.MouseUp(25, 25)
	if fired != 1 {
		t.Errorf("release over pressed button fired %d", fired)
	}
}

func TestContextButtonDragRedraw(t *testing.T) {
	ctx := glui.NewContext(testViewport)
	ctx.AddButton(glui.NewPushButton(10, 10, 80, 25, "Go", nil))
	ctx.MouseDown(20, 20)
	ctx.Dirty = false
	if ctx.MouseDrag(30, 22) || ctx.Dirty {
		t.Error("motion within the button should not need a redraw")
	}
	if !ctx.MouseDrag(200, 22) {
		t.Error("leaving the button should redraw it unpressed")
	}
	if ctx.MouseDrag(300, 22) {
		t.Error("motion outside the button should not need a redraw")
	}
	if !ctx.MouseDrag(40, 22) {
		t.Error("returning to the button should redraw it pressed")
	}
	ctx.MouseUp(40, 22)
}

func TestContextCamera(t *testing.T) {
	ctx := glui.NewContext(testViewport)
	cam := glui.NewOrbitCamera(-5)
	ctx.UseCamera(cam)
	a := glui.NewAimer(ms3.Vec{}, ms3.Vec{X: 1}, 1, glui.View{})
	ctx.AddAimer(a)
	start := ctx.View.ModelView
	if got := ctx.MouseDown(50, 50); got.Kind != glui.PickCamera {
		t.Fatalf("expected camera pick, got %s", got)
	}
	if !ctx.MouseDrag(150, 50) {
		t.Fatal("expected camera drag to change view")
	}
	ctx.MouseUp(150, 50)
	if !equalWithin(cam.Rotation().X, 30, 1e-4) {
		t.Errorf("got camera rotation %v", cam.Rotation())
	}
	if ctx.View.ModelView == start {
		t.Error("camera drag did not update view")
	}
	// Aimers pick with the updated view.
	if !a.Hit(ctx.View.Project(a.Tip())) {
		t.Error("aimer did not follow context view")
	}
	if !ctx.Wheel(1) || !equalWithin(cam.Dolly, -5.1, 1e-5) {
		t.Errorf("wheel did not dolly, got %f", cam.Dolly)
	}
	ctx.SetViewport(glui.Viewport{Width: 400, Height: 400})
	want := cam.Persp(1)
	if ctx.View.Persp != want {
		t.Error("viewport change did not rebuild projection")
	}
}

func TestContextTextFocus(t *testing.T) {
	ctx := glui.NewContext(testViewport)
	id := ctx.AddTextField(glui.NewTextField(10, 500, 200, 20, ""))
	if ctx.KeyChar('x') {
		t.Error("key without focus should be ignored")
	}
	ctx.MouseDown(20, 505)
	ctx.MouseUp(20, 505)
	if got, ok := ctx.Focused(); !ok || got != id {
		t.Fatalf("expected focus on field, got %d %v", got, ok)
	}
	for _, r := range "hi!\b" {
		ctx.KeyChar(r)
	}
	if ctx.KeyChar('é') {
		t.Error("non ASCII rune should be ignored")
	}
	if got := ctx.TextField(id).Text(); got != "hi" {
		t.Errorf("got text %q", got)
	}
	ctx.MouseDown(600, 100)
	if _, ok := ctx.Focused(); ok {
		t.Error("press elsewhere should drop focus")
	}
}

func TestContextHover(t *testing.T) {
	ctx := glui.NewContext(testViewport)
	var p ms3.Vec
	ctx.AddMover(glui.NewMover(&p))
	if !ctx.Hover(402, 300) {
		t.Error("hover onto mover should report change")
	}
	if ctx.Hover(403, 301) {
		t.Error("hover within same mover should not report change")
	}
	if ctx.Hovered().Kind != glui.PickMover {
		t.Errorf("got hovered %s", ctx.Hovered())
	}
	if !ctx.Hover(100, 100) || !ctx.Hovered().IsNone() {
		t.Error("hover away should clear")
	}
}

func TestContextHoverButton(t *testing.T) {
	ctx := glui.NewContext(testViewport)
	var on bool
	ctx.AddButton(glui.NewCheckbox(20, 20, 13, "check", &on))
	id := ctx.AddButton(glui.NewPushButton(100, 100, 60, 20, "go", nil))
	if ctx.Hover(22, 20) {
		t.Error("checkboxes have no hover look")
	}
	if !ctx.Hover(110, 110) || ctx.Hovered() != (glui.Pick{Kind: glui.PickButton, ID: id}) {
		t.Fatalf("expected push button hover, got %s", ctx.Hovered())
	}
	var rec recorder
	ctx.Draw(&rec)
	if !rec.hasColor(glui.WithAlpha(glui.White, 0.5)) {
		t.Error("hovered push button not highlighted")
	}
}

func TestContextDraw(t *testing.T) {
	ctx := glui.NewContext(testViewport)
	var p ms3.Vec
	var on bool
	ctx.AddMover(glui.NewMover(&p))
	ctx.AddAimer(glui.NewAimer(ms3.Vec{X: -0.5}, ms3.Vec{Y: 1}, 0.5, glui.View{}))
	ctx.AddSlider(glui.NewSlider(20, 40, 100, 0, 2, 1, false, "gain"))
	ctx.AddButton(glui.NewCheckbox(20, 80, 13, "enable", &on))
	ctx.AddTextField(glui.NewTextField(20, 120, 100, 20, "name"))
	var rec recorder
	ctx.Draw(&rec)
	for _, want := range []string{"gain: 1.00", "enable", "name"} {
		if !rec.hasText(want) {
			t.Errorf("missing text %q in %q", want, rec.texts)
		}
	}
	if rec.disks < 3 {
		t.Errorf("expected mover and aimer disks, got %d", rec.disks)
	}
}
