package glui

import (
	"image/color"
	"strings"

	"github.com/soypat/geometry/ms2"
)

// ButtonKind distinguishes momentary push buttons from checkboxes.
type ButtonKind uint8

const (
	ButtonPush ButtonKind = iota
	ButtonCheckbox
)

// Button is a rectangular screen space control. A push button runs Action when
// released over it. A checkbox flips the bool Value points to.
type Button struct {
	Kind ButtonKind
	// X,Y is the lower left corner in pixels. For checkboxes the box is drawn
	// offset 5 pixels left and 7 below so that X,Y sits near the label baseline.
	X, Y, W, H int
	Name       string
	Value      *bool
	Action     func()
	Background color.Color
	// TextColor of the label. A nil push button label contrasts with Background.
	TextColor color.Color
}

// NewPushButton returns a momentary button. action may be nil.
func NewPushButton(x, y, w, h int, name string, action func()) *Button {
	return &Button{
		Kind: ButtonPush, X: x, Y: y, W: w, H: h, Name: name, Action: action,
		Background: OffWhite, TextColor: Black,
	}
}

// NewCheckbox returns a square checkbox of side size bound to value.
func NewCheckbox(x, y, size int, name string, value *bool) *Button {
	return &Button{
		Kind: ButtonCheckbox, X: x, Y: y, W: size, H: size, Name: name, Value: value,
		Background: White, TextColor: Black,
	}
}

// TextWidth returns the pixel width of the widest label line.
func (b *Button) TextWidth() int {
	widest := 0
	for _, line := range strings.Split(b.Name, "\n") {
		widest = max(widest, len(line))
	}
	return GlyphWidth * widest
}

// Hit reports whether pix lies on the button. Checkbox regions extend over their label.
// The region is recomputed from the button fields on every call.
func (b *Button) Hit(pix ms2.Vec) bool {
	x, y := pix.X, pix.Y
	switch b.Kind {
	case ButtonPush:
		return x >= float32(b.X) && x <= float32(b.X+b.W) && y >= float32(b.Y) && y <= float32(b.Y+b.H)
	case ButtonCheckbox:
		x0, y0 := b.X-5, b.Y-7
		x1 := x0 + b.W
		if tw := b.TextWidth(); tw > 0 {
			x1 += tw + 7
		}
		return x >= float32(x0) && x <= float32(x1) && y >= float32(y0) && y <= float32(y0+b.H)
	}
	return false
}

// UpHit is called on mouse release. If the release lands on the button a checkbox
// toggles its value and a push button runs its action. Reports whether it was hit.
func (b *Button) UpHit(pix ms2.Vec) bool {
	hit := b.Hit(pix)
	if !hit {
		return false
	}
	switch {
	case b.Kind == ButtonCheckbox && b.Value != nil:
		*b.Value = !*b.Value
	case b.Kind == ButtonPush && b.Action != nil:
		b.Action()
	}
	return true
}

// Checked reports the bound checkbox value. Always false for push buttons.
func (b *Button) Checked() bool {
	return b.Kind == ButtonCheckbox && b.Value != nil && *b.Value
}

var checkMark = [7][7]uint8{
	{0, 0, 1, 0, 0, 0, 0},
	{0, 1, 1, 1, 0, 0, 0},
	{1, 1, 1, 1, 1, 0, 0},
	{1, 1, 0, 1, 1, 1, 0},
	{1, 0, 0, 0, 1, 1, 1},
	{0, 0, 0, 0, 0, 1, 1},
	{0, 0, 0, 0, 0, 0, 1},
}

// Draw draws the button in screen mode. pressed renders a push button sunken.
func (b *Button) Draw(r Renderer, v View, pressed bool) {
	r.SetTransform(v.ScreenMode())
	tc := b.TextColor
	switch b.Kind {
	case ButtonPush:
		bg := b.Background
		if bg == nil {
			bg = OffWhite
		}
		if tc == nil {
			tc = ContrastText(bg)
		}
		if pressed {
			DepressedBox(r, b.X, b.Y, b.W, b.H, bg)
		} else {
			UnpressedBox(r, b.X, b.Y, b.W, b.H, bg)
		}
		b.drawPushLabel(r, tc)
	case ButtonCheckbox:
		if tc == nil {
			tc = Black
		}
		x, y := b.X-5, b.Y-7
		Rectangle(r, x, y, b.W+1, b.H+1, White, true)
		Rectangle(r, x, y+1, 1, b.H-1, MdGray, true)
		Rectangle(r, x, y+b.H, b.W, 1, MdGray, true)
		Rectangle(r, x+1, y+2, 1, b.H-3, DkGray, true)
		Rectangle(r, x+1, y+b.H-1, b.W-2, 1, DkGray, true)
		if b.Checked() {
			for row := range checkMark {
				for col, on := range checkMark[row] {
					if on == 1 {
						Rectangle(r, x+4+col, y+b.H-5-row, 1, 1, Black, true)
					}
				}
			}
		}
		lines := strings.Split(b.Name, "\n")
		ypos := b.Y - 4
		if len(lines) > 1 {
			ypos += 9
		}
		for i, line := range lines {
			r.Text(ms2.Vec{X: float32(b.X + b.W), Y: float32(ypos - 14*i)}, line, tc)
		}
	}
}

func (b *Button) drawPushLabel(r Renderer, c color.Color) {
	ypos := b.Y + 6
	singleLine := GlyphWidth*len(b.Name) <= b.W
	if singleLine {
		if b.H > 30 {
			ypos += (b.H - 20) / 2
		}
		CenterText(r, b.X, ypos, b.W, b.Name, c)
		return
	}
	first, rest, found := strings.Cut(b.Name, " ")
	if !found || b.H < 30 {
		CenterText(r, b.X, ypos, b.W, b.Name, c)
		return
	}
	CenterText(r, b.X, ypos+15, b.W, first, c)
	CenterText(r, b.X, ypos, b.W, strings.TrimLeft(rest, " "), c)
}

// Highlight overlays a translucent white on the button to signal hover.
func (b *Button) Highlight(r Renderer, v View) {
	r.SetTransform(v.ScreenMode())
	Rectangle(r, b.X, b.Y, b.W, b.H, WithAlpha(White, 0.5), true)
	x1, y1 := float32(b.X), float32(b.Y)
	x2, y2 := x1+float32(b.W), y1+float32(b.H)
	Line2D(r, ms2.Vec{X: x1 + 1, Y: y1 + 1.5}, ms2.Vec{X: x2 - 1, Y: y1 + 1.5}, Black, 1)
	Line2D(r, ms2.Vec{X: x2 - 1.5, Y: y2 - 1}, ms2.Vec{X: x2 - 1.5, Y: y1 + 1}, Black, 1)
}
