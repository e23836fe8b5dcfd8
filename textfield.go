package glui

import (
	"image/color"

	"github.com/soypat/geometry/ms2"
)

// MaxTextField is the maximum number of bytes a [TextField] holds.
const MaxTextField = 200

// TextField is a single line text entry box. Characters are appended with
// AddChar; backspace removes the last byte.
type TextField struct {
	X, Y, W, H int
	text       []byte
	saved      []byte
}

// NewTextField returns a text field with the given rectangle and initial text.
func NewTextField(x, y, w, h int, text string) *TextField {
	t := &TextField{X: x, Y: y, W: w, H: h}
	t.SetText(text)
	return t
}

// Text returns the current contents.
func (t *TextField) Text() string { return string(t.text) }

// SetText replaces the contents, truncated to [MaxTextField]-1 bytes.
func (t *TextField) SetText(s string) {
	if len(s) > MaxTextField-1 {
		s = s[:MaxTextField-1]
	}
	t.text = append(t.text[:0], s...)
}

// Clear empties the field, keeping the old contents for Restore.
func (t *TextField) Clear() {
	t.saved = append(t.saved[:0], t.text...)
	t.text = t.text[:0]
}

// Restore brings back the contents held before the last Clear.
func (t *TextField) Restore() {
	t.text = append(t.text[:0], t.saved...)
}

// AddChar appends c. A backspace ('\b') deletes the last byte instead.
// Characters past the capacity are dropped. Reports whether the text changed.
func (t *TextField) AddChar(c byte) bool {
	if c == '\b' {
		if len(t.text) == 0 {
			return false
		}
		t.text = t.text[:len(t.text)-1]
		return true
	}
	if len(t.text) >= MaxTextField-1 {
		return false
	}
	t.text = append(t.text, c)
	return true
}

// Hit reports whether pix lies in the half open field rectangle.
func (t *TextField) Hit(pix ms2.Vec) bool {
	return pix.X >= float32(t.X) && pix.X < float32(t.X+t.W) &&
		pix.Y >= float32(t.Y) && pix.Y < float32(t.Y+t.H)
}

// Draw draws a sunken box with the text. nil colors default to black on none.
func (t *TextField) Draw(r Renderer, v View, c, background color.Color) {
	if c == nil {
		c = Black
	}
	r.SetTransform(v.ScreenMode())
	DepressedBox(r, t.X, t.Y, t.W, t.H, background)
	r.Text(ms2.Vec{X: float32(t.X + 5), Y: float32(t.Y + 4)}, t.Text(), c)
}
