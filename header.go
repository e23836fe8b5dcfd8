package glui

import (
	"image/color"

	"github.com/soypat/geometry/ms2"
)

// Header is an etched frame grouping related controls, with an optional
// title centered on its top edge. Corners are inclusive pixel coordinates.
type Header struct {
	X1, Y1, X2, Y2 int
	Title          string
	TextColor      color.Color
}

// NewHeader returns a frame spanning (x1,y1) to (x2,y2).
func NewHeader(x1, y1, x2, y2 int, title string) *Header {
	return &Header{X1: x1, Y1: y1, X2: x2, Y2: y2, Title: title, TextColor: Black}
}

// Within reports whether pix lies inside the frame, edges included.
func (h *Header) Within(pix ms2.Vec) bool {
	return pix.X >= float32(h.X1) && pix.X <= float32(h.X2) &&
		pix.Y >= float32(h.Y1) && pix.Y <= float32(h.Y2)
}

// Draw draws the frame in screen mode, leaving a gap in the top edge for the title.
func (h *Header) Draw(r Renderer, v View) {
	r.SetTransform(v.ScreenMode())
	x1, y1, x2, y2 := h.X1, h.Y1, h.X2, h.Y2
	w, ht := x2-x1+1, y2-y1+1
	if h.Title != "" {
		margin := (w - GlyphWidth*(1+len(h.Title))) / 2
		c := h.TextColor
		if c == nil {
			c = Black
		}
		r.Text(ms2.Vec{X: float32(x1 + margin + 4), Y: float32(y2 - 4)}, h.Title, c)
		Rectangle(r, x1, y2, margin, 1, MdGray, true)
		Rectangle(r, x2-margin, y2, margin, 1, MdGray, true)
		Rectangle(r, x1+1, y2-1, margin-1, 1, White, true)
		Rectangle(r, x2-margin, y2-1, margin-1, 1, White, true)
	} else {
		Rectangle(r, x1, y2, w, 1, MdGray, true)
		Rectangle(r, x1+1, y2-1, w-2, 1, White, true)
	}
	Rectangle(r, x1, y1, 1, ht, MdGray, true)
	Rectangle(r, x2-1, y1+1, 1, ht-1, MdGray, true)
	Rectangle(r, x1, y1+1, w, 1, MdGray, true)
	Rectangle(r, x1+1, y1+2, 1, ht-3, White, true)
	Rectangle(r, x2, y1, 1, ht, White, true)
	Rectangle(r, x1, y1, w, 1, White, true)
}
