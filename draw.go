package glui

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms2"
	"github.com/soypat/geometry/ms3"
)

// Renderer draws the primitives widgets use for visual feedback. Points are
// transformed by the matrix last passed to SetTransform; use [Viewport.ScreenMode]
// to draw in pixels. Text is always positioned in viewport pixels.
type Renderer interface {
	SetTransform(m ms3.Mat4)
	Line(p1, p2 ms3.Vec, c color.Color, width float32)
	Disk(p ms3.Vec, diameter float32, c color.Color)
	Quad(p1, p2, p3, p4 ms3.Vec, c color.Color)
	Text(pix ms2.Vec, s string, c color.Color)
}

// Character cell of the label font used to size widget hit regions.
const (
	GlyphWidth  = 9
	GlyphHeight = 15
)

func pix3(x, y float32) ms3.Vec { return ms3.Vec{X: x, Y: y} }

// Rectangle draws an axis aligned pixel rectangle with lower left corner (x,y).
// Screen mode must be the active transform.
func Rectangle(r Renderer, x, y, w, h int, c color.Color, solid bool) {
	x1, y1 := float32(x), float32(y)
	x2, y2 := x1+float32(w), y1+float32(h)
	if solid {
		r.Quad(pix3(x1, y1), pix3(x2, y1), pix3(x2, y2), pix3(x1, y2), c)
		return
	}
	r.Line(pix3(x1, y1), pix3(x2, y1), c, 1)
	r.Line(pix3(x2, y1), pix3(x2, y2), c, 1)
	r.Line(pix3(x2, y2), pix3(x1, y2), c, 1)
	r.Line(pix3(x1, y2), pix3(x1, y1), c, 1)
}

// Line2D draws a pixel space line. Screen mode must be the active transform.
func Line2D(r Renderer, a, b ms2.Vec, c color.Color, width float32) {
	r.Line(pix3(a.X, a.Y), pix3(b.X, b.Y), c, width)
}

// dashPixels is the on/off period of dashed lines.
const dashPixels = 4

// DashedLine draws a world space line p1p2 with dashes of roughly
// equal screen length. The view's full transform must be active.
func DashedLine(r Renderer, v View, p1, p2 ms3.Vec, c color.Color, width float32) {
	length := math32.Sqrt(ms2.Norm2(ms2.Sub(v.Project(p2), v.Project(p1))))
	n := int(length / dashPixels)
	if n < 2 {
		r.Line(p1, p2, c, width)
		return
	}
	delta := ms3.Scale(1/float32(n), ms3.Sub(p2, p1))
	for i := 0; i < n; i += 2 {
		a := ms3.Add(p1, ms3.Scale(float32(i), delta))
		r.Line(a, ms3.Add(a, delta), c, width)
	}
}

const circleSegments = 12

// Circle draws a pixel space circle outline. Screen mode must be the active transform.
func Circle(r Renderer, center ms2.Vec, radius float32, c color.Color) {
	prev := ms2.Add(center, ms2.Vec{X: radius})
	for i := 1; i <= circleSegments; i++ {
		a := 2 * math32.Pi * float32(i) / circleSegments
		next := ms2.Add(center, ms2.Vec{X: radius * math32.Cos(a), Y: radius * math32.Sin(a)})
		Line2D(r, prev, next, c, 1)
		prev = next
	}
}

// Crosshairs draws a circle with four ticks centered on s.
func Crosshairs(r Renderer, s ms2.Vec, radius float32, c color.Color) {
	inner := 0.4 * radius
	Circle(r, s, 0.5, c)
	Circle(r, s, 2*inner, c)
	Line2D(r, ms2.Vec{X: s.X - inner, Y: s.Y}, ms2.Vec{X: s.X - radius, Y: s.Y}, c, 1)
	Line2D(r, ms2.Vec{X: s.X + inner, Y: s.Y}, ms2.Vec{X: s.X + radius, Y: s.Y}, c, 1)
	Line2D(r, ms2.Vec{X: s.X, Y: s.Y - inner}, ms2.Vec{X: s.X, Y: s.Y - radius}, c, 1)
	Line2D(r, ms2.Vec{X: s.X, Y: s.Y + inner}, ms2.Vec{X: s.X, Y: s.Y + radius}, c, 1)
}

// Sun draws a light source marker at pixel s. If flash is nil the rays are red.
func Sun(r Renderer, s ms2.Vec, flash color.Color) {
	if flash == nil {
		flash = Red
	}
	c := pix3(s.X, s.Y)
	r.Disk(c, 12, flash)
	r.Disk(c, 8, Yellow)
	const nRays = 16
	for i := 0; i < nRays; i++ {
		a := 2 * math32.Pi * float32(i) / nRays
		dx, dy := math32.Cos(a), math32.Sin(a)
		length := float32(11 * 2.5)
		if i%2 == 1 {
			length = 11 * 1.8
		}
		r.Line(pix3(s.X+9*dx, s.Y+9*dy), pix3(s.X+length*dx, s.Y+length*dy), flash, 1)
	}
}

// Arrow2D draws a pixel space arrow from base to head with a head of headSize pixels.
func Arrow2D(r Renderer, base, head ms2.Vec, c color.Color, headSize float32) {
	Line2D(r, base, head, c, 1)
	d := ms2.Sub(head, base)
	n := math32.Sqrt(ms2.Norm2(d))
	if headSize <= 0 || n < epstol {
		return
	}
	v1 := ms2.Scale(headSize/n, d)
	v2 := ms2.Vec{X: v1.Y / 2, Y: -v1.X / 2}
	Line2D(r, head, ms2.Add(ms2.Sub(head, v1), v2), c, 1)
	Line2D(r, head, ms2.Sub(ms2.Sub(head, v1), v2), c, 1)
}

// ArrowV draws the world space vector vec anchored at base as a screen space arrow.
// On return the view's full transform is active.
func ArrowV(r Renderer, v View, base, vec ms3.Vec, c color.Color, headSize float32) {
	b := v.Project(base)
	h := v.Project(ms3.Add(base, vec))
	r.SetTransform(v.ScreenMode())
	Arrow2D(r, b, h, c, headSize)
	r.SetTransform(v.Full())
}

// DepressedBox draws a sunken bevelled box. fill may be nil.
func DepressedBox(r Renderer, x, y, w, h int, fill color.Color) {
	if fill != nil {
		Rectangle(r, x, y, w, h, fill, true)
	}
	Rectangle(r, x, y, w, 1, White, true)
	Rectangle(r, x+w-1, y, 1, h, White, true)
	Rectangle(r, x+1, y+1, w-2, 1, LtGray, true)
	Rectangle(r, x+w-2, y+1, 1, h-2, LtGray, true)
	Rectangle(r, x, y+1, 1, h-1, DkGray, true)
	Rectangle(r, x, y+h-1, w-1, 1, DkGray, true)
	Rectangle(r, x+1, y+2, 1, h-3, MdGray, true)
	Rectangle(r, x+1, y+h-2, w-3, 1, MdGray, true)
}

// UnpressedBox draws a raised bevelled box. fill may be nil.
func UnpressedBox(r Renderer, x, y, w, h int, fill color.Color) {
	if fill != nil {
		Rectangle(r, x, y, w, h, fill, true)
	}
	Rectangle(r, x, y, w, 1, DkGray, true)
	Rectangle(r, x+w-1, y+1, 1, h-1, DkGray, true)
	Rectangle(r, x+1, y+1, w-2, 1, MdGray, true)
	Rectangle(r, x+w-2, y+1, 1, h-2, MdGray, true)
	Rectangle(r, x, y+1, 1, h-1, White, true)
	Rectangle(r, x, y+h-1, w-1, 1, White, true)
	Rectangle(r, x+1, y+2, 1, h-3, LtGray, true)
	Rectangle(r, x+1, y+h-2, w-3, 1, LtGray, true)
}

// CenterText draws text horizontally centered over a span of width pixels starting at x.
func CenterText(r Renderer, x, y, width int, text string, c color.Color) {
	xoff := (width - GlyphWidth*len(text)) / 2
	r.Text(ms2.Vec{X: float32(x + xoff), Y: float32(y)}, text, c)
}
