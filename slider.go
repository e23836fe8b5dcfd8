package glui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms2"
)

// Slider maps a knob position along a horizontal or vertical pixel track
// to a value in [Min, Max].
type Slider struct {
	// X,Y is the track start in pixels (left end or bottom end).
	X, Y int
	// Size is the track length in pixels.
	Size     int
	Vertical bool
	Min, Max float32
	Name     string
	Color    color.Color
	loc      int
}

// NewSlider returns a slider with its knob set to init.
func NewSlider(x, y, size int, min, max, init float32, vertical bool, name string) *Slider {
	s := &Slider{X: x, Y: y, Size: size, Vertical: vertical, Name: name, Color: Black}
	s.SetRange(min, max, init)
	return s
}

func (s *Slider) track() int {
	if s.Vertical {
		return s.Y
	}
	return s.X
}

// locFor returns the knob location for value val, clamped to the track.
func (s *Slider) locFor(val float32) int {
	start := s.track()
	if s.Max == s.Min || s.Size <= 0 {
		return start
	}
	t := clampf((val-s.Min)/(s.Max-s.Min), 0, 1)
	return start + int(math32.Round(t*float32(s.Size)))
}

// SetRange sets the value range and moves the knob to init.
// It may be called mid-drag.
func (s *Slider) SetRange(min, max, init float32) {
	s.Min = min
	s.Max = max
	s.loc = s.locFor(init)
}

// SetValue moves the knob to val, clamped to the range.
func (s *Slider) SetValue(val float32) {
	s.loc = s.locFor(val)
}

// Value returns the value for the current knob position.
func (s *Slider) Value() float32 {
	if s.Size <= 0 {
		return s.Min
	}
	return s.Min + float32(s.loc-s.track())/float32(s.Size)*(s.Max-s.Min)
}

// Knob returns the knob position in pixels along the track axis.
func (s *Slider) Knob() int { return s.loc }

// Hit reports whether pix lies on the slider. The region is generous across
// the track and, for vertical sliders, covers the name and value labels.
func (s *Slider) Hit(pix ms2.Vec) bool {
	x, y := pix.X, pix.Y
	X, Y, size := float32(s.X), float32(s.Y), float32(s.Size)
	if s.Vertical {
		return x >= X-16 && x <= X+16 && y >= Y-32 && y <= Y+size+27
	}
	return x >= X && x <= X+size && y >= Y-10 && y <= Y+10
}

// Mouse snaps the knob to the mouse position clamped to the track.
// It reports whether the knob moved.
func (s *Slider) Mouse(pix ms2.Vec) bool {
	old := s.loc
	mouse := pix.X
	if s.Vertical {
		mouse = pix.Y
	}
	start := s.track()
	loc := int(math32.Round(mouse))
	switch {
	case loc < start:
		loc = start
	case loc > start+s.Size:
		loc = start + s.Size
	}
	s.loc = loc
	return old != loc
}

// Draw draws the track, knob and labels in screen mode.
func (s *Slider) Draw(r Renderer, v View) {
	r.SetTransform(v.ScreenMode())
	grays := [4]color.Color{MdGray, DkGray, LtGray, White}
	x, y, loc := s.X, s.Y, s.loc
	if s.Vertical {
		for i, g := range grays {
			Rectangle(r, x-1+i, y, 1, s.Size, g, true)
		}
		Rectangle(r, x-10, loc-3, 20, 7, OffWhite, true)
		Rectangle(r, x-10, loc-3, 20, 1, DkGray, true)
		Rectangle(r, x+10, loc-3, 1, 7, DkGray, true)
		Rectangle(r, x-10, loc-2, 1, 6, White, true)
		Rectangle(r, x-10, loc+3, 20, 1, White, true)
		Rectangle(r, x-9, loc-2, 18, 1, MdGray, true)
		Rectangle(r, x-9, loc+2, 18, 1, LtGray, true)
	} else {
		for i, g := range grays {
			Rectangle(r, x, y-i+1, s.Size, 1, g, true)
		}
		Rectangle(r, loc-3, y-10, 7, 20, OffWhite, true)
		Rectangle(r, loc+3, y-9, 1, 20, DkGray, true)
		Rectangle(r, loc-3, y-9, 1, 19, White, true)
		Rectangle(r, loc-3, y-10, 7, 1, DkGray, true)
		Rectangle(r, loc-2, y-9, 1, 18, LtGray, true)
		Rectangle(r, loc+2, y-9, 1, 19, MdGray, true)
	}
	if s.Name == "" {
		return
	}
	c := s.Color
	if c == nil {
		c = Black
	}
	val := s.Value()
	if s.Vertical {
		CenterText(r, x-s.Size, y+s.Size+6, 2*s.Size, s.Name, c)
		CenterText(r, x-s.Size, y-15, 2*s.Size, formatValue(val, false), c)
		return
	}
	label := s.Name + ": " + formatValue(val, true)
	r.Text(ms2.Vec{X: float32(x + s.Size + 8), Y: float32(y - 2)}, label, c)
}

// formatValue formats slider values compactly, dropping the leading zero of
// magnitudes below one (".500" instead of "0.500").
func formatValue(val float32, fine bool) string {
	var s string
	abs := math32.Abs(val)
	switch {
	case abs >= 1:
		s = fmt.Sprintf("%3.2f", val)
	case fine && abs < .001 && abs > 0:
		s = fmt.Sprintf("%4.4f", val)
	default:
		s = fmt.Sprintf("%3.3f", val)
	}
	if strings.HasPrefix(s, "-0.") {
		return "-" + s[2:]
	}
	return strings.TrimPrefix(s, "0")
}
