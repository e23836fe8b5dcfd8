package gldraw

import (
	"errors"
	"image"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// DefaultFontSize is the point size at 72 DPI of [DefaultTypeface]. It yields
// lines close to [glui.GlyphHeight] pixels tall.
const DefaultFontSize = 12

// Typeface rasterizes single line labels into alpha masks.
type Typeface struct {
	face    font.Face
	ascent  int
	descent int
}

// DefaultTypeface returns the Go Regular typeface at [DefaultFontSize].
func DefaultTypeface() (*Typeface, error) {
	return NewTypeface(goregular.TTF, DefaultFontSize)
}

// NewTypeface parses a TTF blob and returns a typeface of the given point size.
func NewTypeface(ttf []byte, size float64) (*Typeface, error) {
	if size <= 0 {
		return nil, errors.New("font size must be positive")
	}
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	m := face.Metrics()
	return &Typeface{
		face:    face,
		ascent:  m.Ascent.Ceil(),
		descent: m.Descent.Ceil(),
	}, nil
}

// Ascent returns the pixels above the baseline.
func (tf *Typeface) Ascent() int { return tf.ascent }

// Descent returns the pixels below the baseline.
func (tf *Typeface) Descent() int { return tf.descent }

// Measure returns the pixel size of the rasterized string.
func (tf *Typeface) Measure(s string) (width, height int) {
	adv := font.MeasureString(tf.face, s)
	return adv.Ceil(), tf.ascent + tf.descent
}

// Rasterize draws s into a new alpha mask with its first row at the top of
// the line. The baseline sits Ascent rows down from the top. The empty
// string returns an image of zero width.
func (tf *Typeface) Rasterize(s string) *image.Alpha {
	w, h := tf.Measure(s)
	img := image.NewAlpha(image.Rect(0, 0, w, h))
	if w == 0 {
		return img
	}
	d := font.Drawer{
		Dst:  img,
		Src:  image.Opaque,
		Face: tf.face,
		Dot:  fixed.P(0, tf.ascent),
	}
	d.DrawString(s)
	return img
}
