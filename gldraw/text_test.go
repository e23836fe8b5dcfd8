package gldraw

import (
	"testing"

	"github.com/soypat/glui"
)

func TestTypefaceRasterize(t *testing.T) {
	tf, err := DefaultTypeface()
	if err != nil {
		t.Fatal(err)
	}
	_, h := tf.Measure("x")
	if h < glui.GlyphHeight-4 || h > glui.GlyphHeight+4 {
		t.Errorf("line height %d far from %d", h, glui.GlyphHeight)
	}
	short, _ := tf.Measure("ab")
	long, _ := tf.Measure("abab")
	if short <= 0 || long <= short {
		t.Errorf("bad widths %d %d", short, long)
	}
	img := tf.Rasterize("Hello")
	var ink int
	for _, a := range img.Pix {
		if a > 0 {
			ink++
		}
	}
	if ink == 0 {
		t.Error("rasterized text has no ink")
	}
	if img.Bounds().Dy() != tf.Ascent()+tf.Descent() {
		t.Errorf("image height %d", img.Bounds().Dy())
	}
	if empty := tf.Rasterize(""); empty.Bounds().Dx() != 0 {
		t.Error("empty string should rasterize to zero width")
	}
}

func TestNewTypefaceErrors(t *testing.T) {
	if _, err := NewTypeface([]byte("not a font"), 12); err == nil {
		t.Error("expected parse error")
	}
	if _, err := NewTypeface(nil, 0); err == nil {
		t.Error("expected size error")
	}
}
