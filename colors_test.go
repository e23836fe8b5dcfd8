package glui_test

import (
	"image/color"
	"testing"

	"github.com/soypat/glui"
)

func TestContrastText(t *testing.T) {
	for _, test := range []struct {
		bg   color.Color
		want color.NRGBA
	}{
		{glui.White, glui.Black},
		{glui.OffWhite, glui.Black},
		{glui.Yellow, glui.Black},
		{glui.DkGray, glui.White},
		{glui.Black, glui.White},
		{glui.Red, glui.White},
	} {
		if got := glui.ContrastText(test.bg); got != test.want {
			t.Errorf("ContrastText(%v) = %v, want %v", test.bg, got, test.want)
		}
	}
}

func TestWithAlpha(t *testing.T) {
	got := glui.WithAlpha(glui.Red, 0.5)
	if got.R != 255 || got.G != 0 || got.A != 128 {
		t.Errorf("got %v", got)
	}
	if glui.WithAlpha(glui.Red, 2).A != 255 {
		t.Error("alpha not clamped")
	}
	rgb, a := glui.ColorVec(nil)
	if rgb.X != 0 || a != 1 {
		t.Errorf("nil color should be opaque black, got %v %v", rgb, a)
	}
}
