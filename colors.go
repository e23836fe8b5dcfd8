package glui

import (
	"image/color"

	"github.com/soypat/geometry/ms3"
)

// Widget palette. Grays match the classic bevelled look of the widgets.
var (
	Black    = color.NRGBA{A: 255}
	White    = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	Red      = color.NRGBA{R: 255, A: 255}
	Yellow   = color.NRGBA{R: 255, G: 255, A: 255}
	OffWhite = color.NRGBA{R: 240, G: 240, B: 240, A: 255}
	LtGray   = color.NRGBA{R: 227, G: 227, B: 227, A: 255}
	MdGray   = color.NRGBA{R: 160, G: 160, B: 160, A: 255}
	DkGray   = color.NRGBA{R: 105, G: 105, B: 105, A: 255}
)

// ColorVec returns the non-premultiplied RGB components of c in [0,1] and its alpha.
func ColorVec(c color.Color) (rgb ms3.Vec, alpha float32) {
	if c == nil {
		return ms3.Vec{}, 1
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	const inv = 1. / 255
	return ms3.Vec{X: float32(n.R) * inv, Y: float32(n.G) * inv, Z: float32(n.B) * inv}, float32(n.A) * inv
}

// WithAlpha returns c with its opacity replaced by alpha in [0,1].
func WithAlpha(c color.Color, alpha float32) color.NRGBA {
	rgb, _ := ColorVec(c)
	return color.NRGBA{
		R: uint8(rgb.X*255 + 0.5),
		G: uint8(rgb.Y*255 + 0.5),
		B: uint8(rgb.Z*255 + 0.5),
		A: uint8(clampf(alpha, 0, 1)*255 + 0.5),
	}
}

// Luminance returns the relative luminance of c (Rec. 709 weights).
func Luminance(c color.Color) float32 {
	rgb, _ := ColorVec(c)
	return 0.2126*rgb.X + 0.7152*rgb.Y + 0.0722*rgb.Z
}

// ContrastText returns black or white, whichever reads better over background.
func ContrastText(background color.Color) color.NRGBA {
	if Luminance(background) < 0.5 {
		return White
	}
	return Black
}

func clampf(v, Min, Max float32) float32 {
	if v < Min {
		return Min
	} else if v > Max {
		return Max
	}
	return v
}
