package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// FlattenOpacity rewrites the alpha channel of img: pixels that are fully
// transparent stay fully transparent, every other pixel gets alpha set to
// opacity exactly. This is a flat override, not a proportional blend, so any
// alpha gradient in the visible region collapses to the single level.
//
// At opacity 255 the input is returned as is, untouched.
func FlattenOpacity(img *image.NRGBA, opacity uint8) *image.NRGBA {
	if opacity == 255 {
		return img
	}
	out := imaging.Clone(img)
	for i := 3; i < len(out.Pix); i += 4 {
		if out.Pix[i] != 0 {
			out.Pix[i] = opacity
		}
	}
	return out
}
