package relief

import (
	"image"

	"relief-mapper/pkg/colorutil"
)

// Classify thresholds img into a contour mask. A pixel is ClassLine when its
// squared RGB distance to opts.ReferenceColor is at most opts.Tolerance.
// The mask is anchored at (0,0) whatever the image bounds.
func Classify(img image.Image, opts Options) *Mask {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	mask := &Mask{Width: w, Height: h, Pix: make([]Class, w*h)}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := colorutil.ToRGBA(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			if colorutil.SquaredDistance(px, opts.ReferenceColor) <= opts.Tolerance {
				mask.Pix[y*w+x] = ClassLine
			} else {
				mask.Pix[y*w+x] = ClassBackground
			}
		}
	}

	return mask
}
