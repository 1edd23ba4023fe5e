// Package cleanup removes speckle from contour masks with OpenCV morphology.
package cleanup

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"relief-mapper/internal/relief"
)

// Morphological closes small gaps in contour lines and then removes isolated
// line speckle, each with the given number of 3x3 iterations. Zero iterations
// returns the mask unchanged. The input mask is not modified.
func Morphological(mask *relief.Mask, iterations int) (*relief.Mask, error) {
	if iterations <= 0 {
		return mask, nil
	}

	buf := make([]byte, len(mask.Pix))
	for i, c := range mask.Pix {
		if c == relief.ClassLine {
			buf[i] = 255
		}
	}

	mat, err := gocv.NewMatFromBytes(mask.Height, mask.Width, gocv.MatTypeCV8U, buf)
	if err != nil {
		return nil, fmt.Errorf("failed to build mask matrix: %w", err)
	}
	defer mat.Close()

	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(3, 3))
	defer kernel.Close()

	// Close small gaps
	for i := 0; i < iterations; i++ {
		gocv.MorphologyEx(mat, &mat, gocv.MorphClose, kernel)
	}

	// Remove small noise
	for i := 0; i < iterations; i++ {
		gocv.MorphologyEx(mat, &mat, gocv.MorphOpen, kernel)
	}

	out := relief.NewMask(mask.Width, mask.Height)
	for i, v := range mat.ToBytes() {
		if v != 0 {
			out.Pix[i] = relief.ClassLine
		}
	}
	return out, nil
}

// Hook adapts Morphological to relief.Options.Cleanup. On an OpenCV failure
// the mask is passed through unchanged and onErr, if set, is told why.
func Hook(iterations int, onErr func(error)) func(*relief.Mask) *relief.Mask {
	return func(m *relief.Mask) *relief.Mask {
		out, err := Morphological(m, iterations)
		if err != nil {
			if onErr != nil {
				onErr(err)
			}
			return m
		}
		return out
	}
}
