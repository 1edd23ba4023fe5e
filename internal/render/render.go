// Package render turns pipeline grids into images for debugging and output.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"relief-mapper/internal/relief"
	"relief-mapper/pkg/colorutil"
)

// Gray levels used for mask renders.
const (
	MaskLine       = 255
	MaskBackground = 1
)

// MaskImage renders a mask with line pixels at 255 and background at 1.
// Consumed pixels, which only exist in labeler working copies, render as 0.
func MaskImage(m *relief.Mask) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.Width, m.Height))
	for i, c := range m.Pix {
		switch c {
		case relief.ClassLine:
			img.Pix[i] = MaskLine
		case relief.ClassBackground:
			img.Pix[i] = MaskBackground
		}
	}
	return img
}

// LabelImage renders each pixel's label as its gray level.
func LabelImage(g *relief.LabelGrid) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	for i, l := range g.Pix {
		img.Pix[i] = uint8(l)
	}
	return img
}

// FalseColor renders every label in its own hue so neighboring components
// are easy to tell apart. Label 0 renders black.
func FalseColor(g *relief.LabelGrid) *image.RGBA {
	var palette [int(relief.MaxLabel) + 1]color.RGBA
	palette[0] = colorutil.Black
	for l := 1; l < len(palette); l++ {
		// Golden-angle hue spacing keeps consecutive labels far apart.
		palette[l] = colorutil.HSVToRGB(float64(l)*137.508, 0.65, 0.95)
	}

	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			img.SetRGBA(x, y, palette[g.At(x, y)])
		}
	}
	return img
}

// HeightImage renders relative heights as a 16-bit heightmap stretched to
// the full gray range. Pixels of components without a height render as 0.
// Heights from different islands share one scale even though they are not
// comparable.
func HeightImage(res *relief.Result) *image.Gray16 {
	g := res.Labels
	heights := make(map[relief.Label]int64, len(res.Regions)+len(res.Lines))
	for l, r := range res.Regions {
		if r.Height.Valid {
			heights[l] = r.Height.Value
		}
	}
	for l, ln := range res.Lines {
		if ln.Height.Valid {
			heights[l] = ln.Height.Value
		}
	}

	lo, hi := int64(math.MaxInt64), int64(math.MinInt64)
	for _, h := range heights {
		lo = min(lo, h)
		hi = max(hi, h)
	}

	img := image.NewGray16(image.Rect(0, 0, g.Width, g.Height))
	if len(heights) == 0 {
		return img
	}
	span := float64(hi - lo)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			h, ok := heights[g.At(x, y)]
			if !ok {
				continue
			}
			v := uint16(math.MaxUint16)
			if span > 0 {
				v = uint16(math.Round(float64(h-lo) / span * math.MaxUint16))
			}
			img.SetGray16(x, y, color.Gray16{Y: v})
		}
	}
	return img
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
