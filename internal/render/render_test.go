package render

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relief-mapper/internal/relief"
	"relief-mapper/pkg/colorutil"
)

func squareResult(t *testing.T) *relief.Result {
	t.Helper()
	rows := []string{
		".....",
		".###.",
		".#.#.",
		".###.",
		".....",
	}
	img := image.NewRGBA(image.Rect(0, 0, 5, 5))
	for y, row := range rows {
		for x, c := range row {
			px := colorutil.White
			if c == '#' {
				px = colorutil.Black
			}
			img.SetRGBA(x, y, px)
		}
	}
	res, err := relief.Run(img, relief.DefaultOptions())
	require.NoError(t, err)
	return res
}

func TestMaskImage(t *testing.T) {
	m := relief.NewMask(2, 1)
	m.Set(1, 0, relief.ClassLine)
	img := MaskImage(m)
	assert.Equal(t, []uint8{MaskBackground, MaskLine}, img.Pix)
}

func TestLabelImage(t *testing.T) {
	res := squareResult(t)
	img := LabelImage(res.Labels)
	assert.Equal(t, uint8(1), img.GrayAt(1, 1).Y)
	assert.Equal(t, uint8(2), img.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(3), img.GrayAt(2, 2).Y)
}

func TestFalseColor(t *testing.T) {
	g := relief.NewLabelGrid(3, 1)
	g.Set(1, 0, 1)
	g.Set(2, 0, 2)
	img := FalseColor(g)
	assert.Equal(t, colorutil.Black, img.RGBAAt(0, 0))
	assert.NotEqual(t, img.RGBAAt(1, 0), img.RGBAAt(2, 0))
	assert.Equal(t, uint8(255), img.RGBAAt(1, 0).A)
}

func TestHeightImage(t *testing.T) {
	res := squareResult(t)
	img := HeightImage(res)

	// Outside and line sit at 0, the hollow center one step below.
	assert.Equal(t, color.Gray16{Y: 0xffff}, img.Gray16At(0, 0))
	assert.Equal(t, color.Gray16{Y: 0xffff}, img.Gray16At(1, 1))
	assert.Equal(t, color.Gray16{Y: 0}, img.Gray16At(2, 2))
}

func TestHeightImage_Flat(t *testing.T) {
	res := &relief.Result{
		Labels:  relief.NewLabelGrid(2, 2),
		Regions: relief.Regions{},
		Lines:   relief.Lines{},
	}
	img := HeightImage(res)
	assert.Equal(t, color.Gray16{}, img.Gray16At(1, 1))
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, WritePNG(path, image.NewGray(image.Rect(0, 0, 3, 3))))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.Error(t, WritePNG(filepath.Join(t.TempDir(), "no", "such", "dir.png"), image.NewGray(image.Rect(0, 0, 1, 1))))
}
