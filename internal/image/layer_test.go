package image

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func TestLoad_PNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.SetRGBA(1, 1, color.RGBA{R: 9, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	path := filepath.Join(t.TempDir(), "map.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	src, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "png", src.Format)
	assert.Equal(t, 4, src.Width())
	assert.Equal(t, 3, src.Height())
	r, _, _, _ := src.Image.At(1, 1).RGBA()
	assert.Equal(t, uint32(9*0x101), r)
}

func TestLoad_BMP(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, img))
	path := filepath.Join(t.TempDir(), "map.bmp")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	src, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "bmp", src.Format)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)

	garbage := filepath.Join(dir, "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not an image"), 0o644))
	_, err = Load(garbage)
	assert.Error(t, err)
}

func TestSource_NilImage(t *testing.T) {
	var s Source
	assert.Zero(t, s.Width())
	assert.Zero(t, s.Height())
}

func TestIsSupportedFormat(t *testing.T) {
	assert.True(t, IsSupportedFormat("map.PNG"))
	assert.True(t, IsSupportedFormat("/tmp/a/map.tif"))
	assert.True(t, IsSupportedFormat("scan.webp"))
	assert.False(t, IsSupportedFormat("notes.txt"))
	assert.False(t, IsSupportedFormat("noext"))
}
