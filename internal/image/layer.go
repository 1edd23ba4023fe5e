// Package image provides map image loading.
package image

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrEmptyImage is returned for images with zero width or height.
var ErrEmptyImage = errors.New("image has zero area")

// Source is a decoded map image.
type Source struct {
	Path   string      // Original file path
	Format string      // Decoder name reported by image.Decode
	Image  image.Image // Decoded pixels
}

// Load decodes the image at path. Zero-area images are rejected.
func Load(path string) (*Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyImage)
	}

	return &Source{Path: path, Format: format, Image: img}, nil
}

// Width returns the image width in pixels.
func (s *Source) Width() int {
	if s.Image == nil {
		return 0
	}
	return s.Image.Bounds().Dx()
}

// Height returns the image height in pixels.
func (s *Source) Height() int {
	if s.Image == nil {
		return 0
	}
	return s.Image.Bounds().Dy()
}

// SupportedFormats returns the list of supported image formats.
func SupportedFormats() []string {
	return []string{".png", ".jpg", ".jpeg", ".gif", ".tiff", ".tif", ".bmp", ".webp"}
}

// IsSupportedFormat checks if the given path has a supported image format.
func IsSupportedFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range SupportedFormats() {
		if ext == format {
			return true
		}
	}
	return false
}
