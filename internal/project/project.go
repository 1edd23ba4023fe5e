// Package project provides elevation model files and their persistence.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"

	"relief-mapper/internal/relief"
)

// FormatVersion is the current model file version.
const FormatVersion = 1

// CompressedExt marks model files stored zstd-compressed.
const CompressedExt = ".zst"

// File represents a saved elevation model (.relief.json, or .relief.json.zst
// when compressed).
type File struct {
	Version int       `json:"version"`
	Created time.Time `json:"created"`

	// Image path (relative to the model file)
	ImagePath string `json:"image,omitempty"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`

	Settings Settings `json:"settings"`

	Islands  int      `json:"islands"`
	Regions  []Region `json:"regions"`
	Lines    []Line   `json:"lines"`
	Warnings []string `json:"warnings,omitempty"`
}

// Settings records the options the model was built with.
type Settings struct {
	ReferenceColor [3]uint8 `json:"reference_color"`
	Tolerance      int64    `json:"tolerance"`
	Step           int64    `json:"step"`
}

// Region is the saved form of relief.Region.
type Region struct {
	Label  uint8   `json:"label"`
	Lines  []uint8 `json:"lines"`
	Pixels int     `json:"pixels"`
	Height *int64  `json:"height,omitempty"`
	Island int     `json:"island"`
}

// Line is the saved form of relief.Line. Absent sides are omitted.
type Line struct {
	Label  uint8  `json:"label"`
	Up     *uint8 `json:"up_region,omitempty"`
	Down   *uint8 `json:"down_region,omitempty"`
	Pixels int    `json:"pixels"`
	Height *int64 `json:"height,omitempty"`
	Island int    `json:"island"`
}

// New builds a model file from a pipeline result. Regions and lines are
// stored in label order.
func New(res *relief.Result, opts relief.Options) *File {
	f := &File{
		Version: FormatVersion,
		Created: time.Now(),
		Width:   res.Labels.Width,
		Height:  res.Labels.Height,
		Settings: Settings{
			ReferenceColor: [3]uint8{opts.ReferenceColor.R, opts.ReferenceColor.G, opts.ReferenceColor.B},
			Tolerance:      opts.Tolerance,
			Step:           opts.Step,
		},
		Islands: res.Islands,
	}

	for _, l := range res.Regions.SortedLabels() {
		r := res.Regions[l]
		lines := make([]uint8, len(r.Lines))
		for i, ll := range r.Lines {
			lines[i] = uint8(ll)
		}
		f.Regions = append(f.Regions, Region{
			Label:  uint8(l),
			Lines:  lines,
			Pixels: r.Pixels,
			Height: heightPtr(r.Height),
			Island: r.Island,
		})
	}
	for _, l := range res.Lines.SortedLabels() {
		ln := res.Lines[l]
		f.Lines = append(f.Lines, Line{
			Label:  uint8(l),
			Up:     slotPtr(ln.Up),
			Down:   slotPtr(ln.Down),
			Pixels: ln.Pixels,
			Height: heightPtr(ln.Height),
			Island: ln.Island,
		})
	}
	for _, w := range res.Warnings {
		f.Warnings = append(f.Warnings, w.String())
	}
	return f
}

func heightPtr(h relief.NullHeight) *int64 {
	if !h.Valid {
		return nil
	}
	v := h.Value
	return &v
}

func slotPtr(s relief.Slot) *uint8 {
	if !s.Valid {
		return nil
	}
	v := uint8(s.Label)
	return &v
}

// Load loads a model from a file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if compressed(path) {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		if data, err = dec.DecodeAll(data, nil); err != nil {
			return nil, fmt.Errorf("zstd decode: %w", err)
		}
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	return &f, nil
}

// Save saves the model to a file.
func (f *File) Save(path string) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}

	if compressed(path) {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return err
		}
		data = enc.EncodeAll(data, nil)
		if err := enc.Close(); err != nil {
			return err
		}
	}

	return os.WriteFile(path, data, 0644)
}

func compressed(path string) bool {
	return strings.HasSuffix(path, CompressedExt)
}

// SetImage sets the source image path (relative to the model file).
func (f *File) SetImage(modelPath, imagePath string) {
	rel, err := filepath.Rel(filepath.Dir(modelPath), imagePath)
	if err != nil {
		f.ImagePath = imagePath
	} else {
		f.ImagePath = rel
	}
}

// GetImagePath returns the absolute path to the source image.
func (f *File) GetImagePath(modelPath string) string {
	if f.ImagePath == "" {
		return ""
	}
	if filepath.IsAbs(f.ImagePath) {
		return f.ImagePath
	}
	return filepath.Join(filepath.Dir(modelPath), f.ImagePath)
}
