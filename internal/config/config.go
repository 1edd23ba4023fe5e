// Package config loads pipeline options from a YAML file.
package config

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"relief-mapper/internal/relief"
)

// File is the on-disk shape of a config file. Omitted keys keep their defaults.
//
//	reference_color: [0, 0, 0]
//	tolerance: 100000
//	step: 5
type File struct {
	ReferenceColor []int  `yaml:"reference_color,omitempty"`
	Tolerance      *int64 `yaml:"tolerance,omitempty"`
	Step           *int64 `yaml:"step,omitempty"`
}

// Load returns relief.DefaultOptions overlaid with the file at path.
// An empty path returns the defaults.
func Load(path string) (relief.Options, error) {
	opts := relief.DefaultOptions()
	if strings.TrimSpace(path) == "" {
		return opts, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("failed to read config: %w", err)
	}
	opts, err = Parse(b)
	if err != nil {
		return opts, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

// Parse overlays YAML config bytes onto relief.DefaultOptions and validates
// the result.
func Parse(b []byte) (relief.Options, error) {
	opts := relief.DefaultOptions()

	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return opts, err
	}
	if err := f.Apply(&opts); err != nil {
		return opts, err
	}
	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

// Apply copies every key present in f onto opts.
func (f File) Apply(opts *relief.Options) error {
	if f.ReferenceColor != nil {
		c, err := parseColor(f.ReferenceColor)
		if err != nil {
			return err
		}
		opts.ReferenceColor = c
	}
	if f.Tolerance != nil {
		opts.Tolerance = *f.Tolerance
	}
	if f.Step != nil {
		opts.Step = *f.Step
	}
	return nil
}

func parseColor(v []int) (color.RGBA, error) {
	if len(v) != 3 {
		return color.RGBA{}, fmt.Errorf("reference_color must have 3 components, got %d", len(v))
	}
	for i, c := range v {
		if c < 0 || c > 255 {
			return color.RGBA{}, fmt.Errorf("reference_color[%d] = %d out of range 0-255", i, c)
		}
	}
	return color.RGBA{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2]), A: 255}, nil
}
