package relief

import (
	"fmt"
	"image/color"

	"relief-mapper/pkg/colorutil"
)

// Options configures a pipeline run.
type Options struct {
	ReferenceColor color.RGBA // color of the contour lines
	Tolerance      int64      // max squared RGB distance still classified as line (inclusive)
	Step           int64      // height difference across one contour line

	// Cleanup, if set, post-processes the classified mask before labeling.
	Cleanup func(*Mask) *Mask
}

// DefaultOptions returns default pipeline options.
func DefaultOptions() Options {
	return Options{
		ReferenceColor: colorutil.Black,
		Tolerance:      100000,
		Step:           5,
	}
}

// Validate checks that the options can drive a run.
func (o Options) Validate() error {
	if o.Tolerance < 0 {
		return fmt.Errorf("%w: tolerance %d is negative", ErrInvalidOptions, o.Tolerance)
	}
	if o.Step <= 0 {
		return fmt.Errorf("%w: step %d must be positive", ErrInvalidOptions, o.Step)
	}
	return nil
}
