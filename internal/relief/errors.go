package relief

import (
	"errors"
	"fmt"

	"relief-mapper/pkg/geometry"
)

var (
	// ErrLabelSpaceExhausted indicates the image holds more components than a Label can name.
	ErrLabelSpaceExhausted = errors.New("relief: label space exhausted")
	// ErrThirdRegion indicates a contour line borders more than two regions.
	ErrThirdRegion = errors.New("relief: line borders a third region")
	// ErrEmptyImage indicates a zero-area input.
	ErrEmptyImage = errors.New("relief: image has zero area")
	// ErrInvalidOptions indicates options that cannot drive a run.
	ErrInvalidOptions = errors.New("relief: invalid options")
)

// IntegrityError reports input that violates the structural assumptions of
// the pipeline. Err is one of ErrLabelSpaceExhausted or ErrThirdRegion.
type IntegrityError struct {
	Err   error
	Kind  string           // component kind being labeled ("line" or "region")
	Label Label            // offending line, or last label handed out
	Other Label            // third region for ErrThirdRegion
	At    geometry.PointInt // seed pixel for ErrLabelSpaceExhausted
}

func (e *IntegrityError) Error() string {
	switch {
	case errors.Is(e.Err, ErrThirdRegion):
		return fmt.Sprintf("%v: line %d already borders two regions, cannot add region %d", e.Err, e.Label, e.Other)
	case errors.Is(e.Err, ErrLabelSpaceExhausted):
		return fmt.Sprintf("%v: %s component at (%d,%d) would exceed label %d", e.Err, e.Kind, e.At.X, e.At.Y, e.Label)
	}
	return e.Err.Error()
}

func (e *IntegrityError) Unwrap() error {
	return e.Err
}

// WarningKind classifies a recoverable condition.
type WarningKind int

const (
	// WarnMissingLine: a region border references a line label that does not exist.
	WarnMissingLine WarningKind = iota + 1
	// WarnHeightConflict: a region was reached with two different candidate heights.
	WarnHeightConflict
)

func (k WarningKind) String() string {
	switch k {
	case WarnMissingLine:
		return "missing-line"
	case WarnHeightConflict:
		return "height-conflict"
	default:
		return "unknown"
	}
}

// Warning is a recoverable condition found during a run. The run keeps going
// and returns a best-effort result alongside its warnings.
type Warning struct {
	Kind   WarningKind
	Region Label
	Line   Label
	Have   int64 // height kept, for WarnHeightConflict
	Want   int64 // rejected candidate, for WarnHeightConflict
}

func (w Warning) String() string {
	switch w.Kind {
	case WarnMissingLine:
		return fmt.Sprintf("%s: region %d borders unknown line %d", w.Kind, w.Region, w.Line)
	case WarnHeightConflict:
		return fmt.Sprintf("%s: region %d has height %d, line %d implies %d", w.Kind, w.Region, w.Have, w.Line, w.Want)
	}
	return w.Kind.String()
}
