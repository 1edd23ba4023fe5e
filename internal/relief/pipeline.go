package relief

import (
	"fmt"
	"image"
)

// Result holds everything one pipeline run produces.
type Result struct {
	RawMask  *Mask // classifier output
	Mask     *Mask // mask after cleanup; same as RawMask without cleanup
	Labels   *LabelGrid
	Regions  Regions
	Lines    Lines
	Islands  int
	Warnings []Warning
}

// WarningCount returns how many warnings of kind the run produced.
func (r *Result) WarningCount(kind WarningKind) int {
	n := 0
	for _, w := range r.Warnings {
		if w.Kind == kind {
			n++
		}
	}
	return n
}

// Run executes the full pipeline on img: classify, optional cleanup, label,
// build adjacency, infer heights. Integrity violations abort the run; the
// error names the stage and matches ErrLabelSpaceExhausted or ErrThirdRegion
// with errors.Is.
func Run(img image.Image, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}

	raw := Classify(img, opts)
	mask := raw
	if opts.Cleanup != nil {
		w, h := mask.Width, mask.Height
		mask = opts.Cleanup(mask)
		if mask.Width != w || mask.Height != h {
			return nil, fmt.Errorf("cleanup: mask is %dx%d, want %dx%d", mask.Width, mask.Height, w, h)
		}
	}

	labels, regions, lines, err := LabelComponents(mask)
	if err != nil {
		return nil, fmt.Errorf("labeling: %w", err)
	}

	res := &Result{RawMask: raw, Mask: mask, Labels: labels, Regions: regions, Lines: lines}

	warnings, err := BuildAdjacency(regions, lines)
	res.Warnings = append(res.Warnings, warnings...)
	if err != nil {
		return nil, fmt.Errorf("adjacency: %w", err)
	}

	res.Warnings = append(res.Warnings, InferHeights(regions, lines, opts.Step)...)
	res.Islands = countIslands(regions, lines)

	return res, nil
}

func countIslands(regions Regions, lines Lines) int {
	n := -1
	for _, r := range regions {
		n = max(n, r.Island)
	}
	for _, l := range lines {
		n = max(n, l.Island)
	}
	return n + 1
}
