// Package relief turns a contour map image into labeled contour lines and
// regions and infers a relative height for every region.
package relief

import (
	"fmt"
	"sort"
)

// Class is the binary classification of one mask pixel.
type Class uint8

const (
	// ClassConsumed marks a working-copy pixel already claimed by a flood fill.
	// It never appears in a mask returned by Classify.
	ClassConsumed Class = iota
	ClassBackground
	ClassLine
)

func (c Class) String() string {
	switch c {
	case ClassBackground:
		return "background"
	case ClassLine:
		return "line"
	default:
		return "consumed"
	}
}

// Mask is the binary contour mask produced by the classifier.
// Pix is row-major: the class at (x, y) is Pix[y*Width+x].
type Mask struct {
	Width  int
	Height int
	Pix    []Class
}

// NewMask returns an all-background mask.
func NewMask(width, height int) *Mask {
	m := &Mask{Width: width, Height: height, Pix: make([]Class, width*height)}
	for i := range m.Pix {
		m.Pix[i] = ClassBackground
	}
	return m
}

// At returns the class at (x, y).
func (m *Mask) At(x, y int) Class {
	return m.Pix[y*m.Width+x]
}

// Set sets the class at (x, y).
func (m *Mask) Set(x, y int, c Class) {
	m.Pix[y*m.Width+x] = c
}

// Clone returns a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	c := &Mask{Width: m.Width, Height: m.Height, Pix: make([]Class, len(m.Pix))}
	copy(c.Pix, m.Pix)
	return c
}

// Label identifies one connected component within a single labeling run.
// Zero means unlabeled.
type Label uint8

// MaxLabel is the largest label a run can hand out.
const MaxLabel = Label(255)

// LabelGrid holds the component label of every pixel, row-major.
type LabelGrid struct {
	Width  int
	Height int
	Pix    []Label
}

// NewLabelGrid returns an unlabeled grid.
func NewLabelGrid(width, height int) *LabelGrid {
	return &LabelGrid{Width: width, Height: height, Pix: make([]Label, width*height)}
}

// At returns the label at (x, y).
func (g *LabelGrid) At(x, y int) Label {
	return g.Pix[y*g.Width+x]
}

// Set sets the label at (x, y).
func (g *LabelGrid) Set(x, y int, l Label) {
	g.Pix[y*g.Width+x] = l
}

// Slot is an optional region reference on a line. Valid is false when the
// line has not (yet) found a region for that side.
type Slot struct {
	Label Label
	Valid bool
}

func (s Slot) String() string {
	if !s.Valid {
		return "none"
	}
	return fmt.Sprintf("%d", s.Label)
}

// NullHeight is an optional relative height.
type NullHeight struct {
	Value int64
	Valid bool
}

func (h NullHeight) String() string {
	if !h.Valid {
		return "none"
	}
	return fmt.Sprintf("%d", h.Value)
}

func someHeight(v int64) NullHeight {
	return NullHeight{Value: v, Valid: true}
}

// Region is one connected component of non-line pixels.
type Region struct {
	Label  Label
	Lines  []Label // line labels found on the region's border, first contact first
	Pixels int
	Height NullHeight
	Island int
}

// Line is one connected contour-line component. Up and Down are filled in
// discovery order; crossing from Down to Up rises by one elevation step.
type Line struct {
	Label  Label
	Up     Slot
	Down   Slot
	Pixels int
	Height NullHeight
	Island int
}

// AddRegion registers r as a bordering region, filling Up before Down.
// Registering a region already present is a no-op. A third distinct region
// returns an integrity error.
func (l *Line) AddRegion(r Label) error {
	switch {
	case l.Up.Valid && l.Up.Label == r, l.Down.Valid && l.Down.Label == r:
		return nil
	case !l.Up.Valid:
		l.Up = Slot{Label: r, Valid: true}
		return nil
	case !l.Down.Valid:
		l.Down = Slot{Label: r, Valid: true}
		return nil
	}
	return &IntegrityError{Err: ErrThirdRegion, Label: l.Label, Other: r}
}

// Other returns the region on the opposite side of r, if any.
func (l *Line) Other(r Label) Slot {
	switch {
	case l.Up.Valid && l.Up.Label == r:
		return l.Down
	case l.Down.Valid && l.Down.Label == r:
		return l.Up
	}
	return Slot{}
}

// Regions maps region labels to regions.
type Regions map[Label]*Region

// Lines maps line labels to lines.
type Lines map[Label]*Line

// SortedLabels returns the region labels in ascending order.
func (rs Regions) SortedLabels() []Label {
	out := make([]Label, 0, len(rs))
	for l := range rs {
		out = append(out, l)
	}
	sortLabels(out)
	return out
}

// SortedLabels returns the line labels in ascending order.
func (ls Lines) SortedLabels() []Label {
	out := make([]Label, 0, len(ls))
	for l := range ls {
		out = append(out, l)
	}
	sortLabels(out)
	return out
}

func sortLabels(ls []Label) {
	sort.Slice(ls, func(i, j int) bool { return ls[i] < ls[j] })
}
