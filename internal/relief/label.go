package relief

import (
	"image"

	"relief-mapper/pkg/geometry"
)

var (
	conn4 = []image.Point{{X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 1}}
	conn8 = []image.Point{
		{X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 1},
		{X: -1, Y: -1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: 1, Y: 1},
	}
)

// labeler holds the state of one labeling run. work is a private clone of the
// input mask; pixels are set to ClassConsumed as flood fills claim them.
type labeler struct {
	work   *Mask
	labels *LabelGrid
	last   Label
}

// LabelComponents partitions the mask into labeled components. Contour lines
// are labeled first with 8-connectivity, then the remaining background is
// labeled as regions with 4-connectivity. Every region records the line
// labels it touches. The input mask is not modified.
func LabelComponents(mask *Mask) (*LabelGrid, Regions, Lines, error) {
	lb := &labeler{
		work:   mask.Clone(),
		labels: NewLabelGrid(mask.Width, mask.Height),
	}
	lines := make(Lines)
	regions := make(Regions)

	for y := 0; y < mask.Height; y++ {
		for x := 0; x < mask.Width; x++ {
			if lb.work.At(x, y) != ClassLine {
				continue
			}
			id, err := lb.claim("line", x, y)
			if err != nil {
				return nil, nil, nil, err
			}
			n, _ := lb.fill(x, y, id, conn8)
			lines[id] = &Line{Label: id, Pixels: n}
		}
	}

	for y := 0; y < mask.Height; y++ {
		for x := 0; x < mask.Width; x++ {
			if lb.work.At(x, y) != ClassBackground {
				continue
			}
			id, err := lb.claim("region", x, y)
			if err != nil {
				return nil, nil, nil, err
			}
			n, touches := lb.fill(x, y, id, conn4)
			regions[id] = &Region{Label: id, Lines: touches, Pixels: n}
		}
	}

	return lb.labels, regions, lines, nil
}

// claim hands out the next label, or fails once the label space is used up.
func (lb *labeler) claim(kind string, x, y int) (Label, error) {
	if lb.last == MaxLabel {
		return 0, &IntegrityError{
			Err:   ErrLabelSpaceExhausted,
			Kind:  kind,
			Label: lb.last,
			At:    geometry.Pt(x, y),
		}
	}
	lb.last++
	return lb.last, nil
}

// fill floods the component containing (sx, sy) with label id using an
// explicit stack. It returns the number of pixels claimed and the labels of
// already-labeled neighbors of a different class, in first-contact order.
func (lb *labeler) fill(sx, sy int, id Label, offsets []image.Point) (int, []Label) {
	w, h := lb.work.Width, lb.work.Height
	seed := lb.work.At(sx, sy)

	var touches []Label
	claimed := 0
	stack := []image.Point{{X: sx, Y: sy}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		idx := p.Y*w + p.X
		if lb.labels.Pix[idx] == id {
			continue
		}
		if lb.work.Pix[idx] != seed {
			if l := lb.labels.Pix[idx]; l != 0 && !containsLabel(touches, l) {
				touches = append(touches, l)
			}
			continue
		}

		lb.labels.Pix[idx] = id
		lb.work.Pix[idx] = ClassConsumed
		claimed++

		for _, d := range offsets {
			q := p.Add(d)
			if q.X >= 0 && q.X < w && q.Y >= 0 && q.Y < h {
				stack = append(stack, q)
			}
		}
	}

	return claimed, touches
}

func containsLabel(ls []Label, l Label) bool {
	for _, x := range ls {
		if x == l {
			return true
		}
	}
	return false
}
