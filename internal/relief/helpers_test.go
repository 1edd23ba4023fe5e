package relief

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"relief-mapper/pkg/colorutil"
)

// maskFrom builds a mask from rows where '#' is a line pixel and anything
// else is background.
func maskFrom(t *testing.T, rows ...string) *Mask {
	t.Helper()
	require.NotEmpty(t, rows)
	m := NewMask(len(rows[0]), len(rows))
	for y, row := range rows {
		require.Len(t, row, m.Width, "row %d", y)
		for x, c := range row {
			if c == '#' {
				m.Set(x, y, ClassLine)
			}
		}
	}
	return m
}

// imageFrom renders rows as black contour pixels on a white background.
func imageFrom(rows ...string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, len(rows[0]), len(rows)))
	for y, row := range rows {
		for x, c := range row {
			var px color.RGBA = colorutil.White
			if c == '#' {
				px = colorutil.Black
			}
			img.SetRGBA(x, y, px)
		}
	}
	return img
}

// requireMonotonic checks that every line with two sides separates them by
// exactly one step and sits at the height of its upper side.
func requireMonotonic(t *testing.T, regions Regions, lines Lines, step int64) {
	t.Helper()
	for _, l := range lines {
		require.True(t, l.Height.Valid, "line %d has no height", l.Label)
		if !l.Up.Valid || !l.Down.Valid {
			continue
		}
		up, down := regions[l.Up.Label], regions[l.Down.Label]
		require.True(t, up.Height.Valid, "region %d has no height", up.Label)
		require.True(t, down.Height.Valid, "region %d has no height", down.Label)
		require.Equal(t, step, up.Height.Value-down.Height.Value, "line %d", l.Label)
		require.Equal(t, up.Height.Value, l.Height.Value, "line %d", l.Label)
	}
}

// line and region build adjacency records by hand.
func line(label Label, regions ...Label) *Line {
	l := &Line{Label: label}
	for _, r := range regions {
		if err := l.AddRegion(r); err != nil {
			panic(err)
		}
	}
	return l
}

func region(label Label, lines ...Label) *Region {
	return &Region{Label: label, Lines: lines}
}

var squareRows = []string{
	".....",
	".###.",
	".#.#.",
	".###.",
	".....",
}

var nestedRows = []string{
	".........",
	".#######.",
	".#.....#.",
	".#.###.#.",
	".#.#.#.#.",
	".#.###.#.",
	".#.....#.",
	".#######.",
	".........",
}
