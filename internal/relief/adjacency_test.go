package relief

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAdjacency_Square(t *testing.T) {
	_, regions, lines, err := LabelComponents(maskFrom(t, squareRows...))
	require.NoError(t, err)

	warnings, err := BuildAdjacency(regions, lines)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	l := lines[1]
	assert.Equal(t, Slot{Label: 2, Valid: true}, l.Up)
	assert.Equal(t, Slot{Label: 3, Valid: true}, l.Down)
}

func TestBuildAdjacency_Symmetric(t *testing.T) {
	_, regions, lines, err := LabelComponents(maskFrom(t, nestedRows...))
	require.NoError(t, err)
	_, err = BuildAdjacency(regions, lines)
	require.NoError(t, err)

	for _, r := range regions {
		for _, ll := range r.Lines {
			l := lines[ll]
			assert.True(t, (l.Up.Valid && l.Up.Label == r.Label) || (l.Down.Valid && l.Down.Label == r.Label),
				"line %d does not list region %d", ll, r.Label)
		}
	}
	for _, l := range lines {
		for _, s := range []Slot{l.Up, l.Down} {
			require.True(t, s.Valid)
			assert.Contains(t, regions[s.Label].Lines, l.Label)
		}
	}
}

func TestBuildAdjacency_ThirdRegion(t *testing.T) {
	// One cross-shaped line cuts the image into four quadrants.
	_, regions, lines, err := LabelComponents(maskFrom(t,
		"..#..",
		"..#..",
		"#####",
		"..#..",
		"..#..",
	))
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Len(t, regions, 4)

	_, err = BuildAdjacency(regions, lines)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrThirdRegion))

	var ie *IntegrityError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, Label(1), ie.Label)
	assert.Equal(t, Label(4), ie.Other)
	assert.Contains(t, err.Error(), "line 1")
}

func TestBuildAdjacency_MissingLineIsWarning(t *testing.T) {
	regions := Regions{1: region(1, 2, 9)}
	lines := Lines{2: line(2)}

	warnings, err := BuildAdjacency(regions, lines)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, Warning{Kind: WarnMissingLine, Region: 1, Line: 9}, warnings[0])
	assert.Equal(t, Slot{Label: 1, Valid: true}, lines[2].Up)
	assert.False(t, lines[2].Down.Valid)
}

func TestLine_AddRegion(t *testing.T) {
	l := &Line{Label: 7}
	require.NoError(t, l.AddRegion(1))
	require.NoError(t, l.AddRegion(1))
	assert.False(t, l.Down.Valid, "re-adding a region must not fill the second slot")
	require.NoError(t, l.AddRegion(2))
	assert.Equal(t, Slot{Label: 2, Valid: true}, l.Other(1))
	assert.Equal(t, Slot{Label: 1, Valid: true}, l.Other(2))
	assert.False(t, l.Other(3).Valid)

	err := l.AddRegion(3)
	require.ErrorIs(t, err, ErrThirdRegion)
}
