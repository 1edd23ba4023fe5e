package relief

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"relief-mapper/pkg/geometry"
)

func TestNearestDistance(t *testing.T) {
	grid := NewLabelGrid(11, 11)
	grid.Set(10, 10, 3)

	d, ok := NearestDistance(grid, geometry.Pt(0, 0), 3)
	assert.True(t, ok)
	assert.InDelta(t, math.Sqrt(200), d, 1e-12)

	_, ok = NearestDistance(grid, geometry.Pt(0, 0), 7)
	assert.False(t, ok)
}

func TestNearestDistance_PicksClosest(t *testing.T) {
	grid := NewLabelGrid(8, 4)
	grid.Set(7, 0, 2)
	grid.Set(1, 3, 2)
	grid.Set(3, 1, 5)

	d, ok := NearestDistance(grid, geometry.Pt(1, 1), 2)
	assert.True(t, ok)
	assert.Equal(t, 2.0, d)

	d, ok = NearestDistance(grid, geometry.Pt(3, 1), 5)
	assert.True(t, ok)
	assert.Equal(t, 0.0, d)
}

func TestNearestDistance_FromLabeling(t *testing.T) {
	labels, _, _, err := LabelComponents(maskFrom(t, squareRows...))
	assert.NoError(t, err)

	// From the hollow center the square is one pixel away in every direction.
	d, ok := NearestDistance(labels, geometry.Pt(2, 2), 1)
	assert.True(t, ok)
	assert.Equal(t, 1.0, d)
}
