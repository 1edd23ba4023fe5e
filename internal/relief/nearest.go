package relief

import (
	"math"

	"relief-mapper/pkg/geometry"
)

// NearestDistance returns the Euclidean distance from origin to the closest
// pixel labeled target. ok is false when no pixel carries target.
func NearestDistance(grid *LabelGrid, origin geometry.PointInt, target Label) (dist float64, ok bool) {
	best := int64(-1)
	for y := 0; y < grid.Height; y++ {
		row := grid.Pix[y*grid.Width : (y+1)*grid.Width]
		for x, l := range row {
			if l != target {
				continue
			}
			d := origin.DistanceSquared(geometry.Pt(x, y))
			if best < 0 || d < best {
				best = d
			}
		}
	}
	if best < 0 {
		return 0, false
	}
	return math.Sqrt(float64(best)), true
}
