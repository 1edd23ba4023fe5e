package relief

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/graph/traverse"
)

// InferHeights assigns a relative height to every region and line.
//
// Crossing a line from its Down region to its Up region rises by step, and a
// line's own height is that of its Up side. Each connected island of the
// adjacency graph is seeded independently: its lowest-labeled line gets
// height 0 and heights spread breadth-first from there. Heights are only
// comparable within one island.
//
// A region reached with two different candidate heights keeps the first one
// and yields a WarnHeightConflict warning. Heights from a previous call are
// discarded, so repeated calls give identical results.
func InferHeights(regions Regions, lines Lines, step int64) []Warning {
	for _, r := range regions {
		r.Height, r.Island = NullHeight{}, 0
	}
	for _, l := range lines {
		l.Height, l.Island = NullHeight{}, 0
	}

	var warnings []Warning
	g := newAdjacencyGraph(regions, lines)

	for island, nodes := range topo.ConnectedComponents(g) {
		ids := make([]Label, 0, len(nodes))
		for _, n := range nodes {
			ids = append(ids, Label(n.ID()))
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		var seed *Line
		for _, id := range ids {
			if r, ok := regions[id]; ok {
				r.Island = island
				continue
			}
			l := lines[id]
			l.Island = island
			if seed == nil {
				seed = l
			}
		}

		if seed == nil {
			// Island without contour lines: a single region.
			for _, id := range ids {
				regions[id].Height = someHeight(0)
			}
			continue
		}

		seed.Height = someHeight(0)
		bf := traverse.BreadthFirst{
			Traverse: func(e graph.Edge) bool {
				from, to := Label(e.From().ID()), Label(e.To().ID())
				if l, ok := lines[from]; ok {
					if w, conflict := spreadToRegion(l, regions[to], step); conflict {
						warnings = append(warnings, w)
					}
					return true
				}
				spreadToLine(regions[from], lines[to], step)
				return true
			},
		}
		bf.Walk(g, simple.Node(seed.Label), nil)
	}

	return warnings
}

// spreadToRegion sets r's height from line l, or checks it against the
// height r already has.
func spreadToRegion(l *Line, r *Region, step int64) (Warning, bool) {
	want := l.Height.Value
	if l.isDown(r.Label) {
		want -= step
	}
	if !r.Height.Valid {
		r.Height = someHeight(want)
		return Warning{}, false
	}
	if r.Height.Value != want {
		return Warning{Kind: WarnHeightConflict, Region: r.Label, Line: l.Label, Have: r.Height.Value, Want: want}, true
	}
	return Warning{}, false
}

// spreadToLine sets l's height from region r unless l already has one.
func spreadToLine(r *Region, l *Line, step int64) {
	if l.Height.Valid {
		return
	}
	h := r.Height.Value
	if l.isDown(r.Label) {
		h += step
	}
	l.Height = someHeight(h)
}

func (l *Line) isDown(r Label) bool {
	return l.Down.Valid && l.Down.Label == r
}
