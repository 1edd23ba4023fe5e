package relief

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/simple"
)

var _ graph.Undirected = (*adjacencyGraph)(nil)

// adjacencyGraph is the bipartite line/region graph as a gonum undirected
// graph. Node IDs are labels; lines and regions share one label space.
// Nodes and neighbors iterate in ascending ID order so walks are deterministic.
type adjacencyGraph struct {
	nodes []graph.Node
	adj   map[int64][]graph.Node
}

func newAdjacencyGraph(regions Regions, lines Lines) *adjacencyGraph {
	g := &adjacencyGraph{adj: make(map[int64][]graph.Node, len(regions)+len(lines))}

	ids := append(regions.SortedLabels(), lines.SortedLabels()...)
	sortLabels(ids)
	for _, id := range ids {
		g.nodes = append(g.nodes, simple.Node(id))
		g.adj[int64(id)] = nil
	}

	for _, ll := range lines.SortedLabels() {
		line := lines[ll]
		for _, s := range []Slot{line.Up, line.Down} {
			if !s.Valid {
				continue
			}
			if _, ok := regions[s.Label]; !ok {
				continue
			}
			g.adj[int64(ll)] = append(g.adj[int64(ll)], simple.Node(s.Label))
			g.adj[int64(s.Label)] = append(g.adj[int64(s.Label)], simple.Node(ll))
		}
	}
	for id, ns := range g.adj {
		sort.Slice(ns, func(i, j int) bool { return ns[i].ID() < ns[j].ID() })
		g.adj[id] = ns
	}
	return g
}

func (g *adjacencyGraph) Node(id int64) graph.Node {
	if _, ok := g.adj[id]; !ok {
		return nil
	}
	return simple.Node(id)
}

func (g *adjacencyGraph) Nodes() graph.Nodes {
	if len(g.nodes) == 0 {
		return graph.Empty
	}
	return iterator.NewOrderedNodes(g.nodes)
}

func (g *adjacencyGraph) From(id int64) graph.Nodes {
	ns := g.adj[id]
	if len(ns) == 0 {
		return graph.Empty
	}
	return iterator.NewOrderedNodes(ns)
}

func (g *adjacencyGraph) HasEdgeBetween(xid, yid int64) bool {
	for _, n := range g.adj[xid] {
		if n.ID() == yid {
			return true
		}
	}
	return false
}

func (g *adjacencyGraph) Edge(uid, vid int64) graph.Edge {
	if !g.HasEdgeBetween(uid, vid) {
		return nil
	}
	return simple.Edge{F: simple.Node(uid), T: simple.Node(vid)}
}

func (g *adjacencyGraph) EdgeBetween(xid, yid int64) graph.Edge {
	return g.Edge(xid, yid)
}
