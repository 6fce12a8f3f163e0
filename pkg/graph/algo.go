package graph

import "slices"

// Components returns the weakly-connected components of the graph, each as a
// sorted slice of vertex indices. Components are ordered by discovery: the
// component containing the lowest unvisited vertex index comes first. Edge
// orientation is ignored.
func (g *Graph) Components() [][]int {
	n := len(g.vmeta)
	visited := make([]bool, n)
	var components [][]int

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		var comp []int
		queue := []int{start}
		visited[start] = true
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			comp = append(comp, v)
			for _, u := range g.Neighbors(v, DirAll) {
				if !visited[u] {
					visited[u] = true
					queue = append(queue, u)
				}
			}
		}
		components = append(components, comp)
	}

	for _, comp := range components {
		slices.Sort(comp)
	}
	return components
}

// InducedSubgraph returns a new graph containing only the given vertices and
// the edges between them. Vertices are renumbered 0..len(vs)-1 in the order
// given; attribute maps are copied. Edges keep their relative insertion order.
func (g *Graph) InducedSubgraph(vs []int) *Graph {
	remap := make(map[int]int, len(vs))
	out := New(g.directed)
	for i, v := range vs {
		remap[v] = i
		out.AddVertex(g.vmeta[v].Clone())
	}
	for _, e := range g.edges {
		from, okF := remap[e.From]
		to, okT := remap[e.To]
		if okF && okT {
			_, _ = out.AddEdge(from, to, e.Meta.Clone())
		}
	}
	return out
}

// Simplify returns a copy of the graph without self-loops and without
// duplicate edges between the same vertex pair. The first edge between a pair
// (in insertion order) survives; on undirected graphs the pair is unordered.
// The receiver is not modified.
func (g *Graph) Simplify() *Graph {
	out := New(g.directed)
	for _, m := range g.vmeta {
		out.AddVertex(m.Clone())
	}
	seen := make(map[[2]int]bool, len(g.edges))
	for _, e := range g.edges {
		if e.From == e.To {
			continue
		}
		key := [2]int{e.From, e.To}
		if !g.directed && e.To < e.From {
			key = [2]int{e.To, e.From}
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		_, _ = out.AddEdge(e.From, e.To, e.Meta.Clone())
	}
	return out
}
