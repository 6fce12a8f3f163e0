package graph

// Edit is a batch of structural changes applied to a graph as one
// transaction. Layout algorithms that rewrite topology build an Edit against
// an immutable source graph instead of mutating it mid-computation, so no
// partially rewritten state is ever observed.
//
// Added vertices receive indices n..n+len(AddVertices)-1 where n is the
// source vertex count; AddEdges may reference those indices.
type Edit struct {
	// AddVertices appends one vertex per entry, attributes as given.
	AddVertices []Metadata
	// AddEdges appends edges after the vertex batch; endpoints may reference
	// both original and newly added vertices.
	AddEdges []Edge
	// RemoveEdges lists edge indices of the source graph to drop.
	RemoveEdges []int
}

// Empty reports whether applying the edit would change nothing.
func (e Edit) Empty() bool {
	return len(e.AddVertices) == 0 && len(e.AddEdges) == 0 && len(e.RemoveEdges) == 0
}

// Apply returns a new graph with the edit applied. The receiver is not
// modified. Edge removal happens before edge addition, so RemoveEdges indices
// always refer to the source graph's edge numbering. Surviving edges keep
// their relative order, followed by the added edges.
func (g *Graph) Apply(e Edit) (*Graph, error) {
	out := New(g.directed)
	for _, m := range g.vmeta {
		out.AddVertex(m.Clone())
	}
	for _, m := range e.AddVertices {
		out.AddVertex(m.Clone())
	}

	drop := make(map[int]bool, len(e.RemoveEdges))
	for _, i := range e.RemoveEdges {
		if i < 0 || i >= len(g.edges) {
			return nil, ErrUnknownEdge
		}
		drop[i] = true
	}
	for i, edge := range g.edges {
		if drop[i] {
			continue
		}
		if _, err := out.AddEdge(edge.From, edge.To, edge.Meta.Clone()); err != nil {
			return nil, err
		}
	}
	for _, edge := range e.AddEdges {
		if _, err := out.AddEdge(edge.From, edge.To, edge.Meta.Clone()); err != nil {
			return nil, err
		}
	}
	return out, nil
}
