package graph

import (
	"errors"
	"maps"
	"slices"
)

var (
	// ErrUnknownVertex is returned by [Graph.AddEdge] and the query methods
	// when a vertex index is out of range.
	ErrUnknownVertex = errors.New("unknown vertex index")

	// ErrUnknownEdge is returned by [Graph.DeleteEdges] when an edge index
	// is out of range.
	ErrUnknownEdge = errors.New("unknown edge index")
)

// Metadata stores arbitrary key-value pairs attached to vertices or edges.
// Values are heterogeneous: numeric, categorical (string), or opaque.
// Metadata maps are never nil after a vertex or edge has been added.
type Metadata map[string]any

// Clone returns a shallow copy of the metadata map.
// Returns an empty non-nil map when m is nil.
func (m Metadata) Clone() Metadata {
	out := make(Metadata, len(m))
	maps.Copy(out, m)
	return out
}

// Direction selects which incident edges a degree or neighbor query counts.
type Direction int

const (
	// DirOut counts edges leaving the vertex.
	DirOut Direction = iota
	// DirIn counts edges entering the vertex.
	DirIn
	// DirAll counts edges regardless of orientation.
	DirAll
)

// Edge is a directed connection between two vertices, identified by the
// vertex indices of its endpoints. On undirected graphs the orientation is
// storage order only; queries treat the edge as symmetric.
type Edge struct {
	From int
	To   int
	Meta Metadata
}

// Graph is an index-addressed attributed multigraph.
// The zero value is not usable - use New to create a Graph.
type Graph struct {
	directed bool
	vmeta    []Metadata // one entry per vertex, index == vertex
	edges    []Edge
	out      [][]int // vertex -> indices into edges where vertex is From
	in       [][]int // vertex -> indices into edges where vertex is To
}

// New creates an empty graph. Directedness is fixed at construction.
func New(directed bool) *Graph {
	return &Graph{directed: directed}
}

// IsDirected reports whether edges have an orientation.
func (g *Graph) IsDirected() bool { return g.directed }

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.vmeta) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// AddVertex appends a vertex with the given attributes and returns its index.
// A nil meta is replaced with an empty map.
func (g *Graph) AddVertex(meta Metadata) int {
	if meta == nil {
		meta = Metadata{}
	}
	g.vmeta = append(g.vmeta, meta)
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)
	return len(g.vmeta) - 1
}

// AddVertices appends one vertex per metadata entry, in order.
// Returns the index of the first vertex added.
func (g *Graph) AddVertices(metas []Metadata) int {
	first := len(g.vmeta)
	for _, m := range metas {
		g.AddVertex(m)
	}
	return first
}

// AddEdge adds an edge between two existing vertices and returns its index.
// Returns ErrUnknownVertex if either endpoint is out of range.
// A nil meta is replaced with an empty map. Multi-edges and self-loops are
// allowed; use Simplify to drop them.
func (g *Graph) AddEdge(from, to int, meta Metadata) (int, error) {
	if from < 0 || from >= len(g.vmeta) || to < 0 || to >= len(g.vmeta) {
		return 0, ErrUnknownVertex
	}
	if meta == nil {
		meta = Metadata{}
	}
	idx := len(g.edges)
	g.edges = append(g.edges, Edge{From: from, To: to, Meta: meta})
	g.out[from] = append(g.out[from], idx)
	g.in[to] = append(g.in[to], idx)
	return idx, nil
}

// VertexMeta returns the attribute map of vertex v.
// The returned map is the live map; modifications affect the graph.
func (g *Graph) VertexMeta(v int) Metadata {
	if v < 0 || v >= len(g.vmeta) {
		return nil
	}
	return g.vmeta[v]
}

// EdgeAt returns the edge with the given index.
func (g *Graph) EdgeAt(i int) Edge { return g.edges[i] }

// Edges returns a copy of all edges in insertion order.
// Modifications to the returned slice do not affect the graph.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Degree returns the number of incident edges counted in the given direction.
// On undirected graphs the direction is ignored and all incident edges count.
// Self-loops count once per incident endpoint.
func (g *Graph) Degree(v int, dir Direction) int {
	if v < 0 || v >= len(g.vmeta) {
		return 0
	}
	if !g.directed {
		dir = DirAll
	}
	switch dir {
	case DirOut:
		return len(g.out[v])
	case DirIn:
		return len(g.in[v])
	default:
		return len(g.out[v]) + len(g.in[v])
	}
}

// Neighbors returns the vertices adjacent to v through edges counted in the
// given direction, in edge insertion order. Duplicate neighbors appear once
// per connecting edge. On undirected graphs the direction is ignored.
func (g *Graph) Neighbors(v int, dir Direction) []int {
	if v < 0 || v >= len(g.vmeta) {
		return nil
	}
	if !g.directed {
		dir = DirAll
	}
	var result []int
	if dir == DirOut || dir == DirAll {
		for _, ei := range g.out[v] {
			result = append(result, g.edges[ei].To)
		}
	}
	if dir == DirIn || dir == DirAll {
		for _, ei := range g.in[v] {
			result = append(result, g.edges[ei].From)
		}
	}
	return result
}

// IncidentEdges returns the indices of edges incident to v in the given
// direction, in insertion order. On undirected graphs the direction is
// ignored.
func (g *Graph) IncidentEdges(v int, dir Direction) []int {
	if v < 0 || v >= len(g.vmeta) {
		return nil
	}
	if !g.directed {
		dir = DirAll
	}
	var result []int
	if dir == DirOut || dir == DirAll {
		result = append(result, g.out[v]...)
	}
	if dir == DirIn || dir == DirAll {
		result = append(result, g.in[v]...)
	}
	return result
}

// HasEdgeBetween reports whether any edge connects u and v in either
// orientation.
func (g *Graph) HasEdgeBetween(u, v int) bool {
	if u < 0 || u >= len(g.vmeta) || v < 0 || v >= len(g.vmeta) {
		return false
	}
	for _, ei := range g.out[u] {
		if g.edges[ei].To == v {
			return true
		}
	}
	for _, ei := range g.in[u] {
		if g.edges[ei].From == v {
			return true
		}
	}
	return false
}

// DeleteEdges removes the edges with the given indices and reindexes the
// remaining edges, preserving their relative order. Returns ErrUnknownEdge
// if any index is out of range. Duplicate indices are tolerated.
func (g *Graph) DeleteEdges(indices []int) error {
	if len(indices) == 0 {
		return nil
	}
	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(g.edges) {
			return ErrUnknownEdge
		}
		drop[i] = true
	}
	kept := make([]Edge, 0, len(g.edges)-len(drop))
	for i, e := range g.edges {
		if !drop[i] {
			kept = append(kept, e)
		}
	}
	g.edges = kept
	g.rebuildAdjacency()
	return nil
}

// Clone returns a deep structural copy of the graph. Vertex and edge
// metadata maps are shallow-copied, so attribute values are shared but the
// maps themselves are independent.
func (g *Graph) Clone() *Graph {
	out := New(g.directed)
	for _, m := range g.vmeta {
		out.AddVertex(m.Clone())
	}
	for _, e := range g.edges {
		_, _ = out.AddEdge(e.From, e.To, e.Meta.Clone())
	}
	return out
}

func (g *Graph) rebuildAdjacency() {
	g.out = make([][]int, len(g.vmeta))
	g.in = make([][]int, len(g.vmeta))
	for i, e := range g.edges {
		g.out[e.From] = append(g.out[e.From], i)
		g.in[e.To] = append(g.in[e.To], i)
	}
}
