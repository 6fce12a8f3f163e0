package graph

import (
	gonumgraph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
)

// Gonum adapts a Graph to gonum's graph interfaces so that the generic
// layout optimizers (gonum.org/v1/gonum/graph/layout) and path algorithms
// (gonum.org/v1/gonum/graph/path) can run on it directly. Vertex indices map
// one-to-one onto gonum node IDs.
//
// When VertexWeight is set, the adapter implements gonum's Weighted
// interface: traversing an edge costs the weight of the vertex it enters.
// This matches how a weight column of a layout table (one value per vertex)
// prices a path. A nil VertexWeight means uniform cost 1.
type Gonum struct {
	G *Graph
	// VertexWeight is the cost of entering each vertex, indexed by vertex.
	// Optional; nil means every edge costs 1.
	VertexWeight []float64
}

var (
	_ gonumgraph.Graph    = Gonum{}
	_ gonumgraph.Weighted = Gonum{}
)

type gonumNode int64

func (n gonumNode) ID() int64 { return int64(n) }

type gonumEdge struct {
	from, to int64
	weight   float64
}

func (e gonumEdge) From() gonumgraph.Node         { return gonumNode(e.from) }
func (e gonumEdge) To() gonumgraph.Node           { return gonumNode(e.to) }
func (e gonumEdge) ReversedEdge() gonumgraph.Edge { return gonumEdge{from: e.to, to: e.from, weight: e.weight} }
func (e gonumEdge) Weight() float64               { return e.weight }

// Node returns the node with the given ID, or nil if it does not exist.
func (a Gonum) Node(id int64) gonumgraph.Node {
	if id < 0 || id >= int64(a.G.VertexCount()) {
		return nil
	}
	return gonumNode(id)
}

// Nodes returns all vertices in index order.
func (a Gonum) Nodes() gonumgraph.Nodes {
	n := a.G.VertexCount()
	if n == 0 {
		return gonumgraph.Empty
	}
	nodes := make([]gonumgraph.Node, n)
	for i := range nodes {
		nodes[i] = gonumNode(i)
	}
	return iterator.NewOrderedNodes(nodes)
}

// From returns the vertices reachable from id: out-neighbors on directed
// graphs, all neighbors on undirected ones. Each neighbor appears once even
// when multi-edges connect the pair.
func (a Gonum) From(id int64) gonumgraph.Nodes {
	neighbors := a.G.Neighbors(int(id), DirOut)
	if len(neighbors) == 0 {
		return gonumgraph.Empty
	}
	seen := make(map[int]bool, len(neighbors))
	var nodes []gonumgraph.Node
	for _, v := range neighbors {
		if v == int(id) || seen[v] {
			continue
		}
		seen[v] = true
		nodes = append(nodes, gonumNode(v))
	}
	if len(nodes) == 0 {
		return gonumgraph.Empty
	}
	return iterator.NewOrderedNodes(nodes)
}

// HasEdgeBetween reports whether any edge connects xid and yid, ignoring
// orientation.
func (a Gonum) HasEdgeBetween(xid, yid int64) bool {
	return a.G.HasEdgeBetween(int(xid), int(yid))
}

// Edge returns an edge from uid to vid, or nil if none exists.
func (a Gonum) Edge(uid, vid int64) gonumgraph.Edge {
	return a.WeightedEdge(uid, vid)
}

// WeightedEdge returns a weighted edge from uid to vid, or nil if none exists.
func (a Gonum) WeightedEdge(uid, vid int64) gonumgraph.WeightedEdge {
	if !a.connected(int(uid), int(vid)) {
		return nil
	}
	w, _ := a.Weight(uid, vid)
	return gonumEdge{from: uid, to: vid, weight: w}
}

// Weight returns the cost of moving from xid to yid: the entered vertex's
// weight when VertexWeight is set, otherwise 1. The self-weight is 0.
func (a Gonum) Weight(xid, yid int64) (w float64, ok bool) {
	if xid == yid {
		return 0, true
	}
	if !a.connected(int(xid), int(yid)) {
		return 0, false
	}
	if a.VertexWeight != nil {
		return a.VertexWeight[yid], true
	}
	return 1, true
}

// connected reports whether an edge runs from u to v, honoring orientation
// on directed graphs.
func (a Gonum) connected(u, v int) bool {
	if u < 0 || v < 0 || u >= a.G.VertexCount() || v >= a.G.VertexCount() {
		return false
	}
	for _, n := range a.G.Neighbors(u, DirOut) {
		if n == v {
			return true
		}
	}
	return false
}
