package graph

import (
	"testing"

	"gonum.org/v1/gonum/graph/path"
)

func TestGonumAdapterQueries(t *testing.T) {
	g := New(true)
	for i := 0; i < 3; i++ {
		g.AddVertex(nil)
	}
	mustEdge(t, g, 0, 1)
	mustEdge(t, g, 1, 2)

	a := Gonum{G: g}

	if a.Node(2) == nil {
		t.Error("Node(2) = nil for existing vertex")
	}
	if a.Node(3) != nil {
		t.Error("Node(3) != nil for missing vertex")
	}
	if a.Nodes().Len() != 3 {
		t.Errorf("Nodes().Len() = %d, want 3", a.Nodes().Len())
	}
	if !a.HasEdgeBetween(1, 0) {
		t.Error("HasEdgeBetween(1, 0) = false, orientation must be ignored")
	}
	if a.Edge(1, 0) != nil {
		t.Error("Edge(1, 0) != nil on directed graph")
	}
	if a.Edge(0, 1) == nil {
		t.Error("Edge(0, 1) = nil for existing edge")
	}
	if w, ok := a.Weight(0, 1); !ok || w != 1 {
		t.Errorf("Weight(0, 1) = %v, %v, want 1, true", w, ok)
	}
}

func TestGonumShortestPath(t *testing.T) {
	// 0→1→3 (cheap) vs 0→2→3 (expensive vertex 2).
	g := New(true)
	for i := 0; i < 4; i++ {
		g.AddVertex(nil)
	}
	mustEdge(t, g, 0, 1)
	mustEdge(t, g, 1, 3)
	mustEdge(t, g, 0, 2)
	mustEdge(t, g, 2, 3)

	a := Gonum{G: g, VertexWeight: []float64{1, 1, 10, 1}}
	shortest := path.DijkstraFrom(a.Node(0), a)
	nodes, cost := shortest.To(3)

	if cost != 2 {
		t.Errorf("cost = %v, want 2 (via vertex 1)", cost)
	}
	if len(nodes) != 3 || nodes[1].ID() != 1 {
		ids := make([]int64, len(nodes))
		for i, n := range nodes {
			ids[i] = n.ID()
		}
		t.Errorf("path = %v, want [0 1 3]", ids)
	}
}
