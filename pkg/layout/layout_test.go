package layout

import (
	"testing"

	"github.com/lattica/lattica/pkg/graph"
)

// buildGraph constructs a graph with n attribute-less vertices and the given
// edges. Per-vertex attributes can be layered on with setAttr.
func buildGraph(t *testing.T, directed bool, n int, edges [][2]int) *graph.Graph {
	t.Helper()
	g := graph.New(directed)
	for i := 0; i < n; i++ {
		g.AddVertex(graph.Metadata{})
	}
	for _, e := range edges {
		if _, err := g.AddEdge(e[0], e[1], nil); err != nil {
			t.Fatalf("AddEdge(%d, %d): %v", e[0], e[1], err)
		}
	}
	return g
}

func setAttr(t *testing.T, g *graph.Graph, name string, vals ...any) {
	t.Helper()
	if len(vals) != g.VertexCount() {
		t.Fatalf("setAttr %q: %d values for %d vertices", name, len(vals), g.VertexCount())
	}
	for v, val := range vals {
		g.VertexMeta(v)[name] = val
	}
}

func hasNotice(notices []Notice, code string) bool {
	for _, n := range notices {
		if n.Code == code {
			return true
		}
	}
	return false
}
