package layout

import (
	"context"
	"math"

	gonumgraph "gonum.org/v1/gonum/graph"
	gonumlayout "gonum.org/v1/gonum/graph/layout"

	"github.com/lattica/lattica/pkg/graph"
)

// Circle places all vertices evenly on a unit circle in index order.
func Circle(ctx context.Context, g *graph.Graph, opts Options) (*Table, error) {
	n := g.VertexCount()
	nodes := make([]Node, n)
	for v := 0; v < n; v++ {
		angle := 2*math.Pi*float64(v)/float64(max(n, 1)) + opts.Offset
		nodes[v] = Node{X: math.Cos(angle), Y: math.Sin(angle), Leaf: true}
	}
	return newTable(g, nodes, false, nil), nil
}

// Star places vertex 0 at the origin and the remaining vertices evenly on a
// unit circle around it.
func Star(ctx context.Context, g *graph.Graph, opts Options) (*Table, error) {
	n := g.VertexCount()
	nodes := make([]Node, n)
	for v := 1; v < n; v++ {
		angle := 2*math.Pi*float64(v-1)/float64(max(n-1, 1)) + opts.Offset
		nodes[v] = Node{X: math.Cos(angle), Y: math.Sin(angle), Leaf: true}
	}
	if n > 0 {
		nodes[0] = Node{Leaf: true}
	}
	return newTable(g, nodes, false, nil), nil
}

// Grid places vertices row by row on an integer lattice with
// ceil(sqrt(n)) columns.
func Grid(ctx context.Context, g *graph.Graph, opts Options) (*Table, error) {
	n := g.VertexCount()
	cols := int(math.Ceil(math.Sqrt(float64(n))))
	nodes := make([]Node, n)
	for v := 0; v < n; v++ {
		nodes[v] = Node{X: float64(v % cols), Y: float64(v / cols), Leaf: true}
	}
	return newTable(g, nodes, false, nil), nil
}

// Eades runs the Eades spring-embedder force simulation for opts.Updates
// iterations and reads back the settled coordinates.
func Eades(ctx context.Context, g *graph.Graph, opts Options) (*Table, error) {
	updates := opts.Updates
	if updates <= 0 {
		updates = DefaultOptions().Updates
	}
	eades := gonumlayout.EadesR2{
		Updates:   updates,
		Repulsion: 1,
		Rate:      0.05,
		Theta:     0.1,
	}
	return optimize(g, eades.Update)
}

// Isomap embeds vertices by classical multidimensional scaling of the
// graph's shortest-path distances.
func Isomap(ctx context.Context, g *graph.Graph, opts Options) (*Table, error) {
	return optimize(g, gonumlayout.IsomapR2{}.Update)
}

func optimize(g *graph.Graph, update func(gonumgraph.Graph, gonumlayout.LayoutR2) bool) (*Table, error) {
	n := g.VertexCount()
	if n == 0 {
		return newTable(g, nil, false, nil), nil
	}
	adapter := graph.Gonum{G: g}
	o := gonumlayout.NewOptimizerR2(adapter, update)
	for o.Update() {
	}
	nodes := make([]Node, n)
	for v := 0; v < n; v++ {
		r2 := o.Coord2(int64(v))
		nodes[v] = Node{X: r2.X, Y: r2.Y, Leaf: true}
	}
	return newTable(g, nodes, false, nil), nil
}
