package layout

import (
	"context"
	"math"
	"testing"

	"github.com/lattica/lattica/pkg/errors"
)

func TestDendrogram(t *testing.T) {
	ctx := context.Background()

	t.Run("binary tree", func(t *testing.T) {
		g := buildGraph(t, true, 3, [][2]int{{0, 1}, {0, 2}})
		table, err := Dendrogram(ctx, g, DefaultOptions())
		if err != nil {
			t.Fatalf("Dendrogram: %v", err)
		}
		want := []struct{ x, y float64 }{{1.5, 1}, {1, 0}, {2, 0}}
		for v, w := range want {
			n := table.Nodes[v]
			if !almostEqual(n.X, w.x) || !almostEqual(n.Y, w.y) {
				t.Errorf("node %d at (%v, %v), want (%v, %v)", v, n.X, n.Y, w.x, w.y)
			}
		}
		if !table.Nodes[1].Leaf || table.Nodes[0].Leaf {
			t.Errorf("leaf flags wrong: %v", table.Nodes)
		}
		if table.Nodes[0].Depth != 1 {
			t.Errorf("root depth = %d, want 1", table.Nodes[0].Depth)
		}
	})

	t.Run("deeper branch raises parent", func(t *testing.T) {
		// 0→1, 0→2, 2→3: vertex 2 sits at height 1, so 0 sits at height 2.
		g := buildGraph(t, true, 4, [][2]int{{0, 1}, {0, 2}, {2, 3}})
		table, err := Dendrogram(ctx, g, DefaultOptions())
		if err != nil {
			t.Fatalf("Dendrogram: %v", err)
		}
		if !almostEqual(table.Nodes[0].Y, 2) {
			t.Errorf("root y = %v, want 2", table.Nodes[0].Y)
		}
		if !almostEqual(table.Nodes[2].Y, 1) {
			t.Errorf("internal y = %v, want 1", table.Nodes[2].Y)
		}
	})

	t.Run("forest shares the baseline", func(t *testing.T) {
		g := buildGraph(t, true, 4, [][2]int{{0, 1}, {2, 3}})
		table, err := Dendrogram(ctx, g, DefaultOptions())
		if err != nil {
			t.Fatalf("Dendrogram: %v", err)
		}
		// Leaves numbered consecutively across roots: 1 gets x=1, 3 gets x=2.
		if !almostEqual(table.Nodes[1].X, 1) || !almostEqual(table.Nodes[3].X, 2) {
			t.Errorf("leaf x = %v, %v, want 1, 2", table.Nodes[1].X, table.Nodes[3].X)
		}
	})

	t.Run("multi-edge child counts once in the mean", func(t *testing.T) {
		g := buildGraph(t, true, 3, [][2]int{{0, 1}, {0, 1}, {0, 2}})
		table, err := Dendrogram(ctx, g, DefaultOptions())
		if err != nil {
			t.Fatalf("Dendrogram: %v", err)
		}
		if !almostEqual(table.Nodes[0].X, 1.5) {
			t.Errorf("root x = %v, want 1.5", table.Nodes[0].X)
		}
	})

	t.Run("mode in flips direction", func(t *testing.T) {
		g := buildGraph(t, true, 3, [][2]int{{1, 0}, {2, 0}})
		opts := DefaultOptions()
		opts.Mode = ModeIn
		table, err := Dendrogram(ctx, g, opts)
		if err != nil {
			t.Fatalf("Dendrogram: %v", err)
		}
		if !almostEqual(table.Nodes[0].Y, 1) {
			t.Errorf("root y = %v, want 1", table.Nodes[0].Y)
		}
	})

	t.Run("undirected rejected", func(t *testing.T) {
		g := buildGraph(t, false, 2, [][2]int{{0, 1}})
		_, err := Dendrogram(ctx, g, DefaultOptions())
		if !errors.Is(err, errors.ErrCodeInvalidGraph) {
			t.Fatalf("err = %v, want INVALID_GRAPH", err)
		}
	})

	t.Run("cycle without root rejected", func(t *testing.T) {
		g := buildGraph(t, true, 2, [][2]int{{0, 1}, {1, 0}})
		_, err := Dendrogram(ctx, g, DefaultOptions())
		if !errors.Is(err, errors.ErrCodeNoRoot) {
			t.Fatalf("err = %v, want NO_ROOT", err)
		}
	})

	t.Run("bad mode rejected", func(t *testing.T) {
		g := buildGraph(t, true, 2, [][2]int{{0, 1}})
		opts := DefaultOptions()
		opts.Mode = "sideways"
		_, err := Dendrogram(ctx, g, opts)
		if !errors.Is(err, errors.ErrCodeInvalidOption) {
			t.Fatalf("err = %v, want INVALID_OPTION", err)
		}
	})
}

func TestDendrogramCircular(t *testing.T) {
	g := buildGraph(t, true, 3, [][2]int{{0, 1}, {0, 2}})
	opts := DefaultOptions()
	opts.Circular = true
	opts.Offset = 0
	table, err := Dendrogram(context.Background(), g, opts)
	if err != nil {
		t.Fatalf("Dendrogram: %v", err)
	}
	// The root is the deepest level and lands at the center.
	root := table.Nodes[0]
	if !almostEqual(root.X, 0) || !almostEqual(root.Y, 0) {
		t.Errorf("root at (%v, %v), want origin", root.X, root.Y)
	}
	// Leaves sit on the unit circle.
	for _, v := range []int{1, 2} {
		n := table.Nodes[v]
		if r := math.Hypot(n.X, n.Y); !almostEqual(r, 1) {
			t.Errorf("leaf %d radius = %v, want 1", v, r)
		}
	}
	if !table.Circular || !table.Nodes[0].Circular {
		t.Error("circular flags not set")
	}
}
