package layout

import (
	"context"
	"math"
	"testing"

	"github.com/lattica/lattica/pkg/errors"
)

func angleOf(n Node) float64 {
	return math.Atan2(n.Y, n.X)
}

func TestHiveAxes(t *testing.T) {
	ctx := context.Background()

	t.Run("axes ordered by label with equal arcs", func(t *testing.T) {
		g := buildGraph(t, false, 2, nil)
		setAttr(t, g, "group", "a", "b")
		opts := DefaultOptions()
		opts.Axis = "group"
		opts.Offset = 0
		table, err := Hive(ctx, g, opts)
		if err != nil {
			t.Fatalf("Hive: %v", err)
		}
		if got := angleOf(table.Nodes[0]); !almostEqual(got, 0) {
			t.Errorf("axis a angle = %v, want 0", got)
		}
		if got := math.Abs(angleOf(table.Nodes[1])); !almostEqual(got, math.Pi) {
			t.Errorf("axis b angle = %v, want ±π", angleOf(table.Nodes[1]))
		}
	})

	t.Run("axis weights widen arcs", func(t *testing.T) {
		g := buildGraph(t, false, 3, nil)
		setAttr(t, g, "group", "a", "b", "c")
		opts := DefaultOptions()
		opts.Axis = "group"
		opts.Offset = 0
		opts.AxisWeights = map[string]float64{"a": 2} // b, c default to 1
		table, err := Hive(ctx, g, opts)
		if err != nil {
			t.Fatalf("Hive: %v", err)
		}
		// Total weight 4: a starts at 0, b after a's half turn, c a quarter later.
		if got := angleOf(table.Nodes[1]); !almostEqual(math.Abs(got), math.Pi) {
			t.Errorf("axis b angle = %v, want ±π", got)
		}
		if got := angleOf(table.Nodes[2]); !almostEqual(got, -math.Pi/2) {
			t.Errorf("axis c angle = %v, want -π/2 (3π/2)", got)
		}
	})

	t.Run("missing axis attribute fails", func(t *testing.T) {
		g := buildGraph(t, false, 2, nil)
		opts := DefaultOptions()
		opts.Axis = "group"
		_, err := Hive(ctx, g, opts)
		if !errors.Is(err, errors.ErrCodeInvalidOption) {
			t.Fatalf("err = %v, want INVALID_OPTION", err)
		}
	})

	t.Run("axis option required", func(t *testing.T) {
		g := buildGraph(t, false, 1, nil)
		_, err := Hive(ctx, g, DefaultOptions())
		if !errors.Is(err, errors.ErrCodeInvalidOption) {
			t.Fatalf("err = %v, want INVALID_OPTION", err)
		}
	})
}

func TestHiveRadii(t *testing.T) {
	ctx := context.Background()

	t.Run("rank spacing from the center gap", func(t *testing.T) {
		g := buildGraph(t, false, 3, nil)
		setAttr(t, g, "group", "a", "a", "a")
		opts := DefaultOptions()
		opts.Axis = "group"
		opts.CenterGap = 0.2
		table, err := Hive(ctx, g, opts)
		if err != nil {
			t.Fatalf("Hive: %v", err)
		}
		// Three vertices, step 1/3, radii 0.2, 0.2+1/3, 0.2+2/3.
		for v, want := range []float64{0.2, 0.2 + 1.0/3, 0.2 + 2.0/3} {
			if r := math.Hypot(table.Nodes[v].X, table.Nodes[v].Y); !almostEqual(r, want) {
				t.Errorf("vertex %d radius = %v, want %v", v, r, want)
			}
		}
	})

	t.Run("numeric radial key normalized per axis", func(t *testing.T) {
		g := buildGraph(t, false, 2, nil)
		setAttr(t, g, "group", "a", "a")
		setAttr(t, g, "value", 10.0, 30.0)
		opts := DefaultOptions()
		opts.Axis = "group"
		opts.SortBy = "value"
		opts.UseNumeric = true
		opts.CenterGap = 0
		table, err := Hive(ctx, g, opts)
		if err != nil {
			t.Fatalf("Hive: %v", err)
		}
		r0 := math.Hypot(table.Nodes[0].X, table.Nodes[0].Y)
		r1 := math.Hypot(table.Nodes[1].X, table.Nodes[1].Y)
		if !almostEqual(r0, 0) || !almostEqual(r1, 1) {
			t.Errorf("radii = %v, %v, want 0, 1", r0, r1)
		}
	})

	t.Run("sections stack outward with gaps", func(t *testing.T) {
		g := buildGraph(t, false, 2, nil)
		setAttr(t, g, "group", "a", "a")
		setAttr(t, g, "tier", "inner", "outer")
		opts := DefaultOptions()
		opts.Axis = "group"
		opts.Section = "tier"
		opts.SectionOrder = []string{"inner", "outer"}
		opts.CenterGap = 0.1
		opts.SectionGap = 0.5
		table, err := Hive(ctx, g, opts)
		if err != nil {
			t.Fatalf("Hive: %v", err)
		}
		r0 := math.Hypot(table.Nodes[0].X, table.Nodes[0].Y)
		r1 := math.Hypot(table.Nodes[1].X, table.Nodes[1].Y)
		// Single-member sections place at their base: 0.1, then 0.1+0.5.
		if !almostEqual(r0, 0.1) || !almostEqual(r1, 0.6) {
			t.Errorf("radii = %v, %v, want 0.1, 0.6", r0, r1)
		}
	})

	t.Run("unknown section level in order fails", func(t *testing.T) {
		g := buildGraph(t, false, 1, nil)
		setAttr(t, g, "group", "a")
		setAttr(t, g, "tier", "inner")
		opts := DefaultOptions()
		opts.Axis = "group"
		opts.Section = "tier"
		opts.SectionOrder = []string{"missing"}
		_, err := Hive(ctx, g, opts)
		if !errors.Is(err, errors.ErrCodeMissingLevel) {
			t.Fatalf("err = %v, want MISSING_LEVEL", err)
		}
	})
}

func TestHiveSplit(t *testing.T) {
	ctx := context.Background()

	t.Run("split all doubles the axis", func(t *testing.T) {
		g := buildGraph(t, true, 2, [][2]int{{0, 1}})
		setAttr(t, g, "group", "a", "a")
		opts := DefaultOptions()
		opts.Axis = "group"
		opts.Offset = 0
		opts.Split = SplitAll
		opts.SplitAngle = math.Pi / 3
		table, err := Hive(ctx, g, opts)
		if err != nil {
			t.Fatalf("Hive: %v", err)
		}
		if len(table.Nodes) != 4 {
			t.Fatalf("got %d rows, want 4 (originals plus clones)", len(table.Nodes))
		}
		// Originals rotate back by half the split angle, clones forward.
		if got := angleOf(table.Nodes[0]); !almostEqual(got, -math.Pi/6) {
			t.Errorf("original angle = %v, want -π/6", got)
		}
		if got := angleOf(table.Nodes[2]); !almostEqual(got, math.Pi/6) {
			t.Errorf("clone angle = %v, want π/6", got)
		}
		// Clones keep the radius of their originals.
		r0 := math.Hypot(table.Nodes[0].X, table.Nodes[0].Y)
		r2 := math.Hypot(table.Nodes[2].X, table.Nodes[2].Y)
		if !almostEqual(r0, r2) {
			t.Errorf("clone radius %v differs from original %v", r2, r0)
		}
		// The same-axis edge now runs from the lower-radius original to the
		// higher-radius clone.
		edges := table.Graph().Edges()
		if len(edges) != 1 {
			t.Fatalf("derived graph has %d edges, want 1", len(edges))
		}
		if edges[0].From != 0 || edges[0].To != 3 {
			t.Errorf("edge = %d→%d, want 0→3", edges[0].From, edges[0].To)
		}
		// The caller's graph is untouched.
		if g.VertexCount() != 2 || g.EdgeCount() != 1 {
			t.Errorf("input graph mutated: %d vertices, %d edges", g.VertexCount(), g.EdgeCount())
		}
		if e := g.EdgeAt(0); e.From != 0 || e.To != 1 {
			t.Errorf("input edge rewritten to %d→%d", e.From, e.To)
		}
	})

	t.Run("split loops only touches looped axes", func(t *testing.T) {
		// Axis a carries a self-loop, axis b does not.
		g := buildGraph(t, true, 2, [][2]int{{0, 0}})
		setAttr(t, g, "group", "a", "b")
		opts := DefaultOptions()
		opts.Axis = "group"
		opts.Split = SplitLoops
		table, err := Hive(ctx, g, opts)
		if err != nil {
			t.Fatalf("Hive: %v", err)
		}
		// Only the vertex on axis a is cloned.
		if len(table.Nodes) != 3 {
			t.Fatalf("got %d rows, want 3", len(table.Nodes))
		}
		// The self-loop becomes an edge from the original to its clone.
		edges := table.Graph().Edges()
		if len(edges) != 1 || edges[0].From != 0 || edges[0].To != 2 {
			t.Fatalf("edges = %v, want single 0→2", edges)
		}
	})

	t.Run("split none leaves the graph alone", func(t *testing.T) {
		g := buildGraph(t, true, 2, [][2]int{{0, 1}})
		setAttr(t, g, "group", "a", "a")
		opts := DefaultOptions()
		opts.Axis = "group"
		table, err := Hive(ctx, g, opts)
		if err != nil {
			t.Fatalf("Hive: %v", err)
		}
		if len(table.Nodes) != 2 {
			t.Errorf("got %d rows, want 2", len(table.Nodes))
		}
		if table.Graph() != g {
			t.Error("unsplit hive should reference the input graph")
		}
	})

	t.Run("unknown split mode fails", func(t *testing.T) {
		g := buildGraph(t, true, 1, nil)
		setAttr(t, g, "group", "a")
		opts := DefaultOptions()
		opts.Axis = "group"
		opts.Split = "sometimes"
		_, err := Hive(ctx, g, opts)
		if !errors.Is(err, errors.ErrCodeInvalidOption) {
			t.Fatalf("err = %v, want INVALID_OPTION", err)
		}
	})

	t.Run("cross axis edges reach the near half", func(t *testing.T) {
		// Axis a at angle 0 (split), axis b at π. Edge 0→1 crosses axes;
		// the b endpoint sits half a turn counterclockwise from a, so the
		// a endpoint is redirected to its clone.
		g := buildGraph(t, true, 2, [][2]int{{0, 1}})
		setAttr(t, g, "group", "a", "b")
		opts := DefaultOptions()
		opts.Axis = "group"
		opts.Offset = 0
		opts.Split = SplitLoops
		// Force a split on axis a via a loop.
		if _, err := g.AddEdge(0, 0, nil); err != nil {
			t.Fatal(err)
		}
		table, err := Hive(ctx, g, opts)
		if err != nil {
			t.Fatalf("Hive: %v", err)
		}
		var crossFrom int = -1
		for _, e := range table.Graph().Edges() {
			if e.To == 1 {
				crossFrom = e.From
			}
		}
		// Vertex 2 is the clone of vertex 0.
		if crossFrom != 2 {
			t.Errorf("cross-axis edge starts at %d, want clone 2", crossFrom)
		}
	})
}
